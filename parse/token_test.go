package parse

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTokenizer_Normalize(t *testing.T) {
	tok := NewTokenizer(WithSlashPrefix(false))

	tests := []struct {
		token string
		want  Pair
		kind  Kind
	}{
		{"-CGC", Pair{Name: "-CGC"}, KindFlag},
		{"--CGC", Pair{Name: "-CGC"}, KindFlag},
		{"-CGC=1", Pair{Name: "-CGC", Value: "1"}, KindFlag},
		{"--CGC=verbose", Pair{Name: "-CGC", Value: "verbose"}, KindFlag},
		{"-CGC=", Pair{Name: "-CGC"}, KindFlag},
		{"-a=b=c", Pair{Name: "-a", Value: "b=c"}, KindFlag},
		{"-noCGC=0", Pair{Name: "-noCGC", Value: "0"}, KindFlag},
		{"---x", Pair{Name: "--x"}, KindFlag},
		{"-Mixed=Case Value", Pair{Name: "-Mixed", Value: "Case Value"}, KindFlag},
		{"- x", Pair{Name: "- x"}, KindFlag},
		{"-", Pair{}, KindMalformed},
		{"--", Pair{}, KindMalformed},
		{"-=1", Pair{}, KindMalformed},
		{"--=1", Pair{}, KindMalformed},
		{"", Pair{}, KindNonFlag},
		{"CGC", Pair{}, KindNonFlag},
		{"/CGC", Pair{}, KindNonFlag},
		{" -CGC", Pair{}, KindNonFlag},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, kind := tok.Normalize(tt.token)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizer_SlashPrefix(t *testing.T) {
	tok := NewTokenizer(WithSlashPrefix(true))

	got, kind := tok.Normalize("/CGC=1")
	assert.Equal(t, KindFlag, kind)
	assert.Equal(t, Pair{Name: "-CGC", Value: "1"}, got)

	got, kind = tok.Normalize("//CGC")
	assert.Equal(t, KindFlag, kind, "'//' becomes '-/' which is a flag named '-/CGC'")
	assert.Equal(t, Pair{Name: "-/CGC"}, got)

	_, kind = tok.Normalize("/")
	assert.Equal(t, KindMalformed, kind)

	_, kind = NewTokenizer().Normalize("/CGC")
	assert.Equal(t, KindNonFlag, kind, "'/' needs to be enabled explicitly")
}

func TestTokenize_Order(t *testing.T) {
	pairs := Tokenize([]string{"-b=2", "--a", "-b=3", "-noa"}, WithSlashPrefix(false))

	assert.Equal(t, []Pair{
		{Name: "-b", Value: "2"},
		{Name: "-a"},
		{Name: "-b", Value: "3"},
		{Name: "-noa"},
	}, pairs)
}

func TestTokenize_NonFlagPolicy(t *testing.T) {
	tokens := []string{"-a=1", "positional", "-b", "--", "-c=3"}

	t.Run("skip", func(t *testing.T) {
		pairs := Tokenize(tokens, WithNonFlagPolicy(SkipNonFlags))
		assert.Equal(t, []Pair{{Name: "-a", Value: "1"}, {Name: "-b"}, {Name: "-c", Value: "3"}}, pairs)
	})

	t.Run("stop", func(t *testing.T) {
		pairs := Tokenize(tokens, WithNonFlagPolicy(StopAtNonFlag))
		assert.Equal(t, []Pair{{Name: "-a", Value: "1"}}, pairs)
	})

	t.Run("malformed tokens never stop", func(t *testing.T) {
		pairs := Tokenize([]string{"-", "-x", "--", "-=1", "-y"}, WithNonFlagPolicy(StopAtNonFlag))
		assert.Equal(t, []Pair{{Name: "-x"}, {Name: "-y"}}, pairs)
	})
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(nil))
	assert.Empty(t, Tokenize([]string{}))
}

func TestTokenize_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_ = Tokenize([]string{"-", "file.dat", "-ok"}, WithLogger(logger), WithSlashPrefix(false))
	out := buf.String()
	assert.Contains(t, out, "dropping malformed flag")
	assert.Contains(t, out, "skipping non-flag token")
	assert.Contains(t, out, `"token":"file.dat"`)

	buf.Reset()
	_ = Tokenize([]string{"-a", "stop", "-b", "-c"}, WithLogger(logger), WithNonFlagPolicy(StopAtNonFlag))
	assert.Contains(t, buf.String(), "stopping at non-flag token")
	assert.Contains(t, buf.String(), `"ignored":3`)
}

func TestKindAndPolicyString(t *testing.T) {
	assert.Equal(t, "flag", KindFlag.String())
	assert.Equal(t, "non-flag", KindNonFlag.String())
	assert.Equal(t, "malformed", KindMalformed.String())
	assert.Equal(t, "unknown", Kind(42).String())
	assert.Equal(t, "skip", SkipNonFlags.String())
	assert.Equal(t, "stop", StopAtNonFlag.String())
	assert.Equal(t, "unknown", NonFlagPolicy(9).String())
}
