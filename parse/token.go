package parse

import (
	"strings"

	"github.com/rs/zerolog"
)

// Pair is a single normalized flag. Name keeps exactly one leading dash and
// its original case; Value is empty when the token carried no '='.
type Pair struct {
	Name  string
	Value string
}

// Kind classifies a raw token
type Kind int

const (
	KindFlag      Kind = iota // KindFlag is a well-formed flag producing a Pair
	KindNonFlag               // KindNonFlag does not start with a dash
	KindMalformed             // KindMalformed starts with a dash but has no name ("-", "--", "-=x")
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindNonFlag:
		return "non-flag"
	case KindMalformed:
		return "malformed"
	}
	return "unknown"
}

// NonFlagPolicy decides what happens when the token stream contains a token
// which is not a flag
type NonFlagPolicy int

const (
	// SkipNonFlags ignores non-flag tokens and keeps scanning
	SkipNonFlags NonFlagPolicy = iota
	// StopAtNonFlag ends flag processing at the first non-flag token
	StopAtNonFlag
)

// String returns the string representation of a NonFlagPolicy
func (p NonFlagPolicy) String() string {
	switch p {
	case SkipNonFlags:
		return "skip"
	case StopAtNonFlag:
		return "stop"
	}
	return "unknown"
}

// Tokenizer turns raw command-line tokens into Pairs
type Tokenizer struct {
	policy      NonFlagPolicy
	slashPrefix bool
	logger      zerolog.Logger
}

// TokenizeOption configures a Tokenizer
type TokenizeOption func(t *Tokenizer)

// WithNonFlagPolicy sets how non-flag tokens are treated (SkipNonFlags by default)
func WithNonFlagPolicy(policy NonFlagPolicy) TokenizeOption {
	return func(t *Tokenizer) {
		t.policy = policy
	}
}

// WithSlashPrefix treats a leading '/' like a leading '-'. Disabled by default.
func WithSlashPrefix(enabled bool) TokenizeOption {
	return func(t *Tokenizer) {
		t.slashPrefix = enabled
	}
}

// WithLogger sets the logger receiving debug events about dropped tokens
func WithLogger(logger zerolog.Logger) TokenizeOption {
	return func(t *Tokenizer) {
		t.logger = logger
	}
}

// NewTokenizer returns a Tokenizer configured with opts
func NewTokenizer(opts ...TokenizeOption) *Tokenizer {
	t := &Tokenizer{
		policy:      SkipNonFlags,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Tokenize is a shortcut for NewTokenizer(opts...).Tokenize(tokens)
func Tokenize(tokens []string, opts ...TokenizeOption) []Pair {
	return NewTokenizer(opts...).Tokenize(tokens)
}

// Tokenize converts tokens to Pairs preserving their order. Malformed tokens
// are dropped; non-flag tokens are handled according to the NonFlagPolicy.
func (t *Tokenizer) Tokenize(tokens []string) []Pair {
	pairs := make([]Pair, 0, len(tokens))
	state := NewState(tokens)

	for {
		token, ok := state.Advance()
		if !ok {
			break
		}

		pair, kind := t.Normalize(token)
		switch kind {
		case KindFlag:
			pairs = append(pairs, pair)
		case KindMalformed:
			t.logger.Debug().Str("token", token).Int("pos", state.Pos()).Msg("dropping malformed flag")
		case KindNonFlag:
			if t.policy == StopAtNonFlag {
				pos := state.Pos()
				rest := state.Drain()
				t.logger.Debug().Str("token", token).Int("pos", pos).
					Int("ignored", len(rest)+1).Msg("stopping at non-flag token")
				return pairs
			}
			t.logger.Debug().Str("token", token).Int("pos", state.Pos()).Msg("skipping non-flag token")
		}
	}

	return pairs
}

// Normalize converts a single token to a Pair. Only KindFlag results carry a
// meaningful Pair.
func (t *Tokenizer) Normalize(token string) (Pair, Kind) {
	if t.slashPrefix && strings.HasPrefix(token, "/") {
		token = "-" + token[1:]
	}

	if !strings.HasPrefix(token, "-") {
		return Pair{}, KindNonFlag
	}

	if strings.HasPrefix(token, "--") {
		token = token[1:]
	}

	name, value, _ := strings.Cut(token, "=")
	if len(name) < 2 {
		return Pair{}, KindMalformed
	}

	return Pair{Name: name, Value: value}, KindFlag
}
