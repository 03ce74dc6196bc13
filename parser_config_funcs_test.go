package getarg

import (
	"errors"
	"testing"

	"github.com/cagecoin-project/getarg/env"
	"github.com/cagecoin-project/getarg/errs"
	"github.com/cagecoin-project/getarg/parse"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParserWith(t *testing.T) {
	resolver := env.MapResolver{}
	p, err := NewParserWith(
		WithNonFlagPolicy(parse.StopAtNonFlag),
		WithSlashPrefix(true),
		WithLogger(zerolog.Nop()),
		WithEnv("CAGECOIN"),
		WithEnvResolver(resolver),
		WithEnvNameConverter(env.ToSnakeCase),
		WithConfigFlag("-conf", "cagecoin.conf"),
	)
	require.NoError(t, err)

	assert.Equal(t, parse.StopAtNonFlag, p.policy)
	assert.True(t, p.slashPrefix)
	assert.Equal(t, "CAGECOIN", p.envPrefix)
	assert.Equal(t, resolver, p.envResolver)
	assert.NotNil(t, p.envConvert)
	assert.Equal(t, "-conf", p.configFlag)
	assert.Equal(t, "cagecoin.conf", p.configDefault)
}

func TestNewParserWith_Error(t *testing.T) {
	p, err := NewParserWith(WithEnv("BAD PREFIX"))
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, errs.ErrEnvPrefix))
}

func TestWithConfigFile(t *testing.T) {
	p, err := NewParserWith(WithConfigFile("/etc/cagecoin.conf"))
	require.NoError(t, err)
	assert.Equal(t, "/etc/cagecoin.conf", p.configFile)

	p, err = NewParserWith(WithConfigFlag("-conf"))
	require.NoError(t, err)
	assert.Equal(t, "-conf", p.configFlag)
	assert.Empty(t, p.configDefault)
}
