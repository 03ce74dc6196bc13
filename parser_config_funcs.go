package getarg

import (
	"github.com/cagecoin-project/getarg/env"
	"github.com/cagecoin-project/getarg/parse"
	"github.com/rs/zerolog"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithNonFlagPolicy(parse.StopAtNonFlag),
//		WithEnv("CAGECOIN"),
//		WithConfigFlag("-conf", "cagecoin.conf"))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	p := NewParser()

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	return p, err
}

// WithNonFlagPolicy decides whether parsing skips non-flag tokens or stops at the first one
func WithNonFlagPolicy(policy parse.NonFlagPolicy) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetNonFlagPolicy(policy)
	}
}

// WithSlashPrefix accepts '/' as a flag prefix
func WithSlashPrefix(enabled bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetSlashPrefix(enabled)
	}
}

// WithLogger sets the logger receiving debug events
func WithLogger(logger zerolog.Logger) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetLogger(logger)
	}
}

// WithEnv reads flags from environment variables starting with prefix + "_"
func WithEnv(prefix string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		*err = p.SetEnv(prefix)
	}
}

// WithEnvResolver replaces the process environment as the variable source
func WithEnvResolver(resolver env.Resolver) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetEnvResolver(resolver)
	}
}

// WithEnvNameConverter sets how variable names map to flag names
func WithEnvNameConverter(convert env.NameConverter) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetEnvNameConverter(convert)
	}
}

// WithConfigFile reads flags from the file at path. The file must exist.
func WithConfigFile(path string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetConfigFile(path)
	}
}

// WithConfigFlag reads the configuration file path from the flag named name.
// The optional default path is used when the flag is not given; a missing
// default file is ignored.
func WithConfigFlag(name string, defaultPath ...string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		def := ""
		if len(defaultPath) > 0 {
			def = defaultPath[0]
		}
		p.SetConfigFlag(name, def)
	}
}
