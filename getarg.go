// Package getarg provides daemon style command-line processing.
//
// Flags are written -name or -name=value; a leading -- is the same as -.
// Every flag is stored as a string and read back through typed accessors:
//
//	GetArg - the raw value, or a default when the flag was not given
//	GetBoolArg - true unless the value is exactly "0"
//	GetIntArg - the leading integer of the value (0 when there is none)
//
// A flag -noname=v sets -name to the inverse of v unless -name itself was
// given, so "-nolisten" turns -listen off and "-listen -nolisten" leaves it on.
//
// Values may also come from prefixed environment variables and from a
// configuration file (key=value, YAML or HCL). The command line always wins
// over the environment, which wins over the file.
package getarg

import (
	"errors"
	"io/fs"

	"github.com/cagecoin-project/getarg/conf"
	"github.com/cagecoin-project/getarg/env"
	"github.com/cagecoin-project/getarg/errs"
	"github.com/cagecoin-project/getarg/parse"
	"github.com/rs/zerolog"
)

// NewParser returns a Parser which skips non-flag tokens, only accepts '-' as
// a flag prefix and reads no other source.
func NewParser() *Parser {
	return &Parser{
		policy:      parse.SkipNonFlags,
		logger:      zerolog.Nop(),
		envResolver: &env.DefaultEnvResolver{},
		envConvert:  env.DefaultNameConverter,
	}
}

// Parse resolves args with a default Parser
func Parse(args []string) *FlagMap {
	return NewParser().Parse(args)
}

// ParseString splits s into tokens and resolves them with a default Parser
func ParseString(s string) (*FlagMap, error) {
	return NewParser().ParseString(s)
}

// SetNonFlagPolicy sets how tokens not starting with a dash are handled
func (p *Parser) SetNonFlagPolicy(policy parse.NonFlagPolicy) {
	p.policy = policy
}

// SetSlashPrefix enables or disables '/' as a flag prefix
func (p *Parser) SetSlashPrefix(enabled bool) {
	p.slashPrefix = enabled
}

// SetLogger sets the logger receiving debug events
func (p *Parser) SetLogger(logger zerolog.Logger) {
	p.logger = logger
}

// SetEnv enables the environment source for variables named prefix + "_" + name
func (p *Parser) SetEnv(prefix string) error {
	if err := env.ValidatePrefix(prefix); err != nil {
		return err
	}
	p.envPrefix = prefix

	return nil
}

// SetEnvResolver replaces the variable source. nil restores the process environment.
func (p *Parser) SetEnvResolver(resolver env.Resolver) {
	if resolver == nil {
		resolver = &env.DefaultEnvResolver{}
	}
	p.envResolver = resolver
}

// SetEnvNameConverter sets how variable names map to flag names. nil restores env.DefaultNameConverter.
func (p *Parser) SetEnvNameConverter(convert env.NameConverter) {
	if convert == nil {
		convert = env.DefaultNameConverter
	}
	p.envConvert = convert
}

// SetConfigFile sets a configuration file which must exist
func (p *Parser) SetConfigFile(path string) {
	p.configFile = path
}

// SetConfigFlag names the flag holding the configuration file path and the
// path used when the flag is absent
func (p *Parser) SetConfigFlag(name, defaultPath string) {
	p.configFlag = name
	p.configDefault = defaultPath
}

// Parse resolves command-line tokens (program name excluded). Other sources
// are not consulted; see Load.
func (p *Parser) Parse(args []string) *FlagMap {
	return resolve(p.tokenizer(p.policy).Tokenize(args), p.logger)
}

// ParseParameters is Parse for a full argument vector such as os.Args: the
// first element is the program name and is ignored.
func (p *Parser) ParseParameters(argv []string) *FlagMap {
	if len(argv) > 0 {
		argv = argv[1:]
	}

	return p.Parse(argv)
}

// ParseString splits s into tokens the way the platform shell would and
// resolves them.
func (p *Parser) ParseString(s string) (*FlagMap, error) {
	args, err := parse.Split(s)
	if err != nil {
		return nil, errs.ErrSplitCommandLine.WithArgs(s).Wrap(err)
	}

	return p.Parse(args), nil
}

// Load resolves args and fills in flags they lack from the environment and
// then from the configuration file.
func (p *Parser) Load(args []string) (*FlagMap, error) {
	flags := p.Parse(args)

	if p.envPrefix != "" {
		tokens, err := env.Tokens(p.envResolver, p.envPrefix, p.envConvert)
		if err != nil {
			return nil, err
		}
		flags = p.mergeSource(flags, "environment", tokens)
	}

	path, explicit := p.configPath(flags)
	if path == "" {
		return flags, nil
	}

	tokens, err := conf.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			p.logger.Debug().Str("path", path).Msg("default configuration file not found")
			return flags, nil
		}
		return nil, err
	}

	return p.mergeSource(flags, path, tokens), nil
}

// configPath returns the configuration file to read and whether it was named
// explicitly (not through the configuration flag's default).
func (p *Parser) configPath(flags *FlagMap) (string, bool) {
	if p.configFlag != "" {
		if path := flags.GetArg(p.configFlag, ""); path != "" {
			return path, true
		}
	}
	if p.configFile != "" {
		return p.configFile, true
	}

	return p.configDefault, false
}

func (p *Parser) mergeSource(flags *FlagMap, source string, tokens []string) *FlagMap {
	lower := resolve(p.tokenizer(parse.SkipNonFlags).Tokenize(tokens), p.logger)
	merged := flags.Merge(lower)
	p.logger.Debug().Str("source", source).Int("flags", lower.Len()).
		Int("added", merged.Len()-flags.Len()).Msg("source merged")

	return merged
}

func (p *Parser) tokenizer(policy parse.NonFlagPolicy) *parse.Tokenizer {
	return parse.NewTokenizer(
		parse.WithNonFlagPolicy(policy),
		parse.WithSlashPrefix(p.slashPrefix),
		parse.WithLogger(p.logger),
	)
}
