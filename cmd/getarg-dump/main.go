// Command getarg-dump prints the flags resolved from its own command line,
// environment and configuration file.
//
// Usage:
//
//	getarg-dump [-envprefix=GETARG] [-envcase=flat|camel|kebab|snake] [-conf=path]
//	            [-query=name[,name...]] [-stop] [-debug] [flags...]
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cagecoin-project/getarg"
	"github.com/cagecoin-project/getarg/env"
	"github.com/cagecoin-project/getarg/parse"
	"github.com/rs/zerolog"
)

const defaultEnvPrefix = "GETARG"

var converters = map[string]env.NameConverter{
	"flat":  env.ToLowerCase,
	"camel": env.ToLowerCamel,
	"kebab": env.ToKebabCase,
	"snake": env.ToSnakeCase,
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:], &env.DefaultEnvResolver{}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(out, errOut io.Writer, args []string, resolver env.Resolver) error {
	// the tool's own options are read from the command line alone
	opts := getarg.Parse(args)

	logger := zerolog.Nop()
	if opts.GetBoolArg("-debug", false) {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: errOut, NoColor: true}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}

	policy := parse.SkipNonFlags
	if opts.GetBoolArg("-stop", false) {
		policy = parse.StopAtNonFlag
	}

	caseName := opts.GetArg("-envcase", "flat")
	convert, ok := converters[caseName]
	if !ok {
		return fmt.Errorf("unknown -envcase %q", caseName)
	}

	parser, err := getarg.NewParserWith(
		getarg.WithLogger(logger),
		getarg.WithNonFlagPolicy(policy),
		getarg.WithEnv(opts.GetArg("-envprefix", defaultEnvPrefix)),
		getarg.WithEnvResolver(resolver),
		getarg.WithEnvNameConverter(convert),
		getarg.WithConfigFlag("-conf"),
	)
	if err != nil {
		return err
	}

	flags, err := parser.Load(args)
	if err != nil {
		return err
	}

	for _, name := range flags.Names() {
		value, _ := flags.Lookup(name)
		fmt.Fprintf(out, "%s=%s\n", name, value)
	}

	for _, name := range queryNames(flags.GetArg("-query", "")) {
		fmt.Fprintf(out, "%s: set=%t string=%q bool=%t int=%d\n",
			name,
			flags.IsArgSet(name),
			flags.GetArg(name, ""),
			flags.GetBoolArg(name, false),
			flags.GetIntArg(name, 0))
	}

	return nil
}

func queryNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "-") {
			name = "-" + name
		}
		names = append(names, name)
	}

	return names
}
