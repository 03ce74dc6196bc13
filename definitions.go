package getarg

import (
	"github.com/cagecoin-project/getarg/env"
	"github.com/cagecoin-project/getarg/parse"
	"github.com/rs/zerolog"
	orderedmap "github.com/wk8/go-ordered-map"
)

// Parser turns process arguments and lower-precedence sources into a FlagMap.
// A Parser is not modified by parsing and may be reused.
type Parser struct {
	policy      parse.NonFlagPolicy
	slashPrefix bool
	logger      zerolog.Logger

	envPrefix   string
	envResolver env.Resolver
	envConvert  env.NameConverter

	configFile    string
	configFlag    string
	configDefault string
}

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(p *Parser, err *error)

// FlagMap holds resolved flags keyed by name (leading dash included).
// It is never modified after construction and can be shared between
// goroutines; the soft setters and Merge return new maps.
type FlagMap struct {
	values *orderedmap.OrderedMap
}
