package getarg

import (
	"strings"

	"github.com/cagecoin-project/getarg/parse"
	"github.com/rs/zerolog"
)

const negationPrefix = "-no"

// Resolve builds a FlagMap from pairs in two passes. The first stores every
// pair, a later value replacing an earlier one. The second gives each
// -no<name>=v whose -<name> was not stored the inverse of v: "1" when v is
// exactly "0", "0" otherwise. Negations do not chain, and a bare -no is an
// ordinary flag.
func Resolve(pairs []parse.Pair) *FlagMap {
	return resolve(pairs, zerolog.Nop())
}

func resolve(pairs []parse.Pair, logger zerolog.Logger) *FlagMap {
	m := newFlagMap()
	for _, p := range pairs {
		m.values.Set(p.Name, p.Value)
	}

	// names is taken before expansion so inserted flags are never negations themselves
	for _, name := range m.Names() {
		positive, ok := positiveOf(name)
		if !ok {
			continue
		}
		if m.IsArgSet(positive) {
			logger.Debug().Str("flag", name).Str("positive", positive).Msg("negation suppressed by explicit flag")
			continue
		}

		value := "0"
		if m.GetArg(name, "") == "0" {
			value = "1"
		}
		m.values.Set(positive, value)
		logger.Debug().Str("flag", name).Str("positive", positive).Str("value", value).Msg("negation expanded")
	}

	return m
}

// positiveOf returns "-foo" for "-nofoo"
func positiveOf(name string) (string, bool) {
	if !strings.HasPrefix(name, negationPrefix) || len(name) == len(negationPrefix) {
		return "", false
	}

	return "-" + name[len(negationPrefix):], true
}
