// Package env turns prefixed environment variables into flag tokens.
//
// With prefix "CAGECOIN", CAGECOIN_RPCUSER=alice becomes "-rpcuser=alice" and
// CAGECOIN_NO_LISTEN=1 becomes "-nolisten=1".
package env

import (
	"os"
	"sort"
	"strings"

	"github.com/cagecoin-project/getarg/errs"
	"github.com/iancoleman/strcase"
)

// Resolver defines an interface for environment resolution.
type Resolver interface {
	// Get returns the value of the environment variable named by the key.
	// It returns an empty string if the variable is not present.
	Get(key string) string

	// Environ returns a slice of strings in the form "key=value" representing the environment,
	// similar to os.Environ.
	Environ() []string
}

// DefaultEnvResolver is the default implementation of the Resolver interface
// that encapsulates environment resolution using the os package.
type DefaultEnvResolver struct{}

// Get returns the value of the environment variable associated with the given key.
func (r *DefaultEnvResolver) Get(key string) string {
	return os.Getenv(key)
}

// Environ returns a copy of strings representing the environment, as "key=value" pairs.
func (r *DefaultEnvResolver) Environ() []string {
	return os.Environ()
}

// MapResolver is an in-memory Resolver
type MapResolver map[string]string

// Get returns the value stored for key, or an empty string.
func (m MapResolver) Get(key string) string {
	return m[key]
}

// Environ returns the entries as "key=value" pairs in no particular order.
func (m MapResolver) Environ() []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}

// NameConverter converts the part of a variable name following the prefix to a flag name (without dash)
type NameConverter func(string) string

var (
	// ToLowerCase drops underscores and lower cases: "RPC_USER" -> "rpcuser"
	ToLowerCase NameConverter = func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "_", ""))
	}

	// ToLowerCamel converts to lower camel case: "RPC_USER" -> "rpcUser"
	ToLowerCamel NameConverter = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToKebabCase converts to kebab case: "RPC_USER" -> "rpc-user"
	ToKebabCase NameConverter = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts to snake case: "RPC_USER" -> "rpc_user"
	ToSnakeCase NameConverter = func(s string) string {
		return strcase.ToSnake(s)
	}

	DefaultNameConverter = ToLowerCase
)

// negationPrefix marks a variable naming a negated flag
const negationPrefix = "NO_"

// ValidatePrefix reports whether prefix can be used to select variables
func ValidatePrefix(prefix string) error {
	if prefix == "" || strings.ContainsAny(prefix, "= \t") {
		return errs.ErrEnvPrefix.WithArgs(prefix)
	}
	return nil
}

// Tokens returns a "-name=value" token for every variable named PREFIX_REST,
// sorted by variable name. A REST starting with "NO_" keeps the negation in
// front of the converted name so that the usual -no handling applies.
func Tokens(r Resolver, prefix string, convert NameConverter) ([]string, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return nil, err
	}
	if r == nil {
		r = &DefaultEnvResolver{}
	}
	if convert == nil {
		convert = DefaultNameConverter
	}

	environ := r.Environ()
	sort.Strings(environ)

	lead := prefix + "_"
	tokens := make([]string, 0, len(environ))
	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(key, lead) {
			continue
		}

		name := flagName(key[len(lead):], convert)
		if name == "" {
			continue
		}
		tokens = append(tokens, "-"+name+"="+value)
	}

	return tokens, nil
}

func flagName(rest string, convert NameConverter) string {
	if strings.HasPrefix(rest, negationPrefix) && len(rest) > len(negationPrefix) {
		if base := convert(rest[len(negationPrefix):]); base != "" {
			return "no" + base
		}
		return ""
	}

	return convert(rest)
}
