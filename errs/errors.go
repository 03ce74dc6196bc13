// Package errs holds the sentinel errors raised around the argument core:
// command line splitting, configuration sources and secret prompts. Resolving
// flags and reading them through the typed accessors never fails.
package errs

import "github.com/cagecoin-project/getarg/i18n"

var (
	ErrFlagNotFound     = i18n.NewError(ErrFlagNotFoundKey)
	ErrSplitCommandLine = i18n.NewError(ErrSplitCommandLineKey)
	ErrEnvPrefix        = i18n.NewError(ErrEnvPrefixKey)
)

// Configuration file errors
var (
	ErrConfigRead   = i18n.NewError(ErrConfigReadKey)
	ErrConfigParse  = i18n.NewError(ErrConfigParseKey)
	ErrConfigFormat = i18n.NewError(ErrConfigFormatKey)
	ErrConfigLine   = i18n.NewError(ErrConfigLineKey)
	ErrConfigValue  = i18n.NewError(ErrConfigValueKey)
)

// Secret input errors
var (
	ErrNotAttachedToTerminal = i18n.NewError(ErrNotAttachedToTerminalKey)
	ErrEmptySecret           = i18n.NewError(ErrEmptySecretKey)
	ErrReadSecret            = i18n.NewError(ErrReadSecretKey)
)
