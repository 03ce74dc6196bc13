package errs

// PrefixKey is the prefix of every translation key owned by this module
const PrefixKey = "getarg"

const (
	ErrorPrefixKey  = PrefixKey + ".error"
	ConfigPrefixKey = ErrorPrefixKey + ".config"
	SecretPrefixKey = ErrorPrefixKey + ".secret"
)

const (
	ErrFlagNotFoundKey     = ErrorPrefixKey + ".flag_not_found"
	ErrSplitCommandLineKey = ErrorPrefixKey + ".split_command_line"
	ErrEnvPrefixKey        = ErrorPrefixKey + ".env_prefix"

	ErrConfigReadKey   = ConfigPrefixKey + ".read"
	ErrConfigParseKey  = ConfigPrefixKey + ".parse"
	ErrConfigFormatKey = ConfigPrefixKey + ".format"
	ErrConfigLineKey   = ConfigPrefixKey + ".line"
	ErrConfigValueKey  = ConfigPrefixKey + ".value"

	ErrNotAttachedToTerminalKey = SecretPrefixKey + ".not_a_terminal"
	ErrEmptySecretKey           = SecretPrefixKey + ".empty"
	ErrReadSecretKey            = SecretPrefixKey + ".read"
)
