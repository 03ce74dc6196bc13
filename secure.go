package getarg

import (
	"os"

	"github.com/cagecoin-project/getarg/errs"
	"github.com/cagecoin-project/getarg/input"
)

// GetSecretArg returns the value of a flag carrying a secret. When the flag is
// given without a value the secret is read through r, which defaults to a
// prompt on the controlling terminal.
func (m *FlagMap) GetSecretArg(name string, r input.SecretReader) (string, error) {
	v, ok := m.Lookup(name)
	if !ok {
		return "", errs.ErrFlagNotFound.WithArgs(name)
	}
	if v != "" {
		return v, nil
	}

	if r == nil {
		r = input.NewTerminalReader(os.Stderr)
	}

	return r.ReadSecret(name)
}
