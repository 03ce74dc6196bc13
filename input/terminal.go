// Package input reads values that must not be echoed, such as an RPC
// password whose flag was given without a value.
package input

import (
	"fmt"
	"io"
	"os"

	"github.com/cagecoin-project/getarg/errs"
	"golang.org/x/term"
)

// Terminal abstracts the terminal operations needed to read a secret
type Terminal interface {
	ReadPassword(fd int) ([]byte, error)
	IsTerminal(fd int) bool
}

// DefaultTerminal implements real terminal operations
type DefaultTerminal struct{}

// ReadPassword reads a line from the terminal without echo
func (t *DefaultTerminal) ReadPassword(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

// IsTerminal checks if fd is attached to a real terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// SecretReader obtains the value of a secret flag
type SecretReader interface {
	ReadSecret(name string) (string, error)
}

// TerminalReader prompts on Out and reads the secret from stdin
type TerminalReader struct {
	Terminal Terminal
	Out      io.Writer
	// Prompt renders the prompt for a flag name. Defaults to "<name>: ".
	Prompt func(name string) string
	fd     int
}

// NewTerminalReader returns a TerminalReader bound to stdin writing prompts to out
func NewTerminalReader(out io.Writer) *TerminalReader {
	return &TerminalReader{
		Terminal: &DefaultTerminal{},
		Out:      out,
		fd:       int(os.Stdin.Fd()),
	}
}

// ReadSecret prompts for name and reads a non-empty secret
func (r *TerminalReader) ReadSecret(name string) (string, error) {
	terminal := r.Terminal
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}
	out := r.Out
	if out == nil {
		out = io.Discard
	}

	if !terminal.IsTerminal(r.fd) {
		return "", errs.ErrNotAttachedToTerminal.WithArgs(name)
	}

	prompt := name + ": "
	if r.Prompt != nil {
		prompt = r.Prompt(name)
	}
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return "", errs.ErrReadSecret.WithArgs(name).Wrap(err)
	}

	secret, err := terminal.ReadPassword(r.fd)
	_, _ = fmt.Fprintln(out)
	if err != nil {
		return "", errs.ErrReadSecret.WithArgs(name).Wrap(err)
	}
	if len(secret) == 0 {
		return "", errs.ErrEmptySecret.WithArgs(name)
	}

	return string(secret), nil
}
