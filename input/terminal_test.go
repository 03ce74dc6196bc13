package input

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/cagecoin-project/getarg/errs"
	"github.com/stretchr/testify/assert"
)

type mockTerminal struct {
	password   []byte
	isTerminal bool
	err        error
}

func (m *mockTerminal) ReadPassword(fd int) ([]byte, error) {
	return m.password, m.err
}

func (m *mockTerminal) IsTerminal(fd int) bool {
	return m.isTerminal
}

func TestTerminalReader_ReadSecret(t *testing.T) {
	tests := []struct {
		name       string
		terminal   *mockTerminal
		want       string
		wantErr    error
		wantPrompt string
	}{
		{
			name:       "successful input",
			terminal:   &mockTerminal{password: []byte("s3cret"), isTerminal: true},
			want:       "s3cret",
			wantPrompt: "-rpcpassword: \n",
		},
		{
			name:       "empty input",
			terminal:   &mockTerminal{password: []byte(""), isTerminal: true},
			wantErr:    errs.ErrEmptySecret,
			wantPrompt: "-rpcpassword: \n",
		},
		{
			name:     "not a terminal",
			terminal: &mockTerminal{isTerminal: false},
			wantErr:  errs.ErrNotAttachedToTerminal,
		},
		{
			name:       "read failure",
			terminal:   &mockTerminal{isTerminal: true, err: io.ErrUnexpectedEOF},
			wantErr:    io.ErrUnexpectedEOF,
			wantPrompt: "-rpcpassword: \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewTerminalReader(&buf)
			r.Terminal = tt.terminal

			got, err := r.ReadSecret("-rpcpassword")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPrompt, buf.String())
		})
	}
}

func TestTerminalReader_CustomPrompt(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReader{
		Terminal: &mockTerminal{password: []byte("pw"), isTerminal: true},
		Out:      &buf,
		Prompt: func(name string) string {
			return "Enter value for " + name + " > "
		},
	}

	got, err := r.ReadSecret("-walletpassphrase")
	assert.NoError(t, err)
	assert.Equal(t, "pw", got)
	assert.Equal(t, "Enter value for -walletpassphrase > \n", buf.String())
}
