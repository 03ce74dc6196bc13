package i18n

import (
	"errors"
	"fmt"
	"sync"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider renders the message for key, formatted with args when given
type MessageProvider interface {
	GetMessage(key string, args ...interface{}) string
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support.
//
// Example usage:
//
//	err := NewError("getarg.error.config_read")
//	err = err.WithArgs("/etc/cagecoin.conf")
//	err = err.Wrap(originalError)
type TrError struct {
	// sentinel is shared by every copy made through WithArgs and Wrap
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
}

// BundleMessageProvider implements MessageProvider on top of a Bundle,
// following the bundle's current default language
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider returns a MessageProvider backed by b
func NewBundleMessageProvider(b *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: b}
}

// GetMessage formats key through the printer of the bundle's default language.
// Without args the raw message is returned so that verbs are left untouched.
func (p *BundleMessageProvider) GetMessage(key string, args ...interface{}) string {
	lang := p.bundle.DefaultLanguage()
	msg, ok := p.bundle.Message(lang, key)
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}

	return p.bundle.TL(lang, key, args...)
}

// NewError creates a new translatable sentinel error for key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the message in the provider's language, formatted with args if provided
func (e *TrError) Error() string {
	msg := getDefaultProvider().GetMessage(e.key, e.args...)

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by every TrError.
// Passing nil restores the provider backed by Default().
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	p := defaultProvider
	defaultProviderMux.RUnlock()

	if p != nil {
		return p
	}

	return NewBundleMessageProvider(Default())
}
