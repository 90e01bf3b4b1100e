package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProvider indicates a provider name outside the closed set
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrEmptyCompletion indicates the provider returned no usable text
	ErrEmptyCompletion = errors.New("empty completion")
)

// ProviderError wraps provider-specific failures: a non-2xx HTTP response
// (body preserved in the wrapped error for diagnostics) or a transport
// failure with no structured body.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
