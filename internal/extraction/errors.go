package extraction

import (
	"errors"
	"fmt"

	"tasklens/internal/model"
)

// Domain-specific errors for the extraction feature. All four kinds
// propagate unmodified to the delivery layer, which maps them to the remedy
// the user can actually take (wait, open settings, retry).
var (
	// ErrQuotaExceeded means the daily extraction limit was reached before
	// any network call was made.
	ErrQuotaExceeded = errors.New("daily extraction limit reached")

	// ErrMissingAPIKey means no API key is configured for the selected
	// provider. Checked before any network call.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrParse means the provider responded but its content could not be
	// reduced to valid structured tasks.
	ErrParse = errors.New("failed to parse AI response")

	// ErrEmptyContent means the extraction request carried no content.
	ErrEmptyContent = errors.New("content is empty")

	// ErrResultNotFound means no extraction result exists under the given id.
	ErrResultNotFound = errors.New("extraction result not found")
)

// MissingKeyError carries which provider the missing key belongs to, so the
// user can be pointed at the right settings field.
type MissingKeyError struct {
	Provider model.AIProvider
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing API key for provider %s", e.Provider)
}

func (e *MissingKeyError) Unwrap() error {
	return ErrMissingAPIKey
}
