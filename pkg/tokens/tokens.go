// Package tokens estimates the token footprint of prompt text so callers
// can log how close an extraction runs to provider ceilings.
package tokens

import (
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding covers the chat model families both providers serve.
const DefaultEncoding = "cl100k_base"

// heuristicCharsPerToken approximates English prose when the BPE data is
// unavailable (offline environments have no tiktoken cache).
const heuristicCharsPerToken = 4

// Estimator counts tokens with tiktoken, falling back to a character
// heuristic when the encoding cannot be loaded.
type Estimator struct {
	encoder  *tiktoken.Tiktoken
	fallback bool
}

var (
	defaultEstimator     *Estimator
	defaultEstimatorOnce sync.Once
)

// Default returns the shared estimator for DefaultEncoding.
func Default() *Estimator {
	defaultEstimatorOnce.Do(func() {
		defaultEstimator = NewEstimator(DefaultEncoding)
	})
	return defaultEstimator
}

// NewEstimator creates an estimator for the given encoding name.
func NewEstimator(encoding string) *Estimator {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return &Estimator{fallback: true}
	}
	return &Estimator{encoder: enc}
}

// Estimate returns the approximate token count of text.
func (e *Estimator) Estimate(text string) int {
	if text == "" {
		return 0
	}
	if e.fallback || e.encoder == nil {
		return (len(text) + heuristicCharsPerToken - 1) / heuristicCharsPerToken
	}
	return len(e.encoder.Encode(text, nil, nil))
}

// Fallback reports whether the estimator is running on the heuristic.
func (e *Estimator) Fallback() bool {
	return e.fallback
}
