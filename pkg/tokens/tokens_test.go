package tokens

import "testing"

func TestEstimate(t *testing.T) {
	t.Run("Empty Text", func(t *testing.T) {
		if got := Default().Estimate(""); got != 0 {
			t.Errorf("empty text estimates 0, got %d", got)
		}
	})

	t.Run("Nonzero For Prose", func(t *testing.T) {
		got := Default().Estimate("Please send the quarterly report by Friday.")
		if got <= 0 {
			t.Errorf("expected a positive estimate, got %d", got)
		}
	})

	t.Run("Heuristic Fallback", func(t *testing.T) {
		e := &Estimator{fallback: true}
		if got := e.Estimate("abcdefgh"); got != 2 {
			t.Errorf("8 chars at 4 chars/token is 2, got %d", got)
		}
		if got := e.Estimate("abcdefghi"); got != 3 {
			t.Errorf("9 chars must round up to 3, got %d", got)
		}
	})

	t.Run("Unknown Encoding Falls Back", func(t *testing.T) {
		e := NewEstimator("no-such-encoding")
		if !e.Fallback() {
			t.Errorf("unknown encoding must flip to the heuristic")
		}
		if got := e.Estimate("abcd"); got != 1 {
			t.Errorf("expected heuristic estimate 1, got %d", got)
		}
	})
}
