package score

import (
	"errors"

	"github.com/textmatch/go_name_similarity/internal/core/metrics"
)

// Weights controls the linear blend of metrics in the meta score. The
// defaults deliberately favor edit-distance and prefix-aware metrics over
// token-order metrics: names and filenames rarely need word-order tolerance
// but benefit from typo and transliteration tolerance.
type Weights struct {
	TokenSort          float64
	TokenSet           float64
	Weighted           float64
	DamerauLevenshtein float64
	JaroWinkler        float64
}

// DefaultWeights returns the default metric weighting.
func DefaultWeights() Weights {
	return Weights{
		TokenSort:          0.05,
		TokenSet:           0.05,
		Weighted:           0.10,
		DamerauLevenshtein: 0.40,
		JaroWinkler:        0.40,
	}
}

// Validate checks if the weights are valid.
func (w Weights) Validate() error {
	if w.TokenSort < 0 || w.TokenSet < 0 || w.Weighted < 0 ||
		w.DamerauLevenshtein < 0 || w.JaroWinkler < 0 {
		return errors.New("weights must not be negative")
	}
	return nil
}

// Meta blends five metrics into one composite score. For 0-100 inputs and
// weights summing to 1.0 the result stays in range; it is not hard-clamped.
func Meta(b metrics.Bundle, w Weights) float64 {
	return b.TokenSort*w.TokenSort +
		b.TokenSet*w.TokenSet +
		b.Weighted*w.Weighted +
		b.DamerauLevenshtein*w.DamerauLevenshtein +
		b.JaroWinkler*w.JaroWinkler
}
