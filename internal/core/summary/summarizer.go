package summary

import (
	"errors"
	"math"
	"strings"

	"github.com/textmatch/go_name_similarity/internal/core/domain"
)

// Tier maps a minimum final score to a base sentence.
type Tier struct {
	Min      float64
	Sentence string
}

// Config holds the tier table and the thresholds gating the modifier
// clauses. All values are overridable.
type Config struct {
	// Tiers must be ordered by descending Min; the first tier whose Min is
	// not above the final score supplies the base sentence.
	Tiers []Tier
	// Fallback is the sentence used below the lowest tier.
	Fallback string
	// Identical is the single sentence used when the two strings are the
	// same after cleaning; it short-circuits the tiers and modifiers.
	Identical string
	// SpellingGap triggers the spelling note when |ratio - damerauLev|
	// exceeds it.
	SpellingGap float64
	// NormalizationGain triggers the normalization note when the original
	// similarity plus the gain is still below the final score.
	NormalizationGain float64
	// TokenOrderGap triggers the token-order note when the weighted
	// similarity exceeds the final score by more than it.
	TokenOrderGap float64
}

// DefaultConfig returns the default tier table and modifier thresholds.
func DefaultConfig() Config {
	return Config{
		Tiers: []Tier{
			{Min: 95, Sentence: "The strings are essentially identical."},
			{Min: 85, Sentence: "The strings show very strong similarity and are likely referring to the same entity."},
			{Min: 70, Sentence: "The strings are moderately similar with some variations, possibly the same entity."},
			{Min: 50, Sentence: "The strings show mild similarity and may be related, but it is not definitive."},
			{Min: 30, Sentence: "The similarity is low — they are likely different entities."},
		},
		Fallback:          "The strings are highly dissimilar — almost certainly different entities.",
		Identical:         "Both strings after cleaning are completely identical",
		SpellingGap:       20,
		NormalizationGain: 20,
		TokenOrderGap:     15,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	for i := 1; i < len(c.Tiers); i++ {
		if c.Tiers[i].Min >= c.Tiers[i-1].Min {
			return errors.New("tiers must be ordered by descending minimum score")
		}
	}
	return nil
}

// Summarize narrates a finalized comparison. It reads the bundle and never
// feeds back into scoring; a sentence is produced for every possible input.
func Summarize(c domain.Comparison, cfg Config) string {
	if c.Phonetic == domain.PhoneticSame {
		return cfg.Identical
	}

	base := cfg.Fallback
	for _, tier := range cfg.Tiers {
		if c.FinalScore >= tier.Min {
			base = tier.Sentence
			break
		}
	}

	var extras []string
	if c.Phonetic == domain.PhoneticSimilar {
		extras = append(extras, "Names sound phonetically similar.")
	} else if c.Phonetic == domain.PhoneticDissimilar {
		extras = append(extras, "Strings sound phonetically dissimilar.")
	}
	if math.Abs(c.Ratio-c.DamerauLevenshtein) > cfg.SpellingGap {
		extras = append(extras, "Significant spelling/structural differences detected.")
	}
	if c.OriginalSimilarity+cfg.NormalizationGain < c.FinalScore {
		extras = append(extras, "Normalization greatly improved similarity (case, extensions, company words, dates removed).")
	}
	if c.WeightedSimilarity-c.FinalScore > cfg.TokenOrderGap {
		extras = append(extras, "Token order differences heavily affect matching.")
	}

	if len(extras) == 0 {
		return base
	}
	return base + " " + strings.Join(extras, " ")
}
