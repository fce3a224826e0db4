package score

import (
	"errors"

	"github.com/textmatch/go_name_similarity/internal/core/domain"
	"github.com/textmatch/go_name_similarity/internal/core/metrics"
)

// AdjustConfig holds the empirically chosen thresholds for the heuristic
// corrections. They are plain constants to recalibrate, not derived from a
// model.
type AdjustConfig struct {
	// PhoneticPenalty is subtracted from the meta score for
	// dissimilar-sounding pairs.
	PhoneticPenalty float64
	// PhoneticBonus is added for similar-sounding pairs whose meta score is
	// below PhoneticBonusCeiling.
	PhoneticBonus        float64
	PhoneticBonusCeiling float64
	// DivergenceLow and DivergenceHigh bound the weighted-vs-meta gap that
	// pulls the meta score up to weighted minus DivergenceDiscount.
	DivergenceLow      float64
	DivergenceHigh     float64
	DivergenceDiscount float64
	// DivergenceFloor is the gap at which the meta score is replaced by the
	// weighted similarity outright. It overlaps DivergenceHigh; the bounded
	// branch is evaluated first and wins inside the overlap. That branch
	// order is load-bearing and must not be reordered.
	DivergenceFloor float64
	// DateBonus is added to the weighted similarity when both sides carry a
	// date and weighted is below DateBonusCeiling.
	DateBonus        float64
	DateBonusCeiling float64
	// DateGap and DateDiscount govern falling back to the date-stripped
	// weighted similarity.
	DateGap      float64
	DateDiscount float64
}

// DefaultAdjustConfig returns the default correction thresholds.
func DefaultAdjustConfig() AdjustConfig {
	return AdjustConfig{
		PhoneticPenalty:      3,
		PhoneticBonus:        5,
		PhoneticBonusCeiling: 95,
		DivergenceLow:        20,
		DivergenceHigh:       35,
		DivergenceDiscount:   10,
		DivergenceFloor:      30,
		DateBonus:            5,
		DateBonusCeiling:     85,
		DateGap:              10,
		DateDiscount:         5,
	}
}

// Validate checks if the configuration is valid.
func (c AdjustConfig) Validate() error {
	if c.DivergenceLow >= c.DivergenceHigh {
		return errors.New("divergence low bound must be below the high bound")
	}
	return nil
}

// Adjust applies the ordered heuristic corrections to the meta score and the
// weighted similarity, producing the final score and a possibly revised
// weighted similarity. The corrections are sequential and non-commutative:
//
//  1. Phonetic correction on the meta score.
//  2. Divergence correction, using the gap between the weighted similarity
//     and the corrected meta score.
//  3. Date correction on the weighted similarity itself, when both sides
//     contain a date-like substring.
//
// The final score is floored at 0 before being returned.
func Adjust(meta float64, b metrics.Bundle, bothDated bool, cfg AdjustConfig) (final, weighted float64) {
	final = meta
	weighted = b.Weighted

	switch b.Phonetic {
	case domain.PhoneticDissimilar:
		final -= cfg.PhoneticPenalty
	case domain.PhoneticSimilar:
		if final < cfg.PhoneticBonusCeiling {
			final += cfg.PhoneticBonus
		}
	}

	if d := weighted - final; d > cfg.DivergenceLow && d < cfg.DivergenceHigh {
		final = weighted - cfg.DivergenceDiscount
	} else if d >= cfg.DivergenceFloor {
		final = weighted
	}

	if bothDated {
		if weighted < cfg.DateBonusCeiling {
			weighted += cfg.DateBonus
		} else if (b.WeightedDateStripped-cfg.DateDiscount)-weighted > cfg.DateGap {
			weighted = b.WeightedDateStripped - cfg.DateDiscount
		}
	}

	if final < 0 {
		final = 0
	}
	return final, weighted
}
