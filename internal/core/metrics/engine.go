package metrics

import (
	"github.com/antzucaro/matchr"
	"github.com/hbollon/go-edlib"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/textmatch/go_name_similarity/internal/core/domain"
	"github.com/textmatch/go_name_similarity/internal/ports"
)

// Bundle holds the raw similarity measures between one pair of strings.
// Every field is on a 0-100 scale except Phonetic.
type Bundle struct {
	// Ratio is the plain edit-distance similarity of the normalized strings.
	Ratio float64
	// QuickRatio is the fast rough similarity.
	QuickRatio float64
	// TokenSort and TokenSet are word-order-insensitive similarities, used
	// only as meta scorer inputs.
	TokenSort float64
	TokenSet  float64
	// Weighted is the multi-strategy composite ratio.
	Weighted float64
	// WeightedDateStripped is Weighted recomputed on the date-stripped
	// variants, consumed only by the date adjustment.
	WeightedDateStripped float64
	// DamerauLevenshtein is the transposition-tolerant similarity.
	DamerauLevenshtein float64
	// JaroWinkler is the prefix-weighted similarity.
	JaroWinkler float64
	// OriginalRatio is the plain similarity of the raw, unnormalized inputs.
	OriginalRatio float64
	// Phonetic is the tri-state soundex comparison of the normalized strings.
	Phonetic domain.PhoneticSignal
}

// Engine computes the fixed set of similarity measures for a comparison.
type Engine struct {
	encoder ports.PhoneticEncoder
	logger  ports.Logger
}

// NewEngine creates a metric engine backed by the shared phonetic encoder.
func NewEngine(encoder ports.PhoneticEncoder, logger ports.Logger) *Engine {
	return &Engine{
		encoder: encoder,
		logger:  logger,
	}
}

// Measure computes every metric for the pair. All measures are symmetric,
// and degenerate (empty) strings yield low or zero scores without error.
func (e *Engine) Measure(first, second domain.NormalizedText, rawFirst, rawSecond string) Bundle {
	b := Bundle{
		Ratio:                float64(fuzzy.Ratio(first.Text, second.Text)),
		QuickRatio:           float64(fuzzy.QRatio(first.Text, second.Text)),
		TokenSort:            float64(fuzzy.TokenSortRatio(first.Text, second.Text)),
		TokenSet:             float64(fuzzy.TokenSetRatio(first.Text, second.Text)),
		Weighted:             float64(fuzzy.WRatio(first.Text, second.Text)),
		WeightedDateStripped: float64(fuzzy.WRatio(first.DateStripped, second.DateStripped)),
		DamerauLevenshtein:   damerauLevenshtein(first.Text, second.Text),
		JaroWinkler:          jaroWinkler(first.Text, second.Text),
		OriginalRatio:        float64(fuzzy.Ratio(rawFirst, rawSecond)),
		Phonetic:             e.encoder.Compare(first.Text, second.Text),
	}

	e.logger.Debug("Computed metric bundle",
		"ratio", b.Ratio,
		"quick_ratio", b.QuickRatio,
		"weighted", b.Weighted,
		"damerau_levenshtein", b.DamerauLevenshtein,
		"jaro_winkler", b.JaroWinkler,
		"phonetic", b.Phonetic.String(),
	)

	return b
}

// damerauLevenshtein returns the normalized Damerau-Levenshtein similarity
// on a 0-100 scale. An encoder-level failure degrades to 0 rather than
// aborting the comparison.
func damerauLevenshtein(first, second string) float64 {
	if first == second {
		return 100
	}
	sim, err := edlib.StringsSimilarity(first, second, edlib.DamerauLevenshtein)
	if err != nil {
		return 0
	}
	return float64(sim) * 100
}

// jaroWinkler returns the Jaro-Winkler similarity on a 0-100 scale, with the
// standard 0.1 prefix weight.
func jaroWinkler(first, second string) float64 {
	if first == "" && second == "" {
		return 100
	}
	return matchr.JaroWinkler(first, second, false) * 100
}
