package domain

// PhoneticSignal classifies the phonetic relationship between the two
// normalized strings of a comparison.
type PhoneticSignal int

const (
	// PhoneticDissimilar means the strings sound different.
	PhoneticDissimilar PhoneticSignal = -1
	// PhoneticSame means the strings are identical after normalization,
	// so no phonetic comparison was needed.
	PhoneticSame PhoneticSignal = 0
	// PhoneticSimilar means the strings differ but share a phonetic encoding.
	PhoneticSimilar PhoneticSignal = 1
)

// String returns a human-readable label for the signal.
func (s PhoneticSignal) String() string {
	switch s {
	case PhoneticSame:
		return "same"
	case PhoneticSimilar:
		return "similar-sounding"
	case PhoneticDissimilar:
		return "dissimilar-sounding"
	}
	return "unknown"
}

// NormalizedText is the result of normalizing one raw input string.
type NormalizedText struct {
	// Text is the normalized form: lowercased, salutation, extension and
	// corporate suffixes removed, punctuation collapsed to single spaces.
	Text string
	// HasDate reports whether a 6- or 8-digit date-like substring was found.
	HasDate bool
	// DateStripped is Text with the date-like substring removed.
	DateStripped string
}

// Comparison holds every metric computed for one pair of strings.
// All scores are on a 0-100 scale except Phonetic.
type Comparison struct {
	// Original inputs as supplied by the caller.
	Original1 string
	Original2 string
	// Normalized forms the metrics were computed on.
	Normalized1 string
	Normalized2 string
	// Phonetic is the tri-state soundex comparison outcome.
	Phonetic PhoneticSignal
	// Ratio is the edit-distance character similarity of the normalized strings.
	Ratio float64
	// DamerauLevenshtein is the transposition-tolerant similarity.
	DamerauLevenshtein float64
	// JaroWinkler is the prefix-weighted similarity.
	JaroWinkler float64
	// WeightedSimilarity is the multi-strategy composite ratio, possibly
	// revised by the date adjustment.
	WeightedSimilarity float64
	// QuickSimilarity is the fast rough ratio, used as a floor check.
	QuickSimilarity float64
	// MetaScore is the weighted blend of five metrics, before corrections.
	MetaScore float64
	// OriginalSimilarity is the ratio of the raw, unnormalized inputs.
	OriginalSimilarity float64
	// FinalScore is the meta score after phonetic and divergence corrections,
	// never below 0. This is the primary output.
	FinalScore float64
	// Summary is the rule-based natural-language explanation.
	Summary string
}
