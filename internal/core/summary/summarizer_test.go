package summary

import (
	"strings"
	"testing"

	"github.com/textmatch/go_name_similarity/internal/core/domain"
)

// quiet returns a comparison whose metric fields trigger none of the
// score-based modifier clauses, so tier selection can be tested via the
// sentence prefix.
func quiet(finalScore float64) domain.Comparison {
	return domain.Comparison{
		Phonetic:           domain.PhoneticDissimilar,
		Ratio:              50,
		DamerauLevenshtein: 50,
		OriginalSimilarity: 100,
		WeightedSimilarity: finalScore,
		FinalScore:         finalScore,
	}
}

func TestSummarizeTiers(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		finalScore float64
		wantPrefix string
	}{
		{"Score 95", 95, "The strings are essentially identical."},
		{"Score 85", 85, "The strings show very strong similarity"},
		{"Score 70", 70, "The strings are moderately similar"},
		{"Score 50", 50, "The strings show mild similarity"},
		{"Score 30", 30, "The similarity is low"},
		{"Score 29", 29, "The strings are highly dissimilar"},
		{"Score 0", 0, "The strings are highly dissimilar"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarize(quiet(tc.finalScore), cfg)
			if !strings.HasPrefix(got, tc.wantPrefix) {
				t.Errorf("Summarize for score %v = %q, want prefix %q", tc.finalScore, got, tc.wantPrefix)
			}
		})
	}
}

func TestSummarizeIdenticalShortCircuit(t *testing.T) {
	cfg := DefaultConfig()

	c := quiet(10)
	c.Phonetic = domain.PhoneticSame
	// The degenerate identical case ignores every other score.
	c.WeightedSimilarity = 99

	if got := Summarize(c, cfg); got != cfg.Identical {
		t.Errorf("Summarize for identical strings = %q, want %q", got, cfg.Identical)
	}
}

func TestSummarizeModifiers(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		mutate func(*domain.Comparison)
		want   string
	}{
		{
			name:   "Phonetically similar note",
			mutate: func(c *domain.Comparison) { c.Phonetic = domain.PhoneticSimilar },
			want:   "Names sound phonetically similar.",
		},
		{
			name:   "Phonetically dissimilar note",
			mutate: func(c *domain.Comparison) { c.Phonetic = domain.PhoneticDissimilar },
			want:   "Strings sound phonetically dissimilar.",
		},
		{
			name: "Spelling differences note",
			mutate: func(c *domain.Comparison) {
				c.Ratio = 90
				c.DamerauLevenshtein = 60
			},
			want: "Significant spelling/structural differences detected.",
		},
		{
			name: "Normalization improvement note",
			mutate: func(c *domain.Comparison) {
				c.OriginalSimilarity = 20
			},
			want: "Normalization greatly improved similarity",
		},
		{
			name: "Token order note",
			mutate: func(c *domain.Comparison) {
				c.WeightedSimilarity = c.FinalScore + 16
			},
			want: "Token order differences heavily affect matching.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := quiet(60)
			tc.mutate(&c)
			got := Summarize(c, cfg)
			if !strings.Contains(got, tc.want) {
				t.Errorf("Summarize = %q, want it to contain %q", got, tc.want)
			}
		})
	}
}

func TestSummarizeAlwaysAssigned(t *testing.T) {
	cfg := DefaultConfig()

	// Every phonetic state and score combination yields a sentence.
	for _, phonetic := range []domain.PhoneticSignal{
		domain.PhoneticDissimilar, domain.PhoneticSame, domain.PhoneticSimilar,
	} {
		for _, score := range []float64{0, 29, 30, 50, 70, 85, 95, 100} {
			c := quiet(score)
			c.Phonetic = phonetic
			if got := Summarize(c, cfg); got == "" {
				t.Errorf("empty summary for phonetic=%v score=%v", phonetic, score)
			}
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Tiers[0], cfg.Tiers[1] = cfg.Tiers[1], cfg.Tiers[0]
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-order tiers")
	}
}
