package compare

import (
	"context"
	"testing"

	"github.com/textmatch/go_name_similarity/internal/adapters/normalizer"
	"github.com/textmatch/go_name_similarity/internal/adapters/phonetic"
	"github.com/textmatch/go_name_similarity/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }

func newPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := NewPipeline(DefaultConfig(), nopLogger{}, normalizer.NewEntityNormalizer(), phonetic.NewSoundexEncoder())
	if err != nil {
		t.Fatalf("failed to create pipeline: %v", err)
	}
	return p
}

func TestCompareSelf(t *testing.T) {
	p := newPipeline(t)

	result := p.Compare(context.Background(), "Dr. John Smith", "Dr. John Smith")

	if result.FinalScore != 100 {
		t.Errorf("final score = %v, want 100 for self comparison", result.FinalScore)
	}
	if result.Phonetic != domain.PhoneticSame {
		t.Errorf("phonetic = %v, want same", result.Phonetic)
	}
	if result.Ratio != 100 || result.DamerauLevenshtein != 100 || result.JaroWinkler != 100 || result.WeightedSimilarity != 100 {
		t.Errorf("expected all metrics at 100, got %+v", result)
	}
	if result.Summary == "" {
		t.Error("summary must always be assigned")
	}
}

func TestCompareNormalizationConvergence(t *testing.T) {
	p := newPipeline(t)

	tests := []struct {
		name   string
		first  string
		second string
	}{
		{
			name:   "Corporate suffix and case",
			first:  "alice corp",
			second: "ALICE CORP.",
		},
		{
			name:   "Salutation and extension",
			first:  "Dr. John Smith.pdf",
			second: "John Smith",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := p.Compare(context.Background(), tc.first, tc.second)
			if result.Normalized1 != result.Normalized2 {
				t.Fatalf("normalized forms differ: %q vs %q", result.Normalized1, result.Normalized2)
			}
			if result.Phonetic != domain.PhoneticSame {
				t.Errorf("phonetic = %v, want same", result.Phonetic)
			}
			if result.MetaScore != 100 {
				t.Errorf("meta score = %v, want 100", result.MetaScore)
			}
			if result.Summary != DefaultConfig().Summary.Identical {
				t.Errorf("summary = %q, want the identical-after-cleaning sentence", result.Summary)
			}
		})
	}
}

func TestCompareSymmetric(t *testing.T) {
	p := newPipeline(t)

	pairs := [][2]string{
		{"Jonathan Smith", "Jonathon Smyth"},
		{"Report_Final.PDF", "report draft"},
		{"invoice_15012024", "invoice_16012024"},
	}

	for _, pair := range pairs {
		ab := p.Compare(context.Background(), pair[0], pair[1])
		ba := p.Compare(context.Background(), pair[1], pair[0])
		if ab.FinalScore != ba.FinalScore {
			t.Errorf("final score is not symmetric for %q/%q: %v vs %v", pair[0], pair[1], ab.FinalScore, ba.FinalScore)
		}
	}
}

func TestComparePhoneticBonus(t *testing.T) {
	p := newPipeline(t)

	result := p.Compare(context.Background(), "Jonathan Smith", "Jonathon Smyth")

	if result.Phonetic != domain.PhoneticSimilar {
		t.Fatalf("phonetic = %v, want similar-sounding", result.Phonetic)
	}
	if result.FinalScore <= result.MetaScore {
		t.Errorf("final score %v should exceed meta score %v after the phonetic bonus", result.FinalScore, result.MetaScore)
	}
	if result.FinalScore < 85 {
		t.Errorf("final score = %v, want at least 85 for a near-identical-sounding pair", result.FinalScore)
	}
}

func TestCompareBothDated(t *testing.T) {
	p := newPipeline(t)

	result := p.Compare(context.Background(), "invoice_15012024", "invoice_16012024")

	// The summary must be assigned on the dated path too.
	if result.Summary == "" {
		t.Error("summary must always be assigned when both sides carry dates")
	}
	if result.FinalScore < 0 {
		t.Errorf("final score = %v, must never be negative", result.FinalScore)
	}
}

func TestCompareUnrelated(t *testing.T) {
	p := newPipeline(t)

	result := p.Compare(context.Background(), "zebra quartz", "mellow violin")

	if result.FinalScore >= 50 {
		t.Errorf("final score = %v, want below 50 for unrelated strings", result.FinalScore)
	}
	if result.Summary == "" {
		t.Error("summary must always be assigned")
	}
}

func TestCompareEmpty(t *testing.T) {
	p := newPipeline(t)

	result := p.Compare(context.Background(), "", "")
	if result.Summary == "" {
		t.Error("summary must always be assigned for empty inputs")
	}

	result = p.Compare(context.Background(), "", "john smith")
	if result.FinalScore < 0 {
		t.Errorf("final score = %v, must never be negative", result.FinalScore)
	}
}

func TestCompareCancelled(t *testing.T) {
	p := newPipeline(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := p.Compare(ctx, "john smith", "jon smyth")
	if result.FinalScore != 0 {
		t.Errorf("final score = %v, want 0 for cancelled comparison", result.FinalScore)
	}
	if result.Summary == "" {
		t.Error("summary must be assigned even when cancelled")
	}
}
