package phonetic

import (
	"testing"

	"github.com/textmatch/go_name_similarity/internal/core/domain"
)

func TestCompare(t *testing.T) {
	e := NewSoundexEncoder()

	tests := []struct {
		name   string
		first  string
		second string
		want   domain.PhoneticSignal
	}{
		{
			name:   "Identical strings",
			first:  "john smith",
			second: "john smith",
			want:   domain.PhoneticSame,
		},
		{
			name:   "Different spelling, same sound",
			first:  "smith",
			second: "smyth",
			want:   domain.PhoneticSimilar,
		},
		{
			name:   "Different sound",
			first:  "robert",
			second: "julia",
			want:   domain.PhoneticDissimilar,
		},
		{
			name:   "Both empty",
			first:  "",
			second: "",
			want:   domain.PhoneticSame,
		},
		{
			name:   "One empty degrades to dissimilar",
			first:  "",
			second: "smith",
			want:   domain.PhoneticDissimilar,
		},
		{
			name:   "No encodable letters degrades to dissimilar",
			first:  "1234",
			second: "5678",
			want:   domain.PhoneticDissimilar,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Compare(tc.first, tc.second)
			if got != tc.want {
				t.Errorf("Compare(%q, %q) = %v, want %v", tc.first, tc.second, got, tc.want)
			}
		})
	}
}

func TestCompareSymmetric(t *testing.T) {
	e := NewSoundexEncoder()

	pairs := [][2]string{
		{"smith", "smyth"},
		{"robert", "julia"},
		{"", "smith"},
	}

	for _, pair := range pairs {
		if a, b := e.Compare(pair[0], pair[1]), e.Compare(pair[1], pair[0]); a != b {
			t.Errorf("Compare is not symmetric for %q/%q: %v vs %v", pair[0], pair[1], a, b)
		}
	}
}

func TestEncode(t *testing.T) {
	e := NewSoundexEncoder()

	if got := e.Encode("robert"); got != "R163" {
		t.Errorf("Encode(robert) = %q, want R163", got)
	}
	if got := e.Encode(""); got != "" {
		t.Errorf("Encode of empty string = %q, want empty code", got)
	}
}
