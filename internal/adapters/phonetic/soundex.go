package phonetic

import (
	"github.com/antzucaro/matchr"

	"github.com/textmatch/go_name_similarity/internal/core/domain"
	"github.com/textmatch/go_name_similarity/internal/ports"
)

// SoundexEncoder compares strings by their soundex codes. It holds no
// per-call state, so a single instance is shared across all comparisons.
type SoundexEncoder struct{}

// NewSoundexEncoder creates the shared soundex encoder.
func NewSoundexEncoder() ports.PhoneticEncoder {
	return &SoundexEncoder{}
}

// Encode returns the soundex code for a string, or "" when the string has
// nothing to encode.
func (e *SoundexEncoder) Encode(text string) string {
	if !hasLetter(text) {
		return ""
	}
	return matchr.Soundex(text)
}

func hasLetter(text string) bool {
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// Compare classifies the phonetic relationship between two strings:
// PhoneticSame when the strings are identical, PhoneticSimilar when they
// differ but encode to the same soundex code, PhoneticDissimilar otherwise.
// Strings that produce no code (no encodable letters) degrade to dissimilar.
func (e *SoundexEncoder) Compare(first, second string) domain.PhoneticSignal {
	if first == second {
		return domain.PhoneticSame
	}

	c1 := e.Encode(first)
	c2 := e.Encode(second)
	if c1 == "" || c2 == "" {
		return domain.PhoneticDissimilar
	}
	if c1 == c2 {
		return domain.PhoneticSimilar
	}
	return domain.PhoneticDissimilar
}
