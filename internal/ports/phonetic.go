package ports

import "github.com/textmatch/go_name_similarity/internal/core/domain"

// PhoneticEncoder defines the interface for phonetic comparison of strings.
// Implementations must be stateless and safe for concurrent use, since a
// single encoder instance is shared across all comparisons.
type PhoneticEncoder interface {
	// Encode returns the phonetic code for a string.
	Encode(text string) string
	// Compare classifies how the two strings relate phonetically.
	Compare(first, second string) domain.PhoneticSignal
}
