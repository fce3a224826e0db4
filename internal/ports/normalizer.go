package ports

import "github.com/textmatch/go_name_similarity/internal/core/domain"

// Normalizer defines the interface for text normalization.
type Normalizer interface {
	Normalize(text string) domain.NormalizedText
}
