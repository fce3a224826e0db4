package ports

import (
	"context"

	"github.com/textmatch/go_name_similarity/internal/core/domain"
)

// Comparator defines the interface for comparing two strings.
type Comparator interface {
	Compare(ctx context.Context, first, second string) domain.Comparison
}
