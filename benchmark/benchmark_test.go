package benchmark

import (
	"context"
	"testing"

	namesimilarity "github.com/textmatch/go_name_similarity"
	"github.com/textmatch/go_name_similarity/internal/adapters/normalizer"
)

var benchPairs = [][2]string{
	{"Dr. John Smith", "john smith"},
	{"Report_Final.PDF", "report final"},
	{"Acme Pvt Ltd", "ACME Limited"},
	{"invoice_15012024.pdf", "invoice_16012024.docx"},
	{"Jonathan Albert Smith-Westwood", "Jonathon A Smyth Westwood"},
	{"completely unrelated string here", "nothing at all in common"},
}

func newMatcher(b *testing.B) *namesimilarity.NameSimilarity {
	b.Helper()
	ns, err := namesimilarity.New()
	if err != nil {
		b.Fatalf("failed to create matcher: %v", err)
	}
	return ns
}

func BenchmarkCompare(b *testing.B) {
	ns := newMatcher(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pair := benchPairs[i%len(benchPairs)]
		_ = ns.Compare(ctx, pair[0], pair[1])
	}
}

func BenchmarkCompareParallel(b *testing.B) {
	ns := newMatcher(b)
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			pair := benchPairs[i%len(benchPairs)]
			_ = ns.Compare(ctx, pair[0], pair[1])
			i++
		}
	})
}

func BenchmarkNormalize(b *testing.B) {
	n := normalizer.NewEntityNormalizer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pair := benchPairs[i%len(benchPairs)]
		_ = n.Normalize(pair[0])
		_ = n.Normalize(pair[1])
	}
}
