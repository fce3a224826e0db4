package normalizer

import (
	"regexp"
	"strings"

	"github.com/textmatch/go_name_similarity/internal/core/domain"
	"github.com/textmatch/go_name_similarity/internal/pool"
	"github.com/textmatch/go_name_similarity/internal/ports"
)

// The normalization steps run in a fixed order: case-fold, strip leading
// salutation, strip trailing file extension, remove corporate suffix words,
// collapse punctuation, then detect and strip date-like substrings.
// Reordering the steps changes results.
var (
	salutationPattern = regexp.MustCompile(`^(dr\.|dr |mr\.|mr |ms\.|ms |mrs\.|mrs |miss |prof\.|major |mjr\.|retired |retd\.|shrimati |shri |smt\.|smt |gen\.|general |gen )\s*`)

	extensionPattern = regexp.MustCompile(`\.(pdf|docx|doc|txt|xlsx|xls|pptx|ppt|note|csv|json)$`)

	companyPattern = regexp.MustCompile(`\b(ltd|limited|pvt\s+ltd|private\s+limited|llc|inc|retd|retired|incorporated|corp|corporation|co|company)\b\.?`)

	// 6- or 8-digit runs in the common date orderings:
	// DDMMYYYY, MMDDYYYY, YYYYMMDD, DDMMYY, MMDDYY.
	datePattern = regexp.MustCompile(`((?:[0-3]\d[01]\d\d{4})|(?:[01]\d[0-3]\d\d{4})|(?:\d{4}[01]\d[0-3]\d)|(?:[0-3]\d[01]\d\d{2})|(?:[01]\d[0-3]\d\d{2}))`)
)

// EntityNormalizer canonicalizes entity names and filenames for comparison.
type EntityNormalizer struct {
	builders *pool.StringBuilderPool
}

// NewEntityNormalizer creates a new entity normalizer.
func NewEntityNormalizer() ports.Normalizer {
	return &EntityNormalizer{
		builders: pool.NewStringBuilderPool(),
	}
}

// Normalize canonicalizes one raw string and reports date presence.
// Empty input yields empty output; normalization is idempotent.
func (n *EntityNormalizer) Normalize(text string) domain.NormalizedText {
	text = strings.ToLower(text)
	text = salutationPattern.ReplaceAllString(text, "")
	text = extensionPattern.ReplaceAllString(text, "")
	text = companyPattern.ReplaceAllString(text, "")
	text = n.collapse(text)

	return domain.NormalizedText{
		Text:         text,
		HasDate:      datePattern.MatchString(text),
		DateStripped: strings.TrimSpace(datePattern.ReplaceAllString(text, "")),
	}
}

// collapse replaces every run of non-alphanumeric characters with a single
// space, using a pooled builder.
func (n *EntityNormalizer) collapse(text string) string {
	sb := n.builders.Get()
	defer n.builders.Put(sb)

	sb.Grow(len(text))
	inRun := false
	for _, r := range text {
		if isAlnum(r) {
			if inRun {
				sb.WriteByte(' ')
				inRun = false
			}
			sb.WriteRune(r)
		} else {
			inRun = true
		}
	}
	if inRun {
		sb.WriteByte(' ')
	}
	return sb.String()
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
