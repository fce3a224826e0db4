// name_similarity.go
// Package namesimilarity compares two free-text strings, typically filenames
// or entity names, and produces a composite similarity judgment: a final
// score on a 0-100 scale, a breakdown of the underlying metrics, and a
// rule-based natural-language summary. It is meant for deduplication
// scenarios where exact equality is too strict, e.g. records that differ by
// formatting, salutations, corporate suffixes, or embedded dates.
//
// The pipeline runs normalization, a fixed set of similarity metrics
// (edit-distance, token-based, phonetic), a weighted meta score, ordered
// heuristic corrections, and a summarizer. It is a heuristic decision-support
// tool, not a formal metric.
//
// This version uses the functional options pattern to allow configuration of
// weights, adjustment thresholds, summary tiers, and logging.
package namesimilarity

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/textmatch/go_name_similarity/internal/adapters/logger"
	"github.com/textmatch/go_name_similarity/internal/adapters/normalizer"
	"github.com/textmatch/go_name_similarity/internal/adapters/phonetic"
	"github.com/textmatch/go_name_similarity/internal/core/compare"
	"github.com/textmatch/go_name_similarity/internal/core/domain"
	"github.com/textmatch/go_name_similarity/internal/core/score"
	"github.com/textmatch/go_name_similarity/internal/core/summary"
	"github.com/textmatch/go_name_similarity/internal/ports"
	"github.com/textmatch/go_name_similarity/internal/warmup"
)

// Comparison is the full result bundle for one pair of strings.
type Comparison = domain.Comparison

// PhoneticSignal is the tri-state outcome of the phonetic comparison.
type PhoneticSignal = domain.PhoneticSignal

// Re-exported phonetic signal values.
const (
	PhoneticDissimilar = domain.PhoneticDissimilar
	PhoneticSame       = domain.PhoneticSame
	PhoneticSimilar    = domain.PhoneticSimilar
)

// Weights controls the meta score blend.
type Weights = score.Weights

// AdjustConfig holds the heuristic correction thresholds.
type AdjustConfig = score.AdjustConfig

// SummaryConfig holds the summary tier table and modifier thresholds.
type SummaryConfig = summary.Config

// Default configuration constructors, re-exported for callers tuning a
// single knob from the defaults.
var (
	DefaultWeights       = score.DefaultWeights
	DefaultAdjustConfig  = score.DefaultAdjustConfig
	DefaultSummaryConfig = summary.DefaultConfig
)

// NameSimilarity provides methods to compare two strings with the full
// scoring pipeline. It is safe for concurrent use.
type NameSimilarity struct {
	comparator ports.Comparator
	logger     ports.Logger
}

// Option defines a functional option for configuring NameSimilarity.
type Option func(*config)

type config struct {
	Pipeline     compare.Config
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	Encoder      ports.PhoneticEncoder
	WarmUp       bool
	WarmUpConfig warmup.Config
}

// WithWeights sets custom meta score weights.
func WithWeights(w score.Weights) Option {
	return func(cfg *config) {
		cfg.Pipeline.Weights = w
	}
}

// WithAdjustments sets custom adjustment thresholds.
func WithAdjustments(a score.AdjustConfig) Option {
	return func(cfg *config) {
		cfg.Pipeline.Adjust = a
	}
}

// WithSummaryConfig sets a custom summary tier table and modifier thresholds.
func WithSummaryConfig(s summary.Config) Option {
	return func(cfg *config) {
		cfg.Pipeline.Summary = s
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// WithPhoneticEncoder sets a custom phonetic encoder.
func WithPhoneticEncoder(e ports.PhoneticEncoder) Option {
	return func(cfg *config) {
		cfg.Encoder = e
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(wc warmup.Config) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a new NameSimilarity instance.
func New(opts ...Option) (*NameSimilarity, error) {
	cfg := &config{
		Pipeline:     compare.DefaultConfig(),
		WarmUp:       false,
		WarmUpConfig: warmup.DefaultConfig(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		lg, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = logger.FromExisting(lg)
	}

	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewEntityNormalizer()
	}

	if cfg.Encoder == nil {
		cfg.Encoder = phonetic.NewSoundexEncoder()
	}

	pipeline, err := compare.NewPipeline(cfg.Pipeline, cfg.Logger, cfg.Normalizer, cfg.Encoder)
	if err != nil {
		return nil, err
	}

	ns := &NameSimilarity{
		comparator: pipeline,
		logger:     cfg.Logger,
	}

	if cfg.WarmUp {
		manager := warmup.NewManager(cfg.Logger, cfg.WarmUpConfig)
		manager.RegisterNormalizer(cfg.Normalizer)
		manager.RegisterComparator(pipeline)
		manager.WarmUp(context.Background())
	}

	return ns, nil
}

// Compare runs the full pipeline for one pair of strings.
func (ns *NameSimilarity) Compare(ctx context.Context, first, second string) Comparison {
	return ns.comparator.Compare(ctx, first, second)
}

// Close releases the underlying logger.
func (ns *NameSimilarity) Close() error {
	return ns.logger.Close()
}

// CompareWithDefaults compares two strings using the default configuration.
// It panics only if the default logger cannot be constructed.
func CompareWithDefaults(first, second string) Comparison {
	ns, err := New()
	if err != nil {
		panic(err)
	}
	defer ns.Close()
	return ns.Compare(context.Background(), first, second)
}
