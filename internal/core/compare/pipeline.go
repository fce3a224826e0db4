package compare

import (
	"context"

	"github.com/textmatch/go_name_similarity/internal/core/domain"
	"github.com/textmatch/go_name_similarity/internal/core/metrics"
	"github.com/textmatch/go_name_similarity/internal/core/score"
	"github.com/textmatch/go_name_similarity/internal/core/summary"
	"github.com/textmatch/go_name_similarity/internal/ports"
)

// Config holds the configuration for the comparison pipeline.
type Config struct {
	Weights score.Weights
	Adjust  score.AdjustConfig
	Summary summary.Config
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Weights: score.DefaultWeights(),
		Adjust:  score.DefaultAdjustConfig(),
		Summary: summary.DefaultConfig(),
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if err := c.Adjust.Validate(); err != nil {
		return err
	}
	return c.Summary.Validate()
}

// Pipeline implements the full comparison: normalization, metric
// computation, meta scoring, heuristic adjustment, and summarization.
// A Pipeline holds no per-call state and is safe for concurrent use.
type Pipeline struct {
	config     Config
	logger     ports.Logger
	normalizer ports.Normalizer
	engine     *metrics.Engine
}

// NewPipeline creates a new comparison pipeline.
func NewPipeline(config Config, logger ports.Logger, normalizer ports.Normalizer, encoder ports.PhoneticEncoder) (*Pipeline, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Pipeline{
		config:     config,
		logger:     logger,
		normalizer: normalizer,
		engine:     metrics.NewEngine(encoder, logger),
	}, nil
}

// Compare runs the pipeline for one pair of strings. Every entity is created
// fresh for the call and no state survives it.
func (p *Pipeline) Compare(ctx context.Context, first, second string) domain.Comparison {
	p.logger.Debug("Starting comparison",
		"first", first,
		"second", second,
	)

	select {
	case <-ctx.Done():
		p.logger.Error("Comparison cancelled", "error", ctx.Err())
		return domain.Comparison{
			Original1: first,
			Original2: second,
			Summary:   "Comparison cancelled before scoring.",
		}
	default:
		// continue
	}

	n1 := p.normalizer.Normalize(first)
	n2 := p.normalizer.Normalize(second)

	p.logger.Debug("Normalized inputs",
		"normalized_first", n1.Text,
		"normalized_second", n2.Text,
		"first_has_date", n1.HasDate,
		"second_has_date", n2.HasDate,
	)

	bundle := p.engine.Measure(n1, n2, first, second)
	meta := score.Meta(bundle, p.config.Weights)
	final, weighted := score.Adjust(meta, bundle, n1.HasDate && n2.HasDate, p.config.Adjust)

	result := domain.Comparison{
		Original1:          first,
		Original2:          second,
		Normalized1:        n1.Text,
		Normalized2:        n2.Text,
		Phonetic:           bundle.Phonetic,
		Ratio:              bundle.Ratio,
		DamerauLevenshtein: bundle.DamerauLevenshtein,
		JaroWinkler:        bundle.JaroWinkler,
		WeightedSimilarity: weighted,
		QuickSimilarity:    bundle.QuickRatio,
		MetaScore:          meta,
		OriginalSimilarity: bundle.OriginalRatio,
		FinalScore:         final,
	}
	result.Summary = summary.Summarize(result, p.config.Summary)

	p.logger.Debug("Comparison complete",
		"meta_score", meta,
		"final_score", final,
		"summary", result.Summary,
	)

	return result
}
