package service

import (
	"context"

	"SentimentScope/internal/domain/models"
)

// CompoundOracle scores text with a valence-aware lexicon.
type CompoundOracle interface {
	Compound(ctx context.Context, text string) (models.CompoundSignal, error)
}

// PolarityOracle scores text for polarity and subjectivity.
type PolarityOracle interface {
	Polarity(ctx context.Context, text string) (models.PolaritySignal, error)
}
