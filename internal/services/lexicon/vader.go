// Package lexicon holds the word-level sentiment oracles.
package lexicon

import (
	"context"
	"fmt"

	"github.com/jonreiter/govader"

	"SentimentScope/internal/domain/models"
	domainservice "SentimentScope/internal/domain/service"
)

// VaderOracle produces valence-aware compound scores tuned for short,
// informal text.
type VaderOracle struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderOracle() *VaderOracle {
	return &VaderOracle{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderOracle) Compound(ctx context.Context, text string) (sig models.CompoundSignal, err error) {
	if v == nil || v.analyzer == nil || len(v.analyzer.Lexicon) == 0 {
		return sig, fmt.Errorf("%w: vader lexicon not loaded", domainservice.ErrOracleUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return sig, err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: vader: %v", domainservice.ErrOracleUnavailable, r)
		}
	}()

	s := v.analyzer.PolarityScores(text)
	return models.CompoundSignal{
		Compound: s.Compound,
		Positive: s.Positive,
		Neutral:  s.Neutral,
		Negative: s.Negative,
	}, nil
}
