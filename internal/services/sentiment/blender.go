// Package sentiment blends lexicon signals into scores and synthesizes
// hashtag activity timelines.
package sentiment

import (
	"context"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"SentimentScope/internal/domain/models"
	domainservice "SentimentScope/internal/domain/service"
	"SentimentScope/pkg/util"
)

const (
	compoundWeight = 0.7
	polarityWeight = 0.3

	agreementWeight    = 0.4
	magnitudeWeight    = 0.4
	subjectivityWeight = 0.2

	// LabelThreshold is the score magnitude a single text needs to be called
	// positive or negative.
	LabelThreshold = 0.1
)

// Blender combines a compound-valence oracle and a polarity oracle.
type Blender struct {
	compound domainservice.CompoundOracle
	polarity domainservice.PolarityOracle
}

func NewBlender(c domainservice.CompoundOracle, p domainservice.PolarityOracle) *Blender {
	return &Blender{compound: c, polarity: p}
}

// Blend scores normalized text. Empty text is neutral with zero confidence
// and never reaches the oracles. Oracle errors are returned unchanged.
func (b *Blender) Blend(ctx context.Context, text string) (models.BlendedSentiment, error) {
	if strings.TrimSpace(text) == "" {
		return models.BlendedSentiment{}, nil
	}

	var (
		cs models.CompoundSignal
		ps models.PolaritySignal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cs, err = b.compound.Compound(gctx, text)
		return err
	})
	g.Go(func() (err error) {
		ps, err = b.polarity.Polarity(gctx, text)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.BlendedSentiment{}, err
	}

	return Combine(cs, ps), nil
}

// Combine applies the blend formula to a pair of signals.
func Combine(cs models.CompoundSignal, ps models.PolaritySignal) models.BlendedSentiment {
	score := util.Clamp(cs.Compound*compoundWeight+ps.Polarity*polarityWeight, -1, 1)

	agreement := 1 - math.Abs(cs.Compound-ps.Polarity)/2
	magnitude := math.Abs(cs.Compound)
	confidence := util.Clamp(
		agreement*agreementWeight+magnitude*magnitudeWeight+ps.Subjectivity*subjectivityWeight,
		0, 1,
	)

	return models.BlendedSentiment{
		Score:      score,
		Confidence: confidence,
		Compound:   cs,
		Polarity:   ps,
	}
}

// LabelFor maps a blended score to a label.
func LabelFor(score float64) models.Label {
	return labelWithThreshold(score, LabelThreshold)
}

func labelWithThreshold(score, threshold float64) models.Label {
	switch {
	case score > threshold:
		return models.LabelPositive
	case score < -threshold:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}
