package sentiment

import (
	"math"

	"SentimentScope/internal/domain/models"
	"SentimentScope/pkg/util"
)

const (
	// TimelineLabelThreshold is wider than LabelThreshold since aggregated
	// series are smoother.
	TimelineLabelThreshold = 0.15

	// volume at which the volume factor saturates
	fullVolume = 500 * TimelineHours
)

// TimelineLabelFor maps an aggregated timeline score to a label.
func TimelineLabelFor(score float64) models.Label {
	return labelWithThreshold(score, TimelineLabelThreshold)
}

// Aggregate reduces a timeline to a volume-weighted score and a confidence
// built from volume, consistency and the base confidence. A timeline with no
// volume falls back to the base score.
func Aggregate(points []models.TimelinePoint, base models.BlendedSentiment) models.HashtagAnalysis {
	total := 0
	weightedSum := 0.0
	for _, p := range points {
		total += p.Volume
		weightedSum += p.Sentiment * float64(p.Volume)
	}

	weighted := base.Score
	if total > 0 {
		weighted = weightedSum / float64(total)
	}

	std := 0.0
	if len(points) > 0 {
		var sq float64
		for _, p := range points {
			d := p.Sentiment - weighted
			sq += d * d
		}
		std = math.Sqrt(sq / float64(len(points)))
	}

	volumeFactor := math.Min(1, float64(total)/fullVolume)
	consistency := util.Clamp(1-std, 0, 1)
	confidence := util.Round3((volumeFactor + consistency + base.Confidence) / 3)

	return models.HashtagAnalysis{
		Label:      TimelineLabelFor(weighted),
		Score:      util.Round3(weighted),
		Confidence: util.Clamp(confidence, 0, 1),
		Timeline:   points,
	}
}
