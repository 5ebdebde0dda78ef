package sentiment

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"SentimentScope/internal/domain/models"
	"SentimentScope/pkg/util"
)

const (
	TimelineHours = 24

	minBaseVolume   = 50
	baseVolumeRange = 450

	volumeJitter   = 0.2
	trendAmplitude = 0.3
	sentimentNoise = 0.15

	nightFactor = 0.3
)

var peakHours = map[int]float64{
	9:  1.2,
	12: 1.3,
	15: 1.2,
	19: 1.5,
	21: 1.4,
}

// Simulator produces the synthetic 24 hour activity series of a hashtag.
// Output depends only on the hashtag, the base score and the current hour.
type Simulator struct {
	clock clockwork.Clock
	loc   *time.Location
}

func NewSimulator(clock clockwork.Clock, loc *time.Location) *Simulator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Simulator{clock: clock, loc: loc}
}

// Simulate builds the timeline ending at the current hour of the simulator clock.
func (s *Simulator) Simulate(tag string, baseScore float64) []models.TimelinePoint {
	return SimulateAt(tag, baseScore, s.clock.Now().In(s.loc))
}

// SimulateAt builds the timeline ending at the hour of now, oldest point first.
func SimulateAt(tag string, baseScore float64, now time.Time) []models.TimelinePoint {
	h := IdentityHash(tag)
	baseVolume := float64(minBaseVolume + h%baseVolumeRange)
	direction := 1.0
	if h%2 == 1 {
		direction = -1
	}

	points := make([]models.TimelinePoint, 0, TimelineHours)
	for i, hour := range util.TrailingHours(now, TimelineHours) {
		key := tag + "_" + strconv.Itoa(hour)
		volumeRand := keyedRand(key)
		sentimentRand := keyedRand(key + "_sentiment")

		volume := math.Round(baseVolume * timeFactor(hour) * (1 + uniform(volumeRand, volumeJitter)))

		progress := float64(i) / float64(TimelineHours-1)
		trend := direction * (progress - 0.5) * trendAmplitude
		noise := uniform(sentimentRand, sentimentNoise)

		points = append(points, models.TimelinePoint{
			Time:      util.HourLabel(hour),
			Sentiment: util.Round3(util.Clamp(baseScore+trend+noise, -1, 1)),
			Volume:    max(0, int(volume)),
		})
	}
	return points
}

// IdentityHash is the 32-bit FNV-1a hash of a hashtag. It is stable across
// processes and platforms.
func IdentityHash(tag string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(tag))
	return h.Sum32()
}

// TrendDirection is +1 for hashtags with an even identity hash and -1 otherwise.
func TrendDirection(tag string) int {
	if IdentityHash(tag)%2 == 0 {
		return 1
	}
	return -1
}

// timeFactor scales activity by hour of day. Night hours win over peaks.
func timeFactor(hour int) float64 {
	if hour >= 23 || hour <= 4 {
		return nightFactor
	}
	if f, ok := peakHours[hour]; ok {
		return f
	}
	return 1.0
}

// keyedRand returns an independent generator seeded only by key.
func keyedRand(key string) *rand.Rand {
	a := fnv.New64a()
	_, _ = a.Write([]byte(key))
	b := fnv.New64()
	_, _ = b.Write([]byte(key))
	return rand.New(rand.NewPCG(a.Sum64(), b.Sum64()))
}

// uniform draws from [-spread, spread).
func uniform(r *rand.Rand, spread float64) float64 {
	return (r.Float64()*2 - 1) * spread
}
