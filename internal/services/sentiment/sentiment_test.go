package sentiment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SentimentScope/internal/domain/models"
	domainservice "SentimentScope/internal/domain/service"
	"SentimentScope/internal/services/lexicon"
	"SentimentScope/internal/services/textproc"
	"SentimentScope/pkg/logger"
)

type stubCompound struct {
	sig   models.CompoundSignal
	err   error
	calls atomic.Int32
}

func (s *stubCompound) Compound(context.Context, string) (models.CompoundSignal, error) {
	s.calls.Add(1)
	return s.sig, s.err
}

type stubPolarity struct {
	sig   models.PolaritySignal
	err   error
	calls atomic.Int32
}

func (s *stubPolarity) Polarity(context.Context, string) (models.PolaritySignal, error) {
	s.calls.Add(1)
	return s.sig, s.err
}

var refTime = time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

func TestCombine(t *testing.T) {
	got := Combine(
		models.CompoundSignal{Compound: 0.6369},
		models.PolaritySignal{Polarity: 0.5, Subjectivity: 0.6},
	)

	assert.InDelta(t, 0.59583, got.Score, 1e-9)
	assert.InDelta(t, 0.74738, got.Confidence, 1e-9)
	assert.Equal(t, 0.5, got.Polarity.Polarity)
}

func TestCombineClamps(t *testing.T) {
	got := Combine(
		models.CompoundSignal{Compound: 1},
		models.PolaritySignal{Polarity: 1, Subjectivity: 1},
	)
	assert.Equal(t, 1.0, got.Score)
	assert.InDelta(t, 1.0, got.Confidence, 1e-12)

	got = Combine(
		models.CompoundSignal{Compound: -1},
		models.PolaritySignal{Polarity: 1, Subjectivity: 0},
	)
	assert.InDelta(t, -0.4, got.Score, 1e-12)
	assert.InDelta(t, 0.4, got.Confidence, 1e-12)
}

func TestBlendEmptyTextSkipsOracles(t *testing.T) {
	c, p := &stubCompound{}, &stubPolarity{}
	b := NewBlender(c, p)

	got, err := b.Blend(context.Background(), "   ")
	require.NoError(t, err)
	assert.Zero(t, got.Score)
	assert.Zero(t, got.Confidence)
	assert.Zero(t, c.calls.Load())
	assert.Zero(t, p.calls.Load())
}

func TestBlendPropagatesOracleErrors(t *testing.T) {
	unavailable := fmt.Errorf("%w: lexicon missing", domainservice.ErrOracleUnavailable)
	b := NewBlender(&stubCompound{}, &stubPolarity{err: unavailable})

	_, err := b.Blend(context.Background(), "good")
	assert.ErrorIs(t, err, domainservice.ErrOracleUnavailable)
}

func TestBlendUsesBothOracles(t *testing.T) {
	c := &stubCompound{sig: models.CompoundSignal{Compound: -0.5}}
	p := &stubPolarity{sig: models.PolaritySignal{Polarity: -0.5, Subjectivity: 0.5}}

	got, err := NewBlender(c, p).Blend(context.Background(), "bad")
	require.NoError(t, err)
	assert.InDelta(t, -0.5, got.Score, 1e-12)
	assert.InDelta(t, 0.7, got.Confidence, 1e-12)
	assert.EqualValues(t, 1, c.calls.Load())
	assert.EqualValues(t, 1, p.calls.Load())
}

func TestLabelBoundaries(t *testing.T) {
	assert.Equal(t, models.LabelNeutral, LabelFor(0.1))
	assert.Equal(t, models.LabelPositive, LabelFor(0.1001))
	assert.Equal(t, models.LabelNeutral, LabelFor(-0.1))
	assert.Equal(t, models.LabelNegative, LabelFor(-0.1001))
	assert.Equal(t, models.LabelNeutral, LabelFor(0))

	assert.Equal(t, models.LabelNeutral, TimelineLabelFor(0.15))
	assert.Equal(t, models.LabelPositive, TimelineLabelFor(0.1501))
	assert.Equal(t, models.LabelNeutral, TimelineLabelFor(-0.15))
	assert.Equal(t, models.LabelNegative, TimelineLabelFor(-0.1501))
	assert.Equal(t, models.LabelNeutral, TimelineLabelFor(0.12))
}

func TestIdentityHashIsFNV1a(t *testing.T) {
	assert.Equal(t, uint32(0x811c9dc5), IdentityHash(""))
	assert.Equal(t, uint32(0xe40c292c), IdentityHash("a"))
	assert.Equal(t, IdentityHash("ILoveThis"), IdentityHash("ILoveThis"))
}

func TestTimeFactor(t *testing.T) {
	cases := map[int]float64{
		0: 0.3, 3: 0.3, 4: 0.3, 5: 1.0, 9: 1.2, 12: 1.3,
		15: 1.2, 19: 1.5, 21: 1.4, 22: 1.0, 23: 0.3,
	}
	for hour, want := range cases {
		assert.Equal(t, want, timeFactor(hour), "hour %d", hour)
	}
}

func TestSimulateAtShape(t *testing.T) {
	points := SimulateAt("golang", 0.2, refTime)

	require.Len(t, points, TimelineHours)
	assert.Equal(t, "15:00", points[0].Time)
	assert.Equal(t, "23:00", points[8].Time)
	assert.Equal(t, "00:00", points[9].Time)
	assert.Equal(t, "14:00", points[23].Time)
}

func TestSimulateAtIsDeterministic(t *testing.T) {
	a := SimulateAt("ILoveThis", 0.596, refTime)
	b := SimulateAt("ILoveThis", 0.596, refTime.Add(20*time.Minute))
	assert.Equal(t, a, b)

	other := SimulateAt("ILoveThat", 0.596, refTime)
	assert.NotEqual(t, a, other)
}

func TestSimulateIsSafeConcurrently(t *testing.T) {
	sim := NewSimulator(clockwork.NewFakeClockAt(refTime), time.UTC)
	want := sim.Simulate("concurrency", -0.3)

	var wg sync.WaitGroup
	results := make([][]models.TimelinePoint, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tag := "concurrency"
			if i%2 == 1 {
				tag = fmt.Sprintf("noise%d", i)
			}
			results[i] = sim.Simulate(tag, -0.3)
		}(i)
	}
	wg.Wait()

	for i := 0; i < len(results); i += 2 {
		assert.Equal(t, want, results[i])
	}
}

func TestSimulateVolumeBounds(t *testing.T) {
	for _, tag := range []string{"a", "golang", "ILoveThis", "a_b_c", "NASALaunch2024"} {
		base := float64(50 + IdentityHash(tag)%450)
		assert.GreaterOrEqual(t, base, 50.0)
		assert.LessOrEqual(t, base, 499.0)

		for _, p := range SimulateAt(tag, 0, refTime) {
			var hour int
			_, err := fmt.Sscanf(p.Time, "%d:00", &hour)
			require.NoError(t, err)

			expected := base * timeFactor(hour)
			assert.GreaterOrEqual(t, float64(p.Volume), expected*0.8-0.5, "%s %s", tag, p.Time)
			assert.LessOrEqual(t, float64(p.Volume), expected*1.2+0.5, "%s %s", tag, p.Time)
		}
	}
}

func TestSimulateFollowsTrendDirection(t *testing.T) {
	for _, tag := range []string{"even", "odd", "golang", "ILoveThis"} {
		dir := float64(TrendDirection(tag))
		for i, p := range SimulateAt(tag, 0, refTime) {
			trend := dir * (float64(i)/23 - 0.5) * 0.3
			assert.InDelta(t, trend, p.Sentiment, 0.15+0.0005, "%s point %d", tag, i)
		}
	}
}

func TestSimulateClampsSentiment(t *testing.T) {
	for _, p := range SimulateAt("extreme", 0.99, refTime) {
		assert.LessOrEqual(t, p.Sentiment, 1.0)
	}
	for _, p := range SimulateAt("extreme", -0.99, refTime) {
		assert.GreaterOrEqual(t, p.Sentiment, -1.0)
	}
}

func TestAggregateWeightsByVolume(t *testing.T) {
	points := []models.TimelinePoint{
		{Time: "00:00", Sentiment: 0.5, Volume: 100},
		{Time: "01:00", Sentiment: -0.5, Volume: 300},
	}

	got := Aggregate(points, models.BlendedSentiment{Score: 0.9, Confidence: 0.6})

	assert.Equal(t, models.LabelNegative, got.Label)
	assert.Equal(t, -0.25, got.Score)
	assert.Equal(t, 0.358, got.Confidence)
	assert.Equal(t, points, got.Timeline)
}

func TestAggregateZeroVolumeUsesBaseScore(t *testing.T) {
	points := []models.TimelinePoint{
		{Time: "00:00", Sentiment: 0.2, Volume: 0},
		{Time: "01:00", Sentiment: 0.2, Volume: 0},
	}

	got := Aggregate(points, models.BlendedSentiment{Score: 0.2, Confidence: 0.3})

	assert.Equal(t, 0.2, got.Score)
	assert.Equal(t, models.LabelPositive, got.Label)
	assert.Equal(t, 0.433, got.Confidence)
}

func TestAggregateClampsConsistency(t *testing.T) {
	points := []models.TimelinePoint{
		{Time: "00:00", Sentiment: 1, Volume: 1},
		{Time: "01:00", Sentiment: -1, Volume: 0},
	}

	got := Aggregate(points, models.BlendedSentiment{})

	assert.GreaterOrEqual(t, got.Confidence, 0.0)
	assert.Equal(t, 0.0, got.Confidence)
}

func TestAggregateEmptyTimeline(t *testing.T) {
	got := Aggregate(nil, models.BlendedSentiment{Score: -0.4, Confidence: 0.9})

	assert.Equal(t, -0.4, got.Score)
	assert.Equal(t, models.LabelNegative, got.Label)
	assert.Equal(t, 0.633, got.Confidence)
}

func TestHashtagScenarios(t *testing.T) {
	blender := NewBlender(lexicon.NewVaderOracle(), lexicon.NewPatternOracle(logger.Nop()))
	sim := NewSimulator(clockwork.NewFakeClockAt(refTime), time.UTC)

	analyze := func(tag string) (models.BlendedSentiment, models.HashtagAnalysis) {
		base, err := blender.Blend(context.Background(), textproc.HashtagText(tag))
		require.NoError(t, err)
		return base, Aggregate(sim.Simulate(tag, base.Score), base)
	}

	t.Run("ILoveThis", func(t *testing.T) {
		base, got := analyze("ILoveThis")

		assert.Greater(t, base.Score, 0.5)
		assert.Equal(t, models.LabelPositive, got.Label)
		assert.Len(t, got.Timeline, TimelineHours)

		_, again := analyze("ILoveThis")
		assert.Equal(t, got, again)
	})

	t.Run("a_b_c", func(t *testing.T) {
		base, got := analyze("a_b_c")

		assert.Zero(t, base.Score)
		for _, p := range got.Timeline {
			assert.InDelta(t, 0, p.Sentiment, 0.3005)
		}
		assert.InDelta(t, 0, got.Score, 0.3005)
	})

	t.Run("ranges", func(t *testing.T) {
		for _, tag := range []string{"IHateMondays", "happy_friday", "x", "TerribleAwfulWorst", "Best_Day_Ever"} {
			_, got := analyze(tag)
			assert.GreaterOrEqual(t, got.Score, -1.0)
			assert.LessOrEqual(t, got.Score, 1.0)
			assert.GreaterOrEqual(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
			for _, p := range got.Timeline {
				assert.GreaterOrEqual(t, p.Volume, 0)
			}
		}
	})
}

func TestBlendStopsOnFirstError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewBlender(&stubCompound{err: boom}, &stubPolarity{}).Blend(context.Background(), "x")
	assert.ErrorIs(t, err, boom)
}
