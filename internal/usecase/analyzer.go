package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"SentimentScope/internal/domain/models"
	domrepo "SentimentScope/internal/domain/repository"
	domainservice "SentimentScope/internal/domain/service"
	"SentimentScope/internal/services/sentiment"
	"SentimentScope/internal/services/textproc"
	"SentimentScope/pkg/cache"
	"SentimentScope/pkg/logger"
)

var hashtagPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// AnalyzerOptions tune the analyzer. Zero values fall back to defaults.
type AnalyzerOptions struct {
	TopN           int
	MinTokenLength int
	CacheTTL       time.Duration
}

// Analyzer runs the three analyses exposed over HTTP.
type Analyzer struct {
	blender   *sentiment.Blender
	simulator *sentiment.Simulator
	fetcher   domrepo.PageFetcher
	cache     domrepo.AnalysisCache
	metrics   domrepo.Metrics
	log       *logger.Logger
	opts      AnalyzerOptions
}

// NewAnalyzer wires an analyzer. store may be nil to disable URL caching.
func NewAnalyzer(
	blender *sentiment.Blender,
	simulator *sentiment.Simulator,
	fetcher domrepo.PageFetcher,
	store domrepo.AnalysisCache,
	metrics domrepo.Metrics,
	l *logger.Logger,
	opts AnalyzerOptions,
) *Analyzer {
	if opts.TopN <= 0 {
		opts.TopN = textproc.DefaultTopN
	}
	if opts.MinTokenLength <= 0 {
		opts.MinTokenLength = textproc.DefaultMinTokenLength
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 10 * time.Minute
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if l == nil {
		l = logger.Nop()
	}
	return &Analyzer{
		blender:   blender,
		simulator: simulator,
		fetcher:   fetcher,
		cache:     store,
		metrics:   metrics,
		log:       l,
		opts:      opts,
	}
}

func (a *Analyzer) AnalyzeText(ctx context.Context, text string) (res *models.TextAnalysis, err error) {
	defer a.track("analyze_text", time.Now(), &err)

	if strings.TrimSpace(text) == "" {
		return nil, domainservice.Invalid("text", "text is required")
	}
	normalized := textproc.Normalize(text)
	if normalized == "" {
		return nil, domainservice.Invalid("text", "text contains no words to analyze")
	}

	blended, err := a.blender.Blend(ctx, normalized)
	if err != nil {
		return nil, err
	}

	res = &models.TextAnalysis{Label: sentiment.LabelFor(blended.Score), Sentiment: blended}
	a.metrics.RecordAnalysis("text", string(res.Label))
	return res, nil
}

func (a *Analyzer) AnalyzeURL(ctx context.Context, rawURL string) (res *models.PageAnalysis, err error) {
	defer a.track("analyze_url", time.Now(), &err)

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, domainservice.Invalid("url", "url is required")
	}
	if u, perr := url.Parse(rawURL); perr != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, domainservice.Invalid("url", "url must be an absolute http(s) URL")
	}

	key := cache.GenerateKey("url", cache.HashKey(rawURL))
	if cached, ok := a.cachedPage(ctx, key); ok {
		a.metrics.RecordAnalysis("url", string(cached.Label))
		return cached, nil
	}

	text, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	normalized := textproc.Normalize(text)
	if normalized == "" {
		return nil, domainservice.ErrNoContent
	}

	var (
		blended models.BlendedSentiment
		freq    []models.WordCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		blended, err = a.blender.Blend(gctx, normalized)
		return err
	})
	g.Go(func() error {
		freq = textproc.WordFrequency(normalized, a.opts.TopN, a.opts.MinTokenLength)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res = &models.PageAnalysis{
		TextAnalysis:  models.TextAnalysis{Label: sentiment.LabelFor(blended.Score), Sentiment: blended},
		WordFrequency: freq,
	}
	a.storePage(ctx, key, res)
	a.metrics.RecordAnalysis("url", string(res.Label))
	return res, nil
}

func (a *Analyzer) AnalyzeHashtag(ctx context.Context, hashtag string) (res *models.HashtagAnalysis, err error) {
	defer a.track("analyze_hashtag", time.Now(), &err)

	tag := strings.TrimPrefix(strings.TrimSpace(hashtag), "#")
	if !hashtagPattern.MatchString(tag) {
		return nil, domainservice.Invalid("hashtag", "hashtag may only contain letters, digits and underscores")
	}

	base, err := a.blender.Blend(ctx, textproc.HashtagText(tag))
	if err != nil {
		return nil, err
	}

	analysis := sentiment.Aggregate(a.simulator.Simulate(tag, base.Score), base)

	total := 0
	for _, p := range analysis.Timeline {
		total += p.Volume
	}
	a.metrics.RecordTimelineVolume(total)
	a.metrics.RecordAnalysis("hashtag", string(analysis.Label))
	return &analysis, nil
}

// cachedPage is the cache encoding of a PageAnalysis.
type cachedPage struct {
	Label         models.Label          `json:"label"`
	Score         float64               `json:"score"`
	Confidence    float64               `json:"confidence"`
	Compound      models.CompoundSignal `json:"compound"`
	Polarity      models.PolaritySignal `json:"polarity"`
	WordFrequency []models.WordCount    `json:"word_frequency"`
}

func (a *Analyzer) cachedPage(ctx context.Context, key string) (*models.PageAnalysis, bool) {
	if a.cache == nil {
		return nil, false
	}
	b, ok, err := a.cache.GetBytes(ctx, key)
	if err != nil {
		a.log.Warn("cache read failed", logger.String("key", key), logger.Error(err))
	}
	a.metrics.RecordCacheLookup(ok && err == nil)
	if !ok || err != nil {
		return nil, false
	}

	var cp cachedPage
	if err := json.Unmarshal(b, &cp); err != nil {
		a.log.Warn("cache entry undecodable", logger.String("key", key), logger.Error(err))
		return nil, false
	}
	return &models.PageAnalysis{
		TextAnalysis: models.TextAnalysis{
			Label: cp.Label,
			Sentiment: models.BlendedSentiment{
				Score:      cp.Score,
				Confidence: cp.Confidence,
				Compound:   cp.Compound,
				Polarity:   cp.Polarity,
			},
		},
		WordFrequency: cp.WordFrequency,
	}, true
}

func (a *Analyzer) storePage(ctx context.Context, key string, p *models.PageAnalysis) {
	if a.cache == nil {
		return
	}
	b, err := json.Marshal(cachedPage{
		Label:         p.Label,
		Score:         p.Sentiment.Score,
		Confidence:    p.Sentiment.Confidence,
		Compound:      p.Sentiment.Compound,
		Polarity:      p.Sentiment.Polarity,
		WordFrequency: p.WordFrequency,
	})
	if err == nil {
		err = a.cache.SetBytes(ctx, key, b, a.opts.CacheTTL)
	}
	if err != nil {
		a.log.Warn("cache write failed", logger.String("key", key), logger.Error(err))
	}
}

func (a *Analyzer) track(op string, start time.Time, errp *error) {
	a.metrics.RecordLatency(op, time.Since(start).Seconds())
	if *errp != nil {
		a.metrics.RecordError(ErrorKind(*errp))
	}
}

// ErrorKind classifies an analysis error for metrics and logs.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domainservice.ErrValidation):
		return "validation"
	case errors.Is(err, domainservice.ErrOracleUnavailable):
		return "oracle_unavailable"
	case errors.Is(err, domainservice.ErrFetch), errors.Is(err, domainservice.ErrNoContent):
		return "fetch"
	default:
		return "internal"
	}
}

type nopMetrics struct{}

func (nopMetrics) RecordAnalysis(string, string) {}
func (nopMetrics) RecordError(string) {}
func (nopMetrics) RecordLatency(string, float64) {}
func (nopMetrics) RecordCacheLookup(bool) {}
func (nopMetrics) RecordTimelineVolume(int) {}
