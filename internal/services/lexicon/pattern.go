package lexicon

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"SentimentScope/internal/domain/models"
	domainservice "SentimentScope/internal/domain/service"
	"SentimentScope/internal/services/textproc"
	"SentimentScope/pkg/logger"
	"SentimentScope/pkg/util"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// negated polarity is flipped and damped
const negationFactor = -0.5

type entry struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

type lexicon struct {
	Intensifiers map[string]float64 `yaml:"intensifiers"`
	Negations    []string           `yaml:"negations"`
	Words        map[string]entry   `yaml:"words"`

	negations map[string]struct{}
}

func parseLexicon(b []byte) (*lexicon, error) {
	var lx lexicon
	if err := yaml.Unmarshal(b, &lx); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	if len(lx.Words) == 0 {
		return nil, errors.New("lexicon has no words")
	}
	for w, e := range lx.Words {
		if e.Polarity < -1 || e.Polarity > 1 || e.Subjectivity < 0 || e.Subjectivity > 1 {
			return nil, fmt.Errorf("lexicon entry %q out of range", w)
		}
	}
	lx.negations = make(map[string]struct{}, len(lx.Negations))
	for _, n := range lx.Negations {
		lx.negations[n] = struct{}{}
	}
	return &lx, nil
}

// PatternOracle scores polarity and subjectivity by averaging the lexicon
// entries of the words it recognizes. A preceding intensifier scales an entry
// and a preceding negation flips and damps its polarity.
type PatternOracle struct {
	lex     *lexicon
	loadErr error
	log     *logger.Logger
}

type PatternOption func(*patternOptions)

type patternOptions struct {
	data []byte
}

// WithLexiconData replaces the embedded lexicon document.
func WithLexiconData(b []byte) PatternOption {
	return func(o *patternOptions) { o.data = b }
}

// NewPatternOracle loads the lexicon once. A lexicon that fails to load is
// logged and every later call reports ErrOracleUnavailable.
func NewPatternOracle(l *logger.Logger, opts ...PatternOption) *PatternOracle {
	o := patternOptions{data: defaultLexicon}
	for _, opt := range opts {
		opt(&o)
	}
	if l == nil {
		l = logger.Nop()
	}

	lx, err := parseLexicon(o.data)
	if err != nil {
		l.Error("polarity lexicon unavailable", logger.Error(err))
		return &PatternOracle{loadErr: err, log: l}
	}
	l.Debug("polarity lexicon loaded", logger.Int("words", len(lx.Words)))
	return &PatternOracle{lex: lx, log: l}
}

func (p *PatternOracle) Polarity(ctx context.Context, text string) (models.PolaritySignal, error) {
	if p.loadErr != nil {
		return models.PolaritySignal{}, fmt.Errorf("%w: %v", domainservice.ErrOracleUnavailable, p.loadErr)
	}
	if err := ctx.Err(); err != nil {
		return models.PolaritySignal{}, err
	}

	var (
		sumP, sumS float64
		n          int
		intensity  = 1.0
		negate     bool
	)
	for _, w := range strings.Fields(text) {
		if _, ok := p.lex.negations[w]; ok {
			negate = true
			continue
		}
		if f, ok := p.lex.Intensifiers[w]; ok {
			intensity *= f
			continue
		}
		e, ok := p.lex.Words[w]
		if !ok {
			if !textproc.IsStopword(w) {
				intensity, negate = 1, false
			}
			continue
		}

		pol := util.Clamp(e.Polarity*intensity, -1, 1)
		if negate {
			pol *= negationFactor
		}
		sumP += pol
		sumS += util.Clamp(e.Subjectivity*intensity, 0, 1)
		n++
		intensity, negate = 1, false
	}

	if n == 0 {
		return models.PolaritySignal{}, nil
	}
	return models.PolaritySignal{
		Polarity:     util.Clamp(sumP/float64(n), -1, 1),
		Subjectivity: util.Clamp(sumS/float64(n), 0, 1),
	}, nil
}
