package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"SentimentScope/internal/domain/models"
	"SentimentScope/internal/usecase"
	xhttp "SentimentScope/pkg/http"
	xlogger "SentimentScope/pkg/logger"
	"SentimentScope/pkg/util"
)

// AnalyzeEchoHandler serves the sentiment analysis endpoints.
type AnalyzeEchoHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.Analyzer
}

func NewAnalyzeEchoHandler(logger *xlogger.Logger, analyzer *usecase.Analyzer) *AnalyzeEchoHandler {
	return &AnalyzeEchoHandler{logger: logger, analyzer: analyzer}
}

func (h *AnalyzeEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/analyze")
	g.POST("/text", h.Text)
	g.POST("/url", h.URL)
	g.POST("/hashtag", h.Hashtag)
}

func (h *AnalyzeEchoHandler) Text(c echo.Context) error {
	req := &models.TextRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.AnalyzeText(c.Request().Context(), req.Text)
	if err != nil {
		return h.fail(c, "text analysis failed", err)
	}
	return xhttp.SuccessResponse(c, textResponse(res))
}

func (h *AnalyzeEchoHandler) URL(c echo.Context) error {
	req := &models.URLRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.AnalyzeURL(c.Request().Context(), req.URL)
	if err != nil {
		return h.fail(c, "url analysis failed", err, xlogger.String("url", req.URL))
	}

	freq := res.WordFrequency
	if freq == nil {
		freq = []models.WordCount{}
	}
	return xhttp.SuccessResponse(c, models.URLResponse{
		TextResponse:  textResponse(&res.TextAnalysis),
		WordFrequency: freq,
	})
}

func (h *AnalyzeEchoHandler) Hashtag(c echo.Context) error {
	req := &models.HashtagRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.AnalyzeHashtag(c.Request().Context(), req.Hashtag)
	if err != nil {
		return h.fail(c, "hashtag analysis failed", err, xlogger.String("hashtag", req.Hashtag))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalyzeEchoHandler) fail(c echo.Context, msg string, err error, fields ...xlogger.Field) error {
	appErr := toAppError(err)
	fields = append(fields, xlogger.Error(err), xlogger.String("kind", usecase.ErrorKind(err)))
	if appErr.Status >= http.StatusInternalServerError {
		h.logger.Error(msg, fields...)
	} else {
		h.logger.Warn(msg, fields...)
	}
	return xhttp.AppErrorResponse(c, appErr)
}

func textResponse(res *models.TextAnalysis) models.TextResponse {
	s := res.Sentiment
	return models.TextResponse{
		Sentiment:  res.Label,
		Score:      util.Round3(s.Score),
		Confidence: util.Round3(s.Confidence),
		Details: &models.SignalDetails{
			Compound:     util.Round3(s.Compound.Compound),
			Positive:     util.Round3(s.Compound.Positive),
			Neutral:      util.Round3(s.Compound.Neutral),
			Negative:     util.Round3(s.Compound.Negative),
			Polarity:     util.Round3(s.Polarity.Polarity),
			Subjectivity: util.Round3(s.Polarity.Subjectivity),
		},
	}
}
