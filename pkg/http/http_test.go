package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Text    string `json:"text" validate:"notblank"`
	Hashtag string `json:"hashtag" validate:"omitempty,hashtag"`
	Limit   int    `json:"limit" default:"10" validate:"gte=1,lte=50"`
}

func newJSONContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestReadAndValidateRequestAppliesDefaults(t *testing.T) {
	c, _ := newJSONContext(`{"text":"hello"}`)
	req := &sampleRequest{}

	assert.Nil(t, ReadAndValidateRequest(c, req))
	assert.Equal(t, 10, req.Limit)
}

func TestReadAndValidateRequestReportsJSONFieldNames(t *testing.T) {
	c, _ := newJSONContext(`{"text":"   ","hashtag":"bad tag!"}`)

	verr := ReadAndValidateRequest(c, &sampleRequest{})
	errs, ok := verr.([]ValidationError)
	require.True(t, ok)
	require.Len(t, errs, 2)
	assert.Equal(t, "text", errs[0].Field)
	assert.Equal(t, "ERR_NOTBLANK", errs[0].Code)
	assert.Equal(t, "hashtag", errs[1].Field)
	assert.Equal(t, "ERR_HASHTAG", errs[1].Code)
}

func TestReadAndValidateRequestMalformedBody(t *testing.T) {
	c, _ := newJSONContext(`{"text":`)

	errs, ok := ReadAndValidateRequest(c, &sampleRequest{}).([]ValidationError)
	require.True(t, ok)
	assert.Equal(t, "ERR_MALFORMED_BODY", errs[0].Code)
}

func TestAppErrorResponseUsesStatus(t *testing.T) {
	c, rec := newJSONContext(``)

	err := ServiceUnavailableError("lexicon missing").WithRetryAfter(30).WithError(errors.New("io"))
	require.NoError(t, AppErrorResponse(c, err))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))

	var body APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusServiceUnavailable, body.Status)
}

func TestAppErrorResponseFallsBackTo500(t *testing.T) {
	c, rec := newJSONContext(``)
	require.NoError(t, AppErrorResponse(c, errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestClientSendAndParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, "probe", r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte("0123456789"))
		default:
			http.Error(w, "nope", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(WithTimeout(time.Second), WithMaxBodyBytes(4))

	var body []byte
	err := c.SendAndParse(context.Background(), &RequestOptions{
		Method:  MethodGet,
		URL:     srv.URL + "/ok",
		Headers: map[string]string{"User-Agent": "probe"},
	}, &body)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(body))

	err = c.SendAndParse(context.Background(), &RequestOptions{Method: MethodGet, URL: srv.URL + "/missing"}, &body)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestServerHealth(t *testing.T) {
	s := NewServer(nil, nil, WithCORSOrigins(nil))
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
