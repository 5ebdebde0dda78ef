package api

import (
	"errors"

	domainservice "SentimentScope/internal/domain/service"
	xhttp "SentimentScope/pkg/http"
)

// oracleRetryAfter is the Retry-After hint, in seconds, for an unavailable oracle.
const oracleRetryAfter = 30

// toAppError maps domain errors onto HTTP application errors.
func toAppError(err error) *xhttp.AppError {
	var fe *domainservice.FieldError
	switch {
	case errors.As(err, &fe):
		return xhttp.ValidationFailedError(fe.Field, fe.Message).WithError(err)
	case errors.Is(err, domainservice.ErrValidation):
		return xhttp.ValidationFailedError("", err.Error()).WithError(err)
	case errors.Is(err, domainservice.ErrNoContent):
		return xhttp.FetchFailedError("no text content found at url").WithError(err)
	case errors.Is(err, domainservice.ErrFetch):
		return xhttp.FetchFailedError("could not fetch url").WithError(err)
	case errors.Is(err, domainservice.ErrOracleUnavailable):
		return xhttp.ServiceUnavailableError("sentiment oracle unavailable, retry later").
			WithRetryAfter(oracleRetryAfter).
			WithError(err)
	default:
		return xhttp.InternalError("internal error").WithError(err)
	}
}
