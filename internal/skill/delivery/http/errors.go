package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-fact-skill/internal/skill"
	"voice-fact-skill/pkg/response"
)

var (
	errMalformedBody      = errors.New("malformed request body")
	errMissingRequestType = errors.New("request.type is required")
)

// mapError translates use-case errors into HTTP errors and the metrics
// result label. A nil HTTPError means the failure is internal.
func (h *handler) mapError(err error) (*response.HTTPError, string) {
	switch {
	case errors.Is(err, skill.ErrAuthorization):
		return response.NewHTTPError(http.StatusUnauthorized, skill.ErrAuthorization.Error()), resultUnauthorized
	case errors.Is(err, skill.ErrUnsupportedRequest),
		errors.Is(err, errMalformedBody),
		errors.Is(err, errMissingRequestType):
		return response.NewHTTPError(http.StatusBadRequest, err.Error()), resultBadRequest
	default:
		return nil, resultError
	}
}

// writeError sends httpErr, or a generic 500 that hides err from the caller.
func (h *handler) writeError(c *gin.Context, httpErr *response.HTTPError, err error) {
	if httpErr == nil {
		response.InternalError(c, err)
		return
	}
	response.Error(c, httpErr, nil)
}
