package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lifeassist/goals/internal/api/service"
	"github.com/lifeassist/goals/internal/api/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler renders every failure as {"error": "<message>"}.
// Known errors map to fixed status codes; anything else is logged and
// reported as a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

// knownErrors maps service and store sentinels to the status and message clients see.
var knownErrors = []struct {
	target error
	code   int
	msg    string
}{
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	{store.ErrAccountExists, http.StatusConflict, "user already exists"},
	{store.ErrAccountNotFound, http.StatusNotFound, "user not found"},
	{store.ErrGoalNotFound, http.StatusNotFound, "goal not found"},
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	for _, k := range knownErrors {
		if errors.Is(err, k.target) {
			return k.code, k.msg
		}
	}

	log.Error().
		Err(err).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Str("method", c.Request().Method).
		Str("route", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
