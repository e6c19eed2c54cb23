package httputil

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-api/pkg/errors"
)

// ErrorBody is the wire shape for every error response.
type ErrorBody struct {
	Message string `json:"message"`
}

// RespondWithError maps an application error onto its HTTP status with a
// message-only body. Anything that is not an AppError becomes a generic
// 500 so internal details never reach the client.
func RespondWithError(c *gin.Context, err error) {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		c.JSON(appErr.StatusCode(), ErrorBody{Message: appErr.Message})
		return
	}

	log.Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Str("method", c.Request.Method).
		Msg("unhandled error")

	c.JSON(http.StatusInternalServerError, ErrorBody{Message: "internal server error"})
}

// RespondWithStatus is RespondWithError with the status forced, for the
// paths where context changes the mapping (login turns not-found into 401).
func RespondWithStatus(c *gin.Context, status int, err error) {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		c.JSON(status, ErrorBody{Message: appErr.Message})
		return
	}
	c.JSON(status, ErrorBody{Message: err.Error()})
}
