package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-checkin/internal/domain/errs"
)

// Status maps a use-case error to its HTTP status.
func Status(err error) int {
	var (
		notFound    *errs.ResourceNotFoundError
		maxDistance *errs.MaxDistanceError
		tooMany     *errs.MaxNumberOfCheckInsError
		validation  *errs.ValidationError
		exists      *errs.UserAlreadyExistsError
		invalid     *errs.InvalidCredentialsError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &maxDistance), errors.As(err, &tooMany), errors.As(err, &exists):
		return http.StatusConflict
	case errors.As(err, &validation), errors.As(err, &invalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes err as a JSON error body. Errors without a code are
// reported as internal_error and their message is not exposed.
func FromError(c *gin.Context, err error) {
	var coded errs.Coded
	if !errors.As(err, &coded) {
		_ = c.Error(err)
		Internal(c, "internal_error", "Internal server error.")
		return
	}

	switch Status(err) {
	case http.StatusNotFound:
		NotFound(c, coded.Code(), coded.Error())
	case http.StatusConflict:
		Conflict(c, coded.Code(), coded.Error())
	case http.StatusBadRequest:
		BadRequest(c, coded.Code(), coded.Error())
	default:
		_ = c.Error(err)
		Internal(c, "internal_error", "Internal server error.")
	}
}
