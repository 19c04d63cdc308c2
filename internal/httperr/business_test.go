package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-checkin/internal/domain/errs"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&errs.ResourceNotFoundError{Resource: "gym"}, http.StatusNotFound},
		{&errs.MaxDistanceError{}, http.StatusConflict},
		{fmt.Errorf("wrapped: %w", &errs.MaxNumberOfCheckInsError{}), http.StatusConflict},
		{&errs.UserAlreadyExistsError{}, http.StatusConflict},
		{&errs.ValidationError{Field: "title"}, http.StatusBadRequest},
		{&errs.InvalidCredentialsError{}, http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Status(tt.err), tt.err.Error())
	}
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", &errs.ResourceNotFoundError{Resource: "gym"}, http.StatusNotFound, "resource_not_found"},
		{"daily limit", &errs.MaxNumberOfCheckInsError{}, http.StatusConflict, "max_number_of_check_ins"},
		{"too far", fmt.Errorf("check in: %w", &errs.MaxDistanceError{DistanceKm: 2, MaxKm: 0.1}), http.StatusConflict, "max_distance"},
		{"duplicate e-mail", &errs.UserAlreadyExistsError{}, http.StatusConflict, "user_already_exists"},
		{"validation", &errs.ValidationError{Field: "title", Reason: "must not be empty"}, http.StatusBadRequest, "invalid_title"},
		{"credentials", &errs.InvalidCredentialsError{}, http.StatusBadRequest, "invalid_credentials"},
		{"uncoded", errors.New("connection refused"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			FromError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestFromErrorHidesUncodedMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FromError(c, errors.New("connection refused"))

	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Len(t, c.Errors, 1)
}
