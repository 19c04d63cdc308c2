package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsAreDistinguishable(t *testing.T) {
	wrapped := fmt.Errorf("check in: %w", &MaxDistanceError{DistanceKm: 2.5, MaxKm: 0.1})

	var maxDist *MaxDistanceError
	assert.True(t, errors.As(wrapped, &maxDist))
	assert.Equal(t, 2.5, maxDist.DistanceKm)

	var notFound *ResourceNotFoundError
	assert.False(t, errors.As(wrapped, &notFound))

	var tooMany *MaxNumberOfCheckInsError
	assert.False(t, errors.As(wrapped, &tooMany))
}

func TestCodes(t *testing.T) {
	tests := []struct {
		err  Coded
		code string
	}{
		{&ResourceNotFoundError{Resource: "gym"}, "resource_not_found"},
		{&MaxDistanceError{}, "max_distance"},
		{&MaxNumberOfCheckInsError{}, "max_number_of_check_ins"},
		{&ValidationError{Field: "title", Reason: "required"}, "invalid_title"},
		{&UserAlreadyExistsError{}, "user_already_exists"},
		{&InvalidCredentialsError{}, "invalid_credentials"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.err.Code())
		assert.NotEmpty(t, tt.err.Error())
	}
}

func TestResourceNotFoundMessage(t *testing.T) {
	assert.Equal(t, "gym not found", (&ResourceNotFoundError{Resource: "gym"}).Error())
	assert.Equal(t, "resource not found", (&ResourceNotFoundError{}).Error())
}
