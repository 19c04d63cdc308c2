// Package errs holds the typed failure kinds returned by the use cases.
// Callers tell them apart with errors.As.
package errs

import "fmt"

type ResourceNotFoundError struct {
	Resource string
}

func (e *ResourceNotFoundError) Error() string {
	if e.Resource == "" {
		return "resource not found"
	}
	return e.Resource + " not found"
}

func (e *ResourceNotFoundError) Code() string { return "resource_not_found" }

type MaxDistanceError struct {
	DistanceKm float64
	MaxKm      float64
}

func (e *MaxDistanceError) Error() string {
	return fmt.Sprintf("max distance reached: %.3f km (limit %.3f km)", e.DistanceKm, e.MaxKm)
}

func (e *MaxDistanceError) Code() string { return "max_distance" }

type MaxNumberOfCheckInsError struct{}

func (e *MaxNumberOfCheckInsError) Error() string {
	return "max number of check-ins reached"
}

func (e *MaxNumberOfCheckInsError) Code() string { return "max_number_of_check_ins" }

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Code() string { return "invalid_" + e.Field }

type UserAlreadyExistsError struct{}

func (e *UserAlreadyExistsError) Error() string { return "e-mail already exists" }

func (e *UserAlreadyExistsError) Code() string { return "user_already_exists" }

type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string { return "invalid credentials" }

func (e *InvalidCredentialsError) Code() string { return "invalid_credentials" }

// Coded is implemented by every error in this package.
type Coded interface {
	error
	Code() string
}
