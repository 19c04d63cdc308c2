package httperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FromBinding reports a ShouldBind failure. Validation failures name the
// first offending field in the code (invalid_<field>); malformed bodies
// become invalid_request.
func FromBinding(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		field := strings.ToLower(fe.Field())
		BadRequest(c, "invalid_"+field, bindingMessage(field, fe))
		return
	}

	BadRequest(c, "invalid_request", "Malformed request.")
}

func bindingMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s.", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s.", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid e-mail.", field)
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}
