package handlers

import (
	"errors"
	"fmt"
	"strings"

	validator "github.com/go-playground/validator/v10"
)

// bindingErrorMessage turns gin binding failures into messages that name the
// offending fields instead of leaking struct internals to API clients.
func bindingErrorMessage(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return "Invalid request format: " + err.Error()
	}

	parts := make([]string, len(vErrs))
	for i, fe := range vErrs {
		switch fe.Tag() {
		case "required":
			parts[i] = fmt.Sprintf("%s is required", fe.Field())
		case "oneof":
			parts[i] = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		case "min":
			parts[i] = fmt.Sprintf("%s needs at least %s entries", fe.Field(), fe.Param())
		default:
			parts[i] = fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return strings.Join(parts, "; ")
}
