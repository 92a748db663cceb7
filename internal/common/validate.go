package common

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the dto validation tags and returns one message per
// failed field, or nil when the input is valid.
func ValidateStruct(s any) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is mandatory", fe.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("%s is not a well-formed email address", fe.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s should be at least %s characters long", fe.Field(), fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s should be at most %s characters long", fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}

	return messages
}
