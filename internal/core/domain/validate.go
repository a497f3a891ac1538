package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Email format is left to the server; the client only rejects empty input.
type credentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type profile struct {
	Username string `validate:"required,max=64"`
}

// ValidateCredentials checks login and registration input before it is sent.
func ValidateCredentials(email, password string) error {
	return structError(validate.Struct(credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	}))
}

// ValidateProfile checks a profile edit before it is sent.
func ValidateProfile(username string) error {
	return structError(validate.Struct(profile{Username: strings.TrimSpace(username)}))
}

// structError reports the first failing field as a ValidationError.
func structError(err error) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return &ValidationError{Field: strings.ToLower(fe.Field()), Message: fieldMessage(fe)}
	}
	return &ValidationError{Message: err.Error()}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
