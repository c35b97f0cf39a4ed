package dto

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report field names by their json tag so meta matches the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("password_strength", validatePasswordStrength)
	_ = validate.RegisterValidation("username_format", validateUsernameFormat)
}

// password_strength requires at least one uppercase letter, one lowercase
// letter and one number.
func validatePasswordStrength(fl validator.FieldLevel) bool {
	var hasUpper, hasLower, hasNumber bool
	for _, char := range fl.Field().String() {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
		if hasUpper && hasLower && hasNumber {
			return true
		}
	}
	return hasUpper && hasLower && hasNumber
}

// username_format allows letters, numbers and underscores.
func validateUsernameFormat(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if username == "" {
		return false
	}
	for _, char := range username {
		if !unicode.IsLetter(char) && !unicode.IsNumber(char) && char != '_' {
			return false
		}
	}
	return true
}

// check runs struct validation and converts the first violation into a
// domain error.
func check(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return domain.ErrInvalidJSON(err)
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return domain.ErrMissingField(field)
	case "email":
		return domain.ErrInvalidField(field, "must be a valid email address")
	case "min":
		return domain.ErrInvalidField(field, "must be at least "+fe.Param()+" characters")
	case "max":
		return domain.ErrInvalidField(field, "must be at most "+fe.Param()+" characters")
	case "oneof":
		return domain.ErrInvalidField(field, "must be one of: "+fe.Param())
	case "url":
		return domain.ErrInvalidField(field, "must be a valid URL")
	case "password_strength":
		return domain.ErrWeakPassword("must contain an uppercase letter, a lowercase letter and a number")
	case "username_format":
		return domain.ErrInvalidField(field, "may only contain letters, numbers and underscores")
	default:
		return domain.ErrInvalidField(field, "invalid value")
	}
}
