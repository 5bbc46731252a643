package models

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	alphaSpaceRe = regexp.MustCompile(`^[A-Za-z ]+$`)
	alnumSpaceRe = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names so error messages match the
	// payload the client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("alpha_space", func(fl validator.FieldLevel) bool {
		return alphaSpaceRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("alnum_space", func(fl validator.FieldLevel) bool {
		return alnumSpaceRe.MatchString(fl.Field().String())
	})

	return v
}

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates every offending field of a payload.
// Handlers surface it as HTTP 400 with the list under "detail".
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + " " + fe.Message
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Validate checks a payload struct against its tags. It returns nil or a
// ValidationErrors listing every failed field. No field is coerced or
// truncated; validation performs no I/O and is shared by create and
// update paths.
func Validate(payload interface{}) ValidationErrors {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "payload", Message: err.Error()}}
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "alpha_space":
		return "must contain only letters and spaces"
	case "alnum_space":
		return "must contain only letters, digits and spaces"
	case "alphanum":
		return "must contain only letters and digits"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return "must be a date in " + fe.Param() + " format"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
