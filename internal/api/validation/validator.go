package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/blaisecz/zenith/internal/calendar"
	"github.com/blaisecz/zenith/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON name
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom timezone validator
	validate.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		tz := fl.Field().String()
		_, err := time.LoadLocation(tz)
		return err == nil
	})

	// Calendar day key, YYYY-MM-DD
	validate.RegisterValidation("daykey", func(fl validator.FieldLevel) bool {
		_, err := calendar.ParseDay(fl.Field().String())
		return err == nil
	})

	// Calendar month key, YYYY-MM
	validate.RegisterValidation("monthkey", func(fl validator.FieldLevel) bool {
		_, err := calendar.ParseMonth(fl.Field().String())
		return err == nil
	})

	// 24h wall-clock time, HH:MM
	validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return calendar.ValidClock(fl.Field().String())
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []problem.FieldError{{Field: "body", Message: err.Error()}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "email":
		return "must be a valid email address"
	case "timezone":
		return "must be a valid IANA timezone"
	case "daykey":
		return "must be a date in YYYY-MM-DD format"
	case "monthkey":
		return "must be a month in YYYY-MM format"
	case "hhmm":
		return "must be a 24h time in HH:MM format"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
