// Package validate wraps go-playground/validator with the booking rules and
// the human-readable messages surfaced to API clients.
package validate

import (
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Field-level messages. A "Field.tag" key wins over a bare "Field" key.
var messages = map[string]string{
	"Name":                    "Name must be at least 2 characters",
	"Email":                   "Invalid email",
	"Mobile":                  "Mobile must be 10 digits",
	"Password.min":            "Password must be at least 6 characters",
	"Password.required":       "Password is required",
	"Date":                    "Date must be YYYY-MM-DD",
	"Time":                    "Time must be HH:MM",
	"NumberOfPeople.min":      "At least 1 person required",
	"NumberOfPeople.max":      "Maximum 10 people",
	"NumberOfPeople.gte":      "At least 1 person required",
	"NumberOfPeople.lte":      "Maximum 10 people",
	"NumberOfPeople.required": "Number of people is required",
}

// Validator checks request payloads and reports the first violated rule.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the isodate and clock tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return IsDate(fl.Field().String())
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return IsClock(fl.Field().String())
	})
	return &Validator{v: v}
}

// Struct validates s and returns an error carrying the message of the first
// failing field, or nil.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errors.New(message(fieldErrs[0].StructField(), fieldErrs[0].Tag()))
	}
	return err
}

// Var validates a single value against tag, reporting failures under field.
func (val *Validator) Var(field string, value any, tag string) error {
	err := val.v.Var(value, tag)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errors.New(message(field, fieldErrs[0].Tag()))
	}
	return err
}

// IsDate reports whether s is a real calendar date written as YYYY-MM-DD.
func IsDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// IsClock reports whether s is a 24-hour time written as HH:MM.
func IsClock(s string) bool {
	if !timePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(timeLayout, s)
	return err == nil
}

func message(field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := messages[field]; ok {
		return msg
	}
	return "Invalid " + field
}
