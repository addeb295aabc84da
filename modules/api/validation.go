package api

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// nationalIDPattern is the punctuated fixed-length national id format,
// e.g. "123.456.789-12".
var nationalIDPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// regexp match is intentionally registered as its own tag so the
	// length check can report a distinct message first.
	_ = v.RegisterValidation("nationalid", func(fl validator.FieldLevel) bool {
		return nationalIDPattern.MatchString(fl.Field().String())
	})
	return v
}

// fieldLabels maps struct fields to the labels used in client-facing
// validation messages.
var fieldLabels = map[string]string{
	"Name":       "Name",
	"NationalID": "National ID",
	"BirthDate":  "Birth date",
	"Password":   "Password",
	"Note":       "Note",
	"IsAdmin":    "Permission",
}

// validateBody validates a request body struct and returns the ordered
// list of human-readable messages, one per failed field.
func validateBody(body any) []string {
	err := validate.Struct(body)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid request body"}
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, messageFor(fe))
	}
	return messages
}

func messageFor(fe validator.FieldError) string {
	label := fieldLabels[fe.StructField()]
	if label == "" {
		label = fe.StructField()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "nationalid":
		return "National ID format is invalid"
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// birthDateLayouts are the accepted birth date formats, tried in order.
var birthDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

// parseBirthDate parses a birth date from any of the accepted layouts.
func parseBirthDate(value string) (time.Time, error) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized birth date %q", value)
}
