package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldViolation describes one rejected request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// formatFieldName turns "start_time" into "Start Time".
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func violationMessage(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// MapValidationError turns binding failures into an INVALID_INPUT AppError.
// The message names the first bad field; Details lists all of them.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		violations := make([]FieldViolation, 0, len(errs))
		for _, e := range errs {
			name := formatFieldName(e.Field())
			violations = append(violations, FieldViolation{
				Field:   e.Field(),
				Rule:    e.Tag(),
				Message: violationMessage(name, e.Tag()),
			})
		}

		var appErr *AppError
		if errs[0].Tag() == "required" {
			appErr = RequiredField(formatFieldName(errs[0].Field()))
		} else {
			appErr = InvalidField(formatFieldName(errs[0].Field()))
		}
		appErr.Details = violations
		return appErr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		name := formatFieldName(typeErr.Field)
		appErr := New(CodeInvalidInput, fmt.Sprintf("%s must be a %s", name, typeErr.Type.Kind()), http.StatusBadRequest)
		appErr.Details = []FieldViolation{{Field: typeErr.Field, Rule: "type", Message: appErr.Message}}
		return appErr
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
