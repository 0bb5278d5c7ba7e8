package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	templates = map[string]string{
		"required": "{field} is required",
		"notblank": "{field} is required",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
	}
)

func message(valErr val.FieldError) string {
	tmpl := templates[valErr.Tag()]
	if tmpl == "" {
		return valErr.Error()
	}

	msg := strings.ReplaceAll(tmpl, "{field}", valErr.Field())

	return strings.TrimSpace(strings.ReplaceAll(msg, "{param}", valErr.Param()))
}

// messages returns the first message plus a message per failing field.
func messages(err error) (string, map[string]string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return err.Error(), nil
	}

	fields := make(map[string]string, len(valErrors))
	for _, valErr := range valErrors {
		if _, ok := fields[valErr.Field()]; ok {
			continue
		}

		fields[valErr.Field()] = message(valErr)
	}

	return message(valErrors[0]), fields
}
