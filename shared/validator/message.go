package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"notblank": "{field} is required",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"email":    "{field} must be a valid email address",
		"url":      "{field} must be a valid URL",
		"http_url": "{field} must be a valid web address",
		"numeric":  "{field} must be a number",
		"datetime": "{field} must be a valid date",
		"phone":    "{field} must be a valid phone number",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
	}
)

func describe(valErr val.FieldError, field string) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", field)
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if _, ok := messages[valErr.Tag()]; ok {
				return describe(valErr, valErr.Field())
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

func fields(err error) map[string]string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return nil
	}

	res := make(map[string]string, len(valErrors))
	for _, valErr := range valErrors {
		if _, seen := res[valErr.Field()]; seen {
			continue
		}

		res[valErr.Field()] = describe(valErr, valErr.Field())
	}

	return res
}
