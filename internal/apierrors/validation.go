package apierrors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// report fields by their json names, the names API clients send
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// ValidationError sends a 400 response for binding and validation failures
func ValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(c, CodeInvalidInput, buildValidationMessage(validationErrs))
		return
	}

	logger.WarnWithError(c.Request.Context(), "request binding failed", err)
	BadRequest(c, CodeInvalidInput, "Invalid request format. Please check your JSON syntax.")
}

func buildValidationMessage(validationErrs validator.ValidationErrors) string {
	switch len(validationErrs) {
	case 0:
		return "Invalid request"
	case 1:
		return fieldMessage(validationErrs[0])
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}
	return "Validation failed: " + strings.Join(messages, "; ")
}

func fieldMessage(fieldErr validator.FieldError) string {
	field, param := fieldErr.Field(), fieldErr.Param()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_without":
		return fmt.Sprintf("%s is required when %s is missing", field, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be an absolute URL", field)
	case "fqdn":
		return fmt.Sprintf("%s must be a domain name such as shop.myshopify.com", field)
	case "ip":
		return fmt.Sprintf("%s must be a valid IP address", field)
	case "hexadecimal":
		return fmt.Sprintf("%s must be hexadecimal", field)
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, param)
	case "min", "max":
		return boundMessage(fieldErr)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fieldErr.Tag())
	}
}

// min and max mean length for strings and magnitude for numbers
func boundMessage(fieldErr validator.FieldError) string {
	word := "at least"
	if fieldErr.Tag() == "max" {
		word = "at most"
	}
	if fieldErr.Kind() == reflect.String || fieldErr.Kind() == reflect.Slice {
		return fmt.Sprintf("%s must be %s %s characters", fieldErr.Field(), word, fieldErr.Param())
	}
	return fmt.Sprintf("%s must be %s %s", fieldErr.Field(), word, fieldErr.Param())
}
