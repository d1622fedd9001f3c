package dto

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InitValidator makes validation errors name fields by their JSON key.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldNameFromTag)
	}
}

func fieldNameFromTag(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// AdaptFieldValidationError maps a validator error to a message that can be shown to the caller.
func AdaptFieldValidationError(fe validator.FieldError) string {
	inner := func(fe validator.FieldError) string {
		switch fe.ActualTag() {
		case "required":
			return "is required"
		case "email":
			return "must be a valid email address"
		case "max":
			return fmt.Sprintf("must have at most %s characters", fe.Param())
		case "min":
			return fmt.Sprintf("must have at least %s characters", fe.Param())
		case "oneof":
			return fmt.Sprintf("must be one of %s", strings.Join(strings.Split(fe.Param(), " "), ", "))
		case "uuid":
			return "should be a UUID"
		}
		return "is invalid"
	}

	return fmt.Sprintf("field `%s` %s", fe.Field(), inner(fe))
}
