package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В сообщениях используются имена полей из JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateStruct проверяет структуру запроса по тегам validate
// Возвращает читаемое сообщение со списком некорректных полей
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, describeFieldError(fe))
	}

	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: обязательное поле", field)
	case "gt", "gte", "min":
		return fmt.Sprintf("%s: значение меньше допустимого (%s)", field, fe.Param())
	case "lt", "lte", "max":
		return fmt.Sprintf("%s: значение больше допустимого (%s)", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: допустимые значения: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s: не прошло проверку %s", field, fe.Tag())
	}
}
