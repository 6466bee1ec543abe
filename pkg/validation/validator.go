package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

// Init configures the global validator used by Gin's binding.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs JSON field naming, the value object tags
// (currency, provider, paymethod, channel, attendance) and the aliases on v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	registerValueObject(v, "currency", func(s string) error { _, err := vo.NewCurrency(s); return err })
	registerValueObject(v, "provider", func(s string) error { _, err := vo.NewPaymentProvider(s); return err })
	registerValueObject(v, "paymethod", func(s string) error { _, err := vo.NewPaymentMethod(s); return err })
	registerValueObject(v, "channel", func(s string) error { _, err := vo.NewNotificationChannel(s); return err })
	registerValueObject(v, "attendance", func(s string) error { _, err := vo.NewAttendanceStatus(s); return err })

	v.RegisterAlias("nonzero", "required")
	v.RegisterAlias("amount", "gt=0")
	v.RegisterAlias("members", "omitempty,gt=0")
}

func registerValueObject(v *validator.Validate, tag string, parse func(string) error) {
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return parse(fl.Field().String()) == nil
	})
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required", "nonzero":
		return "is required"
	case "required_with":
		return "is required when " + param + " is present"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", param)
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")

	case "currency":
		return "must be a supported currency"
	case "provider":
		return "must be a supported payment provider"
	case "paymethod":
		return "must be a supported payment method"
	case "channel":
		return "must be a supported notification channel"
	case "attendance":
		return "must be a valid attendance status"
	case "amount":
		return "must be greater than 0"
	case "members":
		return "must be greater than 0"

	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
