package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"family-ledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with the ledger's field rules
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a validator with the custom tags registered:
//
//	frequency       one of the supported schedule frequencies
//	flow            expense or income
//	calendar_date   a YYYY-MM-DD string
//	money           a non-negative decimal string with at most two fraction digits
//	positive_money  like money, but strictly greater than zero
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("frequency", validateFrequency)
	_ = v.RegisterValidation("flow", validateFlow)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("positive_money", validatePositiveMoney)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure.
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateFrequency(fl validator.FieldLevel) bool {
	return models.Frequency(strings.ToLower(fl.Field().String())).IsValid()
}

func validateFlow(fl validator.FieldLevel) bool {
	return models.Flow(strings.ToLower(fl.Field().String())).IsValid()
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

func parseMoney(fl validator.FieldLevel) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return decimal.Zero, false
	}
	return amount, amount.Equal(amount.Round(2))
}

func validateMoney(fl validator.FieldLevel) bool {
	amount, ok := parseMoney(fl)
	return ok && !amount.IsNegative()
}

func validatePositiveMoney(fl validator.FieldLevel) bool {
	amount, ok := parseMoney(fl)
	return ok && amount.IsPositive()
}

// FormatErrors turns validator failures into "field message" strings. Any
// other error is returned as its message.
func FormatErrors(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, fmt.Sprintf("%s %s", fe.Field(), FormatFieldError(fe)))
	}
	return details
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "frequency":
		return "must be one of daily, weekly, monthly, bi-monthly, quarterly, semi-annually, annually"
	case "flow":
		return "must be expense or income"
	case "calendar_date":
		return "must be a date in YYYY-MM-DD format"
	case "money":
		return "must be a non-negative amount with at most 2 decimal places"
	case "positive_money":
		return "must be a positive amount with at most 2 decimal places"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
