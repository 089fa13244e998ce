package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/botfut/botfut/utils/mask"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex

	timeOfDay = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):([0-5][0-9])$`)
)

// FieldError describes one failed rule on one field, named after its json tag.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}

	v = gpvalidator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("brphone", func(fl gpvalidator.FieldLevel) bool {
		return mask.IsValidBrazilianPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("hhmm", func(fl gpvalidator.FieldLevel) bool {
		return IsValidTime(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl gpvalidator.FieldLevel) bool {
		return IsCalendarDate(fl.Field().String())
	})
	_ = v.RegisterValidation("cents", func(fl gpvalidator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
			return fl.Field().Int() >= 0
		}
		return false
	})
}

// ValidateStruct validates a struct using go-playground/validator. Rule failures come back as a
// *multierror.Error of FieldError values.
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs gpvalidator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	var errs *multierror.Error
	for _, valErr := range valErrs {
		errs = multierror.Append(errs, FieldError{
			Field:   valErr.Field(),
			Tag:     valErr.Tag(),
			Message: message(valErr),
		})
	}
	return errs.ErrorOrNil()
}

// FieldErrors unpacks the field errors carried by err, if any.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		var fe FieldError
		if errors.As(err, &fe) {
			return []FieldError{fe}
		}
		return nil
	}

	out := make([]FieldError, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		var fe FieldError
		if errors.As(e, &fe) {
			out = append(out, fe)
		}
	}
	return out
}

// IsValidTime reports whether s is a 24-hour HH:mm time.
func IsValidTime(s string) bool {
	return timeOfDay.MatchString(s)
}

// IsCalendarDate reports whether iso is a YYYY-MM-DD date that exists.
func IsCalendarDate(iso string) bool {
	_, err := time.Parse(time.DateOnly, iso)
	return err == nil
}

func message(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "brphone":
		return "must be a phone number with area code"
	case "hhmm":
		return "must be a time between 00:00 and 23:59"
	case "isodate":
		return "must be a valid date"
	case "cents":
		return "must not be negative"
	case "oneof":
		return "must be one of " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	}
	return strings.TrimSpace(fe.Tag() + " " + fe.Param())
}
