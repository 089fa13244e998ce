package errors

import (
	"github.com/botfut/botfut/constant"
	validatorx "github.com/botfut/botfut/utils/validator"
)

type CustomError struct {
	errType constant.ErrorType
	details []validatorx.FieldError
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Details returns the field errors attached to a validation failure.
func (c CustomError) Details() []validatorx.FieldError {
	return c.details
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError wraps field errors into an ErrInvalidForm CustomError.
func SetValidationError(details []validatorx.FieldError) CustomError {
	return CustomError{
		errType: constant.ErrInvalidForm,
		details: details,
	}
}
