package apperror

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// HTTPError is the transport view of an error, ready for response.Error.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func asAppError(err error, target **AppError) bool {
	return err != nil && errors.As(err, target)
}

// ToHTTP maps any error returned by a service into status, code and message.
// Unknown errors never leak their text to the client.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if asAppError(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		out := HTTPError{Status: status, Code: appErr.Code, Message: appErr.Message}
		if appErr.Field != "" {
			out.Details = map[string]string{"field": appErr.Field}
		}
		return out
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return HTTPError{Status: ErrNotFound.HTTPStatus, Code: ErrNotFound.Code, Message: ErrNotFound.Message}
	}

	return HTTPError{Status: ErrInternal.HTTPStatus, Code: ErrInternal.Code, Message: ErrInternal.Message}
}
