package httpError

import "net/http"

type ErrorObj struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *ErrorObj) Error() string {
	return e.Message
}

func NewBadRequest() *ErrorObj {
	return &ErrorObj{
		Code:    http.StatusBadRequest,
		Message: "Bad Request",
	}
}

func NewUnauthorized() *ErrorObj {
	return &ErrorObj{
		Code:    http.StatusUnauthorized,
		Message: "Unauthorized",
	}
}

func NewForbidden() *ErrorObj {
	return &ErrorObj{
		Code:    http.StatusForbidden,
		Message: "Forbidden",
	}
}

func NewNotFound() *ErrorObj {
	return &ErrorObj{
		Code:    http.StatusNotFound,
		Message: "Not Found",
	}
}

func NewConflict() *ErrorObj {
	return &ErrorObj{
		Code:    http.StatusConflict,
		Message: "Conflict",
	}
}

func NewInternalServerError() *ErrorObj {
	return &ErrorObj{
		Code:    http.StatusInternalServerError,
		Message: "Internal Server Error",
	}
}

// NewUnprocessableEntity carries field-keyed validation messages so the
// caller can redisplay the form with the offending fields marked.
func NewUnprocessableEntity(fields map[string]string) *ErrorObj {
	return &ErrorObj{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation Error",
		Fields:  fields,
	}
}
