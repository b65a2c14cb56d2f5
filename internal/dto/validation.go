package dto

import "strings"

// ValidationError is a single field-level validation failure, shaped like
// the error objects the web client already consumes: at minimum a msg,
// plus the offending value and its body path.
type ValidationError struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// NewFieldError builds a validation failure for a request body field.
func NewFieldError(path, value, msg string) ValidationError {
	return ValidationError{
		Type:     "field",
		Value:    value,
		Msg:      msg,
		Path:     path,
		Location: "body",
	}
}

// ValidationErrors is the ordered list of failures for one request. It
// implements error so services can return it alongside store failures;
// handlers detect it with errors.As and render the list with status 401.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Msg
	}
	return strings.Join(msgs, " ")
}
