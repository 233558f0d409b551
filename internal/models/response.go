package models

// FieldError is a single validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Response is the envelope wrapping every API response
type Response struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// OK wraps a payload in a success envelope
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps a message in an error envelope
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// FailValidation wraps per-field validation errors in an error envelope
func FailValidation(errors []FieldError) Response {
	return Response{Success: false, Message: "Validation failed", Errors: errors}
}
