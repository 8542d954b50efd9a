package errors

import "fmt"

// tarError is the concrete implementation of TarError.
// It is private to enforce construction through package functions.
type tarError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *tarError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *tarError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *tarError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *tarError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none was attached.
func (e *tarError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *tarError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
