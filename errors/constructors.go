package errors

import "fmt"

// New creates a new TarError with the given code and message.
// The classification is determined by the error code.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidData, "invalid header checksum")
func New(code ErrorCode, message string) TarError {
	return &tarError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new TarError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeAPIMisuse, "payload is %d bytes, header says %d", n, size)
func Newf(code ErrorCode, format string, args ...interface{}) TarError {
	return New(code, fmt.Sprintf(format, args...))
}
