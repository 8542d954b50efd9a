package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a code and message while preserving the original
// error for errors.Is and errors.As.
//
// If err already carries a TarError, its classification is preserved.
// Otherwise the default classification for code is used.
//
// Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) TarError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) TarError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single
// operation. The context map is copied.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := stream.ReadExact(r, buf, cb); err != nil {
//	    return errors.WrapWithContext(err, errors.CodeIO, "payload read failed", map[string]interface{}{
//	        "path":   hdr.Path,
//	        "offset": off,
//	    })
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) TarError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var tarErr TarError
	if errors.As(err, &tarErr) {
		classification = tarErr.Classification()
	}

	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = copyContext(ctx)
	}

	return &tarError{
		code:           code,
		classification: classification,
		message:        message,
		context:        contextCopy,
		cause:          err,
	}
}
