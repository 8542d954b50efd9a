package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new TarError; the original is not modified.
//
// If err is not a TarError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidData, "invalid octal number")
//	err = errors.WithContext(err, "field", "uid")
func WithContext(err error, key string, value interface{}) TarError {
	if err == nil {
		return nil
	}

	tarErr := asTarError(err)
	newContext := make(map[string]interface{})
	for k, v := range tarErr.Context() {
		newContext[k] = v
	}
	newContext[key] = value

	return &tarError{
		code:           tarErr.Code(),
		classification: tarErr.Classification(),
		message:        tarErr.Message(),
		context:        newContext,
		cause:          tarErr.Unwrap(),
	}
}

// WithClassification overrides the classification of an error.
//
// If err is not a TarError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	// The transport gave up for good; do not resume.
//	err = errors.WithClassification(err, errors.ClassificationPermanent)
func WithClassification(err error, classification ErrorClassification) TarError {
	if err == nil {
		return nil
	}

	tarErr := asTarError(err)
	return &tarError{
		code:           tarErr.Code(),
		classification: classification,
		message:        tarErr.Message(),
		context:        tarErr.Context(),
		cause:          tarErr.Unwrap(),
	}
}

// asTarError returns the outermost TarError in err's chain, or converts err
// into one with CodeUnknown.
func asTarError(err error) TarError {
	var tarErr TarError
	if errors.As(err, &tarErr) {
		return tarErr
	}
	return &tarError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
