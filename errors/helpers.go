package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, basictar.ErrEmptyHeader) {
//	    // End-of-archive marker
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost TarError in err's chain.
// Returns CodeUnknown if the error is nil or not a TarError.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var tarErr TarError
	if stderrors.As(err, &tarErr) {
		return tarErr.Code()
	}

	return CodeUnknown
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not a TarError.
// This is a safe default that prevents inappropriate retry attempts.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var tarErr TarError
	if stderrors.As(err, &tarErr) {
		return tarErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not a TarError.
//
// Example:
//
//	if errors.IsRetryable(err) {
//	    // The operation kept its position; invoke it again.
//	}
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
