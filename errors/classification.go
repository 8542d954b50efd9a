package errors

// ErrorClassification indicates whether a failed operation can be resumed.
type ErrorClassification string

const (
	// ClassificationRetryable indicates the operation kept its progress and may
	// succeed when invoked again.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates the operation will not succeed on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeTransient: ClassificationRetryable,

	CodeEmptyHeader:   ClassificationPermanent,
	CodeInvalidData:   ClassificationPermanent,
	CodeUnsupported:   ClassificationPermanent,
	CodeAPIMisuse:     ClassificationPermanent,
	CodeUnexpectedEOF: ClassificationPermanent,
	CodeIO:            ClassificationPermanent,
	CodeUnknown:       ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
