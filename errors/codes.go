package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability.
type ErrorCode string

const (
	// Header errors.

	// CodeEmptyHeader indicates an all-zero header block. It is how the end of
	// an archive is detected, not a data error.
	CodeEmptyHeader ErrorCode = "EMPTY_HEADER"

	// CodeInvalidData indicates a header block holds malformed data: a checksum
	// mismatch, malformed octal digits or an empty required field.
	CodeInvalidData ErrorCode = "INVALID_DATA"

	// CodeUnsupported indicates a field might be valid but holds a value the
	// codec cannot represent, such as a string that is not UTF-8.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeAPIMisuse indicates a programming error by the caller, such as a
	// value that does not fit its destination field.
	CodeAPIMisuse ErrorCode = "API_MISUSE"

	// Stream errors.

	// CodeUnexpectedEOF indicates the stream ended before a record was complete.
	CodeUnexpectedEOF ErrorCode = "UNEXPECTED_EOF"

	// CodeTransient indicates a timeout or interruption. The failed operation
	// kept its progress and can be resumed.
	CodeTransient ErrorCode = "TRANSIENT"

	// CodeIO indicates any other failure of the underlying stream.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeUnknown indicates an error that did not originate in this module.
	CodeUnknown ErrorCode = "UNKNOWN"
)
