// Package errors provides structured errors for the basictar codec and its
// stream and record layers.
//
// Every failure produced by this module carries an error code describing the
// category of the failure (empty header, invalid data, unsupported value, API
// misuse, unexpected end of stream, transient or generic I/O failure) and a
// classification telling the caller whether the failed operation can be
// resumed. The package stays compatible with the standard library (errors.Is,
// errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeInvalidData, "invalid octal number")
//	err = errors.WithContext(err, "field", "mode")
//
// Wrapping stream failures:
//
//	if err := stream.ReadExact(r, buf, progress); err != nil {
//	    return errors.Wrap(err, errors.CodeTransient, "read interrupted")
//	}
//
// Deciding whether to resume:
//
//	rec, err := reader.Next(ctx)
//	if errors.IsRetryable(err) {
//	    // The reader kept its position; call Next again later.
//	}
//
// # Error Codes
//
//   - CodeEmptyHeader: an all-zero header block (end-of-archive marker)
//   - CodeInvalidData: checksum mismatch, malformed octal digits, required field empty
//   - CodeUnsupported: a string field that is not valid UTF-8
//   - CodeAPIMisuse: a value that does not fit its field, or a misused record writer
//   - CodeUnexpectedEOF: the stream ended in the middle of a record
//   - CodeTransient: a timeout or interruption that left the operation resumable
//   - CodeIO: any other stream failure
//   - CodeUnknown: errors that did not originate in this module
//
// # Classification
//
// CodeTransient is retryable by default; every other code is permanent.
// Wrapping a classified error keeps its classification.
package errors
