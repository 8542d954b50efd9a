package basictar

import "github.com/jmgilman/go/basictar/errors"

var (
	// ErrEmptyHeader is returned by Parse for an all-zero block. Two of them in
	// a row mark the end of an archive.
	ErrEmptyHeader = errors.New(errors.CodeEmptyHeader, "empty header")

	// ErrChecksumMismatch is returned by Parse when the stored checksum does not
	// match the checksum computed over the block.
	ErrChecksumMismatch = errors.New(errors.CodeInvalidData, "invalid header checksum")
)

// fieldError attaches the name of the offending field to err.
func fieldError(err error, f field) error {
	return errors.WithContext(err, "field", f.name)
}
