package basictar

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jmgilman/go/basictar/errors"
)

// decodeString reads a NUL-terminated string from field. The whole field is
// used when it holds no NUL. An empty value is reported as absent.
func decodeString(field []byte) (string, bool, error) {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	if len(field) == 0 {
		return "", false, nil
	}
	if !utf8.Valid(field) {
		return "", false, errors.New(errors.CodeUnsupported, "header field is not UTF-8")
	}
	return string(field), true, nil
}

// decodeRequiredString is decodeString with absence treated as invalid data.
func decodeRequiredString(field []byte) (string, error) {
	s, ok, err := decodeString(field)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errRequiredEmpty()
	}
	return s, nil
}

// encodeString writes s to field and fills the rest of it with NUL bytes.
func encodeString(field []byte, s string) error {
	if len(s) > len(field) {
		return errFieldTooSmall()
	}
	n := copy(field, s)
	clear(field[n:])
	return nil
}

// encodeRequiredString is encodeString for a value that must not be empty.
func encodeRequiredString(field []byte, s string) error {
	if s == "" {
		return errRequiredEmpty()
	}
	return encodeString(field, s)
}

// decodeTerminated reads a field whose value ends at the first space. Fields
// without a space fall back to plain NUL termination.
func decodeTerminated(field []byte) (string, bool, error) {
	if i := bytes.IndexByte(field, ' '); i >= 0 {
		field = field[:i]
	}
	return decodeString(field)
}

// encodeTerminated writes s to all but the last byte of field and sets the
// last byte to NUL.
func encodeTerminated(field []byte, s string) error {
	last := len(field) - 1
	if last < 0 {
		return errFieldTooSmall()
	}
	if err := encodeString(field[:last], s); err != nil {
		return err
	}
	field[last] = 0
	return nil
}

// decodeOctal reads an optional octal number.
func decodeOctal(field []byte) (uint64, bool, error) {
	s, _, err := decodeTerminated(field)
	if err != nil {
		return 0, false, err
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if s == "" {
		return 0, false, nil
	}

	n, err := strconv.ParseUint(s, 8, 64)
	if err != nil {
		return 0, false, errors.Wrap(err, errors.CodeInvalidData, "invalid octal number")
	}
	return n, true, nil
}

// decodeOptionalOctal is decodeOctal returning nil for an absent value.
func decodeOptionalOctal(field []byte) (*uint64, error) {
	n, ok, err := decodeOctal(field)
	if err != nil || !ok {
		return nil, err
	}
	return &n, nil
}

// decodeRequiredOctal is decodeOctal with absence treated as invalid data.
func decodeRequiredOctal(field []byte) (uint64, error) {
	n, ok, err := decodeOctal(field)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errRequiredEmpty()
	}
	return n, nil
}

// encodeOctal writes n as zero-padded octal digits followed by a NUL byte. A
// nil n is written as all zero digits.
func encodeOctal(field []byte, n *uint64) error {
	var digits string
	if n != nil {
		digits = strconv.FormatUint(*n, 8)
	}

	available := max(len(field)-1, 0)
	if len(digits) > available {
		return errors.New(errors.CodeAPIMisuse, "value too large for field")
	}
	return encodeTerminated(field, strings.Repeat("0", available-len(digits))+digits)
}

// encodeRequiredOctal is encodeOctal for a value that is always present.
func encodeRequiredOctal(field []byte, n uint64) error {
	return encodeOctal(field, &n)
}

func errRequiredEmpty() error {
	return errors.New(errors.CodeInvalidData, "required field is empty")
}

func errFieldTooSmall() error {
	return errors.New(errors.CodeAPIMisuse, "field is too small to hold the value")
}
