package basictar

// Header is a classic tar header.
//
// Optional numeric fields are pointers; nil means the field was empty in the
// block. An empty Linkname means no link name.
type Header struct {
	// Path is the record's path and name. It must not be empty and may hold at
	// most 100 bytes of UTF-8.
	Path string

	// Mode holds the access mode bits (e.g. 0o644).
	Mode *uint64

	UID *uint64
	GID *uint64

	// Size is the length of the payload that follows the header, at most
	// 11 octal digits.
	Size uint64

	// ModTime is the modification time in seconds since the Unix epoch.
	ModTime *uint64

	Typeflag Typeflag
	Linkname string
}

// Uint64 returns a pointer to v, for filling optional Header fields.
func Uint64(v uint64) *uint64 {
	return &v
}

// Parse decodes a header block.
//
// An all-zero block yields ErrEmptyHeader. The checksum is verified before any
// field is decoded, and the first malformed field fails the whole header.
func Parse(b Block) (Header, error) {
	if b.IsZero() {
		return Header{}, ErrEmptyHeader
	}
	if err := verifyChecksum(&b); err != nil {
		return Header{}, err
	}

	var (
		h   Header
		err error
	)
	if h.Path, err = decodeRequiredString(b.Name()); err != nil {
		return Header{}, fieldError(err, fieldName)
	}

	if h.Mode, err = decodeOptionalOctal(b.Mode()); err != nil {
		return Header{}, fieldError(err, fieldMode)
	}
	if h.UID, err = decodeOptionalOctal(b.UID()); err != nil {
		return Header{}, fieldError(err, fieldUID)
	}
	if h.GID, err = decodeOptionalOctal(b.GID()); err != nil {
		return Header{}, fieldError(err, fieldGID)
	}

	if h.Size, err = decodeRequiredOctal(b.Size()); err != nil {
		return Header{}, fieldError(err, fieldSize)
	}
	if h.ModTime, err = decodeOptionalOctal(b.ModTime()); err != nil {
		return Header{}, fieldError(err, fieldModTime)
	}

	h.Typeflag = Typeflag(b.Typeflag()[0])

	if h.Linkname, _, err = decodeString(b.Linkname()); err != nil {
		return Header{}, fieldError(err, fieldLinkname)
	}
	return h, nil
}

// Serialize encodes the header into a block and stamps its checksum.
//
// It fails if a value does not fit its field, for example a path longer than
// 100 bytes or a size of 8 GiB or more.
func (h Header) Serialize() (Block, error) {
	var b Block
	if err := encodeRequiredString(b.Name(), h.Path); err != nil {
		return Block{}, fieldError(err, fieldName)
	}

	if err := encodeOctal(b.Mode(), h.Mode); err != nil {
		return Block{}, fieldError(err, fieldMode)
	}
	if err := encodeOctal(b.UID(), h.UID); err != nil {
		return Block{}, fieldError(err, fieldUID)
	}
	if err := encodeOctal(b.GID(), h.GID); err != nil {
		return Block{}, fieldError(err, fieldGID)
	}

	if err := encodeRequiredOctal(b.Size(), h.Size); err != nil {
		return Block{}, fieldError(err, fieldSize)
	}
	if err := encodeOctal(b.ModTime(), h.ModTime); err != nil {
		return Block{}, fieldError(err, fieldModTime)
	}

	b.Typeflag()[0] = byte(h.Typeflag)

	if err := encodeString(b.Linkname(), h.Linkname); err != nil {
		return Block{}, fieldError(err, fieldLinkname)
	}

	writeChecksum(&b)
	return b, nil
}
