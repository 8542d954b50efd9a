package basictar

import "strconv"

// Typeflag classifies a record. Parse preserves the raw byte, so values other
// than the constants below are passed through unchanged.
type Typeflag byte

// Type flags known to the classic and POSIX formats.
const (
	TypeReg     Typeflag = '0' // Regular file
	TypeLink    Typeflag = '1' // Hard link
	TypeSymlink Typeflag = '2' // Symbolic link
	TypeChar    Typeflag = '3' // Character device node
	TypeBlock   Typeflag = '4' // Block device node
	TypeDir     Typeflag = '5' // Directory
	TypeFifo    Typeflag = '6' // FIFO node

	// TypeReserved is reserved for files an implementation associates with
	// some high-performance attribute.
	TypeReserved Typeflag = '7'

	// TypePAXSingle marks a PAX extended header that applies to the next record.
	TypePAXSingle Typeflag = 'x'

	// TypePAXGlobal marks a PAX extended header that applies to all following records.
	TypePAXGlobal Typeflag = 'g'
)

var typeflagNames = map[Typeflag]string{
	TypeReg:       "regular",
	TypeLink:      "hardlink",
	TypeSymlink:   "symlink",
	TypeChar:      "char-device",
	TypeBlock:     "block-device",
	TypeDir:       "directory",
	TypeFifo:      "fifo",
	TypeReserved:  "reserved",
	TypePAXSingle: "pax-single",
	TypePAXGlobal: "pax-global",
}

func (t Typeflag) String() string {
	if name, ok := typeflagNames[t]; ok {
		return name
	}
	return strconv.QuoteRune(rune(t))
}

// IsPAX reports whether t marks a PAX extended header record.
func (t Typeflag) IsPAX() bool {
	return t == TypePAXSingle || t == TypePAXGlobal
}
