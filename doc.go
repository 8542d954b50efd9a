// Package basictar encodes and decodes classic (pre-POSIX) tar header blocks.
//
// A tar stream is a sequence of records. Each record is a 512-byte header
// block, followed by exactly Header.Size payload bytes, followed by zero
// padding up to the next block boundary. Two consecutive all-zero blocks end
// the archive.
//
// This package covers the header block only: the field layout, the octal and
// string field encodings, and the checksum. The resumable stream primitives
// live in the stream package and a record reader/writer built on both lives in
// the record package.
//
// # Parsing
//
//	var block basictar.Block
//	if _, err := io.ReadFull(r, block[:]); err != nil {
//	    return err
//	}
//	hdr, err := basictar.Parse(block)
//	switch {
//	case errors.Is(err, basictar.ErrEmptyHeader):
//	    // End-of-archive marker
//	case err != nil:
//	    return err
//	}
//
// # Serializing
//
//	hdr := basictar.Header{
//	    Path:     "file.txt",
//	    Mode:     basictar.Uint64(0o644),
//	    Size:     uint64(len(payload)),
//	    Typeflag: basictar.TypeReg,
//	}
//	block, err := hdr.Serialize()
//
// # Field Encoding
//
// Numeric fields are zero-padded octal digits followed by a NUL byte. String
// fields are NUL-padded; a string filling the whole field has no terminator.
// On decode, a numeric field ends at the first space or NUL. Serialize always
// writes the NUL terminator and never a trailing space, including in the
// checksum field.
//
// Absent numeric fields (nil pointers) are written as zero digits, so they
// decode back as a present zero.
package basictar
