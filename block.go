package basictar

// BlockSize is the size of a tar block. Headers occupy one block and payloads
// are padded to a multiple of it.
const BlockSize = 512

// Block is a raw header block.
//
// The zero value is the empty header that marks the end of an archive.
type Block [BlockSize]byte

// field is a named byte range within a Block.
type field struct {
	name   string
	offset int
	width  int
}

// Classic header layout. Bytes 257 through 511 are unused.
var (
	fieldName     = field{name: "name", offset: 0, width: 100}
	fieldMode     = field{name: "mode", offset: 100, width: 8}
	fieldUID      = field{name: "uid", offset: 108, width: 8}
	fieldGID      = field{name: "gid", offset: 116, width: 8}
	fieldSize     = field{name: "size", offset: 124, width: 12}
	fieldModTime  = field{name: "mtime", offset: 136, width: 12}
	fieldChecksum = field{name: "checksum", offset: 148, width: 8}
	fieldTypeflag = field{name: "typeflag", offset: 156, width: 1}
	fieldLinkname = field{name: "linkname", offset: 157, width: 100}
)

// headerEnd is the first byte past the last header field.
const headerEnd = 257

func (b *Block) slice(f field) []byte { return b[f.offset:][:f.width] }

func (b *Block) Name() []byte     { return b.slice(fieldName) }
func (b *Block) Mode() []byte     { return b.slice(fieldMode) }
func (b *Block) UID() []byte      { return b.slice(fieldUID) }
func (b *Block) GID() []byte      { return b.slice(fieldGID) }
func (b *Block) Size() []byte     { return b.slice(fieldSize) }
func (b *Block) ModTime() []byte  { return b.slice(fieldModTime) }
func (b *Block) Checksum() []byte { return b.slice(fieldChecksum) }
func (b *Block) Typeflag() []byte { return b.slice(fieldTypeflag) }
func (b *Block) Linkname() []byte { return b.slice(fieldLinkname) }

// Reserved returns the unused tail of the block.
func (b *Block) Reserved() []byte { return b[headerEnd:] }

// IsZero reports whether every byte of the block is zero.
func (b *Block) IsZero() bool {
	return *b == Block{}
}

// Reset clears the block to all zeros.
func (b *Block) Reset() {
	*b = Block{}
}
