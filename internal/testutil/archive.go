package testutil

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/basictar"
)

// Entry is one record of a generated archive.
type Entry struct {
	Header  basictar.Header
	Payload []byte
}

// NewEntry returns a regular file entry whose size matches payload.
func NewEntry(path string, payload []byte) Entry {
	return Entry{
		Header: basictar.Header{
			Path:     path,
			Mode:     basictar.Uint64(0o644),
			UID:      basictar.Uint64(0o765),
			GID:      basictar.Uint64(0o24),
			Size:     uint64(len(payload)),
			ModTime:  basictar.Uint64(0o13521071532),
			Typeflag: basictar.TypeReg,
		},
		Payload: payload,
	}
}

// Pattern returns n bytes of predictable, non-zero content.
func Pattern(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte('a' + i%26)
	}
	return out
}

// GenerateEntries returns count entries with sizes cycling through values
// below, at, and just past block boundaries.
func GenerateEntries(count int) []Entry {
	sizes := []int{0, 1, 9, 511, 512, 513, 4096, 5000}
	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, NewEntry(fmt.Sprintf("entry_%03d.bin", i), Pattern(sizes[i%len(sizes)])))
	}
	return entries
}

// BuildArchive serializes entries into a complete archive, including the
// two-block end-of-archive marker.
func BuildArchive(t testing.TB, entries ...Entry) []byte {
	t.Helper()

	var buf bytes.Buffer
	for _, e := range entries {
		block, err := e.Header.Serialize()
		require.NoError(t, err)
		buf.Write(block[:])
		buf.Write(e.Payload)
		buf.Write(make([]byte, basictar.Padding(uint64(len(e.Payload)))))
	}
	buf.Write(make([]byte, 2*basictar.BlockSize))
	return buf.Bytes()
}
