package basictar_test

import (
	"archive/tar"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/basictar"
)

// Blocks written by this package must be readable by archive/tar.
func TestInterop_StdlibReadsSerializedHeader(t *testing.T) {
	payload := []byte("some text")
	hdr := basictar.Header{
		Path:     "file.txt",
		Mode:     basictar.Uint64(0o644),
		UID:      basictar.Uint64(1000),
		GID:      basictar.Uint64(1000),
		Size:     uint64(len(payload)),
		ModTime:  basictar.Uint64(1700000000),
		Typeflag: basictar.TypeReg,
	}
	block, err := hdr.Serialize()
	require.NoError(t, err)

	var archive bytes.Buffer
	archive.Write(block[:])
	archive.Write(payload)
	archive.Write(make([]byte, basictar.Padding(hdr.Size)+2*basictar.BlockSize))

	tr := tar.NewReader(&archive)
	got, err := tr.Next()
	require.NoError(t, err)
	assert.Equal(t, "file.txt", got.Name)
	assert.Equal(t, int64(0o644), got.Mode)
	assert.Equal(t, 1000, got.Uid)
	assert.Equal(t, 1000, got.Gid)
	assert.Equal(t, int64(len(payload)), got.Size)
	assert.Equal(t, int64(1700000000), got.ModTime.Unix())
	assert.Equal(t, byte(tar.TypeReg), got.Typeflag)

	body, err := io.ReadAll(tr)
	require.NoError(t, err)
	assert.Equal(t, payload, body)

	_, err = tr.Next()
	assert.Equal(t, io.EOF, err)
}

// Headers written by archive/tar carry a NUL-then-space checksum and USTAR
// magic in the reserved area; both must parse.
func TestInterop_ParsesStdlibHeader(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "dir/hello.txt",
		Linkname: "",
		Mode:     0o600,
		Uid:      42,
		Gid:      7,
		Size:     5,
		ModTime:  time.Unix(1700000000, 0),
		Typeflag: tar.TypeReg,
		Format:   tar.FormatUSTAR,
	}))
	_, err := tw.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, tw.Close())

	var block basictar.Block
	copy(block[:], buf.Bytes())

	hdr, err := basictar.Parse(block)
	require.NoError(t, err)
	assert.Equal(t, basictar.Header{
		Path:     "dir/hello.txt",
		Mode:     basictar.Uint64(0o600),
		UID:      basictar.Uint64(42),
		GID:      basictar.Uint64(7),
		Size:     5,
		ModTime:  basictar.Uint64(1700000000),
		Typeflag: basictar.TypeReg,
	}, hdr)
}

func TestInterop_ParsesStdlibSymlink(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "link",
		Linkname: "target",
		Mode:     0o777,
		ModTime:  time.Unix(1, 0),
		Typeflag: tar.TypeSymlink,
		Format:   tar.FormatUSTAR,
	}))
	require.NoError(t, tw.Flush())

	var block basictar.Block
	copy(block[:], buf.Bytes())

	hdr, err := basictar.Parse(block)
	require.NoError(t, err)
	assert.Equal(t, basictar.TypeSymlink, hdr.Typeflag)
	assert.Equal(t, "target", hdr.Linkname)
	assert.Equal(t, uint64(0), hdr.Size)
}
