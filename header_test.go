package basictar

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/basictar/errors"
)

// stamp writes a GNU-style checksum (six digits, NUL, space) into b.
func stamp(t *testing.T, b *Block) {
	t.Helper()
	copy(b.Checksum(), fmt.Sprintf("%06o\x00 ", computeChecksum(b)))
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var tarErr errors.TarError
	require.True(t, errors.As(err, &tarErr))
	field, _ := tarErr.Context()["field"].(string)
	return field
}

func TestParse_RegularFile(t *testing.T) {
	var b Block
	copy(b.Name(), "file.txt")
	copy(b.Mode(), "0000644\x00")
	copy(b.UID(), "0001750\x00")
	copy(b.GID(), "0001750\x00")
	copy(b.Size(), "00000000011\x00")
	b.Typeflag()[0] = '0'
	stamp(t, &b)

	h, err := Parse(b)
	require.NoError(t, err)
	assert.Equal(t, Header{
		Path:     "file.txt",
		Mode:     Uint64(0o644),
		UID:      Uint64(1000),
		GID:      Uint64(1000),
		Size:     9,
		ModTime:  nil,
		Typeflag: TypeReg,
		Linkname: "",
	}, h)
}

func TestParse_EmptyHeader(t *testing.T) {
	_, err := Parse(Block{})
	require.ErrorIs(t, err, ErrEmptyHeader)
	assert.Equal(t, errors.CodeEmptyHeader, errors.GetCode(err))
	assert.NotErrorIs(t, err, ErrChecksumMismatch)
}

func TestParse_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(b *Block)
		wantCode  errors.ErrorCode
		wantField string
	}{
		{
			name:      "empty path",
			mutate:    func(b *Block) { clear(b.Name()) },
			wantCode:  errors.CodeInvalidData,
			wantField: "name",
		},
		{
			name:      "path not utf-8",
			mutate:    func(b *Block) { copy(b.Name(), "bad\xff") },
			wantCode:  errors.CodeUnsupported,
			wantField: "name",
		},
		{
			name:      "mode bad digit",
			mutate:    func(b *Block) { copy(b.Mode(), "0000899\x00") },
			wantCode:  errors.CodeInvalidData,
			wantField: "mode",
		},
		{
			name:      "uid not a number",
			mutate:    func(b *Block) { copy(b.UID(), "root\x00\x00\x00\x00") },
			wantCode:  errors.CodeInvalidData,
			wantField: "uid",
		},
		{
			name:      "gid not utf-8",
			mutate:    func(b *Block) { copy(b.GID(), "\xff\x00") },
			wantCode:  errors.CodeUnsupported,
			wantField: "gid",
		},
		{
			name:      "size empty",
			mutate:    func(b *Block) { clear(b.Size()) },
			wantCode:  errors.CodeInvalidData,
			wantField: "size",
		},
		{
			name:      "mtime bad digit",
			mutate:    func(b *Block) { copy(b.ModTime(), "9\x00") },
			wantCode:  errors.CodeInvalidData,
			wantField: "mtime",
		},
		{
			name:      "linkname not utf-8",
			mutate:    func(b *Block) { copy(b.Linkname(), "\xc3\x28") },
			wantCode:  errors.CodeUnsupported,
			wantField: "linkname",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Header{Path: "file.txt", Size: 9, Typeflag: TypeReg}.Serialize()
			require.NoError(t, err)
			tt.mutate(&b)
			writeChecksum(&b)

			_, err = Parse(b)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
			assert.Equal(t, tt.wantField, fieldOf(t, err))
		})
	}
}

func TestParse_TypeflagVerbatim(t *testing.T) {
	for _, flag := range []Typeflag{0, TypeReg, TypePAXSingle, TypePAXGlobal, 'Z', 0xff} {
		b, err := Header{Path: "x", Typeflag: flag}.Serialize()
		require.NoError(t, err)

		h, err := Parse(b)
		require.NoError(t, err)
		assert.Equal(t, flag, h.Typeflag)
	}
}

func TestHeader_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		h    Header
	}{
		{
			name: "regular file",
			h: Header{
				Path: "predefined_0.plain", Mode: Uint64(0o644), UID: Uint64(0o765), GID: Uint64(0o24),
				Size: 0o11, ModTime: Uint64(0o13521071532), Typeflag: TypeReg,
			},
		},
		{
			name: "pax header",
			h: Header{
				Path: "PaxHeader/predefined_0.plain", Mode: Uint64(0o644), UID: Uint64(0o765), GID: Uint64(0o24),
				Size: 0o36, ModTime: Uint64(0o13521657412), Typeflag: TypePAXSingle,
			},
		},
		{
			name: "symlink",
			h: Header{
				Path: "link", Mode: Uint64(0o777), UID: Uint64(0), GID: Uint64(0),
				Size: 0, ModTime: Uint64(1), Typeflag: TypeSymlink, Linkname: "target/file",
			},
		},
		{
			name: "maximum values",
			h: Header{
				Path: strings.Repeat("p", 100), Mode: Uint64(0o7777777), UID: Uint64(0o7777777), GID: Uint64(0o7777777),
				Size: 0o77777777777, ModTime: Uint64(0o77777777777), Typeflag: TypeDir, Linkname: strings.Repeat("l", 100),
			},
		},
		{
			name: "utf-8 path",
			h: Header{
				Path: "données/é.txt", Mode: Uint64(0o600), UID: Uint64(1000), GID: Uint64(1000),
				Size: 12, ModTime: Uint64(1700000000), Typeflag: TypeReg,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.h.Serialize()
			require.NoError(t, err)

			got, err := Parse(b)
			require.NoError(t, err)
			assert.Equal(t, tt.h, got)
		})
	}
}

func TestHeader_AbsentNumbersSerializeAsZero(t *testing.T) {
	b, err := Header{Path: "file", Size: 1}.Serialize()
	require.NoError(t, err)
	assert.Equal(t, []byte("0000000\x00"), b.Mode())
	assert.Equal(t, []byte("00000000000\x00"), b.ModTime())

	h, err := Parse(b)
	require.NoError(t, err)
	assert.Equal(t, Uint64(0), h.Mode)
	assert.Equal(t, Uint64(0), h.ModTime)
}

func TestHeader_SerializeLayout(t *testing.T) {
	b, err := Header{
		Path: "file.txt", Mode: Uint64(0o644), UID: Uint64(1000), GID: Uint64(1000),
		Size: 9, Typeflag: TypeReg, Linkname: "other",
	}.Serialize()
	require.NoError(t, err)

	assert.Equal(t, "file.txt", string(b[0:8]))
	assert.Equal(t, make([]byte, 92), b[8:100])
	assert.Equal(t, "0000644\x00", string(b[100:108]))
	assert.Equal(t, "0001750\x00", string(b[108:116]))
	assert.Equal(t, "0001750\x00", string(b[116:124]))
	assert.Equal(t, "00000000011\x00", string(b[124:136]))
	assert.Equal(t, byte(0), b[155], "checksum terminator is NUL")
	assert.Equal(t, byte('0'), b[156])
	assert.Equal(t, "other", string(b[157:162]))
	assert.Equal(t, make([]byte, BlockSize-headerEnd), b.Reserved())
}

func TestHeader_SerializeErrors(t *testing.T) {
	tests := []struct {
		name      string
		h         Header
		wantCode  errors.ErrorCode
		wantField string
	}{
		{"empty path", Header{Path: ""}, errors.CodeInvalidData, "name"},
		{"path too long", Header{Path: strings.Repeat("a", 101)}, errors.CodeAPIMisuse, "name"},
		{"multibyte path too long", Header{Path: strings.Repeat("é", 51)}, errors.CodeAPIMisuse, "name"},
		{"mode too large", Header{Path: "a", Mode: Uint64(0o10000000)}, errors.CodeAPIMisuse, "mode"},
		{"uid too large", Header{Path: "a", UID: Uint64(1 << 21)}, errors.CodeAPIMisuse, "uid"},
		{"gid too large", Header{Path: "a", GID: Uint64(1 << 21)}, errors.CodeAPIMisuse, "gid"},
		{"size too large", Header{Path: "a", Size: 1 << 33}, errors.CodeAPIMisuse, "size"},
		{"mtime too large", Header{Path: "a", ModTime: Uint64(1 << 33)}, errors.CodeAPIMisuse, "mtime"},
		{"linkname too long", Header{Path: "a", Linkname: strings.Repeat("b", 101)}, errors.CodeAPIMisuse, "linkname"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.h.Serialize()
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
			assert.Equal(t, tt.wantField, fieldOf(t, err))
		})
	}
}

func TestParse_DetectsEverySingleBitFlip(t *testing.T) {
	b, err := Header{
		Path: "file.txt", Mode: Uint64(0o644), UID: Uint64(1000), GID: Uint64(1000),
		Size: 9, ModTime: Uint64(1700000000), Typeflag: TypeReg, Linkname: "target",
	}.Serialize()
	require.NoError(t, err)

	for i := range b {
		if i >= fieldChecksum.offset && i < fieldChecksum.offset+fieldChecksum.width {
			continue
		}
		for bit := 0; bit < 8; bit++ {
			mutated := b
			mutated[i] ^= 1 << bit

			_, err := Parse(mutated)
			require.ErrorIs(t, err, ErrChecksumMismatch, "byte %d bit %d", i, bit)
		}
	}
}
