package record

import (
	"context"
	"io"
	"log/slog"

	"github.com/jmgilman/go/basictar"
	"github.com/jmgilman/go/basictar/errors"
	"github.com/jmgilman/go/basictar/stream"
)

// Reader reads records from a tar stream.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	r    io.Reader
	opts options
	log  *slog.Logger

	phase      phase
	block      basictar.Block
	blockOff   int
	header     basictar.Header
	payload    []byte
	payloadOff int
	padding    uint64
	skip       bool

	// zeros counts consecutive empty header blocks.
	zeros  int
	offset int64

	// err is a permanent failure returned by every later call.
	err error
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := newOptions(opts)
	return &Reader{
		r:     r,
		opts:  o,
		log:   o.logger.With("component", "record.Reader"),
		phase: phaseHeader,
	}
}

// Offset returns the number of bytes consumed from the stream.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Next returns the next record, or io.EOF once the end-of-archive marker has
// been read.
//
// When Next fails with a retryable error nothing is lost; calling Next again
// continues where the failed call stopped. Malformed headers and truncated
// archives are permanent and returned by every later call.
func (r *Reader) Next(ctx context.Context) (*Record, error) {
	if r.err != nil {
		return nil, r.err
	}

	var rec *Record
	err := r.opts.run(ctx, "read", func() error {
		var err error
		rec, err = r.step(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// step advances the cursor until a record is complete or an error occurs.
func (r *Reader) step(ctx context.Context) (*Record, error) {
	for {
		switch r.phase {
		case phaseHeader:
			if err := r.readHeader(ctx); err != nil {
				return nil, err
			}

		case phasePayload:
			err := stream.ReadExact(r.r, r.payload[r.payloadOff:], func(n int) {
				r.payloadOff += n
				r.offset += int64(n)
			})
			if err != nil {
				return nil, r.fail(err)
			}
			r.phase = phasePadding

		case phasePadding:
			err := stream.Drain(r.r, r.padding, func(n int) {
				r.padding -= uint64(n)
				r.offset += int64(n)
			})
			if err != nil {
				return nil, r.fail(err)
			}

			if r.skip {
				r.skip = false
				r.header = basictar.Header{}
				r.phase = phaseHeader
				continue
			}

			rec := &Record{Header: r.header, Payload: r.payload}
			r.header, r.payload, r.payloadOff = basictar.Header{}, nil, 0
			r.phase = phaseHeader
			return rec, nil

		default:
			r.err = io.EOF
			return nil, io.EOF
		}
	}
}

// readHeader reads and parses one header block. Empty blocks are counted and
// leave the reader in the header phase.
func (r *Reader) readHeader(ctx context.Context) error {
	err := stream.ReadExact(r.r, r.block[r.blockOff:], func(n int) {
		r.blockOff += n
		r.offset += int64(n)
	})
	if err != nil {
		if r.blockOff == 0 && r.zeros > 0 && errors.Is(err, io.ErrUnexpectedEOF) {
			r.log.WarnContext(ctx, "archive ends after a single empty header", "offset", r.offset)
			r.phase = phaseDone
			return nil
		}
		return r.fail(err)
	}

	block := r.block
	r.block.Reset()
	r.blockOff = 0
	start := r.offset - basictar.BlockSize

	hdr, err := basictar.Parse(block)
	if errors.Is(err, basictar.ErrEmptyHeader) {
		r.zeros++
		if r.zeros == 2 {
			r.log.DebugContext(ctx, "end of archive", "offset", r.offset)
			r.phase = phaseDone
		}
		return nil
	}
	if err != nil {
		r.err = errors.WrapWithContext(err, errors.GetCode(err), "invalid header", map[string]interface{}{
			"offset": start,
		})
		return r.err
	}
	r.zeros = 0

	if !r.opts.included(hdr.Path) {
		r.log.DebugContext(ctx, "skipping record", "path", hdr.Path, "size", hdr.Size, "offset", start)
		r.header = hdr
		r.skip = true
		r.padding = hdr.Size + basictar.Padding(hdr.Size)
		r.phase = phasePadding
		return nil
	}

	if hdr.Size > r.opts.maxPayloadSize {
		r.err = errors.WithContext(
			errors.Newf(errors.CodeInvalidData, "payload of %d bytes exceeds limit of %d", hdr.Size, r.opts.maxPayloadSize),
			"path", hdr.Path)
		return r.err
	}

	r.log.DebugContext(ctx, "read header",
		"path", hdr.Path,
		"size", hdr.Size,
		"typeflag", hdr.Typeflag.String(),
		"offset", start)

	r.header = hdr
	r.payload = make([]byte, hdr.Size)
	r.payloadOff = 0
	r.padding = basictar.Padding(hdr.Size)
	r.phase = phasePayload
	return nil
}

// fail classifies a stream error. Transient failures keep the cursor where
// it is; a truncated archive is permanent.
func (r *Reader) fail(err error) error {
	ctx := map[string]interface{}{
		"phase":  r.phase.String(),
		"offset": r.offset,
	}
	switch {
	case stream.IsTransient(err):
		return errors.WrapWithContext(err, errors.CodeTransient, "read interrupted", ctx)
	case errors.Is(err, io.ErrUnexpectedEOF):
		r.err = errors.WrapWithContext(err, errors.CodeUnexpectedEOF, "archive truncated", ctx)
		return r.err
	default:
		return errors.WrapWithContext(err, errors.CodeIO, "read failed", ctx)
	}
}
