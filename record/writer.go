package record

import (
	"context"
	"io"
	"log/slog"

	"github.com/jmgilman/go/basictar"
	"github.com/jmgilman/go/basictar/errors"
	"github.com/jmgilman/go/basictar/stream"
)

// trailerSize is the length of the end-of-archive marker.
const trailerSize = 2 * basictar.BlockSize

// Writer writes records to a tar stream.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w    io.Writer
	opts options
	log  *slog.Logger

	phase      phase
	path       string
	block      basictar.Block
	blockOff   int
	payload    []byte
	payloadOff int
	padding    uint64
	trailer    uint64
	offset     int64
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	o := newOptions(opts)
	return &Writer{
		w:    w,
		opts: o,
		log:  o.logger.With("component", "record.Writer"),
	}
}

// Offset returns the number of bytes written to the stream.
func (w *Writer) Offset() int64 {
	return w.offset
}

// Pending reports whether a record or the end-of-archive marker has been
// started but not completely written.
func (w *Writer) Pending() bool {
	return w.phase != phaseIdle && w.phase != phaseDone
}

// WriteRecord writes hdr, payload and the padding after it. len(payload) must
// equal hdr.Size.
//
// If WriteRecord fails with a retryable error, the record stays pending and
// Resume finishes it. payload must not be modified until then.
func (w *Writer) WriteRecord(ctx context.Context, hdr basictar.Header, payload []byte) error {
	switch {
	case w.phase == phaseDone || w.phase == phaseTrailer:
		return errors.New(errors.CodeAPIMisuse, "writer is closed")
	case w.Pending():
		return errors.WithContext(
			errors.New(errors.CodeAPIMisuse, "previous record is incomplete"),
			"path", w.path)
	case uint64(len(payload)) != hdr.Size:
		return errors.Newf(errors.CodeAPIMisuse, "payload is %d bytes but header size is %d", len(payload), hdr.Size)
	}

	block, err := hdr.Serialize()
	if err != nil {
		return err
	}

	w.path = hdr.Path
	w.block = block
	w.blockOff = 0
	w.payload = payload
	w.payloadOff = 0
	w.padding = basictar.Padding(hdr.Size)
	w.phase = phaseHeader
	return w.Resume(ctx)
}

// Resume continues a pending record or end-of-archive marker. It does nothing
// if nothing is pending.
func (w *Writer) Resume(ctx context.Context) error {
	return w.opts.run(ctx, "write", func() error {
		return w.step(ctx)
	})
}

// Close writes the end-of-archive marker. It does not close the underlying
// writer. Close can be resumed like WriteRecord and is a no-op once done.
func (w *Writer) Close(ctx context.Context) error {
	switch w.phase {
	case phaseIdle:
		w.trailer = trailerSize
		w.phase = phaseTrailer
	case phaseTrailer, phaseDone:
	default:
		return errors.WithContext(
			errors.New(errors.CodeAPIMisuse, "cannot close with an incomplete record"),
			"path", w.path)
	}
	return w.Resume(ctx)
}

func (w *Writer) step(ctx context.Context) error {
	for {
		switch w.phase {
		case phaseHeader:
			err := stream.WriteExact(w.w, w.block[w.blockOff:], func(n int) {
				w.blockOff += n
				w.offset += int64(n)
			})
			if err != nil {
				return w.fail(err)
			}
			w.phase = phasePayload

		case phasePayload:
			err := stream.WriteExact(w.w, w.payload[w.payloadOff:], func(n int) {
				w.payloadOff += n
				w.offset += int64(n)
			})
			if err != nil {
				return w.fail(err)
			}
			w.phase = phasePadding

		case phasePadding:
			err := stream.Fill(w.w, w.padding, func(n int) {
				w.padding -= uint64(n)
				w.offset += int64(n)
			})
			if err != nil {
				return w.fail(err)
			}
			w.log.DebugContext(ctx, "wrote record",
				"path", w.path,
				"size", len(w.payload),
				"offset", w.offset)
			w.payload = nil
			w.phase = phaseIdle

		case phaseTrailer:
			err := stream.Fill(w.w, w.trailer, func(n int) {
				w.trailer -= uint64(n)
				w.offset += int64(n)
			})
			if err != nil {
				return w.fail(err)
			}
			w.log.DebugContext(ctx, "wrote end of archive", "offset", w.offset)
			w.phase = phaseDone

		default:
			return nil
		}
	}
}

func (w *Writer) fail(err error) error {
	ctx := map[string]interface{}{
		"phase":  w.phase.String(),
		"offset": w.offset,
	}
	if w.path != "" {
		ctx["path"] = w.path
	}
	if stream.IsTransient(err) {
		return errors.WrapWithContext(err, errors.CodeTransient, "write interrupted", ctx)
	}
	return errors.WrapWithContext(err, errors.CodeIO, "write failed", ctx)
}
