package stream

import (
	"errors"
	"io"
	"net"
	"os"
	"syscall"
)

// chunkSize bounds the scratch buffer used by Drain and Fill.
const chunkSize = 4096

// maxEmptyReads is how many consecutive (0, nil) reads are tolerated before
// giving up with io.ErrNoProgress.
const maxEmptyReads = 100

// ErrInterrupted can be returned (or wrapped) by a Reader or Writer to signal
// that a call was interrupted before transferring any data and should simply
// be repeated, like EINTR.
var ErrInterrupted = errors.New("stream: interrupted")

// ProgressFunc is called with the number of bytes transferred by each
// successful underlying call. It is never called with zero.
type ProgressFunc func(n int)

func (p ProgressFunc) report(n int) {
	if p != nil {
		p(n)
	}
}

// IsInterrupted reports whether err signals an interrupted call that should be
// repeated immediately.
func IsInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, syscall.EINTR)
}

// IsTransient reports whether err is a failure after which the operation can
// be resumed: an interruption, a timeout or a would-block condition.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if IsInterrupted(err) || errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, syscall.EAGAIN) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// ReadExact fills buf completely from r.
//
// A read that ends the stream before buf is full yields io.ErrUnexpectedEOF.
// Bytes that arrive together with an error are kept and reported before the
// error is handled.
func ReadExact(r io.Reader, buf []byte, progress ProgressFunc) error {
	empty := 0
	for len(buf) > 0 {
		n, err := r.Read(buf)
		if n > 0 {
			buf = buf[n:]
			progress.report(n)
			empty = 0
		}

		switch {
		case err == nil && n == 0:
			if empty++; empty >= maxEmptyReads {
				return io.ErrNoProgress
			}
		case err == nil:
		case IsInterrupted(err):
		case errors.Is(err, io.EOF):
			if len(buf) == 0 {
				return nil
			}
			return io.ErrUnexpectedEOF
		default:
			return err
		}
	}
	return nil
}

// Drain reads and discards n bytes from r in bounded chunks.
func Drain(r io.Reader, n uint64, progress ProgressFunc) error {
	var scratch [chunkSize]byte
	for n > 0 {
		chunk := scratch[:min(n, chunkSize)]
		err := ReadExact(r, chunk, func(read int) {
			n -= uint64(read)
			progress.report(read)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteExact writes all of data to w.
//
// A write that accepts zero bytes without an error yields io.ErrShortWrite.
func WriteExact(w io.Writer, data []byte, progress ProgressFunc) error {
	for len(data) > 0 {
		n, err := w.Write(data)
		if n > 0 {
			data = data[n:]
			progress.report(n)
		}

		switch {
		case err == nil && n == 0:
			return io.ErrShortWrite
		case err == nil:
		case IsInterrupted(err):
		default:
			return err
		}
	}
	return nil
}

// Fill writes n zero bytes to w in bounded chunks.
func Fill(w io.Writer, n uint64, progress ProgressFunc) error {
	var zeros [chunkSize]byte
	for n > 0 {
		chunk := zeros[:min(n, chunkSize)]
		err := WriteExact(w, chunk, func(written int) {
			n -= uint64(written)
			progress.report(written)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
