// Package testutil provides stream fakes and archive builders for tests.
package testutil

import (
	"io"
	"sync"
)

// Fault makes a flaky stream fail once after a given number of bytes has been
// transferred. The failing call transfers nothing.
type Fault struct {
	// At is the stream offset at which the fault fires.
	At int64
	// Err is returned by the failing call.
	Err error
}

// faultSet tracks which faults have fired.
type faultSet struct {
	faults []Fault
	fired  []bool
}

func newFaultSet(faults []Fault) faultSet {
	return faultSet{faults: faults, fired: make([]bool, len(faults))}
}

// next returns the first unfired fault at offset and marks it fired.
func (s *faultSet) next(offset int64) error {
	for i, f := range s.faults {
		if !s.fired[i] && f.At == offset {
			s.fired[i] = true
			return f.Err
		}
	}
	return nil
}

// limit caps n so the transfer stops at the next unfired fault after offset.
func (s *faultSet) limit(offset int64, n int) int {
	for i, f := range s.faults {
		if !s.fired[i] && f.At > offset && f.At-offset < int64(n) {
			n = int(f.At - offset)
		}
	}
	return n
}

// FlakyReader wraps a reader, delivering at most MaxChunk bytes per call and
// injecting faults at fixed offsets.
type FlakyReader struct {
	mu       sync.Mutex
	r        io.Reader
	maxChunk int
	offset   int64
	faults   faultSet
	calls    int
}

// NewFlakyReader returns a reader over r. A maxChunk of zero means no limit.
func NewFlakyReader(r io.Reader, maxChunk int, faults ...Fault) *FlakyReader {
	return &FlakyReader{r: r, maxChunk: maxChunk, faults: newFaultSet(faults)}
}

func (f *FlakyReader) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if err := f.faults.next(f.offset); err != nil {
		return 0, err
	}
	if f.maxChunk > 0 && len(p) > f.maxChunk {
		p = p[:f.maxChunk]
	}
	p = p[:f.faults.limit(f.offset, len(p))]

	n, err := f.r.Read(p)
	f.offset += int64(n)
	return n, err
}

// Offset returns the number of bytes delivered so far.
func (f *FlakyReader) Offset() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.offset
}

// Calls returns the number of Read calls made.
func (f *FlakyReader) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// FlakyWriter wraps a writer, accepting at most MaxChunk bytes per call and
// injecting faults at fixed offsets.
type FlakyWriter struct {
	mu       sync.Mutex
	w        io.Writer
	maxChunk int
	offset   int64
	faults   faultSet
}

// NewFlakyWriter returns a writer over w. A maxChunk of zero means no limit.
func NewFlakyWriter(w io.Writer, maxChunk int, faults ...Fault) *FlakyWriter {
	return &FlakyWriter{w: w, maxChunk: maxChunk, faults: newFaultSet(faults)}
}

func (f *FlakyWriter) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.faults.next(f.offset); err != nil {
		return 0, err
	}
	if f.maxChunk > 0 && len(p) > f.maxChunk {
		p = p[:f.maxChunk]
	}
	p = p[:f.faults.limit(f.offset, len(p))]

	n, err := f.w.Write(p)
	f.offset += int64(n)
	return n, err
}

// Offset returns the number of bytes accepted so far.
func (f *FlakyWriter) Offset() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.offset
}

// ZeroWriter accepts nothing and reports no error.
type ZeroWriter struct{}

func (ZeroWriter) Write([]byte) (int, error) { return 0, nil }

// StallReader returns (0, nil) forever.
type StallReader struct{}

func (StallReader) Read([]byte) (int, error) { return 0, nil }
