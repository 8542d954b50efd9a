package record

import (
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/gobwas/glob"
)

// DefaultMaxPayloadSize is the largest payload a Reader accepts unless
// configured otherwise.
const DefaultMaxPayloadSize = 1 << 30

// Option configures a Reader or Writer.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	backoff        backoff.BackOff
	maxPayloadSize uint64
	include        []glob.Glob
}

func newOptions(opts []Option) options {
	o := options{
		logger:         slog.New(slog.DiscardHandler),
		maxPayloadSize: DefaultMaxPayloadSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRetry retries transient stream failures internally, waiting between
// attempts as b dictates. Without it, transient failures are returned to the
// caller, who resumes by repeating the call.
func WithRetry(b backoff.BackOff) Option {
	return func(o *options) {
		o.backoff = b
	}
}

// WithMaxPayloadSize limits the payload size a Reader is willing to buffer.
// Headers announcing a larger payload fail with invalid data. It has no
// effect on a Writer.
func WithMaxPayloadSize(n uint64) Option {
	return func(o *options) {
		o.maxPayloadSize = n
	}
}

// WithInclude makes a Reader return only records whose path matches at least
// one of the patterns. Other records are skipped without buffering their
// payload. It has no effect on a Writer.
//
// Example:
//
//	r := record.NewReader(f, record.WithInclude(glob.MustCompile("**.json", '/')))
func WithInclude(patterns ...glob.Glob) Option {
	return func(o *options) {
		o.include = append(o.include, patterns...)
	}
}

// included reports whether a record with the given path passes the include
// patterns.
func (o *options) included(path string) bool {
	if len(o.include) == 0 {
		return true
	}
	for _, g := range o.include {
		if g.Match(path) {
			return true
		}
	}
	return false
}
