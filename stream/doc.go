// Package stream provides exact read and write primitives for blocking
// streams that may fail transiently.
//
// Every primitive reports progress through a ProgressFunc after each
// successful call to the underlying Read or Write, so a caller always knows
// how many bytes were transferred before a failure. Interrupted calls are
// retried in place and are never reported. Any other failure stops the
// operation and is returned; the caller may later invoke the operation again
// on the remaining bytes without transferring anything twice.
//
//	var off int
//	err := stream.ReadExact(conn, buf[off:], func(n int) { off += n })
//	if stream.IsTransient(err) {
//	    // Resume later with buf[off:].
//	}
package stream
