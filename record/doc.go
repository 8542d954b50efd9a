// Package record reads and writes whole tar records on top of the basictar
// header codec and the stream primitives.
//
// A record is a header block, the payload, and the zero padding that moves
// the stream to the next block boundary. Reader and Writer keep a cursor into
// the record they are working on, so a transient stream failure (a timeout or
// would-block condition) does not lose any progress: the error is returned
// with a retryable classification and the same call can simply be made again.
//
// # Reading
//
//	r := record.NewReader(conn)
//	for {
//	    rec, err := r.Next(ctx)
//	    if err == io.EOF {
//	        break
//	    }
//	    if errors.IsRetryable(err) {
//	        continue // position is kept
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(rec.Header.Path, rec.Digest())
//	}
//
// # Writing
//
//	w := record.NewWriter(conn, record.WithRetry(backoff.NewExponentialBackOff()))
//	if err := w.WriteRecord(ctx, hdr, payload); err != nil {
//	    return err
//	}
//	return w.Close(ctx)
//
// With WithRetry, transient failures are retried internally following the
// given backoff policy instead of being returned.
package record
