package record

import (
	_ "crypto/sha256"

	"github.com/opencontainers/go-digest"

	"github.com/jmgilman/go/basictar"
)

// Record is a header together with its payload.
type Record struct {
	Header  basictar.Header
	Payload []byte
}

// Digest returns the canonical (sha256) digest of the payload.
func (r *Record) Digest() digest.Digest {
	return digest.FromBytes(r.Payload)
}

// phase is the part of a record a Reader or Writer is transferring.
type phase int

const (
	phaseIdle phase = iota
	phaseHeader
	phasePayload
	phasePadding
	phaseTrailer
	phaseDone
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseHeader:
		return "header"
	case phasePayload:
		return "payload"
	case phasePadding:
		return "padding"
	case phaseTrailer:
		return "trailer"
	case phaseDone:
		return "done"
	default:
		return "unknown"
	}
}
