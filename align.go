package basictar

// Align rounds n up to the nearest multiple of multiple. A value that is
// already aligned is returned unchanged. multiple must not be zero.
func Align(n, multiple uint64) uint64 {
	if r := n % multiple; r != 0 {
		return n + (multiple - r)
	}
	return n
}

// Padding returns the number of zero bytes that follow a payload of n bytes so
// the next header starts on a block boundary.
func Padding(n uint64) uint64 {
	return Align(n, BlockSize) - n
}
