package basictar

// computeChecksum sums every byte of the block as an unsigned value, counting
// the checksum field as if it held eight spaces.
func computeChecksum(b *Block) uint64 {
	var sum uint64
	for i, c := range b {
		if i >= fieldChecksum.offset && i < fieldChecksum.offset+fieldChecksum.width {
			c = ' '
		}
		sum += uint64(c)
	}
	return sum
}

// writeChecksum stores the checksum of the block in its checksum field. The
// largest possible sum (512*255) needs 6 octal digits, so this cannot fail.
func writeChecksum(b *Block) {
	if err := encodeRequiredOctal(b.Checksum(), computeChecksum(b)); err != nil {
		panic("basictar: checksum does not fit its field: " + err.Error())
	}
}

// verifyChecksum compares the stored checksum with the computed one.
func verifyChecksum(b *Block) error {
	stored, err := decodeRequiredOctal(b.Checksum())
	if err != nil {
		return fieldError(err, fieldChecksum)
	}
	if stored != computeChecksum(b) {
		return ErrChecksumMismatch
	}
	return nil
}
