package format

import "io"

// ReadVnum decodes one variable-length unsigned integer from r and reports
// the number of bytes consumed. The encoding is base-128 little-endian with
// an inverted continuation convention: a byte below 0x80 terminates the
// number and contributes its value, while a byte x >= 0x80 contributes
// 0xFF-x and carries on to the next 7-bit position.
//
// The consumed length matters to callers: a record's size on disk depends on
// how many bytes its key and value sizes occupied.
func ReadVnum(r io.ByteReader) (value uint64, n int, err error) {
	base := uint64(1)
	for {
		x, err := r.ReadByte()
		if err != nil {
			return 0, n, err
		}
		n++
		if x < 0x80 {
			value += uint64(x) * base
			return value, n, nil
		}
		value += (0xFF - uint64(x)) * base
		base <<= 7
	}
}

// AppendVnum appends the encoded form of v to dst and returns the extended
// slice. It is the exact inverse of ReadVnum.
func AppendVnum(dst []byte, v uint64) []byte {
	for {
		rem := byte(v & 0x7F)
		v >>= 7
		if v > 0 {
			dst = append(dst, 0xFF-rem)
			continue
		}
		return append(dst, rem)
	}
}

// VnumLen returns the encoded length of v in bytes.
func VnumLen(v uint64) int {
	n := 1
	for v >>= 7; v > 0; v >>= 7 {
		n++
	}
	return n
}
