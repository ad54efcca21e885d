// Package buf contains helpers for order-aware integer decoding.
//
// Every multi-byte field in a cabinet file goes through the byte order chosen
// at open time, so the helpers take the order explicitly instead of
// hard-wiring little-endian.
package buf

import "encoding/binary"

// U16 reads a uint16 from b using order. Returns 0 when b is too short.
func U16(order binary.ByteOrder, b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return order.Uint16(b)
}

// U32 reads a uint32 from b using order. Returns 0 when b is too short.
func U32(order binary.ByteOrder, b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return order.Uint32(b)
}

// U64 reads a uint64 from b using order. Returns 0 when b is too short.
func U64(order binary.ByteOrder, b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return order.Uint64(b)
}

// Uint reads an unsigned integer of the given width (4 or 8 bytes) from b.
// Returns 0 when b is too short.
func Uint(order binary.ByteOrder, b []byte, width int) uint64 {
	if width == 8 {
		return U64(order, b)
	}
	return uint64(U32(order, b))
}
