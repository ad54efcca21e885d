package format

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/joshuapare/tchkit/internal/buf"
)

// Header captures the fixed 256-byte preamble of a cabinet file. The diagram
// below shows the layout; multi-byte fields use the byte order passed to
// ParseHeader (little-endian on every conforming file).
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------
//	 0x00    32   Magic, prefix "ToKyO CaBiNeT"
//	 0x20     1   Database type (0 = hash)
//	 0x21     1   Additional flags
//	 0x22     1   Alignment power
//	 0x23     1   Free-block pool power
//	 0x24     1   Options (bit 0 = large layout)
//	 0x25     3   Padding
//	 0x28     8   Bucket count
//	 0x30     8   Record count
//	 0x38     8   File size
//	 0x40     8   First record offset
//	 0x48    56   Padding
//	 0x80   128   Opaque region (application-defined)
type Header struct {
	DatabaseType       uint8
	AdditionalFlags    uint8
	AlignmentPower     uint8
	FreeBlockPoolPower uint8
	Options            uint8
	BucketCount        uint64
	RecordCount        uint64
	FileSize           uint64
	FirstRecord        uint64
	Opaque             [OpaqueSize]byte
}

// Large reports whether the file uses 8-byte record offsets.
func (h Header) Large() bool { return h.Options&OptLarge != 0 }

// OffsetWidth returns the byte width of record offsets for this file.
func (h Header) OffsetWidth() int {
	if h.Large() {
		return LargeOffsetWidth
	}
	return SmallOffsetWidth
}

// ParseHeader validates and extracts the preamble fields from b.
func ParseHeader(b []byte, order binary.ByteOrder) (Header, error) {
	if !buf.Has(b, 0, HeaderSize) {
		return Header{}, fmt.Errorf("cabinet header: %w", ErrTruncated)
	}
	if !bytes.HasPrefix(b[MagicOffset:MagicOffset+MagicSize], Magic) {
		return Header{}, fmt.Errorf("cabinet header: %w", ErrSignatureMismatch)
	}
	if b[TypeOffset] != TypeHash {
		return Header{}, fmt.Errorf("cabinet header: type 0x%02x: %w", b[TypeOffset], ErrWrongType)
	}
	if b[AlignmentOffset] >= 64 {
		return Header{}, fmt.Errorf("cabinet header: alignment power %d: %w", b[AlignmentOffset], ErrBadAlignment)
	}
	h := Header{
		DatabaseType:       b[TypeOffset],
		AdditionalFlags:    b[FlagsOffset],
		AlignmentPower:     b[AlignmentOffset],
		FreeBlockPoolPower: b[FreePoolPowerOffset],
		Options:            b[OptionsOffset],
		BucketCount:        buf.U64(order, b[BucketCountOffset:]),
		RecordCount:        buf.U64(order, b[RecordCountOffset:]),
		FileSize:           buf.U64(order, b[FileSizeOffset:]),
		FirstRecord:        buf.U64(order, b[FirstRecordOffset:]),
	}
	copy(h.Opaque[:], b[OpaqueOffset:OpaqueOffset+OpaqueSize])
	return h, nil
}
