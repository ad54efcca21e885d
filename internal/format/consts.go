// Package format houses low-level decoders for the Tokyo Cabinet hash
// database file format. The goal is to keep the parsing focused and
// independent from the public API so the tch package can orchestrate the data
// in a more ergonomic form.
package format

// Magic is the signature prefix at the start of every cabinet file. The
// magic field itself is 32 bytes; the remainder after the prefix is padding.
var Magic = []byte("ToKyO CaBiNeT")

const (
	// HeaderSize is the size of the fixed preamble in bytes, including the
	// interior padding and the 128-byte opaque region.
	HeaderSize = 256

	// MagicSize is the size of the magic field.
	MagicSize = 32

	// BucketBase is the absolute file offset where the bucket array begins.
	// It always equals HeaderSize.
	BucketBase = 256

	// OpaqueSize is the size of the application-defined opaque region.
	OpaqueSize = 128

	// Header field offsets.
	MagicOffset         = 0x00 // 32 bytes, prefix "ToKyO CaBiNeT"
	TypeOffset          = 0x20 // 1 byte, database type; hash databases store 0
	FlagsOffset         = 0x21 // 1 byte, additional flags (opaque)
	AlignmentOffset     = 0x22 // 1 byte, alignment power (record offsets are multiples of 2^n)
	FreePoolPowerOffset = 0x23 // 1 byte, free-block pool capacity exponent
	OptionsOffset       = 0x24 // 1 byte, option bits; 3 padding bytes follow
	BucketCountOffset   = 0x28 // 8 bytes
	RecordCountOffset   = 0x30 // 8 bytes
	FileSizeOffset      = 0x38 // 8 bytes
	FirstRecordOffset   = 0x40 // 8 bytes, 56 padding bytes follow
	OpaqueOffset        = 0x80 // 128 bytes, application-defined

	// TypeHash is the database type byte for hash databases, the only type
	// this reader supports.
	TypeHash = 0x00

	// OptLarge is the option bit selecting the large layout: record offsets
	// widen from 4 to 8 bytes in the bucket array and record chain fields.
	OptLarge = 0x01

	// RecordMagic tags a record entry in the record region.
	RecordMagic = 0xC8

	// FreeBlockMagic tags a free block entry in the record region.
	FreeBlockMagic = 0xB0

	// FreeBlockHeaderSize is the number of bytes of a free block consumed by
	// the tag and the 4-byte block size; the rest of block_size is padding.
	FreeBlockHeaderSize = 5

	// SmallOffsetWidth and LargeOffsetWidth are the two possible byte widths
	// of a record offset, chosen once at open time from OptLarge.
	SmallOffsetWidth = 4
	LargeOffsetWidth = 8
)
