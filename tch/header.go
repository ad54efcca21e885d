package tch

import "github.com/joshuapare/tchkit/internal/format"

// Header is the decoded fixed preamble of a cabinet file.
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
	Opaque             [128]byte
}

// Large reports whether the file uses the large layout (8-byte offsets).
func (h Header) Large() bool { return h.Options&format.OptLarge != 0 }

// OffsetWidth returns the byte width of record offsets: 4, or 8 for the
// large layout.
func (h Header) OffsetWidth() int {
	if h.Large() {
		return format.LargeOffsetWidth
	}
	return format.SmallOffsetWidth
}

func headerFromFormat(fh format.Header) Header {
	return Header{
		DatabaseType:       fh.DatabaseType,
		AdditionalFlags:    fh.AdditionalFlags,
		AlignmentPower:     fh.AlignmentPower,
		FreeBlockPoolPower: fh.FreeBlockPoolPower,
		Options:            fh.Options,
		BucketCount:        fh.BucketCount,
		RecordCount:        fh.RecordCount,
		FileSize:           fh.FileSize,
		FirstRecord:        fh.FirstRecord,
		Opaque:             fh.Opaque,
	}
}
