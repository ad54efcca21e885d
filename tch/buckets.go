package tch

import (
	"fmt"

	"github.com/joshuapare/tchkit/internal/buf"
)

// Buckets is the decoded bucket array: one root record offset per bucket.
type Buckets []RecordOffset

// Used counts the non-empty buckets.
func (b Buckets) Used() int {
	n := 0
	for _, off := range b {
		if !off.IsEmpty() {
			n++
		}
	}
	return n
}

// Buckets reads the whole bucket array, which begins at byte 256 and holds
// BucketCount offsets of the file's width.
func (d *DB) Buckets() (Buckets, error) {
	if err := d.ensureOpen(); err != nil {
		return nil, err
	}
	count := d.hdr.BucketCount
	regionEnd := d.bucketOffset + int64(count)*int64(d.width)
	if uint64(regionEnd) > d.hdr.FileSize {
		return nil, wrap(ErrCorrupt, fmt.Errorf("bucket region ends at %d beyond file size %d", regionEnd, d.hdr.FileSize))
	}
	if err := d.seek(d.bucketOffset); err != nil {
		return nil, err
	}

	out := make(Buckets, 0, count)
	chunk := make([]byte, 64<<10)
	remaining := int64(count) * int64(d.width)
	for remaining > 0 {
		n := int64(len(chunk))
		if n > remaining {
			n = remaining
		}
		if err := d.fill(chunk[:n]); err != nil {
			return nil, err
		}
		for i := int64(0); i < n; i += int64(d.width) {
			out = append(out, RecordOffset{Value: buf.Uint(d.order, chunk[i:i+int64(d.width)], d.width)})
		}
		remaining -= n
	}
	return out, nil
}

// readBucket reads the root offset of one bucket.
func (d *DB) readBucket(idx uint64) (RecordOffset, error) {
	if idx >= d.hdr.BucketCount {
		return RecordOffset{}, &Error{Kind: ErrKindState, Msg: fmt.Sprintf("bucket %d out of range (count %d)", idx, d.hdr.BucketCount)}
	}
	if err := d.seek(d.bucketOffset + int64(idx)*int64(d.width)); err != nil {
		return RecordOffset{}, err
	}
	return d.readOffset()
}
