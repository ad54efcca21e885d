package tch

import (
	"encoding/binary"
	"io"

	"github.com/joshuapare/tchkit/internal/buf"
	"github.com/joshuapare/tchkit/internal/format"
)

// DB is an open cabinet hash database.
//
// A DB holds one positioned cursor over the stream. The iterator, lookups,
// and lazy value handles all seek before reading, so a single goroutine may
// interleave them; concurrent use from multiple goroutines is not supported.
type DB struct {
	r     io.ReadSeeker
	order binary.ByteOrder
	width int
	eager bool
	hdr   Header

	bucketOffset   int64 // always 256
	freePoolOffset int64

	closer func() error
	closed bool
}

// Header returns the decoded file preamble.
func (d *DB) Header() Header { return d.hdr }

// Width returns the record offset width in bytes: 4, or 8 for the large
// layout.
func (d *DB) Width() int { return d.width }

// BucketOffset returns the absolute offset of the bucket array (always 256).
func (d *DB) BucketOffset() int64 { return d.bucketOffset }

// FreeBlockPoolOffset returns the absolute offset of the free-block pool,
// which starts immediately after the bucket array.
func (d *DB) FreeBlockPoolOffset() int64 { return d.freePoolOffset }

// Close releases the underlying file or mapping, if the DB owns one.
// Outstanding lazy value handles become unusable.
func (d *DB) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.closer != nil {
		return d.closer()
	}
	return nil
}

func (d *DB) ensureOpen() error {
	if d.closed {
		return ErrClosed
	}
	return nil
}

func (d *DB) seek(pos int64) error {
	if _, err := d.r.Seek(pos, io.SeekStart); err != nil {
		return wrapIO(err)
	}
	return nil
}

func (d *DB) pos() (int64, error) {
	p, err := d.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, wrapIO(err)
	}
	return p, nil
}

// fill reads exactly len(b) bytes at the current position. EOF inside a
// structure is reported as truncation.
func (d *DB) fill(b []byte) error {
	if _, err := io.ReadFull(d.r, b); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return wrap(ErrTruncated, err)
		}
		return wrapIO(err)
	}
	return nil
}

// readOffset reads one record offset of the file's width.
func (d *DB) readOffset() (RecordOffset, error) {
	var b [8]byte
	if err := d.fill(b[:d.width]); err != nil {
		return RecordOffset{}, err
	}
	return RecordOffset{Value: buf.Uint(d.order, b[:d.width], d.width)}, nil
}

func (d *DB) readVnum() (uint64, int, error) {
	v, n, err := format.ReadVnum(dbByteReader{d})
	if err != nil {
		if err == io.EOF {
			return 0, n, wrap(ErrTruncated, err)
		}
		return 0, n, wrapIO(err)
	}
	return v, n, nil
}

type dbByteReader struct{ d *DB }

func (b dbByteReader) ReadByte() (byte, error) {
	var one [1]byte
	if _, err := io.ReadFull(b.d.r, one[:]); err != nil {
		return 0, err
	}
	return one[0], nil
}

func wrapIO(err error) error {
	return &Error{Kind: ErrKindIO, Msg: "cabinet stream", Err: err}
}
