package tch

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/tchkit/internal/format"
	"github.com/joshuapare/tchkit/internal/mmfile"
)

// Open reads the header from rs and returns a DB sized for the file's
// offset width. The stream must be positioned anywhere; Open seeks to the
// start itself.
func Open(rs io.ReadSeeker, opts OpenOptions) (*DB, error) {
	order := opts.order()
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, wrapIO(err)
	}
	var hb [format.HeaderSize]byte
	if _, err := io.ReadFull(rs, hb[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, wrap(ErrNotCabinet, format.ErrTruncated)
		}
		return nil, wrapIO(err)
	}
	fh, err := format.ParseHeader(hb[:], order)
	if err != nil {
		return nil, wrap(ErrNotCabinet, err)
	}
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, wrapIO(err)
	}
	if pos != format.HeaderSize {
		return nil, wrap(ErrNotCabinet, fmt.Errorf("post-header position %d", pos))
	}
	if fh.BucketCount < 1 {
		return nil, wrap(ErrNotCabinet, fmt.Errorf("bucket count %d", fh.BucketCount))
	}

	d := &DB{
		r:            rs,
		order:        order,
		width:        fh.OffsetWidth(),
		eager:        opts.EagerValues,
		hdr:          headerFromFormat(fh),
		bucketOffset: format.BucketBase,
	}
	d.freePoolOffset = d.bucketOffset + int64(fh.BucketCount)*int64(d.width)
	return d, nil
}

// OpenFile opens the cabinet file at path.
func OpenFile(path string, opts OpenOptions) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapIO(err)
	}
	d, err := Open(f, opts)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	d.closer = f.Close
	return d, nil
}

// OpenMapped maps the cabinet file at path into memory and opens a DB over
// the mapping. Reads become memory accesses; Close unmaps.
func OpenMapped(path string, opts OpenOptions) (*DB, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, wrapIO(err)
	}
	d, err := Open(bytes.NewReader(data), opts)
	if err != nil {
		if unmap != nil {
			_ = unmap()
		}
		return nil, err
	}
	d.closer = unmap
	return d, nil
}
