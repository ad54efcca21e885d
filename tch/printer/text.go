package printer

import (
	"fmt"

	"github.com/joshuapare/tchkit/tch"
)

// Header prints the decoded preamble in text form.
func (p *Printer) Header(h tch.Header) error {
	fmt.Fprintf(p.w, "database type:     0x%02x (hash)\n", h.DatabaseType)
	fmt.Fprintf(p.w, "additional flags:  0x%02x\n", h.AdditionalFlags)
	fmt.Fprintf(p.w, "alignment:         %d (2^%d)\n", uint64(1)<<h.AlignmentPower, h.AlignmentPower)
	fmt.Fprintf(p.w, "free pool power:   %d\n", h.FreeBlockPoolPower)
	fmt.Fprintf(p.w, "options:           0x%02x (offset width %d)\n", h.Options, h.OffsetWidth())
	fmt.Fprintf(p.w, "bucket count:      %d\n", h.BucketCount)
	fmt.Fprintf(p.w, "record count:      %d\n", h.RecordCount)
	fmt.Fprintf(p.w, "file size:         %d\n", h.FileSize)
	fmt.Fprintf(p.w, "first record:      %d\n", h.FirstRecord)
	return nil
}

// Record prints one record. Values are printed only when ShowValues is set
// and the record's value handle is materialized (or lazily materializable).
func (p *Printer) Record(r *tch.Record) error {
	fmt.Fprintf(p.w, "%10d  %q", r.Pos, p.Display(r.Key))
	if p.opts.ShowValues {
		val, err := r.Value.Bytes()
		if err != nil {
			return err
		}
		shown, clipped := p.clip(val)
		fmt.Fprintf(p.w, " = %q", p.Display(shown))
		if clipped {
			fmt.Fprintf(p.w, "... (%d bytes)", len(val))
		}
	}
	fmt.Fprintln(p.w)
	return nil
}

// FreeBlock prints one free block entry.
func (p *Printer) FreeBlock(f *tch.FreeBlock) error {
	fmt.Fprintf(p.w, "%10d  (free block, %d bytes)\n", f.Pos, f.BlockSize)
	return nil
}

// Pool prints the free-block pool entries verbatim.
func (p *Printer) Pool(entries []tch.PoolEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(p.w, "free-block pool is empty")
		return nil
	}
	for i, e := range entries {
		fmt.Fprintf(p.w, "%4d  offset=%d size=%d\n", i, e.Offset, e.Size)
	}
	return nil
}
