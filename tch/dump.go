package tch

import "fmt"

// DumpBucket reads the given bucket's root and traverses its search tree,
// returning the records it contains. The emit order is right subtree, node,
// left subtree, so the sequence depends on the tree shape.
//
// A free block reached through a tree pointer is structural corruption and
// aborts the dump with ErrCorrupt; the DB remains usable for other calls.
func (d *DB) DumpBucket(bucket uint64) ([]*Record, error) {
	if err := d.ensureOpen(); err != nil {
		return nil, err
	}
	recOff, err := d.readBucket(bucket)
	if err != nil {
		return nil, err
	}
	var records []*Record
	if err := d.traverse(recOff, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (d *DB) traverse(recOff RecordOffset, records *[]*Record) error {
	if recOff.IsEmpty() {
		return nil
	}
	rs, err := d.readRecordSpace(recOff.Absolute(d.hdr.AlignmentPower), false)
	if err != nil {
		return err
	}
	rec, ok := rs.(*Record)
	if !ok {
		return wrap(ErrCorrupt, fmt.Errorf("free block at offset %d linked into bucket tree", recOff.Absolute(d.hdr.AlignmentPower)))
	}
	if err := d.traverse(rec.RightChain, records); err != nil {
		return err
	}
	*records = append(*records, rec)
	return d.traverse(rec.LeftChain, records)
}
