package tch

// Iter is a forward iterator over record-region entries, from the first
// record to the end of the file, in strictly increasing file order. It is
// finite and non-restartable; construct a new one for a second pass.
//
// The iterator seeks before decoding each entry, so lookups and lazy value
// loads may run between Next calls without disturbing it.
type Iter struct {
	db         *DB
	withValues bool
	next       int64
	fileSize   int64
	cur        RecordSpace
	err        error
}

// Entries returns an iterator over the record region. When withValues is
// true (or the DB was opened with EagerValues), record values are read
// immediately; otherwise each record carries a lazy handle.
func (d *DB) Entries(withValues bool) *Iter {
	return &Iter{
		db:         d,
		withValues: withValues || d.eager,
		next:       int64(d.hdr.FirstRecord),
		fileSize:   int64(d.hdr.FileSize),
	}
}

// Next advances to the following entry. It returns false at the end of the
// record region or on the first error; check Err afterwards.
func (it *Iter) Next() bool {
	if it.err != nil || it.next >= it.fileSize {
		return false
	}
	if err := it.db.ensureOpen(); err != nil {
		it.err = err
		return false
	}
	rs, err := it.db.readRecordSpace(it.next, it.withValues)
	if err != nil {
		it.err = err
		return false
	}
	it.cur = rs
	it.next = rs.Next()
	return true
}

// Entry returns the entry decoded by the last successful Next.
func (it *Iter) Entry() RecordSpace { return it.cur }

// Pos returns the offset where the next entry will be decoded. After the
// iterator is exhausted on a well-formed file this equals the file size.
func (it *Iter) Pos() int64 { return it.next }

// Err returns the error that stopped iteration, if any.
func (it *Iter) Err() error { return it.err }
