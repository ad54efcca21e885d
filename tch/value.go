package tch

// Value is a record's value region: an offset and a length until it is
// materialized, then a byte slice. Materializing requires the owning DB to
// still be open; once the DB is closed, unread handles are unusable.
type Value struct {
	db     *DB
	off    int64
	size   uint32
	data   []byte
	loaded bool
}

// Size returns the value length in bytes.
func (v *Value) Size() uint32 { return v.size }

// Loaded reports whether the bytes are already in memory.
func (v *Value) Loaded() bool { return v.loaded }

// Bytes returns the value bytes, reading them from the stream on first use.
// The read seeks to the stored position, so it is safe to call between
// iterator steps or after iteration has finished.
func (v *Value) Bytes() ([]byte, error) {
	if v.loaded {
		return v.data, nil
	}
	if err := v.db.ensureOpen(); err != nil {
		return nil, err
	}
	if err := v.db.seek(v.off); err != nil {
		return nil, err
	}
	data := make([]byte, v.size)
	if err := v.db.fill(data); err != nil {
		return nil, err
	}
	v.data = data
	v.loaded = true
	return v.data, nil
}
