package tch

// PoolEntry is one free-block pool element, returned verbatim. The on-disk
// offset field is recorded as the difference from the previous free block,
// as the quotient by the alignment; this reader does not apply that
// interpretation.
type PoolEntry struct {
	Offset uint64
	Size   uint64
}

// maxPoolPrealloc bounds the capacity hint taken from the header so a
// hostile free_block_pool_power cannot force a huge allocation.
const maxPoolPrealloc = 1 << 20

// FreeBlockPool reads the free-block pool, which follows the bucket array
// and terminates at the first (0,0) entry.
func (d *DB) FreeBlockPool() ([]PoolEntry, error) {
	if err := d.ensureOpen(); err != nil {
		return nil, err
	}
	if err := d.seek(d.freePoolOffset); err != nil {
		return nil, err
	}

	capHint := maxPoolPrealloc
	if d.hdr.FreeBlockPoolPower < 20 {
		capHint = 1 << d.hdr.FreeBlockPoolPower
	}
	pool := make([]PoolEntry, 0, capHint)
	for {
		off, _, err := d.readVnum()
		if err != nil {
			return nil, err
		}
		size, _, err := d.readVnum()
		if err != nil {
			return nil, err
		}
		if off == 0 && size == 0 {
			return pool, nil
		}
		pool = append(pool, PoolEntry{Offset: off, Size: size})
	}
}
