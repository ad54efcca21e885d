package tch

import "bytes"

// KeyWithHash is a lookup key together with its derived bucket index and
// secondary hash.
type KeyWithHash struct {
	Key    []byte
	Bucket uint64
	Hash   uint8
}

// Hash computes the bucket index and secondary hash for key.
//
// The bucket index folds the key front to back (seed 19780211, multiplier
// 37) modulo the bucket count. The secondary hash folds the key in reverse
// (seed 751, multiplier 31, XOR) and keeps the low 8 bits; it is the first
// comparator inside a bucket's search tree.
func (d *DB) Hash(key []byte) KeyWithHash {
	idx := uint64(19780211)
	for _, b := range key {
		idx = idx*37 + uint64(b)
	}
	idx %= d.hdr.BucketCount

	h := uint32(751)
	for i := len(key) - 1; i >= 0; i-- {
		h = h*31 ^ uint32(key[i])
	}

	return KeyWithHash{Key: key, Bucket: idx, Hash: uint8(h)}
}

// lookup walks the bucket tree for kh. It returns the visited records in
// order; on a hit the last visited record is the match. A free block on the
// path means the chain leads into reclaimed space, so the key is absent as
// far as this reader can tell: a miss, not an error.
func (d *DB) lookup(kh KeyWithHash) (found bool, visited []*Record, err error) {
	recOff, err := d.readBucket(kh.Bucket)
	if err != nil {
		return false, nil, err
	}

	for {
		if recOff.IsEmpty() {
			return false, visited, nil
		}

		rs, err := d.readRecordSpace(recOff.Absolute(d.hdr.AlignmentPower), d.eager)
		if err != nil {
			return false, visited, err
		}
		rec, ok := rs.(*Record)
		if !ok {
			return false, visited, nil
		}
		visited = append(visited, rec)

		if kh.Hash > rec.HashValue {
			recOff = rec.LeftChain
			continue
		}
		if kh.Hash < rec.HashValue {
			recOff = rec.RightChain
			continue
		}
		switch bytes.Compare(kh.Key, rec.Key) {
		case 1:
			recOff = rec.LeftChain
		case -1:
			recOff = rec.RightChain
		default:
			return true, visited, nil
		}
	}
}

// GetRecord returns the record stored under key, or ErrNotFound.
func (d *DB) GetRecord(key []byte) (*Record, error) {
	if err := d.ensureOpen(); err != nil {
		return nil, err
	}
	found, visited, err := d.lookup(d.Hash(key))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return visited[len(visited)-1], nil
}

// Get returns the value stored under key, or ErrNotFound.
func (d *DB) Get(key []byte) ([]byte, error) {
	rec, err := d.GetRecord(key)
	if err != nil {
		return nil, err
	}
	return rec.Value.Bytes()
}

// GetDetail performs a lookup and additionally returns the hashed key and
// every record visited while walking the bucket tree, for diagnostics. When
// found is false the visited list holds the records compared before the
// chain ended.
func (d *DB) GetDetail(key []byte) (kh KeyWithHash, found bool, visited []*Record, err error) {
	kh = d.Hash(key)
	if err = d.ensureOpen(); err != nil {
		return kh, false, nil, err
	}
	found, visited, err = d.lookup(kh)
	return kh, found, visited, err
}
