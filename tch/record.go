package tch

import (
	"fmt"
	"math"

	"github.com/joshuapare/tchkit/internal/buf"
	"github.com/joshuapare/tchkit/internal/format"
)

// RecordSpace is one entry in the record region: either a *Record or a
// *FreeBlock.
type RecordSpace interface {
	// Next returns the absolute offset of the following record-region entry.
	Next() int64

	isRecordSpace()
}

// Record is a stored key/value pair together with its bucket-tree links.
type Record struct {
	// Pos is the absolute offset of the entry's tag byte.
	Pos int64
	// HashValue is the low 8 bits of the key's secondary hash.
	HashValue uint8
	// LeftChain and RightChain are the tree child pointers. Keys comparing
	// greater than this record live down the left chain.
	LeftChain  RecordOffset
	RightChain RecordOffset
	// PaddingSize is the number of alignment padding bytes after the value.
	PaddingSize uint16
	KeySize     uint32
	ValueSize   uint32
	Key         []byte
	// Value is the record's value, possibly still unread. See Value.Bytes.
	Value *Value

	keySizeLen   int
	valueSizeLen int
	width        int
}

func (*Record) isRecordSpace() {}

// Next computes the offset of the following record-region entry from the
// record's sizes alone: tag, hash byte, two chain pointers, padding size
// field, the two size varints, then key, value, and padding bytes.
func (r *Record) Next() int64 {
	return r.Pos + 1 + 1 + int64(2*r.width) + 2 +
		int64(r.keySizeLen) + int64(r.valueSizeLen) +
		int64(r.KeySize) + int64(r.ValueSize) + int64(r.PaddingSize)
}

// FreeBlock is a reclaimed region of record space.
type FreeBlock struct {
	// Pos is the absolute offset of the entry's tag byte.
	Pos int64
	// BlockSize is the total size of the block including the tag and the
	// size field itself.
	BlockSize uint32
}

func (*FreeBlock) isRecordSpace() {}

// Next returns the offset of the entry following the free block.
func (f *FreeBlock) Next() int64 { return f.Pos + int64(f.BlockSize) }

// readRecordSpace decodes one entry at pos. For records, withValue selects
// eager value materialization; otherwise the value handle stays lazy.
func (d *DB) readRecordSpace(pos int64, withValue bool) (RecordSpace, error) {
	if err := d.seek(pos); err != nil {
		return nil, err
	}
	var tag [1]byte
	if err := d.fill(tag[:]); err != nil {
		return nil, err
	}
	switch tag[0] {
	case format.RecordMagic:
		return d.readRecord(pos, withValue)
	case format.FreeBlockMagic:
		return d.readFreeBlock(pos)
	default:
		return nil, wrap(ErrUnknownTag, fmt.Errorf("0x%02x at offset %d", tag[0], pos))
	}
}

// readRecord decodes the record whose tag byte sits at pos; the cursor is
// already past the tag.
func (d *DB) readRecord(pos int64, withValue bool) (*Record, error) {
	// Fixed part: hash byte, two chain pointers, padding size.
	fixed := make([]byte, 1+2*d.width+2)
	if err := d.fill(fixed); err != nil {
		return nil, err
	}
	rec := &Record{
		Pos:       pos,
		HashValue: fixed[0],
		LeftChain: RecordOffset{Value: buf.Uint(d.order, fixed[1:1+d.width], d.width)},
		RightChain: RecordOffset{
			Value: buf.Uint(d.order, fixed[1+d.width:1+2*d.width], d.width),
		},
		PaddingSize: buf.U16(d.order, fixed[1+2*d.width:]),
		width:       d.width,
	}

	ksz, klen, err := d.readVnum()
	if err != nil {
		return nil, err
	}
	vsz, vlen, err := d.readVnum()
	if err != nil {
		return nil, err
	}
	if ksz > math.MaxUint32 || vsz > math.MaxUint32 {
		return nil, wrap(ErrCorrupt, fmt.Errorf("record at %d: key size %d / value size %d exceed u32", pos, ksz, vsz))
	}
	rec.KeySize = uint32(ksz)
	rec.ValueSize = uint32(vsz)
	rec.keySizeLen = klen
	rec.valueSizeLen = vlen

	rec.Key = make([]byte, rec.KeySize)
	if err := d.fill(rec.Key); err != nil {
		return nil, err
	}

	valueOff, err := d.pos()
	if err != nil {
		return nil, err
	}
	rec.Value = &Value{db: d, off: valueOff, size: rec.ValueSize}
	if withValue {
		if _, err := rec.Value.Bytes(); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// readFreeBlock decodes the free block whose tag byte sits at pos and skips
// its payload.
func (d *DB) readFreeBlock(pos int64) (*FreeBlock, error) {
	var b [4]byte
	if err := d.fill(b[:]); err != nil {
		return nil, err
	}
	size := buf.U32(d.order, b[:])
	if size < format.FreeBlockHeaderSize {
		return nil, wrap(ErrCorrupt, fmt.Errorf("free block at %d: size %d below header size", pos, size))
	}
	// The payload carries no information; step over it.
	if err := d.seek(pos + int64(size)); err != nil {
		return nil, err
	}
	return &FreeBlock{Pos: pos, BlockSize: size}, nil
}
