package tch

import (
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tchkit/internal/format"
)

// The tests build synthetic cabinet files in memory from entry specs. The
// builder places record-region entries contiguously after the bucket array
// and free pool, pads records out to the alignment, resolves tree links from
// entry indexes, and fills in a consistent header.

type fxRecord struct {
	key, value []byte
	left       int // entry index of the left child, -1 for none
	right      int // entry index of the right child, -1 for none
	extraPad   int // extra padding, in alignment units
	hashOver   *byte
	root       bool // install as the root of the key's bucket
}

type fxFree struct {
	size uint32
}

func rec(key, value string) *fxRecord {
	return &fxRecord{key: []byte(key), value: []byte(value), left: -1, right: -1, root: true}
}

type fixture struct {
	alignPower  uint8
	bucketCount uint64
	large       bool
	order       binary.ByteOrder
	poolPower   uint8
	pool        []PoolEntry
	entries     []any
}

func (f *fixture) width() int {
	if f.large {
		return 8
	}
	return 4
}

func (f *fixture) build(t *testing.T) []byte {
	t.Helper()
	if f.order == nil {
		f.order = binary.LittleEndian
	}
	if f.bucketCount == 0 {
		f.bucketCount = 1
	}
	if f.poolPower == 0 {
		f.poolPower = 10
	}
	width := f.width()
	align := int64(1) << f.alignPower

	var poolBytes []byte
	for _, e := range f.pool {
		poolBytes = format.AppendVnum(poolBytes, e.Offset)
		poolBytes = format.AppendVnum(poolBytes, e.Size)
	}
	poolBytes = append(poolBytes, 0x00, 0x00)

	first := int64(format.BucketBase) + int64(f.bucketCount)*int64(width) + int64(len(poolBytes))
	first = alignUp(first, align)

	// First pass: place every entry and derive record padding.
	offsets := make([]int64, len(f.entries))
	pads := make([]uint16, len(f.entries))
	pos := first
	records := 0
	for i, e := range f.entries {
		offsets[i] = pos
		switch e := e.(type) {
		case *fxRecord:
			records++
			raw := pos + recordRawSize(width, e.key, e.value)
			pad := alignUp(raw, align) - raw + int64(e.extraPad)*align
			require.LessOrEqual(t, pad, int64(math.MaxUint16))
			pads[i] = uint16(pad)
			pos = raw + pad
		case *fxFree:
			require.GreaterOrEqual(t, e.size, uint32(format.FreeBlockHeaderSize))
			pos += int64(e.size)
		default:
			t.Fatalf("unknown fixture entry %T", e)
		}
	}
	fileSize := pos

	data := make([]byte, fileSize)
	copy(data[format.MagicOffset:], format.Magic)
	data[format.TypeOffset] = format.TypeHash
	data[format.AlignmentOffset] = f.alignPower
	data[format.FreePoolPowerOffset] = f.poolPower
	if f.large {
		data[format.OptionsOffset] = format.OptLarge
	}
	f.order.PutUint64(data[format.BucketCountOffset:], f.bucketCount)
	f.order.PutUint64(data[format.RecordCountOffset:], uint64(records))
	f.order.PutUint64(data[format.FileSizeOffset:], uint64(fileSize))
	f.order.PutUint64(data[format.FirstRecordOffset:], uint64(first))

	copy(data[int64(format.BucketBase)+int64(f.bucketCount)*int64(width):], poolBytes)

	enc := func(i int) uint64 {
		if i < 0 {
			return 0
		}
		return uint64(offsets[i]) >> f.alignPower
	}
	putOff := func(at int64, v uint64) {
		if width == 8 {
			f.order.PutUint64(data[at:], v)
		} else {
			f.order.PutUint32(data[at:], uint32(v))
		}
	}

	// Second pass: serialize.
	for i, e := range f.entries {
		at := offsets[i]
		switch e := e.(type) {
		case *fxRecord:
			data[at] = format.RecordMagic
			h := secondaryHash(e.key)
			if e.hashOver != nil {
				h = *e.hashOver
			}
			data[at+1] = h
			putOff(at+2, enc(e.left))
			putOff(at+2+int64(width), enc(e.right))
			f.order.PutUint16(data[at+2+2*int64(width):], pads[i])
			p := at + 4 + 2*int64(width)
			sizes := format.AppendVnum(nil, uint64(len(e.key)))
			sizes = format.AppendVnum(sizes, uint64(len(e.value)))
			copy(data[p:], sizes)
			p += int64(len(sizes))
			copy(data[p:], e.key)
			p += int64(len(e.key))
			copy(data[p:], e.value)
			if e.root {
				idx := bucketIndex(e.key, f.bucketCount)
				putOff(int64(format.BucketBase)+int64(idx)*int64(width), enc(i))
			}
		case *fxFree:
			data[at] = format.FreeBlockMagic
			f.order.PutUint32(data[at+1:], e.size)
		}
	}
	return data
}

func recordRawSize(width int, key, value []byte) int64 {
	return int64(1 + 1 + 2*width + 2 +
		format.VnumLen(uint64(len(key))) + format.VnumLen(uint64(len(value))) +
		len(key) + len(value))
}

func alignUp(v, align int64) int64 {
	return (v + align - 1) / align * align
}

// bucketIndex and secondaryHash mirror the production hash functions so
// fixtures can be placed independently of the code under test.
func bucketIndex(key []byte, count uint64) uint64 {
	idx := uint64(19780211)
	for _, b := range key {
		idx = idx*37 + uint64(b)
	}
	return idx % count
}

func secondaryHash(key []byte) byte {
	h := uint32(751)
	for i := len(key) - 1; i >= 0; i-- {
		h = h*31 ^ uint32(key[i])
	}
	return byte(h)
}

// keysByHash returns n keys whose secondary hashes are strictly decreasing,
// useful for shaping bucket trees deterministically.
func keysByHash(t *testing.T, n int) []string {
	t.Helper()
	byHash := map[byte]string{}
	for i := 0; i < 4096 && len(byHash) < 256; i++ {
		k := fmt.Sprintf("key-%04d", i)
		h := secondaryHash([]byte(k))
		if _, ok := byHash[h]; !ok {
			byHash[h] = k
		}
	}
	var out []string
	for h := 255; h >= 0 && len(out) < n; h-- {
		if k, ok := byHash[byte(h)]; ok {
			out = append(out, k)
		}
	}
	require.Len(t, out, n, "not enough distinct secondary hashes")
	return out
}
