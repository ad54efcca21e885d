// Package stats aggregates structural statistics from a cabinet database.
// It is a thin consumer of the core iterator and bucket array, shared by the
// command-line front ends.
package stats

import "github.com/joshuapare/tchkit/tch"

// Stats summarizes the structure of one cabinet file.
type Stats struct {
	// Header-derived layout.
	FileSize       uint64 `json:"file_size"`
	AlignmentPower uint8  `json:"alignment_power"`
	OffsetWidth    int    `json:"offset_width"`
	HeaderRecords  uint64 `json:"header_record_count"`

	// Bucket array.
	Buckets      uint64 `json:"buckets"`
	BucketsUsed  uint64 `json:"buckets_used"`
	BucketsEmpty uint64 `json:"buckets_empty"`

	// Record region, counted by a full forward scan.
	Records      uint64 `json:"records"`
	FreeBlocks   uint64 `json:"free_blocks"`
	KeyBytes     uint64 `json:"key_bytes"`
	ValueBytes   uint64 `json:"value_bytes"`
	PaddingBytes uint64 `json:"padding_bytes"`
	FreeBytes    uint64 `json:"free_bytes"`

	// Free-block pool.
	PoolEntries uint64 `json:"pool_entries"`

	// Largest sizes observed.
	MaxKeySize   uint32 `json:"max_key_size"`
	MaxValueSize uint32 `json:"max_value_size"`
}

// Collect scans db and returns its structural statistics. Values are not
// materialized; only metadata is read.
func Collect(db *tch.DB) (Stats, error) {
	hdr := db.Header()
	s := Stats{
		FileSize:       hdr.FileSize,
		AlignmentPower: hdr.AlignmentPower,
		OffsetWidth:    hdr.OffsetWidth(),
		HeaderRecords:  hdr.RecordCount,
		Buckets:        hdr.BucketCount,
	}

	buckets, err := db.Buckets()
	if err != nil {
		return Stats{}, err
	}
	s.BucketsUsed = uint64(buckets.Used())
	s.BucketsEmpty = s.Buckets - s.BucketsUsed

	it := db.Entries(false)
	for it.Next() {
		switch e := it.Entry().(type) {
		case *tch.Record:
			s.Records++
			s.KeyBytes += uint64(e.KeySize)
			s.ValueBytes += uint64(e.ValueSize)
			s.PaddingBytes += uint64(e.PaddingSize)
			if e.KeySize > s.MaxKeySize {
				s.MaxKeySize = e.KeySize
			}
			if e.ValueSize > s.MaxValueSize {
				s.MaxValueSize = e.ValueSize
			}
		case *tch.FreeBlock:
			s.FreeBlocks++
			s.FreeBytes += uint64(e.BlockSize)
		}
	}
	if err := it.Err(); err != nil {
		return Stats{}, err
	}

	pool, err := db.FreeBlockPool()
	if err != nil {
		return Stats{}, err
	}
	s.PoolEntries = uint64(len(pool))
	return s, nil
}
