package tch

// RecordOffset is an encoded record position: the absolute byte offset
// divided by the file's alignment. Zero means "no record" and terminates a
// bucket chain.
type RecordOffset struct {
	Value uint64
}

// Absolute translates the encoded value into an absolute byte offset by
// shifting left by the alignment power.
func (o RecordOffset) Absolute(alignmentPower uint8) int64 {
	return int64(o.Value << alignmentPower)
}

// IsEmpty reports whether the offset marks an empty bucket or a missing
// tree child.
func (o RecordOffset) IsEmpty() bool { return o.Value == 0 }
