package tch

import "encoding/binary"

// OpenOptions controls how a cabinet file is opened.
type OpenOptions struct {
	// ByteOrder selects the byte order of multi-byte header and offset
	// fields. Nil means little-endian, which is what the format specifies;
	// big-endian files exist in the wild but violate the specification.
	// Tag bytes and variable-length integers are byte-oriented and are not
	// affected by this setting.
	ByteOrder binary.ByteOrder

	// EagerValues makes lookups and iteration read value bytes immediately
	// instead of handing out lazy handles.
	EagerValues bool
}

func (o OpenOptions) order() binary.ByteOrder {
	if o.ByteOrder == nil {
		return binary.LittleEndian
	}
	return o.ByteOrder
}
