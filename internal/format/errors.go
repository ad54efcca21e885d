package format

import "errors"

var (
	// ErrSignatureMismatch indicates the file does not start with the
	// cabinet magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrWrongType indicates a database type other than hash.
	ErrWrongType = errors.New("format: not a hash database")
	// ErrTruncated indicates the buffer or stream lacked the bytes required
	// for a structure.
	ErrTruncated = errors.New("format: truncated")
	// ErrUnknownTag indicates a record-region position held a byte that is
	// neither a record tag nor a free block tag.
	ErrUnknownTag = errors.New("format: unknown record tag")
	// ErrBadAlignment indicates an alignment power outside the shiftable range.
	ErrBadAlignment = errors.New("format: alignment power out of range")
)
