// Package tch reads Tokyo Cabinet hash database files.
//
// The package is a read-only decoder: it parses the fixed header, the bucket
// array, the free-block pool, and the record region, and answers point
// lookups by walking the per-bucket binary search tree. It never writes,
// locks, or repairs a file.
//
// A DB owns a single positioned cursor over the underlying stream. Every
// operation seeks before it reads, so cooperating consumers on one goroutine
// may freely interleave iteration, lookups, and lazy value loads. A DB is
// not safe for concurrent use from multiple goroutines.
package tch
