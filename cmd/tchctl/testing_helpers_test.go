package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// The command tests run against a small synthetic cabinet written from
// scratch: alignment power 0 (offsets are plain byte positions), 8 buckets,
// 4-byte offsets, little-endian.
//
//	bucket 2: gamma
//	bucket 5: alpha -> left child delta (hash 111 > 29)
//	bucket 7: beta
//	bucket 1: empty (used for clean-miss cases)
//
// The record region holds alpha, a 16-byte free block, beta, gamma, delta,
// and the free-block pool holds the single entry (2, 10).
const (
	testBucketCount = 8
	testAlphaBucket = 5
	testUsedBuckets = 3
)

type testEntry struct {
	free    bool
	size    uint32 // free block size
	key     string
	value   string
	hash    byte
	bucket  int    // bucket to root, -1 when reached through a chain
	leftKey string // key of the left child, "" for none
}

func testEntries() []testEntry {
	return []testEntry{
		{key: "alpha", value: "first value", hash: 29, bucket: 5, leftKey: "delta"},
		{free: true, size: 16},
		{key: "beta", value: "second value", hash: 101, bucket: 7},
		{key: "gamma", value: "third value", hash: 202, bucket: 2},
		{key: "delta", value: "shadow value", hash: 111, bucket: -1},
	}
}

// writeTestCabinet builds the fixture database and returns its path.
func writeTestCabinet(t *testing.T) string {
	t.Helper()

	entries := testEntries()
	pool := []byte{0x02, 0x0A, 0x00, 0x00} // (2, 10), then the terminator
	first := uint32(256 + testBucketCount*4 + len(pool))

	// First pass: place entries. Keys and values are short, so the size
	// varints are single bytes.
	recordSize := func(e testEntry) uint32 {
		return uint32(1 + 1 + 4 + 4 + 2 + 1 + 1 + len(e.key) + len(e.value))
	}
	offsets := make([]uint32, len(entries))
	offByKey := map[string]uint32{}
	records := 0
	pos := first
	for i, e := range entries {
		offsets[i] = pos
		if e.free {
			pos += e.size
			continue
		}
		records++
		offByKey[e.key] = offsets[i]
		pos += recordSize(e)
	}
	fileSize := pos

	data := make([]byte, fileSize)
	copy(data, "ToKyO CaBiNeT")
	data[0x20] = 0x00 // hash database
	data[0x22] = 0    // alignment power
	data[0x23] = 4    // free pool power
	binary.LittleEndian.PutUint64(data[0x28:], testBucketCount)
	binary.LittleEndian.PutUint64(data[0x30:], uint64(records))
	binary.LittleEndian.PutUint64(data[0x38:], uint64(fileSize))
	binary.LittleEndian.PutUint64(data[0x40:], uint64(first))
	copy(data[256+testBucketCount*4:], pool)

	for i, e := range entries {
		at := offsets[i]
		if e.free {
			data[at] = 0xB0
			binary.LittleEndian.PutUint32(data[at+1:], e.size)
			continue
		}
		data[at] = 0xC8
		data[at+1] = e.hash
		if e.leftKey != "" {
			binary.LittleEndian.PutUint32(data[at+2:], offByKey[e.leftKey])
		}
		// right chain and padding size stay zero
		data[at+12] = byte(len(e.key))
		data[at+13] = byte(len(e.value))
		copy(data[at+14:], e.key)
		copy(data[at+14+uint32(len(e.key)):], e.value)
		if e.bucket >= 0 {
			binary.LittleEndian.PutUint32(data[256+4*uint32(e.bucket):], at)
		}
	}

	path := filepath.Join(t.TempDir(), "casket.tch")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write test cabinet: %v", err)
	}
	return path
}

// resetFlags restores every global and subcommand flag to its default so
// table-driven tests don't leak state into each other.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	bigEndian = false
	useMmap = false

	getHex = false
	getEncoding = ""
	getTrace = false

	listValues = false
	listHex = false
	listEncoding = ""
	listFree = false
	listLimit = 0

	bucketsUsed = false

	btreeValues = false
	btreeEncoding = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON and returns the decoded value
func assertJSON(t *testing.T, output string) interface{} {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
	return result
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
