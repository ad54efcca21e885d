package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// The explorer tests run against a small synthetic cabinet: alignment power
// 0, one bucket, 4-byte offsets, three records ("alpha", "beta", "gamma")
// followed by a trailing 16-byte free block. Only metadata matters to the list; the
// values load lazily when a record is opened.

type testRecord struct {
	key, value string
}

var testRecords = []testRecord{
	{"alpha", "first value"},
	{"beta", "second value"},
	{"gamma", "third\x00binary"},
}

// writeTestCabinet builds the fixture database and returns its path.
func writeTestCabinet(t *testing.T) string {
	t.Helper()

	first := uint32(256 + 4 + 2) // buckets, then the empty-pool terminator
	recordSize := func(r testRecord) uint32 {
		return uint32(1 + 1 + 4 + 4 + 2 + 1 + 1 + len(r.key) + len(r.value))
	}

	fileSize := first + 16 // trailing free block
	for _, r := range testRecords {
		fileSize += recordSize(r)
	}

	data := make([]byte, fileSize)
	copy(data, "ToKyO CaBiNeT")
	data[0x20] = 0x00 // hash database
	data[0x22] = 0    // alignment power
	data[0x23] = 4    // free pool power
	binary.LittleEndian.PutUint64(data[0x28:], 1)
	binary.LittleEndian.PutUint64(data[0x30:], uint64(len(testRecords)))
	binary.LittleEndian.PutUint64(data[0x38:], uint64(fileSize))
	binary.LittleEndian.PutUint64(data[0x40:], uint64(first))

	at := first
	for _, r := range testRecords {
		data[at] = 0xC8
		// hash, chains, and padding stay zero: the list does not look them up
		data[at+12] = byte(len(r.key))
		data[at+13] = byte(len(r.value))
		copy(data[at+14:], r.key)
		copy(data[at+14+uint32(len(r.key)):], r.value)
		at += recordSize(r)
	}
	data[at] = 0xB0
	binary.LittleEndian.PutUint32(data[at+1:], 16)

	path := filepath.Join(t.TempDir(), "casket.tch")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write test cabinet: %v", err)
	}
	return path
}

// newTestModel opens a fixture model sized to a sane terminal.
func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(writeTestCabinet(t))
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	t.Cleanup(func() { _ = m.db.Close() })
	return sendMsg(m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

// sendMsg runs one message through Update and returns the new model.
func sendMsg(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// sendKey simulates a special key press
func sendKey(m Model, keyType tea.KeyType) Model {
	return sendMsg(m, tea.KeyMsg{Type: keyType})
}

// sendRune simulates a character key press
func sendRune(m Model, r rune) Model {
	return sendMsg(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}
