package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/joshuapare/tchkit/cmd/tchexplorer/logger"
	"github.com/joshuapare/tchkit/tch"
)

// maxRecords caps how many records are loaded into the list. Metadata only;
// values stay lazy until a record is opened.
const maxRecords = 100000

// Pane represents which view is active
type Pane int

const (
	ListPane Pane = iota
	ValuePane
)

// Model is the main application model
type Model struct {
	dbPath  string
	db      *tch.DB
	records []*tch.Record
	clipped bool // record list hit maxRecords

	cursor int
	top    int // first visible list row

	pane      Pane
	value     viewport.Model
	valueHex  bool
	showHelp  bool
	statusMsg string

	keys   KeyMap
	width  int
	height int

	err error
}

// NewModel opens the database and loads the record list.
func NewModel(dbPath string) (Model, error) {
	db, err := tch.OpenFile(dbPath, tch.OpenOptions{})
	if err != nil {
		return Model{}, err
	}

	var records []*tch.Record
	clipped := false
	it := db.Entries(false)
	for it.Next() {
		if r, ok := it.Entry().(*tch.Record); ok {
			records = append(records, r)
			if len(records) == maxRecords {
				clipped = true
				break
			}
		}
	}
	if err := it.Err(); err != nil {
		_ = db.Close()
		return Model{}, err
	}
	logger.Info("loaded records", "path", dbPath, "count", len(records), "clipped", clipped)

	return Model{
		dbPath:  dbPath,
		db:      db,
		records: records,
		clipped: clipped,
		keys:    DefaultKeyMap(),
	}, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// listHeight returns how many record rows fit on screen.
func (m Model) listHeight() int {
	h := m.height - 4 // header, column header, status
	if h < 1 {
		h = 1
	}
	return h
}

// clampCursor keeps the cursor and scroll window in range.
func (m *Model) clampCursor() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.records) {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+m.listHeight() {
		m.top = m.cursor - m.listHeight() + 1
	}
	if m.top < 0 {
		m.top = 0
	}
}

func (m Model) selected() *tch.Record {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return nil
	}
	return m.records[m.cursor]
}
