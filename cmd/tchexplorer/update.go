package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/tchkit/cmd/tchexplorer/logger"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.value.Width = msg.Width - 4
		m.value.Height = msg.Height - 6
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		}
		if m.pane == ValuePane {
			return m.updateValuePane(msg)
		}
		return m.updateListPane(msg)
	}
	return m, nil
}

func (m Model) updateListPane(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		_ = m.db.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.cursor--
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= m.listHeight()
	case key.Matches(msg, m.keys.PageDown):
		m.cursor += m.listHeight()
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.records) - 1
	case key.Matches(msg, m.keys.Hex):
		m.valueHex = !m.valueHex
	case key.Matches(msg, m.keys.Enter):
		return m.openValue()
	case key.Matches(msg, m.keys.Copy):
		return m.copyValue()
	}
	m.clampCursor()
	return m, nil
}

func (m Model) updateValuePane(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		_ = m.db.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Esc), key.Matches(msg, m.keys.Enter):
		m.pane = ListPane
		return m, nil
	case key.Matches(msg, m.keys.Hex):
		m.valueHex = !m.valueHex
		return m.openValue()
	case key.Matches(msg, m.keys.Copy):
		return m.copyValue()
	}
	var cmd tea.Cmd
	m.value, cmd = m.value.Update(msg)
	return m, cmd
}

// openValue materializes the selected record's value and shows it.
func (m Model) openValue() (tea.Model, tea.Cmd) {
	rec := m.selected()
	if rec == nil {
		return m, nil
	}
	val, err := rec.Value.Bytes()
	if err != nil {
		logger.Error("value load failed", "offset", rec.Pos, "error", err)
		m.statusMsg = fmt.Sprintf("value load failed: %v", err)
		return m, nil
	}
	m.value.SetContent(renderValue(val, m.valueHex))
	m.value.GotoTop()
	m.pane = ValuePane
	return m, nil
}

// copyValue puts the selected record's value on the system clipboard.
func (m Model) copyValue() (tea.Model, tea.Cmd) {
	rec := m.selected()
	if rec == nil {
		return m, nil
	}
	val, err := rec.Value.Bytes()
	if err != nil {
		m.statusMsg = fmt.Sprintf("value load failed: %v", err)
		return m, nil
	}
	if err := clipboard.WriteAll(string(val)); err != nil {
		m.statusMsg = fmt.Sprintf("clipboard: %v", err)
		return m, nil
	}
	m.statusMsg = fmt.Sprintf("copied %d bytes", len(val))
	return m, nil
}
