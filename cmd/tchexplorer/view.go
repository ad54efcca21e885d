package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	var content string
	if m.pane == ValuePane {
		content = valueFrameStyle.Render(m.value.View())
	} else {
		content = m.renderList()
	}
	status := m.renderStatus()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

func (m Model) renderHeader() string {
	title := headerStyle.Render("tchexplorer")
	path := pathStyle.Render(m.dbPath)
	count := fmt.Sprintf("%d records", len(m.records))
	if m.clipped {
		count += "+"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", path, "  ", statusStyle.Render(count))
}

func (m Model) renderList() string {
	var sb strings.Builder
	sb.WriteString(columnStyle.Render(fmt.Sprintf("%-10s %-5s %-6s  %s", "OFFSET", "HASH", "VSIZE", "KEY")))
	sb.WriteByte('\n')

	end := m.top + m.listHeight()
	if end > len(m.records) {
		end = len(m.records)
	}
	for i := m.top; i < end; i++ {
		r := m.records[i]
		line := fmt.Sprintf("%-10d %-5d %-6d  %s", r.Pos, r.HashValue, r.ValueSize, displayKey(r.Key))
		if m.width > 2 && len(line) > m.width-2 {
			line = line[:m.width-2]
		}
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render(line))
		} else {
			sb.WriteString(rowStyle.Render(line))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m Model) renderStatus() string {
	if m.statusMsg != "" {
		return statusStyle.Render(m.statusMsg)
	}
	if m.pane == ValuePane {
		return statusStyle.Render("esc back · x hex · c copy · q quit")
	}
	return statusStyle.Render("↑/↓ move · enter view · c copy · x hex · ? help · q quit")
}

func (m Model) renderHelp() string {
	help := `
  tchexplorer — Tokyo Cabinet hash database browser

  ↑/k, ↓/j      move selection
  pgup, pgdn    page
  home/g, end/G jump to first / last record
  enter         view the selected record's value
  x             toggle hex rendering
  c             copy value to clipboard
  esc           close value view / help
  q             quit
`
	return headerStyle.Render("help") + "\n" + help
}

// displayKey renders a key for the list: text when printable, hex otherwise.
func displayKey(key []byte) string {
	if utf8.Valid(key) && !strings.ContainsFunc(string(key), func(r rune) bool { return r < 0x20 }) {
		return string(key)
	}
	return fmt.Sprintf("%x", key)
}

// renderValue renders value bytes for the viewport: either a classic hex
// dump or raw text. Control bytes other than newlines and tabs force the
// hex dump even for byte sequences that happen to be valid UTF-8.
func renderValue(val []byte, hex bool) string {
	printable := func(r rune) bool { return r >= 0x20 || r == '\n' || r == '\t' }
	if !hex && utf8.Valid(val) && !strings.ContainsFunc(string(val), func(r rune) bool { return !printable(r) }) {
		return string(val)
	}
	var sb strings.Builder
	for off := 0; off < len(val); off += 16 {
		end := off + 16
		if end > len(val) {
			end = len(val)
		}
		row := val[off:end]
		fmt.Fprintf(&sb, "%08x  ", off)
		for i := 0; i < 16; i++ {
			if i < len(row) {
				fmt.Fprintf(&sb, "%02x ", row[i])
			} else {
				sb.WriteString("   ")
			}
			if i == 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(" |")
		for _, c := range row {
			if c >= 0x20 && c < 0x7F {
				sb.WriteByte(c)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
