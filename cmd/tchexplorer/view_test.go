package main

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderValue_TextPassthrough(t *testing.T) {
	if got := renderValue([]byte("plain text"), false); got != "plain text" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestRenderValue_HexDump(t *testing.T) {
	out := renderValue([]byte("first value"), true)
	for _, want := range []string{"00000000", "66 69 72 73 74", "|first value|"} {
		if !strings.Contains(out, want) {
			t.Errorf("hex dump missing %q\nGot: %s", want, out)
		}
	}
}

func TestRenderValue_ControlBytesForceHex(t *testing.T) {
	out := renderValue([]byte("a\x00b"), false)
	if !strings.Contains(out, "61 00 62") {
		t.Errorf("control bytes should force a hex dump\nGot: %s", out)
	}
	if !strings.Contains(out, "|a.b|") {
		t.Errorf("hex dump gutter should mask control bytes\nGot: %s", out)
	}
}

func TestRenderValue_MultiRowDump(t *testing.T) {
	out := renderValue(make([]byte, 20), true)
	if !strings.Contains(out, "00000010") {
		t.Errorf("a 20-byte dump should span two rows\nGot: %s", out)
	}
}

func TestDisplayKey(t *testing.T) {
	if got := displayKey([]byte("alpha")); got != "alpha" {
		t.Errorf("printable keys pass through, got %q", got)
	}
	if got := displayKey([]byte{0x01, 0xFF}); got != "01ff" {
		t.Errorf("binary keys render as hex, got %q", got)
	}
}

func TestView_ListShowsRecords(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"alpha", "beta", "gamma", "OFFSET", "tchexplorer"} {
		if !strings.Contains(view, want) {
			t.Errorf("list view missing %q\nGot: %s", want, view)
		}
	}
}

func TestView_Error(t *testing.T) {
	m := Model{err: errors.New("boom")}
	if view := m.View(); !strings.Contains(view, "boom") {
		t.Errorf("error view should show the error\nGot: %s", view)
	}
}

func TestView_Help(t *testing.T) {
	m := newTestModel(t)
	m.showHelp = true
	if view := m.View(); !strings.Contains(view, "copy value to clipboard") {
		t.Errorf("help view should list the bindings\nGot: %s", view)
	}
}
