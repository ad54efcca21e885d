// Package printer renders cabinet records for human consumption. It is a
// display layer only; keys and values stay opaque bytes in the core and are
// transcoded here at the last moment.
package printer

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text.
	FormatText Format = "text"

	// FormatJSON outputs one JSON document.
	FormatJSON Format = "json"
)

const (
	// DefaultMaxValueBytes limits how many value bytes text output shows
	// before truncating with an ellipsis.
	DefaultMaxValueBytes = 64
)

// Options controls printing behavior.
type Options struct {
	// Format specifies the output format (text, json). Default: FormatText.
	Format Format

	// Encoding names the character encoding used to render keys and values
	// as text: "utf-8" (default), "euc-jp", "shift_jis", or "windows-1252".
	// Tokyo Cabinet files routinely carry EUC-JP or Shift_JIS data.
	Encoding string

	// Hex forces hexadecimal rendering of keys and values regardless of
	// encoding.
	Hex bool

	// ShowValues includes value data in record output. Default: false.
	ShowValues bool

	// MaxValueBytes limits displayed value bytes (0 = DefaultMaxValueBytes).
	MaxValueBytes int
}

// Printer renders records and related structures to a writer.
type Printer struct {
	w    io.Writer
	opts Options
	dec  *encoding.Decoder // nil for utf-8 passthrough
}

// New builds a Printer. It fails only on an unknown encoding name.
func New(w io.Writer, opts Options) (*Printer, error) {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.MaxValueBytes == 0 {
		opts.MaxValueBytes = DefaultMaxValueBytes
	}
	dec, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, err
	}
	return &Printer{w: w, opts: opts, dec: dec}, nil
}

func decoderFor(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "euc-jp", "eucjp":
		return japanese.EUCJP.NewDecoder(), nil
	case "shift_jis", "shift-jis", "sjis":
		return japanese.ShiftJIS.NewDecoder(), nil
	case "windows-1252", "cp1252", "latin1":
		return charmap.Windows1252.NewDecoder(), nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder(), nil
	default:
		return nil, fmt.Errorf("printer: unknown encoding %q", name)
	}
}

// Display renders raw bytes for output: transcoded through the configured
// encoding when possible, hex otherwise.
func (p *Printer) Display(b []byte) string {
	if p.opts.Hex {
		return hexString(b)
	}
	s := b
	if p.dec != nil {
		if out, err := p.dec.Bytes(b); err == nil {
			s = out
		}
	}
	if utf8.Valid(s) && printable(s) {
		return string(s)
	}
	return hexString(b)
}

func printable(b []byte) bool {
	for _, c := range string(b) {
		if c < 0x20 && c != '\t' {
			return false
		}
	}
	return true
}

func hexString(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}

func (p *Printer) clip(b []byte) ([]byte, bool) {
	if len(b) > p.opts.MaxValueBytes {
		return b[:p.opts.MaxValueBytes], true
	}
	return b, false
}
