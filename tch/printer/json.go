package printer

import (
	"encoding/hex"
	"encoding/json"

	"github.com/joshuapare/tchkit/tch"
)

// jsonRecord is the JSON shape of one record. Keys and values appear as
// display text when they transcode cleanly; the hex form is always present
// so nothing is lost to lossy rendering.
type jsonRecord struct {
	Type      string `json:"type"`
	Offset    int64  `json:"offset"`
	Hash      uint8  `json:"hash"`
	Key       string `json:"key,omitempty"`
	KeyHex    string `json:"key_hex"`
	ValueSize uint32 `json:"value_size"`
	Value     string `json:"value,omitempty"`
	ValueHex  string `json:"value_hex,omitempty"`
	Left      uint64 `json:"left_chain"`
	Right     uint64 `json:"right_chain"`
	Padding   uint16 `json:"padding"`
}

// jsonFreeBlock is the JSON shape of one free block.
type jsonFreeBlock struct {
	Type      string `json:"type"`
	Offset    int64  `json:"offset"`
	BlockSize uint32 `json:"block_size"`
}

func (p *Printer) recordJSON(r *tch.Record) (jsonRecord, error) {
	jr := jsonRecord{
		Type:      "record",
		Offset:    r.Pos,
		Hash:      r.HashValue,
		Key:       p.Display(r.Key),
		KeyHex:    hex.EncodeToString(r.Key),
		ValueSize: r.ValueSize,
		Left:      r.LeftChain.Value,
		Right:     r.RightChain.Value,
		Padding:   r.PaddingSize,
	}
	if p.opts.ShowValues {
		val, err := r.Value.Bytes()
		if err != nil {
			return jsonRecord{}, err
		}
		jr.Value = p.Display(val)
		jr.ValueHex = hex.EncodeToString(val)
	}
	return jr, nil
}

// RecordsJSON prints a JSON array of records. Values are included when
// ShowValues is set.
func (p *Printer) RecordsJSON(records []*tch.Record) error {
	out := make([]jsonRecord, 0, len(records))
	for _, r := range records {
		jr, err := p.recordJSON(r)
		if err != nil {
			return err
		}
		out = append(out, jr)
	}
	return p.encodeJSON(out)
}

// EntriesJSON prints a JSON array of record-region entries in file order,
// records and free blocks alike, each tagged by a "type" field.
func (p *Printer) EntriesJSON(entries []tch.RecordSpace) error {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		switch e := e.(type) {
		case *tch.Record:
			jr, err := p.recordJSON(e)
			if err != nil {
				return err
			}
			out = append(out, jr)
		case *tch.FreeBlock:
			out = append(out, jsonFreeBlock{
				Type:      "free_block",
				Offset:    e.Pos,
				BlockSize: e.BlockSize,
			})
		}
	}
	return p.encodeJSON(out)
}

func (p *Printer) encodeJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
