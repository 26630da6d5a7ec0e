package document

import (
	"encoding/json"
	"fmt"
)

// RawDocument is the serialisable block-sequence form used for persistence.
type RawDocument struct {
	Blocks    []RawBlock     `json:"blocks"`
	EntityMap map[string]any `json:"entityMap"`
}

// RawBlock is the serialisable form of a Block.
type RawBlock struct {
	Key               string          `json:"key"`
	Text              string          `json:"text"`
	Type              string          `json:"type"`
	Depth             int             `json:"depth"`
	InlineStyleRanges []RawStyleRange `json:"inlineStyleRanges"`
	EntityRanges      []any           `json:"entityRanges"`
	Data              map[string]any  `json:"data"`
}

// RawStyleRange is the serialisable form of a StyleRange.
type RawStyleRange struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Style  string `json:"style"`
}

// ToRaw converts the document to its raw form.
func (d Document) ToRaw() RawDocument {
	raw := RawDocument{
		Blocks:    make([]RawBlock, len(d.blocks)),
		EntityMap: map[string]any{},
	}
	for i, b := range d.blocks {
		rb := RawBlock{
			Key:               b.Key,
			Text:              b.Text,
			Type:              string(b.Type),
			Depth:             b.Depth,
			InlineStyleRanges: make([]RawStyleRange, len(b.Styles)),
			EntityRanges:      []any{},
			Data:              map[string]any{},
		}
		for j, r := range b.Styles {
			rb.InlineStyleRanges[j] = RawStyleRange{Offset: r.Offset, Length: r.Length, Style: string(r.Style)}
		}
		raw.Blocks[i] = rb
	}
	return raw
}

// FromRaw validates a raw document and converts it.
func FromRaw(raw RawDocument) (Document, error) {
	blocks := make([]Block, len(raw.Blocks))
	for i, rb := range raw.Blocks {
		t := BlockType(rb.Type)
		if rb.Type == "" {
			t = Unstyled
		}
		b := Block{
			Key:   rb.Key,
			Type:  t,
			Depth: rb.Depth,
			Text:  rb.Text,
		}
		for _, rr := range rb.InlineStyleRanges {
			st, ok := ParseInlineStyle(rr.Style)
			if !ok {
				return Document{}, fmt.Errorf("block %d: unknown inline style %q", i, rr.Style)
			}
			b.Styles = append(b.Styles, StyleRange{Offset: rr.Offset, Length: rr.Length, Style: st})
		}
		blocks[i] = b
	}
	return FromBlocks(blocks)
}

// MarshalRaw encodes the document as raw JSON.
func MarshalRaw(d Document) ([]byte, error) {
	return json.Marshal(d.ToRaw())
}

// UnmarshalRaw decodes raw JSON into a document.
func UnmarshalRaw(data []byte) (Document, error) {
	var raw RawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("decode raw document: %w", err)
	}
	return FromRaw(raw)
}
