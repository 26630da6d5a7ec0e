package document

import (
	"fmt"
	"strings"
)

// ReplaceRange replaces [start, end) of block key with text.
// The inserted text is unstyled; text is kept verbatim, newlines included.
func (d Document) ReplaceRange(key string, start, end int, text string) (Document, error) {
	i, ok := d.index[key]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrUnknownBlock, key)
	}
	nb, err := d.blocks[i].Splice([]Span{{Start: start, End: end}}, text)
	if err != nil {
		return Document{}, fmt.Errorf("block %s [%d,%d): %w", key, start, end, err)
	}
	return d.WithBlocks(nb)
}

// InsertText replaces the selection with text and returns the new document
// and a caret placed after the inserted text. Each newline splits the block;
// blocks created by a split take the type and depth of the block the
// selection started in and get fresh keys.
func (d Document) InsertText(sel Selection, text string) (Document, Selection, error) {
	start, end, err := d.bounds(sel)
	if err != nil {
		return Document{}, Selection{}, err
	}

	sb, eb := d.blocks[start.idx], d.blocks[end.idx]
	sUnits, sMask := toUnits(sb.Text), sb.mask(sb.Len())
	eUnits, eMask := toUnits(eb.Text), eb.mask(eb.Len())

	lines := strings.Split(text, "\n")
	created := make([]Block, 0, len(lines))
	var caret Selection
	for i, line := range lines {
		lu := toUnits(line)
		var units []uint16
		var mask []styleSet
		if i == 0 {
			units = append(units, sUnits[:start.off]...)
			mask = append(mask, sMask[:start.off]...)
		}
		units = append(units, lu...)
		mask = append(mask, make([]styleSet, len(lu))...)
		caretOff := len(units)
		if i == len(lines)-1 {
			units = append(units, eUnits[end.off:]...)
			mask = append(mask, eMask[end.off:]...)
		}

		key := sb.Key
		if i > 0 {
			key = NewKey()
		}
		created = append(created, Block{
			Key:    key,
			Type:   sb.Type,
			Depth:  sb.Depth,
			Text:   fromUnits(units),
			Styles: rangesFromMask(mask),
		})
		caret = SelectionAt(key, caretOff)
	}

	blocks := make([]Block, 0, len(d.blocks)-(end.idx-start.idx)+len(created)-1)
	blocks = append(blocks, d.blocks[:start.idx]...)
	blocks = append(blocks, created...)
	blocks = append(blocks, d.blocks[end.idx+1:]...)
	return newDocument(blocks), caret, nil
}

// ToggleInlineStyle removes style from the selection when every selected
// character already carries it, and applies it otherwise. A selection that
// covers no characters leaves the document unchanged.
func (d Document) ToggleInlineStyle(sel Selection, style InlineStyle) (Document, error) {
	bit := style.bit()
	if bit == 0 {
		return Document{}, fmt.Errorf("unknown inline style %q", style)
	}
	start, end, err := d.bounds(sel)
	if err != nil {
		return Document{}, err
	}

	type segment struct {
		idx      int
		from, to int
	}
	var segs []segment
	all := true
	covered := false
	for i := start.idx; i <= end.idx; i++ {
		b := d.blocks[i]
		from, to := 0, b.Len()
		if i == start.idx {
			from = start.off
		}
		if i == end.idx {
			to = end.off
		}
		if from >= to {
			continue
		}
		covered = true
		m := b.mask(b.Len())
		for _, s := range m[from:to] {
			if s&bit == 0 {
				all = false
				break
			}
		}
		segs = append(segs, segment{idx: i, from: from, to: to})
	}
	if !covered {
		return d, nil
	}

	updated := make([]Block, 0, len(segs))
	for _, sg := range segs {
		b := d.blocks[sg.idx]
		m := b.mask(b.Len())
		for j := sg.from; j < sg.to; j++ {
			if all {
				m[j] &^= bit
			} else {
				m[j] |= bit
			}
		}
		nb := b
		nb.Styles = rangesFromMask(m)
		updated = append(updated, nb)
	}
	return d.WithBlocks(updated...)
}

// ToggleBlockType sets every block touched by the selection to t, or back to
// Unstyled when all of them already have type t.
func (d Document) ToggleBlockType(sel Selection, t BlockType) (Document, error) {
	if _, ok := ParseBlockType(string(t)); !ok {
		return Document{}, fmt.Errorf("unknown block type %q", t)
	}
	start, end, err := d.bounds(sel)
	if err != nil {
		return Document{}, err
	}

	target := Unstyled
	for i := start.idx; i <= end.idx; i++ {
		if d.blocks[i].Type != t {
			target = t
			break
		}
	}

	updated := make([]Block, 0, end.idx-start.idx+1)
	for i := start.idx; i <= end.idx; i++ {
		nb := d.blocks[i]
		nb.Type = target
		if !target.IsList() {
			nb.Depth = 0
		}
		updated = append(updated, nb)
	}
	return d.WithBlocks(updated...)
}

// StylesAt returns the inline styles carried by the code unit at offset.
func (d Document) StylesAt(key string, offset int) ([]InlineStyle, error) {
	i, ok := d.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBlock, key)
	}
	b := d.blocks[i]
	if offset < 0 || offset >= b.Len() {
		return nil, fmt.Errorf("block %s offset %d: %w", key, offset, ErrInvalidRange)
	}
	var out []InlineStyle
	for _, st := range inlineStyles {
		if b.HasStyle(offset, st) {
			out = append(out, st)
		}
	}
	return out, nil
}
