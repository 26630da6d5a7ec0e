package document

import "fmt"

// Selection is a range between an anchor and a focus position.
// The focus may come before the anchor.
type Selection struct {
	AnchorKey    string `json:"anchorKey"`
	AnchorOffset int    `json:"anchorOffset"`
	FocusKey     string `json:"focusKey"`
	FocusOffset  int    `json:"focusOffset"`
}

// SelectionAt returns a collapsed selection at offset in block key.
func SelectionAt(key string, offset int) Selection {
	return Selection{AnchorKey: key, AnchorOffset: offset, FocusKey: key, FocusOffset: offset}
}

// Collapsed reports whether the selection is a caret.
func (s Selection) Collapsed() bool {
	return s.AnchorKey == s.FocusKey && s.AnchorOffset == s.FocusOffset
}

// point is a resolved position: block index plus offset.
type point struct {
	idx int
	off int
}

func (p point) before(o point) bool {
	return p.idx < o.idx || (p.idx == o.idx && p.off < o.off)
}

func (d Document) resolve(key string, offset int) (point, error) {
	i, ok := d.index[key]
	if !ok {
		return point{}, fmt.Errorf("%w: %s", ErrUnknownBlock, key)
	}
	if offset < 0 || offset > d.blocks[i].Len() {
		return point{}, fmt.Errorf("block %s offset %d: %w", key, offset, ErrInvalidRange)
	}
	return point{idx: i, off: offset}, nil
}

// bounds resolves a selection into start and end points in document order.
func (d Document) bounds(sel Selection) (point, point, error) {
	a, err := d.resolve(sel.AnchorKey, sel.AnchorOffset)
	if err != nil {
		return point{}, point{}, err
	}
	f, err := d.resolve(sel.FocusKey, sel.FocusOffset)
	if err != nil {
		return point{}, point{}, err
	}
	if f.before(a) {
		return f, a, nil
	}
	return a, f, nil
}

// ValidateSelection returns an error if the selection does not fit the document.
func (d Document) ValidateSelection(sel Selection) error {
	_, _, err := d.bounds(sel)
	return err
}

// Clamp maps a selection onto d: unknown keys fall back to the start of the
// first block and offsets are clamped to their block's length.
func (d Document) Clamp(sel Selection) Selection {
	if len(d.blocks) == 0 {
		return Selection{}
	}
	clampOne := func(key string, off int) (string, int) {
		i, ok := d.index[key]
		if !ok {
			return d.blocks[0].Key, 0
		}
		return key, min(max(off, 0), d.blocks[i].Len())
	}
	ak, ao := clampOne(sel.AnchorKey, sel.AnchorOffset)
	fk, fo := clampOne(sel.FocusKey, sel.FocusOffset)
	return Selection{AnchorKey: ak, AnchorOffset: ao, FocusKey: fk, FocusOffset: fo}
}

// Start returns a caret at the beginning of the document.
func (d Document) Start() Selection {
	if len(d.blocks) == 0 {
		return Selection{}
	}
	return SelectionAt(d.blocks[0].Key, 0)
}
