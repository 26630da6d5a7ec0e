// Package document implements the immutable block-structured document model.
//
// A Document is an ordered sequence of blocks. Every edit returns a new
// Document; values are never changed in place, so earlier snapshots stay
// valid for undo. Offsets are UTF-16 code units.
package document

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownBlock is returned when a block key is not part of the document.
	ErrUnknownBlock = errors.New("unknown block")
	// ErrInvalidRange is returned when an offset or span falls outside a block.
	ErrInvalidRange = errors.New("invalid range")
	// ErrDuplicateKey is returned when two blocks share a key.
	ErrDuplicateKey = errors.New("duplicate block key")
)

// Document is an immutable ordered sequence of blocks.
type Document struct {
	blocks []Block
	index  map[string]int
}

// Empty returns a document holding one empty unstyled block.
func Empty() Document {
	return newDocument([]Block{NewBlock("")})
}

// FromText returns a document with one unstyled block per line of text.
func FromText(text string) Document {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, len(lines))
	for i, line := range lines {
		blocks[i] = NewBlock(line)
	}
	return newDocument(blocks)
}

// FromBlocks builds a document from blocks. Missing keys and types are
// filled in and style ranges are normalised. An empty slice yields Empty().
func FromBlocks(blocks []Block) (Document, error) {
	if len(blocks) == 0 {
		return Empty(), nil
	}
	out := make([]Block, len(blocks))
	seen := make(map[string]bool, len(blocks))
	for i, b := range blocks {
		if b.Key == "" {
			b.Key = NewKey()
		}
		if seen[b.Key] {
			return Document{}, fmt.Errorf("%w: %s", ErrDuplicateKey, b.Key)
		}
		seen[b.Key] = true

		if b.Type == "" {
			b.Type = Unstyled
		}
		if _, ok := ParseBlockType(string(b.Type)); !ok {
			return Document{}, fmt.Errorf("block %s: unknown block type %q", b.Key, b.Type)
		}
		if b.Depth < 0 {
			return Document{}, fmt.Errorf("block %s: negative depth", b.Key)
		}

		n := b.Len()
		for _, r := range b.Styles {
			if r.Style.bit() == 0 {
				return Document{}, fmt.Errorf("block %s: unknown inline style %q", b.Key, r.Style)
			}
			if r.Offset < 0 || r.Length < 0 || r.Offset+r.Length > n {
				return Document{}, fmt.Errorf("block %s: style %s [%d,%d): %w", b.Key, r.Style, r.Offset, r.Offset+r.Length, ErrInvalidRange)
			}
		}
		b.Styles = rangesFromMask(b.mask(n))
		out[i] = b
	}
	return newDocument(out), nil
}

func newDocument(blocks []Block) Document {
	index := make(map[string]int, len(blocks))
	for i, b := range blocks {
		index[b.Key] = i
	}
	return Document{blocks: blocks, index: index}
}

// Len returns the number of blocks.
func (d Document) Len() int {
	return len(d.blocks)
}

// Blocks returns a copy of the block sequence.
func (d Document) Blocks() []Block {
	out := make([]Block, len(d.blocks))
	for i, b := range d.blocks {
		out[i] = b.clone()
	}
	return out
}

// Keys returns the block keys in document order.
func (d Document) Keys() []string {
	keys := make([]string, len(d.blocks))
	for i, b := range d.blocks {
		keys[i] = b.Key
	}
	return keys
}

// Block returns the block with the given key.
func (d Document) Block(key string) (Block, bool) {
	i, ok := d.index[key]
	if !ok {
		return Block{}, false
	}
	return d.blocks[i].clone(), true
}

// First returns the first block. Documents built by this package are never empty.
func (d Document) First() Block {
	if len(d.blocks) == 0 {
		return Block{}
	}
	return d.blocks[0].clone()
}

// PlainText joins the block texts with sep.
func (d Document) PlainText(sep string) string {
	texts := make([]string, len(d.blocks))
	for i, b := range d.blocks {
		texts[i] = b.Text
	}
	return strings.Join(texts, sep)
}

// Equal reports whether two documents hold the same blocks in the same order.
func (d Document) Equal(o Document) bool {
	if len(d.blocks) != len(o.blocks) {
		return false
	}
	for i := range d.blocks {
		if !blockEqual(d.blocks[i], o.blocks[i]) {
			return false
		}
	}
	return true
}

func blockEqual(a, b Block) bool {
	if a.Key != b.Key || a.Type != b.Type || a.Depth != b.Depth || a.Text != b.Text {
		return false
	}
	if len(a.Styles) != len(b.Styles) {
		return false
	}
	for i := range a.Styles {
		if a.Styles[i] != b.Styles[i] {
			return false
		}
	}
	return true
}

// WithBlocks returns a document where each given block replaces the block
// sharing its key. Blocks not named keep their position and value.
func (d Document) WithBlocks(updated ...Block) (Document, error) {
	if len(updated) == 0 {
		return d, nil
	}
	blocks := make([]Block, len(d.blocks))
	copy(blocks, d.blocks)
	for _, b := range updated {
		i, ok := d.index[b.Key]
		if !ok {
			return Document{}, fmt.Errorf("%w: %s", ErrUnknownBlock, b.Key)
		}
		blocks[i] = b.clone()
	}
	return Document{blocks: blocks, index: d.index}, nil
}
