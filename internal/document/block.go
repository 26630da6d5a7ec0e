package document

import (
	"sort"
	"unicode/utf16"

	"github.com/google/uuid"
)

// BlockType is the structural role of a block.
type BlockType string

const (
	Unstyled          BlockType = "unstyled"
	HeaderOne         BlockType = "header-one"
	HeaderTwo         BlockType = "header-two"
	HeaderThree       BlockType = "header-three"
	UnorderedListItem BlockType = "unordered-list-item"
	OrderedListItem   BlockType = "ordered-list-item"
	AlignLeft         BlockType = "left"
	AlignCenter       BlockType = "center"
	AlignRight        BlockType = "right"
)

var blockTypes = map[BlockType]bool{
	Unstyled:          true,
	HeaderOne:         true,
	HeaderTwo:         true,
	HeaderThree:       true,
	UnorderedListItem: true,
	OrderedListItem:   true,
	AlignLeft:         true,
	AlignCenter:       true,
	AlignRight:        true,
}

// ParseBlockType returns the block type named s.
func ParseBlockType(s string) (BlockType, bool) {
	t := BlockType(s)
	return t, blockTypes[t]
}

// IsList reports whether blocks of this type are list items.
func (t BlockType) IsList() bool {
	return t == UnorderedListItem || t == OrderedListItem
}

// InlineStyle is a character-range formatting attribute.
type InlineStyle string

const (
	Bold      InlineStyle = "BOLD"
	Italic    InlineStyle = "ITALIC"
	Underline InlineStyle = "UNDERLINE"
)

// inlineStyles fixes the order styles are emitted in.
var inlineStyles = []InlineStyle{Bold, Italic, Underline}

// ParseInlineStyle returns the inline style named s.
func ParseInlineStyle(s string) (InlineStyle, bool) {
	for _, st := range inlineStyles {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

func (s InlineStyle) bit() styleSet {
	for i, st := range inlineStyles {
		if st == s {
			return 1 << i
		}
	}
	return 0
}

// StyleRange applies Style to Length UTF-16 code units starting at Offset.
type StyleRange struct {
	Offset int
	Length int
	Style  InlineStyle
}

// Span is a half-open [Start, End) range of UTF-16 code units in one block.
type Span struct {
	Start int
	End   int
}

// Block is one paragraph, heading or list item.
type Block struct {
	Key    string
	Type   BlockType
	Depth  int
	Text   string
	Styles []StyleRange
}

// NewKey returns a fresh block key.
func NewKey() string {
	return uuid.NewString()
}

// NewBlock returns an unstyled block with a fresh key.
func NewBlock(text string) Block {
	return Block{Key: NewKey(), Type: Unstyled, Text: text}
}

// Len returns the length of the block text in UTF-16 code units.
func (b Block) Len() int {
	return utf16Len(b.Text)
}

// HasStyle reports whether the code unit at offset carries style.
func (b Block) HasStyle(offset int, style InlineStyle) bool {
	for _, r := range b.Styles {
		if r.Style == style && offset >= r.Offset && offset < r.Offset+r.Length {
			return true
		}
	}
	return false
}

// Splice rebuilds the block in one pass, replacing every span with text.
// Spans refer to the original text and must be sorted and non-overlapping.
// Inserted text is unstyled; styles outside the spans keep their characters.
func (b Block) Splice(spans []Span, text string) (Block, error) {
	units := toUnits(b.Text)
	if err := checkSpans(spans, len(units)); err != nil {
		return Block{}, err
	}
	if len(spans) == 0 {
		return b.clone(), nil
	}

	mask := b.mask(len(units))
	ins := toUnits(text)

	outUnits := make([]uint16, 0, len(units)+len(spans)*len(ins))
	outMask := make([]styleSet, 0, cap(outUnits))
	pos := 0
	for _, sp := range spans {
		outUnits = append(outUnits, units[pos:sp.Start]...)
		outMask = append(outMask, mask[pos:sp.Start]...)
		outUnits = append(outUnits, ins...)
		outMask = append(outMask, make([]styleSet, len(ins))...)
		pos = sp.End
	}
	outUnits = append(outUnits, units[pos:]...)
	outMask = append(outMask, mask[pos:]...)

	nb := b
	nb.Text = fromUnits(outUnits)
	nb.Styles = rangesFromMask(outMask)
	return nb, nil
}

func checkSpans(spans []Span, n int) error {
	prev := 0
	for _, sp := range spans {
		if sp.Start < prev || sp.End < sp.Start || sp.End > n {
			return ErrInvalidRange
		}
		prev = sp.End
	}
	return nil
}

func (b Block) clone() Block {
	nb := b
	if b.Styles != nil {
		nb.Styles = append([]StyleRange(nil), b.Styles...)
	}
	return nb
}

// styleSet is a bitmask of inline styles for one code unit.
type styleSet uint8

func (b Block) mask(n int) []styleSet {
	m := make([]styleSet, n)
	for _, r := range b.Styles {
		bit := r.Style.bit()
		for i := max(r.Offset, 0); i < r.Offset+r.Length && i < n; i++ {
			m[i] |= bit
		}
	}
	return m
}

// rangesFromMask emits maximal runs per style, ordered by offset then style.
func rangesFromMask(m []styleSet) []StyleRange {
	var out []StyleRange
	for _, st := range inlineStyles {
		bit := st.bit()
		start := -1
		for i := 0; i <= len(m); i++ {
			on := i < len(m) && m[i]&bit != 0
			switch {
			case on && start < 0:
				start = i
			case !on && start >= 0:
				out = append(out, StyleRange{Offset: start, Length: i - start, Style: st})
				start = -1
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})
	return out
}

func toUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func fromUnits(u []uint16) string {
	return string(utf16.Decode(u))
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
