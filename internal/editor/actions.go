package editor

import (
	"errors"
	"fmt"
	"time"

	"linuxword/internal/document"
	"linuxword/internal/search"
)

// TableText is the plain-text table inserted by InsertTable.
const TableText = "\n|   |   |   |\n|---|---|---|\n|   |   |   |\n|   |   |   |\n"

// ErrEmptyDocument is returned when loading a document without blocks.
var ErrEmptyDocument = errors.New("document has no blocks")

// Action is a user action understood by Reduce.
type Action interface {
	isAction()
}

// ToggleInlineStyle toggles an inline style over the selection.
type ToggleInlineStyle struct {
	Style document.InlineStyle
}

// ToggleBlockType toggles the block type of the selected blocks.
type ToggleBlockType struct {
	Type document.BlockType
}

// ReplaceAll replaces every match of Search with the literal Replace text.
type ReplaceAll struct {
	Search  string
	Replace string
	// Timeout bounds each match attempt; zero selects search.DefaultTimeout.
	Timeout time.Duration
}

// InsertTable inserts TableText at the selection.
type InsertTable struct{}

// InsertText replaces the selection with Text.
type InsertText struct {
	Text string
}

// Select moves the selection.
type Select struct {
	Selection document.Selection
}

// Undo restores the previous snapshot.
type Undo struct{}

// Redo reapplies the last undone snapshot.
type Redo struct{}

// Reset starts an empty document with a fresh history.
type Reset struct{}

// Load replaces the document with a loaded one and a fresh history.
type Load struct {
	Document document.Document
}

func (ToggleInlineStyle) isAction() {}
func (ToggleBlockType) isAction()   {}
func (ReplaceAll) isAction()        {}
func (InsertTable) isAction()       {}
func (InsertText) isAction()        {}
func (Select) isAction()            {}
func (Undo) isAction()              {}
func (Redo) isAction()              {}
func (Reset) isAction()             {}
func (Load) isAction()              {}

// Reduce applies a to s. On error s is returned unchanged.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case ToggleInlineStyle:
		doc, err := s.doc.ToggleInlineStyle(s.sel, a.Style)
		if err != nil {
			return s, fmt.Errorf("toggle inline style %s: %w", a.Style, err)
		}
		if doc.Equal(s.doc) {
			return s, nil
		}
		return Push(s, doc, s.sel, ChangeInlineStyle), nil

	case ToggleBlockType:
		doc, err := s.doc.ToggleBlockType(s.sel, a.Type)
		if err != nil {
			return s, fmt.Errorf("toggle block type %s: %w", a.Type, err)
		}
		return Push(s, doc, s.sel, ChangeBlockType), nil

	case ReplaceAll:
		timeout := a.Timeout
		if timeout <= 0 {
			timeout = search.DefaultTimeout
		}
		p, err := search.CompileWithTimeout(a.Search, timeout)
		if err != nil {
			return s, err
		}
		res, err := p.ReplaceAll(s.doc, a.Replace)
		if err != nil {
			return s, fmt.Errorf("replace all: %w", err)
		}
		if res.Count() == 0 {
			next := s
			next.replaced = 0
			return next, nil
		}
		next := Push(s, res.Document, s.sel, ChangeReplaceText)
		next.replaced = res.Count()
		return next, nil

	case InsertTable:
		return insertText(s, TableText)

	case InsertText:
		return insertText(s, a.Text)

	case Select:
		if err := s.doc.ValidateSelection(a.Selection); err != nil {
			return s, fmt.Errorf("select: %w", err)
		}
		next := s
		next.sel = a.Selection
		next.lastChange = ChangeSelection
		next.replaced = 0
		return next, nil

	case Undo:
		return undo(s), nil

	case Redo:
		return redo(s), nil

	case Reset:
		next := NewState(document.Empty(), s.limit)
		next.lastChange = ChangeNew
		return next, nil

	case Load:
		if a.Document.Len() == 0 {
			return s, ErrEmptyDocument
		}
		next := NewState(a.Document, s.limit)
		next.lastChange = ChangeLoad
		return next, nil

	default:
		return s, fmt.Errorf("unsupported action %T", a)
	}
}

func insertText(s State, text string) (State, error) {
	doc, caret, err := s.doc.InsertText(s.sel, text)
	if err != nil {
		return s, fmt.Errorf("insert text: %w", err)
	}
	return Push(s, doc, caret, ChangeInsertCharacters), nil
}
