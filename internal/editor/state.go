// Package editor holds the editor state and the reducer that applies user
// actions to it. State values are never modified in place; every action
// yields a new State that keeps the earlier document snapshots for undo.
package editor

import (
	"linuxword/internal/document"
)

// DefaultHistoryLimit is the number of undo snapshots kept when none is given.
const DefaultHistoryLimit = 100

// ChangeType labels the edit that produced the current document.
type ChangeType string

const (
	ChangeNone             ChangeType = ""
	ChangeInsertCharacters ChangeType = "insert-characters"
	ChangeReplaceText      ChangeType = "replace-text"
	ChangeInlineStyle      ChangeType = "change-inline-style"
	ChangeBlockType        ChangeType = "change-block-type"
	ChangeSelection        ChangeType = "change-selection"
	ChangeLoad             ChangeType = "load"
	ChangeNew              ChangeType = "new"
	ChangeUndo             ChangeType = "undo"
	ChangeRedo             ChangeType = "redo"
)

type snapshot struct {
	doc document.Document
	sel document.Selection
}

// State is one immutable editor state.
type State struct {
	doc        document.Document
	sel        document.Selection
	undo       []snapshot
	redo       []snapshot
	limit      int
	lastChange ChangeType
	replaced   int
}

// NewState returns a state holding doc with a caret at its start and an
// empty history. A non-positive limit selects DefaultHistoryLimit.
func NewState(doc document.Document, limit int) State {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return State{doc: doc, sel: doc.Start(), limit: limit}
}

// Document returns the current document.
func (s State) Document() document.Document { return s.doc }

// Selection returns the current selection.
func (s State) Selection() document.Selection { return s.sel }

// LastChange returns the label of the edit that produced this state.
func (s State) LastChange() ChangeType { return s.lastChange }

// Replaced returns the number of replacements made by the last replace-text change.
func (s State) Replaced() int { return s.replaced }

func (s State) CanUndo() bool { return len(s.undo) > 0 }

func (s State) CanRedo() bool { return len(s.redo) > 0 }

// HistoryLimit returns the maximum number of undo snapshots kept.
func (s State) HistoryLimit() int { return s.limit }

// Push makes doc the current document, tagged with change. The previous
// document goes onto the undo stack and the redo stack is cleared.
func Push(s State, doc document.Document, sel document.Selection, change ChangeType) State {
	undo := make([]snapshot, 0, len(s.undo)+1)
	undo = append(undo, s.undo...)
	undo = append(undo, snapshot{doc: s.doc, sel: s.sel})
	if len(undo) > s.limit {
		undo = undo[len(undo)-s.limit:]
	}
	return State{
		doc:        doc,
		sel:        doc.Clamp(sel),
		undo:       undo,
		limit:      s.limit,
		lastChange: change,
	}
}

func undo(s State) State {
	if len(s.undo) == 0 {
		return s
	}
	i := len(s.undo) - 1
	prev := s.undo[i]
	redo := make([]snapshot, 0, len(s.redo)+1)
	redo = append(redo, s.redo...)
	redo = append(redo, snapshot{doc: s.doc, sel: s.sel})
	return State{
		doc:        prev.doc,
		sel:        prev.sel,
		undo:       s.undo[:i:i],
		redo:       redo,
		limit:      s.limit,
		lastChange: ChangeUndo,
	}
}

func redo(s State) State {
	if len(s.redo) == 0 {
		return s
	}
	i := len(s.redo) - 1
	next := s.redo[i]
	undo := make([]snapshot, 0, len(s.undo)+1)
	undo = append(undo, s.undo...)
	undo = append(undo, snapshot{doc: s.doc, sel: s.sel})
	return State{
		doc:        next.doc,
		sel:        next.sel,
		undo:       undo,
		redo:       s.redo[:i:i],
		limit:      s.limit,
		lastChange: ChangeRedo,
	}
}
