package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_editor_service.go -package=mocks -mock_names=EditorService=MockEditorService linuxword/internal/service EditorService

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"linuxword/internal/contextutil"
	"linuxword/internal/document"
	"linuxword/internal/editor"
	"linuxword/internal/render"
	"linuxword/internal/storage"
)

const (
	// DefaultDocumentName is the name of a new document.
	DefaultDocumentName = "Untitled Document"

	// SpellCheckNotice is returned by SpellCheck until a checker is wired in.
	SpellCheckNotice = "Spell check would be implemented here using a spell check library."
)

// Options configures an EditorService.
type Options struct {
	// DefaultName names new documents. Empty selects DefaultDocumentName.
	DefaultName string
	// HistoryLimit bounds the undo stack. Zero selects editor.DefaultHistoryLimit.
	HistoryLimit int
	// RegexTimeout bounds each search match attempt.
	RegexTimeout time.Duration
}

// View is the state of the editor as shown to the user. Replaced is the
// match count of the last search-and-replace.
type View struct {
	Name       string               `json:"name"`
	Document   document.RawDocument `json:"document"`
	PlainText  string               `json:"plainText"`
	Selection  document.Selection   `json:"selection"`
	CanUndo    bool                 `json:"canUndo"`
	CanRedo    bool                 `json:"canRedo"`
	LastChange editor.ChangeType    `json:"lastChange"`
	Replaced   int                  `json:"replaced"`
	DarkMode   bool                 `json:"darkMode"`
	Stats      document.Stats       `json:"stats"`
}

// Export is a plain-text download of the document.
type Export struct {
	Filename string
	Content  []byte
}

// EditorService is the controller behind the document editor view. It owns
// one editing session.
type EditorService interface {
	// Snapshot returns the current view.
	Snapshot(ctx context.Context) (View, error)
	// NewDocument replaces the document with an empty one and resets the name.
	NewDocument(ctx context.Context) (View, error)
	// Rename sets the document name.
	Rename(ctx context.Context, name string) (View, error)
	// Save stores the document under its name, overwriting earlier content.
	Save(ctx context.Context) (View, error)
	// Load replaces the document with the one saved under name. A blank name
	// loads the current name. The view is unchanged on error.
	Load(ctx context.Context, name string) (View, error)
	// List returns the saved documents.
	List(ctx context.Context) ([]storage.DocumentRecord, error)
	// Delete removes a saved document. The open document is not affected.
	Delete(ctx context.Context, name string) error
	// Format applies a toolbar command to the selection.
	Format(ctx context.Context, command string) (View, error)
	// ReplaceAll replaces every match of the search pattern with the literal
	// replacement. View.Replaced holds the match count.
	ReplaceAll(ctx context.Context, search, replace string) (View, error)
	// InsertTable inserts the plain-text table at the selection.
	InsertTable(ctx context.Context) (View, error)
	// InsertText replaces the selection with text.
	InsertText(ctx context.Context, text string) (View, error)
	// Select moves the selection.
	Select(ctx context.Context, sel document.Selection) (View, error)
	// Undo restores the previous document.
	Undo(ctx context.Context) (View, error)
	// Redo reapplies the last undone change.
	Redo(ctx context.Context) (View, error)
	// Export returns the document as a plain-text file.
	Export(ctx context.Context) (Export, error)
	// Print returns a print-ready HTML page.
	Print(ctx context.Context) ([]byte, error)
	// ImportMarkdown replaces the document with parsed markdown content.
	ImportMarkdown(ctx context.Context, content []byte) (View, error)
	// SpellCheck reports the spell check result.
	SpellCheck(ctx context.Context) (string, error)
	// SetDarkMode switches the page theme.
	SetDarkMode(ctx context.Context, on bool) (View, error)
}

// editorService implements EditorService. The mutex serializes user actions
// so each one sees the state left by the previous.
type editorService struct {
	store    storage.DocumentStore
	printer  *render.Printer
	importer *render.Importer
	opts     Options

	mu       sync.Mutex
	name     string
	state    editor.State
	darkMode bool
}

// NewEditorService creates a new EditorService with an empty document.
func NewEditorService(store storage.DocumentStore, opts Options) EditorService {
	if strings.TrimSpace(opts.DefaultName) == "" {
		opts.DefaultName = DefaultDocumentName
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = editor.DefaultHistoryLimit
	}
	return &editorService{
		store:    store,
		printer:  render.NewPrinter(),
		importer: render.NewImporter(),
		opts:     opts,
		name:     opts.DefaultName,
		state:    editor.NewState(document.Empty(), opts.HistoryLimit),
	}
}

// view builds the View for the current state. Callers hold s.mu.
func (s *editorService) view() View {
	doc := s.state.Document()
	return View{
		Name:       s.name,
		Document:   doc.ToRaw(),
		PlainText:  render.PlainText(doc),
		Selection:  s.state.Selection(),
		CanUndo:    s.state.CanUndo(),
		CanRedo:    s.state.CanRedo(),
		LastChange: s.state.LastChange(),
		Replaced:   s.state.Replaced(),
		DarkMode:   s.darkMode,
		Stats:      doc.Stats(),
	}
}

// apply reduces action into the state. The state is unchanged on error.
func (s *editorService) apply(ctx context.Context, logger *slog.Logger, action editor.Action) (View, error) {
	next, err := editor.Reduce(s.state, action)
	if err != nil {
		logger.WarnContext(ctx, "editor action rejected", "action", actionName(action), "error", err)
		return s.view(), err
	}
	s.state = next
	logger.DebugContext(ctx, "editor action applied", "action", actionName(action), "change", next.LastChange())
	return s.view(), nil
}

// Snapshot returns the current view.
func (s *editorService) Snapshot(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

// NewDocument starts an empty document named with the default name.
func (s *editorService) NewDocument(ctx context.Context) (View, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.apply(ctx, logger, editor.Reset{})
	if err != nil {
		return v, err
	}
	s.name = s.opts.DefaultName
	logger.InfoContext(ctx, "new document started", "name", s.name)
	return s.view(), nil
}

// Rename sets the document name.
func (s *editorService) Rename(ctx context.Context, name string) (View, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		logger.WarnContext(ctx, "empty document name")
		return s.view(), &ValidationError{
			Field:   "name",
			Message: "cannot be empty",
		}
	}
	s.name = name
	return s.view(), nil
}

// Save stores the document as raw JSON under its name.
func (s *editorService) Save(ctx context.Context) (View, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := document.MarshalRaw(s.state.Document())
	if err != nil {
		logger.ErrorContext(ctx, "failed to encode document", "name", s.name, "error", err)
		return s.view(), WrapError(err, "failed to encode document")
	}
	if err := s.store.Set(ctx, s.name, string(content)); err != nil {
		logger.ErrorContext(ctx, "failed to save document", "name", s.name, "error", err)
		return s.view(), storageError(err, "failed to save document")
	}

	logger.InfoContext(ctx, "document saved", "name", s.name, "bytes", len(content))
	return s.view(), nil
}

// Load replaces the document with the one saved under name.
func (s *editorService) Load(ctx context.Context, name string) (View, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		name = s.name
	}

	content, err := s.store.Get(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		logger.WarnContext(ctx, "no document found with this name", "name", name)
		return s.view(), fmt.Errorf("no document found with name %q: %w: %w", name, ErrNotFound, err)
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to load document", "name", name, "error", err)
		return s.view(), storageError(err, "failed to load document")
	}

	doc, err := document.UnmarshalRaw([]byte(content))
	if err != nil {
		logger.WarnContext(ctx, "saved document is corrupt", "name", name, "error", err)
		return s.view(), &ValidationError{
			Field:   "content",
			Message: err.Error(),
		}
	}

	v, err := s.apply(ctx, logger, editor.Load{Document: doc})
	if err != nil {
		return v, &ValidationError{
			Field:   "content",
			Message: err.Error(),
		}
	}
	s.name = name
	logger.InfoContext(ctx, "document loaded", "name", name, "blocks", doc.Len())
	return s.view(), nil
}

// List returns the saved documents ordered by name.
func (s *editorService) List(ctx context.Context) ([]storage.DocumentRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	records, err := s.store.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list documents", "error", err)
		return nil, storageError(err, "failed to list documents")
	}
	return records, nil
}

// Delete removes the document saved under name.
func (s *editorService) Delete(ctx context.Context, name string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(name) == "" {
		return &ValidationError{
			Field:   "name",
			Message: "cannot be empty",
		}
	}
	err := s.store.Delete(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		logger.WarnContext(ctx, "no document found with this name", "name", name)
		return fmt.Errorf("no document found with name %q: %w: %w", name, ErrNotFound, err)
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to delete document", "name", name, "error", err)
		return storageError(err, "failed to delete document")
	}
	logger.InfoContext(ctx, "document deleted", "name", name)
	return nil
}

// Format applies a toolbar command to the selection.
func (s *editorService) Format(ctx context.Context, command string) (View, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, err := editor.ParseCommand(command)
	if err != nil {
		logger.WarnContext(ctx, "unknown format command", "command", command)
		return s.view(), &ValidationError{
			Field:   "command",
			Message: err.Error(),
		}
	}
	action, err := cmd.Action()
	if err != nil {
		return s.view(), WrapError(err, "failed to resolve command")
	}
	return s.apply(ctx, logger, action)
}

// ReplaceAll replaces every match of search with replace.
func (s *editorService) ReplaceAll(ctx context.Context, search, replace string) (View, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.apply(ctx, logger, editor.ReplaceAll{
		Search:  search,
		Replace: replace,
		Timeout: s.opts.RegexTimeout,
	})
	if err != nil {
		return v, err
	}
	logger.InfoContext(ctx, "search and replace completed", "pattern", search, "replaced", v.Replaced)
	return v, nil
}

// InsertTable inserts the plain-text table at the selection.
func (s *editorService) InsertTable(ctx context.Context) (View, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(ctx, logger, editor.InsertTable{})
}

// InsertText replaces the selection with text.
func (s *editorService) InsertText(ctx context.Context, text string) (View, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(ctx, logger, editor.InsertText{Text: text})
}

// Select moves the selection.
func (s *editorService) Select(ctx context.Context, sel document.Selection) (View, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.apply(ctx, logger, editor.Select{Selection: sel})
	if err != nil {
		return v, &ValidationError{
			Field:   "selection",
			Message: err.Error(),
		}
	}
	return v, nil
}

// Undo restores the previous document.
func (s *editorService) Undo(ctx context.Context) (View, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(ctx, logger, editor.Undo{})
}

// Redo reapplies the last undone change.
func (s *editorService) Redo(ctx context.Context) (View, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(ctx, logger, editor.Redo{})
}

// Export returns the document as UTF-8 text named after the document.
func (s *editorService) Export(ctx context.Context) (Export, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := Export{
		Filename: render.ExportFilename(s.name),
		Content:  []byte(render.PlainText(s.state.Document())),
	}
	logger.InfoContext(ctx, "document exported", "filename", out.Filename, "bytes", len(out.Content))
	return out, nil
}

// Print renders the document as a print page.
func (s *editorService) Print(ctx context.Context) ([]byte, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := s.printer.Render(&buf, s.name, s.state.Document()); err != nil {
		logger.ErrorContext(ctx, "failed to render print page", "error", err)
		return nil, WrapError(err, "failed to render print page")
	}
	return buf.Bytes(), nil
}

// ImportMarkdown replaces the document with parsed markdown.
func (s *editorService) ImportMarkdown(ctx context.Context, content []byte) (View, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !utf8.Valid(content) {
		logger.WarnContext(ctx, "markdown is not valid UTF-8", "bytes", len(content))
		return s.view(), fmt.Errorf("markdown is not valid UTF-8: %w", ErrInvalidInput)
	}

	doc, err := s.importer.Import(content)
	if err != nil {
		logger.WarnContext(ctx, "failed to import markdown", "error", err)
		return s.view(), &ValidationError{
			Field:   "content",
			Message: err.Error(),
		}
	}

	v, err := s.apply(ctx, logger, editor.Load{Document: doc})
	if err != nil {
		return v, WrapError(err, "failed to import markdown")
	}
	logger.InfoContext(ctx, "markdown imported", "blocks", doc.Len())
	return v, nil
}

// SpellCheck returns a notice; no checker is wired in.
func (s *editorService) SpellCheck(ctx context.Context) (string, error) {
	return SpellCheckNotice, nil
}

// SetDarkMode switches the page theme.
func (s *editorService) SetDarkMode(ctx context.Context, on bool) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.darkMode = on
	return s.view(), nil
}

func actionName(a editor.Action) string {
	switch a.(type) {
	case editor.ToggleInlineStyle:
		return "toggle-inline-style"
	case editor.ToggleBlockType:
		return "toggle-block-type"
	case editor.ReplaceAll:
		return "replace-all"
	case editor.InsertTable:
		return "insert-table"
	case editor.InsertText:
		return "insert-text"
	case editor.Select:
		return "select"
	case editor.Undo:
		return "undo"
	case editor.Redo:
		return "redo"
	case editor.Reset:
		return "reset"
	case editor.Load:
		return "load"
	}
	return "unknown"
}
