package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"linuxword/internal/contextutil"
	"linuxword/internal/document"
	"linuxword/internal/service"
)

// maxImportBytes bounds the markdown accepted by the import endpoint.
const maxImportBytes = 1 << 20

// EditorHandler handles HTTP requests for the document editor.
type EditorHandler struct {
	editorService service.EditorService
}

// NewEditorHandler creates a new EditorHandler.
func NewEditorHandler(editorService service.EditorService) *EditorHandler {
	return &EditorHandler{
		editorService: editorService,
	}
}

// ViewResponse is the editor state plus an optional notice for the user.
type ViewResponse struct {
	View    service.View `json:"view"`
	Message string       `json:"message,omitempty"`
}

// RenameRequest represents the payload for renaming the document.
type RenameRequest struct {
	Name string `json:"name"`
}

// LoadRequest represents the payload for loading a saved document.
// An empty name loads the current document name.
type LoadRequest struct {
	Name string `json:"name"`
}

// FormatRequest represents a toolbar formatting command.
type FormatRequest struct {
	Command string `json:"command"`
}

// ReplaceRequest represents a search-and-replace request. Search is a
// regular expression; Replace is literal text.
type ReplaceRequest struct {
	Search  string `json:"search"`
	Replace string `json:"replace"`
}

// TextRequest represents text typed into the editor.
type TextRequest struct {
	Text string `json:"text"`
}

// SettingsRequest represents a change of page settings.
type SettingsRequest struct {
	DarkMode *bool `json:"darkMode"`
}

// DocumentSummary describes a saved document.
type DocumentSummary struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DocumentsResponse lists saved documents.
type DocumentsResponse struct {
	Documents []DocumentSummary `json:"documents"`
}

// MessageResponse carries a notice for the user.
type MessageResponse struct {
	Message string `json:"message"`
}

// GetDocument returns the current editor view.
func (h *EditorHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v, err := h.editorService.Snapshot(ctx)
	if err != nil {
		handleServiceError(w, r, err, "Failed to read document")
		return
	}
	h.writeView(w, r, v, "")
}

// NewDocument starts an empty document.
func (h *EditorHandler) NewDocument(w http.ResponseWriter, r *http.Request) {
	v, err := h.editorService.NewDocument(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "Failed to create document")
		return
	}
	h.writeView(w, r, v, "")
}

// Rename sets the document name.
func (h *EditorHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if !h.decode(w, r, &req) {
		return
	}
	v, err := h.editorService.Rename(r.Context(), req.Name)
	if err != nil {
		handleServiceError(w, r, err, "Failed to rename document")
		return
	}
	h.writeView(w, r, v, "")
}

// Save stores the document under its name.
func (h *EditorHandler) Save(w http.ResponseWriter, r *http.Request) {
	v, err := h.editorService.Save(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "Failed to save document")
		return
	}
	h.writeView(w, r, v, "Document saved!")
}

// Load replaces the document with a saved one. The body is optional.
func (h *EditorHandler) Load(w http.ResponseWriter, r *http.Request) {
	var req LoadRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}
	v, err := h.editorService.Load(r.Context(), req.Name)
	if err != nil {
		handleServiceError(w, r, err, "Failed to load document")
		return
	}
	h.writeView(w, r, v, "Document loaded!")
}

// ListDocuments returns the saved documents.
func (h *EditorHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	records, err := h.editorService.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "Failed to list documents")
		return
	}
	resp := DocumentsResponse{Documents: make([]DocumentSummary, 0, len(records))}
	for _, rec := range records {
		resp.Documents = append(resp.Documents, DocumentSummary{
			Name:      rec.Name,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		})
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// DeleteDocument removes the saved document named in the URL.
func (h *EditorHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.editorService.Delete(r.Context(), name); err != nil {
		handleServiceError(w, r, err, "Failed to delete document")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Format applies a toolbar command.
func (h *EditorHandler) Format(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if !h.decode(w, r, &req) {
		return
	}
	v, err := h.editorService.Format(r.Context(), req.Command)
	if err != nil {
		handleServiceError(w, r, err, "Failed to apply format")
		return
	}
	h.writeView(w, r, v, "")
}

// Replace runs search-and-replace over the document.
func (h *EditorHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req ReplaceRequest
	if !h.decode(w, r, &req) {
		return
	}
	v, err := h.editorService.ReplaceAll(r.Context(), req.Search, req.Replace)
	if err != nil {
		handleServiceError(w, r, err, "Failed to replace text")
		return
	}
	h.writeView(w, r, v, fmt.Sprintf("Replaced %d occurrence(s).", v.Replaced))
}

// InsertTable inserts the plain-text table at the selection.
func (h *EditorHandler) InsertTable(w http.ResponseWriter, r *http.Request) {
	v, err := h.editorService.InsertTable(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "Failed to insert table")
		return
	}
	h.writeView(w, r, v, "")
}

// InsertText replaces the selection with typed text.
func (h *EditorHandler) InsertText(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !h.decode(w, r, &req) {
		return
	}
	v, err := h.editorService.InsertText(r.Context(), req.Text)
	if err != nil {
		handleServiceError(w, r, err, "Failed to insert text")
		return
	}
	h.writeView(w, r, v, "")
}

// Select moves the selection.
func (h *EditorHandler) Select(w http.ResponseWriter, r *http.Request) {
	var sel document.Selection
	if !h.decode(w, r, &sel) {
		return
	}
	v, err := h.editorService.Select(r.Context(), sel)
	if err != nil {
		handleServiceError(w, r, err, "Failed to move selection")
		return
	}
	h.writeView(w, r, v, "")
}

// Undo restores the previous document.
func (h *EditorHandler) Undo(w http.ResponseWriter, r *http.Request) {
	v, err := h.editorService.Undo(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "Failed to undo")
		return
	}
	h.writeView(w, r, v, "")
}

// Redo reapplies the last undone change.
func (h *EditorHandler) Redo(w http.ResponseWriter, r *http.Request) {
	v, err := h.editorService.Redo(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "Failed to redo")
		return
	}
	h.writeView(w, r, v, "")
}

// Export downloads the document as a UTF-8 text file.
func (h *EditorHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	out, err := h.editorService.Export(ctx)
	if err != nil {
		handleServiceError(w, r, err, "Failed to export document")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": out.Filename}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out.Content); err != nil {
		logger.ErrorContext(ctx, "failed to write export", "error", err)
	}
}

// Print serves the print page, which opens the browser's print dialog.
func (h *EditorHandler) Print(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	page, err := h.editorService.Print(ctx)
	if err != nil {
		handleServiceError(w, r, err, "Failed to render print page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		logger.ErrorContext(ctx, "failed to write print page", "error", err)
	}
}

// Import replaces the document with the markdown request body.
func (h *EditorHandler) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	content, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes+1))
	if err != nil {
		logger.WarnContext(ctx, "failed to read import body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(content) > maxImportBytes {
		logger.WarnContext(ctx, "import body too large", "bytes", len(content))
		writeError(w, http.StatusRequestEntityTooLarge, "Document too large")
		return
	}

	v, err := h.editorService.ImportMarkdown(ctx, content)
	if err != nil {
		handleServiceError(w, r, err, "Failed to import document")
		return
	}
	h.writeView(w, r, v, "Document imported!")
}

// SpellCheck runs the spell checker.
func (h *EditorHandler) SpellCheck(w http.ResponseWriter, r *http.Request) {
	msg, err := h.editorService.SpellCheck(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "Failed to check spelling")
		return
	}
	h.writeJSON(w, r, http.StatusOK, MessageResponse{Message: msg})
}

// Settings updates page settings.
func (h *EditorHandler) Settings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.DarkMode == nil {
		handleServiceError(w, r, &service.ValidationError{
			Field:   "darkMode",
			Message: "is required",
		}, "Failed to update settings")
		return
	}
	v, err := h.editorService.SetDarkMode(r.Context(), *req.DarkMode)
	if err != nil {
		handleServiceError(w, r, err, "Failed to update settings")
		return
	}
	h.writeView(w, r, v, "")
}

// decode reads a JSON body into dst, writing a 400 on failure.
func (h *EditorHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	ctx := r.Context()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func (h *EditorHandler) writeView(w http.ResponseWriter, r *http.Request, v service.View, message string) {
	h.writeJSON(w, r, http.StatusOK, ViewResponse{View: v, Message: message})
}

func (h *EditorHandler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	ctx := r.Context()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
