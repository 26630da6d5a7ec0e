package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"linuxword/internal/document"
	"linuxword/internal/search"
	"linuxword/internal/service"
	"linuxword/internal/service/mocks"
	"linuxword/internal/storage"

	"go.uber.org/mock/gomock"
)

func TestNewEditorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEditorService := mocks.NewMockEditorService(ctrl)
	handler := NewEditorHandler(mockEditorService)

	if handler == nil {
		t.Fatal("NewEditorHandler() returned nil")
	}
	if handler.editorService != mockEditorService {
		t.Error("NewEditorHandler() editorService not set correctly")
	}
}

// requestBody encodes body as JSON. Strings are sent verbatim.
func requestBody(t *testing.T, body interface{}) *bytes.Buffer {
	t.Helper()
	switch b := body.(type) {
	case nil:
		return &bytes.Buffer{}
	case string:
		return bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		return bytes.NewBuffer(data)
	}
}

func decodeView(w *httptest.ResponseRecorder) (ViewResponse, bool) {
	var resp ViewResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return resp, false
	}
	return resp, true
}

func decodeError(w *httptest.ResponseRecorder) string {
	var resp ErrorResponse
	_ = json.NewDecoder(w.Body).Decode(&resp)
	return resp.Error
}

func TestEditorHandler_JSONRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		serve         func(*EditorHandler) http.HandlerFunc
		body          interface{}
		mockSetup     func(*mocks.MockEditorService)
		wantStatus    int
		checkResponse func(*httptest.ResponseRecorder) bool
	}{
		{
			name:  "get document",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.GetDocument },
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().Snapshot(gomock.Any()).Return(service.View{Name: "Untitled Document"}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				resp, ok := decodeView(w)
				return ok && resp.View.Name == "Untitled Document" && resp.Message == ""
			},
		},
		{
			name:  "rename",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Rename },
			body:  RenameRequest{Name: "Report"},
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().Rename(gomock.Any(), "Report").Return(service.View{Name: "Report"}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				resp, ok := decodeView(w)
				return ok && resp.View.Name == "Report"
			},
		},
		{
			name:  "rename validation error",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Rename },
			body:  RenameRequest{Name: ""},
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().Rename(gomock.Any(), "").Return(service.View{}, &service.ValidationError{
					Field:   "name",
					Message: "cannot be empty",
				})
			},
			wantStatus: http.StatusBadRequest,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				return strings.Contains(decodeError(w), "cannot be empty")
			},
		},
		{
			name:  "invalid JSON body",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Format },
			body:  "invalid json",
			mockSetup: func(m *mocks.MockEditorService) {
				// No calls expected
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "save",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Save },
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().Save(gomock.Any()).Return(service.View{Name: "notes"}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				resp, ok := decodeView(w)
				return ok && resp.Message == "Document saved!"
			},
		},
		{
			name:  "save storage error",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Save },
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().Save(gomock.Any()).Return(service.View{}, fmt.Errorf("failed to save document: %w", service.ErrStorage))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:  "load current name without body",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Load },
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().Load(gomock.Any(), "").Return(service.View{Name: "notes"}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				resp, ok := decodeView(w)
				return ok && resp.Message == "Document loaded!"
			},
		},
		{
			name:  "load unknown name",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Load },
			body:  LoadRequest{Name: "missing"},
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().Load(gomock.Any(), "missing").
					Return(service.View{}, fmt.Errorf("no document: %w: %w", service.ErrNotFound, storage.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				return decodeError(w) == "No document found with this name."
			},
		},
		{
			name:  "format",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Format },
			body:  FormatRequest{Command: "bold"},
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().Format(gomock.Any(), "bold").Return(service.View{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "replace reports count",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Replace },
			body:  ReplaceRequest{Search: "at", Replace: "og"},
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().ReplaceAll(gomock.Any(), "at", "og").Return(service.View{Replaced: 3}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				resp, ok := decodeView(w)
				return ok && resp.View.Replaced == 3 && resp.Message == "Replaced 3 occurrence(s)."
			},
		},
		{
			name:  "replace invalid pattern",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Replace },
			body:  ReplaceRequest{Search: "(", Replace: "x"},
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().ReplaceAll(gomock.Any(), "(", "x").
					Return(service.View{}, &search.InvalidPatternError{Pattern: "(", Err: errors.New("missing )")})
			},
			wantStatus: http.StatusBadRequest,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				return strings.Contains(decodeError(w), "invalid search pattern")
			},
		},
		{
			name:  "insert table",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.InsertTable },
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().InsertTable(gomock.Any()).Return(service.View{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "insert text",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.InsertText },
			body:  TextRequest{Text: "hello"},
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().InsertText(gomock.Any(), "hello").Return(service.View{PlainText: "hello"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "select",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Select },
			body:  document.Selection{AnchorKey: "a", AnchorOffset: 1, FocusKey: "a", FocusOffset: 3},
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().Select(gomock.Any(), document.Selection{AnchorKey: "a", AnchorOffset: 1, FocusKey: "a", FocusOffset: 3}).
					Return(service.View{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "undo",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Undo },
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().Undo(gomock.Any()).Return(service.View{CanRedo: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "redo",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Redo },
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().Redo(gomock.Any()).Return(service.View{CanUndo: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "new document",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.NewDocument },
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().NewDocument(gomock.Any()).Return(service.View{Name: "Untitled Document"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "list documents",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.ListDocuments },
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().List(gomock.Any()).Return([]storage.DocumentRecord{{Name: "a"}, {Name: "b"}}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				var resp DocumentsResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					return false
				}
				return len(resp.Documents) == 2 && resp.Documents[1].Name == "b"
			},
		},
		{
			name:  "spell check",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.SpellCheck },
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().SpellCheck(gomock.Any()).Return(service.SpellCheckNotice, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				var resp MessageResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					return false
				}
				return resp.Message == service.SpellCheckNotice
			},
		},
		{
			name:  "dark mode",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Settings },
			body:  map[string]bool{"darkMode": true},
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().SetDarkMode(gomock.Any(), true).Return(service.View{DarkMode: true}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				resp, ok := decodeView(w)
				return ok && resp.View.DarkMode
			},
		},
		{
			name:  "settings without dark mode",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Settings },
			body:  map[string]string{},
			mockSetup: func(m *mocks.MockEditorService) {
				// No calls expected
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "unexpected service error",
			serve: func(h *EditorHandler) http.HandlerFunc { return h.Undo },
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().Undo(gomock.Any()).Return(service.View{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				return decodeError(w) == "Failed to undo"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEditorService := mocks.NewMockEditorService(ctrl)
			tt.mockSetup(mockEditorService)

			handler := NewEditorHandler(mockEditorService)

			var req *http.Request
			if tt.body == nil {
				req = httptest.NewRequest(http.MethodPost, "/api/document", nil)
			} else {
				req = httptest.NewRequest(http.MethodPost, "/api/document", requestBody(t, tt.body))
			}
			w := httptest.NewRecorder()

			tt.serve(handler).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s status = %v, want %v", tt.name, w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("%s Content-Type = %q, want application/json", tt.name, ct)
			}
			if tt.checkResponse != nil && !tt.checkResponse(w) {
				t.Errorf("%s response validation failed: %s", tt.name, w.Body.String())
			}
		})
	}
}

func TestEditorHandler_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEditorService := mocks.NewMockEditorService(ctrl)
	mockEditorService.EXPECT().Export(gomock.Any()).Return(service.Export{
		Filename: "Untitled Document.txt",
		Content:  []byte("Title\nBody text"),
	}, nil)

	handler := NewEditorHandler(mockEditorService)
	req := httptest.NewRequest(http.MethodGet, "/api/document/export", nil)
	w := httptest.NewRecorder()

	handler.Export(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Export() status = %v, want %v", w.Code, http.StatusOK)
	}
	if got := w.Body.String(); got != "Title\nBody text" {
		t.Errorf("Export() body = %q, want %q", got, "Title\nBody text")
	}
	if got := w.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Errorf("Export() Content-Type = %q", got)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="Untitled Document.txt"` {
		t.Errorf("Export() Content-Disposition = %q", got)
	}
}

func TestEditorHandler_Print(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page := []byte("<html><script>window.print()</script></html>")
	mockEditorService := mocks.NewMockEditorService(ctrl)
	mockEditorService.EXPECT().Print(gomock.Any()).Return(page, nil)

	handler := NewEditorHandler(mockEditorService)
	req := httptest.NewRequest(http.MethodGet, "/api/document/print", nil)
	w := httptest.NewRecorder()

	handler.Print(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Print() status = %v, want %v", w.Code, http.StatusOK)
	}
	if w.Body.String() != string(page) {
		t.Errorf("Print() body = %q", w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("Print() Content-Type = %q", got)
	}
}

func TestEditorHandler_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		body       []byte
		mockSetup  func(*mocks.MockEditorService)
		wantStatus int
	}{
		{
			name: "markdown body",
			body: []byte("# Title\n"),
			mockSetup: func(m *mocks.MockEditorService) {
				m.EXPECT().ImportMarkdown(gomock.Any(), []byte("# Title\n")).Return(service.View{PlainText: "Title"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "too large",
			body: bytes.Repeat([]byte("a"), maxImportBytes+1),
			mockSetup: func(m *mocks.MockEditorService) {
				// No calls expected
			},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEditorService := mocks.NewMockEditorService(ctrl)
			tt.mockSetup(mockEditorService)

			handler := NewEditorHandler(mockEditorService)
			req := httptest.NewRequest(http.MethodPost, "/api/document/import", bytes.NewReader(tt.body))
			req.Header.Set("Content-Type", "text/markdown")
			w := httptest.NewRecorder()

			handler.Import(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Import() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(ctx context.Context) error {
	return p.err
}

func TestEditorHandler_DeleteDocument(t *testing.T) {
	tests := []struct {
		name       string
		docName    string
		err        error
		wantStatus int
	}{
		{name: "deleted", docName: "Report", wantStatus: http.StatusNoContent},
		{
			name:       "not found",
			docName:    "Missing",
			err:        fmt.Errorf("no document: %w: %w", service.ErrNotFound, storage.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "storage failure",
			docName:    "Report",
			err:        fmt.Errorf("failed: %w", service.ErrStorage),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockEditorService := mocks.NewMockEditorService(ctrl)
			mockEditorService.EXPECT().Delete(gomock.Any(), tt.docName).Return(tt.err)
			handler := NewEditorHandler(mockEditorService)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("name", tt.docName)
			req := httptest.NewRequest(http.MethodDelete, "/api/documents/"+tt.docName, nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.DeleteDocument(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("DeleteDocument() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		pinger     Pinger
		wantStatus int
		wantState  string
	}{
		{
			name:       "healthy",
			method:     http.MethodGet,
			pinger:     fakePinger{},
			wantStatus: http.StatusOK,
			wantState:  "healthy",
		},
		{
			name:       "database down",
			method:     http.MethodGet,
			pinger:     fakePinger{err: errors.New("database is closed")},
			wantStatus: http.StatusServiceUnavailable,
			wantState:  "unhealthy",
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			pinger:     fakePinger{},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.pinger)
			req := httptest.NewRequest(tt.method, "/api/health", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantState == "" {
				return
			}
			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode health response: %v", err)
			}
			if resp.Status != tt.wantState {
				t.Errorf("ServeHTTP() status field = %q, want %q", resp.Status, tt.wantState)
			}
		})
	}
}
