package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"linuxword/internal/handlers"
	"linuxword/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	EditorService service.EditorService
	DB            handlers.Pinger
	IndexHTML     string // Embedded HTML content
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// Add CORS middleware
	r.Use(CORS)

	editorHandler := handlers.NewEditorHandler(deps.EditorService)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Get("/documents", editorHandler.ListDocuments)
		r.Delete("/documents/{name}", editorHandler.DeleteDocument)
		r.Put("/settings", editorHandler.Settings)

		r.Route("/document", func(r chi.Router) {
			r.Get("/", editorHandler.GetDocument)
			r.Post("/new", editorHandler.NewDocument)
			r.Put("/name", editorHandler.Rename)
			r.Post("/save", editorHandler.Save)
			r.Post("/load", editorHandler.Load)

			r.Post("/format", editorHandler.Format)
			r.Post("/replace", editorHandler.Replace)
			r.Post("/table", editorHandler.InsertTable)
			r.Post("/text", editorHandler.InsertText)
			r.Put("/selection", editorHandler.Select)
			r.Post("/undo", editorHandler.Undo)
			r.Post("/redo", editorHandler.Redo)

			r.Get("/export", editorHandler.Export)
			r.Get("/print", editorHandler.Print)
			r.Post("/import", editorHandler.Import)
			r.Post("/spellcheck", editorHandler.SpellCheck)
		})
	})

	// Serve HTML page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
