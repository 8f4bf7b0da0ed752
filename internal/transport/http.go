package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/toolbox/internal/domain/history"
	"github.com/rpggio/toolbox/internal/domain/note"
	"github.com/rs/cors"
)

// HistoryService defines history operations needed by the HTTP API.
type HistoryService interface {
	Create(ctx context.Context, req history.CreateRequest) (*history.Entry, error)
	List(ctx context.Context) ([]history.Entry, error)
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) (int64, error)
}

// NoteService defines note operations needed by the HTTP API.
type NoteService interface {
	Create(ctx context.Context, req note.CreateRequest) (*note.Note, error)
	List(ctx context.Context) ([]note.Note, error)
	Delete(ctx context.Context, id int64) error
}

// Options configures the optional parts of the router.
type Options struct {
	Logger *slog.Logger
	// AllowedOrigins enables CORS for the listed origins. Empty disables CORS.
	AllowedOrigins []string
	// StaticDir serves the compiled client bundle. Empty disables static hosting.
	StaticDir string
	// MCPHandler is mounted at /mcp when set.
	MCPHandler http.Handler
}

// Server wires HTTP handlers.
type Server struct {
	history HistoryService
	notes   NoteService
	logger  *slog.Logger
}

// NewServer creates an HTTP router with middleware.
func NewServer(historySvc HistoryService, notes NoteService, opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(AccessLogMiddleware(logger))
	r.Use(middleware.Recoverer)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(newCORS(opts.AllowedOrigins).Handler)
	}

	srv := &Server{history: historySvc, notes: notes, logger: logger}

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/history", srv.handleListHistory)
		r.Post("/history", srv.handleCreateHistory)
		r.Delete("/history", srv.handleClearHistory)
		r.Delete("/history/{id}", srv.handleDeleteHistory)

		r.Get("/notes", srv.handleListNotes)
		r.Post("/notes", srv.handleCreateNote)
		r.Delete("/notes/{id}", srv.handleDeleteNote)

		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusNotFound, "not found")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		})
	})

	if opts.MCPHandler != nil {
		r.Handle("/mcp", opts.MCPHandler)
		r.Handle("/mcp/*", opts.MCPHandler)
	}

	if opts.StaticDir != "" {
		r.NotFound(NewStaticHandler(opts.StaticDir).ServeHTTP)
	}

	return r
}

func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Mcp-Session-Id", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
