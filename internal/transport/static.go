package transport

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// StaticHandler serves the compiled client bundle and falls back to
// index.html so client-side routes resolve.
type StaticHandler struct {
	root       http.FileSystem
	fileServer http.Handler
}

// NewStaticHandler serves files from dir.
func NewStaticHandler(dir string) *StaticHandler {
	root := http.Dir(dir)
	return &StaticHandler{root: root, fileServer: http.FileServer(root)}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	name := path.Clean("/" + r.URL.Path)
	if f, err := h.root.Open(name); err == nil {
		info, statErr := f.Stat()
		f.Close()
		if statErr == nil && !info.IsDir() {
			h.fileServer.ServeHTTP(w, r)
			return
		}
	}

	h.serveIndex(w, r)
}

func (h *StaticHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	f, err := h.root.Open("/index.html")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "failed to open index", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, "failed to stat index", http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, "index.html", info.ModTime(), f)
}
