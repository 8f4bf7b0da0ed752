package transport

import (
	"net/http"

	"github.com/rpggio/toolbox/internal/domain/history"
	"github.com/rpggio/toolbox/internal/domain/note"
)

type createHistoryBody struct {
	Kind *string `json:"kind"`
	// Type is what the shipped calculator posts; kind wins when both are set.
	Type    *string `json:"type"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type createNoteBody struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Color   *string `json:"color"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.history.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreateHistory(w http.ResponseWriter, r *http.Request) {
	var body createHistoryBody
	if err := decodeBody(w, r, &body); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	kind := body.Kind
	if kind == nil {
		kind = body.Type
	}

	entry, err := s.history.Create(r.Context(), history.CreateRequest{
		Kind:    kind,
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: entry.ID})
}

func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.history.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if _, err := s.history.Clear(r.Context()); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.notes.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var body createNoteBody
	if err := decodeBody(w, r, &body); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	n, err := s.notes.Create(r.Context(), note.CreateRequest{
		Title:   body.Title,
		Content: body.Content,
		Color:   body.Color,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: n.ID})
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := s.notes.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
