package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rpggio/toolbox/internal/domain/history"
	"github.com/rpggio/toolbox/internal/domain/note"
	"github.com/rpggio/toolbox/internal/repository"
)

// Handler dispatches tool calls to the record services.
type Handler struct {
	history HistoryService
	notes   NoteService
}

// NewHandler creates a new MCP handler.
func NewHandler(historySvc HistoryService, notes NoteService) *Handler {
	return &Handler{history: historySvc, notes: notes}
}

// Handle runs the named tool with raw JSON arguments.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "list_history":
		return h.history.List(ctx)
	case "add_history":
		var req AddHistoryParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		entry, err := h.history.Create(ctx, history.CreateRequest{
			Kind:    req.Kind,
			Title:   req.Title,
			Content: req.Content,
		})
		if err != nil {
			return nil, err
		}
		return IDResponse{ID: entry.ID}, nil
	case "delete_history":
		id, err := decodeID(params)
		if err != nil {
			return nil, err
		}
		if err := h.history.Delete(ctx, id); err != nil {
			return nil, err
		}
		return SuccessResponse{Success: true}, nil
	case "clear_history":
		removed, err := h.history.Clear(ctx)
		if err != nil {
			return nil, err
		}
		return ClearResponse{Success: true, Removed: removed}, nil
	case "list_notes":
		return h.notes.List(ctx)
	case "add_note":
		var req AddNoteParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		n, err := h.notes.Create(ctx, note.CreateRequest{
			Title:   req.Title,
			Content: req.Content,
			Color:   req.Color,
		})
		if err != nil {
			return nil, err
		}
		return IDResponse{ID: n.ID}, nil
	case "delete_note":
		id, err := decodeID(params)
		if err != nil {
			return nil, err
		}
		if err := h.notes.Delete(ctx, id); err != nil {
			return nil, err
		}
		return SuccessResponse{Success: true}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, method)
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return fmt.Errorf("%w: malformed arguments: %v", repository.ErrInvalidInput, err)
	}
	return nil
}

func decodeID(params json.RawMessage) (int64, error) {
	var req DeleteParams
	if err := decodeParams(params, &req); err != nil {
		return 0, err
	}
	if req.ID == nil {
		return 0, fmt.Errorf("%w: id is required", repository.ErrInvalidInput)
	}
	return *req.ID, nil
}
