package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/toolbox/internal/repository"
)

// ToolDefinition describes a callable tool.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
	ReadOnly    bool
}

func idSchema(description string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "integer",
				"description": description,
			},
		},
		"required": []string{"id"},
	}
}

func emptySchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

// buildToolCatalog returns all available MCP tools.
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// History
		{
			Name:        "list_history",
			Description: "List saved tool results, newest first",
			InputSchema: emptySchema(),
			ReadOnly:    true,
		},
		{
			Name:        "add_history",
			Description: "Save a tool result to history",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"kind": map[string]any{
						"type":        "string",
						"description": "Free-form tag naming the producing tool, e.g. calculation, conversion, qr",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "Short label",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "Saved result text",
					},
				},
				"required": []string{"kind", "title", "content"},
			},
		},
		{
			Name:        "delete_history",
			Description: "Delete a history entry; deleting a missing id succeeds",
			InputSchema: idSchema("History entry ID"),
		},
		{
			Name:        "clear_history",
			Description: "Delete every history entry",
			InputSchema: emptySchema(),
		},

		// Notes
		{
			Name:        "list_notes",
			Description: "List notes, newest first",
			InputSchema: emptySchema(),
			ReadOnly:    true,
		},
		{
			Name:        "add_note",
			Description: "Create a note with an optional color tag",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{
						"type":        "string",
						"description": "Note title",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "Note body",
					},
					"color": map[string]any{
						"type":        "string",
						"description": "Display color tag, e.g. bg-amber-500",
					},
				},
				"required": []string{"title", "content"},
			},
		},
		{
			Name:        "delete_note",
			Description: "Delete a note; deleting a missing id succeeds",
			InputSchema: idSchema("Note ID"),
		},
	}
}

func registerTools(server *sdkmcp.Server, h *Handler, logger *slog.Logger) {
	for _, def := range buildToolCatalog() {
		name := def.Name
		tool := &sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}
		if def.ReadOnly {
			tool.Annotations = &sdkmcp.ToolAnnotations{ReadOnlyHint: true}
		}

		server.AddTool(tool, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			var args json.RawMessage
			if req != nil && req.Params != nil {
				args = req.Params.Arguments
			}
			payload, err := h.Handle(ctx, name, args)
			if err != nil {
				if errors.Is(err, repository.ErrStorage) {
					logger.Error("mcp tool failed", "tool", name, "session_id", getSessionID(ctx), "error", err)
				}
				return errorResult(MapError(err)), nil
			}
			return jsonResult(payload)
		})
	}
}

func jsonResult(payload any) (*sdkmcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil
}

func errorResult(apiErr *APIError) *sdkmcp.CallToolResult {
	data, _ := json.Marshal(apiErr)
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}
}
