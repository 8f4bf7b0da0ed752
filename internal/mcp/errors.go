package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/toolbox/internal/repository"
)

// ErrUnknownTool is returned for a tool name the handler does not serve.
var ErrUnknownTool = errors.New("unknown tool")

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Storage details are not
// exposed to the caller.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, repository.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Supply every required argument"}
	case errors.Is(err, ErrUnknownTool):
		return &APIError{Code: "UNKNOWN_TOOL", Message: err.Error(), RecoveryHint: "Call tools/list for available tools"}
	case errors.Is(err, repository.ErrStorage):
		return &APIError{Code: "STORAGE_FAILURE", Message: "storage failure"}
	default:
		return &APIError{Code: "INTERNAL", Message: "internal error"}
	}
}
