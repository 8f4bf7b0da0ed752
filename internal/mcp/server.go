package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/toolbox/internal/domain/history"
	"github.com/rpggio/toolbox/internal/domain/note"
)

// HistoryService defines history operations needed by MCP.
type HistoryService interface {
	Create(ctx context.Context, req history.CreateRequest) (*history.Entry, error)
	List(ctx context.Context) ([]history.Entry, error)
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) (int64, error)
}

// NoteService defines note operations needed by MCP.
type NoteService interface {
	Create(ctx context.Context, req note.CreateRequest) (*note.Note, error)
	List(ctx context.Context) ([]note.Note, error)
	Delete(ctx context.Context, id int64) error
}

// Services contains all domain services needed by MCP.
type Services struct {
	History HistoryService
	Notes   NoteService
}

// Transport modes.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config contains server configuration.
type Config struct {
	Services      Services
	TransportMode string
	Version       string
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "toolbox",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(sessionMiddleware(cfg.TransportMode))
	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	registerTools(server, NewHandler(cfg.Services.History, cfg.Services.Notes), logger)

	return server
}
