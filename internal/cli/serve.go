package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/toolbox/internal/config"
	"github.com/rpggio/toolbox/internal/domain/history"
	"github.com/rpggio/toolbox/internal/domain/note"
	"github.com/rpggio/toolbox/internal/mcp"
	"github.com/rpggio/toolbox/internal/sqlite"
	"github.com/rpggio/toolbox/internal/transport"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Stdio bool
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the record API over HTTP, or MCP over stdio",
		Long: `Open the database, apply pending migrations and serve.

By default the JSON API, /health, /mcp and (when static.dir is set) the client
bundle are served over HTTP. With --stdio the MCP tools are served on
stdin/stdout instead and logs go to stderr.

Example:
  toolkit serve
  TOOLKIT_SERVER_PORT=8080 toolkit serve --config toolkit.yaml
  toolkit serve --stdio`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Stdout carries JSON-RPC in stdio mode.
			var logOut io.Writer = cmd.OutOrStdout()
			if opts.Stdio {
				logOut = cmd.ErrOrStderr()
			}
			logger, closeLog := newLogger(cfg.Log, logOut)
			defer closeLog()

			return runServe(ctx, cfg, opts.Stdio, logger)
		},
	}

	cmd.Flags().BoolVar(&opts.Stdio, "stdio", false, "serve MCP over stdin/stdout instead of HTTP")

	return cmd
}

// app holds the wired services for one process.
type app struct {
	db      *sqlite.DB
	history *history.Service
	notes   *note.Service
}

func newApp(db *sqlite.DB, logger *slog.Logger) *app {
	return &app{
		db:      db,
		history: history.NewService(sqlite.NewHistoryRepository(db), logger),
		notes:   note.NewService(sqlite.NewNoteRepository(db), logger),
	}
}

func (a *app) mcpServer(mode string, logger *slog.Logger) *sdkmcp.Server {
	return mcp.NewServer(mcp.Config{
		Services:      mcp.Services{History: a.history, Notes: a.notes},
		TransportMode: mode,
		Version:       Version,
		Logger:        logger,
	})
}

func runServe(ctx context.Context, cfg config.Config, stdio bool, logger *slog.Logger) error {
	db, err := openStore(cfg.DB, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		return err
	}
	defer db.Close()

	a := newApp(db, logger)

	if stdio {
		logger.Info("starting stdio transport")
		if err := a.mcpServer(mcp.TransportStdio, logger).Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio server: %w", err)
		}
		return nil
	}

	return serveHTTP(ctx, cfg, a, logger)
}

func (a *app) handler(cfg config.Config, logger *slog.Logger) http.Handler {
	opts := transport.Options{
		Logger:         logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		StaticDir:      staticDir(cfg.Static.Dir, logger),
	}
	if cfg.MCP.Enabled {
		opts.MCPHandler = mcp.NewHTTPHandler(a.mcpServer(mcp.TransportHTTP, logger))
	}
	return transport.NewServer(a.history, a.notes, opts)
}

func serveHTTP(ctx context.Context, cfg config.Config, a *app, logger *slog.Logger) error {
	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           a.handler(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "mcp", cfg.MCP.Enabled)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}

// staticDir returns dir when it exists, or "" to disable static hosting.
func staticDir(dir string, logger *slog.Logger) string {
	if dir == "" {
		return ""
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Warn("static directory unavailable, static hosting disabled", "dir", dir, "error", err)
		return ""
	}
	return dir
}
