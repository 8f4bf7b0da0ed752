package cli

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpggio/toolbox/internal/config"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.DB.Path = filepath.Join(t.TempDir(), "toolkit.db")
	return cfg
}

func TestAppHandler(t *testing.T) {
	cfg := testConfig(t)
	logger := slog.New(slog.DiscardHandler)

	db, err := openStore(cfg.DB, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	server := httptest.NewServer(newApp(db, logger).handler(cfg, logger))
	t.Cleanup(server.Close)

	resp, err := http.Post(server.URL+"/api/history", "application/json",
		strings.NewReader(`{"type":"qr","title":"QR","content":"https://example.com"}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"id":1}`, string(body))

	resp, err = http.Get(server.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStaticDir(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	dir := t.TempDir()

	require.Equal(t, dir, staticDir(dir, logger))
	require.Empty(t, staticDir(filepath.Join(dir, "missing"), logger))
	require.Empty(t, staticDir("", logger))
}

func TestRunServe_StopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- runServe(ctx, cfg, false, slog.New(slog.DiscardHandler))
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}
