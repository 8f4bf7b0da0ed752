package testserver

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rpggio/toolbox/internal/domain/history"
	"github.com/rpggio/toolbox/internal/domain/note"
	"github.com/rpggio/toolbox/internal/mcp"
	"github.com/rpggio/toolbox/internal/sqlite"
	"github.com/rpggio/toolbox/internal/transport"
	"github.com/stretchr/testify/require"
)

// Options tune the test server.
type Options struct {
	// Clock stamps new records. Defaults to time.Now.
	Clock     func() time.Time
	StaticDir string
}

type TestServer struct {
	Server  *httptest.Server
	DB      *sqlite.DB
	History *history.Service
	Notes   *note.Service
}

// New starts an HTTP server backed by a private in-memory database.
func New(t *testing.T, opts Options) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	historySvc := history.NewService(sqlite.NewHistoryRepository(db), nil)
	noteSvc := note.NewService(sqlite.NewNoteRepository(db), nil)
	if opts.Clock != nil {
		historySvc.WithClock(opts.Clock)
		noteSvc.WithClock(opts.Clock)
	}

	mcpServer := mcp.NewServer(mcp.Config{
		Services:      mcp.Services{History: historySvc, Notes: noteSvc},
		TransportMode: mcp.TransportHTTP,
		Version:       "test",
	})

	server := httptest.NewServer(transport.NewServer(historySvc, noteSvc, transport.Options{
		StaticDir:  opts.StaticDir,
		MCPHandler: mcp.NewHTTPHandler(mcpServer),
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:  server,
		DB:      db,
		History: historySvc,
		Notes:   noteSvc,
	}
}

// URL joins path onto the server base URL.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
