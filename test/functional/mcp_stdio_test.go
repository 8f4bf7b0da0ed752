package functional_test

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func newStdioSession(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	binaryPath := "./bin/toolkit"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		binaryPath = "../../bin/toolkit"
		if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
			t.Skip("Server binary not found. Run 'go build -o bin/toolkit ./cmd/server' first.")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	cmd := exec.CommandContext(ctx, binaryPath, "serve", "--stdio")
	cmd.Env = append(os.Environ(),
		"TOOLKIT_DB_PATH=:memory:",
		"TOOLKIT_LOG_LEVEL=debug",
	)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		cancel()
		t.Fatalf("Failed to connect: %v", err)
	}

	t.Cleanup(func() {
		session.Close()
		cancel()
	})
	return session
}

func TestStdio_ServerInfo(t *testing.T) {
	session := newStdioSession(t)

	initResult := session.InitializeResult()
	require.NotNil(t, initResult)
	require.NotNil(t, initResult.ServerInfo)
	require.Equal(t, "toolbox", initResult.ServerInfo.Name)
	require.NotEmpty(t, initResult.Instructions)
}

// Debug logging is on, so any log line leaking to stdout would break framing.
func TestStdio_HistoryRoundTrip(t *testing.T) {
	session := newStdioSession(t)

	out, isErr := callTool(t, session, "add_history", map[string]any{
		"kind": "calculation", "title": "Calculation", "content": "2 + 2 = 4",
	})
	require.False(t, isErr)
	require.JSONEq(t, `{"id":1}`, string(out))

	out, isErr = callTool(t, session, "list_history", nil)
	require.False(t, isErr)
	var list []historyEntry
	require.NoError(t, json.Unmarshal(out, &list))
	require.Len(t, list, 1)
	require.Equal(t, "2 + 2 = 4", list[0].Content)

	for i := 0; i < 2; i++ {
		out, isErr = callTool(t, session, "delete_history", map[string]any{"id": 1})
		require.False(t, isErr)
		require.JSONEq(t, `{"success":true}`, string(out))
	}

	out, _ = callTool(t, session, "list_history", nil)
	require.JSONEq(t, `[]`, string(out))
}
