package functional_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/toolbox/internal/testserver"
	"github.com/stretchr/testify/require"
)

func connectHTTP(t *testing.T, ts *testserver.TestServer) *sdkmcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: ts.URL("/mcp")}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) (json.RawMessage, bool) {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err, "CallTool %s failed", name)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return json.RawMessage(text.Text), res.IsError
}

func TestMCPHTTP_SharesStoreWithAPI(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})
	session := connectHTTP(t, ts)

	out, isErr := callTool(t, session, "add_note", map[string]any{"title": "From agent", "content": "hi"})
	require.False(t, isErr)
	require.JSONEq(t, `{"id":1}`, string(out))

	var notes []noteEntry
	require.Equal(t, http.StatusOK, apiCall(t, ts, http.MethodGet, "/api/notes", "", &notes))
	require.Len(t, notes, 1)
	require.Equal(t, "From agent", notes[0].Title)
	require.Nil(t, notes[0].Color)

	apiCall(t, ts, http.MethodPost, "/api/history", `{"kind":"qr","title":"QR","content":"x"}`, nil)

	out, isErr = callTool(t, session, "list_history", nil)
	require.False(t, isErr)
	var list []historyEntry
	require.NoError(t, json.Unmarshal(out, &list))
	require.Len(t, list, 1)
	require.Equal(t, "qr", list[0].Kind)

	out, isErr = callTool(t, session, "clear_history", nil)
	require.False(t, isErr)
	require.JSONEq(t, `{"success":true,"removed":1}`, string(out))
}

func TestMCPHTTP_ValidationError(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})
	session := connectHTTP(t, ts)

	out, isErr := callTool(t, session, "add_history", map[string]any{"kind": "qr", "title": "x"})
	require.True(t, isErr)

	var apiErr struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(out, &apiErr))
	require.Equal(t, "INVALID_INPUT", apiErr.Code)
	require.Contains(t, apiErr.Message, "content is required")
}
