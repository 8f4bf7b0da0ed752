package transport

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeBundle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>toolkit</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))
	return dir
}

func TestStatic_ServesFilesAndFallsBack(t *testing.T) {
	server := newTestServer(t, &historyStub{}, &noteStub{}, Options{StaticDir: writeBundle(t)})

	resp, body := do(t, http.MethodGet, server.URL+"/assets/app.js", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "console.log(1)", body)

	resp, body = do(t, http.MethodGet, server.URL+"/notes/42", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "<html>toolkit</html>", body)

	resp, body = do(t, http.MethodGet, server.URL+"/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "<html>toolkit</html>", body)
}

func TestStatic_APIPathsStayJSON(t *testing.T) {
	server := newTestServer(t, &historyStub{}, &noteStub{}, Options{StaticDir: writeBundle(t)})

	resp, body := do(t, http.MethodGet, server.URL+"/api/unknown", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"error":"not found"}`, body)

	resp, body = do(t, http.MethodGet, server.URL+"/api/history", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "[]\n", body)
}

func TestStatic_MissingIndex(t *testing.T) {
	server := newTestServer(t, &historyStub{}, &noteStub{}, Options{StaticDir: t.TempDir()})

	resp, _ := do(t, http.MethodGet, server.URL+"/anything", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStatic_NoDirMeansNotFound(t *testing.T) {
	server := newTestServer(t, &historyStub{}, &noteStub{}, Options{})

	resp, _ := do(t, http.MethodGet, server.URL+"/", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
