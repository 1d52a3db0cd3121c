package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smokeUserID = "65a1f0c2b3d4e5f6a7b8c9d0"

func TestSmokeFlow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/demo":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			_, _ = fmt.Fprintf(w, `{"userId":"%s","courseCode":"%s","displayName":"Ada"}`, smokeUserID, body["courseCode"])
		case "/pod":
			assert.Equal(t, smokeUserID, r.Header.Get("X-User-Id"))
			_, _ = fmt.Fprint(w, `{"hasPod":false}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runCupid(t, binaryPath, home, server.URL, "join", "cs471", "--name", "Ada")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Joined CS471")

	stdout, stderr, err = runCupid(t, binaryPath, home, server.URL, "whoami")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "user:   "+smokeUserID)

	stdout, stderr, err = runCupid(t, binaryPath, home, server.URL, "pod")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "No pod yet")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "cupid-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/cupid")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build cupid binary: %s", string(output))
	return binaryPath
}

func runCupid(t *testing.T, binaryPath, home, baseURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "CUPID_API_BASE_URL="+baseURL)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
