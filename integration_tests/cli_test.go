package integration_tests

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildProbe(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	origDir, _ := os.Getwd()

	bin := filepath.Join(tmpDir, "exposureprobe")
	buildCmd := exec.Command("go", "build", "-o", bin, filepath.Join(origDir, "..", "cmd", "exposureprobe"))
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build exposureprobe: %v\nOutput: %s", err, string(out))
	}

	return bin
}

func fixtureServer(t *testing.T, status int, fixture string) *httptest.Server {
	t.Helper()

	body, err := os.ReadFile(filepath.Join("..", "testdata", fixture))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

// runProbe runs the binary in an empty directory so no .env or config file leaks in.
func runProbe(t *testing.T, bin string, args ...string) (string, int) {
	t.Helper()

	cmd := exec.Command(bin, args...)
	cmd.Dir = t.TempDir()
	cmd.Env = []string{"PATH=" + os.Getenv("PATH")}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return stdout.String(), 0
	case errors.As(err, &exitErr):
		return stdout.String(), exitErr.ExitCode()
	default:
		t.Fatalf("run exposureprobe: %v", err)

		return "", -1
	}
}

func TestProbeCLI(t *testing.T) {
	bin := buildProbe(t)

	t.Run("analysis summary", func(t *testing.T) {
		srv := fixtureServer(t, http.StatusOK, "analysis.json")

		out, code := runProbe(t, bin, "--url", srv.URL)
		if code != 0 {
			t.Fatalf("exit code %d, want 0\nOutput: %s", code, out)
		}

		for _, want := range []string{
			"URL: " + srv.URL,
			"Status Code: 200",
			"=== ANALYSIS SUMMARY ===",
			"Endpoint/Path: /api/jobs/search / /jobs?q=engineer",
			"Endpoint/Path: N/A / N/A",
			"Response Sample: N/A",
			strings.Repeat("-", 50),
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output does not contain %q\nOutput: %s", want, out)
			}
		}
	})

	t.Run("error response keeps exit code", func(t *testing.T) {
		srv := fixtureServer(t, http.StatusInternalServerError, "error.txt")

		out, code := runProbe(t, bin, "--url", srv.URL)
		if code != 0 {
			t.Fatalf("exit code %d, want 0", code)
		}

		if !strings.Contains(out, "Status Code: 500\n\nError Response:\ninternal error") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("fail on error", func(t *testing.T) {
		srv := fixtureServer(t, http.StatusInternalServerError, "error.txt")

		_, code := runProbe(t, bin, "--url", srv.URL, "--fail-on-error")
		if code != 1 {
			t.Fatalf("exit code %d, want 1", code)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		out, code := runProbe(t, bin, "--url", url)
		if code != 0 {
			t.Fatalf("exit code %d, want 0", code)
		}

		if !strings.Contains(out, "Error occurred: ") {
			t.Errorf("unexpected output:\n%s", out)
		}

		if strings.Contains(out, "Status Code") {
			t.Errorf("status printed for a failed connection:\n%s", out)
		}
	})
}
