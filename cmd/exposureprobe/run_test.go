package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overrideExit(t *testing.T) *[]int {
	t.Helper()

	codes := &[]int{}
	orig := exitFn
	exitFn = func(code int) { *codes = append(*codes, code) }
	t.Cleanup(func() { exitFn = orig })

	return codes
}

func executeRoot(t *testing.T, args ...string) (string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	return stdout.String(), stderr.String()
}

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestRunProbeSuccess(t *testing.T) {
	codes := overrideExit(t)
	srv := newServer(t, http.StatusOK, `{"analysis":[{"endpoint":"/x","total_responses":5}]}`)

	out, _ := executeRoot(t, "--url", srv.URL, "--color", "never", "--fail-on-error")

	assert.Contains(t, out, "Testing Job Search Exposure API...\n")
	assert.Contains(t, out, "URL: "+srv.URL+"\n")
	assert.Contains(t, out, "Endpoint/Path: /x / N/A\n")
	assert.Contains(t, out, "Total Responses: 5\n")
	assert.Contains(t, out, "Unique Users: 0\n")
	assert.Contains(t, out, "Is Step 4 Submit: No\n")
	assert.Empty(t, *codes)
}

func TestRunProbeFailureExitCodes(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, "internal error")

	tests := []struct {
		name      string
		args      []string
		wantCodes []int
	}{
		{name: "default exits zero", args: []string{"--url", srv.URL}, wantCodes: []int{}},
		{name: "fail on error", args: []string{"--url", srv.URL, "--fail-on-error"}, wantCodes: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes := overrideExit(t)

			out, _ := executeRoot(t, tt.args...)

			assert.Contains(t, out, "\nStatus Code: 500\n")
			assert.Contains(t, out, "\nError Response:\ninternal error\n")
			assert.Equal(t, tt.wantCodes, *codes)
		})
	}
}

func TestRunProbeConnectionRefused(t *testing.T) {
	codes := overrideExit(t)

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	out, _ := executeRoot(t, "--url", url)

	assert.Contains(t, out, "\nError occurred: request failed")
	assert.Empty(t, *codes)
}

func TestRunProbeInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "reversed dates", args: []string{"--start-date", "2025-08-25", "--end-date", "2025-08-20"}, want: "end date before start date"},
		{name: "bad date", args: []string{"--start-date", "yesterday"}, want: "invalid config"},
		{name: "bad color", args: []string{"--color", "rainbow"}, want: "unknown color mode"},
		{name: "bad log level", args: []string{"--log-level", "loud"}, want: "parse log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes := overrideExit(t)

			out, _ := executeRoot(t, append(tt.args, "--fail-on-error")...)

			assert.Contains(t, out, "\nError occurred: ")
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "Testing Job Search Exposure API...")
			assert.Equal(t, []int{1}, *codes)
		})
	}
}

func TestRunProbeWritesMetrics(t *testing.T) {
	overrideExit(t)
	srv := newServer(t, http.StatusOK, `{"analysis":[{"endpoint":"/x"},{"endpoint":"/y"}]}`)
	path := filepath.Join(t.TempDir(), "probe.prom")

	executeRoot(t, "--url", srv.URL, "--metrics-file", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exposureprobe_success 1\n")
	assert.Contains(t, string(data), "exposureprobe_analysis_items 2\n")
}

func TestRunProbeEarlyFailureResetsMetrics(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"analysis":[{"endpoint":"/x"}]}`)

	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid date", args: []string{"--start-date", "yesterday"}},
		{name: "missing config file", args: []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}},
		{name: "bad color", args: []string{"--color", "rainbow"}},
		{name: "bad log level", args: []string{"--log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overrideExit(t)
			path := filepath.Join(t.TempDir(), "probe.prom")

			executeRoot(t, "--url", srv.URL, "--metrics-file", path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Contains(t, string(data), "exposureprobe_success 1\n")

			out, _ := executeRoot(t, append(tt.args, "--url", srv.URL, "--metrics-file", path)...)
			assert.Contains(t, out, "\nError occurred: ")

			data, err = os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), "exposureprobe_success 0\n")
			assert.Contains(t, string(data), "exposureprobe_http_status_code 0\n")
		})
	}
}

func TestRunProbeConfigFailureHonoursEnv(t *testing.T) {
	codes := overrideExit(t)
	path := filepath.Join(t.TempDir(), "probe.prom")

	t.Setenv("EXPOSUREPROBE_FAIL_ON_ERROR", "true")
	t.Setenv("EXPOSUREPROBE_METRICS_FILE", path)

	out, _ := executeRoot(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Contains(t, out, "\nError occurred: read config")
	assert.Equal(t, []int{1}, *codes)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exposureprobe_success 0\n")
}

func TestRunProbeDebugLogs(t *testing.T) {
	overrideExit(t)
	srv := newServer(t, http.StatusOK, `{}`)

	_, stderr := executeRoot(t, "--url", srv.URL, "--log-level", "debug", "--color", "never")

	assert.Contains(t, stderr, "sending exposure request")
	assert.Contains(t, stderr, "probe finished")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: ""},
		{level: "debug"},
		{level: "WARN"},
		{level: "nonsense", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			_, err := newLogger(io.Discard, tt.level)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
