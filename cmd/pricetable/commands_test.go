package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pricetable/internal/config"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
	"github.com/alexisbeaulieu97/pricetable/internal/ollama"
	pterrors "github.com/alexisbeaulieu97/pricetable/pkg/errors"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func absentConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func fakeOllama(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		_ = json.NewEncoder(w).Encode(ollama.ChatResponse{
			Message: ollama.Message{Role: "assistant", Content: content},
			Done:    true,
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestExportCommandWritesPNG(t *testing.T) {
	t.Setenv(config.HostEnv, "")
	out := t.TempDir()

	stdout, _, err := execute(t, "--config", absentConfig(t), "export", "--title", "Eid Offers", "--out", out, "--scale", "1")
	require.NoError(t, err)

	path := filepath.Join(out, "eid-offers-packages.png")
	assert.Equal(t, path, strings.TrimSpace(stdout))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestExportCommandRejectsBadScale(t *testing.T) {
	t.Setenv(config.HostEnv, "")

	for _, scale := range []string{"0", "9", "1000"} {
		out := t.TempDir()
		_, _, err := execute(t, "--config", absentConfig(t), "export", "--out", out, "--scale", scale)

		var ve *pterrors.ValidationError
		require.ErrorAs(t, err, &ve, scale)
		assert.Equal(t, "export.scale", ve.Field, scale)

		entries, readErr := os.ReadDir(out)
		require.NoError(t, readErr)
		assert.Empty(t, entries, scale)
	}
}

func TestExportCommandReportsWriteFailure(t *testing.T) {
	t.Setenv(config.HostEnv, "")
	missing := filepath.Join(t.TempDir(), "nope")

	_, stderr, err := execute(t, "--config", absentConfig(t), "export", "--out", missing)

	var ce *pterrors.CollaboratorError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "write", ce.Op)
	assert.Contains(t, stderr, "write failed")
}

func TestExportCommandUsesConfigFile(t *testing.T) {
	t.Setenv(config.HostEnv, "")
	out := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "pricetable.yaml")
	contents := "title: Weekend Deals\nexport:\n  dir: " + out + "\n  scale: 1\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(contents), 0o644))

	stdout, _, err := execute(t, "--config", cfgPath, "export")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "weekend-deals-packages.png"), strings.TrimSpace(stdout))
}

func TestInvalidConfigFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "pricetable.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("export:\n  scale: 9\n"), 0o644))

	_, _, err := execute(t, "--config", cfgPath, "export")

	var ve *pterrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "export.scale", ve.Field)
}

func TestSuggestGradientPrintsJSON(t *testing.T) {
	server := fakeOllama(t, http.StatusOK, `{"from":"#ecfeff","via":"#f0f9ff","to":"#eef2ff"}`)
	t.Setenv(config.HostEnv, server.URL)

	stdout, _, err := execute(t, "--config", absentConfig(t), "suggest", "gradient")
	require.NoError(t, err)

	var gradient theme.Gradient
	require.NoError(t, json.Unmarshal([]byte(stdout), &gradient))
	assert.Equal(t, theme.Gradient{From: "#ecfeff", Via: "#f0f9ff", To: "#eef2ff"}, gradient)
}

func TestSuggestPaletteFailure(t *testing.T) {
	server := fakeOllama(t, http.StatusServiceUnavailable, "")
	t.Setenv(config.HostEnv, server.URL)

	stdout, _, err := execute(t, "--config", absentConfig(t), "suggest", "palette")

	var ce *pterrors.CollaboratorError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "ollama", ce.Collaborator)
	assert.Empty(t, stdout)
}

func TestEditRequiresTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(*os.File) bool { return false }

	_, _, err := execute(t, "edit")
	require.ErrorIs(t, err, errNotTerminal)

	_, _, err = execute(t)
	require.ErrorIs(t, err, errNotTerminal)
}

func TestLogFileReceivesSessionID(t *testing.T) {
	t.Setenv(config.HostEnv, "")
	logPath := filepath.Join(t.TempDir(), "pricetable.log")

	_, stderr, err := execute(t, "--config", absentConfig(t), "--log-file", logPath, "--verbose", "export", "--out", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session_id")
	assert.Contains(t, string(data), "table exported")
}

func TestSuggestPaletteDiff(t *testing.T) {
	server := fakeOllama(t, http.StatusOK, `{"primary":"#0f766e","headerText":"#ffffff","tableHeader":"#2563eb","priceText":"#0d9488","packageText":"#1f2937","detailsText":"#4b5563"}`)
	t.Setenv(config.HostEnv, server.URL)

	stdout, _, err := execute(t, "--config", absentConfig(t), "suggest", "palette", "--diff")
	require.NoError(t, err)

	assert.Contains(t, stdout, "--- theme (current)")
	assert.Regexp(t, `(?m)^-primary: .#16a34a.$`, stdout)
	assert.Regexp(t, `(?m)^\+primary: .#0f766e.$`, stdout)
	assert.Regexp(t, `(?m)^ headerText: .#ffffff.$`, stdout)
	assert.NotContains(t, stdout, "-headerText")
}
