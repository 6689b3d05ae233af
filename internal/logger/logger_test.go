package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWritesConsoleAndFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "server.log")

	l := New(Options{Console: &console, FilePath: path})
	l.Record("Role created with ID: 42", SeverityInfo)
	l.Record("Failed to create role", SeverityError)
	require.NoError(t, l.Close())

	lines := strings.Split(strings.TrimSpace(console.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "Role created with ID: 42", first["message"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Failed to create role")
	assert.Contains(t, string(data), `"level":"error"`)
}

func TestFileIsAppended(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o640))

	l := New(Options{Console: &bytes.Buffer{}, FilePath: path})
	l.Record("second", SeverityWarn)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "existing\n"))
	assert.Contains(t, string(data), "second")
}

func TestUnopenableFileFallsBackToConsole(t *testing.T) {
	var console bytes.Buffer
	l := New(Options{Console: &console, FilePath: filepath.Join(t.TempDir(), "missing", "server.log")})
	l.Record("still logged", SeverityInfo)

	assert.Contains(t, console.String(), "log file disabled")
	assert.Contains(t, console.String(), "still logged")
	assert.NoError(t, l.Close())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestBestEffortSwallowsWriteErrors(t *testing.T) {
	n, err := bestEffort{w: failingWriter{}}.Write([]byte("abc"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestLevelFiltersBelowMinimum(t *testing.T) {
	var console bytes.Buffer
	l := New(Options{Console: &console, Level: "error"})
	l.Record("dropped", SeverityInfo)
	l.Record("kept", SeverityError)

	assert.NotContains(t, console.String(), "dropped")
	assert.Contains(t, console.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" warning "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Record("nothing", SeverityError)
	assert.NoError(t, l.Close())
}
