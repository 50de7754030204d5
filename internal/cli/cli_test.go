package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavesq/internal/config"
	"github.com/llehouerou/wavesq/internal/library"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		cfgFile = ""
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestScanCommand(t *testing.T) {
	music := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(music, "intro.mp3"), make([]byte, 2048), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(music, "outro.flac"), make([]byte, 1024), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(music, "notes.txt"), []byte("x"), 0o600))

	db := filepath.Join(t.TempDir(), "library.db")
	cfgPath := writeTestConfig(t, `database = "`+db+`"`)

	out, err := execute(t, "scan", "--config", cfgPath, music)
	require.NoError(t, err)

	assert.Contains(t, out, "Scanned 2 files (3.1 kB): 2 added, 0 removed, 2 indexed")

	idx, err := library.Open(db)
	require.NoError(t, err)
	defer idx.Close()
	loc, ok := idx.Resolve("intro.mp3")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(music, "intro.mp3"), loc)
}

func TestScanCommand_NoSources(t *testing.T) {
	cfgPath := writeTestConfig(t, `database = "`+filepath.Join(t.TempDir(), "l.db")+`"`)

	_, err := execute(t, "scan", "--config", cfgPath)

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no directories to scan"))
}

func TestInvalidConfigIsRejected(t *testing.T) {
	cfgPath := writeTestConfig(t, "event_buffer = 0\n")

	_, err := execute(t, "scan", "--config", cfgPath, t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewResolver(t *testing.T) {
	music := t.TempDir()
	local := filepath.Join(music, "local.mp3")
	require.NoError(t, os.WriteFile(local, []byte("x"), 0o600))

	indexed := filepath.Join(t.TempDir(), "indexed.mp3")
	require.NoError(t, os.WriteFile(indexed, []byte("x"), 0o600))
	idx, err := library.Open(":memory:")
	require.NoError(t, err)
	defer idx.Close()
	_, err = idx.Scan(t.Context(), []string{filepath.Dir(indexed)}, func(string) bool { return true })
	require.NoError(t, err)

	c := &config.Config{LibrarySources: []string{music}}

	tests := []struct {
		name string
		idx  *library.Index
		want string
		ok   bool
	}{
		{"indexed.mp3", idx, indexed, true},
		{"local.mp3", idx, local, true},
		{"local.mp3", nil, local, true},
		{"indexed.mp3", nil, "", false},
		{"nothing.mp3", idx, "", false},
	}
	for _, tt := range tests {
		loc, ok := newResolver(c, tt.idx)(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.want, loc, tt.name)
	}
}
