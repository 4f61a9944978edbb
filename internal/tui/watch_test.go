package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDir(t *testing.T) {
	dir := t.TempDir()
	msgs := make(chan tea.Msg, 16)

	stop, err := watchDir(dir, func(msg tea.Msg) { msgs <- msg })
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.csv"), []byte("a,b"), 0o644))

	select {
	case msg := <-msgs:
		changed, ok := msg.(dirChangedMsg)
		require.True(t, ok, "got %T", msg)
		assert.Equal(t, "people.csv", changed.name)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchDir_MissingDir(t *testing.T) {
	_, err := watchDir(filepath.Join(t.TempDir(), "missing"), func(tea.Msg) {})
	assert.Error(t, err)
}

func TestModel_RescansOnDirChange(t *testing.T) {
	m, dir := newBrowser(t, map[string]string{"people.csv": "a,b"})
	require.Len(t, m.files, 1)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.usv"), []byte("a␟b"), 0o644))
	settle(t, m, dirChangedMsg{name: "notes.usv"})

	assert.Len(t, m.files, 2)
}

func TestIsDocument(t *testing.T) {
	assert.True(t, isDocument("/tmp/people.csv"))
	assert.True(t, isDocument("notes.USV"))
	assert.False(t, isDocument("/tmp/.people.csv.123"))
	assert.False(t, isDocument("readme.txt"))
}
