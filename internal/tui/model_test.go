package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/JonMunkholm/uniseparate/internal/config"
	"github.com/JonMunkholm/uniseparate/internal/core"
	"github.com/JonMunkholm/uniseparate/internal/usv"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "f5":
		return tea.KeyMsg{Type: tea.KeyF5}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// settle feeds msg to the model and keeps running the returned commands
// until none are left.
func settle(t *testing.T, m *Model, msg tea.Msg) {
	t.Helper()
	for i := 0; msg != nil; i++ {
		require.Less(t, i, 20, "model did not settle")
		_, cmd := m.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func newBrowser(t *testing.T, files map[string]string) (*Model, string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	m := New(core.NewService(nil, config.ConvertConfig{}), dir)
	settle(t, m, m.Init()())
	return m, dir
}

func TestModel_ScanAndStats(t *testing.T) {
	m, _ := newBrowser(t, map[string]string{
		"people.csv": "name,age\nAlice,30",
		"notes.usv":  "a␟b␞c␟d␞e␟f",
		"readme.txt": "ignored",
	})

	require.Len(t, m.files, 2)
	f, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "notes.usv", f.Name)
	assert.Contains(t, m.View(), "USV: 3 rows → CSV")

	settle(t, m, key("down"))
	assert.Contains(t, m.View(), "CSV: 2 rows × 2 cols → USV")
	assert.NotContains(t, m.View(), "readme.txt")
}

func TestModel_ConvertToNewFile(t *testing.T) {
	m, dir := newBrowser(t, map[string]string{"people.csv": "name,age\nAlice,30"})

	settle(t, m, key("enter"))
	data, err := os.ReadFile(filepath.Join(dir, "people.usv"))
	require.NoError(t, err)
	assert.Equal(t, "name␟age␞Alice␟30", string(data))
	assert.False(t, m.busy)
	assert.Len(t, m.files, 2, "rescan should pick up the new file")
	assert.Contains(t, m.View(), "people.usv")

	// Converting again would overwrite people.usv.
	m.cursor = 0
	settle(t, m, key("n"))
	require.Error(t, m.err)
	assert.True(t, errors.Is(m.err, core.ErrOutputExists))
	assert.Contains(t, m.View(), "FILE002")
}

func TestModel_ReplaceInPlace(t *testing.T) {
	m, dir := newBrowser(t, map[string]string{"data.usv": "x␟y, z"})

	settle(t, m, key("r"))
	data, err := os.ReadFile(filepath.Join(dir, "data.usv"))
	require.NoError(t, err)
	assert.Equal(t, "x,\"y, z\"", string(data))
	assert.Len(t, m.files, 1)
}

func TestModel_SaveAs(t *testing.T) {
	m, dir := newBrowser(t, map[string]string{"report.csv": "a,b"})

	settle(t, m, key("a"))
	data, err := os.ReadFile(filepath.Join(dir, "report.usv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b", string(data))
	assert.Contains(t, m.message, "saved copy as")
}

func TestModel_ConversionError(t *testing.T) {
	m, dir := newBrowser(t, map[string]string{"broken.csv": "a,\"b"})

	settle(t, m, key("n"))
	var qerr *usv.UnterminatedQuoteError
	assert.True(t, errors.As(m.err, &qerr))
	assert.Contains(t, m.View(), "CONV002")
	_, err := os.Stat(filepath.Join(dir, "broken.usv"))
	assert.True(t, os.IsNotExist(err))
}

func TestModel_RescanAndQuit(t *testing.T) {
	m, dir := newBrowser(t, nil)
	assert.Contains(t, m.View(), "no .csv or .usv files")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "late.csv"), []byte("a"), 0o644))
	settle(t, m, key("f5"))
	assert.Len(t, m.files, 1)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_IgnoresActionsWithoutFiles(t *testing.T) {
	m, _ := newBrowser(t, nil)
	_, cmd := m.Update(key("enter"))
	assert.Nil(t, cmd)
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "CSV: 3 rows × 2 cols → USV", StatusLine(usv.FormatCSV, usv.Stats{Rows: 3, Columns: 2}))
	assert.Equal(t, "USV: 4 rows → CSV", StatusLine(usv.FormatUSV, usv.Stats{Rows: 4, Columns: 9}))
}
