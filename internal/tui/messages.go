package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JonMunkholm/uniseparate/internal/core"
	"github.com/JonMunkholm/uniseparate/internal/usv"
	tea "github.com/charmbracelet/bubbletea"
)

// ActionTimeout bounds a single conversion started from the browser.
var ActionTimeout = 2 * time.Minute

type (
	// DoneMsg reports a finished action.
	DoneMsg string
	// ErrMsg reports a failed action.
	ErrMsg struct{ Err error }

	scannedMsg struct {
		files []core.DocumentFile
		err   error
	}
	statsMsg struct {
		path  string
		stats usv.Stats
		err   error
	}
)

func (e ErrMsg) Error() string { return e.Err.Error() }

func scanCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		files, err := core.ScanDir(dir)
		return scannedMsg{files: files, err: err}
	}
}

func statsCmd(svc *core.Service, f core.DocumentFile) tea.Cmd {
	return func() tea.Msg {
		stats, err := svc.FileStats(f.Path, f.Format)
		return statsMsg{path: f.Path, stats: stats, err: err}
	}
}

func convertCmd(svc *core.Service, f core.DocumentFile, mode core.WriteMode) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ActionTimeout)
		defer cancel()

		res, err := svc.ConvertFile(ctx, core.FileRequest{Path: f.Path, Mode: mode})
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return ErrMsg{Err: fmt.Errorf("conversion timed out after %v", ActionTimeout)}
			}
			return ErrMsg{Err: err}
		}
		return DoneMsg(fmt.Sprintf("%s → %s (%d rows)", f.Name, res.OutputPath, res.Before.Rows))
	}
}

func saveAsCmd(f core.DocumentFile) tea.Cmd {
	return func() tea.Msg {
		out, err := core.SaveAs(f.Path, false)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return DoneMsg("saved copy as " + out)
	}
}

// StatusLine summarizes a document the way the browser's status bar does:
// "CSV: 3 rows × 2 cols → USV" or "USV: 3 rows → CSV".
func StatusLine(f usv.Format, s usv.Stats) string {
	switch f {
	case usv.FormatCSV:
		return fmt.Sprintf("CSV: %d rows × %d cols → USV", s.Rows, s.Columns)
	case usv.FormatUSV:
		return fmt.Sprintf("USV: %d rows → CSV", s.Rows)
	default:
		return fmt.Sprintf("%d characters", s.Characters)
	}
}
