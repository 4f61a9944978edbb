package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/uniseparate/internal/usv"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type (
	dirChangedMsg struct{ name string }
	watchErrMsg   struct{ err error }
)

// watchDir reports changes to the documents of dir through send until the
// returned stop function is called. Hidden files and permission-only changes
// are ignored.
func watchDir(dir string, send func(tea.Msg)) (stop func() error, err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op == fsnotify.Chmod || !isDocument(ev.Name) {
					continue
				}
				send(dirChangedMsg{name: filepath.Base(ev.Name)})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				send(watchErrMsg{err: err})
			}
		}
	}()
	return w.Close, nil
}

func isDocument(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	_, ok := usv.FormatFromPath(name)
	return ok
}
