// Package tui is an interactive bubbletea browser for converting the CSV and
// USV files of one directory.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/JonMunkholm/uniseparate/internal/core"
	"github.com/JonMunkholm/uniseparate/internal/usv"
	tea "github.com/charmbracelet/bubbletea"
)

// Binding ties keys to an action on the highlighted file.
type Binding struct {
	Keys   []string
	Label  string
	Action func(m *Model) tea.Cmd
}

// Model is the bubbletea model of the browser.
type Model struct {
	svc    *core.Service
	dir    string
	files  []core.DocumentFile
	cursor int

	stats    map[string]usv.Stats
	message  string
	err      error
	busy     bool
	quitting bool

	bindings []Binding
}

// New creates a browser over dir.
func New(svc *core.Service, dir string) *Model {
	m := &Model{
		svc:   svc,
		dir:   dir,
		stats: make(map[string]usv.Stats),
	}
	m.bindings = defaultBindings()
	return m
}

func defaultBindings() []Binding {
	return []Binding{
		{Keys: []string{"enter", "n"}, Label: "convert to new file", Action: func(m *Model) tea.Cmd {
			return m.fileAction(func(f core.DocumentFile) tea.Cmd { return convertCmd(m.svc, f, core.WriteNew) })
		}},
		{Keys: []string{"r"}, Label: "convert in place", Action: func(m *Model) tea.Cmd {
			return m.fileAction(func(f core.DocumentFile) tea.Cmd { return convertCmd(m.svc, f, core.WriteReplace) })
		}},
		{Keys: []string{"a"}, Label: "save copy as other format", Action: func(m *Model) tea.Cmd {
			return m.fileAction(saveAsCmd)
		}},
		{Keys: []string{"s", "f5"}, Label: "rescan", Action: func(m *Model) tea.Cmd {
			return scanCmd(m.dir)
		}},
		{Keys: []string{"q", "ctrl+c", "esc"}, Label: "quit", Action: func(m *Model) tea.Cmd {
			m.quitting = true
			return tea.Quit
		}},
	}
}

// fileAction runs cmd on the highlighted file unless another action is running.
func (m *Model) fileAction(cmd func(core.DocumentFile) tea.Cmd) tea.Cmd {
	f, ok := m.Selected()
	if !ok || m.busy {
		return nil
	}
	m.busy = true
	m.message = "working on " + f.Name + "..."
	m.err = nil
	return cmd(f)
}

// Selected returns the highlighted file.
func (m *Model) Selected() (core.DocumentFile, bool) {
	if m.cursor < 0 || m.cursor >= len(m.files) {
		return core.DocumentFile{}, false
	}
	return m.files[m.cursor], true
}

func (m *Model) Init() tea.Cmd {
	return scanCmd(m.dir)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case scannedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.files = msg.files
		if m.cursor >= len(m.files) {
			m.cursor = max(len(m.files)-1, 0)
		}
		m.stats = make(map[string]usv.Stats)
		return m, m.loadStats()

	case statsMsg:
		if msg.err == nil {
			m.stats[msg.path] = msg.stats
		}
		return m, nil

	case dirChangedMsg:
		return m, scanCmd(m.dir)

	case watchErrMsg:
		m.err = msg.err
		return m, nil

	case DoneMsg:
		m.busy = false
		m.message = string(msg)
		m.err = nil
		return m, scanCmd(m.dir)

	case ErrMsg:
		m.busy = false
		m.message = ""
		m.err = msg.Err
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m.loadStats()
	case "down", "j":
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}
		return m.loadStats()
	}

	for _, b := range m.bindings {
		for _, k := range b.Keys {
			if k == key {
				return b.Action(m)
			}
		}
	}
	return nil
}

// loadStats computes statistics for the highlighted file once per scan.
func (m *Model) loadStats() tea.Cmd {
	f, ok := m.Selected()
	if !ok {
		return nil
	}
	if _, done := m.stats[f.Path]; done {
		return nil
	}
	return statsCmd(m.svc, f)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "uniseparate: %s\n\n", m.dir)

	if len(m.files) == 0 {
		b.WriteString("  no .csv or .usv files\n")
	}
	for i, f := range m.files {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%-40s %8d B\n", cursor, f.Name, f.Size)
	}

	b.WriteString("\n")
	if f, ok := m.Selected(); ok {
		if s, ok := m.stats[f.Path]; ok {
			b.WriteString(StatusLine(f.Format, s) + "\n")
		}
	}
	switch {
	case m.err != nil && core.IsUserFacing(m.err):
		b.WriteString("error: " + core.FormatUserError(m.err) + "\n")
	case m.err != nil:
		b.WriteString("error: " + m.err.Error() + "\n")
	case m.message != "":
		b.WriteString(m.message + "\n")
	}

	b.WriteString("\n")
	help := make([]string, 0, len(m.bindings))
	for _, bd := range m.bindings {
		help = append(help, bd.Keys[0]+": "+bd.Label)
	}
	b.WriteString(strings.Join(help, " • ") + "\n")
	return b.String()
}

// Run starts the browser on the terminal and blocks until the user quits.
// The listing follows changes made to dir by other programs.
func Run(svc *core.Service, dir string) error {
	p := tea.NewProgram(New(svc, dir))

	stop, err := watchDir(dir, p.Send)
	if err != nil {
		slog.Warn("directory changes will not be picked up", "dir", dir, "error", err)
	} else {
		defer stop()
	}

	_, err = p.Run()
	return err
}
