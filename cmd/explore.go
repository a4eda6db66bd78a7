package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/pkg/ui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [DIR]",
	Short: "Browse the workspace interactively",
	Long: `Browse folders, documents and images in the workspace.

Vim Navigation:
- k / ↑ : Move Up
- j / ↓ : Move Down
- l / → : Enter folder
- h / ← : Parent folder
- /     : Filter by name
- d     : Delete (asks y/n)
- r     : Refresh
- PgUp / PgDn : Scroll the preview
- q     : Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	root := dirArg(args)

	backend := explorerBackend{
		list: func(dir string) ([]domain.Entry, error) {
			return treeService.List(ctx, dir)
		},
		remove: func(path string) error {
			return workspaceRepo.Delete(ctx, path)
		},
		preview: func(path string) string {
			return ui.HighlightMarkdown(documentPreview(path, 0))
		},
	}

	m, err := newExploreModel(root, backend, appConfig.ConfirmDelete)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// previewHeight is the preview pane height before the first resize
const previewHeight = 10

// explorerBackend is what the browser needs from the workspace
type explorerBackend struct {
	list    func(dir string) ([]domain.Entry, error)
	remove  func(path string) error
	preview func(path string) string
}

// --- Key bindings ---

type exploreKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Enter      key.Binding
	Back       key.Binding
	Filter     key.Binding
	Delete     key.Binding
	Refresh    key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Apply      key.Binding
}

func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Filter, k.Delete, k.Help, k.Quit}
}

func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.Filter, k.Delete, k.Refresh},
		{k.ScrollUp, k.ScrollDown},
		{k.Help, k.Quit},
	}
}

var exploreKeys = exploreKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("right", "l", "enter"),
		key.WithHelp("→/l", "open folder"),
	),
	Back: key.NewBinding(
		key.WithKeys("left", "h", "backspace"),
		key.WithHelp("←/h", "parent"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll preview up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll preview down"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("enter", "done"),
	),
}

// --- TUI Model ---

type exploreModel struct {
	backend       explorerBackend
	root          string
	dir           string
	all           []domain.Entry // Current folder, unfiltered
	entries       []domain.Entry // What the listing shows
	cursor        int
	history       []int // Cursor positions of parent folders
	confirmDelete bool
	deleteTarget  *domain.Entry
	filter        textinput.Model
	filtering     bool
	preview       viewport.Model
	previewPath   string
	message       string
	isError       bool
	help          help.Model
	keys          exploreKeyMap
}

func newExploreModel(root string, backend explorerBackend, confirmDelete bool) (exploreModel, error) {
	ti := textinput.New()
	ti.Placeholder = "Filter by name..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = ui.StylePrimary

	m := exploreModel{
		backend:       backend,
		root:          root,
		dir:           root,
		confirmDelete: confirmDelete,
		filter:        ti,
		preview:       viewport.New(80, previewHeight),
		help:          help.New(),
		keys:          exploreKeys,
	}
	if err := m.load(); err != nil {
		return m, err
	}
	return m, nil
}

func (m *exploreModel) load() error {
	entries, err := m.backend.list(m.dir)
	if err != nil {
		return err
	}
	m.all = entries
	m.applyFilter()
	return nil
}

// applyFilter narrows the listing to names containing the filter text
func (m *exploreModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		m.entries = m.all
	} else {
		m.entries = make([]domain.Entry, 0, len(m.all))
		for _, e := range m.all {
			if strings.Contains(strings.ToLower(e.Name), query) {
				m.entries = append(m.entries, e)
			}
		}
	}

	if m.cursor >= len(m.entries) {
		m.cursor = max(len(m.entries)-1, 0)
	}
	m.refreshPreview()
}

// refreshPreview loads the selected document into the preview pane
func (m *exploreModel) refreshPreview() {
	sel := m.selected()
	if sel == nil || !sel.IsDocument() || m.backend.preview == nil {
		m.previewPath = ""
		m.preview.SetContent("")
		return
	}
	if sel.Path == m.previewPath {
		return
	}
	m.previewPath = sel.Path
	m.preview.SetContent(m.backend.preview(sel.Path))
	m.preview.GotoTop()
}

func (m *exploreModel) setStatus(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

func (m *exploreModel) changeDir(dir string, cursor int) {
	m.dir = dir
	m.cursor = cursor
	m.filter.SetValue("")
	if err := m.load(); err != nil {
		m.setStatus(err.Error(), true)
	} else {
		m.setStatus("", false)
	}
}

func (m exploreModel) selected() *domain.Entry {
	if len(m.entries) == 0 {
		return nil
	}
	return &m.entries[m.cursor]
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.preview.Width = msg.Width
		m.preview.Height = max(msg.Height/3, 3)

	case tea.KeyMsg:
		if m.deleteTarget != nil {
			return m.updateConfirm(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refreshPreview()
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m.refreshPreview()
			}

		case key.Matches(msg, m.keys.Enter):
			if sel := m.selected(); sel != nil && sel.IsDir {
				m.history = append(m.history, m.cursor)
				m.changeDir(sel.Path, 0)
			}

		case key.Matches(msg, m.keys.Back):
			if m.dir != m.root {
				cursor := 0
				if n := len(m.history); n > 0 {
					cursor = m.history[n-1]
					m.history = m.history[:n-1]
				}
				m.changeDir(filepath.Dir(m.dir), cursor)
			}

		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			return m, m.filter.Focus()

		case key.Matches(msg, m.keys.Delete):
			if sel := m.selected(); sel != nil {
				target := *sel
				if !m.confirmDelete {
					m.deleteEntry(target)
				} else {
					m.deleteTarget = &target
				}
			}

		case key.Matches(msg, m.keys.Refresh):
			m.previewPath = ""
			if err := m.load(); err != nil {
				m.setStatus(err.Error(), true)
			} else {
				m.setStatus("Refreshed", false)
			}

		case key.Matches(msg, m.keys.ScrollUp):
			m.preview.ViewUp()

		case key.Matches(msg, m.keys.ScrollDown):
			m.preview.ViewDown()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m exploreModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Apply) {
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m exploreModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		target := *m.deleteTarget
		m.deleteTarget = nil
		m.deleteEntry(target)
	case key.Matches(msg, m.keys.Cancel):
		m.deleteTarget = nil
		m.setStatus("Delete cancelled", false)
	}
	return m, nil
}

func (m *exploreModel) deleteEntry(target domain.Entry) {
	if err := m.backend.remove(target.Path); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("Deleted "+target.Name, false)
	m.previewPath = ""
	if err := m.load(); err != nil {
		m.setStatus(err.Error(), true)
	}
}

func (m exploreModel) View() string {
	var s strings.Builder

	// Header
	s.WriteString("\n")
	s.WriteString(ui.StyleTitle.Render(" " + ui.IconFolder + " " + m.dir))
	s.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		s.WriteString(" " + m.filter.View())
		s.WriteString("\n\n")
	}

	// Listing
	if len(m.entries) == 0 {
		s.WriteString(ui.StyleMuted.Render("  (nothing here)"))
		s.WriteString("\n")
	}
	for i, e := range m.entries {
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		line := ui.EntryIcon(e) + " " + name

		if m.cursor == i {
			s.WriteString(ui.StyleAccent.Render("→ ") + ui.StyleSelected.Render(line))
		} else {
			s.WriteString("  " + line)
		}
		s.WriteString("\n")
	}

	// Preview
	if m.previewPath != "" {
		s.WriteString("\n")
		s.WriteString(ui.StyleTableBorder.Render(strings.Repeat("─", max(m.preview.Width, 1))))
		s.WriteString("\n")
		s.WriteString(m.preview.View())
		s.WriteString("\n")
	}

	// Status
	s.WriteString("\n")
	switch {
	case m.deleteTarget != nil:
		s.WriteString(ui.StyleError.Render(fmt.Sprintf("Delete %s? (y/n)", m.deleteTarget.Name)))
	case m.message != "" && m.isError:
		s.WriteString(ui.FormatError(m.message))
	case m.message != "":
		s.WriteString(ui.FormatSuccess(m.message))
	}
	s.WriteString("\n\n")

	// Footer help
	s.WriteString(m.help.View(m.keys))
	s.WriteString("\n")

	return s.String()
}
