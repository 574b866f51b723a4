package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mindmapdto "synmap/internal/modules/mindmap/dto"
	outlinedomain "synmap/internal/modules/outline/domain"
	"synmap/internal/ui/components"
	"synmap/internal/ui/theme"
	historyview "synmap/internal/ui/views/history"
	"synmap/internal/ui/views/mapview"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// The minimal interface this orchestration layer requires. Sub-view ports are
// defined in their own packages and narrowed further.

type mindmapPort interface {
	Generate(ctx context.Context, input mindmapdto.GenerateInput) (mindmapdto.GenerateOutput, error)
	DrillDown(ctx context.Context, input mindmapdto.DrillDownInput) (mindmapdto.GenerateOutput, error)
	Explain(ctx context.Context, input mindmapdto.ExplainInput) (mindmapdto.ExplainOutput, error)
	Show(ctx context.Context) (mindmapdto.StateOutput, error)
	Reset(ctx context.Context) error
	History(ctx context.Context, limit int) ([]mindmapdto.HistoryItemOutput, error)
	Render(ctx context.Context, outPath string) (mindmapdto.RenderOutput, error)
	Export(ctx context.Context, input mindmapdto.ExportInput) (mindmapdto.ExportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabMap tabID = iota
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{"Map", "History"}

// ─── async messages ───────────────────────────────────────────────────────────

type generatedMsg struct {
	out mindmapdto.GenerateOutput
	err error
}

type drilledMsg struct {
	out mindmapdto.GenerateOutput
	err error
}

type exportedMsg struct {
	out mindmapdto.ExportOutput
	err error
}

type renderedMsg struct {
	out mindmapdto.RenderOutput
	err error
}

type resetDoneMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Explain key.Binding
	Drill   key.Binding
	Export  key.Binding
	Reset   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Explain: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "explain node")),
		Drill:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drill down")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export explanation")),
		Reset:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset map")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Explain, k.Drill, k.Export},
		{k.Reset, k.Tab},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the breadcrumb
// path, the global help overlay, and the command palette. All business logic
// is delegated to the mindmap port; rendering is delegated to sub-views.
type Model struct {
	workspacePath string

	mindmap mindmapPort

	mapView     mapview.Model
	historyView historyview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	path      []string
	status    string
	width     int
	height    int
}

func NewModel(workspacePath string, mindmap mindmapPort) Model {
	return Model{
		workspacePath: workspacePath,
		mindmap:       mindmap,
		mapView:       mapview.New(mapPortBridge{p: mindmap}),
		historyView:   historyview.New(historyPortBridge{p: mindmap}),
		activeTab:     tabMap,
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(),
		status:        "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.mapView.Init(),
		m.historyView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	// StateLoadedMsg is produced by the map view but observed here too so the
	// breadcrumb in the status bar stays current.
	case mapview.StateLoadedMsg:
		if msg.Err == nil {
			m.path = msg.State.Path
		} else {
			m.path = nil
		}
		var cmd tea.Cmd
		m.mapView, cmd = m.mapView.Update(msg)
		return m, cmd

	case mapview.ExplainedMsg:
		if msg.Err != nil {
			m.status = "explain failed: " + msg.Err.Error()
		} else {
			m.status = "explained: " + msg.Out.Topic
		}
		var cmd tea.Cmd
		m.mapView, cmd = m.mapView.Update(msg)
		return m, cmd

	case generatedMsg:
		if msg.err != nil {
			m.status = "generate failed: " + statusLine(outlinedomain.Diagnostic(msg.err))
			return m, nil
		}
		m.status = "generated: " + msg.out.RootTopic
		return m, tea.Batch(m.mapView.Reload(), m.historyView.Reload())

	case drilledMsg:
		if msg.err != nil {
			m.status = "drill-down failed: " + statusLine(outlinedomain.Diagnostic(msg.err))
			return m, nil
		}
		m.status = "drilled into: " + msg.out.RootTopic
		m.activeTab = tabMap
		return m, tea.Batch(m.mapView.Reload(), m.historyView.Reload())

	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported to " + msg.out.Path
		}

	case renderedMsg:
		if msg.err != nil {
			m.status = "render failed: " + msg.err.Error()
		} else {
			m.status = "rendered " + msg.out.Path
		}

	case resetDoneMsg:
		if msg.err != nil {
			m.status = "reset failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "mind map cleared"
		return m, m.mapView.Reload()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "d":
			if m.activeTab == tabMap {
				if topic, ok := m.mapView.SelectedTopic(); ok {
					m.status = "drilling into " + topic + "…"
					cmds = append(cmds, m.drillCmd(topic))
				}
			}
		case "e":
			if m.activeTab == tabMap {
				m.status = "exporting…"
				cmds = append(cmds, m.exportCmd(""))
			}
		case "R":
			cmds = append(cmds, m.resetCmd())
		case "enter":
			if m.activeTab == tabHistory {
				if topic, ok := m.historyView.SelectedTopic(); ok {
					m.status = "regenerating " + topic + "…"
					cmds = append(cmds, m.generateCmd("", topic))
					return m, tea.Batch(cmds...)
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabMap:
		m.mapView, tabCmd = m.mapView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabMap:
		return m.mapView.View()
	case tabHistory:
		return m.historyView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "synmap  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if len(m.path) > 0 {
		left = theme.Breadcrumb.Render(strings.Join(m.path, " ▸ ")) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "generate:file":
		if len(parts) < 2 {
			m.status = "usage: generate:file <path>"
			return m, nil
		}
		m.status = "generating from " + parts[1] + "…"
		return m, m.generateCmd(parts[1], "")

	case "generate:text":
		text := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if text == "" {
			m.status = "usage: generate:text <syllabus>"
			return m, nil
		}
		m.status = "generating…"
		return m, m.generateCmd("", text)

	case "drill":
		topic := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if topic == "" {
			m.status = "usage: drill <topic>"
			return m, nil
		}
		m.status = "drilling into " + topic + "…"
		return m, m.drillCmd(topic)

	case "explain":
		topic := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if topic == "" {
			m.status = "usage: explain <topic>"
			return m, nil
		}
		m.activeTab = tabMap
		m.status = "explaining " + topic + "…"
		return m, m.explainCmd(topic)

	case "export":
		format := ""
		if len(parts) >= 2 {
			format = parts[1]
		}
		m.status = "exporting…"
		return m, m.exportCmd(format)

	case "render":
		outPath := ""
		if len(parts) >= 2 {
			outPath = parts[1]
		}
		m.status = "rendering…"
		return m, m.renderCmd(outPath)

	case "reset":
		return m, m.resetCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabMap:
		return m.mapView.Filtering()
	case tabHistory:
		return m.historyView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.mapView, _ = m.mapView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) generateCmd(filePath, text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.mindmap.Generate(context.Background(), mindmapdto.GenerateInput{FilePath: filePath, Text: text})
		return generatedMsg{out: out, err: err}
	}
}

func (m Model) drillCmd(topic string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.mindmap.DrillDown(context.Background(), mindmapdto.DrillDownInput{Topic: topic})
		return drilledMsg{out: out, err: err}
	}
}

func (m Model) explainCmd(topic string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.mindmap.Explain(context.Background(), mindmapdto.ExplainInput{Topic: topic})
		return mapview.ExplainedMsg{Out: out, Err: err}
	}
}

func (m Model) exportCmd(format string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.mindmap.Export(context.Background(), mindmapdto.ExportInput{Format: format})
		return exportedMsg{out: out, err: err}
	}
}

func (m Model) renderCmd(outPath string) tea.Cmd {
	return func() tea.Msg {
		if outPath == "" {
			outPath = "mindmap.html"
		}
		out, err := m.mindmap.Render(context.Background(), outPath)
		return renderedMsg{out: out, err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		return resetDoneMsg{err: m.mindmap.Reset(context.Background())}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────

type mapPortBridge struct{ p mindmapPort }

func (b mapPortBridge) Show(ctx context.Context) (mindmapdto.StateOutput, error) {
	return b.p.Show(ctx)
}
func (b mapPortBridge) Explain(ctx context.Context, input mindmapdto.ExplainInput) (mindmapdto.ExplainOutput, error) {
	return b.p.Explain(ctx, input)
}

type historyPortBridge struct{ p mindmapPort }

func (b historyPortBridge) History(ctx context.Context, limit int) ([]mindmapdto.HistoryItemOutput, error) {
	return b.p.History(ctx, limit)
}

// statusLine flattens a multi-line diagnostic for the one-line status bar.
func statusLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
