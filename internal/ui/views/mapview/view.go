package mapview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mindmapdto "synmap/internal/modules/mindmap/dto"
	outlinedomain "synmap/internal/modules/outline/domain"
	apperrors "synmap/internal/platform/errors"
	"synmap/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type MapPort interface {
	Show(ctx context.Context) (mindmapdto.StateOutput, error)
	Explain(ctx context.Context, input mindmapdto.ExplainInput) (mindmapdto.ExplainOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StateLoadedMsg struct {
	State mindmapdto.StateOutput
	Err   error
}

type ExplainedMsg struct {
	Out mindmapdto.ExplainOutput
	Err error
}

// ─── list item ───────────────────────────────────────────────────────────────

type nodeItem struct {
	node mindmapdto.NodeOutput
}

func (i nodeItem) Title() string {
	return strings.Repeat("  ", i.node.Tier) + i.node.Label
}

func (i nodeItem) Description() string {
	return fmt.Sprintf("tier %d", i.node.Tier)
}

func (i nodeItem) FilterValue() string { return i.node.Label }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port       MapPort
	list       list.Model
	detail     viewport.Model
	spinner    spinner.Model
	state      mindmapdto.StateOutput
	hasMap     bool
	explaining bool
	loading    bool
	width      int
	height     int
}

func New(port MapPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Green).BorderForeground(theme.Green)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Green)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Map"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Green)

	return Model{
		port:    port,
		list:    l,
		detail:  vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case StateLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.hasMap = false
			m.state = mindmapdto.StateOutput{}
			cmds = append(cmds, m.list.SetItems(nil))
			if errors.Is(msg.Err, apperrors.ErrNoMindmap) {
				m.list.Title = "Map"
				m.detail.SetContent(theme.Muted.Render("No mind map yet. Open the palette (:) and run generate:file or generate:text."))
			} else {
				m.list.Title = "Map"
				m.detail.SetContent(theme.Muted.Render("load failed: " + msg.Err.Error()))
			}
			return m, tea.Batch(cmds...)
		}
		m.hasMap = true
		m.state = msg.State
		m.list.Title = "Map: " + msg.State.RootTopic
		items := make([]list.Item, len(msg.State.Nodes))
		for i, n := range msg.State.Nodes {
			items[i] = nodeItem{node: n}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if msg.State.SelectedTopic != "" {
			m.detail.SetContent(renderExplanation(msg.State.SelectedTopic, msg.State.Explanation))
		} else {
			m.detail.SetContent(theme.Muted.Render("Select a node and press enter for an explanation, d to drill down."))
		}

	case ExplainedMsg:
		m.explaining = false
		if msg.Err != nil {
			m.detail.SetContent(theme.Muted.Render("explanation failed: " + outlinedomain.Diagnostic(msg.Err)))
			return m, nil
		}
		m.detail.SetContent(renderExplanation(msg.Out.Topic, msg.Out.Body))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "enter" && m.hasMap && !m.explaining {
			if item, ok := m.list.SelectedItem().(nodeItem); ok {
				m.explaining = true
				m.detail.SetContent(m.spinner.View() + " Asking about " + item.node.Label + "…")
				cmds = append(cmds, m.explainCmd(item.node.ID))
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading mind map…")
	}

	listW := m.width * 40 / 100
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 40 / 100
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func renderExplanation(topic, body string) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(topic) + "\n\n")
	sb.WriteString(body)
	return sb.String()
}

// SelectedTopic reports the label of the highlighted node.
func (m Model) SelectedTopic() (string, bool) {
	item, ok := m.list.SelectedItem().(nodeItem)
	if !ok {
		return "", false
	}
	return item.node.Label, true
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys (e.g. "q") during
// a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reload fetches the stored state again.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return StateLoadedMsg{Err: apperrors.ErrNoMindmap}
		}
		state, err := m.port.Show(context.Background())
		return StateLoadedMsg{State: state, Err: err}
	}
}

func (m Model) explainCmd(nodeID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Explain(context.Background(), mindmapdto.ExplainInput{NodeID: nodeID})
		return ExplainedMsg{Out: out, Err: err}
	}
}
