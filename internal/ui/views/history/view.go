package history

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	mindmapdto "synmap/internal/modules/mindmap/dto"
	"synmap/internal/ui/theme"
)

type HistoryPort interface {
	History(ctx context.Context, limit int) ([]mindmapdto.HistoryItemOutput, error)
}

type LoadedMsg struct {
	Items []mindmapdto.HistoryItemOutput
	Err   error
}

type generationItem struct {
	gen mindmapdto.HistoryItemOutput
}

func (i generationItem) Title() string { return i.gen.RootTopic }

func (i generationItem) Description() string {
	return fmt.Sprintf("%s · %d nodes · %d edges · depth %d · %s",
		i.gen.Source, i.gen.NodeCount, i.gen.EdgeCount, i.gen.Depth,
		i.gen.CreatedAt.Local().Format("2006-01-02 15:04"))
}

func (i generationItem) FilterValue() string { return i.gen.RootTopic }

type Model struct {
	port   HistoryPort
	list   list.Model
	width  int
	height int
}

func New(port HistoryPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Green).BorderForeground(theme.Green)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Green)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "History"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height)

	case LoadedMsg:
		if msg.Err != nil {
			m.list.Title = "History (load failed: " + msg.Err.Error() + ")"
			return m, nil
		}
		m.list.Title = "History"
		items := make([]list.Item, len(msg.Items))
		for i, gen := range msg.Items {
			items[i] = generationItem{gen: gen}
		}
		cmds = append(cmds, m.list.SetItems(items))
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return m.list.View()
}

// SelectedTopic reports the root topic of the highlighted generation, so
// the app can regenerate from a past run.
func (m Model) SelectedTopic() (string, bool) {
	item, ok := m.list.SelectedItem().(generationItem)
	if !ok {
		return "", false
	}
	return item.gen.RootTopic, true
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{}
		}
		items, err := m.port.History(context.Background(), 50)
		return LoadedMsg{Items: items, Err: err}
	}
}
