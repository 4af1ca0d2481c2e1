// Package tui is the interactive catalog browser: a candidate list backed
// by the remote catalog, with a version table per candidate reconciled
// against the local installation tree.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sdkui/pkg/candidates"
	"sdkui/pkg/catalog"
	"sdkui/pkg/display"
)

type state int

const (
	stateLoading state = iota
	stateList
	stateFetching
	stateVersions
	stateError
)

type catalogLoadedMsg struct {
	view *candidates.View
	err  error
}

type versionsLoadedMsg struct {
	unified catalog.Unified
	err     error
}

// candidateItem adapts a catalog entry to the bubbles list.
type candidateItem struct {
	candidate catalog.Candidate
	installed bool
}

func (i candidateItem) Title() string {
	title := i.candidate.Name + " " + i.candidate.DefaultVersion
	if i.installed {
		title += " " + installedStyle.Render("●")
	}
	return title
}

func (i candidateItem) Description() string {
	desc := strings.TrimSpace(i.candidate.Description)
	if desc == "" {
		return i.candidate.Homepage
	}
	return desc
}

func (i candidateItem) FilterValue() string {
	return i.candidate.Name + " " + i.candidate.BinaryID
}

// Model drives the catalog browser.
type Model struct {
	service *candidates.Service
	view    *candidates.View

	state   state
	err     error
	width   int
	height  int
	spinner spinner.Model

	candidateList list.Model

	selected     catalog.Candidate
	versionsView viewport.Model
}

// New creates a browser model. Loading starts when the program runs Init.
func New(service *candidates.Service) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorAccent).
		BorderLeftForeground(colorAccent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(colorSubtle).
		BorderLeftForeground(colorAccent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "SDKMAN Candidates"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()

	return Model{
		service:       service,
		state:         stateLoading,
		spinner:       sp,
		candidateList: l,
		versionsView:  viewport.New(0, 0),
	}
}

// Run starts the browser and blocks until the user quits.
func Run(service *candidates.Service) error {
	_, err := tea.NewProgram(New(service), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCatalogCmd(m.service))
}

func loadCatalogCmd(service *candidates.Service) tea.Cmd {
	return func() tea.Msg {
		view, err := service.Catalog(context.Background())
		return catalogLoadedMsg{view: view, err: err}
	}
}

func loadVersionsCmd(service *candidates.Service, c catalog.Candidate, view *candidates.View) tea.Cmd {
	return func() tea.Msg {
		unified, err := service.Versions(context.Background(), c, view)
		return versionsLoadedMsg{unified: unified, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.candidateList.SetSize(msg.Width, msg.Height-2)
		m.versionsView.Width = msg.Width
		m.versionsView.Height = msg.Height - 6

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case catalogLoadedMsg:
		if msg.err != nil {
			m.state = stateError
			m.err = msg.err
			break
		}
		m.view = msg.view
		m.candidateList.SetItems(candidateItems(msg.view))
		m.state = stateList

	case versionsLoadedMsg:
		if msg.err != nil {
			m.state = stateError
			m.err = msg.err
			break
		}
		m.versionsView.SetContent(display.VersionList(msg.unified))
		m.versionsView.GotoTop()
		m.state = stateVersions

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
	}

	switch m.state {
	case stateList:
		var cmd tea.Cmd
		m.candidateList, cmd = m.candidateList.Update(msg)
		cmds = append(cmds, cmd)
	case stateVersions:
		var cmd tea.Cmd
		m.versionsView, cmd = m.versionsView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit

	case "q":
		if m.state == stateVersions {
			m.state = stateList
			return nil
		}
		if m.state != stateList || !m.candidateList.SettingFilter() {
			return tea.Quit
		}

	case "esc":
		if m.state == stateVersions {
			m.state = stateList
			return nil
		}

	case "enter":
		// One fetch in flight at a time.
		if m.state == stateList && !m.candidateList.SettingFilter() {
			item, ok := m.candidateList.SelectedItem().(candidateItem)
			if !ok {
				return nil
			}
			m.selected = item.candidate
			m.state = stateFetching
			return tea.Batch(m.spinner.Tick, loadVersionsCmd(m.service, item.candidate, m.view))
		}
	}
	return nil
}

func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return "\n " + m.spinner.View() + " Loading candidate catalog..."

	case stateFetching:
		return "\n " + m.spinner.View() + " Fetching versions for " + m.selected.Name + "..."

	case stateError:
		return errorStyle.Render("Error: "+m.err.Error()) + "\n" +
			helpStyle.Render("q quit")

	case stateVersions:
		header := headerStyle.Render(m.selected.Name+" "+m.selected.DefaultVersion) + "\n" +
			subtleStyle.Render(m.selected.Homepage)
		footer := helpStyle.Render("↑/↓ scroll · esc back · ctrl+c quit")
		return lipgloss.JoinVertical(lipgloss.Left, header, "", m.versionsView.View(), footer)

	default:
		return m.candidateList.View() + "\n" +
			helpStyle.Render("enter versions · / filter · q quit")
	}
}

func candidateItems(view *candidates.View) []list.Item {
	items := make([]list.Item, 0, len(view.Remote))
	for _, c := range view.Remote {
		_, installed := view.Local[c.BinaryID]
		items = append(items, candidateItem{candidate: c, installed: installed})
	}
	return items
}
