// Package tui implements the interactive dashboard: a browsable list of
// cataloged servers with a detail pane, the terminal rendition of the
// original point-and-click dashboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcpdeck/mcpdeck/internal/model"
	"github.com/mcpdeck/mcpdeck/internal/store"
)

type state int

const (
	stateList state = iota
	stateDetail
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	remoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	localStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

type serverItem struct {
	server model.Server
}

func (i serverItem) Title() string { return i.server.Name }

func (i serverItem) Description() string {
	if i.server.IsLocal() {
		desc := "local"
		if i.server.Cmd != "" {
			desc += " · " + i.server.Cmd
		}
		return desc
	}
	return "remote · " + i.server.URL
}

func (i serverItem) FilterValue() string { return i.server.Name }

// Dashboard is the bubbletea model for the server browser.
type Dashboard struct {
	state    state
	list     list.Model
	viewport viewport.Model
	sources  *store.SourceStore
	links    *store.Links
	width    int
	height   int
}

// NewDashboard builds the dashboard over the current catalog contents.
func NewDashboard(servers *store.ServerStore, sources *store.SourceStore, links *store.Links) Dashboard {
	all := servers.All()
	items := make([]list.Item, 0, len(all))
	for _, srv := range all {
		items = append(items, serverItem{server: srv})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "MCP Servers"
	l.SetShowStatusBar(false)

	return Dashboard{
		state:    stateList,
		list:     l,
		viewport: viewport.New(80, 20),
		sources:  sources,
		links:    links,
	}
}

func (d Dashboard) Init() tea.Cmd { return nil }

func (d Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return d, tea.Quit
		case "q", "esc":
			if d.state == stateDetail {
				d.state = stateList
				return d, nil
			}
			return d, tea.Quit
		case "enter":
			if d.state == stateList {
				if sel, ok := d.list.SelectedItem().(serverItem); ok {
					d.viewport.SetContent(d.renderDetail(sel.server))
					d.viewport.GotoTop()
					d.state = stateDetail
				}
				return d, nil
			}
		}

	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		d.list.SetSize(msg.Width, msg.Height-2)
		d.viewport.Width = msg.Width - 2
		d.viewport.Height = msg.Height - 6
	}

	var cmd tea.Cmd
	switch d.state {
	case stateList:
		d.list, cmd = d.list.Update(msg)
	case stateDetail:
		d.viewport, cmd = d.viewport.Update(msg)
	}
	return d, cmd
}

func (d Dashboard) View() string {
	switch d.state {
	case stateDetail:
		return titleStyle.Render("Server Details") + "\n" +
			d.viewport.View() + "\n\n" +
			labelStyle.Render("Press esc to return, q to quit")
	default:
		return d.list.View()
	}
}

// renderDetail formats one server's full record, including the sources it is
// linked to.
func (d Dashboard) renderDetail(srv model.Server) string {
	var b strings.Builder

	kind := remoteStyle.Render("remote")
	if srv.IsLocal() {
		kind = localStyle.Render("local")
	}

	fmt.Fprintf(&b, "%s %s\n\n", titleStyle.Render(srv.Name), kind)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("id:"), srv.ID)
	if srv.URL != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("url:"), srv.URL)
	}
	if srv.Cmd != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("cmd:"), srv.Cmd)
		if len(srv.CmdArgs) > 0 {
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("args:"), strings.Join(srv.CmdArgs, " "))
		}
	}
	if srv.Source != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("from:"), string(srv.Source))
	}
	if srv.Subtitle != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("note:"), srv.Subtitle)
	}

	sourceIDs := d.links.SourcesFor(srv.ID)
	if len(sourceIDs) > 0 {
		b.WriteString("\n" + labelStyle.Render("synced to:") + "\n")
		for _, id := range sourceIDs {
			if src, ok := d.sources.Get(id); ok {
				fmt.Fprintf(&b, "  %s (%s)\n", src.Name, src.Path)
			} else {
				fmt.Fprintf(&b, "  %s\n", id)
			}
		}
	}
	return b.String()
}

// Run starts the dashboard and blocks until the user quits.
func Run(servers *store.ServerStore, sources *store.SourceStore, links *store.Links) error {
	p := tea.NewProgram(NewDashboard(servers, sources, links), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
