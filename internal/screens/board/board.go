package board

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/leaderboard"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// loadedMsg carries the persisted top scores.
type loadedMsg struct {
	Entries []leaderboard.Entry
	Err     error
}

// BoardScreen shows the persisted top-5 attempts.
type BoardScreen struct {
	svc     *leaderboard.Service
	entries []leaderboard.Entry
	loadErr string
	loaded  bool
}

var _ router.Screen = (*BoardScreen)(nil)
var _ router.KeyHintProvider = (*BoardScreen)(nil)

// New creates the leaderboard screen.
func New(svc *leaderboard.Service) *BoardScreen {
	return &BoardScreen{svc: svc}
}

func (b *BoardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := b.svc.Top(context.Background())
		return loadedMsg{Entries: entries, Err: err}
	}
}

func (b *BoardScreen) Title() string {
	return "Leaderboard"
}

func (b *BoardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BoardScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch m := msg.(type) {
	case loadedMsg:
		b.loaded = true
		if m.Err != nil {
			b.loadErr = m.Err.Error()
		} else {
			b.entries = m.Entries
		}
	case tea.KeyMsg:
		if m.String() == "esc" {
			return b, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return b, nil
}

func (b *BoardScreen) View(width, height int) string {
	var out strings.Builder

	out.WriteString(theme.Title.Width(width).Render("Top Scores"))
	out.WriteString("\n\n")

	switch {
	case !b.loaded:
		out.WriteString(theme.Subtitle.Width(width).Render("Loading..."))

	case b.loadErr != "":
		out.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(b.loadErr)))

	case len(b.entries) == 0:
		out.WriteString(theme.Subtitle.Width(width).Render("No attempts recorded yet. Be the first!"))

	default:
		for i, e := range b.entries {
			line := fmt.Sprintf("%d.  %-20s  %3d   %-18s  %s",
				i+1, e.Name, e.Score, e.Subject, e.TakenAt.Format("02 Jan 2006"))
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == 0 {
				style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
			}
			out.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			out.WriteString("\n")
		}
	}

	return layout.Center(out.String(), width, height)
}
