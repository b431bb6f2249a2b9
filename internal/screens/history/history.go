package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// historyLimit caps the attempts shown on screen.
const historyLimit = 20

type loadedMsg struct {
	Attempts []store.AttemptData
	Err      error
}

// HistoryScreen lists recent finished attempts.
type HistoryScreen struct {
	repo     store.AttemptRepo
	attempts []store.AttemptData
	loadErr  string
	loaded   bool
}

var _ router.Screen = (*HistoryScreen)(nil)
var _ router.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the attempt history screen.
func New(repo store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := h.repo.Recent(context.Background(), historyLimit)
		return loadedMsg{Attempts: attempts, Err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return "Past Attempts"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch m := msg.(type) {
	case loadedMsg:
		h.loaded = true
		if m.Err != nil {
			h.loadErr = m.Err.Error()
		} else {
			h.attempts = m.Attempts
		}
	case tea.KeyMsg:
		if m.String() == "esc" {
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func bandStyle(band string) lipgloss.Style {
	switch band {
	case "Pass":
		return theme.BandPass
	case "Average":
		return theme.BandAverage
	default:
		return theme.BandFail
	}
}

func (h *HistoryScreen) View(width, height int) string {
	var out strings.Builder

	out.WriteString(theme.Title.Width(width).Render("Past Attempts"))
	out.WriteString("\n\n")

	switch {
	case !h.loaded:
		out.WriteString(theme.Subtitle.Width(width).Render("Loading..."))

	case h.loadErr != "":
		out.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(h.loadErr)))

	case len(h.attempts) == 0:
		out.WriteString(theme.Subtitle.Width(width).Render("No attempts yet."))

	default:
		for _, a := range h.attempts {
			line := fmt.Sprintf("%s  %-20s  %-18s  %2d/%-2d  %5.1f%%  ",
				a.FinishedAt.Format("02 Jan 15:04"),
				a.StudentName, a.Subject, a.Score, a.Total, a.Percentage)
			styled := lipgloss.NewStyle().Foreground(theme.Text).Render(line) +
				bandStyle(a.Band).Render(a.Band)
			out.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, styled))
			out.WriteString("\n")
		}
	}

	return layout.Center(out.String(), width, height)
}
