package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/certificate"
	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/leaderboard"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// boardLoadedMsg carries the refreshed top-5 after the attempt was
// recorded.
type boardLoadedMsg struct {
	Entries []leaderboard.Entry
	Err     error
}

// certSavedMsg reports the certificate render outcome.
type certSavedMsg struct {
	Path string
	Err  error
}

// SummaryScreen shows the frozen result of a finished attempt.
type SummaryScreen struct {
	result      *exam.Result
	boardSvc    *leaderboard.Service
	certs       *certificate.Renderer
	persistWarn error

	entries  []leaderboard.Entry
	certNote string
}

var _ router.Screen = (*SummaryScreen)(nil)
var _ router.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen for a finished attempt.
func New(result *exam.Result, boardSvc *leaderboard.Service, certs *certificate.Renderer, persistWarn error) *SummaryScreen {
	return &SummaryScreen{
		result:      result,
		boardSvc:    boardSvc,
		certs:       certs,
		persistWarn: persistWarn,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.boardSvc == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := s.boardSvc.Top(context.Background())
		return boardLoadedMsg{Entries: entries, Err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Result"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if s.certs != nil && s.result != nil {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Save certificate"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		if msg.Err == nil {
			s.entries = msg.Entries
		}
		return s, nil

	case certSavedMsg:
		if msg.Err != nil {
			s.certNote = "Certificate failed: " + msg.Err.Error()
		} else {
			s.certNote = "Certificate saved to " + msg.Path
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "c", "C":
			if s.certs != nil && s.result != nil {
				return s, func() tea.Msg {
					path, err := s.certs.Render(s.result)
					return certSavedMsg{Path: path, Err: err}
				}
			}
		}
	}
	return s, nil
}

func bandStyle(b exam.Band) lipgloss.Style {
	switch b {
	case exam.BandPass:
		return theme.BandPass
	case exam.BandAverage:
		return theme.BandAverage
	default:
		return theme.BandFail
	}
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Test complete!"))
	b.WriteString("\n\n")

	name := r.StudentName
	if name == "" {
		name = "Student"
	}
	sub := fmt.Sprintf("%s  •  %s", name, r.Subject)
	b.WriteString(theme.Subtitle.Width(width).Render(sub))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("Score: %d / %d   (%.1f%%)", r.Score, r.Total, r.Percentage)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(scoreLine)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		bandStyle(r.Band).Render("  "+string(r.Band)+"  ")))
	b.WriteString("\n")

	mins := int(r.Duration.Minutes())
	secs := int(r.Duration.Seconds()) % 60
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("Time taken: %d:%02d", mins, secs))))
	b.WriteString("\n")

	if len(r.Sections) > 1 {
		b.WriteString("\n")
		b.WriteString(sectionBlock(r.Sections, width))
	}

	if len(s.entries) > 0 {
		b.WriteString("\n")
		b.WriteString(boardBlock(s.entries, width))
	}

	if s.persistWarn != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Warning).Render(
				"Result could not be saved: "+s.persistWarn.Error())))
		b.WriteString("\n")
	}
	if s.certNote != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(s.certNote)))
		b.WriteString("\n")
	}

	return layout.Center(b.String(), width, height)
}

func divider(width int) string {
	w := width - 8
	if w > 48 {
		w = 48
	}
	if w < 1 {
		w = 1
	}
	return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", w))
}

func sectionBlock(sections []exam.SectionScore, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Sections")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider(width)))
	b.WriteString("\n")
	for _, sec := range sections {
		line := fmt.Sprintf("%-20s  %2d / %-2d", sec.Subject, sec.Correct, sec.Total)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func boardBlock(entries []leaderboard.Entry, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Leaderboard")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider(width)))
	b.WriteString("\n")
	for i, e := range entries {
		line := fmt.Sprintf("%d. %-18s  %3d   %s", i+1, e.Name, e.Score, e.Subject)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == 0 {
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
