package test

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/certificate"
	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/leaderboard"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screens/summary"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// startedMsg reports the outcome of the question generation.
type startedMsg struct {
	Err error
}

// refreshMsg redraws the countdown once per second. The session owns the
// authoritative clock; this only refreshes the view.
type refreshMsg time.Time

// TestScreen drives one exam session.
type TestScreen struct {
	sess     *exam.Session
	boardSvc *leaderboard.Service
	certs    *certificate.Renderer

	// genCtx scopes the generation call so Esc can abandon a slow paper.
	genCtx    context.Context
	cancelGen context.CancelFunc

	options components.OptionList
	loading bool
	genErr  string
}

var _ router.Screen = (*TestScreen)(nil)
var _ router.KeyHintProvider = (*TestScreen)(nil)

// New creates the test screen for an unstarted session.
func New(sess *exam.Session, boardSvc *leaderboard.Service, certs *certificate.Renderer) *TestScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &TestScreen{
		sess:      sess,
		boardSvc:  boardSvc,
		certs:     certs,
		genCtx:    ctx,
		cancelGen: cancel,
		loading:   true,
	}
}

func (t *TestScreen) Init() tea.Cmd {
	return tea.Batch(t.start(), refreshTick())
}

func (t *TestScreen) Title() string {
	return t.sess.Config().Label()
}

func (t *TestScreen) KeyHints() []layout.KeyHint {
	switch {
	case t.loading || t.genErr != "":
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	case t.sess.ConfirmPending():
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit now"},
			{Key: "N", Description: "Keep going"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓/A-D", Description: "Choose"},
			{Key: "Enter", Description: "Save answer"},
			{Key: "→", Description: "Next"},
			{Key: "Esc", Description: "Submit early"},
		}
	}
}

// start runs the slow generation call off the UI loop.
func (t *TestScreen) start() tea.Cmd {
	return func() tea.Msg {
		return startedMsg{Err: t.sess.Start(t.genCtx)}
	}
}

func refreshTick() tea.Cmd {
	return tea.Tick(time.Second, func(ts time.Time) tea.Msg {
		return refreshMsg(ts)
	})
}

func (t *TestScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		t.loading = false
		if msg.Err != nil {
			t.genErr = msg.Err.Error()
			return t, nil
		}
		t.loadQuestion()
		return t, nil

	case refreshMsg:
		if t.sess.Status() == exam.StatusFinished {
			return t, t.showSummary()
		}
		return t, refreshTick()

	case tea.KeyMsg:
		return t.handleKey(msg)
	}
	return t, nil
}

func (t *TestScreen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	if t.loading {
		if msg.String() == "esc" {
			t.cancelGen()
			return t, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return t, nil
	}
	if t.genErr != "" {
		if msg.String() == "esc" || msg.String() == "enter" {
			return t, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return t, nil
	}

	if t.sess.ConfirmPending() {
		switch msg.String() {
		case "y", "Y", "enter":
			t.sess.ConfirmEarlySubmit()
			return t, t.showSummary()
		case "n", "N", "esc":
			t.sess.CancelEarlySubmit()
		}
		return t, nil
	}

	switch msg.String() {
	case "esc":
		t.sess.RequestEarlySubmit()
		return t, nil
	case "right", "l", "n":
		t.sess.Advance()
		if t.sess.Status() == exam.StatusFinished {
			return t, t.showSummary()
		}
		t.loadQuestion()
		return t, nil
	}

	var marked bool
	t.options, marked = t.options.Update(msg)
	if marked {
		if opt, ok := t.options.ChosenOption(); ok {
			t.sess.SelectAnswer(t.sess.CurrentIndex(), opt)
		}
	}
	return t, nil
}

// loadQuestion rebuilds the option list for the current question,
// restoring any previously saved answer.
func (t *TestScreen) loadQuestion() {
	q := t.sess.CurrentQuestion()
	if q == nil {
		return
	}
	chosen := -1
	if saved, ok := t.sess.AnswerFor(t.sess.CurrentIndex()); ok {
		for i, opt := range q.Options {
			if opt == saved {
				chosen = i
				break
			}
		}
	}
	t.options = components.NewOptionList(q.Text, q.Options, chosen)
}

// showSummary swaps this screen for the summary of the finished attempt.
func (t *TestScreen) showSummary() tea.Cmd {
	res := t.sess.Result()
	warn := t.sess.PersistWarning()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(res, t.boardSvc, t.certs, warn),
		}
	}
}

func (t *TestScreen) View(width, height int) string {
	if t.loading {
		msg := theme.Title.Render("Preparing your paper...") + "\n\n" +
			theme.Hint.Render("The examiner is writing fresh questions. Esc cancels.")
		return layout.Center(msg, width, height)
	}
	if t.genErr != "" {
		msg := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Could not generate the paper") +
			"\n\n" + lipgloss.NewStyle().Foreground(theme.Text).Render(t.genErr) +
			"\n\n" + theme.Hint.Render("Press Esc to go back and try again.")
		return layout.Center(msg, width, height)
	}

	if t.sess.ConfirmPending() {
		unanswered := len(t.sess.Questions()) - t.sess.AnsweredCount()
		detail := "All questions answered."
		if unanswered > 0 {
			detail = fmt.Sprintf("%d question(s) still unanswered.", unanswered)
		}
		return components.RenderConfirm("Submit the test now?", detail, width, height)
	}

	total := len(t.sess.Questions())
	idx := t.sess.CurrentIndex()

	head := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d of %d   •   Answered %d", idx+1, total, t.sess.AnsweredCount()))
	if q := t.sess.CurrentQuestion(); q != nil && t.sess.Config().Mode == exam.ModeFullMock {
		head += lipgloss.NewStyle().Foreground(theme.Secondary).Render("   [" + q.Subject + "]")
	}

	timer := components.RenderTimerBar(
		t.sess.Remaining(),
		int(t.sess.Config().Duration.Seconds()),
		min(width-8, 60),
	)

	body := head + "\n\n" + t.options.View() + "\n" + timer
	card := theme.Card.Width(min(width-4, 76)).Render(body)
	return layout.Center(card, width, height)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
