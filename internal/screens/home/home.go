package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/certificate"
	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/leaderboard"
	"github.com/abhisek/prepdeck/internal/questiongen"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screens/board"
	"github.com/abhisek/prepdeck/internal/screens/history"
	testscreen "github.com/abhisek/prepdeck/internal/screens/test"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// phase is the home screen's input stage.
type phase int

const (
	phaseIdentity phase = iota // collecting name and class
	phaseMenu                  // picking a test mode
)

// HomeScreen collects the student identity and offers the test modes.
type HomeScreen struct {
	cfg       *config.Config
	generator questiongen.Generator
	boardSvc  *leaderboard.Service
	attempts  store.AttemptRepo
	certs     *certificate.Renderer

	phase      phase
	nameInput  components.TextInput
	classInput components.TextInput
	focusClass bool
	formErr    string

	student exam.Student
	menu    components.Menu

	// asked accumulates question texts from finished attempts so later
	// papers in the same run avoid repeats.
	asked    []string
	lastSess *exam.Session
}

var _ router.Screen = (*HomeScreen)(nil)
var _ router.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(cfg *config.Config, generator questiongen.Generator, boardSvc *leaderboard.Service, attempts store.AttemptRepo, certs *certificate.Renderer) *HomeScreen {
	h := &HomeScreen{
		cfg:        cfg,
		generator:  generator,
		boardSvc:   boardSvc,
		attempts:   attempts,
		certs:      certs,
		nameInput:  components.NewTextInput("Name", "Your full name", 40),
		classInput: components.NewTextInput("Class", "e.g. 9", 10),
	}
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.nameInput.Focus()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.phase == phaseIdentity {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch h.phase {
	case phaseIdentity:
		return h.updateIdentity(msg)
	default:
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}
}

func (h *HomeScreen) updateIdentity(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab":
			h.focusClass = !h.focusClass
			if h.focusClass {
				h.nameInput.Blur()
				return h, h.classInput.Focus()
			}
			h.classInput.Blur()
			return h, h.nameInput.Focus()

		case "enter":
			name := strings.TrimSpace(h.nameInput.Value())
			if name == "" {
				h.formErr = "Please enter your name."
				return h, nil
			}
			h.student = exam.Student{
				Name:  name,
				Class: strings.TrimSpace(h.classInput.Value()),
			}
			h.formErr = ""
			h.phase = phaseMenu
			h.menu = components.NewMenu(h.menuItems())
			return h, nil
		}
	}

	var cmd tea.Cmd
	if h.focusClass {
		h.classInput, cmd = h.classInput.Update(msg)
	} else {
		h.nameInput, cmd = h.nameInput.Update(msg)
	}
	return h, cmd
}

// menuItems builds one entry per configured subject, the full mock, and
// the supporting views.
func (h *HomeScreen) menuItems() []components.MenuItem {
	var items []components.MenuItem

	for _, subject := range h.cfg.Subjects {
		examCfg := h.cfg.SubjectExam(subject)
		label := fmt.Sprintf("%s  (%d questions, %s)",
			strings.ToUpper(subject), examCfg.Total(), layout.FormatClock(int(examCfg.Duration.Seconds())))
		items = append(items, components.MenuItem{
			Label:  label,
			Action: h.startTest(examCfg),
		})
	}

	mockCfg := h.cfg.FullMockExam()
	items = append(items, components.MenuItem{
		Label: fmt.Sprintf("FULL MOCK EXAM  (%d questions, %s)",
			mockCfg.Total(), layout.FormatClock(int(mockCfg.Duration.Seconds()))),
		Action: h.startTest(mockCfg),
	})

	items = append(items,
		components.MenuItem{
			Label: "LEADERBOARD",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: board.New(h.boardSvc)}
				}
			},
		},
		components.MenuItem{
			Label: "PAST ATTEMPTS",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(h.attempts)}
				}
			},
		},
		components.MenuItem{
			Label:  "EXIT",
			Action: func() tea.Cmd { return tea.Quit },
		},
	)
	return items
}

// startTest builds a fresh session and pushes the test screen.
func (h *HomeScreen) startTest(examCfg exam.Config) func() tea.Cmd {
	return func() tea.Cmd {
		sess, err := h.newSession(examCfg)
		if err != nil {
			h.formErr = err.Error()
			return nil
		}
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: testscreen.New(sess, h.boardSvc, h.certs)}
		}
	}
}

// newSession creates the next attempt, feeding it the questions already
// asked in this run.
func (h *HomeScreen) newSession(examCfg exam.Config) (*exam.Session, error) {
	h.harvestAsked()
	examCfg.PriorQuestions = h.asked

	sess, err := exam.NewSession(examCfg, h.student, exam.Deps{
		Generator: h.generator,
		Board:     h.boardSvc,
		Attempts:  h.attempts,
	})
	if err != nil {
		return nil, err
	}
	h.lastSess = sess
	return sess, nil
}

// harvestAsked collects the paper from the last finished attempt.
func (h *HomeScreen) harvestAsked() {
	if h.lastSess == nil || h.lastSess.Status() != exam.StatusFinished {
		return
	}
	for _, q := range h.lastSess.Questions() {
		h.asked = append(h.asked, q.Text)
	}
	h.lastSess = nil
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("PrepDeck"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Mock tests for the academy"))
	b.WriteString("\n\n")

	switch h.phase {
	case phaseIdentity:
		form := h.nameInput.View() + "\n" + h.classInput.View()
		if h.formErr != "" {
			form += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(h.formErr)
		}
		card := theme.Card.Render(form)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	default:
		greeting := fmt.Sprintf("Welcome, %s", h.student.Name)
		if h.student.Class != "" {
			greeting += fmt.Sprintf(" (Class %s)", h.student.Class)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(greeting)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
		if h.formErr != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Error).Render(h.formErr)))
		}
	}

	return layout.Center(b.String(), width, height)
}
