package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// OptionList is the answer selector for one question. Unlike a quiz
// widget it never reveals the correct option; the paper is scored only
// after submission.
type OptionList struct {
	Question string
	Options  []string

	// Cursor is the highlighted option.
	Cursor int

	// Chosen is the index of the saved answer, or -1 when unanswered.
	Chosen int
}

// NewOptionList creates the selector for one question. chosen carries a
// previously saved answer so revisiting a question restores it.
func NewOptionList(question string, options []string, chosen int) OptionList {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	}
	return OptionList{
		Question: question,
		Options:  options,
		Cursor:   cursor,
		Chosen:   chosen,
	}
}

func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles navigation and marking. Marking returns true in the
// second value so the caller can persist the choice.
func (o OptionList) Update(msg tea.Msg) (OptionList, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(o.Options) == 0 {
		return o, false
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		o.Chosen = o.Cursor
		return o, true
	case "a", "b", "c", "d":
		idx := int(kmsg.String()[0] - 'a')
		if idx < len(o.Options) {
			o.Cursor = idx
			o.Chosen = idx
			return o, true
		}
	}
	return o, false
}

// ChosenOption returns the saved answer text, or false when unanswered.
func (o OptionList) ChosenOption() (string, bool) {
	if o.Chosen < 0 || o.Chosen >= len(o.Options) {
		return "", false
	}
	return o.Options[o.Chosen], true
}

// View renders the question and its options.
func (o OptionList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(o.Question) + "\n\n"

	for i, opt := range o.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}
		mark := " "
		if i == o.Chosen {
			mark = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)

		switch {
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case i == o.Chosen:
			s += theme.Answered.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
