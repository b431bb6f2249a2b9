package exam

import (
	"fmt"
	"time"

	"github.com/abhisek/prepdeck/internal/questiongen"
)

// Mode selects between a single-subject test and the full mock exam.
type Mode string

const (
	ModeSubject  Mode = "subject"
	ModeFullMock Mode = "full_mock"
)

// Config fixes the shape of one test. Immutable for the session.
type Config struct {
	// Mode selects the paper type.
	Mode Mode

	// Subject is the tested subject in subject mode. Unused in full mock.
	Subject string

	// QuestionCount is the number of questions in subject mode. In full
	// mock mode the count is the sum of the section counts.
	QuestionCount int

	// Duration is the countdown length.
	Duration time.Duration

	// Sections is the fixed per-subject breakdown of the full mock paper.
	Sections []questiongen.Section

	// PriorQuestions holds question texts from earlier attempts in this
	// run, passed to the generator so the new paper is not a repeat.
	PriorQuestions []string
}

// SubjectConfig returns the standard subject-wise test: 10 questions in
// 10 minutes on the given subject.
func SubjectConfig(subject string) Config {
	return Config{
		Mode:          ModeSubject,
		Subject:       subject,
		QuestionCount: 10,
		Duration:      10 * time.Minute,
	}
}

// FullMockConfig returns the fixed full mock exam: 50 questions in 60
// minutes with the standard section breakdown.
func FullMockConfig() Config {
	return Config{
		Mode:     ModeFullMock,
		Duration: 60 * time.Minute,
		Sections: []questiongen.Section{
			{Subject: "Mathematics", Count: 15},
			{Subject: "Science", Count: 15},
			{Subject: "English", Count: 10},
			{Subject: "General Knowledge", Count: 10},
		},
	}
}

// Total returns the number of questions this config asks for.
func (c Config) Total() int {
	if c.Mode == ModeFullMock {
		total := 0
		for _, s := range c.Sections {
			total += s.Count
		}
		return total
	}
	return c.QuestionCount
}

// Label returns the subject label used on results and leaderboard entries.
func (c Config) Label() string {
	if c.Mode == ModeFullMock {
		return "Full Mock Exam"
	}
	return c.Subject
}

// GenerateInput translates the config into a question-set request.
func (c Config) GenerateInput() questiongen.GenerateInput {
	if c.Mode == ModeFullMock {
		return questiongen.GenerateInput{
			Sections:       c.Sections,
			PriorQuestions: c.PriorQuestions,
		}
	}
	return questiongen.GenerateInput{
		Subject:        c.Subject,
		Count:          c.QuestionCount,
		PriorQuestions: c.PriorQuestions,
	}
}

// Validate rejects configs that could never produce a working session.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeSubject:
		if c.Subject == "" {
			return fmt.Errorf("subject mode requires a subject")
		}
		if c.QuestionCount <= 0 {
			return fmt.Errorf("question count must be positive, got %d", c.QuestionCount)
		}
	case ModeFullMock:
		if c.Total() <= 0 {
			return fmt.Errorf("full mock requires at least one section question")
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %s", c.Duration)
	}
	return nil
}

// Student is the identity snapshot supplied by the surrounding layer.
// The session never mutates it.
type Student struct {
	Name     string
	Class    string
	PhotoRef string
}
