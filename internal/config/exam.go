package config

import (
	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/questiongen"
)

// SubjectExam builds the session config for a subject-wise test.
func (c *Config) SubjectExam(subject string) exam.Config {
	return exam.Config{
		Mode:          exam.ModeSubject,
		Subject:       subject,
		QuestionCount: c.SubjectTest.Questions,
		Duration:      c.SubjectTest.Duration,
	}
}

// FullMockExam builds the session config for the full mock exam.
func (c *Config) FullMockExam() exam.Config {
	sections := make([]questiongen.Section, len(c.FullMock.Sections))
	for i, s := range c.FullMock.Sections {
		sections[i] = questiongen.Section{Subject: s.Subject, Count: s.Count}
	}
	return exam.Config{
		Mode:     exam.ModeFullMock,
		Duration: c.FullMock.Duration,
		Sections: sections,
	}
}
