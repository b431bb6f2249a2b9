package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an examiner preparing mock-test papers for school students of a tutoring academy.

Rules:
- Generate the requested number of multiple-choice questions for the given subject or section breakdown.
- Use plain ASCII text. No LaTeX, no Unicode symbols. Use / for fractions and standard operators.
- Each question must be clear, self-contained, and appropriate for school students.
- Provide exactly 4 options per question. All 4 options must have distinct text.
- Exactly one option is correct, and "correct_answer" must repeat that option's text character for character.
- Distractors should reflect plausible mistakes, not random values.
- Tag every question with its subject.
- Cover the syllabus broadly; do not cluster questions on one narrow topic.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	if len(input.Sections) > 0 {
		fmt.Fprintf(&b, "Paper: full mock exam, %d questions total\n", input.Total())
		b.WriteString("Section breakdown:\n")
		for _, s := range input.Sections {
			fmt.Fprintf(&b, "- %s: %d questions\n", s.Subject, s.Count)
		}
	} else {
		fmt.Fprintf(&b, "Paper: subject test\n")
		fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
		fmt.Fprintf(&b, "Questions: %d\n", input.Count)
	}

	b.WriteString("\nAlready asked in earlier attempts:\n")
	b.WriteString(buildPriorList(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildPriorList formats prior questions for the prompt, keeping only the
// most recent max entries.
func buildPriorList(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
