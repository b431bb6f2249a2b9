package exam

import "github.com/abhisek/prepdeck/internal/questiongen"

// Score counts the answers that exactly equal the question's correct
// option. Unanswered questions count as incorrect. No partial credit, no
// negative marking.
func Score(questions []questiongen.Question, answers map[int]string) int {
	score := 0
	for i, q := range questions {
		if chosen, ok := answers[i]; ok && chosen == q.Answer {
			score++
		}
	}
	return score
}

// SectionScore is the per-subject slice of a scored attempt.
type SectionScore struct {
	Subject string
	Correct int
	Total   int
}

// ScoreBySubject breaks the score down per subject, preserving the order
// in which subjects first appear in the question list.
func ScoreBySubject(questions []questiongen.Question, answers map[int]string) []SectionScore {
	index := make(map[string]int)
	var sections []SectionScore

	for i, q := range questions {
		pos, ok := index[q.Subject]
		if !ok {
			pos = len(sections)
			index[q.Subject] = pos
			sections = append(sections, SectionScore{Subject: q.Subject})
		}
		sections[pos].Total++
		if chosen, answered := answers[i]; answered && chosen == q.Answer {
			sections[pos].Correct++
		}
	}
	return sections
}
