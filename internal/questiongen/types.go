package questiongen

// Question is one generated multiple-choice question ready for display.
// Immutable once ingested.
type Question struct {
	// Text is the question prompt shown to the student.
	// Plain ASCII text, e.g. "Which gas do plants absorb during photosynthesis?"
	Text string

	// Options holds exactly 4 free-form answer strings.
	Options []string

	// Answer is the text of the correct option. Correctness is matched by
	// exact string equality against Options, so option text must be unique
	// within one question.
	Answer string

	// Subject is the section label this question belongs to, e.g.
	// "Mathematics". Matches the requested subject in subject mode and one
	// of the section subjects in full mock mode.
	Subject string
}

// Section is one subject slice of a full mock paper.
type Section struct {
	Subject string
	Count   int
}

// GenerateInput describes the question set to produce.
type GenerateInput struct {
	// Subject is the single subject for a subject-wise test. Ignored when
	// Sections is set.
	Subject string

	// Count is the number of questions for a subject-wise test. Ignored
	// when Sections is set.
	Count int

	// Sections, when non-empty, requests a full mock paper with the given
	// per-subject breakdown. The total is the sum of section counts.
	Sections []Section

	// PriorQuestions holds the Text of questions from earlier attempts in
	// this run, included in the prompt so the set is not a repeat.
	PriorQuestions []string
}

// Total returns the number of questions the input asks for.
func (in GenerateInput) Total() int {
	if len(in.Sections) == 0 {
		return in.Count
	}
	total := 0
	for _, s := range in.Sections {
		total += s.Count
	}
	return total
}
