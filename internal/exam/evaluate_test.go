package exam

import (
	"errors"
	"testing"

	"github.com/abhisek/prepdeck/internal/questiongen"
)

func fiveQuestions() []questiongen.Question {
	qs := make([]questiongen.Question, 5)
	subjects := []string{"Mathematics", "Mathematics", "Science", "Science", "English"}
	for i := range qs {
		qs[i] = questiongen.Question{
			Text:    "q",
			Options: []string{"a", "b", "c", "d"},
			Answer:  "b",
			Subject: subjects[i],
		}
	}
	return qs
}

func TestScore(t *testing.T) {
	qs := fiveQuestions()

	tests := []struct {
		name    string
		answers map[int]string
		want    int
	}{
		{"no answers", map[int]string{}, 0},
		{"all correct", map[int]string{0: "b", 1: "b", 2: "b", 3: "b", 4: "b"}, 5},
		{"three correct two unanswered", map[int]string{0: "b", 2: "b", 4: "b"}, 3},
		{"wrong answers count zero", map[int]string{0: "a", 1: "c", 2: "d"}, 0},
		{"mixed", map[int]string{0: "b", 1: "a", 3: "b"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(qs, tt.answers)
			if got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
			if got < 0 || got > len(qs) {
				t.Errorf("Score = %d out of bounds [0,%d]", got, len(qs))
			}
		})
	}
}

func TestScoreBySubject(t *testing.T) {
	qs := fiveQuestions()
	answers := map[int]string{0: "b", 1: "b", 2: "b", 4: "a"}

	sections := ScoreBySubject(qs, answers)
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}

	want := []SectionScore{
		{Subject: "Mathematics", Correct: 2, Total: 2},
		{Subject: "Science", Correct: 1, Total: 2},
		{Subject: "English", Correct: 0, Total: 1},
	}
	for i, w := range want {
		if sections[i] != w {
			t.Errorf("section %d: got %+v, want %+v", i, sections[i], w)
		}
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		total    int
		wantPct  float64
		wantBand Band
	}{
		{"perfect", 5, 5, 100, BandPass},
		{"exactly eighty", 4, 5, 80, BandPass},
		{"sixty", 3, 5, 60, BandAverage},
		{"exactly fifty", 1, 2, 50, BandAverage},
		{"below fifty", 2, 5, 40, BandFail},
		{"zero", 0, 5, 0, BandFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, band, err := Project(tt.score, tt.total)
			if err != nil {
				t.Fatalf("Project: %v", err)
			}
			if pct != tt.wantPct {
				t.Errorf("percentage = %v, want %v", pct, tt.wantPct)
			}
			if band != tt.wantBand {
				t.Errorf("band = %q, want %q", band, tt.wantBand)
			}
		})
	}
}

func TestProject_ZeroTotal(t *testing.T) {
	_, _, err := Project(0, 0)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("got %v, want ErrNoQuestions", err)
	}
}

func TestBandFor_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want Band
	}{
		{80, BandPass},
		{79.999, BandAverage},
		{50, BandAverage},
		{49.999, BandFail},
	}
	for _, tt := range tests {
		if got := BandFor(tt.pct); got != tt.want {
			t.Errorf("BandFor(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}
