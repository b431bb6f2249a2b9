package exam

import (
	"errors"
	"time"
)

// Band is the coarse classification of a finished attempt.
type Band string

const (
	BandPass    Band = "Pass"
	BandAverage Band = "Average"
	BandFail    Band = "Fail"
)

// ErrNoQuestions is returned when a result projection is attempted over
// zero questions. Sessions reject empty sets at start, so this only
// surfaces on direct misuse of Project.
var ErrNoQuestions = errors.New("cannot project a result over zero questions")

// Result is the frozen outcome of one finished attempt.
type Result struct {
	StudentName  string
	StudentClass string
	Mode         Mode
	Subject      string
	Score        int
	Total        int
	Percentage   float64
	Band         Band
	Sections     []SectionScore
	Duration     time.Duration
	FinishedAt   time.Time
}

// Project computes the percentage and band for a raw score.
func Project(score, total int) (float64, Band, error) {
	if total == 0 {
		return 0, "", ErrNoQuestions
	}
	pct := 100 * float64(score) / float64(total)
	return pct, BandFor(pct), nil
}

// BandFor maps a percentage to its band. The boundaries are a fixed
// business rule: 80 and above is Pass, 50 up to 80 is Average, everything
// below 50 is Fail.
func BandFor(pct float64) Band {
	switch {
	case pct >= 80:
		return BandPass
	case pct >= 50:
		return BandAverage
	default:
		return BandFail
	}
}
