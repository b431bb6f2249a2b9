package exam

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/prepdeck/internal/leaderboard"
	"github.com/abhisek/prepdeck/internal/questiongen"
	"github.com/abhisek/prepdeck/internal/store"
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusInProgress:
		return "in-progress"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Deps are the session's collaborators. Generator is required; the rest
// are optional and skipped when nil.
type Deps struct {
	// Generator produces the question set at start.
	Generator questiongen.Generator

	// Board receives one entry per finished attempt with a student name.
	Board *leaderboard.Service

	// Attempts receives one history row per finished attempt.
	Attempts store.AttemptRepo

	// NewTicker overrides the countdown tick source. Nil means a real
	// one-second ticker.
	NewTicker NewTickerFunc
}

// Session is one test attempt by one student. The countdown tick and
// user-driven transitions both serialize through the session mutex.
type Session struct {
	mu sync.Mutex

	id      string
	cfg     Config
	student Student
	deps    Deps

	status         Status
	questions      []questiongen.Question
	current        int
	answers        map[int]string
	remaining      int // seconds
	confirmPending bool
	startedAt      time.Time
	result         *Result
	persistWarn    error

	countdown *countdown
}

// NewSession creates a session in the not-started state.
func NewSession(cfg Config, student Student, deps Deps) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}
	if deps.Generator == nil {
		return nil, errors.New("session requires a question generator")
	}
	if deps.NewTicker == nil {
		deps.NewTicker = newRealTicker
	}
	return &Session{
		id:      uuid.NewString(),
		cfg:     cfg,
		student: student,
		deps:    deps,
		status:  StatusNotStarted,
		answers: make(map[int]string),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Config returns the immutable test configuration.
func (s *Session) Config() Config { return s.cfg }

// Student returns the identity snapshot.
func (s *Session) Student() Student { return s.student }

// Start generates the question set and moves the session to in-progress.
// A failed or empty generation leaves the session in not-started and
// returns a GenerationError. Empty sets are rejected here so the result
// projection can never divide by zero.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.status != StatusNotStarted {
		defer s.mu.Unlock()
		return invalidTransition("start", s.status)
	}
	s.mu.Unlock()

	// The generation call is slow and must not hold the lock; the state
	// is re-checked before it is applied.
	questions, err := s.deps.Generator.Generate(ctx, s.cfg.GenerateInput())
	if err != nil {
		return &GenerationError{Err: err}
	}
	if len(questions) == 0 {
		return &GenerationError{Err: errors.New("empty question set")}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusNotStarted {
		return invalidTransition("start", s.status)
	}

	s.questions = questions
	s.current = 0
	s.answers = make(map[int]string, len(questions))
	s.remaining = int(s.cfg.Duration / time.Second)
	s.confirmPending = false
	s.result = nil
	s.persistWarn = nil
	s.startedAt = time.Now()
	s.status = StatusInProgress

	cd := newCountdown(s.deps.NewTicker(time.Second))
	s.countdown = cd
	go cd.run(s)

	return nil
}

// SelectAnswer records or overwrites the chosen option for the question
// at index. The index does not advance. An out-of-bounds index is ignored.
func (s *Session) SelectAnswer(index int, option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusInProgress {
		return invalidTransition("select answer", s.status)
	}
	if index < 0 || index >= len(s.questions) {
		return nil
	}
	s.answers[index] = option
	return nil
}

// Advance moves to the next question. On the last question it finishes
// the session instead.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusInProgress {
		return invalidTransition("advance", s.status)
	}
	if s.current < len(s.questions)-1 {
		s.current++
		return nil
	}
	s.finishLocked()
	return nil
}

// RequestEarlySubmit raises the confirmation gate. Nothing is submitted
// until ConfirmEarlySubmit.
func (s *Session) RequestEarlySubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusInProgress {
		return invalidTransition("request early submit", s.status)
	}
	s.confirmPending = true
	return nil
}

// CancelEarlySubmit lowers the confirmation gate.
func (s *Session) CancelEarlySubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusInProgress {
		return invalidTransition("cancel early submit", s.status)
	}
	s.confirmPending = false
	return nil
}

// ConfirmEarlySubmit finishes the session. It requires a preceding
// RequestEarlySubmit in the same attempt.
func (s *Session) ConfirmEarlySubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusInProgress {
		return invalidTransition("confirm early submit", s.status)
	}
	if !s.confirmPending {
		return invalidTransition("confirm early submit without request", s.status)
	}
	s.finishLocked()
	return nil
}

// Finish ends the attempt, freezing the result. Calling it again once
// finished is a no-op.
func (s *Session) Finish() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.status {
	case StatusFinished:
		return nil
	case StatusNotStarted:
		return invalidTransition("finish", s.status)
	}
	s.finishLocked()
	return nil
}

// finishLocked freezes the questions and answers, evaluates and projects
// the result, records the attempt, and cancels the countdown. Callers
// hold s.mu and have verified status is in-progress.
func (s *Session) finishLocked() {
	score := Score(s.questions, s.answers)
	pct, band, _ := Project(score, len(s.questions))

	now := time.Now()
	s.result = &Result{
		StudentName:  s.student.Name,
		StudentClass: s.student.Class,
		Mode:         s.cfg.Mode,
		Subject:      s.cfg.Label(),
		Score:        score,
		Total:        len(s.questions),
		Percentage:   pct,
		Band:         band,
		Sections:     ScoreBySubject(s.questions, s.answers),
		Duration:     s.cfg.Duration - time.Duration(s.remaining)*time.Second,
		FinishedAt:   now,
	}
	s.status = StatusFinished
	s.confirmPending = false

	if s.countdown != nil {
		s.countdown.halt()
		s.countdown = nil
	}

	s.persistWarn = s.persistResult(s.result)
}

// persistResult appends the leaderboard entry and the attempt history
// row. Failures degrade to a warning; the result stands either way.
func (s *Session) persistResult(r *Result) error {
	ctx := context.Background()
	var warn error

	if s.deps.Board != nil && r.StudentName != "" {
		err := s.deps.Board.Record(ctx, leaderboard.Entry{
			Name:     r.StudentName,
			Score:    r.Score,
			Subject:  r.Subject,
			TakenAt:  r.FinishedAt,
			PhotoRef: s.student.PhotoRef,
		})
		if err != nil {
			warn = fmt.Errorf("record leaderboard entry: %w", err)
		}
	}

	if s.deps.Attempts != nil {
		err := s.deps.Attempts.Append(ctx, store.AttemptData{
			ID:           s.id,
			StudentName:  r.StudentName,
			StudentClass: r.StudentClass,
			Mode:         string(r.Mode),
			Subject:      r.Subject,
			Score:        r.Score,
			Total:        r.Total,
			Percentage:   r.Percentage,
			Band:         string(r.Band),
			DurationSecs: int(r.Duration / time.Second),
			FinishedAt:   r.FinishedAt,
		})
		if err != nil && warn == nil {
			warn = fmt.Errorf("record attempt: %w", err)
		}
	}
	return warn
}

// Reset returns the session to not-started, keeping only the student
// identity. Any armed countdown is cancelled before the session can be
// started again.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusInProgress {
		return invalidTransition("reset", s.status)
	}

	if s.countdown != nil {
		s.countdown.halt()
		s.countdown = nil
	}

	s.id = uuid.NewString()
	s.status = StatusNotStarted
	s.questions = nil
	s.current = 0
	s.answers = make(map[int]string)
	s.remaining = 0
	s.confirmPending = false
	s.result = nil
	s.persistWarn = nil
	return nil
}

// tickFrom applies one countdown tick. Ticks from a countdown that is no
// longer the session's current one are discarded, so a stray tick after
// finish or reset can never touch a newer attempt.
func (s *Session) tickFrom(cd *countdown) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countdown != cd || s.status != StatusInProgress {
		return
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		s.finishLocked()
	}
}

// Status returns the lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Questions returns the frozen question list. The slice is shared; the
// session never mutates it after start.
func (s *Session) Questions() []questiongen.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions
}

// CurrentIndex returns the index of the question being displayed.
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentQuestion returns the active question, or nil before start.
func (s *Session) CurrentQuestion() *questiongen.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current < 0 || s.current >= len(s.questions) {
		return nil
	}
	q := s.questions[s.current]
	return &q
}

// AnswerFor returns the chosen option for the question at index, or
// false when unanswered.
func (s *Session) AnswerFor(index int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	opt, ok := s.answers[index]
	return opt, ok
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// Remaining returns the countdown in whole seconds.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// ConfirmPending reports whether the early-submit gate is raised.
func (s *Session) ConfirmPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmPending
}

// Result returns the frozen result, or nil until finished.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// PersistWarning reports a leaderboard or history write failure from the
// finish transition. The result itself is unaffected.
func (s *Session) PersistWarning() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistWarn
}
