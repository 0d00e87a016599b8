package domain

import (
	"time"

	apperrors "studyhall/internal/platform/errors"
)

type Status string

const (
	StatusEmpty      Status = "empty"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Session is the assessment state machine shared by flashcard review and quiz
// taking. It owns the response slice and the cursor; items are borrowed from
// the set the caller loaded and are never mutated here. All methods are
// synchronous and local — remote persistence is the caller's concern.
type Session struct {
	kind      Kind
	setID     string
	items     []Item
	responses []Response
	cursor    int
	startedAt time.Time
	status    Status
	result    *Result
}

// NewSession initializes the response state for the given items: one default
// response per item, cursor at 0. An empty item list leaves the session in
// the empty status with no valid cursor; navigation on it is a no-op.
func NewSession(kind Kind, setID string, items []Item, now time.Time) *Session {
	s := &Session{
		kind:      kind,
		setID:     setID,
		items:     items,
		startedAt: now,
		status:    StatusEmpty,
	}
	if len(items) > 0 {
		s.responses = make([]Response, len(items))
		for i := range s.responses {
			s.responses[i] = newResponse()
		}
		s.status = StatusInProgress
	}
	return s
}

func (s *Session) Kind() Kind           { return s.kind }
func (s *Session) SetID() string        { return s.setID }
func (s *Session) Status() Status       { return s.status }
func (s *Session) Len() int             { return len(s.items) }
func (s *Session) StartedAt() time.Time { return s.startedAt }
func (s *Session) Items() []Item        { return s.items }

// Cursor returns the current position; ok is false for an empty session.
func (s *Session) Cursor() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.cursor, true
}

// Current returns the item and response under the cursor.
func (s *Session) Current() (Item, Response, bool) {
	if len(s.items) == 0 {
		return Item{}, Response{}, false
	}
	return s.items[s.cursor], s.responses[s.cursor], true
}

func (s *Session) ResponseAt(index int) (Response, bool) {
	if index < 0 || index >= len(s.responses) {
		return Response{}, false
	}
	return s.responses[index], true
}

// Advance moves the cursor forward, clamped at the last item. Moving the
// cursor hides the reveal side in flashcard mode; quiz selections persist.
func (s *Session) Advance() {
	if len(s.items) == 0 || s.cursor >= len(s.items)-1 {
		return
	}
	s.cursor++
	s.hideReveal()
}

// Retreat moves the cursor back, clamped at 0.
func (s *Session) Retreat() {
	if len(s.items) == 0 || s.cursor == 0 {
		return
	}
	s.cursor--
	s.hideReveal()
}

// JumpTo sets the cursor directly. Out-of-range targets (including any index
// on an empty session) fail with ErrOutOfRange and leave the cursor alone.
func (s *Session) JumpTo(index int) error {
	if index < 0 || index >= len(s.items) {
		return apperrors.ErrOutOfRange
	}
	s.cursor = index
	s.hideReveal()
	return nil
}

func (s *Session) hideReveal() {
	if s.kind == KindFlashcard {
		s.responses[s.cursor].Revealed = false
	}
}

// Flip toggles the reveal side of the current flashcard.
func (s *Session) Flip() {
	if s.kind != KindFlashcard || len(s.items) == 0 {
		return
	}
	s.responses[s.cursor].Revealed = !s.responses[s.cursor].Revealed
}

// Select records a quiz choice for the item at index. Re-selecting overwrites
// the previous choice and never touches the attempt counters; answers may be
// changed freely until submission.
func (s *Session) Select(index, choice int) error {
	if s.kind != KindQuiz {
		return apperrors.ErrInvalidInput
	}
	if s.status == StatusCompleted {
		return apperrors.ErrSessionCompleted
	}
	if index < 0 || index >= len(s.items) {
		return apperrors.ErrOutOfRange
	}
	if choice < 0 || choice >= len(s.items[index].Choices) {
		return apperrors.ErrInvalidInput
	}
	s.responses[index].SelectedChoice = choice
	return nil
}

// RecordReview registers a user-asserted flashcard outcome. Every call is a
// new attempt: counters always increment, repeated reviews of the same card
// included.
func (s *Session) RecordReview(index int, outcome Outcome) error {
	if s.kind != KindFlashcard {
		return apperrors.ErrInvalidInput
	}
	if outcome != OutcomeCorrect && outcome != OutcomeIncorrect {
		return apperrors.ErrInvalidInput
	}
	if index < 0 || index >= len(s.items) {
		return apperrors.ErrOutOfRange
	}
	r := &s.responses[index]
	r.Outcome = outcome
	r.Attempts++
	if outcome == OutcomeCorrect {
		r.Correct++
	}
	return nil
}

// AllAnswered is the quiz submission gate: true once every item has a
// selection.
func (s *Session) AllAnswered() bool {
	if s.kind != KindQuiz || len(s.items) == 0 {
		return false
	}
	for _, r := range s.responses {
		if !r.Answered() {
			return false
		}
	}
	return true
}

// Selections returns the ordered selected-choice indices for submission.
func (s *Session) Selections() []int {
	out := make([]int, len(s.responses))
	for i, r := range s.responses {
		out[i] = r.SelectedChoice
	}
	return out
}

// Complete freezes the result snapshot delivered by the server and flips the
// session to completed. The transition is one-directional; responses are
// immutable afterwards.
func (s *Session) Complete(result Result) error {
	if s.kind != KindQuiz {
		return apperrors.ErrInvalidInput
	}
	if s.status == StatusCompleted {
		return apperrors.ErrSessionCompleted
	}
	if s.status != StatusInProgress {
		return apperrors.ErrEmptySession
	}
	frozen := result
	s.result = &frozen
	s.status = StatusCompleted
	return nil
}

// Result returns the frozen snapshot of a completed quiz.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Restart rewinds a flashcard session to the first card with reveal and
// outcome state cleared. Attempt and correct counters survive: review history
// is cumulative across restarts. Quiz sessions cannot restart in place — a
// finished quiz is discarded and a new one generated.
func (s *Session) Restart(now time.Time) error {
	if s.kind != KindFlashcard {
		return apperrors.ErrInvalidInput
	}
	if len(s.items) == 0 {
		return apperrors.ErrEmptySession
	}
	for i := range s.responses {
		s.responses[i].Outcome = OutcomeNone
		s.responses[i].Revealed = false
	}
	s.cursor = 0
	s.startedAt = now
	return nil
}
