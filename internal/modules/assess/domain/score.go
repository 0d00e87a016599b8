package domain

import (
	"math"
	"time"
)

// Result is the immutable snapshot of a completed quiz. For submitted quizzes
// the figures come from the server and are authoritative; LocalScore below
// exists only as the client-side preview of the same computation.
type Result struct {
	Score          float64
	CorrectCount   int
	TotalQuestions int
	ElapsedSeconds int
	Items          []ItemResult
}

// ItemResult is one question of a finished quiz with the user's selection and
// the server's verdict.
type ItemResult struct {
	ItemID        string
	Prompt        string
	Choices       []string
	Selected      int
	CorrectChoice int
	Correct       bool
	Explanation   string
}

// ProgressPercent is (cursor+1)/len*100. Undefined for an empty session.
func (s *Session) ProgressPercent() (float64, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return float64(s.cursor+1) / float64(len(s.items)) * 100, true
}

// AccuracyPercent is the rounded per-card review accuracy. A card with no
// attempts scores 0 rather than dividing by zero.
func (s *Session) AccuracyPercent(index int) int {
	if index < 0 || index >= len(s.responses) {
		return 0
	}
	r := s.responses[index]
	if r.Attempts == 0 {
		return 0
	}
	return int(math.Round(float64(r.Correct) / float64(r.Attempts) * 100))
}

// LocalScore is the unrounded percentage of selections matching the correct
// choice. Undefined for an empty session; display layers round it.
func (s *Session) LocalScore() (float64, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return float64(s.CorrectSelections()) / float64(len(s.items)) * 100, true
}

// CorrectSelections counts indices whose selection matches the item's
// correct choice.
func (s *Session) CorrectSelections() int {
	n := 0
	for i, r := range s.responses {
		if r.Answered() && r.SelectedChoice == s.items[i].CorrectChoice {
			n++
		}
	}
	return n
}

// AnsweredCount counts quiz items with a selection.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, r := range s.responses {
		if r.Answered() {
			n++
		}
	}
	return n
}

// ElapsedSeconds is whole seconds since the session started.
func (s *Session) ElapsedSeconds(now time.Time) int {
	d := int(now.Sub(s.startedAt).Seconds())
	if d < 0 {
		return 0
	}
	return d
}
