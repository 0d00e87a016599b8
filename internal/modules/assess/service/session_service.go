package service

import (
	"studyhall/internal/modules/assess/domain"
	"studyhall/internal/platform/clock"
	apperrors "studyhall/internal/platform/errors"
)

// SessionService owns session construction and the local preconditions of the
// terminal submit. It holds no session state itself.
type SessionService struct {
	clk clock.Clock
}

func NewSessionService(clk clock.Clock) *SessionService {
	return &SessionService{clk: clk}
}

func (s *SessionService) Start(kind domain.Kind, set domain.ItemSet) *domain.Session {
	return domain.NewSession(kind, set.ID, set.Items, s.clk.Now())
}

func (s *SessionService) Restart(sess *domain.Session) error {
	return sess.Restart(s.clk.Now())
}

func (s *SessionService) Elapsed(sess *domain.Session) int {
	return sess.ElapsedSeconds(s.clk.Now())
}

// PrepareSubmission gates a quiz submit locally. It never mutates the
// session: an incomplete attempt fails here and the remote call is not made.
func (s *SessionService) PrepareSubmission(sess *domain.Session) (domain.Submission, error) {
	if sess.Kind() != domain.KindQuiz {
		return domain.Submission{}, apperrors.ErrInvalidInput
	}
	switch sess.Status() {
	case domain.StatusCompleted:
		return domain.Submission{}, apperrors.ErrSessionCompleted
	case domain.StatusEmpty:
		return domain.Submission{}, apperrors.ErrEmptySession
	}
	if !sess.AllAnswered() {
		return domain.Submission{}, apperrors.ErrIncompleteSubmission
	}
	return domain.Submission{
		QuizID:         sess.SetID(),
		Selections:     sess.Selections(),
		ElapsedSeconds: sess.ElapsedSeconds(s.clk.Now()),
	}, nil
}
