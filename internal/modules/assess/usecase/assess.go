package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"studyhall/internal/modules/assess/domain"
	"studyhall/internal/modules/assess/dto"
	assessin "studyhall/internal/modules/assess/port/in"
	assessout "studyhall/internal/modules/assess/port/out"
	"studyhall/internal/modules/assess/service"
	apperrors "studyhall/internal/platform/errors"
)

// Interactor is the session controller: it owns the single live session of
// the page instance and routes every mutation through the domain operations.
// Remote calls run outside the lock, so navigation stays possible while a
// review acknowledgment is in flight; the terminal submit is serialized by a
// busy flag instead of a lock.
type Interactor struct {
	svc       *service.SessionService
	cards     assessout.FlashcardSource
	recorder  assessout.ReviewRecorder
	quizzes   assessout.QuizSource
	submitter assessout.QuizSubmitter
	log       *slog.Logger

	mu         sync.Mutex
	sess       *domain.Session
	submitting bool
}

func NewInteractor(
	svc *service.SessionService,
	cards assessout.FlashcardSource,
	recorder assessout.ReviewRecorder,
	quizzes assessout.QuizSource,
	submitter assessout.QuizSubmitter,
	log *slog.Logger,
) assessin.Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Interactor{
		svc:       svc,
		cards:     cards,
		recorder:  recorder,
		quizzes:   quizzes,
		submitter: submitter,
		log:       log,
	}
}

// ─── loading and generating ──────────────────────────────────────────────────

func (i *Interactor) LoadFlashcards(ctx context.Context, noteID string) (dto.SessionOutput, error) {
	if noteID == "" {
		return dto.SessionOutput{}, apperrors.ErrInvalidInput
	}
	set, err := i.cards.Load(ctx, noteID)
	if err != nil {
		return dto.SessionOutput{}, fmt.Errorf("%w: %s", apperrors.ErrLoad, err)
	}
	return i.install(domain.KindFlashcard, set), nil
}

func (i *Interactor) GenerateFlashcards(ctx context.Context, noteID string, count int) (dto.SessionOutput, error) {
	if noteID == "" || count <= 0 {
		return dto.SessionOutput{}, apperrors.ErrInvalidInput
	}
	set, err := i.cards.Generate(ctx, noteID, count)
	if err != nil {
		return dto.SessionOutput{}, fmt.Errorf("%w: %s", apperrors.ErrGeneration, err)
	}
	return i.install(domain.KindFlashcard, set), nil
}

func (i *Interactor) GenerateQuiz(ctx context.Context, noteID string, count int) (dto.SessionOutput, error) {
	if noteID == "" || count <= 0 {
		return dto.SessionOutput{}, apperrors.ErrInvalidInput
	}
	set, err := i.quizzes.Generate(ctx, noteID, count)
	if err != nil {
		return dto.SessionOutput{}, fmt.Errorf("%w: %s", apperrors.ErrGeneration, err)
	}
	return i.install(domain.KindQuiz, set), nil
}

// install replaces the live session wholesale. A submit still in flight for
// the old session will find its session gone and discard the late result.
func (i *Interactor) install(kind domain.Kind, set domain.ItemSet) dto.SessionOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.sess = i.svc.Start(kind, set)
	return i.snapshot()
}

// ─── local operations ────────────────────────────────────────────────────────

func (i *Interactor) Session() (dto.SessionOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.sess == nil {
		return dto.SessionOutput{}, apperrors.ErrNoSession
	}
	return i.snapshot(), nil
}

func (i *Interactor) Advance() (dto.SessionOutput, error) {
	return i.navigate(func(s *domain.Session) error { s.Advance(); return nil })
}

func (i *Interactor) Retreat() (dto.SessionOutput, error) {
	return i.navigate(func(s *domain.Session) error { s.Retreat(); return nil })
}

func (i *Interactor) JumpTo(index int) (dto.SessionOutput, error) {
	return i.navigate(func(s *domain.Session) error { return s.JumpTo(index) })
}

func (i *Interactor) Flip() (dto.SessionOutput, error) {
	return i.navigate(func(s *domain.Session) error { s.Flip(); return nil })
}

func (i *Interactor) Select(choice int) (dto.SessionOutput, error) {
	return i.navigate(func(s *domain.Session) error {
		cursor, ok := s.Cursor()
		if !ok {
			return apperrors.ErrEmptySession
		}
		return s.Select(cursor, choice)
	})
}

func (i *Interactor) Restart() (dto.SessionOutput, error) {
	return i.navigate(func(s *domain.Session) error { return i.svc.Restart(s) })
}

func (i *Interactor) Discard() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.sess = nil
}

func (i *Interactor) navigate(op func(*domain.Session) error) (dto.SessionOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.sess == nil {
		return dto.SessionOutput{}, apperrors.ErrNoSession
	}
	if err := op(i.sess); err != nil {
		return dto.SessionOutput{}, err
	}
	return i.snapshot(), nil
}

// ─── remote-backed operations ────────────────────────────────────────────────

// RecordReview is the named two-phase contract: the local phase (counters,
// auto-advance) always succeeds synchronously; the remote acknowledgment is a
// separate, independently failable step reported via SyncErr and never rolled
// back. Local review progress outranks strict server consistency here.
func (i *Interactor) RecordReview(ctx context.Context, correct bool) (dto.ReviewOutput, error) {
	outcome := domain.OutcomeIncorrect
	if correct {
		outcome = domain.OutcomeCorrect
	}

	i.mu.Lock()
	if i.sess == nil {
		i.mu.Unlock()
		return dto.ReviewOutput{}, apperrors.ErrNoSession
	}
	sess := i.sess
	cursor, ok := sess.Cursor()
	if !ok {
		i.mu.Unlock()
		return dto.ReviewOutput{}, apperrors.ErrEmptySession
	}
	item, _, _ := sess.Current()
	if err := sess.RecordReview(cursor, outcome); err != nil {
		i.mu.Unlock()
		return dto.ReviewOutput{}, err
	}
	finished := cursor == sess.Len()-1
	if !finished {
		sess.Advance()
	}
	resp, _ := sess.ResponseAt(cursor)
	out := dto.ReviewOutput{
		Session:  i.snapshot(),
		Attempts: resp.Attempts,
		Correct:  resp.Correct,
		Accuracy: sess.AccuracyPercent(cursor),
		Advanced: !finished,
		Finished: finished,
	}
	i.mu.Unlock()

	if err := i.recorder.Record(ctx, item.ID, correct); err != nil {
		i.log.Warn("review acknowledgment failed", "item_id", item.ID, "error", err)
		out.SyncErr = fmt.Sprintf("%s: %s", apperrors.ErrRecordReview, err)
	}
	return out, nil
}

// Submit runs the terminal quiz transition. Local state is deferred until the
// authoritative server result arrives: a failed submit leaves the session
// in_progress for a retry, and a result landing after the session was
// replaced is discarded without touching the new session.
func (i *Interactor) Submit(ctx context.Context) (dto.ResultOutput, error) {
	i.mu.Lock()
	if i.sess == nil {
		i.mu.Unlock()
		return dto.ResultOutput{}, apperrors.ErrNoSession
	}
	if i.submitting {
		i.mu.Unlock()
		return dto.ResultOutput{}, apperrors.ErrSubmitInFlight
	}
	sess := i.sess
	sub, err := i.svc.PrepareSubmission(sess)
	if err != nil {
		i.mu.Unlock()
		return dto.ResultOutput{}, err
	}
	i.submitting = true
	i.mu.Unlock()

	result, submitErr := i.submitter.Submit(ctx, sub)

	i.mu.Lock()
	defer i.mu.Unlock()
	i.submitting = false
	if submitErr != nil {
		i.log.Warn("quiz submission failed", "quiz_id", sub.QuizID, "error", submitErr)
		return dto.ResultOutput{}, fmt.Errorf("%w: %s", apperrors.ErrSubmission, submitErr)
	}
	if i.sess == sess {
		if err := sess.Complete(result); err != nil {
			return dto.ResultOutput{}, err
		}
	}
	return toResultOutput(result), nil
}

// SubmitAnswers records a full ordered answer list and submits in one step,
// for non-interactive callers.
func (i *Interactor) SubmitAnswers(ctx context.Context, answers []int) (dto.ResultOutput, error) {
	i.mu.Lock()
	if i.sess == nil {
		i.mu.Unlock()
		return dto.ResultOutput{}, apperrors.ErrNoSession
	}
	if len(answers) != i.sess.Len() {
		i.mu.Unlock()
		return dto.ResultOutput{}, apperrors.ErrIncompleteSubmission
	}
	for index, choice := range answers {
		if err := i.sess.Select(index, choice); err != nil {
			i.mu.Unlock()
			return dto.ResultOutput{}, err
		}
	}
	i.mu.Unlock()
	return i.Submit(ctx)
}

func (i *Interactor) Result() (dto.ResultOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.sess == nil {
		return dto.ResultOutput{}, apperrors.ErrNoSession
	}
	result, ok := i.sess.Result()
	if !ok {
		return dto.ResultOutput{}, apperrors.ErrNotFound
	}
	return toResultOutput(result), nil
}

// ─── snapshots ───────────────────────────────────────────────────────────────

// snapshot must be called with the lock held.
func (i *Interactor) snapshot() dto.SessionOutput {
	sess := i.sess
	out := dto.SessionOutput{
		Kind:   string(sess.Kind()),
		Status: string(sess.Status()),
		Total:  sess.Len(),
	}
	cursor, ok := sess.Cursor()
	if !ok {
		return out
	}
	out.Cursor = cursor
	out.Elapsed = i.svc.Elapsed(sess)
	if progress, ok := sess.ProgressPercent(); ok {
		out.Progress = progress
	}
	item, resp, _ := sess.Current()
	switch sess.Kind() {
	case domain.KindFlashcard:
		out.Card = &dto.CardView{
			Index:        cursor,
			Prompt:       item.Prompt,
			Reveal:       item.Reveal,
			Revealed:     resp.Revealed,
			Difficulty:   item.Difficulty,
			Attempts:     resp.Attempts,
			Correct:      resp.Correct,
			Accuracy:     sess.AccuracyPercent(cursor),
			TotalReviews: item.ReviewCount,
			TotalCorrect: item.CorrectCount,
		}
	case domain.KindQuiz:
		out.Question = &dto.QuestionView{
			Index:    cursor,
			Prompt:   item.Prompt,
			Choices:  item.Choices,
			Selected: resp.SelectedChoice,
		}
		out.Answered = make([]bool, sess.Len())
		for index := range out.Answered {
			if r, ok := sess.ResponseAt(index); ok {
				out.Answered[index] = r.Answered()
			}
		}
	}
	return out
}

func toResultOutput(result domain.Result) dto.ResultOutput {
	out := dto.ResultOutput{
		Score:          result.Score,
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		ElapsedSeconds: result.ElapsedSeconds,
		Questions:      make([]dto.QuestionResult, len(result.Items)),
	}
	for index, item := range result.Items {
		out.Questions[index] = dto.QuestionResult{
			Prompt:        item.Prompt,
			Choices:       item.Choices,
			Selected:      item.Selected,
			CorrectChoice: item.CorrectChoice,
			Correct:       item.Correct,
			Explanation:   item.Explanation,
		}
	}
	return out
}
