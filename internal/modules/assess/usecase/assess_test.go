package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"studyhall/internal/modules/assess/domain"
	assessin "studyhall/internal/modules/assess/port/in"
	"studyhall/internal/modules/assess/service"
	"studyhall/internal/modules/assess/usecase"
	apperrors "studyhall/internal/platform/errors"
	"studyhall/internal/platform/logger"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type fakeCards struct {
	set      domain.ItemSet
	loadErr  error
	genCount int
}

func (f *fakeCards) Load(context.Context, string) (domain.ItemSet, error) {
	return f.set, f.loadErr
}

func (f *fakeCards) Generate(_ context.Context, _ string, count int) (domain.ItemSet, error) {
	f.genCount = count
	return f.set, nil
}

type fakeRecorder struct {
	itemIDs []string
	correct []bool
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, itemID string, correct bool) error {
	f.itemIDs = append(f.itemIDs, itemID)
	f.correct = append(f.correct, correct)
	return f.err
}

type fakeQuizzes struct{ set domain.ItemSet }

func (f *fakeQuizzes) Generate(context.Context, string, int) (domain.ItemSet, error) {
	return f.set, nil
}

type fakeSubmitter struct {
	result  domain.Result
	err     error
	subs    []domain.Submission
	started chan struct{}
	release chan struct{}
}

func (f *fakeSubmitter) Submit(_ context.Context, sub domain.Submission) (domain.Result, error) {
	f.subs = append(f.subs, sub)
	if f.started != nil {
		f.started <- struct{}{}
		<-f.release
	}
	return f.result, f.err
}

func cardSet(n int) domain.ItemSet {
	set := domain.ItemSet{}
	for i := 0; i < n; i++ {
		set.Items = append(set.Items, domain.Item{
			ID:     "card-" + string(rune('a'+i)),
			Prompt: "front",
			Reveal: "back",
		})
	}
	return set
}

func quizSet() domain.ItemSet {
	return domain.ItemSet{ID: "quiz-1", Items: []domain.Item{
		{ID: "quiz-1/0", Prompt: "one", Choices: []string{"a", "b"}, CorrectChoice: 0},
		{ID: "quiz-1/1", Prompt: "two", Choices: []string{"a", "b"}, CorrectChoice: 1},
	}}
}

// answerAll selects the first choice on every question of the live two-item
// quiz so the submit gate opens.
func answerAll(t *testing.T, uc assessin.Usecase) {
	t.Helper()
	if _, err := uc.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := uc.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if _, err := uc.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
}

func TestLoadFlashcardsInstallsSessionAndEmptySetIsNormal(t *testing.T) {
	t.Parallel()
	cards := &fakeCards{set: cardSet(3)}
	clk := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewSessionService(clk), cards, &fakeRecorder{}, &fakeQuizzes{}, &fakeSubmitter{}, logger.Discard())

	out, err := uc.LoadFlashcards(context.Background(), "note-1")
	if err != nil {
		t.Fatalf("load flashcards: %v", err)
	}
	if out.Status != "in_progress" || out.Total != 3 || out.Card == nil {
		t.Fatalf("unexpected session %+v", out)
	}
	if out.Card.Prompt != "front" || out.Card.Revealed {
		t.Fatalf("first card must start on the front side, got %+v", out.Card)
	}

	cards.set = domain.ItemSet{}
	out, err = uc.LoadFlashcards(context.Background(), "note-2")
	if err != nil {
		t.Fatalf("empty set must not fail: %v", err)
	}
	if out.Status != "empty" || out.Card != nil {
		t.Fatalf("expected empty session, got %+v", out)
	}

	if _, err := uc.LoadFlashcards(context.Background(), ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank note id must fail, got %v", err)
	}

	cards.loadErr = errors.New("boom")
	if _, err := uc.LoadFlashcards(context.Background(), "note-3"); !errors.Is(err, apperrors.ErrLoad) {
		t.Fatalf("expected load error wrap, got %v", err)
	}
}

func TestCardViewCarriesTheServerLifetimeCounters(t *testing.T) {
	t.Parallel()
	set := domain.ItemSet{Items: []domain.Item{
		{ID: "card-a", Prompt: "front", Reveal: "back", ReviewCount: 9, CorrectCount: 6},
		{ID: "card-b", Prompt: "front", Reveal: "back"},
	}}
	clk := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewSessionService(clk), &fakeCards{set: set}, &fakeRecorder{}, &fakeQuizzes{}, &fakeSubmitter{}, logger.Discard())

	out, err := uc.LoadFlashcards(context.Background(), "note-1")
	if err != nil {
		t.Fatalf("load flashcards: %v", err)
	}
	if out.Card.TotalReviews != 9 || out.Card.TotalCorrect != 6 {
		t.Fatalf("lifetime counters must reach the view, got %+v", out.Card)
	}
	if out.Card.Attempts != 0 || out.Card.Correct != 0 {
		t.Fatalf("lifetime counters must not seed the session counters, got %+v", out.Card)
	}

	if _, err := uc.RecordReview(context.Background(), true); err != nil {
		t.Fatalf("record review: %v", err)
	}
	sess, err := uc.Session()
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if sess.Card.TotalReviews != 0 || sess.Card.TotalCorrect != 0 {
		t.Fatalf("second card carries its own lifetime counters, got %+v", sess.Card)
	}
}

func TestRecordReviewAppliesLocallyThenAcknowledgesRemotely(t *testing.T) {
	t.Parallel()
	recorder := &fakeRecorder{}
	clk := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewSessionService(clk), &fakeCards{set: cardSet(2)}, recorder, &fakeQuizzes{}, &fakeSubmitter{}, logger.Discard())
	if _, err := uc.LoadFlashcards(context.Background(), "note-1"); err != nil {
		t.Fatalf("load: %v", err)
	}

	out, err := uc.RecordReview(context.Background(), true)
	if err != nil {
		t.Fatalf("record review: %v", err)
	}
	if !out.Advanced || out.Finished {
		t.Fatalf("first-card review must auto-advance, got %+v", out)
	}
	if out.Attempts != 1 || out.Correct != 1 || out.Accuracy != 100 {
		t.Fatalf("unexpected counters %+v", out)
	}
	if out.Session.Cursor != 1 {
		t.Fatalf("cursor must sit on the next card, got %d", out.Session.Cursor)
	}
	if len(recorder.itemIDs) != 1 || recorder.itemIDs[0] != "card-a" || !recorder.correct[0] {
		t.Fatalf("remote ack must carry the reviewed item, got %v %v", recorder.itemIDs, recorder.correct)
	}

	out, err = uc.RecordReview(context.Background(), false)
	if err != nil {
		t.Fatalf("record review: %v", err)
	}
	if !out.Finished || out.Advanced {
		t.Fatalf("last-card review must finish without advancing, got %+v", out)
	}
	if out.Session.Cursor != 1 {
		t.Fatalf("cursor must stay on the last card, got %d", out.Session.Cursor)
	}
}

func TestRecordReviewKeepsLocalStateWhenTheAcknowledgmentFails(t *testing.T) {
	t.Parallel()
	recorder := &fakeRecorder{err: errors.New("network down")}
	clk := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewSessionService(clk), &fakeCards{set: cardSet(2)}, recorder, &fakeQuizzes{}, &fakeSubmitter{}, logger.Discard())
	if _, err := uc.LoadFlashcards(context.Background(), "note-1"); err != nil {
		t.Fatalf("load: %v", err)
	}

	out, err := uc.RecordReview(context.Background(), true)
	if err != nil {
		t.Fatalf("a failed ack must not surface as an error: %v", err)
	}
	if out.SyncErr == "" || !strings.Contains(out.SyncErr, "network down") {
		t.Fatalf("expected sync error, got %q", out.SyncErr)
	}
	if out.Attempts != 1 || out.Correct != 1 || !out.Advanced {
		t.Fatalf("local phase must stand, got %+v", out)
	}
	sess, err := uc.Session()
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if sess.Cursor != 1 {
		t.Fatalf("advance must not roll back, got cursor %d", sess.Cursor)
	}
}

func TestSubmitGatesLocallyAndCompletesFromTheServerResult(t *testing.T) {
	t.Parallel()
	submitter := &fakeSubmitter{result: domain.Result{
		Score: 50, CorrectCount: 1, TotalQuestions: 2, ElapsedSeconds: 30,
		Items: []domain.ItemResult{
			{Prompt: "one", Selected: 0, CorrectChoice: 0, Correct: true},
			{Prompt: "two", Selected: 0, CorrectChoice: 1, Correct: false, Explanation: "because"},
		},
	}}
	clk := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewSessionService(clk), &fakeCards{}, &fakeRecorder{}, &fakeQuizzes{set: quizSet()}, submitter, logger.Discard())
	if _, err := uc.GenerateQuiz(context.Background(), "note-1", 2); err != nil {
		t.Fatalf("generate quiz: %v", err)
	}

	if _, err := uc.Submit(context.Background()); !errors.Is(err, apperrors.ErrIncompleteSubmission) {
		t.Fatalf("unanswered quiz must be gated locally, got %v", err)
	}
	if len(submitter.subs) != 0 {
		t.Fatalf("gated submit must never reach the server")
	}

	if _, err := uc.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := uc.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if _, err := uc.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	clk.now = clk.now.Add(30 * time.Second)

	result, err := uc.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 50 || result.CorrectCount != 1 || len(result.Questions) != 2 {
		t.Fatalf("unexpected result %+v", result)
	}
	if submitter.subs[0].QuizID != "quiz-1" || submitter.subs[0].ElapsedSeconds != 30 {
		t.Fatalf("unexpected submission %+v", submitter.subs[0])
	}
	if got := submitter.subs[0].Selections; len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Fatalf("unexpected selections %v", got)
	}

	sess, err := uc.Session()
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if sess.Status != "completed" {
		t.Fatalf("expected completed session, got %s", sess.Status)
	}
	stored, err := uc.Result()
	if err != nil || stored.CorrectCount != 1 {
		t.Fatalf("result must be frozen on the session, got %+v err=%v", stored, err)
	}
	if _, err := uc.Submit(context.Background()); !errors.Is(err, apperrors.ErrSessionCompleted) {
		t.Fatalf("resubmit must fail, got %v", err)
	}
}

func TestFailedSubmitLeavesTheSessionInProgressForRetry(t *testing.T) {
	t.Parallel()
	submitter := &fakeSubmitter{err: errors.New("503")}
	clk := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewSessionService(clk), &fakeCards{}, &fakeRecorder{}, &fakeQuizzes{set: quizSet()}, submitter, logger.Discard())
	if _, err := uc.GenerateQuiz(context.Background(), "note-1", 2); err != nil {
		t.Fatalf("generate quiz: %v", err)
	}
	if _, err := uc.SubmitAnswers(context.Background(), []int{0, 1}); !errors.Is(err, apperrors.ErrSubmission) {
		t.Fatalf("expected submission error wrap, got %v", err)
	}

	sess, err := uc.Session()
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if sess.Status != "in_progress" {
		t.Fatalf("failed submit must leave the session open, got %s", sess.Status)
	}

	submitter.err = nil
	submitter.result = domain.Result{Score: 100, CorrectCount: 2, TotalQuestions: 2}
	result, err := uc.Submit(context.Background())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if result.Score != 100 {
		t.Fatalf("unexpected retry result %+v", result)
	}
}

func TestSubmitAnswersRequiresAFullAnswerList(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewSessionService(clk), &fakeCards{}, &fakeRecorder{}, &fakeQuizzes{set: quizSet()}, &fakeSubmitter{}, logger.Discard())
	if _, err := uc.GenerateQuiz(context.Background(), "note-1", 2); err != nil {
		t.Fatalf("generate quiz: %v", err)
	}
	if _, err := uc.SubmitAnswers(context.Background(), []int{0}); !errors.Is(err, apperrors.ErrIncompleteSubmission) {
		t.Fatalf("short answer list must fail, got %v", err)
	}
}

func TestConcurrentSubmitIsRejectedWhileOneIsInFlight(t *testing.T) {
	t.Parallel()
	submitter := &fakeSubmitter{
		result:  domain.Result{Score: 100, CorrectCount: 2, TotalQuestions: 2},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	clk := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewSessionService(clk), &fakeCards{}, &fakeRecorder{}, &fakeQuizzes{set: quizSet()}, submitter, logger.Discard())
	if _, err := uc.GenerateQuiz(context.Background(), "note-1", 2); err != nil {
		t.Fatalf("generate quiz: %v", err)
	}
	answerAll(t, uc)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Submit(context.Background())
		done <- err
	}()
	<-submitter.started

	if _, err := uc.Submit(context.Background()); !errors.Is(err, apperrors.ErrSubmitInFlight) {
		t.Fatalf("second submit must be rejected while busy, got %v", err)
	}

	close(submitter.release)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
}

func TestLateResultIsDiscardedWhenTheSessionWasReplaced(t *testing.T) {
	t.Parallel()
	submitter := &fakeSubmitter{
		result:  domain.Result{Score: 100, CorrectCount: 2, TotalQuestions: 2},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	clk := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewSessionService(clk), &fakeCards{}, &fakeRecorder{}, &fakeQuizzes{set: quizSet()}, submitter, logger.Discard())
	if _, err := uc.GenerateQuiz(context.Background(), "note-1", 2); err != nil {
		t.Fatalf("generate quiz: %v", err)
	}
	answerAll(t, uc)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Submit(context.Background())
		done <- err
	}()
	<-submitter.started

	if _, err := uc.GenerateQuiz(context.Background(), "note-1", 2); err != nil {
		t.Fatalf("regenerate during submit: %v", err)
	}
	close(submitter.release)
	if err := <-done; err != nil {
		t.Fatalf("in-flight submit still returns its result: %v", err)
	}

	sess, err := uc.Session()
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if sess.Status != "in_progress" {
		t.Fatalf("late result must not complete the replacement session, got %s", sess.Status)
	}
	if _, err := uc.Result(); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("replacement session has no result, got %v", err)
	}
}
