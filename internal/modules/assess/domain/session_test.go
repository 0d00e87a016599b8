package domain_test

import (
	"testing"
	"time"

	"studyhall/internal/modules/assess/domain"
	apperrors "studyhall/internal/platform/errors"
)

func cards(n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = domain.Item{ID: string(rune('a' + i)), Prompt: "front", Reveal: "back"}
	}
	return items
}

func questions() []domain.Item {
	return []domain.Item{
		{ID: "q/0", Prompt: "one", Choices: []string{"a", "b", "c", "d"}, CorrectChoice: 1},
		{ID: "q/1", Prompt: "two", Choices: []string{"a", "b", "c", "d"}, CorrectChoice: 2},
		{ID: "q/2", Prompt: "three", Choices: []string{"a", "b"}, CorrectChoice: 0},
	}
}

var t0 = time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

func TestNewSessionStatusAndEmptySessionNavigationIsNoOp(t *testing.T) {
	t.Parallel()
	sess := domain.NewSession(domain.KindFlashcard, "", cards(3), t0)
	if sess.Status() != domain.StatusInProgress || sess.Len() != 3 {
		t.Fatalf("expected in_progress with 3 items, got %s/%d", sess.Status(), sess.Len())
	}

	empty := domain.NewSession(domain.KindFlashcard, "", nil, t0)
	if empty.Status() != domain.StatusEmpty {
		t.Fatalf("empty set must start empty, got %s", empty.Status())
	}
	if _, ok := empty.Cursor(); ok {
		t.Fatalf("empty session must report no cursor")
	}
	empty.Advance()
	empty.Retreat()
	empty.Flip()
	if err := empty.JumpTo(0); err != apperrors.ErrOutOfRange {
		t.Fatalf("jump on empty session should be out of range, got %v", err)
	}
	if err := empty.Restart(t0); err != apperrors.ErrEmptySession {
		t.Fatalf("restart on empty session should fail, got %v", err)
	}
}

func TestCursorClampsAtBothEndsAndJumpToRejectsOutOfRange(t *testing.T) {
	t.Parallel()
	sess := domain.NewSession(domain.KindFlashcard, "", cards(3), t0)

	sess.Retreat()
	if cur, _ := sess.Cursor(); cur != 0 {
		t.Fatalf("retreat at first card must clamp at 0, got %d", cur)
	}
	sess.Advance()
	sess.Advance()
	sess.Advance()
	sess.Advance()
	if cur, _ := sess.Cursor(); cur != 2 {
		t.Fatalf("advance past last card must clamp at 2, got %d", cur)
	}
	if err := sess.JumpTo(3); err != apperrors.ErrOutOfRange {
		t.Fatalf("expected out of range for index 3, got %v", err)
	}
	if err := sess.JumpTo(-1); err != apperrors.ErrOutOfRange {
		t.Fatalf("expected out of range for index -1, got %v", err)
	}
	if cur, _ := sess.Cursor(); cur != 2 {
		t.Fatalf("failed jump must leave cursor alone, got %d", cur)
	}
	if err := sess.JumpTo(0); err != nil {
		t.Fatalf("in-range jump: %v", err)
	}
}

func TestFlipTogglesAndAnyCursorMoveHidesTheReveal(t *testing.T) {
	t.Parallel()
	sess := domain.NewSession(domain.KindFlashcard, "", cards(3), t0)

	sess.Flip()
	if _, r, _ := sess.Current(); !r.Revealed {
		t.Fatalf("flip must reveal the card")
	}
	sess.Flip()
	if _, r, _ := sess.Current(); r.Revealed {
		t.Fatalf("second flip must hide the card")
	}

	sess.Flip()
	sess.Advance()
	if _, r, _ := sess.Current(); r.Revealed {
		t.Fatalf("advance must land on the front side")
	}
	sess.Flip()
	sess.Retreat()
	if _, r, _ := sess.Current(); r.Revealed {
		t.Fatalf("retreat must land on the front side")
	}
	sess.Flip()
	if err := sess.JumpTo(2); err != nil {
		t.Fatalf("jump: %v", err)
	}
	if _, r, _ := sess.Current(); r.Revealed {
		t.Fatalf("jump must land on the front side")
	}
}

func TestRecordReviewAccumulatesWithoutDeduplication(t *testing.T) {
	t.Parallel()
	sess := domain.NewSession(domain.KindFlashcard, "", cards(2), t0)

	for _, outcome := range []domain.Outcome{domain.OutcomeCorrect, domain.OutcomeCorrect, domain.OutcomeIncorrect} {
		if err := sess.RecordReview(0, outcome); err != nil {
			t.Fatalf("record review: %v", err)
		}
	}
	r, _ := sess.ResponseAt(0)
	if r.Attempts != 3 || r.Correct != 2 {
		t.Fatalf("expected 3 attempts / 2 correct, got %d/%d", r.Attempts, r.Correct)
	}
	if r.Outcome != domain.OutcomeIncorrect {
		t.Fatalf("outcome must track the latest review, got %q", r.Outcome)
	}
	if got := sess.AccuracyPercent(0); got != 67 {
		t.Fatalf("2/3 must round to 67, got %d", got)
	}
	if got := sess.AccuracyPercent(1); got != 0 {
		t.Fatalf("unreviewed card must score 0, got %d", got)
	}

	if err := sess.RecordReview(0, domain.OutcomeNone); err != apperrors.ErrInvalidInput {
		t.Fatalf("blank outcome must be rejected, got %v", err)
	}
	if err := sess.RecordReview(5, domain.OutcomeCorrect); err != apperrors.ErrOutOfRange {
		t.Fatalf("expected out of range, got %v", err)
	}
}

func TestSelectOverwritesValidatesAndFeedsTheSubmissionGate(t *testing.T) {
	t.Parallel()
	sess := domain.NewSession(domain.KindQuiz, "quiz-1", questions(), t0)

	if sess.AllAnswered() {
		t.Fatalf("fresh quiz must not pass the gate")
	}
	if err := sess.Select(0, 1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := sess.Select(0, 3); err != nil {
		t.Fatalf("re-select: %v", err)
	}
	if r, _ := sess.ResponseAt(0); r.SelectedChoice != 3 {
		t.Fatalf("re-select must overwrite, got %d", r.SelectedChoice)
	}
	if err := sess.Select(2, 5); err != apperrors.ErrInvalidInput {
		t.Fatalf("choice beyond the option list must fail, got %v", err)
	}
	if err := sess.Select(9, 0); err != apperrors.ErrOutOfRange {
		t.Fatalf("expected out of range, got %v", err)
	}
	if err := sess.Select(1, 2); err != nil {
		t.Fatalf("select: %v", err)
	}
	if sess.AllAnswered() {
		t.Fatalf("one unanswered question must block the gate")
	}
	if err := sess.Select(2, 0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !sess.AllAnswered() {
		t.Fatalf("all answered quiz must pass the gate")
	}
	if got := sess.Selections(); len(got) != 3 || got[0] != 3 || got[1] != 2 || got[2] != 0 {
		t.Fatalf("unexpected selections %v", got)
	}
	if n := sess.CorrectSelections(); n != 2 {
		t.Fatalf("expected 2 locally correct selections, got %d", n)
	}
	if score, _ := sess.LocalScore(); score < 66 || score > 67 {
		t.Fatalf("expected local score around 66.7, got %.2f", score)
	}
}

func TestCompleteIsOneDirectionalAndFreezesTheResult(t *testing.T) {
	t.Parallel()
	sess := domain.NewSession(domain.KindQuiz, "quiz-1", questions(), t0)
	for i := range questions() {
		if err := sess.Select(i, 0); err != nil {
			t.Fatalf("select: %v", err)
		}
	}
	if err := sess.Complete(domain.Result{Score: 33.3, CorrectCount: 1, TotalQuestions: 3}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if sess.Status() != domain.StatusCompleted {
		t.Fatalf("expected completed, got %s", sess.Status())
	}
	if err := sess.Complete(domain.Result{}); err != apperrors.ErrSessionCompleted {
		t.Fatalf("second complete must fail, got %v", err)
	}
	if err := sess.Select(0, 1); err != apperrors.ErrSessionCompleted {
		t.Fatalf("select after completion must fail, got %v", err)
	}
	result, ok := sess.Result()
	if !ok || result.CorrectCount != 1 {
		t.Fatalf("expected frozen result, got %+v ok=%v", result, ok)
	}

	flashcards := domain.NewSession(domain.KindFlashcard, "", cards(1), t0)
	if err := flashcards.Complete(domain.Result{}); err != apperrors.ErrInvalidInput {
		t.Fatalf("flashcard session cannot complete, got %v", err)
	}
}

func TestRestartRewindsButKeepsCumulativeCounters(t *testing.T) {
	t.Parallel()
	sess := domain.NewSession(domain.KindFlashcard, "", cards(3), t0)
	if err := sess.RecordReview(0, domain.OutcomeCorrect); err != nil {
		t.Fatalf("record review: %v", err)
	}
	sess.Advance()
	sess.Flip()

	later := t0.Add(90 * time.Second)
	if err := sess.Restart(later); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if cur, _ := sess.Cursor(); cur != 0 {
		t.Fatalf("restart must rewind to the first card, got %d", cur)
	}
	r, _ := sess.ResponseAt(0)
	if r.Outcome != domain.OutcomeNone || r.Revealed {
		t.Fatalf("restart must clear outcome and reveal state, got %+v", r)
	}
	if r.Attempts != 1 || r.Correct != 1 {
		t.Fatalf("restart must keep counters, got %d/%d", r.Attempts, r.Correct)
	}
	if got := sess.ElapsedSeconds(later.Add(30 * time.Second)); got != 30 {
		t.Fatalf("restart must reset the clock, got %ds", got)
	}

	quiz := domain.NewSession(domain.KindQuiz, "quiz-1", questions(), t0)
	if err := quiz.Restart(later); err != apperrors.ErrInvalidInput {
		t.Fatalf("quiz restart must fail, got %v", err)
	}
}

func TestProgressAndElapsedAreClamped(t *testing.T) {
	t.Parallel()
	sess := domain.NewSession(domain.KindFlashcard, "", cards(4), t0)
	if pct, _ := sess.ProgressPercent(); pct != 25 {
		t.Fatalf("expected 25%%, got %.2f", pct)
	}
	sess.Advance()
	if pct, _ := sess.ProgressPercent(); pct != 50 {
		t.Fatalf("expected 50%%, got %.2f", pct)
	}
	if got := sess.ElapsedSeconds(t0.Add(-time.Minute)); got != 0 {
		t.Fatalf("elapsed must clamp at zero, got %d", got)
	}
}
