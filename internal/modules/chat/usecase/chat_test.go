package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"studyhall/internal/modules/chat/usecase"
	apperrors "studyhall/internal/platform/errors"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeAsker struct {
	answer string
	err    error
	asked  []string
}

func (f *fakeAsker) Ask(_ context.Context, _ string, question string) (string, error) {
	f.asked = append(f.asked, question)
	return f.answer, f.err
}

func TestAskAppendsQuestionThenAnswerInOrder(t *testing.T) {
	t.Parallel()
	asker := &fakeAsker{answer: "42"}
	uc := usecase.NewInteractor(asker, fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)})

	out, err := uc.Ask(context.Background(), "note-1", "  what is the answer?  ")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if len(out.Messages) != 2 {
		t.Fatalf("expected question and answer, got %d messages", len(out.Messages))
	}
	if out.Messages[0].Role != "user" || out.Messages[0].Content != "what is the answer?" {
		t.Fatalf("first message must be the trimmed question, got %+v", out.Messages[0])
	}
	if out.Messages[1].Role != "assistant" || out.Messages[1].Content != "42" {
		t.Fatalf("second message must be the answer, got %+v", out.Messages[1])
	}

	out, err = uc.Ask(context.Background(), "note-1", "and why?")
	if err != nil {
		t.Fatalf("second ask: %v", err)
	}
	if len(out.Messages) != 4 {
		t.Fatalf("same-note asks must accumulate, got %d messages", len(out.Messages))
	}
}

func TestAskValidatesInputAndKeepsTheQuestionOnFailure(t *testing.T) {
	t.Parallel()
	asker := &fakeAsker{err: errors.New("model overloaded")}
	uc := usecase.NewInteractor(asker, fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)})

	if _, err := uc.Ask(context.Background(), "", "question"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("missing note must fail, got %v", err)
	}
	if _, err := uc.Ask(context.Background(), "note-1", "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank question must fail, got %v", err)
	}
	if len(asker.asked) != 0 {
		t.Fatalf("invalid input must never reach the remote service")
	}

	out, err := uc.Ask(context.Background(), "note-1", "still there?")
	if err == nil {
		t.Fatalf("remote failure must surface")
	}
	if len(out.Messages) != 1 || out.Messages[0].Role != "user" {
		t.Fatalf("the question must stay in the transcript after a failure, got %+v", out.Messages)
	}
}

func TestSwitchingNotesResetsTheTranscript(t *testing.T) {
	t.Parallel()
	asker := &fakeAsker{answer: "ok"}
	uc := usecase.NewInteractor(asker, fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)})

	if _, err := uc.Ask(context.Background(), "note-1", "first"); err != nil {
		t.Fatalf("ask: %v", err)
	}
	out, err := uc.Ask(context.Background(), "note-2", "second")
	if err != nil {
		t.Fatalf("ask on new note: %v", err)
	}
	if out.NoteID != "note-2" || len(out.Messages) != 2 {
		t.Fatalf("note switch must start a fresh transcript, got %+v", out)
	}

	uc.Reset()
	if got := uc.Transcript(); got.NoteID != "" || len(got.Messages) != 0 {
		t.Fatalf("reset must clear everything, got %+v", got)
	}
}
