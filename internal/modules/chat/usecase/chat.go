package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"studyhall/internal/modules/chat/domain"
	"studyhall/internal/modules/chat/dto"
	chatin "studyhall/internal/modules/chat/port/in"
	chatout "studyhall/internal/modules/chat/port/out"
	"studyhall/internal/platform/clock"
	apperrors "studyhall/internal/platform/errors"
)

type Interactor struct {
	asker chatout.Asker
	clk   clock.Clock

	mu         sync.Mutex
	transcript domain.Transcript
}

func NewInteractor(asker chatout.Asker, clk clock.Clock) chatin.Usecase {
	return &Interactor{asker: asker, clk: clk}
}

// Ask appends the question locally before the remote call, so the transcript
// shows it immediately; a failed call appends nothing further and the error
// surfaces to the caller. Switching notes resets the transcript first.
func (i *Interactor) Ask(ctx context.Context, noteID, question string) (dto.TranscriptOutput, error) {
	question = strings.TrimSpace(question)
	if noteID == "" || question == "" {
		return dto.TranscriptOutput{}, fmt.Errorf("%w: a note and a question are required", apperrors.ErrInvalidInput)
	}

	i.mu.Lock()
	if i.transcript.NoteID != noteID {
		i.transcript = domain.Transcript{NoteID: noteID}
	}
	i.transcript.Append(domain.RoleUser, question, i.clk.Now())
	i.mu.Unlock()

	answer, err := i.asker.Ask(ctx, noteID, question)

	i.mu.Lock()
	defer i.mu.Unlock()
	if err != nil {
		return i.snapshot(), err
	}
	if i.transcript.NoteID == noteID {
		i.transcript.Append(domain.RoleAssistant, answer, i.clk.Now())
	}
	return i.snapshot(), nil
}

func (i *Interactor) Transcript() dto.TranscriptOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.snapshot()
}

func (i *Interactor) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.transcript = domain.Transcript{}
}

func (i *Interactor) snapshot() dto.TranscriptOutput {
	out := dto.TranscriptOutput{
		NoteID:   i.transcript.NoteID,
		Messages: make([]dto.MessageOutput, len(i.transcript.Messages)),
	}
	for index, message := range i.transcript.Messages {
		out.Messages[index] = dto.MessageOutput{
			Role:    string(message.Role),
			Content: message.Content,
		}
	}
	return out
}
