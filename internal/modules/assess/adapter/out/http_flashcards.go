package out

import (
	"context"
	"errors"
	"fmt"

	"studyhall/internal/modules/assess/domain"
	assessout "studyhall/internal/modules/assess/port/out"
	apperrors "studyhall/internal/platform/errors"
	"studyhall/internal/platform/httpapi"
)

// flashcardWire is the server's flashcard shape. The per-card server counters
// ride along for display but never seed the session's own counters.
type flashcardWire struct {
	ID           string `json:"_id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Difficulty   string `json:"difficulty"`
	ReviewCount  int    `json:"reviewCount"`
	CorrectCount int    `json:"correctCount"`
}

type flashcardListWire struct {
	Flashcards []flashcardWire `json:"flashcards"`
}

type HTTPFlashcards struct {
	api *httpapi.Client
}

var (
	_ assessout.FlashcardSource = (*HTTPFlashcards)(nil)
	_ assessout.ReviewRecorder  = (*HTTPFlashcards)(nil)
)

func NewHTTPFlashcards(api *httpapi.Client) *HTTPFlashcards {
	return &HTTPFlashcards{api: api}
}

// Load fetches the stored set for a note. A note that has no flashcards yet
// answers 404; that is the normal first-time state, so it maps to an empty
// set rather than an error.
func (h *HTTPFlashcards) Load(ctx context.Context, noteID string) (domain.ItemSet, error) {
	var wire flashcardListWire
	if err := h.api.Get(ctx, "/flashcards/note/"+noteID, &wire); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.ItemSet{ID: noteID}, nil
		}
		return domain.ItemSet{}, err
	}
	return toItemSet(noteID, wire.Flashcards), nil
}

func (h *HTTPFlashcards) Generate(ctx context.Context, noteID string, count int) (domain.ItemSet, error) {
	body := struct {
		Count int `json:"count"`
	}{Count: count}
	var wire flashcardListWire
	if err := h.api.Post(ctx, "/flashcards/generate/"+noteID, body, &wire); err != nil {
		return domain.ItemSet{}, err
	}
	return toItemSet(noteID, wire.Flashcards), nil
}

func (h *HTTPFlashcards) Record(ctx context.Context, itemID string, correct bool) error {
	body := struct {
		IsCorrect bool `json:"isCorrect"`
	}{IsCorrect: correct}
	if err := h.api.Put(ctx, fmt.Sprintf("/flashcards/%s/review", itemID), body, nil); err != nil {
		return err
	}
	return nil
}

func toItemSet(noteID string, cards []flashcardWire) domain.ItemSet {
	items := make([]domain.Item, len(cards))
	for index, card := range cards {
		items[index] = domain.Item{
			ID:           card.ID,
			Prompt:       card.Question,
			Reveal:       card.Answer,
			Difficulty:   card.Difficulty,
			ReviewCount:  card.ReviewCount,
			CorrectCount: card.CorrectCount,
		}
	}
	return domain.ItemSet{ID: noteID, Items: items}
}
