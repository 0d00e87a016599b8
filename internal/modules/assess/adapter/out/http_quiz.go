package out

import (
	"context"
	"fmt"

	"studyhall/internal/modules/assess/domain"
	assessout "studyhall/internal/modules/assess/port/out"
	"studyhall/internal/platform/httpapi"
)

type quizQuestionWire struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	UserAnswer    int      `json:"userAnswer"`
	IsCorrect     bool     `json:"isCorrect"`
	Explanation   string   `json:"explanation"`
}

type quizWire struct {
	ID        string             `json:"_id"`
	TimeTaken int                `json:"timeTaken"`
	Questions []quizQuestionWire `json:"questions"`
}

// quizResultWire is the graded submit response. Score and the per-question
// corrections come back inside the re-echoed quiz document.
type quizResultWire struct {
	Score          float64  `json:"score"`
	CorrectCount   int      `json:"correctCount"`
	TotalQuestions int      `json:"totalQuestions"`
	Quiz           quizWire `json:"quiz"`
}

type HTTPQuiz struct {
	api *httpapi.Client
}

var (
	_ assessout.QuizSource    = (*HTTPQuiz)(nil)
	_ assessout.QuizSubmitter = (*HTTPQuiz)(nil)
)

func NewHTTPQuiz(api *httpapi.Client) *HTTPQuiz {
	return &HTTPQuiz{api: api}
}

// Generate asks for a fresh quiz. The session is keyed by the quiz document
// id, not the note id: submit addresses the quiz directly.
func (h *HTTPQuiz) Generate(ctx context.Context, noteID string, count int) (domain.ItemSet, error) {
	body := struct {
		QuestionCount int `json:"questionCount"`
	}{QuestionCount: count}
	var wire struct {
		Quiz quizWire `json:"quiz"`
	}
	if err := h.api.Post(ctx, "/quiz/generate/"+noteID, body, &wire); err != nil {
		return domain.ItemSet{}, err
	}
	items := make([]domain.Item, len(wire.Quiz.Questions))
	for index, question := range wire.Quiz.Questions {
		items[index] = domain.Item{
			ID:      fmt.Sprintf("%s/%d", wire.Quiz.ID, index),
			Prompt:  question.Question,
			Choices: question.Options,
		}
	}
	return domain.ItemSet{ID: wire.Quiz.ID, Items: items}, nil
}

func (h *HTTPQuiz) Submit(ctx context.Context, sub domain.Submission) (domain.Result, error) {
	body := struct {
		Answers   []int `json:"answers"`
		TimeTaken int   `json:"timeTaken"`
	}{Answers: sub.Selections, TimeTaken: sub.ElapsedSeconds}
	var wire quizResultWire
	if err := h.api.Post(ctx, fmt.Sprintf("/quiz/%s/submit", sub.QuizID), body, &wire); err != nil {
		return domain.Result{}, err
	}
	result := domain.Result{
		Score:          wire.Score,
		CorrectCount:   wire.CorrectCount,
		TotalQuestions: wire.TotalQuestions,
		ElapsedSeconds: wire.Quiz.TimeTaken,
		Items:          make([]domain.ItemResult, len(wire.Quiz.Questions)),
	}
	for index, question := range wire.Quiz.Questions {
		result.Items[index] = domain.ItemResult{
			ItemID:        fmt.Sprintf("%s/%d", sub.QuizID, index),
			Prompt:        question.Question,
			Choices:       question.Options,
			Selected:      question.UserAnswer,
			CorrectChoice: question.CorrectAnswer,
			Correct:       question.IsCorrect,
			Explanation:   question.Explanation,
		}
	}
	return result, nil
}
