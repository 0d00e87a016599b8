package out

import (
	"context"

	chatout "studyhall/internal/modules/chat/port/out"
	"studyhall/internal/platform/httpapi"
)

type HTTPChat struct {
	api *httpapi.Client
}

var _ chatout.Asker = (*HTTPChat)(nil)

func NewHTTPChat(api *httpapi.Client) *HTTPChat {
	return &HTTPChat{api: api}
}

func (h *HTTPChat) Ask(ctx context.Context, noteID, question string) (string, error) {
	body := struct {
		NoteID   string `json:"noteId"`
		Question string `json:"question"`
	}{NoteID: noteID, Question: question}
	var wire struct {
		Answer string `json:"answer"`
	}
	if err := h.api.Post(ctx, "/chat/ask", body, &wire); err != nil {
		return "", err
	}
	return wire.Answer, nil
}
