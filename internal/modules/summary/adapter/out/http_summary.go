package out

import (
	"context"
	"time"

	"studyhall/internal/modules/summary/domain"
	summaryout "studyhall/internal/modules/summary/port/out"
	"studyhall/internal/platform/httpapi"
)

type summaryWire struct {
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	KeyPoints []string  `json:"keyPoints"`
	CreatedAt time.Time `json:"createdAt"`
}

type HTTPSummary struct {
	api *httpapi.Client
}

var _ summaryout.Source = (*HTTPSummary)(nil)

func NewHTTPSummary(api *httpapi.Client) *HTTPSummary {
	return &HTTPSummary{api: api}
}

func (h *HTTPSummary) Get(ctx context.Context, noteID string) (domain.Summary, error) {
	var wire struct {
		Summary summaryWire `json:"summary"`
	}
	if err := h.api.Get(ctx, "/summary/"+noteID, &wire); err != nil {
		return domain.Summary{}, err
	}
	return domain.Summary{
		NoteID:    noteID,
		Title:     wire.Summary.Title,
		Body:      wire.Summary.Summary,
		KeyPoints: wire.Summary.KeyPoints,
		CreatedAt: wire.Summary.CreatedAt,
	}, nil
}
