package out

import (
	"context"

	"studyhall/internal/modules/summary/domain"
)

// Source fetches the generated summary for a note. The server generates one
// on first request and caches it after that.
type Source interface {
	Get(ctx context.Context, noteID string) (domain.Summary, error)
}
