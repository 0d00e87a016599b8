package out

import (
	"context"
	"io"

	"studyhall/internal/modules/notes/domain"
)

// API is the remote notes surface. UploadFile streams the file body; the
// caller keeps ownership of the reader.
type API interface {
	List(ctx context.Context) ([]domain.Note, error)
	Get(ctx context.Context, id string) (domain.Note, error)
	UploadFile(ctx context.Context, meta domain.Upload, filename string, file io.Reader) (domain.Note, error)
	UploadText(ctx context.Context, meta domain.Upload) (domain.Note, error)
	Delete(ctx context.Context, id string) error
}
