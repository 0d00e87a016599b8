package out

import (
	"context"
	"io"
	"strings"
	"time"

	"studyhall/internal/modules/notes/domain"
	notesout "studyhall/internal/modules/notes/port/out"
	"studyhall/internal/platform/httpapi"
)

type noteWire struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	Tags      []string  `json:"tags"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Metadata  struct {
		WordCount int `json:"wordCount"`
		PageCount int `json:"pageCount"`
	} `json:"metadata"`
}

type HTTPNotes struct {
	api *httpapi.Client
}

var _ notesout.API = (*HTTPNotes)(nil)

func NewHTTPNotes(api *httpapi.Client) *HTTPNotes {
	return &HTTPNotes{api: api}
}

func (h *HTTPNotes) List(ctx context.Context) ([]domain.Note, error) {
	var wire struct {
		Notes []noteWire `json:"notes"`
	}
	if err := h.api.Get(ctx, "/notes", &wire); err != nil {
		return nil, err
	}
	notes := make([]domain.Note, len(wire.Notes))
	for index, note := range wire.Notes {
		notes[index] = toNote(note)
	}
	return notes, nil
}

func (h *HTTPNotes) Get(ctx context.Context, id string) (domain.Note, error) {
	var wire struct {
		Note noteWire `json:"note"`
	}
	if err := h.api.Get(ctx, "/notes/"+id, &wire); err != nil {
		return domain.Note{}, err
	}
	return toNote(wire.Note), nil
}

// UploadFile posts the multipart form the server's upload route expects: text
// fields plus a single "file" part. Tags travel as one comma-joined field.
func (h *HTTPNotes) UploadFile(ctx context.Context, meta domain.Upload, filename string, file io.Reader) (domain.Note, error) {
	var wire struct {
		Note noteWire `json:"note"`
	}
	if err := h.api.Upload(ctx, "/notes/upload", uploadFields(meta), "file", filename, file, &wire); err != nil {
		return domain.Note{}, err
	}
	return toNote(wire.Note), nil
}

func (h *HTTPNotes) UploadText(ctx context.Context, meta domain.Upload) (domain.Note, error) {
	fields := uploadFields(meta)
	fields["content"] = meta.Content
	var wire struct {
		Note noteWire `json:"note"`
	}
	if err := h.api.Upload(ctx, "/notes/upload", fields, "", "", nil, &wire); err != nil {
		return domain.Note{}, err
	}
	return toNote(wire.Note), nil
}

func (h *HTTPNotes) Delete(ctx context.Context, id string) error {
	return h.api.Delete(ctx, "/notes/"+id)
}

func uploadFields(meta domain.Upload) map[string]string {
	return map[string]string{
		"title":   meta.Title,
		"subject": meta.Subject,
		"tags":    strings.Join(meta.Tags, ","),
	}
}

func toNote(wire noteWire) domain.Note {
	return domain.Note{
		ID:        wire.ID,
		Title:     wire.Title,
		Subject:   wire.Subject,
		Tags:      wire.Tags,
		Content:   wire.Content,
		WordCount: wire.Metadata.WordCount,
		PageCount: wire.Metadata.PageCount,
		CreatedAt: wire.CreatedAt,
	}
}
