package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"studyhall/internal/modules/notes/domain"
	"studyhall/internal/modules/notes/dto"
	notesin "studyhall/internal/modules/notes/port/in"
	notesout "studyhall/internal/modules/notes/port/out"
	"studyhall/internal/modules/notes/service"
	apperrors "studyhall/internal/platform/errors"
)

type Interactor struct {
	api       notesout.API
	preflight *service.Preflight
	log       *slog.Logger
}

func NewInteractor(api notesout.API, preflight *service.Preflight, log *slog.Logger) notesin.Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Interactor{api: api, preflight: preflight, log: log}
}

func (i *Interactor) List(ctx context.Context) ([]dto.NoteSummary, error) {
	notes, err := i.api.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NoteSummary, len(notes))
	for index, note := range notes {
		out[index] = toSummary(note)
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.NoteOutput, error) {
	if id == "" {
		return dto.NoteOutput{}, apperrors.ErrInvalidInput
	}
	note, err := i.api.Get(ctx, id)
	if err != nil {
		return dto.NoteOutput{}, err
	}
	return dto.NoteOutput{
		NoteSummary: toSummary(note),
		Content:     note.Content,
		WordCount:   note.WordCount,
		PageCount:   note.PageCount,
	}, nil
}

// Upload sends either a file or pasted text. File uploads run the local
// preflight first so an oversized or corrupt file never starts a transfer.
func (i *Interactor) Upload(ctx context.Context, input dto.UploadInput) (dto.UploadOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return dto.UploadOutput{}, fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}
	meta := domain.Upload{
		Title:   title,
		Subject: strings.TrimSpace(input.Subject),
		Tags:    input.Tags,
		Content: input.Content,
	}

	if input.FilePath == "" {
		if strings.TrimSpace(input.Content) == "" {
			return dto.UploadOutput{}, fmt.Errorf("%w: either a file or content is required", apperrors.ErrInvalidInput)
		}
		note, err := i.api.UploadText(ctx, meta)
		if err != nil {
			return dto.UploadOutput{}, err
		}
		return dto.UploadOutput{Note: toSummary(note)}, nil
	}

	pages, err := i.preflight.Check(input.FilePath)
	if err != nil {
		return dto.UploadOutput{}, err
	}
	file, err := os.Open(input.FilePath)
	if err != nil {
		return dto.UploadOutput{}, fmt.Errorf("open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	meta.FilePath = input.FilePath
	note, err := i.api.UploadFile(ctx, meta, filepath.Base(input.FilePath), file)
	if err != nil {
		return dto.UploadOutput{}, err
	}
	i.log.Info("note uploaded", "note_id", note.ID, "title", note.Title, "pages", pages)
	return dto.UploadOutput{Note: toSummary(note), Pages: pages}, nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.ErrInvalidInput
	}
	if err := i.api.Delete(ctx, id); err != nil {
		return err
	}
	i.log.Info("note deleted", "note_id", id)
	return nil
}

func toSummary(note domain.Note) dto.NoteSummary {
	return dto.NoteSummary{
		ID:        note.ID,
		Title:     note.Title,
		Subject:   note.Subject,
		Tags:      note.Tags,
		CreatedAt: note.CreatedAt,
	}
}
