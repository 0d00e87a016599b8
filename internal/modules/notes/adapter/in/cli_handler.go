package in

import (
	"context"
	"strings"

	notesdto "studyhall/internal/modules/notes/dto"
	notesin "studyhall/internal/modules/notes/port/in"
)

type CLIHandler struct {
	usecase notesin.Usecase
}

func NewCLIHandler(usecase notesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]notesdto.NoteSummary, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id string) (notesdto.NoteOutput, error) {
	return h.usecase.Get(ctx, id)
}

// Upload takes tags as one comma-separated string, the way they arrive from a
// flag or a form field.
func (h CLIHandler) Upload(ctx context.Context, title, subject, tags, filePath, content string) (notesdto.UploadOutput, error) {
	return h.usecase.Upload(ctx, notesdto.UploadInput{
		Title:    title,
		Subject:  subject,
		Tags:     splitTags(tags),
		FilePath: filePath,
		Content:  content,
	})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
