package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rsc.io/pdf"

	apperrors "studyhall/internal/platform/errors"
)

// MaxUploadBytes mirrors the server's upload cap. Checking it locally turns a
// slow rejected upload into an instant error.
const MaxUploadBytes = 10 << 20

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
	".md":   true,
}

// Preflight validates an upload candidate before any bytes leave the machine:
// extension whitelist, size cap, and for PDFs a structural parse. It returns
// the page count for PDFs and 0 otherwise.
type Preflight struct{}

func NewPreflight() *Preflight {
	return &Preflight{}
}

func (p *Preflight) Check(path string) (pages int, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExtensions[ext] {
		return 0, fmt.Errorf("%w: unsupported file type %q (pdf, docx, txt, md)", apperrors.ErrInvalidInput, ext)
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat upload: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%w: %s is a directory", apperrors.ErrInvalidInput, path)
	}
	if info.Size() > MaxUploadBytes {
		return 0, fmt.Errorf("%w: %s is %.1f MiB, limit is 10 MiB",
			apperrors.ErrInvalidInput, filepath.Base(path), float64(info.Size())/(1<<20))
	}
	if ext != ".pdf" {
		return 0, nil
	}
	doc, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: not a readable pdf: %s", apperrors.ErrInvalidInput, err)
	}
	return doc.NumPage(), nil
}
