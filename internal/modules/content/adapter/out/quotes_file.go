package out

import (
	"context"
	"fmt"
	"os"

	"pomo/internal/modules/content/domain"
	contentout "pomo/internal/modules/content/port/out"
)

type FileQuoteSource struct {
	path string
}

func NewFileQuoteSource(path string) contentout.QuoteSource {
	return &FileQuoteSource{path: path}
}

func (s *FileQuoteSource) Load(_ context.Context) (domain.QuoteSet, error) {
	if s.path == "" {
		return domain.QuoteSet{}, fmt.Errorf("quotes file path is empty")
	}
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return domain.QuoteSet{}, fmt.Errorf("read quotes file: %w", err)
	}
	set, err := domain.ParseQuotes(string(payload))
	if err != nil {
		return domain.QuoteSet{}, fmt.Errorf("parse quotes file %s: %w", s.path, err)
	}
	return set, nil
}

func (s *FileQuoteSource) Location() string {
	return s.path
}
