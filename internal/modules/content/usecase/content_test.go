package usecase_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentout "pomo/internal/modules/content/adapter/out"
	"pomo/internal/modules/content/domain"
	contentdto "pomo/internal/modules/content/dto"
	"pomo/internal/modules/content/service"
	"pomo/internal/modules/content/usecase"
)

type firstPicker struct{}

func (firstPicker) Intn(int) int { return 0 }

func writeQuotes(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCustomQuotesReplacesBothBlocks(t *testing.T) {
	t.Parallel()
	path := writeQuotes(t, "A\nB\n---\nC\n")
	uc := usecase.NewInteractor(service.NewContentService(firstPicker{}), contentout.NewFileQuoteSource(path), zerolog.Nop())

	out := uc.LoadCustomQuotes(context.Background())
	assert.True(t, out.Custom)
	assert.Equal(t, path, out.Source)
	assert.Equal(t, []string{"A", "B"}, out.Work)
	assert.Equal(t, []string{"C"}, out.Break)
	assert.Equal(t, "A", uc.Pick(contentdto.CategoryWorkQuotes))
	assert.Equal(t, "C", uc.Pick(contentdto.CategoryBreakQuotes))
}

func TestLoadCustomQuotesKeepsDefaultBreakBlockWhenMissing(t *testing.T) {
	t.Parallel()
	path := writeQuotes(t, "Only work\n")
	uc := usecase.NewInteractor(service.NewContentService(firstPicker{}), contentout.NewFileQuoteSource(path), zerolog.Nop())

	out := uc.LoadCustomQuotes(context.Background())
	assert.Equal(t, []string{"Only work"}, out.Work)
	assert.Equal(t, domain.DefaultCatalog().Entries(domain.CategoryBreakQuotes), out.Break)
}

func TestLoadCustomQuotesFallsBackSilentlyOnMissingFile(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	missing := filepath.Join(t.TempDir(), "nope.txt")
	uc := usecase.NewInteractor(service.NewContentService(firstPicker{}), contentout.NewFileQuoteSource(missing), zerolog.New(&logs))

	out := uc.LoadCustomQuotes(context.Background())
	assert.False(t, out.Custom)
	assert.Equal(t, "built-in", out.Source)
	assert.Equal(t, domain.DefaultCatalog().Entries(domain.CategoryWorkQuotes), out.Work)
	assert.Contains(t, logs.String(), "custom quotes unavailable")
}

func TestLoadCustomQuotesFallsBackOnInvalidEncoding(t *testing.T) {
	t.Parallel()
	path := writeQuotes(t, "\xff\xfe\n---\nbroken")
	uc := usecase.NewInteractor(service.NewContentService(firstPicker{}), contentout.NewFileQuoteSource(path), zerolog.Nop())

	out := uc.LoadCustomQuotes(context.Background())
	assert.False(t, out.Custom)
	assert.Equal(t, domain.DefaultCatalog().Entries(domain.CategoryBreakQuotes), out.Break)
}

func TestWithoutSourceActivitiesComeFromDefaults(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewContentService(firstPicker{}), nil, zerolog.Nop())

	out := uc.LoadCustomQuotes(context.Background())
	assert.False(t, out.Custom)
	assert.Equal(t, domain.DefaultCatalog().Entries(domain.CategoryStretches)[0], uc.Pick(contentdto.CategoryStretches))
	assert.Equal(t, domain.DefaultCatalog().Entries(domain.CategoryFunFacts)[0], uc.Pick(contentdto.CategoryFunFacts))
}
