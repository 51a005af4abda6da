package out

import (
	"context"

	"pomo/internal/modules/content/domain"
)

type QuoteSource interface {
	Load(ctx context.Context) (domain.QuoteSet, error)
	Location() string
}
