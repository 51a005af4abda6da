package in

import (
	"context"

	"pomo/internal/modules/content/dto"
)

type Usecase interface {
	LoadCustomQuotes(ctx context.Context) dto.QuotesOutput
	Pick(category dto.Category) string
	Quotes() dto.QuotesOutput
}
