package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"pomo/internal/modules/content/domain"
	contentdto "pomo/internal/modules/content/dto"
	contentin "pomo/internal/modules/content/port/in"
	contentout "pomo/internal/modules/content/port/out"
	"pomo/internal/modules/content/service"
)

const defaultSourceLabel = "built-in"

type Interactor struct {
	svc    *service.ContentService
	source contentout.QuoteSource
	log    zerolog.Logger
	custom bool
}

// NewInteractor builds the content usecase. source may be nil when no
// quotes file is configured.
func NewInteractor(svc *service.ContentService, source contentout.QuoteSource, log zerolog.Logger) contentin.Usecase {
	return &Interactor{svc: svc, source: source, log: log}
}

// LoadCustomQuotes applies the configured quotes file. Any failure leaves the
// built-in quotes in place; it is logged and otherwise silent.
func (i *Interactor) LoadCustomQuotes(ctx context.Context) contentdto.QuotesOutput {
	if i.source == nil {
		return i.Quotes()
	}
	set, err := i.source.Load(ctx)
	if err != nil {
		i.log.Warn().Err(err).Str("path", i.source.Location()).Msg("custom quotes unavailable, using built-in quotes")
		return i.Quotes()
	}
	if len(set.Work) == 0 && len(set.Break) == 0 {
		i.log.Warn().Str("path", i.source.Location()).Msg("custom quotes file is empty, using built-in quotes")
		return i.Quotes()
	}
	i.svc.ApplyQuotes(set)
	i.custom = true
	i.log.Debug().
		Str("path", i.source.Location()).
		Int("work", len(set.Work)).
		Int("break", len(set.Break)).
		Msg("custom quotes loaded")
	return i.Quotes()
}

func (i *Interactor) Pick(category contentdto.Category) string {
	return i.svc.Pick(domain.Category(category))
}

func (i *Interactor) Quotes() contentdto.QuotesOutput {
	label := defaultSourceLabel
	if i.custom && i.source != nil {
		label = i.source.Location()
	}
	return contentdto.QuotesOutput{
		Source: label,
		Custom: i.custom,
		Work:   i.svc.Entries(domain.CategoryWorkQuotes),
		Break:  i.svc.Entries(domain.CategoryBreakQuotes),
	}
}
