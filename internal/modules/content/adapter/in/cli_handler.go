package in

import (
	"context"

	contentdto "pomo/internal/modules/content/dto"
	contentin "pomo/internal/modules/content/port/in"
)

type CLIHandler struct {
	usecase contentin.Usecase
}

func NewCLIHandler(usecase contentin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) contentdto.QuotesOutput {
	return h.usecase.LoadCustomQuotes(ctx)
}

func (h CLIHandler) Pick(category contentdto.Category) string {
	return h.usecase.Pick(category)
}

func (h CLIHandler) Quotes() contentdto.QuotesOutput {
	return h.usecase.Quotes()
}
