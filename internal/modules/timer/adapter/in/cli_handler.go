package in

import (
	"context"

	timerdto "pomo/internal/modules/timer/dto"
	timerin "pomo/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context) (timerdto.Summary, error) {
	return h.usecase.Run(ctx)
}
