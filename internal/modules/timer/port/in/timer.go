package in

import (
	"context"

	"pomo/internal/modules/timer/dto"
)

type Usecase interface {
	Run(ctx context.Context) (dto.Summary, error)
}
