package usecases

import (
	"context"

	"github.com/lawflow/lawflow-backend/repositories"
)

type livenessRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

type LivenessUsecase struct {
	executorFactory    executorFactory
	livenessRepository livenessRepository
}

func (u LivenessUsecase) Liveness(ctx context.Context) error {
	return u.livenessRepository.Liveness(ctx, u.executorFactory.NewExecutor())
}
