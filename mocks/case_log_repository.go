package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lawflow/lawflow-backend/models"
	"github.com/lawflow/lawflow-backend/repositories"
)

type CaseLogRepository struct {
	mock.Mock
}

func (r *CaseLogRepository) CreateCaseLog(ctx context.Context, exec repositories.Executor,
	attrs models.CreateCaseLogAttributes, newCaseLogId string,
) error {
	args := r.Called(ctx, exec, attrs, newCaseLogId)
	return args.Error(0)
}

func (r *CaseLogRepository) ListCaseLogs(ctx context.Context, exec repositories.Executor) ([]models.CaseLog, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.CaseLog), args.Error(1)
}
