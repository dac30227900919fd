package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/lawflow/lawflow-backend/models"
	"github.com/lawflow/lawflow-backend/repositories"
)

type caseLogRepository interface {
	CreateCaseLog(ctx context.Context, exec repositories.Executor,
		attrs models.CreateCaseLogAttributes, newCaseLogId string) error
	ListCaseLogs(ctx context.Context, exec repositories.Executor) ([]models.CaseLog, error)
}

type CaseLogUseCase struct {
	executorFactory executorFactory
	repository      caseLogRepository
}

// CreateCaseLog validates the submission and inserts one row with the status
// fixed to "New". The generated id stays internal. Submitting the same
// payload twice inserts two rows: the flow carries no idempotency key.
func (usecase CaseLogUseCase) CreateCaseLog(ctx context.Context, attrs models.CreateCaseLogAttributes) error {
	if err := validateCaseLogAttributes(attrs); err != nil {
		return err
	}

	return usecase.repository.CreateCaseLog(
		ctx,
		usecase.executorFactory.NewExecutor(),
		attrs,
		uuid.NewString(),
	)
}

func (usecase CaseLogUseCase) ListCaseLogs(ctx context.Context) ([]models.CaseLog, error) {
	return usecase.repository.ListCaseLogs(ctx, usecase.executorFactory.NewExecutor())
}

// validateCaseLogAttributes rejects the submission before any side effect.
// Tags are deliberately not required: a missing list is stored as an empty
// tag, not rejected.
func validateCaseLogAttributes(attrs models.CreateCaseLogAttributes) error {
	if attrs.CaseNo == "" ||
		attrs.Title == "" ||
		attrs.PartyFiler == "" ||
		attrs.CaseType == "" ||
		attrs.FileUrl == "" {
		return errors.Wrap(models.BadParameterError, "All fields are required")
	}
	return nil
}
