package repositories

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/lawflow/lawflow-backend/models"
	"github.com/lawflow/lawflow-backend/repositories/dbmodels"
)

// LawflowDbRepository groups the queries against the application database.
type LawflowDbRepository struct{}

func (repo *LawflowDbRepository) CreateCaseLog(
	ctx context.Context,
	exec Executor,
	attrs models.CreateCaseLogAttributes,
	newCaseLogId string,
) error {
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASE_LOGS).
			Columns(
				"id",
				"case_no",
				"title",
				"party_filer",
				"case_type",
				"tag",
				"status",
				"file_url",
			).
			Values(
				newCaseLogId,
				attrs.CaseNo,
				attrs.Title,
				attrs.PartyFiler,
				attrs.CaseType,
				attrs.JoinedTag(),
				string(models.CaseLogStatusNew),
				attrs.FileUrl,
			),
	)
	if err != nil {
		return errors.Wrap(models.PersistenceError, err.Error())
	}
	return nil
}

func (repo *LawflowDbRepository) ListCaseLogs(ctx context.Context, exec Executor) ([]models.CaseLog, error) {
	caseLogs, err := SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseLogColumn...).
			From(dbmodels.TABLE_CASE_LOGS).
			OrderBy("created_at DESC"),
		dbmodels.AdaptCaseLog,
	)
	if err != nil {
		return nil, errors.Wrap(models.PersistenceError, err.Error())
	}
	return caseLogs, nil
}

func (repo *LawflowDbRepository) Liveness(ctx context.Context, exec Executor) error {
	row := exec.QueryRow(ctx, "SELECT 1")
	var result int
	return row.Scan(&result)
}
