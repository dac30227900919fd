package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawflow/lawflow-backend/models"
)

func TestCaseLogRepository_CreateCaseLog(t *testing.T) {
	ctx := context.Background()
	repo := &LawflowDbRepository{}

	attrs := models.CreateCaseLogAttributes{
		CaseNo:     "C-1",
		Title:      "Smith v. Jones",
		PartyFiler: "Smith",
		CaseType:   "Civil",
		Tags:       []string{"urgent", "civil"},
		FileUrl:    "https://drive/abc",
	}
	newCaseLogId := "7c7a2d4e-95b1-4a40-9a2e-1df1d7f2c001"

	t.Run("nominal", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectExec(regexp.QuoteMeta("INSERT INTO caselogs")).
			WithArgs(newCaseLogId, "C-1", "Smith v. Jones", "Smith", "Civil",
				"urgent, civil", "New", "https://drive/abc").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err = repo.CreateCaseLog(ctx, pool, attrs, newCaseLogId)

		assert.NoError(t, err)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("store error is wrapped and not leaked", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectExec(regexp.QuoteMeta("INSERT INTO caselogs")).
			WithArgs(newCaseLogId, "C-1", "Smith v. Jones", "Smith", "Civil",
				"urgent, civil", "New", "https://drive/abc").
			WillReturnError(errors.New("connection reset by peer"))

		err = repo.CreateCaseLog(ctx, pool, attrs, newCaseLogId)

		assert.ErrorIs(t, err, models.PersistenceError)
		assert.NoError(t, pool.ExpectationsWereMet())
	})
}

func TestCaseLogRepository_ListCaseLogs(t *testing.T) {
	ctx := context.Background()
	repo := &LawflowDbRepository{}

	t.Run("nominal", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		createdAt := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)
		pool.ExpectQuery(regexp.QuoteMeta("SELECT id, case_no, title, party_filer, case_type, tag, status, file_url, created_at FROM caselogs ORDER BY created_at DESC")).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "case_no", "title", "party_filer", "case_type", "tag", "status", "file_url", "created_at",
			}).AddRow(
				"7c7a2d4e-95b1-4a40-9a2e-1df1d7f2c001", "C-1", "Smith v. Jones", "Smith",
				"Civil", "urgent, civil", "New", "https://drive/abc", createdAt,
			))

		caseLogs, err := repo.ListCaseLogs(ctx, pool)

		require.NoError(t, err)
		require.Len(t, caseLogs, 1)
		assert.Equal(t, models.CaseLog{
			Id:         "7c7a2d4e-95b1-4a40-9a2e-1df1d7f2c001",
			CaseNo:     "C-1",
			Title:      "Smith v. Jones",
			PartyFiler: "Smith",
			CaseType:   "Civil",
			Tag:        "urgent, civil",
			Status:     models.CaseLogStatusNew,
			FileUrl:    "https://drive/abc",
			CreatedAt:  createdAt,
		}, caseLogs[0])
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("query error is wrapped", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectQuery(regexp.QuoteMeta("SELECT")).
			WillReturnError(errors.New("relation does not exist"))

		_, err = repo.ListCaseLogs(ctx, pool)

		assert.ErrorIs(t, err, models.PersistenceError)
	})
}
