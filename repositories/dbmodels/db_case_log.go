package dbmodels

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/lawflow/lawflow-backend/models"
	"github.com/lawflow/lawflow-backend/utils"
)

type DBCaseLog struct {
	Id         pgtype.Text      `db:"id"`
	CaseNo     pgtype.Text      `db:"case_no"`
	Title      pgtype.Text      `db:"title"`
	PartyFiler pgtype.Text      `db:"party_filer"`
	CaseType   pgtype.Text      `db:"case_type"`
	Tag        pgtype.Text      `db:"tag"`
	Status     pgtype.Text      `db:"status"`
	FileUrl    pgtype.Text      `db:"file_url"`
	CreatedAt  pgtype.Timestamp `db:"created_at"`
}

const TABLE_CASE_LOGS = "caselogs"

var SelectCaseLogColumn = utils.ColumnList[DBCaseLog]()

func AdaptCaseLog(db DBCaseLog) (models.CaseLog, error) {
	return models.CaseLog{
		Id:         db.Id.String,
		CaseNo:     db.CaseNo.String,
		Title:      db.Title.String,
		PartyFiler: db.PartyFiler.String,
		CaseType:   db.CaseType.String,
		Tag:        db.Tag.String,
		Status:     models.CaseLogStatus(db.Status.String),
		FileUrl:    db.FileUrl.String,
		CreatedAt:  db.CreatedAt.Time,
	}, nil
}
