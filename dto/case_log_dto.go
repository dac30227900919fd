package dto

import (
	"time"

	"github.com/lawflow/lawflow-backend/models"
)

// CreateCaseLogBody mirrors the front end's submission. Field names are
// inherited from the client contract, file_url included.
type CreateCaseLogBody struct {
	CaseNo     string   `json:"caseNo" binding:"required"`
	CaseTitle  string   `json:"caseTitle" binding:"required"`
	PartyFiler string   `json:"partyFiler" binding:"required"`
	CaseType   string   `json:"caseType" binding:"required"`
	Tags       []string `json:"tags"`
	FileUrl    string   `json:"file_url" binding:"required"`
}

func AdaptCreateCaseLogAttributes(body CreateCaseLogBody) models.CreateCaseLogAttributes {
	return models.CreateCaseLogAttributes{
		CaseNo:     body.CaseNo,
		Title:      body.CaseTitle,
		PartyFiler: body.PartyFiler,
		CaseType:   body.CaseType,
		Tags:       body.Tags,
		FileUrl:    body.FileUrl,
	}
}

type APICaseLog struct {
	Id         string    `json:"id"`
	CaseNo     string    `json:"case_no"`
	Title      string    `json:"title"`
	PartyFiler string    `json:"party_filer"`
	CaseType   string    `json:"case_type"`
	Tag        string    `json:"tag"`
	Status     string    `json:"status"`
	FileUrl    string    `json:"file_url"`
	CreatedAt  time.Time `json:"created_at"`
}

func AdaptCaseLogDto(caseLog models.CaseLog) APICaseLog {
	return APICaseLog{
		Id:         caseLog.Id,
		CaseNo:     caseLog.CaseNo,
		Title:      caseLog.Title,
		PartyFiler: caseLog.PartyFiler,
		CaseType:   caseLog.CaseType,
		Tag:        caseLog.Tag,
		Status:     string(caseLog.Status),
		FileUrl:    caseLog.FileUrl,
		CreatedAt:  caseLog.CreatedAt,
	}
}
