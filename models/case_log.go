package models

import (
	"strings"
	"time"
)

type CaseLogStatus string

const (
	// CaseLogStatusNew is assigned to every case log at creation. The caller
	// cannot set the status through the ingestion flow.
	CaseLogStatusNew CaseLogStatus = "New"
)

type CaseLog struct {
	Id         string
	CaseNo     string
	Title      string
	PartyFiler string
	CaseType   string
	Tag        string
	Status     CaseLogStatus
	FileUrl    string
	CreatedAt  time.Time
}

type CreateCaseLogAttributes struct {
	CaseNo     string
	Title      string
	PartyFiler string
	CaseType   string
	Tags       []string
	FileUrl    string
}

// JoinedTag renders the ordered tag list as it is persisted: comma and space
// separated, duplicates kept. A nil tag list renders as the empty string.
func (attrs CreateCaseLogAttributes) JoinedTag() string {
	return strings.Join(attrs.Tags, ", ")
}
