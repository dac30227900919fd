package repositories

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/api/drive/v3"
)

type Repositories struct {
	ExecutorGetter      ExecutorGetter
	LawflowDbRepository *LawflowDbRepository
	AttachmentUploader  AttachmentUploader
	FileFetcher         FileFetcher
}

type Option func(*Repositories)

func WithDriveUploader(service *drive.Service, folderId string) Option {
	return func(r *Repositories) {
		r.AttachmentUploader = NewDriveRepository(service, folderId)
	}
}

func WithFetchClient(client *http.Client) Option {
	return func(r *Repositories) {
		r.FileFetcher = NewHttpFileFetcher(client)
	}
}

func NewRepositories(pool *pgxpool.Pool, opts ...Option) Repositories {
	r := Repositories{
		ExecutorGetter:      NewExecutorGetter(pool),
		LawflowDbRepository: &LawflowDbRepository{},
		FileFetcher:         NewHttpFileFetcher(nil),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
