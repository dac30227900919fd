package usecases

import (
	"github.com/lawflow/lawflow-backend/repositories"
)

type executorFactory interface {
	NewExecutor() repositories.Executor
}

type Usecases struct {
	Repositories repositories.Repositories
}

func NewUsecases(repos repositories.Repositories) Usecases {
	return Usecases{Repositories: repos}
}

func (uc Usecases) NewCaseLogUseCase() CaseLogUseCase {
	return CaseLogUseCase{
		executorFactory: uc.Repositories.ExecutorGetter,
		repository:      uc.Repositories.LawflowDbRepository,
	}
}

func (uc Usecases) NewAttachmentUseCase() AttachmentUseCase {
	return AttachmentUseCase{
		fetcher:  uc.Repositories.FileFetcher,
		uploader: uc.Repositories.AttachmentUploader,
	}
}

func (uc Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    uc.Repositories.ExecutorGetter,
		livenessRepository: uc.Repositories.LawflowDbRepository,
	}
}
