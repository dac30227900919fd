package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lawflow/lawflow-backend/mocks"
	"github.com/lawflow/lawflow-backend/models"
)

type CaseLogUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.CaseLogRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor

	validAttrs models.CreateCaseLogAttributes
}

func (suite *CaseLogUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.CaseLogRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)

	suite.validAttrs = models.CreateCaseLogAttributes{
		CaseNo:     "C-1",
		Title:      "Smith v. Jones",
		PartyFiler: "Smith",
		CaseType:   "Civil",
		Tags:       []string{"urgent"},
		FileUrl:    "https://drive/abc",
	}
}

func (suite *CaseLogUsecaseTestSuite) makeUsecase() CaseLogUseCase {
	return CaseLogUseCase{
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
	}
}

func (suite *CaseLogUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.executor.AssertExpectations(t)
}

func (suite *CaseLogUsecaseTestSuite) Test_CreateCaseLog_nominal() {
	ctx := context.Background()

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("CreateCaseLog", ctx, suite.executor, suite.validAttrs,
		mock.AnythingOfType("string")).Return(nil)

	err := suite.makeUsecase().CreateCaseLog(ctx, suite.validAttrs)

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *CaseLogUsecaseTestSuite) Test_CreateCaseLog_missing_required_field() {
	ctx := context.Background()

	mutations := map[string]func(*models.CreateCaseLogAttributes){
		"caseNo":     func(a *models.CreateCaseLogAttributes) { a.CaseNo = "" },
		"caseTitle":  func(a *models.CreateCaseLogAttributes) { a.Title = "" },
		"partyFiler": func(a *models.CreateCaseLogAttributes) { a.PartyFiler = "" },
		"caseType":   func(a *models.CreateCaseLogAttributes) { a.CaseType = "" },
		"file_url":   func(a *models.CreateCaseLogAttributes) { a.FileUrl = "" },
	}

	for field, mutate := range mutations {
		attrs := suite.validAttrs
		mutate(&attrs)

		err := suite.makeUsecase().CreateCaseLog(ctx, attrs)

		suite.ErrorIs(err, models.BadParameterError, "missing %s must be rejected", field)
	}

	suite.repository.AssertNotCalled(suite.T(), "CreateCaseLog",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CaseLogUsecaseTestSuite) Test_CreateCaseLog_missing_tags_defaults_to_empty() {
	ctx := context.Background()

	attrs := suite.validAttrs
	attrs.Tags = nil

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("CreateCaseLog", ctx, suite.executor, attrs,
		mock.AnythingOfType("string")).Return(nil)

	err := suite.makeUsecase().CreateCaseLog(ctx, attrs)

	suite.NoError(err)
	suite.Equal("", attrs.JoinedTag())
	suite.AssertExpectations()
}

// Submitting the identical payload twice creates two rows: the flow has no
// idempotency key. Asserted as current behavior.
func (suite *CaseLogUsecaseTestSuite) Test_CreateCaseLog_not_idempotent() {
	ctx := context.Background()

	suite.executorFactory.On("NewExecutor").Return(suite.executor).Times(2)
	suite.repository.On("CreateCaseLog", ctx, suite.executor, suite.validAttrs,
		mock.AnythingOfType("string")).Return(nil).Times(2)

	usecase := suite.makeUsecase()
	suite.NoError(usecase.CreateCaseLog(ctx, suite.validAttrs))
	suite.NoError(usecase.CreateCaseLog(ctx, suite.validAttrs))

	suite.AssertExpectations()
}

func (suite *CaseLogUsecaseTestSuite) Test_CreateCaseLog_repository_error() {
	ctx := context.Background()

	repositoryError := errors.Wrap(models.PersistenceError, "duplicate key value")
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("CreateCaseLog", ctx, suite.executor, suite.validAttrs,
		mock.AnythingOfType("string")).Return(repositoryError)

	err := suite.makeUsecase().CreateCaseLog(ctx, suite.validAttrs)

	suite.ErrorIs(err, models.PersistenceError)
	suite.AssertExpectations()
}

func (suite *CaseLogUsecaseTestSuite) Test_ListCaseLogs_nominal() {
	ctx := context.Background()

	caseLogs := []models.CaseLog{
		{Id: "11111111-1111-1111-1111-111111111111", CaseNo: "C-2", Status: models.CaseLogStatusNew},
		{Id: "22222222-2222-2222-2222-222222222222", CaseNo: "C-1", Status: models.CaseLogStatusNew},
	}
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("ListCaseLogs", ctx, suite.executor).Return(caseLogs, nil)

	result, err := suite.makeUsecase().ListCaseLogs(ctx)

	suite.NoError(err)
	suite.Equal(caseLogs, result)
	suite.AssertExpectations()
}

func TestCaseLogUsecase(t *testing.T) {
	suite.Run(t, new(CaseLogUsecaseTestSuite))
}
