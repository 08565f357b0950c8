package load_test

import (
	"fmt"
	"strings"
	"testing"

	"message-summary-etl/internal/database/models"
	apperrors "message-summary-etl/internal/errors"
	"message-summary-etl/internal/load"
	"message-summary-etl/internal/logger"
	"message-summary-etl/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LoaderTestSuite defines the test suite for Loader
type LoaderTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockSummaryRepositoryInterface
	loader   *load.Loader
}

// SetupTest sets up the test suite
func (suite *LoaderTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSummaryRepositoryInterface(suite.ctrl)
	suite.loader = load.NewLoader(suite.mockRepo, validator.New(), logger.New())
}

// TearDownTest cleans up after each test
func (suite *LoaderTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func summaries() []models.MonthlySummary {
	return []models.MonthlySummary{
		{OrganizationID: 1, Name: "A", NameUser: "U", Month: "2024-03", MessageCount: 3},
		{OrganizationID: 2, Name: "B", NameUser: "V", Month: "2024-03", MessageCount: 1},
	}
}

// TestLoadAllRowsSucceed tests the happy path
func (suite *LoaderTestSuite) TestLoadAllRowsSucceed() {
	suite.mockRepo.EXPECT().
		Upsert(gomock.Any()).
		Return(nil).
		Times(2)

	err := suite.loader.Load(summaries())

	assert.NoError(suite.T(), err)
}

// TestLoadContinuesAfterRowFailure tests that one failing row does not stop the batch
func (suite *LoaderTestSuite) TestLoadContinuesAfterRowFailure() {
	rows := summaries()

	suite.mockRepo.EXPECT().
		Upsert(&rows[0]).
		Return(fmt.Errorf("connection reset")).
		Times(1)
	suite.mockRepo.EXPECT().
		Upsert(&rows[1]).
		Return(nil).
		Times(1)

	err := suite.loader.Load(rows)

	suite.Require().Error(err)
	var sinkErr *apperrors.SinkWriteError
	suite.Require().ErrorAs(err, &sinkErr)
	suite.Require().Len(sinkErr.Failures, 1)
	assert.Equal(suite.T(), 1, sinkErr.Failures[0].OrganizationID)
	assert.Equal(suite.T(), "U", sinkErr.Failures[0].NameUser)
	assert.Contains(suite.T(), err.Error(), "connection reset")
}

// TestLoadRejectsOverlongNameBeforeUpsert tests pre-flight validation of column limits
func (suite *LoaderTestSuite) TestLoadRejectsOverlongNameBeforeUpsert() {
	rows := []models.MonthlySummary{
		{OrganizationID: 1, Name: strings.Repeat("x", 101), NameUser: "U", Month: "2024-03", MessageCount: 1},
		{OrganizationID: 2, Name: "B", NameUser: "V", Month: "2024-03", MessageCount: 1},
	}

	// Only the valid row reaches the repository
	suite.mockRepo.EXPECT().
		Upsert(&rows[1]).
		Return(nil).
		Times(1)

	err := suite.loader.Load(rows)

	suite.Require().Error(err)
	var sinkErr *apperrors.SinkWriteError
	suite.Require().ErrorAs(err, &sinkErr)
	suite.Require().Len(sinkErr.Failures, 1)
	assert.Contains(suite.T(), sinkErr.Failures[0].Err.Error(), "validation failed")
}

// TestLoadRejectsMalformedMonth tests month label validation
func (suite *LoaderTestSuite) TestLoadRejectsMalformedMonth() {
	rows := []models.MonthlySummary{
		{OrganizationID: 1, Name: "A", NameUser: "U", Month: "March 2024", MessageCount: 1},
	}

	err := suite.loader.Load(rows)

	suite.Require().Error(err)
	var sinkErr *apperrors.SinkWriteError
	suite.Require().ErrorAs(err, &sinkErr)
	suite.Len(sinkErr.Failures, 1)
}

// TestLoadEmptyBatch tests that an empty batch is a no-op
func (suite *LoaderTestSuite) TestLoadEmptyBatch() {
	err := suite.loader.Load(nil)

	assert.NoError(suite.T(), err)
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}
