package complaintrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/complaintrepo"
	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var filedAt = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ComplaintRepositoryIntegrationTestSuite provides integration tests for
// ComplaintRepository using PostgreSQL containers.
type ComplaintRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *complaintrepo.GormComplaintRepository
	tracker    *MockAggregateTracker
}

func (suite *ComplaintRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&complaintrepo.ComplaintDTO{},
		&complaintrepo.ComplaintMessageDTO{},
	))
}

func (suite *ComplaintRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE complaint_messages, complaints").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = complaintrepo.NewGormComplaintRepository(suite.db, suite.tracker)
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestAdd_ValidComplaint_Success() {
	ctx := context.Background()

	c := suite.createTestComplaint()
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()

	err := suite.repository.Add(ctx, c)
	suite.Require().NoError(err)

	suite.assertComplaintCount(1)
	suite.assertMessageCount(len(c.Messages()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsConcurrencyConflict() {
	ctx := context.Background()

	c := suite.createTestComplaint()
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()

	err := suite.repository.Add(ctx, c)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, c)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrencyConflict)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestGet_ExistingComplaint_ReturnsComplaintWithThread() {
	ctx := context.Background()

	original := suite.createTestComplaint()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()

	err := suite.repository.Add(ctx, original)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.True(original.ReporterID().IsEqual(retrieved.ReporterID()))
	suite.Equal(original.Category(), retrieved.Category())
	suite.Equal(original.Subject(), retrieved.Subject())
	suite.Equal(original.Status(), retrieved.Status())
	suite.WithinDuration(original.CreatedAt(), retrieved.CreatedAt(), time.Second)
	suite.WithinDuration(original.DueAt(), retrieved.DueAt(), time.Second)

	originalMessages := original.Messages()
	retrievedMessages := retrieved.Messages()
	suite.Require().Len(retrievedMessages, len(originalMessages))
	for i, om := range originalMessages {
		rm := retrievedMessages[i]
		suite.True(om.ID().IsEqual(rm.ID()))
		suite.True(om.SenderID().IsEqual(rm.SenderID()))
		suite.Equal(om.SenderKind(), rm.SenderKind())
		suite.Equal(om.Content(), rm.Content())
		suite.Equal(om.Attachments(), rm.Attachments())
		suite.WithinDuration(om.SentAt(), rm.SentAt(), time.Second)
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestGet_NonExistentComplaint_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestUpdate_AppendedMessagesArePersisted() {
	ctx := context.Background()

	c := suite.createTestComplaint()
	suite.tracker.On("TrackAggregate", c.ID(), c).Twice()

	err := suite.repository.Add(ctx, c)
	suite.Require().NoError(err)

	adminReply, err := complaint.NewMessage(
		kernel.NewUUID(), kernel.NewUUID(), complaint.SenderAdmin,
		"We are looking into it.", nil, filedAt.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(c.AppendMessage(adminReply))

	err = suite.repository.Update(ctx, c)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)

	suite.Len(retrieved.Messages(), 2)
	suite.Require().NotNil(retrieved.FirstResponseAt())
	suite.WithinDuration(filedAt.Add(time.Hour), *retrieved.FirstResponseAt(), time.Second)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestUpdate_StatusChangeIsPersisted() {
	ctx := context.Background()

	c := suite.createTestComplaint()
	suite.tracker.On("TrackAggregate", c.ID(), c).Twice()

	err := suite.repository.Add(ctx, c)
	suite.Require().NoError(err)

	resolvedAt := filedAt.Add(2 * time.Hour)
	suite.Require().NoError(c.UpdateStatus(complaint.StatusResolved, resolvedAt))

	err = suite.repository.Update(ctx, c)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)

	suite.Equal(complaint.StatusResolved, retrieved.Status())
	suite.Require().NotNil(retrieved.ResolvedAt())
	suite.WithinDuration(resolvedAt, *retrieved.ResolvedAt(), time.Second)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestGet_MessagesComeBackInThreadOrder() {
	ctx := context.Background()

	reporterID := kernel.NewUUID()
	c, err := complaint.NewComplaint(
		kernel.NewUUID(), reporterID, nil,
		complaint.CategoryProduct, "Wrong item delivered", filedAt)
	suite.Require().NoError(err)

	// Append out of chronological order; the read side orders by sent_at.
	late, err := complaint.NewMessage(
		kernel.NewUUID(), reporterID, complaint.SenderCustomer,
		"Any update?", nil, filedAt.Add(3*time.Hour))
	suite.Require().NoError(err)
	early, err := complaint.NewMessage(
		kernel.NewUUID(), reporterID, complaint.SenderCustomer,
		"I ordered the blue one.", nil, filedAt.Add(time.Hour))
	suite.Require().NoError(err)

	suite.Require().NoError(c.AppendMessage(late))
	suite.Require().NoError(c.AppendMessage(early))

	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	err = suite.repository.Add(ctx, c)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)

	messages := retrieved.Messages()
	suite.Require().Len(messages, 2)
	suite.Equal("I ordered the blue one.", messages[0].Content())
	suite.Equal("Any update?", messages[1].Content())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestGetForUpdate_ReturnsComplaint() {
	ctx := context.Background()

	c := suite.createTestComplaint()
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()

	err := suite.repository.Add(ctx, c)
	suite.Require().NoError(err)

	// Outside a transaction the lock is released immediately; this verifies
	// the locking clause produces valid SQL and the full thread loads.
	retrieved, err := suite.repository.GetForUpdate(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(c.ID().IsEqual(retrieved.ID()))
	suite.Len(retrieved.Messages(), len(c.Messages()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ComplaintRepositoryIntegrationTestSuite) TestGet_InvalidID_ReturnsError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.UUID{})

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
	suite.tracker.AssertExpectations(suite.T())
}

// createTestComplaint builds a complaint with an opening customer message.
func (suite *ComplaintRepositoryIntegrationTestSuite) createTestComplaint() *complaint.Complaint {
	reporterID := kernel.NewUUID()
	targetID := kernel.NewUUID()

	c, err := complaint.NewComplaint(
		kernel.NewUUID(), reporterID, &targetID,
		complaint.CategoryDelivery, "Package arrived damaged", filedAt)
	suite.Require().NoError(err)

	opening, err := complaint.NewMessage(
		kernel.NewUUID(), reporterID, complaint.SenderCustomer,
		"The box was crushed on arrival.", []string{"photo-1.jpg", "photo-2.jpg"}, filedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(c.AppendMessage(opening))

	return c
}

func (suite *ComplaintRepositoryIntegrationTestSuite) assertComplaintCount(expected int) {
	var count int64
	err := suite.db.Model(&complaintrepo.ComplaintDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func (suite *ComplaintRepositoryIntegrationTestSuite) assertMessageCount(expected int) {
	var count int64
	err := suite.db.Model(&complaintrepo.ComplaintMessageDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestComplaintRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ComplaintRepositoryIntegrationTestSuite))
}
