package shipmentrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/shipmentrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()

	s := suite.createTestShipment("TRK-0001")
	suite.tracker.On("TrackAggregate", s.ID(), s).Once()

	err := suite.repository.Add(ctx, s)
	suite.Require().NoError(err)

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_ReturnsConcurrencyConflict() {
	ctx := context.Background()

	first := suite.createTestShipment("TRK-0002")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestShipment("TRK-0002")

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrencyConflict)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestShipment("TRK-0003")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.True(original.OrderID().IsEqual(retrieved.OrderID()))
	suite.True(original.CarrierAccountID().IsEqual(retrieved.CarrierAccountID()))
	suite.Equal(original.TrackingNumber(), retrieved.TrackingNumber())
	suite.Equal(original.Status(), retrieved.Status())

	suite.Equal(original.Sender().Name(), retrieved.Sender().Name())
	suite.Equal(original.Sender().Address(), retrieved.Sender().Address())
	suite.Equal(original.Sender().Phone(), retrieved.Sender().Phone())
	suite.Equal(original.Recipient().Name(), retrieved.Recipient().Name())
	suite.Equal(original.Recipient().Address(), retrieved.Recipient().Address())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StatusProgressionIsPersisted() {
	ctx := context.Background()

	s := suite.createTestShipment("TRK-0004")
	suite.tracker.On("TrackAggregate", s.ID(), s).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	suite.Require().NoError(s.ChangeStatus(shipment.StatusPickedUp))
	suite.Require().NoError(suite.repository.Update(ctx, s))

	suite.Require().NoError(s.ChangeStatus(shipment.StatusInTransit))
	suite.Require().NoError(suite.repository.Update(ctx, s))

	retrieved, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusInTransit, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetForUpdate_ReturnsShipment() {
	ctx := context.Background()

	s := suite.createTestShipment("TRK-0005")
	suite.tracker.On("TrackAggregate", s.ID(), s).Once()
	suite.Require().NoError(suite.repository.Add(ctx, s))

	retrieved, err := suite.repository.GetForUpdate(ctx, s.ID())
	suite.Require().NoError(err)
	suite.True(s.ID().IsEqual(retrieved.ID()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_InvalidID_ReturnsError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.UUID{})

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestConcurrentStatusChanges_SerializeOnRowLock() {
	ctx := context.Background()

	s := suite.createTestShipment("TRK-0006")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	// Two writers race on the same shipment; the row lock queues the second
	// until the first commits, so it observes the terminal status and fails.
	results := make(chan error, 2)
	for i := range 2 {
		go func(attempt int) {
			results <- suite.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				repo := shipmentrepo.NewGormShipmentRepository(tx, suite.tracker)

				locked, err := repo.GetForUpdate(ctx, s.ID())
				if err != nil {
					return err
				}
				if err = locked.ChangeStatus(shipment.StatusDelivered); err != nil {
					return fmt.Errorf("attempt %d: %w", attempt, err)
				}
				return repo.Update(ctx, locked)
			})
		}(i)
	}

	var failures int
	for range 2 {
		if err := <-results; err != nil {
			failures++
			suite.ErrorIs(err, errs.ErrInvalidTransition)
		}
	}
	suite.Equal(1, failures, "exactly one writer should lose the race")

	retrieved, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusDelivered, retrieved.Status())
}

// createTestShipment builds a pending shipment with both party snapshots.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment(trackingNumber string) *shipment.Shipment {
	sender, err := shipment.NewParty("Gadget Shop", "1 Warehouse Way", "+1-555-0100")
	suite.Require().NoError(err)

	recipient, err := shipment.NewParty("Jordan Reyes", "42 Elm Street", "+1-555-0199")
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		trackingNumber, sender, recipient)
	suite.Require().NoError(err)

	return s
}

func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
