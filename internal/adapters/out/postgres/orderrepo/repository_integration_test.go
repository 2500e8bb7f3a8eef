package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kossylee/fashionhive-backend/internal/adapters/out/postgres/orderrepo"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewOrderItem("silk-fabric", 2, 150, map[string]string{"type": "suit"})
	suite.Require().NoError(err)

	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.OrderItem{item}, "5 Marina Road")
	suite.Require().NoError(err)
	return ord
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	ord := suite.createTestOrder()

	suite.Require().NoError(suite.repository.Add(ctx, ord))

	loaded, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(ord))
	suite.True(loaded.CustomerID().IsEqual(ord.CustomerID()))
	suite.Equal(order.Draft, loaded.Status())
	suite.InEpsilon(300.0, loaded.TotalAmount(), 1e-9)
	suite.Equal("5 Marina Road", loaded.ShippingAddress())
	suite.False(loaded.IsDeleted())

	suite.Require().Len(loaded.Items(), 1)
	suite.Equal("silk-fabric", loaded.Items()[0].ProductName())
	suite.Equal(2, loaded.Items()[0].Quantity())
	suite.Equal("suit", loaded.Items()[0].Customizations()["type"])

	suite.Require().Len(loaded.StatusHistory(), 1)
	suite.Equal(order.Draft, loaded.StatusHistory()[0].Status)
	suite.Equal("Order created", loaded.StatusHistory()[0].Note)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsHistoryAndAssignment() {
	ctx := context.Background()
	ord := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	tailorID := kernel.NewUUID()
	suite.Require().NoError(ord.TransitionTo(order.Paid, "payment confirmed"))
	suite.Require().NoError(ord.TransitionTo(order.InProduction, ""))
	suite.Require().NoError(ord.AssignTailor(tailorID))

	suite.Require().NoError(suite.repository.Update(ctx, ord))

	loaded, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)

	suite.Equal(order.InProduction, loaded.Status())
	suite.Require().NotNil(loaded.Tailor())
	suite.True(loaded.Tailor().IsEqual(tailorID))

	suite.Require().Len(loaded.StatusHistory(), 3)
	suite.Equal("payment confirmed", loaded.StatusHistory()[1].Note)
	suite.Equal("Status updated to in_production", loaded.StatusHistory()[2].Note)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusCAS_Succeeds() {
	ctx := context.Background()
	ord := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	err := suite.repository.UpdateStatusCAS(ctx, ord.ID(), order.Draft, order.Paid)
	suite.Require().NoError(err)

	var status string
	suite.Require().NoError(
		suite.db.Raw("SELECT status FROM orders WHERE id = ?", ord.ID().Bytes()).Scan(&status).Error,
	)
	suite.Equal("paid", status)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusCAS_WrongFromStatus() {
	ctx := context.Background()
	ord := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	err := suite.repository.UpdateStatusCAS(ctx, ord.ID(), order.Paid, order.InProduction)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConcurrentUpdateConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusCAS_ExactlyOneWinner() {
	ctx := context.Background()
	ord := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	const attempts = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
			err := repo.UpdateStatusCAS(ctx, ord.ID(), order.Draft, order.Paid)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			default:
				conflicts++
			}
		}()
	}

	wg.Wait()

	suite.Equal(1, successes)
	suite.Equal(attempts-1, conflicts)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()
	ord := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	suite.Require().NoError(suite.repository.Delete(ctx, ord.ID()))

	_, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var itemCount int64
	suite.Require().NoError(
		suite.db.Model(&orderrepo.OrderItemDTO{}).Where("order_id = ?", ord.ID().Bytes()).Count(&itemCount).Error,
	)
	suite.Zero(itemCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RefusesOrderThatMovedOn() {
	ctx := context.Background()
	ord := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	// Another writer pays the order after our caller read it as draft.
	suite.Require().NoError(suite.repository.UpdateStatusCAS(ctx, ord.ID(), order.Draft, order.Paid))

	err := suite.repository.Delete(ctx, ord.ID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConcurrentUpdateConflict)

	var count int64
	suite.Require().NoError(
		suite.db.Model(&orderrepo.OrderDTO{}).Where("id = ?", ord.ID().Bytes()).Count(&count).Error,
	)
	suite.Equal(int64(1), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestMarkDeleted_KeepsRow() {
	ctx := context.Background()
	ord := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, ord))

	suite.Require().NoError(suite.repository.MarkDeleted(ctx, ord.ID()))

	loaded, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsDeleted())
}

type noopTracker struct{}

func (*noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
