package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"milkround/internal/adapters/out/postgres/accountrepo"
	"milkround/internal/adapters/out/postgres/orderrepo"
	"milkround/internal/adapters/out/postgres/reviewrepo"
	"milkround/internal/core/application/usecases/queries"
	"milkround/internal/core/domain/model/account"
	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/order"
	"milkround/internal/core/domain/model/review"
	"milkround/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding data in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// stubVerifier accepts a password when the stored hash is "hash:" + password.
type stubVerifier struct{}

func (stubVerifier) Verify(hash, password string) error {
	if hash != "hash:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &accountrepo.AccountDTO{}, &reviewrepo.ReviewDTO{})
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, accounts, reviews").Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TestGetCustomerOrders_EmptyDatabase() {
	customer := suite.seedAccount("Rahim", "rahim@example.com", "Shahid Smrity Hall", "204")
	handler := queries.NewGetCustomerOrdersQueryHandler(suite.db)

	query, err := queries.NewGetCustomerOrdersQuery(customer.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueriesIntegrationTestSuite) TestGetCustomerOrders_ReturnsOwnOrdersNewestFirst() {
	customer := suite.seedAccount("Rahim", "rahim@example.com", "Shahid Smrity Hall", "204")
	other := suite.seedAccount("Karim", "karim@example.com", "Fazlul Haque Hall", "110")

	older := suite.seedOrder(customer.ID(), 2, 1, time.Now().UTC().Add(-time.Hour))
	newer := suite.seedOrder(customer.ID(), 3, 2, time.Now().UTC())
	suite.seedOrder(other.ID(), 1, 1, time.Now().UTC())

	handler := queries.NewGetCustomerOrdersQueryHandler(suite.db)
	query, err := queries.NewGetCustomerOrdersQuery(customer.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].ID.IsEqual(newer.ID()))
	suite.True(result[1].ID.IsEqual(older.ID()))

	suite.Equal("Rahim", result[0].CustomerName)
	suite.Equal("01712345678", result[0].Phone)
	suite.Equal("Shahid Smrity Hall", result[0].Hall)
	suite.Equal("204", result[0].Room)
	suite.Equal(3, result[0].Quantity)
	suite.Equal(3*order.DefaultUnitPrice, result[0].TotalPrice)
	suite.Equal(order.Pending, result[0].Status)
	suite.True(result[0].DeliveryDate.IsEqual(newer.DeliveryDate()))
}

func (suite *QueriesIntegrationTestSuite) TestGetOrdersForDate_NewestPlacedFirst() {
	date := kernel.DateOf(time.Now().UTC()).AddDays(1)

	accountA := suite.seedAccount("Rahim", "rahim@example.com", "Fazlul Haque Hall", "104")
	accountB := suite.seedAccount("Karim", "karim@example.com", "Fazlul Haque Hall", "110")
	accountC := suite.seedAccount("Salma", "salma@example.com", "Shahid Smrity Hall", "201")

	oldest := suite.seedOrder(accountB.ID(), 1, 1, time.Now().UTC().Add(-2*time.Hour))
	middle := suite.seedOrder(accountA.ID(), 1, 1, time.Now().UTC().Add(-time.Hour))
	newest := suite.seedOrder(accountC.ID(), 1, 1, time.Now().UTC())
	suite.seedOrder(accountA.ID(), 1, 2, time.Now().UTC()) // other date

	handler := queries.NewGetOrdersForDateQueryHandler(suite.db)
	query, err := queries.NewGetOrdersForDateQuery(date)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(result[0].ID.IsEqual(newest.ID()))
	suite.True(result[1].ID.IsEqual(middle.ID()))
	suite.True(result[2].ID.IsEqual(oldest.ID()))
}

func (suite *QueriesIntegrationTestSuite) TestGetPendingOrders_FiltersByStatus() {
	customer := suite.seedAccount("Rahim", "rahim@example.com", "Shahid Smrity Hall", "204")

	pending := suite.seedOrder(customer.ID(), 1, 1, time.Now().UTC())

	confirmed := suite.seedOrder(customer.ID(), 1, 2, time.Now().UTC())
	suite.Require().NoError(confirmed.Confirm(time.Now().UTC()))
	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Update(context.Background(), confirmed))

	handler := queries.NewGetPendingOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetPendingOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(pending.ID()))
	suite.Equal(order.Pending, result[0].Status)
}

func (suite *QueriesIntegrationTestSuite) TestGetPendingOrders_NewestPlacedFirst() {
	customer := suite.seedAccount("Rahim", "rahim@example.com", "Shahid Smrity Hall", "204")

	// The newer placement carries the later delivery date, so a
	// delivery-date sort would invert the expected listing.
	older := suite.seedOrder(customer.ID(), 1, 1, time.Now().UTC().Add(-time.Hour))
	newer := suite.seedOrder(customer.ID(), 1, 2, time.Now().UTC())

	handler := queries.NewGetPendingOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetPendingOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(newer.ID()))
	suite.True(result[1].ID.IsEqual(older.ID()))
}

func (suite *QueriesIntegrationTestSuite) TestGetAllOrders_ReturnsEveryOrder() {
	customer := suite.seedAccount("Rahim", "rahim@example.com", "Shahid Smrity Hall", "204")
	other := suite.seedAccount("Karim", "karim@example.com", "Fazlul Haque Hall", "110")

	suite.seedOrder(customer.ID(), 1, 1, time.Now().UTC())
	suite.seedOrder(other.ID(), 2, 1, time.Now().UTC())

	handler := queries.NewGetAllOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetAllOrdersQuery())

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *QueriesIntegrationTestSuite) TestGetLoyaltyStatistics_CountsBottlesAndStreak() {
	customer := suite.seedAccount("Rahim", "rahim@example.com", "Shahid Smrity Hall", "204")
	today := kernel.DateOf(time.Now().UTC())
	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})

	suite.seedDelivered(repo, customer.ID(), 2, today)
	suite.seedDelivered(repo, customer.ID(), 3, today.AddDays(-1))
	// Gap at -2 breaks the streak; the delivery at -3 still counts bottles.
	suite.seedDelivered(repo, customer.ID(), 1, today.AddDays(-3))

	handler := queries.NewGetLoyaltyStatisticsQueryHandler(suite.db)
	query, err := queries.NewGetLoyaltyStatisticsQuery(customer.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(6, result.BottleCount)
	suite.Equal(2, result.CurrentStreak)
}

func (suite *QueriesIntegrationTestSuite) TestGetReviews_JoinsCustomerName() {
	customer := suite.seedAccount("Rahim", "rahim@example.com", "Shahid Smrity Hall", "204")

	r, err := review.NewReview(kernel.NewUUID(), customer.ID(), 4, "fresh every morning", time.Now().UTC())
	suite.Require().NoError(err)
	repo := reviewrepo.NewGormReviewRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), r))

	handler := queries.NewGetReviewsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetReviewsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(r.ID()))
	suite.Equal("Rahim", result[0].CustomerName)
	suite.Equal(4, result[0].Rating)
	suite.Equal("fresh every morning", result[0].Comment)
}

func (suite *QueriesIntegrationTestSuite) TestAuthenticateAccount() {
	customer := suite.seedAccount("Rahim", "rahim@example.com", "Shahid Smrity Hall", "204")
	handler := queries.NewAuthenticateAccountQueryHandler(suite.db, stubVerifier{})

	suite.Run("valid credentials", func() {
		query, err := queries.NewAuthenticateAccountQuery("Rahim@Example.com", "secret123")
		suite.Require().NoError(err)

		result, err := handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.True(result.AccountID.IsEqual(customer.ID()))
		suite.Equal("Rahim", result.Name)
		suite.Equal("rahim@example.com", result.Email)
		suite.Equal(account.RoleCustomer, result.Role)
	})

	suite.Run("wrong password", func() {
		query, err := queries.NewAuthenticateAccountQuery("rahim@example.com", "wrong")
		suite.Require().NoError(err)

		_, err = handler.Handle(context.Background(), query)

		suite.Require().Error(err)
		suite.Require().ErrorIs(err, errs.ErrNotAuthorized)
	})

	suite.Run("unknown email", func() {
		query, err := queries.NewAuthenticateAccountQuery("nobody@example.com", "secret123")
		suite.Require().NoError(err)

		_, err = handler.Handle(context.Background(), query)

		suite.Require().Error(err)
		suite.Require().ErrorIs(err, errs.ErrNotAuthorized)
	})
}

func (suite *QueriesIntegrationTestSuite) seedAccount(name, email, hall, room string) *account.Account {
	a, err := account.NewAccount(kernel.NewUUID(), name, email,
		"01712345678", hall, room, "hash:secret123", time.Now().UTC())
	suite.Require().NoError(err)

	repo := accountrepo.NewGormAccountRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), a)
	suite.Require().NoError(err)

	return a
}

func (suite *QueriesIntegrationTestSuite) seedOrder(
	customerID kernel.UUID, quantity, daysAhead int, createdAt time.Time,
) *order.Order {
	deliveryDate := kernel.DateOf(time.Now().UTC()).AddDays(daysAhead)
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, quantity,
		quantity*order.DefaultUnitPrice, deliveryDate, order.Pending, "", createdAt, createdAt)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), o)
	suite.Require().NoError(err)

	return o
}

// seedDelivered inserts a delivered order on the given date. Past dates are
// restored directly because new orders reject them.
func (suite *QueriesIntegrationTestSuite) seedDelivered(
	repo *orderrepo.GormOrderRepository, customerID kernel.UUID, quantity int, date kernel.Date,
) {
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, quantity,
		quantity*order.DefaultUnitPrice, date, order.Delivered, "", date.Time(), date.Time())
	suite.Require().NoError(err)

	err = repo.Add(context.Background(), o)
	suite.Require().NoError(err)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
