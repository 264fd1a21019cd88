package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/MikeRez0/orderingest/internal/adapter/config"
	"github.com/MikeRez0/orderingest/internal/adapter/storage"
	"github.com/MikeRez0/orderingest/internal/adapter/storage/repository"
	"github.com/MikeRez0/orderingest/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo connects to the database from TEST_DATABASE_URI and
// applies migrations. Tests are skipped when no database is available.
func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URI")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, &config.Database{DSN: dsn})
	if err != nil {
		t.Skipf("skipping Postgres integration tests: %v", err)
	}
	t.Cleanup(db.Close)

	require.NoError(t, db.RunMigrations())

	_, err = db.Exec(ctx, `TRUNCATE order_items, orders`)
	require.NoError(t, err)

	repo, err := repository.NewRepository(db)
	require.NoError(t, err)

	return repo
}

func newOrder(customer, idempotencyKey string, items ...domain.LineItem) *domain.Order {
	return &domain.Order{
		ID:             uuid.NewString(),
		Customer:       customer,
		Items:          items,
		Status:         domain.OrderStatusCreated,
		IdempotencyKey: idempotencyKey,
		CreatedAt:      time.Now().UTC(),
	}
}

func item(product string, quantity int32, price string) domain.LineItem {
	return domain.LineItem{Product: product, Quantity: quantity, UnitPrice: decimal.MustParse(price)}
}

func TestRepository_CreateAndReadOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	order := newOrder("C1", "idem-1", item("P1", 2, "10"), item("P2", 1, "5.50"))

	created, err := repo.CreateOrder(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, order.ID, created.ID)

	got, err := repo.ReadOrder(ctx, order.ID)
	require.NoError(t, err)

	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, "C1", got.Customer)
	assert.Equal(t, domain.OrderStatusCreated, got.Status)
	assert.Equal(t, "idem-1", got.IdempotencyKey)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "P1", got.Items[0].Product)
	assert.Equal(t, int32(2), got.Items[0].Quantity)
	assert.Zero(t, got.Items[0].UnitPrice.Cmp(decimal.MustParse("10")))
	assert.Equal(t, "P2", got.Items[1].Product)
	assert.Zero(t, got.Items[1].UnitPrice.Cmp(decimal.MustParse("5.50")))
}

func TestRepository_ReadOrderNotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.ReadOrder(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrDataNotFound)

	_, err = repo.ReadOrder(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestRepository_DuplicateIdempotencyKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := newOrder("C1", "idem-dup", item("P1", 1, "10"))
	_, err := repo.CreateOrder(ctx, first)
	require.NoError(t, err)

	second := newOrder("C1", "idem-dup", item("P1", 1, "10"))
	_, err = repo.CreateOrder(ctx, second)
	assert.ErrorIs(t, err, domain.ErrConflictingData)

	// Without a key there is nothing to conflict on.
	third := newOrder("C1", "", item("P1", 1, "10"))
	_, err = repo.CreateOrder(ctx, third)
	assert.NoError(t, err)
	fourth := newOrder("C1", "", item("P1", 1, "10"))
	_, err = repo.CreateOrder(ctx, fourth)
	assert.NoError(t, err)
}

func TestRepository_UpdateOrderStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	order := newOrder("C1", "", item("P1", 1, "10"))
	_, err := repo.CreateOrder(ctx, order)
	require.NoError(t, err)

	err = repo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusTriggered)
	require.NoError(t, err)

	got, err := repo.ReadOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusTriggered, got.Status)

	// A terminal status never moves again.
	err = repo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusTriggerFailed)
	assert.ErrorIs(t, err, domain.ErrOrderStatusTransition)

	got, err = repo.ReadOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusTriggered, got.Status)

	// Backward transitions are refused before touching the database.
	err = repo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusCreated)
	assert.ErrorIs(t, err, domain.ErrOrderStatusTransition)

	err = repo.UpdateOrderStatus(ctx, uuid.NewString(), domain.OrderStatusTriggered)
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestRepository_ListOrdersByStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stuck := newOrder("C1", "", item("P1", 1, "10"))
	_, err := repo.CreateOrder(ctx, stuck)
	require.NoError(t, err)

	done := newOrder("C2", "", item("P2", 1, "20"))
	_, err = repo.CreateOrder(ctx, done)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateOrderStatus(ctx, done.ID, domain.OrderStatusTriggered))

	list, err := repo.ListOrdersByStatus(ctx, []domain.OrderStatus{domain.OrderStatusCreated})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, stuck.ID, list[0].ID)
	require.Len(t, list[0].Items, 1)
	assert.Equal(t, "P1", list[0].Items[0].Product)
}

func TestRepository_Reports(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateOrder(ctx, newOrder("C1", "", item("P1", 2, "10"), item("P2", 1, "5")))
	require.NoError(t, err)
	_, err = repo.CreateOrder(ctx, newOrder("C2", "", item("P1", 1, "10")))
	require.NoError(t, err)

	products, err := repo.ProductPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	p1 := products[0]
	assert.Equal(t, "P1", p1.Product)
	assert.Equal(t, int64(2), p1.OrderCount)
	assert.Zero(t, p1.TotalSales.Cmp(decimal.MustParse("30")))
	assert.Zero(t, p1.AvgSales.Cmp(decimal.MustParse("15")))

	p2 := products[1]
	assert.Equal(t, "P2", p2.Product)
	assert.Equal(t, int64(1), p2.OrderCount)
	assert.Zero(t, p2.TotalSales.Cmp(decimal.MustParse("5")))

	daily, err := repo.DailyTrends(ctx)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, int64(2), daily[0].OrderCount)
	assert.Zero(t, daily[0].TotalSales.Cmp(decimal.MustParse("35")))
}
