package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/orderingest/internal/adapter/storage"
	"github.com/MikeRez0/orderingest/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// CreateOrder inserts the order and its line items in one transaction.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var idempotencyKey any
		if order.IdempotencyKey != "" {
			idempotencyKey = order.IdempotencyKey
		}

		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("id", "customer", "status", "idempotency_key", "created_at").
			Values(order.ID, order.Customer, order.Status, idempotencyKey, order.CreatedAt)

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		for i, item := range order.Items {
			itemSt := r.db.QueryBuilder.
				Insert("order_items").
				Columns("order_id", "line_no", "product", "quantity", "unit_price").
				Values(order.ID, i+1, item.Product, item.Quantity, item.UnitPrice)

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}

			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "customer", "status", "COALESCE(idempotency_key, '')", "created_at").
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.Customer,
		&order.Status,
		&order.IdempotencyKey,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	order.Items, err = r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateOrderStatus is a compare-and-set: only orders still in the
// created status are moved, so a terminal status is never overwritten.
func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if !domain.OrderStatusCreated.CanTransitionTo(status) {
		return domain.ErrOrderStatusTransition
	}

	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", status).
		Where(sq.Eq{"id": orderID, "status": domain.OrderStatusCreated})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrDataNotFound
		}
		return err
	}

	if tag.RowsAffected() == 0 {
		// Either the order does not exist or it already left created.
		exists, err := r.orderExists(ctx, orderID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrDataNotFound
		}
		return domain.ErrOrderStatusTransition
	}

	return nil
}

func (r *Repository) ListOrdersByStatus(ctx context.Context, statuses []domain.OrderStatus) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "customer", "status", "COALESCE(idempotency_key, '')", "created_at").
		From("orders").
		Where(sq.Eq{"status": statuses}).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.Customer,
			&order.Status,
			&order.IdempotencyKey,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	for _, order := range list {
		order.Items, err = r.loadItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	}

	return list, nil
}

// ProductPerformance aggregates order count and sales per product.
func (r *Repository) ProductPerformance(ctx context.Context) ([]*domain.ProductPerformance, error) {
	statement := r.db.QueryBuilder.
		Select(
			"product",
			"COUNT(DISTINCT order_id) AS order_count",
			"SUM(quantity * unit_price) AS total_sales",
			"ROUND(AVG(quantity * unit_price), 4) AS avg_sales",
		).
		From("order_items").
		GroupBy("product").
		OrderBy("product")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.ProductPerformance, 0)
	for rows.Next() {
		row := domain.ProductPerformance{}
		err := rows.Scan(&row.Product, &row.OrderCount, &row.TotalSales, &row.AvgSales)
		if err != nil {
			return nil, err
		}
		list = append(list, &row)
	}

	return list, rows.Err()
}

// DailyTrends aggregates order count and sales per calendar day.
func (r *Repository) DailyTrends(ctx context.Context) ([]*domain.DailyTrend, error) {
	statement := r.db.QueryBuilder.
		Select(
			"DATE(o.created_at) AS order_date",
			"COUNT(DISTINCT o.id) AS order_count",
			"SUM(i.quantity * i.unit_price) AS total_sales",
		).
		From("orders o").
		Join("order_items i ON i.order_id = o.id").
		GroupBy("DATE(o.created_at)").
		OrderBy("order_date")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.DailyTrend, 0)
	for rows.Next() {
		row := domain.DailyTrend{}
		err := rows.Scan(&row.Date, &row.OrderCount, &row.TotalSales)
		if err != nil {
			return nil, err
		}
		list = append(list, &row)
	}

	return list, rows.Err()
}

func (r *Repository) loadItems(ctx context.Context, orderID string) ([]domain.LineItem, error) {
	statement := r.db.QueryBuilder.
		Select("product", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("line_no")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.LineItem, 0)
	for rows.Next() {
		item := domain.LineItem{}
		err := rows.Scan(&item.Product, &item.Quantity, &item.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *Repository) orderExists(ctx context.Context, orderID string) (bool, error) {
	statement := r.db.QueryBuilder.
		Select("1").
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// isInvalidID reports a malformed UUID passed where the orders key is
// expected. Treated the same as a missing row.
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.InvalidTextRepresentation
}
