package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, sub Submission) (*Order, error)
	GetAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create persists the order and its items in one transaction. Items and total
// are never updated afterwards.
func (r *repository) Create(ctx context.Context, sub Submission) (*Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	o := &Order{
		ID:              uuid.NewString(),
		CustomerName:    sub.CustomerName,
		CustomerEmail:   sub.CustomerEmail,
		ShippingAddress: sub.ShippingAddress,
		Items:           sub.Items,
		Total:           sub.Total,
		Status:          sub.Status,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, customer_name, customer_email, address, city, zip_code, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		o.ID, o.CustomerName, o.CustomerEmail,
		o.ShippingAddress.Address, o.ShippingAddress.City, o.ShippingAddress.ZipCode,
		o.Total, o.Status,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for i, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, product_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			o.ID, i, item.ProductID, item.Name, item.Price, item.Quantity,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return o, nil
}

// GetAll returns orders in insertion order with their items attached.
func (r *repository) GetAll(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_name, customer_email, address, city, zip_code, total, status, created_at, updated_at
		FROM orders ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	var ids []string
	index := map[string]int{}

	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return orders, nil
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT order_id, product_id, name, price, quantity
		FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, position`,
		pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item Item
		if err := itemRows.Scan(&orderID, &item.ProductID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return orders, itemRows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	err := scanOrder(r.db.QueryRowContext(ctx, `
		SELECT id, customer_name, customer_email, address, city, zip_code, total, status, created_at, updated_at
		FROM orders WHERE id = $1`, id), &o)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, name, price, quantity
		FROM order_items WHERE order_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}

	return &o, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}

	return r.GetByID(ctx, id)
}

func scanOrder(row interface{ Scan(...any) error }, o *Order) error {
	return row.Scan(
		&o.ID, &o.CustomerName, &o.CustomerEmail,
		&o.ShippingAddress.Address, &o.ShippingAddress.City, &o.ShippingAddress.ZipCode,
		&o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
}
