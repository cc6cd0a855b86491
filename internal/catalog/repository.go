package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, input NewProduct, sellerID string) (Product, error)
	Update(ctx context.Context, id string, input UpdateProduct, sellerID string) (Product, error)
	Delete(ctx context.Context, id, sellerID string) error
	Categories(ctx context.Context) ([]string, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, price, description, category, stock, image, seller_id, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }, p *Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Description, &p.Category,
		&p.Stock, &p.Image, &p.SellerID, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id), &p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, input NewProduct, sellerID string) (Product, error) {
	var p Product
	err := scanProduct(r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, price, description, category, stock, image, seller_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+productColumns,
		input.Name, input.Price, input.Description, input.Category,
		input.Stock, input.Image, sellerID,
	), &p)
	return p, err
}

func (r *repository) Update(ctx context.Context, id string, input UpdateProduct, sellerID string) (Product, error) {
	sets := []string{}
	args := []any{}
	i := 1

	addSet := func(col string, val any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	if input.Name != nil {
		addSet("name", *input.Name)
	}
	if input.Price != nil {
		addSet("price", *input.Price)
	}
	if input.Description != nil {
		addSet("description", *input.Description)
	}
	if input.Category != nil {
		addSet("category", *input.Category)
	}
	if input.Stock != nil {
		addSet("stock", *input.Stock)
	}
	if input.Image != nil {
		addSet("image", *input.Image)
	}

	if len(sets) == 0 {
		return Product{}, ErrNoFields
	}

	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(
		`UPDATE products SET %s WHERE id = $%d AND seller_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), i, i+1, productColumns,
	)
	args = append(args, id, sellerID)

	var p Product
	err := scanProduct(r.db.QueryRowContext(ctx, query, args...), &p)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *repository) Delete(ctx context.Context, id, sellerID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = $1 AND seller_id = $2`, id, sellerID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
