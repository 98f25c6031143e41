package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de Product sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta un producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	if product.CreatedAt.IsZero() {
		product.CreatedAt = entity.NormalizeTimestamp(time.Now())
	}
	product.UpdatedAt = product.CreatedAt
	query := `
		INSERT INTO products (id, name, unit_cost, unit_price, cached_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.UnitCost, product.UnitPrice,
		product.CachedStock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return classifyErr("create product", err)
	}
	return nil
}

// GetByID obtiene un producto; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, unit_cost, unit_price, cached_stock, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.UnitCost, &p.UnitPrice, &p.CachedStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyErr("get product", err)
	}
	return &p, nil
}

// List productos paginados por nombre.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, unit_cost, unit_price, cached_stock, created_at, updated_at
		FROM products ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, classifyErr("list products", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitCost, &p.UnitPrice,
			&p.CachedStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, classifyErr("scan product", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyErr("iterate products", err)
	}
	return list, nil
}

// UpdateCachedStock escribe la proyección de stock del producto.
func (r *ProductRepo) UpdateCachedStock(productID string, stock int) error {
	query := `UPDATE products SET cached_stock = $1, updated_at = now() WHERE id = $2`
	tag, err := r.q.Exec(context.Background(), query, stock, productID)
	if err != nil {
		return classifyErr("update cached stock", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
