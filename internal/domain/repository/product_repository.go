package repository

import "github.com/tu-usuario/pos-ledger/internal/domain/entity"

// ProductRepository puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID obtiene un producto; nil si no existe.
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	// UpdateCachedStock escribe la proyección de stock. Solo el proyector debe
	// llamarlo, siempre dentro del mismo scope transaccional que el ledger.
	UpdateCachedStock(productID string, stock int) error
}
