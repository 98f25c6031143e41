package repository

import (
	"time"

	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
)

// SaleRepository puerto de persistencia de ventas: cabecera, líneas y pagos.
// Las tres escrituras solo tienen sentido dentro del scope transaccional del
// orquestador de checkout; no hay operaciones de actualización.
type SaleRepository interface {
	CreateSale(sale *entity.Sale) error
	CreateLineItem(item *entity.SaleLineItem) error
	CreatePayment(payment *entity.SalePayment) error
	// GetByID obtiene la cabecera; nil si no existe.
	GetByID(id string) (*entity.Sale, error)
	// LineItemsFor líneas de una venta en orden de inserción.
	LineItemsFor(saleID string) ([]*entity.SaleLineItem, error)
	// PaymentsFor pagos de una venta en orden de inserción.
	PaymentsFor(saleID string) ([]*entity.SalePayment, error)
	// ListByDateRange cabeceras en una ventana de tiempo, más antigua primero.
	// Lectura para colaboradores de reporte.
	ListByDateRange(from, to time.Time) ([]*entity.Sale, error)
}
