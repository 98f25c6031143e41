package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de ventas sobre PostgreSQL (usable con pool o tx).
// Cabecera, líneas y pagos no tienen UPDATE: una venta completada es inmutable.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// CreateSale persiste la cabecera de la venta.
func (r *SaleRepo) CreateSale(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, actor_id, shift_id, subtotal, tax_amount, discount_amount, total_amount, total_profit, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ActorID, sale.ShiftID, sale.Subtotal, sale.TaxAmount,
		sale.DiscountAmount, sale.TotalAmount, sale.TotalProfit, sale.SaleDate,
	)
	if err != nil {
		return classifyErr("create sale", err)
	}
	return nil
}

// CreateLineItem persiste una línea de venta.
func (r *SaleRepo) CreateLineItem(item *entity.SaleLineItem) error {
	query := `
		INSERT INTO sale_line_items (id, sale_id, product_id, quantity, price_at_sale, cost_at_sale, discount_amount, tax_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity,
		item.PriceAtSale, item.CostAtSale, item.DiscountAmount, item.TaxAmount,
	)
	if err != nil {
		return classifyErr("create sale line item", err)
	}
	return nil
}

// CreatePayment persiste un pago de la venta.
func (r *SaleRepo) CreatePayment(payment *entity.SalePayment) error {
	query := `
		INSERT INTO sale_payments (id, sale_id, method, amount, payment_date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.SaleID, payment.Method, payment.Amount, payment.PaymentDate,
	)
	if err != nil {
		return classifyErr("create sale payment", err)
	}
	return nil
}

const saleColumns = `id, actor_id, shift_id, subtotal, tax_amount, discount_amount, total_amount, total_profit, sale_date`

// GetByID obtiene la cabecera; nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ActorID, &s.ShiftID, &s.Subtotal, &s.TaxAmount,
		&s.DiscountAmount, &s.TotalAmount, &s.TotalProfit, &s.SaleDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyErr("get sale", err)
	}
	return &s, nil
}

// LineItemsFor líneas de la venta en orden de inserción.
func (r *SaleRepo) LineItemsFor(saleID string) ([]*entity.SaleLineItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, price_at_sale, cost_at_sale, discount_amount, tax_amount
		FROM sale_line_items WHERE sale_id = $1 ORDER BY ctid`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, classifyErr("sale line items", err)
	}
	defer rows.Close()
	var list []*entity.SaleLineItem
	for rows.Next() {
		var it entity.SaleLineItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity,
			&it.PriceAtSale, &it.CostAtSale, &it.DiscountAmount, &it.TaxAmount); err != nil {
			return nil, classifyErr("scan sale line item", err)
		}
		list = append(list, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyErr("iterate sale line items", err)
	}
	return list, nil
}

// PaymentsFor pagos de la venta en orden de inserción.
func (r *SaleRepo) PaymentsFor(saleID string) ([]*entity.SalePayment, error) {
	query := `
		SELECT id, sale_id, method, amount, payment_date
		FROM sale_payments WHERE sale_id = $1 ORDER BY payment_date ASC, ctid`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, classifyErr("sale payments", err)
	}
	defer rows.Close()
	var list []*entity.SalePayment
	for rows.Next() {
		var p entity.SalePayment
		if err := rows.Scan(&p.ID, &p.SaleID, &p.Method, &p.Amount, &p.PaymentDate); err != nil {
			return nil, classifyErr("scan sale payment", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyErr("iterate sale payments", err)
	}
	return list, nil
}

// ListByDateRange cabeceras en la ventana [from, to], más antigua primero.
func (r *SaleRepo) ListByDateRange(from, to time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_date >= $1 AND sale_date <= $2 ORDER BY sale_date ASC`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, classifyErr("sales by date range", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ActorID, &s.ShiftID, &s.Subtotal, &s.TaxAmount,
			&s.DiscountAmount, &s.TotalAmount, &s.TotalProfit, &s.SaleDate); err != nil {
			return nil, classifyErr("scan sale", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyErr("iterate sales", err)
	}
	return list, nil
}
