package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/pos-ledger/internal/application/checkout"
	"github.com/tu-usuario/pos-ledger/internal/application/dto"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
)

// CheckoutHandler maneja el endpoint de checkout (protegido).
type CheckoutHandler struct {
	uc *checkout.UseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.UseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// ProcessCheckout completa una venta: cabecera, líneas, pagos y deducción de
// inventario en una sola transacción. Con stock insuficiente responde 422 con
// el producto y el faltante.
func (h *CheckoutHandler) ProcessCheckout(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SALE", Message: "la venta necesita al menos una línea"})
	}

	sale := &entity.Sale{
		ID:             uuid.New().String(),
		ActorID:        userID,
		Subtotal:       in.Subtotal,
		TaxAmount:      in.TaxAmount,
		DiscountAmount: in.DiscountAmount,
		TotalAmount:    in.TotalAmount,
		TotalProfit:    in.TotalProfit,
		SaleDate:       time.Now(),
	}
	if in.ShiftID != "" {
		shiftID := in.ShiftID
		sale.ShiftID = &shiftID
	}

	items := make([]*entity.SaleLineItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, &entity.SaleLineItem{
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			PriceAtSale:    it.PriceAtSale,
			CostAtSale:     it.CostAtSale,
			DiscountAmount: it.DiscountAmount,
			TaxAmount:      it.TaxAmount,
		})
	}
	payments := make([]*entity.SalePayment, 0, len(in.Payments))
	for _, p := range in.Payments {
		payments = append(payments, &entity.SalePayment{
			Method: p.Method,
			Amount: p.Amount,
		})
	}

	saleID, err := h.uc.ProcessCheckout(c.Context(), sale, items, payments)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CheckoutResponse{SaleID: saleID})
}
