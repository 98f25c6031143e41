package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-ledger/internal/application/dto"
	"github.com/tu-usuario/pos-ledger/internal/application/shift"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
)

// ShiftHandler maneja turnos de caja (protegido).
type ShiftHandler struct {
	uc *shift.UseCase
}

// NewShiftHandler construye el handler.
func NewShiftHandler(uc *shift.UseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// OpenShift abre un turno para el operador del token.
func (h *ShiftHandler) OpenShift(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.OpenShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sh, err := h.uc.OpenShift(userID, in.OpeningCash)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shiftToResponse(sh))
}

// CloseShift cierra el turno con el conteo físico declarado.
func (h *ShiftHandler) CloseShift(c *fiber.Ctx) error {
	shiftID := c.Params("id")
	var in dto.CloseShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sh, err := h.uc.CloseShift(shiftID, in.ActualClosingCash)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(shiftToResponse(sh))
}

// ActiveShift turno abierto del operador del token; 404 si no tiene.
func (h *ShiftHandler) ActiveShift(c *fiber.Ctx) error {
	userID := GetUserID(c)
	sh, err := h.uc.ActiveShiftFor(userID)
	if err != nil {
		return respondDomainError(c, err)
	}
	if sh == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sin turno abierto"})
	}
	return c.JSON(shiftToResponse(sh))
}

// DrawerTransactions movimientos de caja del turno para conciliación.
func (h *ShiftHandler) DrawerTransactions(c *fiber.Ctx) error {
	shiftID := c.Params("id")
	txs, err := h.uc.DrawerTransactionsFor(shiftID)
	if err != nil {
		return respondDomainError(c, err)
	}
	type drawerTxDTO struct {
		ID          string `json:"id"`
		Kind        string `json:"kind"`
		Amount      string `json:"amount"`
		ReferenceID string `json:"reference_id,omitempty"`
		CreatedAt   string `json:"created_at"`
	}
	out := make([]drawerTxDTO, 0, len(txs))
	for _, tx := range txs {
		out = append(out, drawerTxDTO{
			ID:          tx.ID,
			Kind:        tx.Kind,
			Amount:      tx.Amount.StringFixed(2),
			ReferenceID: tx.ReferenceID,
			CreatedAt:   entity.FormatTimestamp(tx.CreatedAt),
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "transactions": out})
}

func shiftToResponse(sh *entity.Shift) dto.ShiftResponse {
	resp := dto.ShiftResponse{
		ID:                  sh.ID,
		OperatorID:          sh.OperatorID,
		StartTime:           entity.FormatTimestamp(sh.StartTime),
		OpeningCash:         sh.OpeningCash,
		ExpectedClosingCash: sh.ExpectedClosingCash,
		ActualClosingCash:   sh.ActualClosingCash,
		Status:              sh.Status,
	}
	if sh.EndTime != nil {
		resp.EndTime = entity.FormatTimestamp(*sh.EndTime)
	}
	return resp
}
