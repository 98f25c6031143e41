package dto

import "github.com/shopspring/decimal"

// OpenShiftRequest apertura de turno con fondo inicial.
type OpenShiftRequest struct {
	OpeningCash decimal.Decimal `json:"opening_cash"`
}

// CloseShiftRequest cierre de turno con el conteo físico declarado.
type CloseShiftRequest struct {
	ActualClosingCash decimal.Decimal `json:"actual_closing_cash"`
}

// ShiftResponse estado de un turno.
type ShiftResponse struct {
	ID                  string           `json:"id"`
	OperatorID          string           `json:"operator_id"`
	StartTime           string           `json:"start_time"` // formato canónico
	EndTime             string           `json:"end_time,omitempty"`
	OpeningCash         decimal.Decimal  `json:"opening_cash"`
	ExpectedClosingCash *decimal.Decimal `json:"expected_closing_cash,omitempty"`
	ActualClosingCash   *decimal.Decimal `json:"actual_closing_cash,omitempty"`
	Status              string           `json:"status"`
}
