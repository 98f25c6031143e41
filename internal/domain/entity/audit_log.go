package entity

import "time"

// AuditLogEntry registro de auditoría: quién hizo qué sobre qué entidad.
// Este core solo escribe; la lectura es de colaboradores externos.
type AuditLogEntry struct {
	ID         string
	ActorID    *string
	Action     string // "STOCK_PURCHASE", "STOCK_ADJUSTMENT", "CHECKOUT", ...
	EntityName string // "Product", "Sale", "Batch", ...
	EntityID   string
	Details    string
	CreatedAt  time.Time
}
