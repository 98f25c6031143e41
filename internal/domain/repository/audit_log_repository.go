package repository

import "github.com/tu-usuario/pos-ledger/internal/domain/entity"

// AuditLogRepository puerto de escritura del log de auditoría.
// Este core nunca lee auditoría; el listado existe para colaboradores externos.
type AuditLogRepository interface {
	Create(entry *entity.AuditLogEntry) error
}
