package postgres

import (
	"context"

	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo escritura de auditoría sobre PostgreSQL.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create inserta un registro de auditoría.
func (r *AuditLogRepo) Create(entry *entity.AuditLogEntry) error {
	query := `
		INSERT INTO audit_logs (id, actor_id, action, entity_name, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ActorID, entry.Action, entry.EntityName,
		entry.EntityID, entry.Details, entry.CreatedAt,
	)
	if err != nil {
		return classifyErr("create audit log", err)
	}
	return nil
}
