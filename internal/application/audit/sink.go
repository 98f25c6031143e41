package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
	"github.com/tu-usuario/pos-ledger/pkg/logger"
)

// Recorder colaborador de auditoría fire-and-forget. Se invoca DESPUÉS de un
// commit exitoso, fuera del scope transaccional: sus fallos nunca se propagan.
type Recorder interface {
	RecordAction(actorID *string, action, entityName, entityID, details string)
}

// Sink implementación de Recorder sobre el repositorio de auditoría. Es la
// única pieza del core autorizada a tragarse un error: lo registra en el log
// y sigue.
type Sink struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewSink construye el sink de auditoría.
func NewSink(repo repository.AuditLogRepository, log *logger.Logger) *Sink {
	return &Sink{repo: repo, log: log}
}

// RecordAction persiste la acción con mejor esfuerzo. Cualquier error queda en
// el log a nivel warn y no escala.
func (s *Sink) RecordAction(actorID *string, action, entityName, entityID, details string) {
	entry := &entity.AuditLogEntry{
		ID:         uuid.New().String(),
		ActorID:    actorID,
		Action:     action,
		EntityName: entityName,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  entity.NormalizeTimestamp(time.Now()),
	}
	if err := s.repo.Create(entry); err != nil {
		s.log.Warn().
			Err(err).
			Str("action", action).
			Str("entity", entityName).
			Str("entity_id", entityID).
			Msg("auditoría no registrada")
	}
}

// Nop Recorder que descarta todo (para tests y arranques sin auditoría).
type Nop struct{}

func (Nop) RecordAction(*string, string, string, string, string) {}
