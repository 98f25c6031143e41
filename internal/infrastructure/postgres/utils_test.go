package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/pos-ledger/internal/domain"
)

func pgError(code, message string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, Message: message}
}

func TestClassifyErr_ClaseIntegridad(t *testing.T) {
	err := classifyErr("insert", pgError("23505", "duplicate key"))
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	err = classifyErr("insert", pgError("23503", "foreign key violation"))
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestClassifyErr_AlmacenamientoNoDisponible(t *testing.T) {
	err := classifyErr("query", pgError("08006", "connection failure"))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	err = classifyErr("query", pgError("57P03", "cannot connect now"))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

// Un error cualquiera pasa envuelto con la operación, sin reclasificar.
func TestClassifyErr_OtroErrorPasaEnvuelto(t *testing.T) {
	original := errors.New("algo raro")
	err := classifyErr("scan", original)
	assert.ErrorIs(t, err, original)
	assert.NotErrorIs(t, err, domain.ErrConstraintViolation)
	assert.Contains(t, err.Error(), "scan")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(pgError("23505", "duplicate key")))
	assert.False(t, isUniqueViolation(pgError("23503", "foreign key violation")))
	assert.False(t, isUniqueViolation(errors.New("no es de postgres")))
}
