package repository

import "github.com/tu-usuario/pos-ledger/internal/domain/entity"

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	// GetByID obtiene un usuario; nil si no existe.
	GetByID(id string) (*entity.User, error)
	// GetByUsername obtiene un usuario por nombre; nil si no existe.
	GetByUsername(username string) (*entity.User, error)
}
