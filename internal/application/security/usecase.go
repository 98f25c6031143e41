package security

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-ledger/internal/application/audit"
	"github.com/tu-usuario/pos-ledger/internal/application/dto"
	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
	"github.com/tu-usuario/pos-ledger/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticación de operadores: verifica credenciales y emite el token
// del que salen los actor IDs del ledger. Sin manejo de sesiones.
type UseCase struct {
	userRepo repository.UserRepository
	auditor  audit.Recorder
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de seguridad.
func NewUseCase(userRepo repository.UserRepository, auditor audit.Recorder, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, auditor: auditor, jwtCfg: jwtCfg}
}

// Authenticate compara la contraseña con bcrypt y emite un JWT. Usuario
// inexistente, inactivo o contraseña incorrecta devuelven ErrUnauthorized sin
// distinguir el caso.
func (uc *UseCase) Authenticate(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.auditor.RecordAction(&user.ID, "LOGIN", "User", user.ID, "inicio de sesión")
	return &dto.LoginResponse{Token: token, UserID: user.ID, Role: user.Role}, nil
}

// CreateUser alta de operador (provisión administrativa): hashea la contraseña
// con bcrypt y persiste.
func (uc *UseCase) CreateUser(username, password, fullName, role string) (*entity.User, error) {
	existing, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConstraintViolation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		Active:       true,
		CreatedAt:    entity.NormalizeTimestamp(time.Now()),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
