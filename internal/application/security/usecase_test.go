package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-ledger/internal/application/audit"
	"github.com/tu-usuario/pos-ledger/internal/application/dto"
	"github.com/tu-usuario/pos-ledger/internal/application/security"
	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/pos-ledger/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	c := *u
	r.users[c.Username] = &c
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func newSecurityUC(repo *fakeUserRepo) *security.UseCase {
	return security.NewUseCase(repo, audit.Nop{}, security.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "pos-ledger-test",
	})
}

func TestAuthenticate_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newSecurityUC(repo)
	user, err := uc.CreateUser("maria", "clave-segura", "María Pérez", entity.RoleCashier)
	require.NoError(t, err)

	resp, err := uc.Authenticate(dto.LoginRequest{Username: "maria", Password: "clave-segura"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, entity.RoleCashier, resp.Role)

	// El token debe ser verificable y llevar el usuario y el rol
	userID, role, err := pkgjwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleCashier, role)
}

func TestAuthenticate_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newSecurityUC(repo)
	_, err := uc.CreateUser("maria", "clave-segura", "María Pérez", entity.RoleCashier)
	require.NoError(t, err)

	_, err = uc.Authenticate(dto.LoginRequest{Username: "maria", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_UsuarioInexistente(t *testing.T) {
	uc := newSecurityUC(newFakeUserRepo())
	_, err := uc.Authenticate(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario inexistente y password incorrecta deben ser indistinguibles")
}

func TestAuthenticate_UsuarioInactivo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newSecurityUC(repo)
	_, err := uc.CreateUser("maria", "clave-segura", "María Pérez", entity.RoleCashier)
	require.NoError(t, err)
	repo.users["maria"].Active = false

	_, err = uc.Authenticate(dto.LoginRequest{Username: "maria", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateUser_HasheaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newSecurityUC(repo)

	user, err := uc.CreateUser("admin", "clave-admin", "Admin", entity.RoleAdmin)
	require.NoError(t, err)
	assert.NotEqual(t, "clave-admin", user.PasswordHash,
		"la contraseña nunca se guarda en claro")
	assert.True(t, user.Active)
}

func TestCreateUser_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newSecurityUC(repo)

	_, err := uc.CreateUser("maria", "clave1", "María", entity.RoleCashier)
	require.NoError(t, err)

	_, err = uc.CreateUser("maria", "clave2", "Otra María", entity.RoleCashier)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}
