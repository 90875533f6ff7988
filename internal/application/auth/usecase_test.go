package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-ledger/internal/application/auth"
	"github.com/tu-usuario/almacen-ledger/internal/application/dto"
	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/infrastructure/localstore"
	"github.com/tu-usuario/almacen-ledger/pkg/jwt"
)

func newAuthUC() *auth.AuthUseCase {
	return auth.NewAuthUseCase(localstore.NewUserRepository(localstore.NewMemory()), auth.JWTConfig{
		Secret:     "secreto-de-test",
		ExpMinutes: 60,
		Issuer:     "almacen-ledger-test",
	})
}

func TestRegisterUser_DefaultsYHash(t *testing.T) {
	uc := newAuthUC()

	u, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@almacen.local",
		Password: "clave-muy-larga",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleVendedor, u.Role, "rol por defecto")
	assert.Equal(t, "ana@almacen.local", u.Name, "el nombre cae al email si no se envía")
	assert.Equal(t, "active", u.Status)
	assert.NotEmpty(t, u.ID)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@almacen.local", Password: "clave-muy-larga"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@almacen.local", Password: "otra-clave-123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenConClaimsDelUsuario(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@almacen.local",
		Password: "clave-muy-larga",
		Name:     "Ana",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	res, err := uc.Login(dto.LoginRequest{Email: "ana@almacen.local", Password: "clave-muy-larga"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "Ana", res.User.Name)

	userID, name, role, err := jwt.Parse("secreto-de-test", res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, userID)
	assert.Equal(t, "Ana", name)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_Rechazos(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@almacen.local", Password: "clave-muy-larga"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@almacen.local", Password: "clave-muy-larga"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@almacen.local", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
