package localstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/infrastructure/localstore"
)

func TestUserRepo_CreateYBusquedas(t *testing.T) {
	repo := localstore.NewUserRepository(localstore.NewMemory())

	require.NoError(t, repo.Create(&entity.User{ID: "u1", Email: "ana@almacen.local", Name: "Ana", Role: entity.RoleAdmin}))
	require.NoError(t, repo.Create(&entity.User{ID: "u2", Email: "luis@almacen.local", Name: "Luis", Role: entity.RoleVendedor}))

	byID, err := repo.GetByID("u2")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Luis", byID.Name)

	byEmail, err := repo.FindByEmail("ana@almacen.local")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "u1", byEmail.ID)

	// Ausente: nil sin error.
	missing, err := repo.GetByID("nadie")
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "u1", all[0].ID, "orden de registro")
}

func TestUserRepo_Update(t *testing.T) {
	repo := localstore.NewUserRepository(localstore.NewMemory())
	require.NoError(t, repo.Create(&entity.User{ID: "u1", Email: "ana@almacen.local", Role: entity.RoleVendedor}))

	assert.ErrorIs(t, repo.Update(&entity.User{ID: "fantasma"}), domain.ErrUserNotFound)

	require.NoError(t, repo.Update(&entity.User{ID: "u1", Email: "ana@almacen.local", Role: entity.RoleBodeguero}))
	u, err := repo.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBodeguero, u.Role)
}
