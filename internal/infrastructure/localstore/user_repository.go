package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/almacen-ledger/internal/application/ledger"
	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// keyUsers guarda la colección completa de usuarios.
const keyUsers = "usuarios"

// UserRepo implementación de UserRepository sobre el store clave/valor.
type UserRepo struct {
	kv ledger.KV
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(kv ledger.KV) *UserRepo {
	return &UserRepo{kv: kv}
}

func (r *UserRepo) loadAll() ([]*entity.User, error) {
	raw, ok, err := r.kv.Get(keyUsers)
	if err != nil {
		return nil, fmt.Errorf("leer usuarios: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var users []*entity.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decodificar usuarios: %w", err)
	}
	return users, nil
}

func (r *UserRepo) saveAll(users []*entity.User) error {
	b, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("serializar usuarios: %w", err)
	}
	if err := r.kv.Set(keyUsers, b); err != nil {
		return fmt.Errorf("%w: usuarios: %v", domain.ErrPersistence, err)
	}
	return nil
}

// Create agrega el usuario a la colección y persiste el snapshot.
func (r *UserRepo) Create(user *entity.User) error {
	users, err := r.loadAll()
	if err != nil {
		return err
	}
	return r.saveAll(append(users, user))
}

// GetByID busca por ID; nil sin error si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	users, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// FindByEmail busca por email; nil sin error si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	users, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario con el mismo ID.
func (r *UserRepo) Update(user *entity.User) error {
	users, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, u := range users {
		if u.ID == user.ID {
			users[i] = user
			return r.saveAll(users)
		}
	}
	return domain.ErrUserNotFound
}

// List devuelve todos los usuarios en orden de registro.
func (r *UserRepo) List() ([]*entity.User, error) {
	return r.loadAll()
}
