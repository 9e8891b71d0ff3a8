package repository

import (
	"context"

	"github.com/jhoicas/comandas-web/internal/domain/entity"
)

// ClienteRepository define el puerto hacia la colección cliente/ del backend.
type ClienteRepository interface {
	List(ctx context.Context) ([]*entity.Cliente, error)
	// GetByID devuelve domain.ErrNotFound si el backend no tiene el registro.
	GetByID(ctx context.Context, id entity.ID) (*entity.Cliente, error)
	Create(ctx context.Context, c *entity.Cliente) (SaveResult, error)
	Update(ctx context.Context, c *entity.Cliente) (SaveResult, error)
	Delete(ctx context.Context, id entity.ID) error
	// FindByCPF lista los clientes con ese CPF (vacío = no existe).
	FindByCPF(ctx context.Context, cpf string) ([]*entity.Cliente, error)
}
