package repository

import (
	"context"

	"github.com/jhoicas/comandas-web/internal/domain/entity"
)

// FuncionarioRepository define el puerto hacia la colección funcionario/ del backend.
// Las lecturas nunca traen Senha; Update omite Senha cuando está vacía.
type FuncionarioRepository interface {
	List(ctx context.Context) ([]*entity.Funcionario, error)
	GetByID(ctx context.Context, id entity.ID) (*entity.Funcionario, error)
	Create(ctx context.Context, f *entity.Funcionario) (SaveResult, error)
	Update(ctx context.Context, f *entity.Funcionario) (SaveResult, error)
	Delete(ctx context.Context, id entity.ID) error
	FindByCPF(ctx context.Context, cpf string) ([]*entity.Funcionario, error)
}

// LoginResult respuesta de funcionario/login.
type LoginResult struct {
	Usuario string
	Nome    string
	Grupo   entity.Grupo // 0 si el backend no lo informó
	Token   string
}

// LoginGateway autentica funcionarios contra el backend.
type LoginGateway interface {
	Login(ctx context.Context, cpf, senha string) (*LoginResult, error)
}
