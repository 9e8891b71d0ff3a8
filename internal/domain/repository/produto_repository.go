package repository

import (
	"context"

	"github.com/jhoicas/comandas-web/internal/domain/entity"
)

// ProdutoRepository define el puerto hacia la colección produto/ del backend.
type ProdutoRepository interface {
	List(ctx context.Context) ([]*entity.Produto, error)
	GetByID(ctx context.Context, id entity.ID) (*entity.Produto, error)
	Create(ctx context.Context, p *entity.Produto) (SaveResult, error)
	Update(ctx context.Context, p *entity.Produto) (SaveResult, error)
	Delete(ctx context.Context, id entity.ID) error
	FindByNome(ctx context.Context, nome string) ([]*entity.Produto, error)
}
