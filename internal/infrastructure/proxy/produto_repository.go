package proxy

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/comandas-web/internal/domain"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
	"github.com/jhoicas/comandas-web/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// produtoWire formato del backend para produto/. valor_unitario viaja como número JSON.
type produtoWire struct {
	ID            entity.ID   `json:"id_produto,omitempty"`
	Nome          string      `json:"nome"`
	Descricao     string      `json:"descricao"`
	ValorUnitario json.Number `json:"valor_unitario"`
	Foto          string      `json:"foto"`
}

func (w produtoWire) toEntity() *entity.Produto {
	valor := decimal.Zero
	if w.ValorUnitario != "" {
		if v, err := decimal.NewFromString(w.ValorUnitario.String()); err == nil {
			valor = v
		}
	}
	return &entity.Produto{ID: w.ID, Nome: w.Nome, Descricao: w.Descricao, ValorUnitario: valor, Foto: w.Foto}
}

func produtoToWire(p *entity.Produto) produtoWire {
	return produtoWire{
		ID:            p.ID,
		Nome:          p.Nome,
		Descricao:     p.Descricao,
		ValorUnitario: json.Number(p.ValorUnitario.StringFixed(2)),
		Foto:          p.Foto,
	}
}

// ProdutoRepo implementación de ProdutoRepository sobre el backend REST.
type ProdutoRepo struct {
	col collection
}

// NewProdutoRepository construye el adaptador.
func NewProdutoRepository(c *Client) *ProdutoRepo {
	return &ProdutoRepo{col: collection{c: c, prefix: "produto/", idParam: "id_produto", label: "produto"}}
}

// List GET produto/all.
func (r *ProdutoRepo) List(ctx context.Context) ([]*entity.Produto, error) {
	var ws []produtoWire
	if err := r.col.list(ctx, &ws); err != nil {
		return nil, fmt.Errorf("listar produtos: %w", err)
	}
	out := make([]*entity.Produto, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// GetByID GET produto/one?id_produto=<id>.
func (r *ProdutoRepo) GetByID(ctx context.Context, id entity.ID) (*entity.Produto, error) {
	var ws []produtoWire
	if err := r.col.one(ctx, id, &ws); err != nil {
		return nil, fmt.Errorf("buscar produto %s: %w", id, err)
	}
	if len(ws) == 0 {
		return nil, fmt.Errorf("produto %s: %w", id, domain.ErrNotFound)
	}
	return ws[0].toEntity(), nil
}

// Create POST produto/.
func (r *ProdutoRepo) Create(ctx context.Context, p *entity.Produto) (repository.SaveResult, error) {
	w := produtoToWire(p)
	w.ID = ""
	res, err := r.col.create(ctx, w)
	if err != nil {
		return res, fmt.Errorf("criar produto: %w", err)
	}
	return res, nil
}

// Update PUT produto/ con id_produto en el cuerpo.
func (r *ProdutoRepo) Update(ctx context.Context, p *entity.Produto) (repository.SaveResult, error) {
	res, err := r.col.update(ctx, p.ID, produtoToWire(p))
	if err != nil {
		return res, fmt.Errorf("atualizar produto %s: %w", p.ID, err)
	}
	return res, nil
}

// Delete DELETE produto/?id_produto=<id>.
func (r *ProdutoRepo) Delete(ctx context.Context, id entity.ID) error {
	if err := r.col.remove(ctx, id); err != nil {
		return fmt.Errorf("excluir produto %s: %w", id, err)
	}
	return nil
}

// FindByNome GET produto/?nome=<nome>.
func (r *ProdutoRepo) FindByNome(ctx context.Context, nome string) ([]*entity.Produto, error) {
	var ws []produtoWire
	if err := r.col.find(ctx, "", "nome", nome, &ws); err != nil {
		return nil, fmt.Errorf("verificar nome de produto: %w", err)
	}
	out := make([]*entity.Produto, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}
