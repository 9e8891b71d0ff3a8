package proxy

import (
	"context"
	"fmt"

	"github.com/jhoicas/comandas-web/internal/domain"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
	"github.com/jhoicas/comandas-web/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// clienteWire formato del backend para cliente/.
type clienteWire struct {
	ID       entity.ID `json:"id_cliente,omitempty"`
	Nome     string    `json:"nome"`
	CPF      string    `json:"cpf"`
	Telefone string    `json:"telefone"`
}

func (w clienteWire) toEntity() *entity.Cliente {
	return &entity.Cliente{ID: w.ID, Nome: w.Nome, CPF: w.CPF, Telefone: w.Telefone}
}

func clienteToWire(c *entity.Cliente) clienteWire {
	return clienteWire{ID: c.ID, Nome: c.Nome, CPF: c.CPF, Telefone: c.Telefone}
}

// ClienteRepo implementación de ClienteRepository sobre el backend REST.
type ClienteRepo struct {
	col collection
}

// NewClienteRepository construye el adaptador.
func NewClienteRepository(c *Client) *ClienteRepo {
	return &ClienteRepo{col: collection{c: c, prefix: "cliente/", idParam: "id_cliente", label: "cliente"}}
}

// List GET cliente/all.
func (r *ClienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	var ws []clienteWire
	if err := r.col.list(ctx, &ws); err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]*entity.Cliente, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// GetByID GET cliente/one?id_cliente=<id>.
func (r *ClienteRepo) GetByID(ctx context.Context, id entity.ID) (*entity.Cliente, error) {
	var ws []clienteWire
	if err := r.col.one(ctx, id, &ws); err != nil {
		return nil, fmt.Errorf("buscar cliente %s: %w", id, err)
	}
	if len(ws) == 0 {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	return ws[0].toEntity(), nil
}

// Create POST cliente/.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) (repository.SaveResult, error) {
	w := clienteToWire(c)
	w.ID = ""
	res, err := r.col.create(ctx, w)
	if err != nil {
		return res, fmt.Errorf("criar cliente: %w", err)
	}
	return res, nil
}

// Update PUT cliente/ con id_cliente en el cuerpo.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) (repository.SaveResult, error) {
	res, err := r.col.update(ctx, c.ID, clienteToWire(c))
	if err != nil {
		return res, fmt.Errorf("atualizar cliente %s: %w", c.ID, err)
	}
	return res, nil
}

// Delete DELETE cliente/?id_cliente=<id>.
func (r *ClienteRepo) Delete(ctx context.Context, id entity.ID) error {
	if err := r.col.remove(ctx, id); err != nil {
		return fmt.Errorf("excluir cliente %s: %w", id, err)
	}
	return nil
}

// FindByCPF GET cliente/cpf?cpf=<cpf>.
func (r *ClienteRepo) FindByCPF(ctx context.Context, cpf string) ([]*entity.Cliente, error) {
	var ws []clienteWire
	if err := r.col.find(ctx, "cpf", "cpf", cpf, &ws); err != nil {
		return nil, fmt.Errorf("verificar CPF de cliente: %w", err)
	}
	out := make([]*entity.Cliente, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}
