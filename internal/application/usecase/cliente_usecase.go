package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/application/ports"
	"github.com/jhoicas/comandas-web/internal/application/upsert"
	"github.com/jhoicas/comandas-web/internal/domain"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
	"github.com/jhoicas/comandas-web/internal/domain/repository"
)

var clienteLabels = labels{entidade: "cliente", chave: "CPF"}

// clienteGateway adapta ClienteRepository al workflow; la clave es el CPF.
type clienteGateway struct {
	repo repository.ClienteRepository
}

func (g clienteGateway) Key(c *entity.Cliente) string { return c.CPF }
func (g clienteGateway) IDOf(c *entity.Cliente) entity.ID { return c.ID }

func (g clienteGateway) CheckExists(ctx context.Context, cpf string) ([]*entity.Cliente, error) {
	return g.repo.FindByCPF(ctx, cpf)
}

func (g clienteGateway) Create(ctx context.Context, c *entity.Cliente) (repository.SaveResult, error) {
	return g.repo.Create(ctx, c)
}

func (g clienteGateway) Update(ctx context.Context, id entity.ID, c *entity.Cliente) (repository.SaveResult, error) {
	c.ID = id
	return g.repo.Update(ctx, c)
}

// ClienteUseCase casos de uso de clientes: listado, alta/edición protegida contra CPF duplicado, baja y exportación.
type ClienteUseCase struct {
	repo    repository.ClienteRepository
	flow    *upsert.Workflow[*entity.Cliente]
	reports ports.ReportGenerator
}

// NewClienteUseCase construye el caso de uso. reports puede ser nil (exportación deshabilitada).
func NewClienteUseCase(repo repository.ClienteRepository, reports ports.ReportGenerator, log zerolog.Logger) *ClienteUseCase {
	flow := upsert.New[*entity.Cliente](clienteGateway{repo: repo}, ClienteRoutes, log.With().Str("entity", "cliente").Logger())
	return &ClienteUseCase{repo: repo, flow: flow, reports: reports}
}

// List devuelve todos los clientes.
func (uc *ClienteUseCase) List(ctx context.Context) ([]dto.ClienteResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// GetByID obtiene un cliente. domain.ErrNotFound si no existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, entity.ID(id))
	if err != nil {
		return nil, err
	}
	resp := toClienteResponse(c)
	return &resp, nil
}

// Save crea (id vacío) o actualiza el cliente id. Errores de validación vuelven como
// *domain.ValidationError junto con el formulario normalizado.
func (uc *ClienteUseCase) Save(ctx context.Context, in dto.ClienteRequest, id string) (*dto.SubmitResponse, error) {
	c := &entity.Cliente{Nome: in.Nome, CPF: in.CPF, Telefone: in.Telefone}
	if err := domain.NormalizeCliente(c); err != nil {
		return &dto.SubmitResponse{State: dto.SubmitError, Form: toClienteResponse(c)}, err
	}
	out := uc.flow.Submit(ctx, c, entity.ID(id))
	return submitResponse(out, clienteLabels, renderCliente)
}

// CheckCPF verificación al salir del campo CPF. Un CPF incompleto no se consulta.
func (uc *ClienteUseCase) CheckCPF(ctx context.Context, raw, id string) dto.CheckResponse {
	cpf, err := domain.NormalizeCPF(raw)
	if err != nil {
		return dto.CheckResponse{}
	}
	p := uc.flow.Check(ctx, cpf, entity.ID(id))
	if p == nil {
		return dto.CheckResponse{Checked: true}
	}
	return dto.CheckResponse{Checked: true, Conflict: true, Prompt: conflictPrompt(p, clienteLabels, renderCliente)}
}

// Delete borra el cliente si confirmed; devuelve la colección actualizada.
func (uc *ClienteUseCase) Delete(ctx context.Context, id string, confirmed bool) (*dto.DeleteResponse, error) {
	return deleteConfirmed(ctx, id, confirmed, clienteLabels, uc.repo.Delete, uc.List)
}

// ExportPDF genera el PDF con todos los clientes.
func (uc *ClienteUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	if uc.reports == nil {
		return nil, ErrExportDisabled
	}
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.reports.Clientes(ctx, items)
}

func toClienteResponse(c *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{ID: c.ID.String(), Nome: c.Nome, CPF: c.CPF, Telefone: c.Telefone}
}

func renderCliente(c *entity.Cliente) any { return toClienteResponse(c) }
