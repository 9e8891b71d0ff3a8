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

var funcionarioLabels = labels{entidade: "funcionário", chave: "CPF"}

type funcionarioGateway struct {
	repo repository.FuncionarioRepository
}

func (g funcionarioGateway) Key(f *entity.Funcionario) string { return f.CPF }
func (g funcionarioGateway) IDOf(f *entity.Funcionario) entity.ID { return f.ID }

func (g funcionarioGateway) CheckExists(ctx context.Context, cpf string) ([]*entity.Funcionario, error) {
	return g.repo.FindByCPF(ctx, cpf)
}

func (g funcionarioGateway) Create(ctx context.Context, f *entity.Funcionario) (repository.SaveResult, error) {
	return g.repo.Create(ctx, f)
}

func (g funcionarioGateway) Update(ctx context.Context, id entity.ID, f *entity.Funcionario) (repository.SaveResult, error) {
	f.ID = id
	return g.repo.Update(ctx, f)
}

// FuncionarioUseCase casos de uso de funcionarios. La senha nunca sale en las respuestas.
type FuncionarioUseCase struct {
	repo    repository.FuncionarioRepository
	flow    *upsert.Workflow[*entity.Funcionario]
	reports ports.ReportGenerator
}

// NewFuncionarioUseCase construye el caso de uso.
func NewFuncionarioUseCase(repo repository.FuncionarioRepository, reports ports.ReportGenerator, log zerolog.Logger) *FuncionarioUseCase {
	flow := upsert.New[*entity.Funcionario](funcionarioGateway{repo: repo}, FuncionarioRoutes, log.With().Str("entity", "funcionario").Logger())
	return &FuncionarioUseCase{repo: repo, flow: flow, reports: reports}
}

// List devuelve todos los funcionarios.
func (uc *FuncionarioUseCase) List(ctx context.Context) ([]dto.FuncionarioResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FuncionarioResponse, 0, len(items))
	for _, f := range items {
		out = append(out, toFuncionarioResponse(f))
	}
	return out, nil
}

// GetByID obtiene un funcionario.
func (uc *FuncionarioUseCase) GetByID(ctx context.Context, id string) (*dto.FuncionarioResponse, error) {
	f, err := uc.repo.GetByID(ctx, entity.ID(id))
	if err != nil {
		return nil, err
	}
	resp := toFuncionarioResponse(f)
	return &resp, nil
}

// Save crea o actualiza. En edición, senha vacía conserva la contraseña actual.
func (uc *FuncionarioUseCase) Save(ctx context.Context, in dto.FuncionarioRequest, id string) (*dto.SubmitResponse, error) {
	f := &entity.Funcionario{
		Nome:      in.Nome,
		CPF:       in.CPF,
		Matricula: in.Matricula,
		Telefone:  in.Telefone,
		Senha:     in.Senha,
		Grupo:     entity.Grupo(in.Grupo),
	}
	if err := domain.NormalizeFuncionario(f, entity.ID(id).Empty()); err != nil {
		return &dto.SubmitResponse{State: dto.SubmitError, Form: toFuncionarioResponse(f)}, err
	}
	out := uc.flow.Submit(ctx, f, entity.ID(id))
	return submitResponse(out, funcionarioLabels, renderFuncionario)
}

// CheckCPF verificación al salir del campo CPF.
func (uc *FuncionarioUseCase) CheckCPF(ctx context.Context, raw, id string) dto.CheckResponse {
	cpf, err := domain.NormalizeCPF(raw)
	if err != nil {
		return dto.CheckResponse{}
	}
	p := uc.flow.Check(ctx, cpf, entity.ID(id))
	if p == nil {
		return dto.CheckResponse{Checked: true}
	}
	return dto.CheckResponse{Checked: true, Conflict: true, Prompt: conflictPrompt(p, funcionarioLabels, renderFuncionario)}
}

// Delete borra el funcionario si confirmed y devuelve la colección actualizada.
func (uc *FuncionarioUseCase) Delete(ctx context.Context, id string, confirmed bool) (*dto.DeleteResponse, error) {
	return deleteConfirmed(ctx, id, confirmed, funcionarioLabels, uc.repo.Delete, uc.List)
}

// ExportPDF genera el PDF con todos los funcionarios.
func (uc *FuncionarioUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	if uc.reports == nil {
		return nil, ErrExportDisabled
	}
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.reports.Funcionarios(ctx, items)
}

func toFuncionarioResponse(f *entity.Funcionario) dto.FuncionarioResponse {
	return dto.FuncionarioResponse{
		ID:        f.ID.String(),
		Nome:      f.Nome,
		CPF:       f.CPF,
		Matricula: f.Matricula,
		Telefone:  f.Telefone,
		Grupo:     int(f.Grupo),
		GrupoNome: f.Grupo.String(),
	}
}

func renderFuncionario(f *entity.Funcionario) any { return toFuncionarioResponse(f) }
