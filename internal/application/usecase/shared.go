package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/application/upsert"
	"github.com/jhoicas/comandas-web/internal/domain"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
)

// Rutas del frontend por entidad.
var (
	ClienteRoutes     = upsert.Routes{List: "/clientes", Entity: "/cliente"}
	FuncionarioRoutes = upsert.Routes{List: "/funcionarios", Entity: "/funcionario"}
	ProdutoRoutes     = upsert.Routes{List: "/produtos", Entity: "/produto"}
)

// labels textos de una entidad para los mensajes al usuario.
type labels struct {
	entidade string // "cliente"
	chave    string // "CPF"
}

func (l labels) conflict() string {
	return fmt.Sprintf("Já existe um %s cadastrado com este %s.", l.entidade, l.chave)
}

func (l labels) checkFailed() string {
	return fmt.Sprintf("Erro ao verificar %s no sistema.", l.chave)
}

// conflictPrompt arma el diálogo de conflicto. Sin registro (verificación fallida) solo se ofrece cancelar.
func conflictPrompt[T any](p *upsert.Prompt[T], l labels, render func(T) any) *dto.ConflictPrompt {
	cancel := dto.Option{Action: "cancel", Label: "Cancelar"}
	if !p.Found {
		return &dto.ConflictPrompt{Message: l.checkFailed(), Options: []dto.Option{cancel}}
	}
	return &dto.ConflictPrompt{
		Message: l.conflict(),
		Record:  render(p.Record),
		Options: []dto.Option{
			{Action: "view", Label: "Visualizar", Redirect: p.View},
			{Action: "edit", Label: "Editar", Redirect: p.Edit},
			cancel,
		},
	}
}

// submitResponse traduce el resultado del workflow. En error devuelve también el error
// para que el handler elija el código HTTP; la respuesta conserva el formulario.
func submitResponse[T any](out upsert.Outcome[T], l labels, render func(T) any) (*dto.SubmitResponse, error) {
	resp := &dto.SubmitResponse{State: string(out.State), Form: render(out.Form)}
	switch out.State {
	case upsert.StateSuccess:
		resp.ID = out.ID.String()
		resp.Redirect = out.Redirect
		resp.Message = fmt.Sprintf("%s salvo com sucesso.", capitalize(l.entidade))
		return resp, nil
	case upsert.StateConflict:
		resp.Conflict = conflictPrompt(out.Conflict, l, render)
		resp.Message = resp.Conflict.Message
		return resp, nil
	default:
		resp.Message = saveErrorMessage(out.Err, l)
		return resp, out.Err
	}
}

// saveErrorMessage mensaje visible: el "erro" del backend si lo hubo, si no uno genérico.
func saveErrorMessage(err error, l labels) string {
	var missing *upsert.MissingIDError
	if errors.As(err, &missing) {
		if missing.Erro != "" {
			return missing.Erro
		}
		return "Nenhuma resposta válida da API."
	}
	return fmt.Sprintf("Erro ao salvar %s.", l.entidade)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}

// deleteConfirmed borra y vuelve a pedir la colección. Sin confirmación no llama al backend.
func deleteConfirmed[R any](
	ctx context.Context,
	id string,
	confirmed bool,
	l labels,
	remove func(context.Context, entity.ID) error,
	list func(context.Context) ([]R, error),
) (*dto.DeleteResponse, error) {
	if !confirmed {
		return &dto.DeleteResponse{
			Message: fmt.Sprintf("Tem certeza que deseja excluir este %s?", l.entidade),
			Confirmation: []dto.Option{
				{Action: "confirm", Label: "Confirmar"},
				{Action: "cancel", Label: "Cancelar"},
			},
		}, domain.ErrConfirmationRequired
	}
	if err := remove(ctx, entity.ID(id)); err != nil {
		return nil, err
	}
	items, err := list(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteResponse{
		Deleted: true,
		Message: fmt.Sprintf("%s excluído com sucesso.", capitalize(l.entidade)),
		Items:   items,
	}, nil
}

// ErrExportDisabled no hay generador de reportes configurado.
var ErrExportDisabled = errors.New("exportação indisponível")
