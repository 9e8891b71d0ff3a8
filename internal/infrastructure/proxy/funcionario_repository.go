package proxy

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/comandas-web/internal/domain"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
	"github.com/jhoicas/comandas-web/internal/domain/repository"
)

var (
	_ repository.FuncionarioRepository = (*FuncionarioRepo)(nil)
	_ repository.LoginGateway          = (*FuncionarioRepo)(nil)
)

// funcionarioWire formato del backend para funcionario/. Senha solo viaja hacia el backend.
type funcionarioWire struct {
	ID        entity.ID `json:"id_funcionario,omitempty"`
	Nome      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	Matricula string    `json:"matricula"`
	Telefone  string    `json:"telefone"`
	Senha     string    `json:"senha,omitempty"`
	Grupo     flexInt   `json:"grupo"`
}

func (w funcionarioWire) toEntity() *entity.Funcionario {
	return &entity.Funcionario{
		ID:        w.ID,
		Nome:      w.Nome,
		CPF:       w.CPF,
		Matricula: w.Matricula,
		Telefone:  w.Telefone,
		Grupo:     entity.Grupo(w.Grupo),
	}
}

func funcionarioToWire(f *entity.Funcionario) funcionarioWire {
	return funcionarioWire{
		ID:        f.ID,
		Nome:      f.Nome,
		CPF:       f.CPF,
		Matricula: f.Matricula,
		Telefone:  f.Telefone,
		Senha:     f.Senha,
		Grupo:     flexInt(f.Grupo),
	}
}

// FuncionarioRepo implementación de FuncionarioRepository y LoginGateway.
type FuncionarioRepo struct {
	col collection
}

// NewFuncionarioRepository construye el adaptador.
func NewFuncionarioRepository(c *Client) *FuncionarioRepo {
	return &FuncionarioRepo{col: collection{c: c, prefix: "funcionario/", idParam: "id_funcionario", label: "funcionário"}}
}

// List GET funcionario/all.
func (r *FuncionarioRepo) List(ctx context.Context) ([]*entity.Funcionario, error) {
	var ws []funcionarioWire
	if err := r.col.list(ctx, &ws); err != nil {
		return nil, fmt.Errorf("listar funcionários: %w", err)
	}
	out := make([]*entity.Funcionario, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// GetByID GET funcionario/one?id_funcionario=<id>. La senha se descarta.
func (r *FuncionarioRepo) GetByID(ctx context.Context, id entity.ID) (*entity.Funcionario, error) {
	var ws []funcionarioWire
	if err := r.col.one(ctx, id, &ws); err != nil {
		return nil, fmt.Errorf("buscar funcionário %s: %w", id, err)
	}
	if len(ws) == 0 {
		return nil, fmt.Errorf("funcionário %s: %w", id, domain.ErrNotFound)
	}
	return ws[0].toEntity(), nil
}

// Create POST funcionario/.
func (r *FuncionarioRepo) Create(ctx context.Context, f *entity.Funcionario) (repository.SaveResult, error) {
	w := funcionarioToWire(f)
	w.ID = ""
	res, err := r.col.create(ctx, w)
	if err != nil {
		return res, fmt.Errorf("criar funcionário: %w", err)
	}
	return res, nil
}

// Update PUT funcionario/ con id_funcionario en el cuerpo; senha vacía se omite.
func (r *FuncionarioRepo) Update(ctx context.Context, f *entity.Funcionario) (repository.SaveResult, error) {
	res, err := r.col.update(ctx, f.ID, funcionarioToWire(f))
	if err != nil {
		return res, fmt.Errorf("atualizar funcionário %s: %w", f.ID, err)
	}
	return res, nil
}

// Delete DELETE funcionario/?id_funcionario=<id>.
func (r *FuncionarioRepo) Delete(ctx context.Context, id entity.ID) error {
	if err := r.col.remove(ctx, id); err != nil {
		return fmt.Errorf("excluir funcionário %s: %w", id, err)
	}
	return nil
}

// FindByCPF GET funcionario/check-cpf?cpf=<cpf>.
func (r *FuncionarioRepo) FindByCPF(ctx context.Context, cpf string) ([]*entity.Funcionario, error) {
	var ws []funcionarioWire
	if err := r.col.find(ctx, "check-cpf", "cpf", cpf, &ws); err != nil {
		return nil, fmt.Errorf("verificar CPF de funcionário: %w", err)
	}
	out := make([]*entity.Funcionario, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}

type loginRequest struct {
	CPF   string `json:"cpf"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Usuario string  `json:"usuario"`
	Nome    string  `json:"nome"`
	Grupo   flexInt `json:"grupo"`
	Token   string  `json:"token"`
}

// Login POST funcionario/login {cpf, senha}. El CPF viaja sin máscara.
func (r *FuncionarioRepo) Login(ctx context.Context, cpf, senha string) (*repository.LoginResult, error) {
	if cpf == "" || senha == "" {
		return nil, fmt.Errorf("%w: CPF e senha são obrigatórios para login", domain.ErrInvalidInput)
	}
	var out loginResponse
	body := loginRequest{CPF: domain.OnlyDigits(cpf), Senha: senha}
	if err := r.col.c.do(ctx, http.MethodPost, r.col.prefix+"login", nil, body, &out); err != nil {
		var se *StatusError
		if errors.As(err, &se) && (se.Status == http.StatusUnauthorized || se.Status == http.StatusForbidden || se.Status == http.StatusNotFound) {
			// Credenciales rechazadas por el backend: no es una falla de transporte.
			return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, se.Message)
		}
		return nil, fmt.Errorf("login de funcionário: %w", err)
	}
	return &repository.LoginResult{
		Usuario: out.Usuario,
		Nome:    out.Nome,
		Grupo:   entity.Grupo(out.Grupo),
		Token:   out.Token,
	}, nil
}
