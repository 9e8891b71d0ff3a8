package usecase_test

import (
	"context"
	"errors"

	"github.com/jhoicas/comandas-web/internal/domain"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
	"github.com/jhoicas/comandas-web/internal/domain/repository"
)

// ─── Cliente ──────────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	items     []*entity.Cliente
	matches   []*entity.Cliente
	findErr   error
	saveRes   repository.SaveResult
	saveErr   error
	findCalls []string
	created   []*entity.Cliente
	updated   []*entity.Cliente
	deleted   []entity.ID
	listCalls int
}

func (r *fakeClienteRepo) List(context.Context) ([]*entity.Cliente, error) {
	r.listCalls++
	return r.items, nil
}

func (r *fakeClienteRepo) GetByID(_ context.Context, id entity.ID) (*entity.Cliente, error) {
	for _, c := range r.items {
		if c.ID.Equal(id) {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeClienteRepo) Create(_ context.Context, c *entity.Cliente) (repository.SaveResult, error) {
	r.created = append(r.created, c)
	return r.saveRes, r.saveErr
}

func (r *fakeClienteRepo) Update(_ context.Context, c *entity.Cliente) (repository.SaveResult, error) {
	r.updated = append(r.updated, c)
	return r.saveRes, r.saveErr
}

func (r *fakeClienteRepo) Delete(_ context.Context, id entity.ID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeClienteRepo) FindByCPF(_ context.Context, cpf string) ([]*entity.Cliente, error) {
	r.findCalls = append(r.findCalls, cpf)
	return r.matches, r.findErr
}

// ─── Funcionario ──────────────────────────────────────────────────────────────

type fakeFuncionarioRepo struct {
	items   []*entity.Funcionario
	matches []*entity.Funcionario
	saveRes repository.SaveResult
	created []*entity.Funcionario
	updated []*entity.Funcionario
}

func (r *fakeFuncionarioRepo) List(context.Context) ([]*entity.Funcionario, error) {
	return r.items, nil
}

func (r *fakeFuncionarioRepo) GetByID(_ context.Context, id entity.ID) (*entity.Funcionario, error) {
	for _, f := range r.items {
		if f.ID.Equal(id) {
			return f, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeFuncionarioRepo) Create(_ context.Context, f *entity.Funcionario) (repository.SaveResult, error) {
	r.created = append(r.created, f)
	return r.saveRes, nil
}

func (r *fakeFuncionarioRepo) Update(_ context.Context, f *entity.Funcionario) (repository.SaveResult, error) {
	r.updated = append(r.updated, f)
	return r.saveRes, nil
}

func (r *fakeFuncionarioRepo) Delete(context.Context, entity.ID) error { return nil }

func (r *fakeFuncionarioRepo) FindByCPF(context.Context, string) ([]*entity.Funcionario, error) {
	return r.matches, nil
}

// ─── Produto ──────────────────────────────────────────────────────────────────

type fakeProdutoRepo struct {
	items     []*entity.Produto
	matches   []*entity.Produto
	saveRes   repository.SaveResult
	findCalls []string
	created   []*entity.Produto
}

func (r *fakeProdutoRepo) List(context.Context) ([]*entity.Produto, error) { return r.items, nil }

func (r *fakeProdutoRepo) GetByID(context.Context, entity.ID) (*entity.Produto, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeProdutoRepo) Create(_ context.Context, p *entity.Produto) (repository.SaveResult, error) {
	r.created = append(r.created, p)
	return r.saveRes, nil
}

func (r *fakeProdutoRepo) Update(_ context.Context, p *entity.Produto) (repository.SaveResult, error) {
	return r.saveRes, nil
}

func (r *fakeProdutoRepo) Delete(context.Context, entity.ID) error { return nil }

func (r *fakeProdutoRepo) FindByNome(_ context.Context, nome string) ([]*entity.Produto, error) {
	r.findCalls = append(r.findCalls, nome)
	return r.matches, nil
}

// ─── Colaboradores ────────────────────────────────────────────────────────────

type fakeImages struct {
	out string
	err error
}

func (f fakeImages) NormalizeFoto(_ context.Context, foto string) (string, error) {
	return f.out, f.err
}

type fakeReports struct {
	clientes int
}

func (f *fakeReports) Clientes(_ context.Context, items []*entity.Cliente) ([]byte, error) {
	f.clientes = len(items)
	return []byte("%PDF-clientes"), nil
}

func (f *fakeReports) Funcionarios(context.Context, []*entity.Funcionario) ([]byte, error) {
	return nil, errors.New("no usado")
}

func (f *fakeReports) Produtos(context.Context, []*entity.Produto) ([]byte, error) {
	return nil, errors.New("no usado")
}
