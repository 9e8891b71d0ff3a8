package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/application/upsert"
	"github.com/jhoicas/comandas-web/internal/application/usecase"
	"github.com/jhoicas/comandas-web/internal/domain"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
	"github.com/jhoicas/comandas-web/internal/domain/repository"
)

func optionFor(t *testing.T, p *dto.ConflictPrompt, action string) dto.Option {
	t.Helper()
	require.NotNil(t, p)
	for _, o := range p.Options {
		if o.Action == action {
			return o
		}
	}
	t.Fatalf("opción %q ausente en %+v", action, p.Options)
	return dto.Option{}
}

// ─── Cliente ──────────────────────────────────────────────────────────────────

func TestClienteSave_AltaConCPFConMascara(t *testing.T) {
	repo := &fakeClienteRepo{saveRes: repository.SaveResult{ID: "5"}}
	uc := usecase.NewClienteUseCase(repo, nil, zerolog.Nop())

	resp, err := uc.Save(context.Background(), dto.ClienteRequest{Nome: "Maria", CPF: "123.456.789-01"}, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"12345678901"}, repo.findCalls)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "12345678901", repo.created[0].CPF)
	assert.Equal(t, dto.SubmitSuccess, resp.State)
	assert.Equal(t, "5", resp.ID)
	assert.Equal(t, "/clientes", resp.Redirect)
}

func TestClienteSave_ValidacionNoLlamaAlBackend(t *testing.T) {
	repo := &fakeClienteRepo{}
	uc := usecase.NewClienteUseCase(repo, nil, zerolog.Nop())

	resp, err := uc.Save(context.Background(), dto.ClienteRequest{Nome: "", CPF: "123.456"}, "")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "nome")
	assert.Contains(t, verr.Fields, "cpf")
	assert.Empty(t, repo.findCalls)
	assert.Empty(t, repo.created)
	form, ok := resp.Form.(dto.ClienteResponse)
	require.True(t, ok)
	assert.Equal(t, "123456", form.CPF, "el formulario vuelve normalizado")
}

func TestClienteSave_VerificacionFallidaBloquea(t *testing.T) {
	repo := &fakeClienteRepo{findErr: domain.ErrBackend}
	uc := usecase.NewClienteUseCase(repo, nil, zerolog.Nop())

	resp, err := uc.Save(context.Background(), dto.ClienteRequest{Nome: "Maria", CPF: "12345678901"}, "")

	require.NoError(t, err)
	assert.Equal(t, dto.SubmitConflict, resp.State)
	assert.Equal(t, "Erro ao verificar CPF no sistema.", resp.Conflict.Message)
	assert.Nil(t, resp.Conflict.Record)
	require.Len(t, resp.Conflict.Options, 1)
	assert.Equal(t, "cancel", resp.Conflict.Options[0].Action)
	assert.Empty(t, repo.created)
}

func TestClienteSave_RespuestaSinIDEsError(t *testing.T) {
	repo := &fakeClienteRepo{saveRes: repository.SaveResult{Erro: "CPF já existe no banco"}}
	uc := usecase.NewClienteUseCase(repo, nil, zerolog.Nop())

	resp, err := uc.Save(context.Background(), dto.ClienteRequest{Nome: "Maria", CPF: "12345678901"}, "")

	assert.ErrorIs(t, err, upsert.ErrMissingResponseID)
	assert.Equal(t, dto.SubmitError, resp.State)
	assert.Equal(t, "CPF já existe no banco", resp.Message)
	assert.Empty(t, resp.Redirect)
	assert.NotNil(t, resp.Form)
}

func TestClienteCheckCPF(t *testing.T) {
	repo := &fakeClienteRepo{matches: []*entity.Cliente{{ID: "3", Nome: "Ana", CPF: "12345678901"}}}
	uc := usecase.NewClienteUseCase(repo, nil, zerolog.Nop())
	ctx := context.Background()

	assert.False(t, uc.CheckCPF(ctx, "123.4", "").Checked, "CPF incompleto no se consulta")
	assert.Empty(t, repo.findCalls)

	res := uc.CheckCPF(ctx, "123.456.789-01", "")
	assert.True(t, res.Conflict)
	assert.Equal(t, "/cliente/edit/3", optionFor(t, res.Prompt, "edit").Redirect)

	assert.False(t, uc.CheckCPF(ctx, "12345678901", "3").Conflict, "el propio registro no es conflicto")
}

func TestClienteDelete_RequiereConfirmacionYRefresca(t *testing.T) {
	repo := &fakeClienteRepo{items: []*entity.Cliente{{ID: "1", Nome: "Ana"}}}
	uc := usecase.NewClienteUseCase(repo, nil, zerolog.Nop())
	ctx := context.Background()

	resp, err := uc.Delete(ctx, "1", false)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.False(t, resp.Deleted)
	assert.Len(t, resp.Confirmation, 2)
	assert.Empty(t, repo.deleted)

	resp, err = uc.Delete(ctx, "1", true)
	require.NoError(t, err)
	assert.True(t, resp.Deleted)
	assert.Equal(t, []entity.ID{"1"}, repo.deleted)
	assert.Equal(t, 1, repo.listCalls, "la lista se vuelve a pedir")
	assert.Len(t, resp.Items, 1)
}

func TestClienteGetByID_NoEncontrado(t *testing.T) {
	uc := usecase.NewClienteUseCase(&fakeClienteRepo{}, nil, zerolog.Nop())
	_, err := uc.GetByID(context.Background(), "42")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClienteExportPDF(t *testing.T) {
	repo := &fakeClienteRepo{items: []*entity.Cliente{{ID: "1"}, {ID: "2"}}}
	reports := &fakeReports{}
	pdf, err := usecase.NewClienteUseCase(repo, reports, zerolog.Nop()).ExportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-clientes", string(pdf))
	assert.Equal(t, 2, reports.clientes)

	_, err = usecase.NewClienteUseCase(repo, nil, zerolog.Nop()).ExportPDF(context.Background())
	assert.ErrorIs(t, err, usecase.ErrExportDisabled)
}

// ─── Funcionario ──────────────────────────────────────────────────────────────

func funcionarioForm() dto.FuncionarioRequest {
	return dto.FuncionarioRequest{Nome: "Ana", CPF: "123.456.789-01", Matricula: "M7", Grupo: 2}
}

func TestFuncionarioSave_EdicionDeSiMismoProcede(t *testing.T) {
	repo := &fakeFuncionarioRepo{
		matches: []*entity.Funcionario{{ID: "7", CPF: "12345678901"}},
		saveRes: repository.SaveResult{ID: "7"},
	}
	uc := usecase.NewFuncionarioUseCase(repo, nil, zerolog.Nop())

	resp, err := uc.Save(context.Background(), funcionarioForm(), "7")

	require.NoError(t, err)
	assert.Equal(t, dto.SubmitSuccess, resp.State)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, entity.ID("7"), repo.updated[0].ID)
	assert.Empty(t, repo.updated[0].Senha, "sin senha en edición se conserva la actual")
	assert.Equal(t, "/funcionarios", resp.Redirect)
}

func TestFuncionarioSave_ConflictoConOtroRegistro(t *testing.T) {
	repo := &fakeFuncionarioRepo{matches: []*entity.Funcionario{{ID: "9", Nome: "Bia", CPF: "12345678901", Senha: "x"}}}
	uc := usecase.NewFuncionarioUseCase(repo, nil, zerolog.Nop())

	resp, err := uc.Save(context.Background(), funcionarioForm(), "7")

	require.NoError(t, err)
	assert.Equal(t, dto.SubmitConflict, resp.State)
	assert.Equal(t, "/funcionario/view/9", optionFor(t, resp.Conflict, "view").Redirect)
	assert.Equal(t, "/funcionario/edit/9", optionFor(t, resp.Conflict, "edit").Redirect)
	assert.Empty(t, repo.updated)
	rec, ok := resp.Conflict.Record.(dto.FuncionarioResponse)
	require.True(t, ok)
	assert.Equal(t, "9", rec.ID)
}

func TestFuncionarioSave_AltaExigeSenha(t *testing.T) {
	repo := &fakeFuncionarioRepo{}
	uc := usecase.NewFuncionarioUseCase(repo, nil, zerolog.Nop())

	_, err := uc.Save(context.Background(), funcionarioForm(), "")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "senha")
	assert.Empty(t, repo.created)
}

func TestFuncionarioList_SinSenha(t *testing.T) {
	repo := &fakeFuncionarioRepo{items: []*entity.Funcionario{{ID: "1", Nome: "Ana", Grupo: entity.GrupoAdmin}}}
	list, err := usecase.NewFuncionarioUseCase(repo, nil, zerolog.Nop()).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Admin", list[0].GrupoNome)
}

// ─── Produto ──────────────────────────────────────────────────────────────────

func TestProdutoSave_ValorEnRealesYNomeNormalizado(t *testing.T) {
	repo := &fakeProdutoRepo{saveRes: repository.SaveResult{ID: "3"}}
	uc := usecase.NewProdutoUseCase(repo, nil, nil, zerolog.Nop())

	resp, err := uc.Save(context.Background(), dto.ProdutoRequest{Nome: "  X-Burguer   Duplo ", ValorUnitario: "R$ 1.234,56"}, "")

	require.NoError(t, err)
	assert.Equal(t, "/produtos", resp.Redirect)
	assert.Equal(t, []string{"X-Burguer Duplo"}, repo.findCalls)
	require.Len(t, repo.created, 1)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(repo.created[0].ValorUnitario))
}

func TestProdutoSave_ValorInvalido(t *testing.T) {
	repo := &fakeProdutoRepo{}
	uc := usecase.NewProdutoUseCase(repo, nil, nil, zerolog.Nop())

	_, err := uc.Save(context.Background(), dto.ProdutoRequest{Nome: "Suco", ValorUnitario: "abc"}, "")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Valor unitário inválido", verr.Fields["valor_unitario"])
	assert.Empty(t, repo.findCalls)
}

func TestProdutoSave_FotoDataURIPasaPorElNormalizador(t *testing.T) {
	repo := &fakeProdutoRepo{saveRes: repository.SaveResult{ID: "4"}}
	uc := usecase.NewProdutoUseCase(repo, fakeImages{out: "data:image/jpeg;base64,AAA"}, nil, zerolog.Nop())

	_, err := uc.Save(context.Background(), dto.ProdutoRequest{Nome: "Suco", ValorUnitario: "8", Foto: "data:image/png;base64,iVBOR"}, "")

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "data:image/jpeg;base64,AAA", repo.created[0].Foto)
}

func TestProdutoSave_FotoInvalidaEsErrorDeCampo(t *testing.T) {
	repo := &fakeProdutoRepo{}
	uc := usecase.NewProdutoUseCase(repo, fakeImages{err: errors.New("formato desconhecido")}, nil, zerolog.Nop())

	_, err := uc.Save(context.Background(), dto.ProdutoRequest{Nome: "Suco", ValorUnitario: "8", Foto: "data:image/png;base64,xx"}, "")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "foto")
	assert.Empty(t, repo.created)
}

func TestProdutoSave_URLDeFotoSinCambios(t *testing.T) {
	repo := &fakeProdutoRepo{saveRes: repository.SaveResult{ID: "4"}}
	uc := usecase.NewProdutoUseCase(repo, fakeImages{err: errors.New("no debe llamarse")}, nil, zerolog.Nop())

	_, err := uc.Save(context.Background(), dto.ProdutoRequest{Nome: "Suco", ValorUnitario: "8", Foto: "https://cdn/x.png"}, "")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.png", repo.created[0].Foto)
}
