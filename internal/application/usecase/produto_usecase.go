package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/application/ports"
	"github.com/jhoicas/comandas-web/internal/application/upsert"
	"github.com/jhoicas/comandas-web/internal/domain"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
	"github.com/jhoicas/comandas-web/internal/domain/repository"
)

var produtoLabels = labels{entidade: "produto", chave: "nome"}

// produtoGateway la clave de unicidad es el nome normalizado (NFC, espacios colapsados).
type produtoGateway struct {
	repo repository.ProdutoRepository
}

func (g produtoGateway) Key(p *entity.Produto) string { return p.Nome }
func (g produtoGateway) IDOf(p *entity.Produto) entity.ID { return p.ID }

func (g produtoGateway) CheckExists(ctx context.Context, nome string) ([]*entity.Produto, error) {
	return g.repo.FindByNome(ctx, nome)
}

func (g produtoGateway) Create(ctx context.Context, p *entity.Produto) (repository.SaveResult, error) {
	return g.repo.Create(ctx, p)
}

func (g produtoGateway) Update(ctx context.Context, id entity.ID, p *entity.Produto) (repository.SaveResult, error) {
	p.ID = id
	return g.repo.Update(ctx, p)
}

// ProdutoUseCase casos de uso de productos. Las fotos en data URI pasan por el normalizador de imágenes.
type ProdutoUseCase struct {
	repo    repository.ProdutoRepository
	flow    *upsert.Workflow[*entity.Produto]
	images  ports.ImageNormalizer
	reports ports.ReportGenerator
	log     zerolog.Logger
}

// NewProdutoUseCase construye el caso de uso. images y reports pueden ser nil.
func NewProdutoUseCase(repo repository.ProdutoRepository, images ports.ImageNormalizer, reports ports.ReportGenerator, log zerolog.Logger) *ProdutoUseCase {
	l := log.With().Str("entity", "produto").Logger()
	flow := upsert.New[*entity.Produto](produtoGateway{repo: repo}, ProdutoRoutes, l)
	return &ProdutoUseCase{repo: repo, flow: flow, images: images, reports: reports, log: l}
}

// List devuelve todos los productos.
func (uc *ProdutoUseCase) List(ctx context.Context) ([]dto.ProdutoResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toProdutoResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto.
func (uc *ProdutoUseCase) GetByID(ctx context.Context, id string) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.GetByID(ctx, entity.ID(id))
	if err != nil {
		return nil, err
	}
	resp := toProdutoResponse(p)
	return &resp, nil
}

// Save crea o actualiza un producto. valor_unitario acepta "R$ 1.234,56".
func (uc *ProdutoUseCase) Save(ctx context.Context, in dto.ProdutoRequest, id string) (*dto.SubmitResponse, error) {
	p := &entity.Produto{Nome: in.Nome, Descricao: in.Descricao, Foto: in.Foto}
	verr := domain.NewValidationError()
	valor, err := domain.ParseValor(string(in.ValorUnitario))
	if err != nil {
		verr.Add("valor_unitario", capitalize(strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")))
	}
	p.ValorUnitario = valor

	var perr *domain.ValidationError
	if err := domain.NormalizeProduto(p); errors.As(err, &perr) {
		for k, v := range perr.Fields {
			verr.Add(k, v)
		}
	}
	if err := verr.OrNil(); err != nil {
		return &dto.SubmitResponse{State: dto.SubmitError, Form: toProdutoResponse(p)}, err
	}

	if uc.images != nil && isDataURI(p.Foto) {
		foto, err := uc.images.NormalizeFoto(ctx, p.Foto)
		if err != nil {
			uc.log.Warn().Err(err).Msg("foto rejeitada")
			verr.Add("foto", "Imagem inválida")
			p.Foto = ""
			return &dto.SubmitResponse{State: dto.SubmitError, Form: toProdutoResponse(p)}, verr
		}
		p.Foto = foto
	}

	out := uc.flow.Submit(ctx, p, entity.ID(id))
	return submitResponse(out, produtoLabels, renderProduto)
}

// CheckNome verificación al salir del campo nome.
func (uc *ProdutoUseCase) CheckNome(ctx context.Context, raw, id string) dto.CheckResponse {
	nome := domain.NormalizeNome(raw)
	if nome == "" {
		return dto.CheckResponse{}
	}
	p := uc.flow.Check(ctx, nome, entity.ID(id))
	if p == nil {
		return dto.CheckResponse{Checked: true}
	}
	return dto.CheckResponse{Checked: true, Conflict: true, Prompt: conflictPrompt(p, produtoLabels, renderProduto)}
}

// Delete borra el producto si confirmed y devuelve la colección actualizada.
func (uc *ProdutoUseCase) Delete(ctx context.Context, id string, confirmed bool) (*dto.DeleteResponse, error) {
	return deleteConfirmed(ctx, id, confirmed, produtoLabels, uc.repo.Delete, uc.List)
}

// ExportPDF genera el PDF del catálogo con fotos.
func (uc *ProdutoUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	if uc.reports == nil {
		return nil, ErrExportDisabled
	}
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.reports.Produtos(ctx, items)
}

func isDataURI(s string) bool { return strings.HasPrefix(s, "data:") }

func toProdutoResponse(p *entity.Produto) dto.ProdutoResponse {
	return dto.ProdutoResponse{
		ID:             p.ID.String(),
		Nome:           p.Nome,
		Descricao:      p.Descricao,
		ValorUnitario:  p.ValorUnitario,
		ValorFormatado: domain.FormatValor(p.ValorUnitario),
		Foto:           p.Foto,
	}
}

func renderProduto(p *entity.Produto) any { return toProdutoResponse(p) }
