package ports

import (
	"context"

	"github.com/jhoicas/comandas-web/internal/domain/entity"
)

// ReportGenerator exporta una colección a PDF.
type ReportGenerator interface {
	Clientes(ctx context.Context, items []*entity.Cliente) ([]byte, error)
	Funcionarios(ctx context.Context, items []*entity.Funcionario) ([]byte, error)
	// Produtos incluye las fotos; una foto que no se puede cargar se omite, no falla el reporte.
	Produtos(ctx context.Context, items []*entity.Produto) ([]byte, error)
}
