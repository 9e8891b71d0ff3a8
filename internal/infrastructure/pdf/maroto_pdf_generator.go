// Package pdf exporta las colecciones de Comandas (clientes, funcionarios, produtos) a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de emisión │ Total de registros      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una columna por campo; en produtos, miniatura       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: nombre de la aplicación                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/rs/zerolog"

	"github.com/jhoicas/comandas-web/internal/application/ports"
	"github.com/jhoicas/comandas-web/internal/domain"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
)

var _ ports.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// thumbSide lado en píxeles de las miniaturas de productos.
const thumbSide = 96

// PhotoSource entrega la miniatura JPEG de una foto (data URI o URL).
type PhotoSource interface {
	Thumbnail(ctx context.Context, foto string, side int) ([]byte, error)
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	appName string
	photos  PhotoSource
	log     zerolog.Logger
	now     func() time.Time
}

// NewMarotoReportGenerator construye el generador. photos puede ser nil (produtos sin fotos).
func NewMarotoReportGenerator(appName string, photos PhotoSource, log zerolog.Logger) *MarotoReportGenerator {
	return &MarotoReportGenerator{appName: appName, photos: photos, log: log, now: time.Now}
}

// column cabecera y ancho (grilla de 12) de una columna de la tabla.
type column struct {
	label string
	size  int
	align align.Type
}

// Clientes exporta la lista de clientes.
func (g *MarotoReportGenerator) Clientes(_ context.Context, items []*entity.Cliente) ([]byte, error) {
	cols := []column{
		{"ID", 1, align.Center},
		{"Nome", 5, align.Left},
		{"CPF", 3, align.Left},
		{"Telefone", 3, align.Left},
	}
	rows := make([]core.Row, 0, len(items))
	for _, c := range items {
		rows = append(rows, dataRow(7, cols, c.ID.String(), c.Nome, FormatCPF(c.CPF), FormatTelefone(c.Telefone)))
	}
	return g.render("Clientes", cols, rows, len(items))
}

// Funcionarios exporta la lista de funcionarios (sin senha).
func (g *MarotoReportGenerator) Funcionarios(_ context.Context, items []*entity.Funcionario) ([]byte, error) {
	cols := []column{
		{"ID", 1, align.Center},
		{"Nome", 3, align.Left},
		{"CPF", 2, align.Left},
		{"Matrícula", 2, align.Left},
		{"Telefone", 2, align.Left},
		{"Grupo", 2, align.Left},
	}
	rows := make([]core.Row, 0, len(items))
	for _, f := range items {
		rows = append(rows, dataRow(7, cols,
			f.ID.String(), f.Nome, FormatCPF(f.CPF), f.Matricula, FormatTelefone(f.Telefone), f.Grupo.String()))
	}
	return g.render("Funcionários", cols, rows, len(items))
}

// Produtos exporta el catálogo con miniaturas. Una foto que no carga deja la celda vacía.
func (g *MarotoReportGenerator) Produtos(ctx context.Context, items []*entity.Produto) ([]byte, error) {
	cols := []column{
		{"Foto", 2, align.Center},
		{"Nome", 3, align.Left},
		{"Descrição", 5, align.Left},
		{"Valor", 2, align.Right},
	}
	rows := make([]core.Row, 0, len(items))
	for _, p := range items {
		r := row.New(20).Add(
			g.photoCol(ctx, p, cols[0].size),
			cellCol(cols[1], p.Nome),
			cellCol(cols[2], p.Descricao),
			cellCol(cols[3], domain.FormatValor(p.ValorUnitario)),
		)
		rows = append(rows, r)
	}
	return g.render("Produtos", cols, rows, len(items))
}

func (g *MarotoReportGenerator) photoCol(ctx context.Context, p *entity.Produto, size int) core.Col {
	if g.photos == nil || p.Foto == "" {
		return col.New(size)
	}
	thumb, err := g.photos.Thumbnail(ctx, p.Foto, thumbSide)
	if err != nil {
		g.log.Warn().Err(err).Str("produto", p.ID.String()).Msg("foto omitida en el PDF")
		return col.New(size)
	}
	return image.NewFromBytesCol(size, thumb, extension.Jpg, props.Rect{Percent: 90, Center: true})
}

// render arma el documento: encabezado, tabla y pie.
func (g *MarotoReportGenerator) render(title string, cols []column, rows []core.Row, total int) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, g.now(), total))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(cols))
	if len(rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhum registro cadastrado.", props.Text{Size: 9, Align: align.Center, Color: colorGray, Top: 2}),
		)))
	}
	m.AddRows(rows...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(g.appName, props.Text{Size: 7, Align: align.Right, Color: colorGray, Top: 1}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento %s: %w", title, err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time, total int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Emitido em "+at.Format("02/01/2006 15:04"), props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d registro(s)", total), props.Text{Size: 9, Align: align.Right, Top: 4}),
		),
	)
}

func tableHeaderRow(cols []column) core.Row {
	r := row.New(8)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return r
}

func cellCol(c column, value string) core.Col {
	return col.New(c.size).Add(text.New(value, props.Text{Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1}))
}

func dataRow(height float64, cols []column, values ...string) core.Row {
	r := row.New(height)
	for i, c := range cols {
		r.Add(cellCol(c, values[i]))
	}
	return r
}

// ── helpers ───────────────────────────────────────────────────────────────────

// FormatCPF aplica la máscara 000.000.000-00; valores de otra longitud se devuelven tal cual.
func FormatCPF(cpf string) string {
	if len(cpf) != domain.CPFLength {
		return cpf
	}
	return cpf[:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:]
}

// FormatTelefone aplica (00) 0000-0000 o (00) 00000-0000.
func FormatTelefone(tel string) string {
	switch len(tel) {
	case 10:
		return "(" + tel[:2] + ") " + tel[2:6] + "-" + tel[6:]
	case 11:
		return "(" + tel[:2] + ") " + tel[2:7] + "-" + tel[7:]
	default:
		return tel
	}
}
