package pdf_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comandas-web/internal/domain/entity"
	"github.com/jhoicas/comandas-web/internal/infrastructure/imaging"
	"github.com/jhoicas/comandas-web/internal/infrastructure/pdf"
)

type failingPhotos struct{ calls int }

func (f *failingPhotos) Thumbnail(context.Context, string, int) ([]byte, error) {
	f.calls++
	return nil, errors.New("sem rede")
}

func pngDataURI(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	img.Set(1, 1, color.NRGBA{G: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return imaging.EncodeDataURI("image/png", buf.Bytes())
}

func assertPDF(t *testing.T, b []byte) {
	t.Helper()
	require.NotEmpty(t, b)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestClientes_GeneraPDF(t *testing.T) {
	g := pdf.NewMarotoReportGenerator("comandas-web", nil, zerolog.Nop())
	b, err := g.Clientes(context.Background(), []*entity.Cliente{
		{ID: "1", Nome: "Ana", CPF: "12345678901", Telefone: "11987654321"},
		{ID: "2", Nome: "Bia", CPF: "10987654321"},
	})
	require.NoError(t, err)
	assertPDF(t, b)
}

func TestFuncionarios_ListaVacia(t *testing.T) {
	g := pdf.NewMarotoReportGenerator("comandas-web", nil, zerolog.Nop())
	b, err := g.Funcionarios(context.Background(), nil)
	require.NoError(t, err)
	assertPDF(t, b)
}

func TestProdutos_ConFoto(t *testing.T) {
	g := pdf.NewMarotoReportGenerator("comandas-web", imaging.NewService(800, nil), zerolog.Nop())
	b, err := g.Produtos(context.Background(), []*entity.Produto{
		{ID: "3", Nome: "X-Burguer", Descricao: "Pão, carne e queijo", ValorUnitario: decimal.RequireFromString("25.9"), Foto: pngDataURI(t)},
		{ID: "4", Nome: "Suco", ValorUnitario: decimal.NewFromInt(8)},
	})
	require.NoError(t, err)
	assertPDF(t, b)
}

func TestProdutos_FotoQueFallaSeOmite(t *testing.T) {
	photos := &failingPhotos{}
	g := pdf.NewMarotoReportGenerator("comandas-web", photos, zerolog.Nop())
	b, err := g.Produtos(context.Background(), []*entity.Produto{
		{ID: "3", Nome: "X-Burguer", Foto: "fotos/3.png"},
	})
	require.NoError(t, err)
	assertPDF(t, b)
	assert.Equal(t, 1, photos.calls)
}

func TestFormatos(t *testing.T) {
	assert.Equal(t, "123.456.789-01", pdf.FormatCPF("12345678901"))
	assert.Equal(t, "123", pdf.FormatCPF("123"))
	assert.Equal(t, "(11) 98765-4321", pdf.FormatTelefone("11987654321"))
	assert.Equal(t, "(11) 3456-7890", pdf.FormatTelefone("1134567890"))
	assert.Equal(t, "", pdf.FormatTelefone(""))
}
