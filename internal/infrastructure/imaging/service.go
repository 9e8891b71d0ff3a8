// Package imaging normaliza las fotos de productos antes de subirlas al backend:
// decodifica (JPEG, PNG, GIF, WebP), reduce el lado mayor y re-codifica como JPEG.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	// Decodificadores registrados para image.Decode.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/jhoicas/comandas-web/internal/application/ports"
)

var _ ports.ImageNormalizer = (*Service)(nil)

// Errores del servicio.
var (
	ErrInvalidDataURI = errors.New("imaging: data URI inválido")
	ErrNotImage       = errors.New("imaging: o arquivo não é uma imagem suportada")
	ErrNoFetcher      = errors.New("imaging: sem cliente para baixar a imagem")
)

// DefaultMaxSide lado mayor por defecto en píxeles.
const DefaultMaxSide = 800

const jpegQuality = 85

// MaxPixels superficie máxima aceptada antes de decodificar (ancho × alto).
const MaxPixels = 40_000_000

// Fetcher descarga una imagen por URL (absoluta o relativa al backend).
type Fetcher interface {
	FetchBytes(ctx context.Context, rawURL string) ([]byte, string, error)
}

// Service normalizador de imágenes.
type Service struct {
	maxSide int
	fetcher Fetcher
}

// NewService construye el servicio. fetcher puede ser nil si solo se normalizan data URIs.
func NewService(maxSide int, fetcher Fetcher) *Service {
	if maxSide <= 0 {
		maxSide = DefaultMaxSide
	}
	return &Service{maxSide: maxSide, fetcher: fetcher}
}

// NormalizeFoto re-codifica un data URI como JPEG de lado mayor ≤ maxSide.
// Cualquier otro valor (URL, vacío) se devuelve sin cambios.
func (s *Service) NormalizeFoto(_ context.Context, foto string) (string, error) {
	if !strings.HasPrefix(foto, "data:") {
		return foto, nil
	}
	_, raw, err := ParseDataURI(foto)
	if err != nil {
		return "", err
	}
	out, err := Resize(raw, s.maxSide)
	if err != nil {
		return "", err
	}
	return EncodeDataURI("image/jpeg", out), nil
}

// Thumbnail devuelve un JPEG de lado mayor ≤ side a partir de un data URI o una URL.
func (s *Service) Thumbnail(ctx context.Context, foto string, side int) ([]byte, error) {
	var raw []byte
	switch {
	case foto == "":
		return nil, ErrNotImage
	case strings.HasPrefix(foto, "data:"):
		_, b, err := ParseDataURI(foto)
		if err != nil {
			return nil, err
		}
		raw = b
	default:
		if s.fetcher == nil {
			return nil, ErrNoFetcher
		}
		b, _, err := s.fetcher.FetchBytes(ctx, foto)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return Resize(raw, side)
}

// Resize decodifica raw y, si el lado mayor supera maxSide, lo escala manteniendo la proporción.
// La salida es siempre JPEG; la transparencia se compone sobre blanco.
// Las dimensiones declaradas se validan con image.DecodeConfig antes de reservar memoria.
func Resize(raw []byte, maxSide int) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("%w: dimensiones %dx%d fuera de rango", ErrNotImage, cfg.Width, cfg.Height)
	}
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	sb := src.Bounds()
	w, h := scaled(sb.Dx(), sb.Dy(), maxSide)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("imaging: codificar JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// scaled dimensiones finales con lado mayor ≤ maxSide (nunca agranda, mínimo 1px).
func scaled(w, h, maxSide int) (int, int) {
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return w, h
	}
	if w >= h {
		return maxSide, max(1, h*maxSide/w)
	}
	return max(1, w*maxSide/h), maxSide
}

// ParseDataURI separa "data:<mime>;base64,<datos>". Solo acepta imágenes en base64.
func ParseDataURI(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}
	mime, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 || !strings.HasPrefix(mime, "image/") {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidDataURI, meta)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return mime, data, nil
}

// EncodeDataURI arma un data URI en base64.
func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
