package ports

import "context"

// ImageNormalizer define el puerto de normalización de imágenes previo a la subida.
// Recibe el campo foto del formulario: un data URI se redimensiona y re-codifica;
// cualquier otro valor (URL) se devuelve sin cambios.
type ImageNormalizer interface {
	NormalizeFoto(ctx context.Context, foto string) (string, error)
}
