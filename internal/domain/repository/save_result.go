package repository

import "github.com/jhoicas/comandas-web/internal/domain/entity"

// SaveResult respuesta del backend a un POST/PUT. ID vacío significa que el backend
// no confirmó la operación aunque haya respondido 200; Erro trae su mensaje, si vino.
type SaveResult struct {
	ID   entity.ID
	Erro string
}
