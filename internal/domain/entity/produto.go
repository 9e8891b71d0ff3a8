package entity

import "github.com/shopspring/decimal"

// Produto representa un producto del menú. Nome es la clave de unicidad.
type Produto struct {
	ID            ID
	Nome          string
	Descricao     string
	ValorUnitario decimal.Decimal
	Foto          string // URL o data URI de la imagen
}
