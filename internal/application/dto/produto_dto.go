package dto

import "github.com/shopspring/decimal"

// ProdutoRequest formulario de producto. Foto puede ser URL o data URI (data:image/...;base64,...).
type ProdutoRequest struct {
	Nome          string `json:"nome"`
	Descricao     string `json:"descricao"`
	ValorUnitario Money  `json:"valor_unitario"`
	Foto          string `json:"foto"`
}

// ProdutoResponse salida de un producto.
type ProdutoResponse struct {
	ID             string          `json:"id_produto"`
	Nome           string          `json:"nome"`
	Descricao      string          `json:"descricao"`
	ValorUnitario  decimal.Decimal `json:"valor_unitario"`
	ValorFormatado string          `json:"valor_formatado"`
	Foto           string          `json:"foto,omitempty"`
}
