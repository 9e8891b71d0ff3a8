package entity

// Cliente representa un cliente del comercio. CPF es la clave de unicidad.
type Cliente struct {
	ID       ID
	Nome     string
	CPF      string // 11 dígitos, sin máscara
	Telefone string // 10 u 11 dígitos o vacío
}
