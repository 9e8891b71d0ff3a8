package dto

// ClienteRequest formulario de alta/edición de cliente. Acepta cpf y telefone con máscara.
type ClienteRequest struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID       string `json:"id_cliente"`
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
}
