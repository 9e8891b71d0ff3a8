package dto

// FuncionarioRequest formulario de funcionario. En edición, Senha vacía conserva la actual.
type FuncionarioRequest struct {
	Nome      string `json:"nome"`
	CPF       string `json:"cpf"`
	Matricula string `json:"matricula"`
	Telefone  string `json:"telefone"`
	Senha     string `json:"senha"`
	Grupo     int    `json:"grupo"`
}

// FuncionarioResponse salida de un funcionario (nunca incluye senha).
type FuncionarioResponse struct {
	ID        string `json:"id_funcionario"`
	Nome      string `json:"nome"`
	CPF       string `json:"cpf"`
	Matricula string `json:"matricula"`
	Telefone  string `json:"telefone"`
	Grupo     int    `json:"grupo"`
	GrupoNome string `json:"grupo_nome"`
}
