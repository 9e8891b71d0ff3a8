package entity

// Grupo código de rol/permiso del funcionario.
type Grupo int

// Grupos válidos.
const (
	GrupoAdmin  Grupo = 1
	GrupoBalcao Grupo = 2
	GrupoCaixa  Grupo = 3
)

// Valid indica si el código pertenece al catálogo.
func (g Grupo) Valid() bool {
	return g == GrupoAdmin || g == GrupoBalcao || g == GrupoCaixa
}

func (g Grupo) String() string {
	switch g {
	case GrupoAdmin:
		return "Admin"
	case GrupoBalcao:
		return "Atendimento Balcão"
	case GrupoCaixa:
		return "Atendimento Caixa"
	default:
		return "Desconhecido"
	}
}

// Funcionario representa un empleado. Senha es solo de escritura: nunca se lee ni se muestra.
type Funcionario struct {
	ID        ID
	Nome      string
	CPF       string
	Matricula string
	Telefone  string
	Senha     string
	Grupo     Grupo
}
