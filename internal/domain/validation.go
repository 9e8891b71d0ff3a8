package domain

import (
	"strings"

	"github.com/jhoicas/comandas-web/internal/domain/entity"
)

// SenhaMinLength longitud mínima de la contraseña del funcionario.
const SenhaMinLength = 6

// NormalizeCliente limpia las máscaras del formulario y valida los campos.
// El cliente queda normalizado aunque haya errores, para devolver el estado del formulario.
func NormalizeCliente(c *entity.Cliente) error {
	verr := NewValidationError()
	c.Nome = strings.TrimSpace(c.Nome)
	if c.Nome == "" {
		verr.Add("nome", "Nome é obrigatório")
	}
	normalizePessoa(&c.CPF, &c.Telefone, verr)
	return verr.OrNil()
}

// NormalizeFuncionario valida un funcionario. En creación la senha es obligatoria;
// en edición vacía significa "no cambiar".
func NormalizeFuncionario(f *entity.Funcionario, creating bool) error {
	verr := NewValidationError()
	f.Nome = strings.TrimSpace(f.Nome)
	f.Matricula = strings.TrimSpace(f.Matricula)
	if f.Nome == "" {
		verr.Add("nome", "Nome é obrigatório")
	}
	normalizePessoa(&f.CPF, &f.Telefone, verr)
	if f.Matricula == "" {
		verr.Add("matricula", "Matrícula é obrigatória")
	}
	switch {
	case f.Senha == "" && creating:
		verr.Add("senha", "Senha é obrigatória")
	case f.Senha != "" && len(f.Senha) < SenhaMinLength:
		verr.Add("senha", "Senha deve ter pelo menos 6 caracteres")
	}
	if !f.Grupo.Valid() {
		verr.Add("grupo", "Grupo é obrigatório")
	}
	return verr.OrNil()
}

// NormalizeProduto valida un producto. ValorUnitario ya viene parseado (ver ParseValor).
func NormalizeProduto(p *entity.Produto) error {
	verr := NewValidationError()
	p.Nome = NormalizeNome(p.Nome)
	p.Descricao = strings.TrimSpace(p.Descricao)
	p.Foto = strings.TrimSpace(p.Foto)
	if p.Nome == "" {
		verr.Add("nome", "Nome é obrigatório")
	}
	if p.ValorUnitario.IsNegative() {
		verr.Add("valor_unitario", "Valor unitário não pode ser negativo")
	}
	return verr.OrNil()
}

func normalizePessoa(cpf, telefone *string, verr *ValidationError) {
	if strings.TrimSpace(*cpf) == "" {
		verr.Add("cpf", "CPF é obrigatório")
	} else if clean, err := NormalizeCPF(*cpf); err != nil {
		*cpf = clean
		verr.Add("cpf", "CPF inválido")
	} else {
		*cpf = clean
	}
	clean, err := NormalizeTelefone(*telefone)
	*telefone = clean
	if err != nil {
		verr.Add("telefone", "Telefone inválido")
	}
}
