package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/unicode/norm"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// CPFLength cantidad de dígitos de un CPF.
const CPFLength = 11

// OnlyDigits devuelve exactamente la subsecuencia de dígitos ASCII de s.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeCPF limpia la máscara ("123.456.789-01") y exige 11 dígitos.
func NormalizeCPF(s string) (string, error) {
	cpf := OnlyDigits(s)
	if len(cpf) != CPFLength {
		return cpf, fmt.Errorf("%w: CPF deve ter %d dígitos", ErrInvalidInput, CPFLength)
	}
	return cpf, nil
}

// NormalizeTelefone limpia la máscara "(00) 00000-0000". Vacío es válido; si no, 10 u 11 dígitos.
func NormalizeTelefone(s string) (string, error) {
	tel := OnlyDigits(s)
	if tel == "" {
		return "", nil
	}
	if len(tel) < 10 || len(tel) > 11 {
		return tel, fmt.Errorf("%w: telefone inválido", ErrInvalidInput)
	}
	return tel, nil
}

// NormalizeNome aplica NFC, recorta y colapsa espacios internos.
// Es la clave de unicidad del Produto.
func NormalizeNome(s string) string {
	return strings.Join(strings.FieldsFunc(norm.NFC.String(s), unicode.IsSpace), " ")
}

// ParseValor interpreta valores monetarios escritos en formato brasileño o decimal simple:
// "R$ 1.234,56", "1234.56", "12,5". Negativos son inválidos.
func ParseValor(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "R$")
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, "\u00a0", "")
	if clean == "" {
		return decimal.Zero, fmt.Errorf("%w: valor unitário é obrigatório", ErrInvalidInput)
	}
	if strings.Contains(clean, ",") {
		// Formato pt-BR: "." separa miles y "," decimales.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	}
	v, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: valor unitário inválido", ErrInvalidInput)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: valor unitário não pode ser negativo", ErrInvalidInput)
	}
	return v, nil
}

// FormatValor formatea en reales con separadores pt-BR: "R$ 1.234,56".
func FormatValor(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return "R$ " + brl.Sprintf("%.2f", f)
}
