package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("registro não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("não autenticado")
	ErrForbidden    = errors.New("usuário sem permissão para acessar o sistema")
	ErrMissingID    = errors.New("id é obrigatório")
	ErrBackend      = errors.New("erro na comunicação com o servidor")
	// ErrConfirmationRequired una baja sin confirmación explícita no se ejecuta.
	ErrConfirmationRequired = errors.New("confirmação necessária")
)

// ValidationError errores por campo de un formulario; bloquea el envío.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye un ValidationError vacío.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add registra el mensaje del campo (el primero gana).
func (e *ValidationError) Add(field, msg string) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = msg
}

// OrNil devuelve nil si no hay campos con error.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validação: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
