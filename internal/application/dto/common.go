package dto

import (
	"strconv"
	"strings"
)

// ErrorResponse cuerpo de error HTTP.
// Fields trae los errores por campo (validación); Redirect, la ruta a la que el frontend debe volver.
type ErrorResponse struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
	Form     any               `json:"form,omitempty"`
}

// Option acción ofrecida al usuario en un diálogo (conflicto o confirmación).
type Option struct {
	Action   string `json:"action"`
	Label    string `json:"label"`
	Redirect string `json:"redirect,omitempty"`
}

// Money valor monetario tal como lo escribe el usuario: número JSON (25.9) o texto ("R$ 25,90").
type Money string

// UnmarshalJSON acepta número o string.
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*m = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		u, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		*m = Money(u)
		return nil
	}
	*m = Money(s)
	return nil
}
