package auth

import (
	"time"

	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
)

// Session estado de autenticación de una pestaña. Vive en el store de sesiones del servidor,
// direccionado por una cookie de sesión (sin Max-Age): cerrar la pestaña o hacer logout la termina.
type Session struct {
	Authenticated bool
	Usuario       string
	Grupo         entity.Grupo
	Token         string    // token del backend; vacío para la credencial local
	ExpiresAt     time.Time // cero = sin vencimiento propio (rige la inactividad del store)
}

// Active indica si la sesión sigue válida en now.
func (s *Session) Active(now time.Time) bool {
	if s == nil || !s.Authenticated {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}

// IsAdmin solo el grupo Admin accede al sistema.
func (s *Session) IsAdmin() bool { return s != nil && s.Grupo == entity.GrupoAdmin }

// ToResponse salida de la sesión para el frontend.
func (s *Session) ToResponse() dto.SessionResponse {
	if s == nil || !s.Authenticated {
		return dto.SessionResponse{Authenticated: false, Redirect: "/login"}
	}
	resp := dto.SessionResponse{
		Authenticated: true,
		Usuario:       s.Usuario,
		Grupo:         int(s.Grupo),
		GrupoNome:     s.Grupo.String(),
	}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		resp.ExpiresAt = &exp
	}
	return resp
}
