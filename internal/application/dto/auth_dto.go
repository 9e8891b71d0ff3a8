package dto

import "time"

// LoginRequest entrada de login. Usuario es el CPF del funcionario o "@usuario" para la credencial local.
type LoginRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

// SessionResponse estado de la sesión actual.
type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	Usuario       string     `json:"usuario,omitempty"`
	Grupo         int        `json:"grupo,omitempty"`
	GrupoNome     string     `json:"grupo_nome,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Redirect      string     `json:"redirect,omitempty"`
}
