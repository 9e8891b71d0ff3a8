package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// LocalCredential único usuario local ("@usuario") para operar sin el backend de login.
type LocalCredential struct {
	username string
	hash     []byte
}

// NewLocalCredential arma la credencial desde la configuración. Devuelve nil, nil si no hay usuario
// configurado (login local deshabilitado). passwordHash (bcrypt) tiene prioridad sobre password.
func NewLocalCredential(username, password, passwordHash string) (*LocalCredential, error) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return nil, nil
	}
	if passwordHash != "" {
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("auth: LOCAL_PASSWORD_HASH inválido: %w", err)
		}
		return &LocalCredential{username: username, hash: []byte(passwordHash)}, nil
	}
	if password == "" {
		return nil, errors.New("auth: LOCAL_PASSWORD o LOCAL_PASSWORD_HASH es obligatorio con LOCAL_USERNAME")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &LocalCredential{username: username, hash: hash}, nil
}

// Username nombre sin el prefijo "@".
func (l *LocalCredential) Username() string { return l.username }

// Verify compara usuario (sin "@") y contraseña.
func (l *LocalCredential) Verify(username, password string) bool {
	if l == nil {
		return false
	}
	sameUser := subtle.ConstantTimeCompare([]byte(l.username), []byte(username)) == 1
	// bcrypt se ejecuta siempre para no revelar por tiempo si el usuario existe.
	okPass := bcrypt.CompareHashAndPassword(l.hash, []byte(password)) == nil
	return sameUser && okPass
}
