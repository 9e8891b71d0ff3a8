// Package jwt lee los tokens que emite el backend de Comandas.
// La firma la valida el backend en cada llamada; aquí solo se leen los claims registrados
// para acotar la vida de la sesión local.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken token vacío.
var ErrEmptyToken = errors.New("jwt: token vacío")

// TokenInfo claims registrados de un token del backend. Los tiempos ausentes quedan en cero.
type TokenInfo struct {
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired indica si el token ya venció en now. Un token sin exp no vence.
func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// Inspect decodifica el token sin verificar la firma.
// Retorna error si no tiene forma de JWT (tres segmentos base64url con JSON).
func Inspect(tokenString string) (*TokenInfo, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return nil, fmt.Errorf("jwt: token ilegible: %w", err)
	}
	info := &TokenInfo{Subject: claims.Subject, Issuer: claims.Issuer}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
