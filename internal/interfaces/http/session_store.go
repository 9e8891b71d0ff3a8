package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/jhoicas/comandas-web/internal/application/auth"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
)

// Claves de la sesión en el store. Solo tipos primitivos (el store los serializa con gob).
const (
	sessAuthenticated = "authenticated"
	sessUsuario       = "usuario"
	sessGrupo         = "grupo"
	sessToken         = "token"
	sessExpiresAt     = "expires_at"
)

// SessionOptions cookie y expiración del store.
type SessionOptions struct {
	CookieName string
	Idle       time.Duration
	Secure     bool
	Storage    fiber.Storage // nil = memoria
}

// SessionStore guarda auth.Session del lado del servidor. La cookie es de sesión (sin Max-Age),
// así que cerrar el navegador/pestaña obliga a autenticarse de nuevo.
type SessionStore struct {
	store *session.Store
}

// NewSessionStore construye el store.
func NewSessionStore(opts SessionOptions) *SessionStore {
	if opts.CookieName == "" {
		opts.CookieName = "comandas_session"
	}
	if opts.Idle <= 0 {
		opts.Idle = 30 * time.Minute
	}
	return &SessionStore{store: session.New(session.Config{
		Expiration:        opts.Idle,
		Storage:           opts.Storage,
		KeyLookup:         "cookie:" + opts.CookieName,
		CookiePath:        "/",
		CookieHTTPOnly:    true,
		CookieSecure:      opts.Secure,
		CookieSameSite:    fiber.CookieSameSiteLaxMode,
		CookieSessionOnly: true,
		KeyGenerator:      uuid.NewString,
	})}
}

// Load devuelve la sesión de la petición o nil si no hay.
func (s *SessionStore) Load(c *fiber.Ctx) (*auth.Session, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil, fmt.Errorf("sesión: leer: %w", err)
	}
	if sess.Fresh() {
		return nil, nil
	}
	ok, _ := sess.Get(sessAuthenticated).(bool)
	if !ok {
		return nil, nil
	}
	out := &auth.Session{Authenticated: true}
	out.Usuario, _ = sess.Get(sessUsuario).(string)
	out.Token, _ = sess.Get(sessToken).(string)
	if g, ok := sess.Get(sessGrupo).(int); ok {
		out.Grupo = entity.Grupo(g)
	}
	if exp, ok := sess.Get(sessExpiresAt).(int64); ok && exp > 0 {
		out.ExpiresAt = time.Unix(exp, 0)
	}
	// Cada petición autenticada renueva la expiración por inactividad.
	if err := sess.Save(); err != nil {
		return nil, fmt.Errorf("sesión: renovar: %w", err)
	}
	return out, nil
}

// Save inicia la sesión con un id nuevo (evita fijación de sesión).
func (s *SessionStore) Save(c *fiber.Ctx, a *auth.Session) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("sesión: leer: %w", err)
	}
	if err := sess.Regenerate(); err != nil {
		return fmt.Errorf("sesión: regenerar: %w", err)
	}
	sess.Set(sessAuthenticated, a.Authenticated)
	sess.Set(sessUsuario, a.Usuario)
	sess.Set(sessGrupo, int(a.Grupo))
	sess.Set(sessToken, a.Token)
	var exp int64
	if !a.ExpiresAt.IsZero() {
		exp = a.ExpiresAt.Unix()
	}
	sess.Set(sessExpiresAt, exp)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("sesión: guardar: %w", err)
	}
	return nil
}

// Destroy borra la sesión y expira la cookie.
func (s *SessionStore) Destroy(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("sesión: leer: %w", err)
	}
	return sess.Destroy()
}
