package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rs/zerolog"

	"github.com/jhoicas/comandas-web/internal/application/auth"
	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/infrastructure/proxy"
)

// LocalSession key de c.Locals con la *auth.Session de la petición.
const LocalSession = "session"

// RequireSession exige una sesión activa de administrador.
//   - 401 + redirect /login → sin sesión o vencida (la vencida se destruye).
//   - 403 → grupo distinto de Admin.
//
// Deja la sesión en c.Locals y el token del backend en el contexto de la petición.
func RequireSession(store *SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := store.Load(c)
		if err != nil {
			return err
		}
		if !s.Active(time.Now()) {
			if s != nil {
				_ = store.Destroy(c)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:     "UNAUTHENTICATED",
				Message:  "Sessão expirada. Faça login novamente.",
				Redirect: "/login",
			})
		}
		if !s.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:     "FORBIDDEN",
				Message:  "Usuário sem permissão para acessar o sistema.",
				Redirect: "/login",
			})
		}
		c.Locals(LocalSession, s)
		c.SetUserContext(proxy.WithToken(c.UserContext(), s.Token))
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después de RequireSession).
func GetSession(c *fiber.Ctx) *auth.Session {
	s, _ := c.Locals(LocalSession).(*auth.Session)
	return s
}

// LoginRateLimiter limita los intentos de login por IP (protege contra fuerza bruta).
func LoginRateLimiter(maxPerMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        maxPerMinute,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Path()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "Muitas tentativas de login. Tente novamente em 1 minuto.",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}

// RequestLogger registra un evento por petición.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		rid, _ := c.Locals("requestid").(string)
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", rid).
			Msg("http")
		return err
	}
}
