package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comandas-web/internal/application/auth"
	"github.com/jhoicas/comandas-web/internal/application/dto"
)

// homeRoute destino después del login.
const homeRoute = "/home"

// AuthHandler maneja login, logout y el estado de la sesión.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	store *SessionStore
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, store *SessionStore) *AuthHandler {
	return &AuthHandler{uc: uc, store: store}
}

// Login godoc
// @Summary      Iniciar sesión (somente grupo Admin)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "usuario (CPF ou @local), senha"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, "/login", nil, "")
	}
	if err := h.store.Save(c, s); err != nil {
		return err
	}
	out := s.ToResponse()
	out.Redirect = homeRoute
	return c.JSON(out)
}

// Logout godoc
// @Summary      Encerrar sessão
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.store.Destroy(c); err != nil {
		return err
	}
	return c.JSON(dto.SessionResponse{Authenticated: false, Redirect: "/login"})
}

// Session godoc
// @Summary      Sessão atual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(GetSession(c).ToResponse())
}
