package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/comandas-web/internal/application/auth"
	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/application/upsert"
	"github.com/jhoicas/comandas-web/internal/application/usecase"
	"github.com/jhoicas/comandas-web/internal/domain"
)

// errorResponse traduce un error de la aplicación a código HTTP y cuerpo.
//   - validación  → 422 VALIDATION (errores por campo, formulario)
//   - no encontrado → 404 NOT_FOUND + redirect al listado
//   - credenciales → 401, grupo → 403
//   - backend / respuesta sin id → 502 BACKEND_ERROR con mensaje genérico
func errorResponse(err error, listRoute string) (int, dto.ErrorResponse) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "VALIDATION", Message: "Verifique os campos do formulário.", Fields: verr.Fields}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "Registro não encontrado.", Redirect: listRoute}
	case errors.Is(err, domain.ErrMissingID):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "MISSING_ID", Message: "ID é obrigatório.", Redirect: listRoute}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: "Dados inválidos."}
	case errors.Is(err, auth.ErrMissingGrupo):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Grupo do usuário não encontrado.", Redirect: "/login"}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Usuário ou senha inválidos.", Redirect: "/login"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: "Usuário sem permissão para acessar o sistema.", Redirect: "/login"}
	case errors.Is(err, upsert.ErrMissingResponseID):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "BACKEND_ERROR", Message: "Nenhuma resposta válida da API."}
	case errors.Is(err, domain.ErrBackend):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "BACKEND_ERROR", Message: "Erro na comunicação com o servidor. Tente novamente."}
	case errors.Is(err, usecase.ErrExportDisabled):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "EXPORT_DISABLED", Message: "Exportação indisponível."}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "Erro interno."}
	}
}

// writeError responde el error; form (si no es nil) vuelve al cliente para conservar el formulario
// y message (si no está vacío) reemplaza el mensaje genérico.
func writeError(c *fiber.Ctx, err error, listRoute string, form any, message string) error {
	status, body := errorResponse(err, listRoute)
	body.Form = form
	if message != "" && status != fiber.StatusUnprocessableEntity {
		body.Message = message
	}
	return c.Status(status).JSON(body)
}

// ErrorHandler para fiber.Config: rutas inexistentes, cuerpos inválidos y pánicos recuperados.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: codeForStatus(fe.Code), Message: fe.Message})
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Erro interno."})
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusRequestEntityTooLarge:
		return "TOO_LARGE"
	default:
		return "ERROR"
	}
}
