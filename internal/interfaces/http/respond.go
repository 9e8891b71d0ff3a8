package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/domain"
)

// respondLoad responde el error de una carga por id. notFound reemplaza el mensaje solo cuando
// el registro no existe; otros errores conservan su mensaje.
func respondLoad(c *fiber.Ctx, err error, listRoute, notFound string) error {
	if !errors.Is(err, domain.ErrNotFound) {
		notFound = ""
	}
	return writeError(c, err, listRoute, nil, notFound)
}

// respondSubmit responde un alta/edición:
// 201/200 éxito (redirect al listado), 409 conflicto (diálogo), o el error con el formulario.
func respondSubmit(c *fiber.Ctx, resp *dto.SubmitResponse, err error, listRoute string, created bool) error {
	if err != nil {
		var form any
		msg := ""
		if resp != nil {
			form, msg = resp.Form, resp.Message
		}
		return writeError(c, err, listRoute, form, msg)
	}
	switch resp.State {
	case dto.SubmitConflict:
		return c.Status(fiber.StatusConflict).JSON(resp)
	case dto.SubmitSuccess:
		if created {
			return c.Status(fiber.StatusCreated).JSON(resp)
		}
		return c.JSON(resp)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}

// respondDelete 409 CONFIRMATION_REQUIRED sin confirm=true; 200 con la lista actualizada si se borró.
func respondDelete(c *fiber.Ctx, resp *dto.DeleteResponse, err error, listRoute string) error {
	if errors.Is(err, domain.ErrConfirmationRequired) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":         "CONFIRMATION_REQUIRED",
			"message":      resp.Message,
			"confirmation": resp.Confirmation,
		})
	}
	if err != nil {
		return writeError(c, err, listRoute, nil, "")
	}
	return c.JSON(resp)
}

// respondPDF envía el PDF como adjunto.
func respondPDF(c *fiber.Ctx, doc []byte, err error, filename, listRoute string) error {
	if err != nil {
		return writeError(c, err, listRoute, nil, "")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}

// confirmed interpreta ?confirm=true.
func confirmed(c *fiber.Ctx) bool {
	return c.QueryBool("confirm", false)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Corpo da requisição inválido."})
}
