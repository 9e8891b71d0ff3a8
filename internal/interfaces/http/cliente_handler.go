package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/application/usecase"
)

// ClienteHandler maneja las peticiones HTTP de clientes (protegido).
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

var clientesList = usecase.ClienteRoutes.List

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {array}   dto.ClienteResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, clientesList, nil, "")
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener cliente
// @Tags         clientes
// @Produce      json
// @Param        id   path      string  true  "id_cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondLoad(c, err, clientesList, "Cliente não encontrado.")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar cliente (verifica CPF duplicado)
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ClienteRequest  true  "nome, cpf, telefone"
// @Success      201   {object}  dto.SubmitResponse
// @Failure      409   {object}  dto.SubmitResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Save(c.UserContext(), in, "")
	return respondSubmit(c, resp, err, clientesList, true)
}

// Update godoc
// @Summary      Atualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "id_cliente"
// @Param        body  body      dto.ClienteRequest  true  "nome, cpf, telefone"
// @Success      200   {object}  dto.SubmitResponse
// @Failure      409   {object}  dto.SubmitResponse
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Save(c.UserContext(), in, c.Params("id"))
	return respondSubmit(c, resp, err, clientesList, false)
}

// Delete godoc
// @Summary      Excluir cliente (exige confirm=true)
// @Tags         clientes
// @Produce      json
// @Param        id       path      string  true   "id_cliente"
// @Param        confirm  query     bool    false  "confirmação explícita"
// @Success      200      {object}  dto.DeleteResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	resp, err := h.uc.Delete(c.UserContext(), c.Params("id"), confirmed(c))
	return respondDelete(c, resp, err, clientesList)
}

// CheckCPF godoc
// @Summary      Verificar CPF ao sair do campo
// @Tags         clientes
// @Produce      json
// @Param        cpf  query     string  true   "CPF com ou sem máscara"
// @Param        id   query     string  false  "id do cliente em edição"
// @Success      200  {object}  dto.CheckResponse
// @Router       /api/clientes/check-cpf [get]
func (h *ClienteHandler) CheckCPF(c *fiber.Ctx) error {
	return c.JSON(h.uc.CheckCPF(c.UserContext(), c.Query("cpf"), c.Query("id")))
}

// ExportPDF godoc
// @Summary      Exportar clientes em PDF
// @Tags         clientes
// @Produce      application/pdf
// @Success      200
// @Router       /api/clientes/export.pdf [get]
func (h *ClienteHandler) ExportPDF(c *fiber.Ctx) error {
	doc, err := h.uc.ExportPDF(c.UserContext())
	return respondPDF(c, doc, err, "clientes.pdf", clientesList)
}
