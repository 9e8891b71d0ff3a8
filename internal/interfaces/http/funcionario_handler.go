package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/application/usecase"
)

// FuncionarioHandler maneja las peticiones HTTP de funcionarios (protegido).
type FuncionarioHandler struct {
	uc *usecase.FuncionarioUseCase
}

// NewFuncionarioHandler construye el handler.
func NewFuncionarioHandler(uc *usecase.FuncionarioUseCase) *FuncionarioHandler {
	return &FuncionarioHandler{uc: uc}
}

var funcionariosList = usecase.FuncionarioRoutes.List

// List godoc
// @Summary      Listar funcionários
// @Tags         funcionarios
// @Produce      json
// @Success      200  {array}   dto.FuncionarioResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/funcionarios [get]
func (h *FuncionarioHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, funcionariosList, nil, "")
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener funcionario
// @Tags         funcionarios
// @Produce      json
// @Param        id   path      string  true  "id_funcionario"
// @Success      200  {object}  dto.FuncionarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id} [get]
func (h *FuncionarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondLoad(c, err, funcionariosList, "Funcionário não encontrado.")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar funcionário (verifica CPF duplicado)
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        body  body      dto.FuncionarioRequest  true  "nome, cpf, matricula, telefone, senha, grupo"
// @Success      201   {object}  dto.SubmitResponse
// @Failure      409   {object}  dto.SubmitResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/funcionarios [post]
func (h *FuncionarioHandler) Create(c *fiber.Ctx) error {
	var in dto.FuncionarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Save(c.UserContext(), in, "")
	return respondSubmit(c, resp, err, funcionariosList, true)
}

// Update godoc
// @Summary      Atualizar funcionário
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "id_funcionario"
// @Param        body  body      dto.FuncionarioRequest  true  "nome, cpf, matricula, telefone, senha, grupo"
// @Success      200   {object}  dto.SubmitResponse
// @Failure      409   {object}  dto.SubmitResponse
// @Router       /api/funcionarios/{id} [put]
func (h *FuncionarioHandler) Update(c *fiber.Ctx) error {
	var in dto.FuncionarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Save(c.UserContext(), in, c.Params("id"))
	return respondSubmit(c, resp, err, funcionariosList, false)
}

// Delete godoc
// @Summary      Excluir funcionário (exige confirm=true)
// @Tags         funcionarios
// @Produce      json
// @Param        id       path      string  true   "id_funcionario"
// @Param        confirm  query     bool    false  "confirmação explícita"
// @Success      200      {object}  dto.DeleteResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id} [delete]
func (h *FuncionarioHandler) Delete(c *fiber.Ctx) error {
	resp, err := h.uc.Delete(c.UserContext(), c.Params("id"), confirmed(c))
	return respondDelete(c, resp, err, funcionariosList)
}

// CheckCPF godoc
// @Summary      Verificar CPF ao sair do campo
// @Tags         funcionarios
// @Produce      json
// @Param        cpf  query     string  true   "CPF com ou sem máscara"
// @Param        id   query     string  false  "id do funcionário em edição"
// @Success      200  {object}  dto.CheckResponse
// @Router       /api/funcionarios/check-cpf [get]
func (h *FuncionarioHandler) CheckCPF(c *fiber.Ctx) error {
	return c.JSON(h.uc.CheckCPF(c.UserContext(), c.Query("cpf"), c.Query("id")))
}

// ExportPDF godoc
// @Summary      Exportar funcionários em PDF
// @Tags         funcionarios
// @Produce      application/pdf
// @Success      200
// @Router       /api/funcionarios/export.pdf [get]
func (h *FuncionarioHandler) ExportPDF(c *fiber.Ctx) error {
	doc, err := h.uc.ExportPDF(c.UserContext())
	return respondPDF(c, doc, err, "funcionarios.pdf", funcionariosList)
}
