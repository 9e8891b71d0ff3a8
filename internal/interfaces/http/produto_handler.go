package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comandas-web/internal/application/dto"
	"github.com/jhoicas/comandas-web/internal/application/usecase"
)

// ProdutoHandler maneja las peticiones HTTP de produtos (protegido).
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler construye el handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

var produtosList = usecase.ProdutoRoutes.List

// List godoc
// @Summary      Listar produtos
// @Tags         produtos
// @Produce      json
// @Success      200  {array}   dto.ProdutoResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, produtosList, nil, "")
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener producto
// @Tags         produtos
// @Produce      json
// @Param        id   path      string  true  "id_produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondLoad(c, err, produtosList, "Produto não encontrado.")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar produto (verifica nome duplicado; foto data URI é normalizada)
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ProdutoRequest  true  "nome, descricao, valor_unitario, foto"
// @Success      201   {object}  dto.SubmitResponse
// @Failure      409   {object}  dto.SubmitResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Save(c.UserContext(), in, "")
	return respondSubmit(c, resp, err, produtosList, true)
}

// Update godoc
// @Summary      Atualizar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "id_produto"
// @Param        body  body      dto.ProdutoRequest  true  "nome, descricao, valor_unitario, foto"
// @Success      200   {object}  dto.SubmitResponse
// @Failure      409   {object}  dto.SubmitResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	var in dto.ProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Save(c.UserContext(), in, c.Params("id"))
	return respondSubmit(c, resp, err, produtosList, false)
}

// Delete godoc
// @Summary      Excluir produto (exige confirm=true)
// @Tags         produtos
// @Produce      json
// @Param        id       path      string  true   "id_produto"
// @Param        confirm  query     bool    false  "confirmação explícita"
// @Success      200      {object}  dto.DeleteResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	resp, err := h.uc.Delete(c.UserContext(), c.Params("id"), confirmed(c))
	return respondDelete(c, resp, err, produtosList)
}

// CheckNome godoc
// @Summary      Verificar nome do produto ao sair do campo
// @Tags         produtos
// @Produce      json
// @Param        nome  query     string  true   "nome do produto"
// @Param        id    query     string  false  "id do produto em edição"
// @Success      200   {object}  dto.CheckResponse
// @Router       /api/produtos/check-nome [get]
func (h *ProdutoHandler) CheckNome(c *fiber.Ctx) error {
	return c.JSON(h.uc.CheckNome(c.UserContext(), c.Query("nome"), c.Query("id")))
}

// ExportPDF godoc
// @Summary      Exportar produtos em PDF
// @Tags         produtos
// @Produce      application/pdf
// @Success      200
// @Router       /api/produtos/export.pdf [get]
func (h *ProdutoHandler) ExportPDF(c *fiber.Ctx) error {
	doc, err := h.uc.ExportPDF(c.UserContext())
	return respondPDF(c, doc, err, "produtos.pdf", produtosList)
}
