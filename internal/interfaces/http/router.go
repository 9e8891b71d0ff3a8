package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comandas-web/internal/application/auth"
	"github.com/jhoicas/comandas-web/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ClienteUC      *usecase.ClienteUseCase
	FuncionarioUC  *usecase.FuncionarioUseCase
	ProdutoUC      *usecase.ProdutoUseCase
	Sessions       *SessionStore
	LoginRateLimit int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, login limitado por IP)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions)
	loginLimit := deps.LoginRateLimit
	if loginLimit <= 0 {
		loginLimit = 10
	}
	authGroup.Post("/login", LoginRateLimiter(loginLimit), authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (sesión de Admin)
	protected := api.Group("/", RequireSession(deps.Sessions))
	protected.Get("/auth/session", authHandler.Session)

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/check-cpf", clienteHandler.CheckCPF)
	clientes.Get("/export.pdf", clienteHandler.ExportPDF)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Funcionarios
	funcionarios := protected.Group("/funcionarios")
	funcionarioHandler := NewFuncionarioHandler(deps.FuncionarioUC)
	funcionarios.Get("/", funcionarioHandler.List)
	funcionarios.Post("/", funcionarioHandler.Create)
	funcionarios.Get("/check-cpf", funcionarioHandler.CheckCPF)
	funcionarios.Get("/export.pdf", funcionarioHandler.ExportPDF)
	funcionarios.Get("/:id", funcionarioHandler.GetByID)
	funcionarios.Put("/:id", funcionarioHandler.Update)
	funcionarios.Delete("/:id", funcionarioHandler.Delete)

	// Produtos
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Get("/", produtoHandler.List)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/check-nome", produtoHandler.CheckNome)
	produtos.Get("/export.pdf", produtoHandler.ExportPDF)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)
}
