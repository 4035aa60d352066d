package http

import (
	"github.com/fatec-votorantim/api-prestadores/internal/application/auth"
	"github.com/fatec-votorantim/api-prestadores/internal/application/usecase"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	PrestadorUC *usecase.PrestadorUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	Version     string
}

// Router registra as rotas da API sob /api.
// Cadastro e login de usuário são públicos; todo o resto exige o token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rota default (pública)
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API de Prestadores 100% funcional 🚀",
			"version": deps.Version,
		})
	})

	usuarioHandler := NewUsuarioHandler(deps.AuthUC, deps.UsuarioUC)
	prestadorHandler := NewPrestadorHandler(deps.PrestadorUC)

	// Usuários: cadastro e login públicos; listagem protegida
	usuarios := api.Group("/usuarios")
	usuarios.Post("/", usuarioHandler.Register)
	usuarios.Post("/login", usuarioHandler.Login)
	usuarios.Get("/", AuthMiddleware(deps.JWTSecret), usuarioHandler.List)

	// Prestadores: todas as rotas protegidas
	prestadores := api.Group("/prestadores", AuthMiddleware(deps.JWTSecret))
	prestadores.Get("/", prestadorHandler.List)
	prestadores.Get("/id/:id", prestadorHandler.GetByID)
	prestadores.Get("/razao/:filtro", prestadorHandler.GetByRazao)
	prestadores.Post("/", prestadorHandler.Create)
	prestadores.Put("/", prestadorHandler.Update)
	prestadores.Delete("/:id", prestadorHandler.Delete)
}
