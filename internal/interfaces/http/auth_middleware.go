package http

import (
	"github.com/fatec-votorantim/api-prestadores/internal/application/dto"
	"github.com/fatec-votorantim/api-prestadores/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

// Header que carrega o token assinado, sem o prefixo Bearer.
const TokenHeader = "access-token"

// Local key para o id do usuário autenticado.
const LocalUserID = "user_id"

// AuthMiddleware valida o token do header access-token e grava o id do usuário
// em c.Locals. Sem token ou com token inválido/expirado a requisição termina
// aqui com 401; caso contrário o controle segue para o próximo handler.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(TokenHeader)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.SingleError(nil, "É obrigatório o envio do token.", TokenHeader))
		}
		userID, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.SingleError(nil, "Token inválido ou expirado.", TokenHeader))
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devolve o id do usuário autenticado (após o AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
