package http

import (
	"fmt"

	"github.com/fatec-votorantim/api-prestadores/internal/application/auth"
	"github.com/fatec-votorantim/api-prestadores/internal/application/dto"
	"github.com/fatec-votorantim/api-prestadores/internal/application/usecase"
	"github.com/fatec-votorantim/api-prestadores/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// UsuarioHandler trata cadastro, listagem e login de usuários.
type UsuarioHandler struct {
	authUC    *auth.AuthUseCase
	usuarioUC *usecase.UsuarioUseCase
}

// NewUsuarioHandler constrói o handler de usuários.
func NewUsuarioHandler(authUC *auth.AuthUseCase, usuarioUC *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{authUC: authUC, usuarioUC: usuarioUC}
}

// Register godoc
// @Summary      Cadastrar usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UsuarioRequest  true  "nome, email e senha"
// @Success      201  {object}  repository.InsertResult
// @Failure      400  {object}  dto.ErrorsResponse
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Register(c *fiber.Ctx) error {
	var in dto.UsuarioRequest
	body, err := parseBody(c, &in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.SingleError(nil, "O corpo da requisição não é um JSON válido.", "body"))
	}
	res, errs, err := h.authUC.Register(body, in)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorsResponse{Errors: errs})
	}
	if err != nil {
		// a mensagem nunca inclui a senha nem o hash
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.SingleError(nil, fmt.Sprintf("Erro ao cadastrar o usuário: %v", err), "usuarios"))
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// List godoc
// @Summary      Listar usuários (sem o campo senha)
// @Tags         usuarios
// @Produce      json
// @Param        limit  query  int  false  "Limite"  default(10)
// @Param        skip   query  int  false  "Skip"    default(0)
// @Success      200  {array}  entity.Usuario
// @Failure      401  {object}  dto.ErrorsResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	skip := c.QueryInt("skip", 0)
	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}
	docs, err := h.usuarioUC.List(int64(limit), int64(skip))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.SingleError(nil, fmt.Sprintf("Erro ao obter a listagem dos usuários: %v", err), "usuarios"))
	}
	return c.JSON(docs)
}

// Login godoc
// @Summary      Autenticar usuário e devolver o access token
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email e senha"
// @Success      200  {object}  dto.LoginResponse
// @Failure      403  {object}  dto.ErrorsResponse
// @Failure      404  {object}  dto.ErrorsResponse
// @Router       /api/usuarios/login [post]
func (h *UsuarioHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.SingleError(nil, "O corpo da requisição não é um JSON válido.", "body"))
	}
	out, errs, err := h.authUC.Login(in)
	if len(errs) > 0 {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorsResponse{Errors: errs})
	}
	if err != nil {
		switch err {
		case domain.ErrUsuarioNaoEncontrado:
			// nomeia o email não cadastrado
			return c.Status(fiber.StatusNotFound).
				JSON(dto.SingleError(in.Email, "O email informado não está cadastrado.", "email"))
		case domain.ErrSenhaIncorreta:
			// mensagem genérica: não revela se o email existe
			return c.Status(fiber.StatusForbidden).
				JSON(dto.SingleError(nil, "A senha informada está incorreta.", "senha"))
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.SingleError(nil, fmt.Sprintf("Erro ao efetuar o login: %v", err), "login"))
		}
	}
	return c.JSON(out)
}
