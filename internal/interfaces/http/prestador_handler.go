package http

import (
	"encoding/json"
	"fmt"

	"github.com/fatec-votorantim/api-prestadores/internal/application/dto"
	"github.com/fatec-votorantim/api-prestadores/internal/application/usecase"
	"github.com/fatec-votorantim/api-prestadores/internal/domain"
	"github.com/fatec-votorantim/api-prestadores/internal/domain/entity"
	"github.com/gofiber/fiber/v2"
)

// PrestadorHandler trata as requisições HTTP de Prestador (rotas protegidas).
type PrestadorHandler struct {
	uc *usecase.PrestadorUseCase
}

// NewPrestadorHandler constrói o handler de prestadores.
func NewPrestadorHandler(uc *usecase.PrestadorUseCase) *PrestadorHandler {
	return &PrestadorHandler{uc: uc}
}

// parseBody decodifica o corpo duas vezes: no map (para a validação declarativa,
// que enxerga o payload cru) e na struct tipada (para a persistência).
func parseBody(c *fiber.Ctx, out interface{}) (map[string]interface{}, error) {
	raw := c.Body()
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return body, nil
}

// List godoc
// @Summary      Listar prestadores
// @Tags         prestadores
// @Produce      json
// @Param        limit  query  int     false  "Limite"  default(10)
// @Param        skip   query  int     false  "Skip"    default(0)
// @Param        order  query  string  false  "Campo de ordenação"
// @Success      200  {array}  entity.Prestador
// @Failure      401  {object}  dto.ErrorsResponse
// @Router       /api/prestadores [get]
func (h *PrestadorHandler) List(c *fiber.Ctx) error {
	// valores ausentes ou não numéricos caem nos defaults
	limit := c.QueryInt("limit", 10)
	skip := c.QueryInt("skip", 0)
	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}
	order := c.Query("order")

	docs, err := h.uc.List(int64(limit), int64(skip), order)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.SingleError(nil, fmt.Sprintf("Erro ao obter a listagem dos prestadores: %v", err), "prestadores"))
	}
	return c.JSON(docs)
}

// GetByID godoc
// @Summary      Obter prestador pelo ID
// @Tags         prestadores
// @Produce      json
// @Param        id  path  string  true  "ObjectID do prestador"
// @Success      200  {array}  entity.Prestador
// @Failure      400  {object}  dto.ErrorsResponse
// @Router       /api/prestadores/id/{id} [get]
func (h *PrestadorHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	docs, err := h.uc.GetByID(id)
	if err != nil {
		if err == domain.ErrIDInvalido {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.SingleError(id, "O id informado é inválido.", "_id"))
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.SingleError(id, fmt.Sprintf("Erro ao obter o prestador pelo ID: %v", err), "/id/:id"))
	}
	return c.JSON(docs)
}

// GetByRazao godoc
// @Summary      Buscar prestadores pela razão social ou nome fantasia
// @Tags         prestadores
// @Produce      json
// @Param        filtro  path  string  true  "Fragmento do nome (case-insensitive)"
// @Success      200  {array}  entity.Prestador
// @Router       /api/prestadores/razao/{filtro} [get]
func (h *PrestadorHandler) GetByRazao(c *fiber.Ctx) error {
	filtro := c.Params("filtro")
	docs, err := h.uc.SearchByRazao(filtro)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.SingleError(filtro, fmt.Sprintf("Erro ao obter o prestador pela razão social: %v", err), "/razao/:filtro"))
	}
	return c.JSON(docs)
}

// Create godoc
// @Summary      Incluir prestador
// @Tags         prestadores
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Prestador  true  "Dados do prestador"
// @Success      201  {object}  repository.InsertResult
// @Failure      400  {object}  dto.ErrorsResponse
// @Router       /api/prestadores [post]
func (h *PrestadorHandler) Create(c *fiber.Ctx) error {
	var p entity.Prestador
	body, err := parseBody(c, &p)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.SingleError(nil, "O corpo da requisição não é um JSON válido.", "body"))
	}
	res, errs, err := h.uc.Create(body, p)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorsResponse{Errors: errs})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.SingleError(nil, fmt.Sprintf("Erro ao incluir o prestador: %v", err), "prestadores"))
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Update godoc
// @Summary      Alterar prestador pelo _id do corpo
// @Tags         prestadores
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Prestador  true  "Dados do prestador, incluindo _id"
// @Success      202  {object}  repository.UpdateResult
// @Failure      400  {object}  dto.ErrorsResponse
// @Router       /api/prestadores [put]
func (h *PrestadorHandler) Update(c *fiber.Ctx) error {
	var p entity.Prestador
	body, err := parseBody(c, &p)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.SingleError(nil, "O corpo da requisição não é um JSON válido.", "body"))
	}
	res, errs, err := h.uc.Update(body, p)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorsResponse{Errors: errs})
	}
	if err != nil {
		if err == domain.ErrIDInvalido {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.SingleError(nil, "É obrigatório informar um _id válido para alterar o prestador.", "_id"))
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.SingleError(nil, fmt.Sprintf("Erro ao alterar o prestador: %v", err), "prestadores"))
	}
	// 202: o chamador distingue "não encontrado" ou "sem mudança" pelo modifiedCount
	return c.Status(fiber.StatusAccepted).JSON(res)
}

// Delete godoc
// @Summary      Excluir prestador pelo ID
// @Tags         prestadores
// @Produce      json
// @Param        id  path  string  true  "ObjectID do prestador"
// @Success      200  {object}  repository.DeleteResult
// @Failure      404  {object}  dto.ErrorsResponse
// @Router       /api/prestadores/{id} [delete]
func (h *PrestadorHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	res, err := h.uc.Delete(id)
	if err != nil {
		if err == domain.ErrIDInvalido {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.SingleError(id, "O id informado é inválido.", "_id"))
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.SingleError(id, fmt.Sprintf("Erro ao excluir o prestador: %v", err), "_id"))
	}
	if res.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.SingleError(fmt.Sprintf("Não há nenhum prestador com o ID %s", id), "Erro ao excluir o prestador.", "_id"))
	}
	return c.JSON(res)
}
