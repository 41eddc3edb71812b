package referencias

import (
	"errors"
	"fmt"

	"caderno-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UpsertRequest é o corpo do POST de atualização em massa. O ponteiro
// distingue a chave 'referencias' ausente (erro) de um lote vazio (no-op).
type UpsertRequest struct {
	Referencias *[]models.Referencia `json:"referencias"`
}

// GET /api/referencias
func ListHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		refs, err := store.List()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar as referências: "+err.Error())
		}
		return c.JSON(refs)
	}
}

// POST /api/referencias
func UpsertHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpsertRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.Referencias == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo deve conter a chave 'referencias'")
		}
		for _, ref := range *body.Referencias {
			if ref.NM() == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Toda referência deve ter o campo 'nm'")
			}
		}
		if err := store.Upsert(*body.Referencias); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar as referências: "+err.Error())
		}
		return c.JSON(fiber.Map{"message": "Referências atualizadas com sucesso!"})
	}
}

// DELETE /api/referencias/:nm
func DeleteHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		nm := c.Params("nm")
		if err := store.Delete(nm); err != nil {
			if errors.Is(err, ErrNaoEncontrada) {
				return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Referência %s não encontrada.", nm))
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover a referência: "+err.Error())
		}
		return c.JSON(fiber.Map{"message": fmt.Sprintf("Referência %s removida.", nm)})
	}
}
