package admin

import (
	"caderno-backend/internal/referencias"
	"caderno-backend/internal/registros"
	"caderno-backend/internal/uploads"

	"github.com/gofiber/fiber/v2"
)

// DELETE /api/reset
// Limpa o caderno, a tabela de referências e todos os anexos enviados.
func ResetHandler(regs *registros.Store, refs *referencias.Store, dir *uploads.Dir) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := regs.Clear(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao resetar os dados: "+err.Error())
		}
		if err := refs.Clear(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao resetar os dados: "+err.Error())
		}
		if err := dir.Sweep(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao resetar os dados: "+err.Error())
		}
		return c.JSON(fiber.Map{
			"message": "Todos os registros, referências e arquivos de uploads foram limpos.",
		})
	}
}
