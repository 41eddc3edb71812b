package uploads

import (
	"github.com/gofiber/fiber/v2"
)

// POST /api/upload
// Recebe um arquivo multipart no campo "file", salva no disco e devolve o
// nome único armazenado junto com o nome original sanitizado.
func Handler(dir *Dir) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Nenhum arquivo enviado.")
		}
		if fileHeader.Filename == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome de arquivo inválido.")
		}

		src, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha no processamento do arquivo: "+err.Error())
		}
		defer src.Close()

		stored, err := dir.Save(fileHeader.Filename, src)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar o arquivo no disco: "+err.Error())
		}

		return c.JSON(fiber.Map{
			"filename":      stored,
			"original_name": SanitizeFilename(fileHeader.Filename),
		})
	}
}
