package server

import (
	"log"
	"strings"

	"caderno-backend/internal/admin"
	"caderno-backend/internal/config"
	"caderno-backend/internal/referencias"
	"caderno-backend/internal/registros"
	"caderno-backend/internal/storage"
	"caderno-backend/internal/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New monta o aplicativo HTTP completo a partir da configuração: coleções
// JSON, pasta de uploads, middlewares e rotas.
func New(cfg *config.Config) (*fiber.App, error) {
	uploadDir, err := uploads.NewDir(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	registroStore := registros.NewStore(storage.NewCollection(cfg.RegistrosFile))
	referenciaStore := referencias.NewStore(storage.NewCollection(cfg.ReferenciasFile))

	app := fiber.New(fiber.Config{
		// Anexos de comprovante não têm limite de tamanho definido no contrato.
		BodyLimit: 100 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Erro inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro interno inesperado",
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	api.Post("/upload", uploads.Handler(uploadDir))

	api.Get("/registros", registros.ListHandler(registroStore))
	api.Post("/registros", registros.SaveHandler(registroStore))
	api.Delete("/registros", registros.DeleteHandler())

	api.Get("/referencias", referencias.ListHandler(referenciaStore))
	api.Post("/referencias", referencias.UpsertHandler(referenciaStore))
	api.Delete("/referencias/:nm", referencias.DeleteHandler(referenciaStore))

	api.Delete("/reset", admin.ResetHandler(registroStore, referenciaStore, uploadDir))

	app.Static("/uploads", uploadDir.Path())
	app.Static("/", cfg.StaticDir)

	return app, nil
}
