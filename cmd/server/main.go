package main

import (
	"log"

	"caderno-backend/internal/config"
	"caderno-backend/internal/server"
)

func main() {
	cfg := config.Load()

	app, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Falha ao preparar o servidor: %v", err)
	}

	log.Println("Servidor escutando na porta", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
