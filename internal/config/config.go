package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	RegistrosFile   string // caderno de saídas (lista JSON)
	ReferenciasFile string // tabela de referências NM/Descrição (lista JSON)
	UploadDir       string // pasta dos anexos de comprovante
	StaticDir       string
	CORSOrigins     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	cfg := &Config{
		HTTPPort:        getEnv("PORT", "5000"),
		RegistrosFile:   getEnv("DB_FILE", "caderno_ptm_db.json"),
		ReferenciasFile: getEnv("REFERENCIAS_FILE", "referencias.json"),
		UploadDir:       getEnv("UPLOAD_FOLDER", "./uploads"),
		StaticDir:       getEnv("STATIC_DIR", "./static"),
		CORSOrigins:     getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}

	if cfg.CORSOrigins == "*" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS liberado para qualquer origem, defina o domínio do frontend em produção.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
