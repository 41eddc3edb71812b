package uploads

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Dir grava anexos de comprovante em uma pasta local, um arquivo por anexo,
// com nome único por timestamp. Nenhum metadado além do próprio nome.
type Dir struct {
	path string
}

// NewDir cria a pasta quando ela não existe.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, err
	}
	return &Dir{path: path}, nil
}

func (d *Dir) Path() string { return d.path }

// Save grava o conteúdo com o nome "<timestamp>_<nome sanitizado>" e devolve
// o nome armazenado.
func (d *Dir) Save(original string, src io.Reader) (string, error) {
	stored := fmt.Sprintf("%d_%s", time.Now().Unix(), SanitizeFilename(original))
	f, err := os.Create(filepath.Join(d.path, stored))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, src); err != nil {
		return "", err
	}
	return stored, nil
}

// Sweep remove todos os arquivos regulares da pasta. Falhas individuais são
// registradas e ignoradas; subpastas ficam intactas.
func (d *Dir) Sweep() error {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		p := filepath.Join(d.path, entry.Name())
		if err := os.Remove(p); err != nil {
			log.Printf("Erro ao deletar arquivo %s: %v", p, err)
		}
	}
	return nil
}

// SanitizeFilename descarta qualquer componente de caminho e troca caracteres
// fora de [A-Za-z0-9._-] por "_". Nome vazio após a limpeza vira "arquivo".
func SanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	clean := strings.Trim(b.String(), "._")
	if clean == "" {
		return "arquivo"
	}
	return clean
}
