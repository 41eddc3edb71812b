package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Collection persiste uma lista de registros como um único arquivo JSON.
// Toda escrita reescreve o arquivo inteiro via arquivo temporário + rename,
// e um mutex por coleção serializa os ciclos de leitura-modificação-escrita.
type Collection struct {
	path string
	mu   sync.RWMutex
}

func NewCollection(path string) *Collection {
	return &Collection{path: path}
}

func (c *Collection) Path() string { return c.path }

// View decodifica o conteúdo atual em dst. Arquivo ausente ou JSON inválido
// equivale a lista vazia e nunca vira erro para o chamador.
func (c *Collection) View(dst any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.read(dst)
}

// Edit executa fn sobre a lista decodificada em dst e regrava o arquivo
// quando fn reporta alteração. O lock exclusivo cobre o ciclo completo, então
// dois escritores concorrentes nunca perdem a atualização um do outro.
func (c *Collection) Edit(dst any, fn func() (changed bool, err error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.read(dst); err != nil {
		return err
	}
	changed, err := fn()
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return c.write(dst)
}

// Clear substitui o conteúdo por uma lista vazia.
func (c *Collection) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write([]any{})
}

func (c *Collection) read(dst any) error {
	raw, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("Aviso: arquivo %s vazio ou inválido, iniciando com lista vazia", c.path)
	}
	return nil
}

func (c *Collection) write(v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
