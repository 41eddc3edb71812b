package admin_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"caderno-backend/internal/config"
	"caderno-backend/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		HTTPPort:        "0",
		RegistrosFile:   filepath.Join(dir, "caderno_ptm_db.json"),
		ReferenciasFile: filepath.Join(dir, "referencias.json"),
		UploadDir:       filepath.Join(dir, "uploads"),
		StaticDir:       filepath.Join(dir, "static"),
		CORSOrigins:     "*",
	}
	require.NoError(t, os.MkdirAll(cfg.StaticDir, 0o755))

	app, err := server.New(cfg)
	require.NoError(t, err)
	return app, cfg
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func countJSONList(t *testing.T, app *fiber.App, path string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	return len(list)
}

func TestResetLimpaTudo(t *testing.T) {
	app, cfg := newTestApp(t)

	resp := postJSON(t, app, "/api/registros", map[string]any{
		"num_doc_saida": "D1",
		"item_saida":    "1",
		"nm_saida":      "1001",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/referencias", map[string]any{
		"referencias": []map[string]any{{"nm": "1001", "descricao": "Parafuso"}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "canhoto.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("conteudo"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.Equal(t, 1, countJSONList(t, app, "/api/registros"))
	require.Equal(t, 1, countJSONList(t, app, "/api/referencias"))

	req = httptest.NewRequest(http.MethodDelete, "/api/reset", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	assert.Contains(t, out.Message, "limpos")

	assert.Equal(t, 0, countJSONList(t, app, "/api/registros"))
	assert.Equal(t, 0, countJSONList(t, app, "/api/referencias"))

	entries, err := os.ReadDir(cfg.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResetComTudoVazio(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/reset", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	assert.Equal(t, 0, countJSONList(t, app, "/api/registros"))
	assert.Equal(t, 0, countJSONList(t, app, "/api/referencias"))
}
