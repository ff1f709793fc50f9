package docsController

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"coursegen/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocsApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	vault := t.TempDir()
	Init(docs.NewService(vault, t.TempDir(), true))

	app := fiber.New()
	app.Get("/docs/:section/:id", GetEntry)
	return app, vault
}

func TestGetEntryHandlerReturnsEntry(t *testing.T) {
	app, _ := newDocsApp(t)

	_, err := service.CreateEntry("workflows", "release", docs.Metadata{Title: "Release"}, "body")
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/docs/workflows/release", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetEntryHandlerMalformedFrontmatterIsBadRequest(t *testing.T) {
	app, vault := newDocsApp(t)

	dir := filepath.Join(vault, "workflows", "broken")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	bad := "---\ntitle: \"unclosed\n---\n\nbody"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "WORKFLOW.md"), []byte(bad), 0o644))

	resp, err := app.Test(httptest.NewRequest("GET", "/docs/workflows/broken", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetEntryHandlerUnknownSectionIsBadRequest(t *testing.T) {
	app, _ := newDocsApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/docs/nope/anything", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetEntryHandlerMissingEntryIsNotFound(t *testing.T) {
	app, _ := newDocsApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/docs/workflows/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
