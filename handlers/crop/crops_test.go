package crop

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/krishimitra/api/database"
	"github.com/krishimitra/api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) (*fiber.App, database.Storage) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store := database.NewGORMStore(db)
	require.NoError(t, store.Init())

	handler := NewCropHandler(store)

	app := fiber.New()
	crops := app.Group("/api/crops")
	crops.Get("/", handler.ListCrops)
	crops.Get("/:id", handler.GetCrop)
	crops.Post("/", handler.CreateCrop)
	crops.Put("/:id", handler.UpdateCrop)
	crops.Delete("/:id", handler.DeleteCrop)

	return app, store
}

func decodeBody(t *testing.T, resp io.Reader, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp).Decode(out))
}

func TestGetCropNotFoundBody(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/crops/no-such-id", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, map[string]string{"message": "Crop not found"}, body)
}

func TestListCropsEmptyReturnsArray(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/crops/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestCreateCrop(t *testing.T) {
	app, store := setupTestApp(t)

	payload := `{
		"nameHindi": "गेहूं",
		"nameEnglish": "Wheat",
		"scientificName": "Triticum aestivum",
		"category": "rabi",
		"careInstructions": {"hindi": "सिंचाई करें", "english": "Irrigate"}
	}`
	req := httptest.NewRequest("POST", "/api/crops/", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created model.Crop
	decodeBody(t, resp.Body, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "गेहूं", created.NameHindi)
	assert.Equal(t, "Irrigate", created.CareInstructions.Data().English)

	stored, err := store.GetCrop(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Wheat", stored.NameEnglish)
}

func TestCreateCropMissingHindiName(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/api/crops/", bytes.NewBufferString(`{"nameEnglish": "Wheat"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, "Invalid data", body.Message)
	assert.Contains(t, body.Errors, "nameHindi")
}

func TestCreateCropMalformedJSON(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/api/crops/", bytes.NewBufferString(`{"nameHindi": `))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, "Invalid request body", body["message"])
}

func TestUpdateCropPartialAndNotFound(t *testing.T) {
	app, store := setupTestApp(t)

	created, err := store.CreateCrop(model.InsertCrop{NameHindi: "चावल", NameEnglish: "Rice", Category: "kharif"})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/api/crops/"+created.ID, bytes.NewBufferString(`{"temperature": "20-30°C"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated model.Crop
	decodeBody(t, resp.Body, &updated)
	assert.Equal(t, "20-30°C", updated.Temperature)
	assert.Equal(t, "चावल", updated.NameHindi)

	req = httptest.NewRequest("PUT", "/api/crops/no-such-id", bytes.NewBufferString(`{"category": "rabi"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, "Crop not found", body["message"])
}

func TestDeleteCropIdempotent(t *testing.T) {
	app, store := setupTestApp(t)

	created, err := store.CreateCrop(model.InsertCrop{NameHindi: "गेहूं", NameEnglish: "Wheat"})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/crops/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// Second delete of the same id also succeeds
	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/crops/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	gone, err := store.GetCrop(created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
