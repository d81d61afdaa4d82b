package disease

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/krishimitra/api/database"
	"github.com/krishimitra/api/model"
	"github.com/krishimitra/api/utils/response"
	"github.com/krishimitra/api/utils/validation"
)

// DiseaseHandler handles disease-related requests
type DiseaseHandler struct {
	store     database.Storage
	validator *validation.Validator
}

// NewDiseaseHandler creates a new disease handler
func NewDiseaseHandler(store database.Storage) *DiseaseHandler {
	return &DiseaseHandler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// ListByCrop handles GET /api/crops/:cropId/diseases. A crop with no
// diseases (or an unknown crop id) yields an empty list, not a 404.
func (h *DiseaseHandler) ListByCrop(c *fiber.Ctx) error {
	diseases, err := h.store.GetDiseasesByCrop(c.Params("cropId"))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch diseases")
	}
	return response.JSON(c, diseases)
}

// GetDisease handles GET /api/diseases/:id
func (h *DiseaseHandler) GetDisease(c *fiber.Ctx) error {
	disease, err := h.store.GetDisease(c.Params("id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch disease")
	}
	if disease == nil {
		return response.NotFound(c, "Disease not found")
	}
	return response.JSON(c, disease)
}

// CreateDisease handles POST /api/diseases. The crop reference is stored
// as given; existence is not checked.
func (h *DiseaseHandler) CreateDisease(c *fiber.Ctx) error {
	var insert model.InsertDisease
	if err := c.BodyParser(&insert); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(insert); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	insert.NameHindi = validation.SanitizeString(insert.NameHindi)
	insert.NameEnglish = validation.SanitizeString(insert.NameEnglish)

	disease, err := h.store.CreateDisease(insert)
	if err != nil {
		return response.InternalServerError(c, "Failed to create disease")
	}
	return response.Created(c, disease)
}

// UpdateDisease handles PUT /api/diseases/:id. Unknown ids are an explicit 404.
func (h *DiseaseHandler) UpdateDisease(c *fiber.Ctx) error {
	var update model.UpdateDisease
	if err := c.BodyParser(&update); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(update); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	disease, err := h.store.UpdateDisease(c.Params("id"), update)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return response.NotFound(c, "Disease not found")
		}
		return response.InternalServerError(c, "Failed to update disease")
	}
	return response.JSON(c, disease)
}

// DeleteDisease handles DELETE /api/diseases/:id
func (h *DiseaseHandler) DeleteDisease(c *fiber.Ctx) error {
	if err := h.store.DeleteDisease(c.Params("id")); err != nil {
		return response.InternalServerError(c, "Failed to delete disease")
	}
	return response.NoContent(c)
}
