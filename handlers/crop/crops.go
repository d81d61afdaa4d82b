package crop

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/krishimitra/api/database"
	"github.com/krishimitra/api/model"
	"github.com/krishimitra/api/utils/response"
	"github.com/krishimitra/api/utils/validation"
)

// CropHandler handles crop-related requests
type CropHandler struct {
	store     database.Storage
	validator *validation.Validator
}

// NewCropHandler creates a new crop handler
func NewCropHandler(store database.Storage) *CropHandler {
	return &CropHandler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// ListCrops handles GET /api/crops
func (h *CropHandler) ListCrops(c *fiber.Ctx) error {
	crops, err := h.store.GetAllCrops()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch crops")
	}
	return response.JSON(c, crops)
}

// GetCrop handles GET /api/crops/:id
func (h *CropHandler) GetCrop(c *fiber.Ctx) error {
	crop, err := h.store.GetCrop(c.Params("id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch crop")
	}
	if crop == nil {
		return response.NotFound(c, "Crop not found")
	}
	return response.JSON(c, crop)
}

// CreateCrop handles POST /api/crops
func (h *CropHandler) CreateCrop(c *fiber.Ctx) error {
	var insert model.InsertCrop
	if err := c.BodyParser(&insert); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(insert); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	insert.NameHindi = validation.SanitizeString(insert.NameHindi)
	insert.NameEnglish = validation.SanitizeString(insert.NameEnglish)

	crop, err := h.store.CreateCrop(insert)
	if err != nil {
		return response.InternalServerError(c, "Failed to create crop")
	}
	return response.Created(c, crop)
}

// UpdateCrop handles PUT /api/crops/:id. Unknown ids are an explicit 404.
func (h *CropHandler) UpdateCrop(c *fiber.Ctx) error {
	var update model.UpdateCrop
	if err := c.BodyParser(&update); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(update); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	crop, err := h.store.UpdateCrop(c.Params("id"), update)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return response.NotFound(c, "Crop not found")
		}
		return response.InternalServerError(c, "Failed to update crop")
	}
	return response.JSON(c, crop)
}

// DeleteCrop handles DELETE /api/crops/:id. Deleting a nonexistent crop
// succeeds; diseases referencing the crop are left dangling.
func (h *CropHandler) DeleteCrop(c *fiber.Ctx) error {
	if err := h.store.DeleteCrop(c.Params("id")); err != nil {
		return response.InternalServerError(c, "Failed to delete crop")
	}
	return response.NoContent(c)
}
