package feedback

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/krishimitra/api/database"
	"github.com/krishimitra/api/model"
	"github.com/krishimitra/api/utils/middleware"
	"github.com/krishimitra/api/utils/response"
	"github.com/krishimitra/api/utils/validation"
	"github.com/xuri/excelize/v2"
)

// FeedbackHandler handles feedback-related requests
type FeedbackHandler struct {
	store     database.Storage
	validator *validation.Validator
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(store database.Storage) *FeedbackHandler {
	return &FeedbackHandler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// CreateFeedback handles POST /api/feedback. Type/reference consistency is
// validated; the rating range deliberately is not. When the request carries
// a verified phone identity and no explicit userId, the feedback is
// attributed to that user.
func (h *FeedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	var insert model.InsertFeedback
	if err := c.BodyParser(&insert); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(insert); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	if insert.UserID == nil {
		if claims, ok := middleware.GetClaims(c); ok {
			insert.UserID = &claims.UserID
		}
	}

	entry, err := h.store.CreateFeedback(insert)
	if err != nil {
		return response.InternalServerError(c, "Failed to create feedback")
	}
	return response.Created(c, entry)
}

// ListFeedback handles GET /api/feedback, newest first
func (h *FeedbackHandler) ListFeedback(c *fiber.Ctx) error {
	entries, err := h.store.GetAllFeedback()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch feedback")
	}
	return response.JSON(c, entries)
}

// ListByCrop handles GET /api/crops/:cropId/feedback
func (h *FeedbackHandler) ListByCrop(c *fiber.Ctx) error {
	entries, err := h.store.GetFeedbackByCrop(c.Params("cropId"))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch feedback")
	}
	return response.JSON(c, entries)
}

// ListByDisease handles GET /api/diseases/:diseaseId/feedback
func (h *FeedbackHandler) ListByDisease(c *fiber.Ctx) error {
	entries, err := h.store.GetFeedbackByDisease(c.Params("diseaseId"))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch feedback")
	}
	return response.JSON(c, entries)
}

// ExportFeedback handles GET /api/feedback/export, streaming all feedback
// as an .xlsx workbook for the admin panel.
func (h *FeedbackHandler) ExportFeedback(c *fiber.Ctx) error {
	entries, err := h.store.GetAllFeedback()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch feedback")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"ID", "Type", "Rating", "Name", "Phone", "Comment", "Crop ID", "Disease ID", "Created At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, entry := range entries {
		values := []interface{}{
			entry.ID,
			entry.Type,
			entry.Rating,
			entry.Name,
			entry.PhoneNumber,
			entry.Comment,
			deref(entry.CropID),
			deref(entry.DiseaseID),
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return response.InternalServerError(c, "Failed to export feedback")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "feedback.xlsx"))
	return c.Send(buf.Bytes())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
