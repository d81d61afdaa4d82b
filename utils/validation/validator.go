package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/krishimitra/api/model"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance. Field names in validation
// errors come from the json tag, so a missing NameHindi is reported against
// "nameHindi". The feedback variant check is registered here so every
// handler enforces it.
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(feedbackVariantValidation, model.InsertFeedback{})

	return &Validator{validate: v}
}

// ValidateStruct validates a struct using struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// feedbackVariantValidation enforces that a feedback record references
// exactly the entity its type names: crop feedback carries cropId and no
// diseaseId, disease feedback the inverse, general feedback neither.
func feedbackVariantValidation(sl validator.StructLevel) {
	fb := sl.Current().Interface().(model.InsertFeedback)

	hasCrop := fb.CropID != nil && *fb.CropID != ""
	hasDisease := fb.DiseaseID != nil && *fb.DiseaseID != ""

	switch fb.Type {
	case model.FeedbackTypeCrop:
		if !hasCrop {
			sl.ReportError(fb.CropID, "cropId", "CropID", "required_for_type", "")
		}
		if hasDisease {
			sl.ReportError(fb.DiseaseID, "diseaseId", "DiseaseID", "excluded_for_type", "")
		}
	case model.FeedbackTypeDisease:
		if !hasDisease {
			sl.ReportError(fb.DiseaseID, "diseaseId", "DiseaseID", "required_for_type", "")
		}
		if hasCrop {
			sl.ReportError(fb.CropID, "cropId", "CropID", "excluded_for_type", "")
		}
	case model.FeedbackTypeGeneral:
		if hasCrop {
			sl.ReportError(fb.CropID, "cropId", "CropID", "excluded_for_type", "")
		}
		if hasDisease {
			sl.ReportError(fb.DiseaseID, "diseaseId", "DiseaseID", "excluded_for_type", "")
		}
	}
}

// FormatValidationErrors converts validation errors to a per-field map
// keyed by JSON field name.
func FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = fmt.Sprintf("%s is required", field)
			case "min":
				errors[field] = fmt.Sprintf("%s must be at least %s characters", field, e.Param())
			case "max":
				errors[field] = fmt.Sprintf("%s must be at most %s characters", field, e.Param())
			case "oneof":
				errors[field] = fmt.Sprintf("%s must be one of: %s", field, e.Param())
			case "required_for_type":
				errors[field] = fmt.Sprintf("%s is required for this feedback type", field)
			case "excluded_for_type":
				errors[field] = fmt.Sprintf("%s is not allowed for this feedback type", field)
			default:
				errors[field] = fmt.Sprintf("%s is invalid", field)
			}
		}
	}

	return errors
}

// SanitizeString removes potentially dangerous characters
func SanitizeString(s string) string {
	// Remove null bytes
	s = strings.ReplaceAll(s, "\x00", "")
	// Trim whitespace
	s = strings.TrimSpace(s)
	return s
}
