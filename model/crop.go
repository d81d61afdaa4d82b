package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Crop represents a cultivable crop with bilingual naming and care guidance.
// Category is free text by convention ("rabi", "kharif", "cash_crop").
type Crop struct {
	ID               string                                `gorm:"type:varchar(36);primaryKey" json:"id"`
	NameHindi        string                                `gorm:"not null" json:"nameHindi"`
	NameEnglish      string                                `gorm:"not null" json:"nameEnglish"`
	ScientificName   string                                `json:"scientificName"`
	Category         string                                `json:"category"`
	SowingTime       string                                `json:"sowingTime"`
	Temperature      string                                `json:"temperature"`
	WaterRequirement string                                `json:"waterRequirement"`
	CareInstructions datatypes.JSONType[BilingualText]     `json:"careInstructions"`
	ImageURL         string                                `gorm:"column:image_url" json:"imageUrl"`
	CreatedAt        time.Time                             `json:"createdAt"`

	// Relationships. Diseases reference crops without a foreign key
	// constraint, so deleting a crop leaves its diseases in place.
	Diseases []Disease  `gorm:"foreignKey:CropID" json:"diseases,omitempty"`
	Feedback []Feedback `gorm:"foreignKey:CropID" json:"feedback,omitempty"`
}

func (c *Crop) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// InsertCrop is the validated payload for creating a crop. Hindi and English
// names are the only required fields, matching the table constraints.
type InsertCrop struct {
	NameHindi        string         `json:"nameHindi" validate:"required"`
	NameEnglish      string         `json:"nameEnglish" validate:"required"`
	ScientificName   string         `json:"scientificName"`
	Category         string         `json:"category"`
	SowingTime       string         `json:"sowingTime"`
	Temperature      string         `json:"temperature"`
	WaterRequirement string         `json:"waterRequirement"`
	CareInstructions *BilingualText `json:"careInstructions"`
	ImageURL         string         `json:"imageUrl"`
}

// UpdateCrop is the partial payload for updating a crop. Every field is
// optional; only non-nil fields are applied.
type UpdateCrop struct {
	NameHindi        *string        `json:"nameHindi" validate:"omitempty,min=1"`
	NameEnglish      *string        `json:"nameEnglish" validate:"omitempty,min=1"`
	ScientificName   *string        `json:"scientificName"`
	Category         *string        `json:"category"`
	SowingTime       *string        `json:"sowingTime"`
	Temperature      *string        `json:"temperature"`
	WaterRequirement *string        `json:"waterRequirement"`
	CareInstructions *BilingualText `json:"careInstructions"`
	ImageURL         *string        `json:"imageUrl"`
}
