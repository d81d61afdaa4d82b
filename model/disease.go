package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Disease represents a crop disease profile. Severity ("low", "medium",
// "high", "critical") and Type ("fungal", "bacterial", "viral", "pest") are
// free text at the storage layer. CropID has no foreign key constraint and
// may dangle after the referenced crop is deleted.
type Disease struct {
	ID             string                            `gorm:"type:varchar(36);primaryKey" json:"id"`
	CropID         string                            `gorm:"type:varchar(36);index" json:"cropId"`
	NameHindi      string                            `gorm:"not null" json:"nameHindi"`
	NameEnglish    string                            `gorm:"not null" json:"nameEnglish"`
	ScientificName string                            `json:"scientificName"`
	Severity       string                            `json:"severity"`
	Type           string                            `json:"type"`
	Symptoms       datatypes.JSONType[BilingualList] `json:"symptoms"`
	Causes         datatypes.JSONType[BilingualList] `json:"causes"`
	Treatment      datatypes.JSONType[BilingualList] `json:"treatment"`
	Prevention     datatypes.JSONType[BilingualList] `json:"prevention"`
	Images         datatypes.JSONSlice[string]       `json:"images"`
	CreatedAt      time.Time                         `json:"createdAt"`

	// Relationships
	Feedback []Feedback `gorm:"foreignKey:DiseaseID" json:"feedback,omitempty"`
}

func (d *Disease) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// InsertDisease is the validated payload for creating a disease.
type InsertDisease struct {
	CropID         string         `json:"cropId" validate:"required"`
	NameHindi      string         `json:"nameHindi" validate:"required"`
	NameEnglish    string         `json:"nameEnglish" validate:"required"`
	ScientificName string         `json:"scientificName"`
	Severity       string         `json:"severity"`
	Type           string         `json:"type"`
	Symptoms       *BilingualList `json:"symptoms"`
	Causes         *BilingualList `json:"causes"`
	Treatment      *BilingualList `json:"treatment"`
	Prevention     *BilingualList `json:"prevention"`
	Images         []string       `json:"images"`
}

// UpdateDisease is the partial payload for updating a disease.
type UpdateDisease struct {
	CropID         *string        `json:"cropId"`
	NameHindi      *string        `json:"nameHindi" validate:"omitempty,min=1"`
	NameEnglish    *string        `json:"nameEnglish" validate:"omitempty,min=1"`
	ScientificName *string        `json:"scientificName"`
	Severity       *string        `json:"severity"`
	Type           *string        `json:"type"`
	Symptoms       *BilingualList `json:"symptoms"`
	Causes         *BilingualList `json:"causes"`
	Treatment      *BilingualList `json:"treatment"`
	Prevention     *BilingualList `json:"prevention"`
	Images         []string       `json:"images"`
}
