package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback type tags. A feedback record references exactly one of crop or
// disease depending on its type; general feedback references neither.
const (
	FeedbackTypeCrop    = "crop"
	FeedbackTypeDisease = "disease"
	FeedbackTypeGeneral = "general"
)

// Feedback is an append-only record of user feedback on a crop, a disease,
// or the app in general. Rating is intentionally not range-validated (parity
// with the original service).
type Feedback struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID      *string   `gorm:"type:varchar(36);index" json:"userId"`
	CropID      *string   `gorm:"type:varchar(36);index" json:"cropId"`
	DiseaseID   *string   `gorm:"type:varchar(36);index" json:"diseaseId"`
	Name        string    `json:"name"`
	PhoneNumber string    `gorm:"type:varchar(15)" json:"phoneNumber"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// InsertFeedback is the validated payload for posting feedback. Type is the
// variant tag; cross-field consistency (crop feedback must carry cropId and
// no diseaseId, and so on) is enforced by a struct-level validation
// registered in utils/validation.
type InsertFeedback struct {
	UserID      *string `json:"userId"`
	CropID      *string `json:"cropId"`
	DiseaseID   *string `json:"diseaseId"`
	Name        string  `json:"name" validate:"omitempty,max=100"`
	PhoneNumber string  `json:"phoneNumber" validate:"omitempty,max=15"`
	Rating      int     `json:"rating"`
	Comment     string  `json:"comment"`
	Type        string  `json:"type" validate:"required,oneof=crop disease general"`
}
