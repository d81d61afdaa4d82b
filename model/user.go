package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a farmer identified by phone number. Users are created
// when a phone number is verified for the first time; there are no update or
// delete operations on this table.
type User struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PhoneNumber string    `gorm:"type:varchar(15);uniqueIndex;not null" json:"phoneNumber"`
	Name        string    `json:"name"`
	IsAdmin     bool      `gorm:"default:false" json:"isAdmin"` // stored but never enforced server-side
	CreatedAt   time.Time `json:"createdAt"`

	// Relationships
	Feedback []Feedback `gorm:"foreignKey:UserID" json:"feedback,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// InsertUser is the validated payload for creating a user. ID and timestamp
// are server-assigned.
type InsertUser struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,min=10,max=15"`
	Name        string `json:"name" validate:"omitempty,max=100"`
	IsAdmin     bool   `json:"isAdmin"`
}
