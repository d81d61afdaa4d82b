package database

import (
	"errors"

	"github.com/krishimitra/api/model"
	"gorm.io/gorm"
)

// GetUser returns the user matching id, or nil when no row matches.
func (s *GORMStore) GetUser(id string) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByPhone returns the user matching phoneNumber, or nil when absent.
func (s *GORMStore) GetUserByPhone(phoneNumber string) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, "phone_number = ?", phoneNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts one user. A duplicate phone number surfaces as
// ErrConflict.
func (s *GORMStore) CreateUser(insert model.InsertUser) (*model.User, error) {
	user := model.User{
		PhoneNumber: insert.PhoneNumber,
		Name:        insert.Name,
		IsAdmin:     insert.IsAdmin,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &user, nil
}
