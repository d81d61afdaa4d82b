package database

import (
	"github.com/krishimitra/api/model"
)

// CreateFeedback inserts one feedback row and returns the populated record.
// Ratings are stored as given; range checking is deliberately absent.
func (s *GORMStore) CreateFeedback(insert model.InsertFeedback) (*model.Feedback, error) {
	entry := model.Feedback{
		UserID:      insert.UserID,
		CropID:      insert.CropID,
		DiseaseID:   insert.DiseaseID,
		Name:        insert.Name,
		PhoneNumber: insert.PhoneNumber,
		Rating:      insert.Rating,
		Comment:     insert.Comment,
		Type:        insert.Type,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetAllFeedback returns every feedback entry, newest first.
func (s *GORMStore) GetAllFeedback() ([]model.Feedback, error) {
	entries := []model.Feedback{}
	if err := s.db.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetFeedbackByCrop returns feedback referencing cropID, newest first.
func (s *GORMStore) GetFeedbackByCrop(cropID string) ([]model.Feedback, error) {
	entries := []model.Feedback{}
	if err := s.db.Where("crop_id = ?", cropID).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetFeedbackByDisease returns feedback referencing diseaseID, newest first.
func (s *GORMStore) GetFeedbackByDisease(diseaseID string) ([]model.Feedback, error) {
	entries := []model.Feedback{}
	if err := s.db.Where("disease_id = ?", diseaseID).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
