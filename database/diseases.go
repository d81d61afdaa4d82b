package database

import (
	"errors"

	"github.com/krishimitra/api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetDiseasesByCrop returns every disease referencing cropID, ordered by
// Hindi name ascending. An empty slice when the crop has no diseases.
func (s *GORMStore) GetDiseasesByCrop(cropID string) ([]model.Disease, error) {
	diseases := []model.Disease{}
	if err := s.db.Where("crop_id = ?", cropID).Order("name_hindi").Find(&diseases).Error; err != nil {
		return nil, err
	}
	return diseases, nil
}

// GetDisease returns the disease matching id, or nil when no row matches.
func (s *GORMStore) GetDisease(id string) (*model.Disease, error) {
	var disease model.Disease
	if err := s.db.First(&disease, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &disease, nil
}

// CreateDisease inserts one disease and returns the fully populated row.
// The crop reference is not checked for existence.
func (s *GORMStore) CreateDisease(insert model.InsertDisease) (*model.Disease, error) {
	disease := model.Disease{
		CropID:         insert.CropID,
		NameHindi:      insert.NameHindi,
		NameEnglish:    insert.NameEnglish,
		ScientificName: insert.ScientificName,
		Severity:       insert.Severity,
		Type:           insert.Type,
		Images:         datatypes.NewJSONSlice(insert.Images),
	}
	if insert.Symptoms != nil {
		disease.Symptoms = datatypes.NewJSONType(*insert.Symptoms)
	}
	if insert.Causes != nil {
		disease.Causes = datatypes.NewJSONType(*insert.Causes)
	}
	if insert.Treatment != nil {
		disease.Treatment = datatypes.NewJSONType(*insert.Treatment)
	}
	if insert.Prevention != nil {
		disease.Prevention = datatypes.NewJSONType(*insert.Prevention)
	}

	if err := s.db.Create(&disease).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &disease, nil
}

// UpdateDisease applies the non-nil fields of update to the disease matching
// id and returns the updated row. Returns ErrNotFound when no row matches.
func (s *GORMStore) UpdateDisease(id string, update model.UpdateDisease) (*model.Disease, error) {
	var disease model.Disease
	if err := s.db.First(&disease, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if update.CropID != nil {
		disease.CropID = *update.CropID
	}
	if update.NameHindi != nil {
		disease.NameHindi = *update.NameHindi
	}
	if update.NameEnglish != nil {
		disease.NameEnglish = *update.NameEnglish
	}
	if update.ScientificName != nil {
		disease.ScientificName = *update.ScientificName
	}
	if update.Severity != nil {
		disease.Severity = *update.Severity
	}
	if update.Type != nil {
		disease.Type = *update.Type
	}
	if update.Symptoms != nil {
		disease.Symptoms = datatypes.NewJSONType(*update.Symptoms)
	}
	if update.Causes != nil {
		disease.Causes = datatypes.NewJSONType(*update.Causes)
	}
	if update.Treatment != nil {
		disease.Treatment = datatypes.NewJSONType(*update.Treatment)
	}
	if update.Prevention != nil {
		disease.Prevention = datatypes.NewJSONType(*update.Prevention)
	}
	if update.Images != nil {
		disease.Images = datatypes.NewJSONSlice(update.Images)
	}

	if err := s.db.Save(&disease).Error; err != nil {
		return nil, err
	}
	return &disease, nil
}

// DeleteDisease removes the disease matching id. Deleting a nonexistent id
// succeeds silently.
func (s *GORMStore) DeleteDisease(id string) error {
	return s.db.Delete(&model.Disease{}, "id = ?", id).Error
}

// CountOrphanDiseases counts diseases whose crop row no longer exists.
// Dangling references are legal; the nightly audit only reports them.
func (s *GORMStore) CountOrphanDiseases() (int64, error) {
	var count int64
	err := s.db.Model(&model.Disease{}).
		Where("crop_id <> '' AND crop_id NOT IN (?)", s.db.Model(&model.Crop{}).Select("id")).
		Count(&count).Error
	return count, err
}
