package database

import (
	"errors"

	"github.com/krishimitra/api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetAllCrops returns every crop ordered by Hindi name ascending.
func (s *GORMStore) GetAllCrops() ([]model.Crop, error) {
	crops := []model.Crop{}
	if err := s.db.Order("name_hindi").Find(&crops).Error; err != nil {
		return nil, err
	}
	return crops, nil
}

// GetCrop returns the crop matching id, or nil when no row matches.
func (s *GORMStore) GetCrop(id string) (*model.Crop, error) {
	var crop model.Crop
	if err := s.db.First(&crop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &crop, nil
}

// CreateCrop inserts one crop and returns the fully populated row.
func (s *GORMStore) CreateCrop(insert model.InsertCrop) (*model.Crop, error) {
	crop := model.Crop{
		NameHindi:        insert.NameHindi,
		NameEnglish:      insert.NameEnglish,
		ScientificName:   insert.ScientificName,
		Category:         insert.Category,
		SowingTime:       insert.SowingTime,
		Temperature:      insert.Temperature,
		WaterRequirement: insert.WaterRequirement,
		ImageURL:         insert.ImageURL,
	}
	if insert.CareInstructions != nil {
		crop.CareInstructions = datatypes.NewJSONType(*insert.CareInstructions)
	}

	if err := s.db.Create(&crop).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &crop, nil
}

// UpdateCrop applies the non-nil fields of update to the crop matching id
// and returns the updated row. Returns ErrNotFound when no row matches.
func (s *GORMStore) UpdateCrop(id string, update model.UpdateCrop) (*model.Crop, error) {
	var crop model.Crop
	if err := s.db.First(&crop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if update.NameHindi != nil {
		crop.NameHindi = *update.NameHindi
	}
	if update.NameEnglish != nil {
		crop.NameEnglish = *update.NameEnglish
	}
	if update.ScientificName != nil {
		crop.ScientificName = *update.ScientificName
	}
	if update.Category != nil {
		crop.Category = *update.Category
	}
	if update.SowingTime != nil {
		crop.SowingTime = *update.SowingTime
	}
	if update.Temperature != nil {
		crop.Temperature = *update.Temperature
	}
	if update.WaterRequirement != nil {
		crop.WaterRequirement = *update.WaterRequirement
	}
	if update.CareInstructions != nil {
		crop.CareInstructions = datatypes.NewJSONType(*update.CareInstructions)
	}
	if update.ImageURL != nil {
		crop.ImageURL = *update.ImageURL
	}

	if err := s.db.Save(&crop).Error; err != nil {
		return nil, err
	}
	return &crop, nil
}

// DeleteCrop removes the crop matching id. Deleting a nonexistent id
// succeeds silently; referencing diseases and feedback are left in place.
func (s *GORMStore) DeleteCrop(id string) error {
	return s.db.Delete(&model.Crop{}, "id = ?", id).Error
}
