package database

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/krishimitra/api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *GORMStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store := NewGORMStore(db)
	require.NoError(t, store.Init())
	return store
}

func strPtr(s string) *string { return &s }

func TestCreateCropGetCropRoundtrip(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateCrop(model.InsertCrop{
		NameHindi:        "गेहूं",
		NameEnglish:      "Wheat",
		ScientificName:   "Triticum aestivum",
		Category:         "rabi",
		SowingTime:       "नवंबर-दिसंबर",
		Temperature:      "15-25°C",
		WaterRequirement: "400-500 मिमी",
		CareInstructions: &model.BilingualText{
			Hindi:   "समय पर सिंचाई करें",
			English: "Irrigate on schedule",
		},
		ImageURL: "https://example.com/wheat.jpg",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := store.GetCrop(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "गेहूं", got.NameHindi)
	assert.Equal(t, "Wheat", got.NameEnglish)
	assert.Equal(t, "rabi", got.Category)
	assert.Equal(t, "Irrigate on schedule", got.CareInstructions.Data().English)
}

func TestGetCropAbsentReturnsNil(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetCrop("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetAllCropsOrderedByHindiName(t *testing.T) {
	store := newTestStore(t)

	// Insert out of order; expected Hindi collation is कपास < गन्ना < मक्का
	for _, c := range []model.InsertCrop{
		{NameHindi: "मक्का", NameEnglish: "Maize"},
		{NameHindi: "कपास", NameEnglish: "Cotton"},
		{NameHindi: "गन्ना", NameEnglish: "Sugarcane"},
	} {
		_, err := store.CreateCrop(c)
		require.NoError(t, err)
	}

	crops, err := store.GetAllCrops()
	require.NoError(t, err)
	require.Len(t, crops, 3)
	assert.Equal(t, "कपास", crops[0].NameHindi)
	assert.Equal(t, "गन्ना", crops[1].NameHindi)
	assert.Equal(t, "मक्का", crops[2].NameHindi)
}

func TestGetAllCropsEmpty(t *testing.T) {
	store := newTestStore(t)

	crops, err := store.GetAllCrops()
	require.NoError(t, err)
	assert.NotNil(t, crops)
	assert.Empty(t, crops)
}

func TestUpdateCropPartial(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateCrop(model.InsertCrop{
		NameHindi:   "चावल",
		NameEnglish: "Rice",
		Category:    "kharif",
	})
	require.NoError(t, err)

	updated, err := store.UpdateCrop(created.ID, model.UpdateCrop{
		Temperature: strPtr("20-30°C"),
	})
	require.NoError(t, err)
	assert.Equal(t, "20-30°C", updated.Temperature)
	// Untouched fields survive a partial update
	assert.Equal(t, "चावल", updated.NameHindi)
	assert.Equal(t, "kharif", updated.Category)
}

func TestUpdateCropNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UpdateCrop("no-such-id", model.UpdateCrop{Category: strPtr("rabi")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCropThenGetReturnsAbsent(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateCrop(model.InsertCrop{NameHindi: "गेहूं", NameEnglish: "Wheat"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteCrop(created.ID))

	got, err := store.GetCrop(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an id that no longer exists succeeds silently
	require.NoError(t, store.DeleteCrop(created.ID))
}

func TestDeleteCropLeavesDiseaseDangling(t *testing.T) {
	store := newTestStore(t)

	crop, err := store.CreateCrop(model.InsertCrop{NameHindi: "गेहूं", NameEnglish: "Wheat"})
	require.NoError(t, err)

	disease, err := store.CreateDisease(model.InsertDisease{
		CropID:      crop.ID,
		NameHindi:   "गेहूं का रतुआ",
		NameEnglish: "Wheat Rust",
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteCrop(crop.ID))

	// No cascade: the disease survives with its crop reference dangling
	got, err := store.GetDisease(disease.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, crop.ID, got.CropID)

	gone, err := store.GetCrop(crop.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	orphans, err := store.CountOrphanDiseases()
	require.NoError(t, err)
	assert.Equal(t, int64(1), orphans)
}

func TestGetDiseasesByCropFiltersAndOrders(t *testing.T) {
	store := newTestStore(t)

	crop, err := store.CreateCrop(model.InsertCrop{NameHindi: "धान", NameEnglish: "Paddy"})
	require.NoError(t, err)
	other, err := store.CreateCrop(model.InsertCrop{NameHindi: "मक्का", NameEnglish: "Maize"})
	require.NoError(t, err)

	for _, d := range []model.InsertDisease{
		{CropID: crop.ID, NameHindi: "झुलसा", NameEnglish: "Blast"},
		{CropID: crop.ID, NameHindi: "खैरा", NameEnglish: "Khaira"},
		{CropID: other.ID, NameHindi: "पत्ती झुलसा", NameEnglish: "Leaf Blight"},
	} {
		_, err := store.CreateDisease(d)
		require.NoError(t, err)
	}

	diseases, err := store.GetDiseasesByCrop(crop.ID)
	require.NoError(t, err)
	require.Len(t, diseases, 2)
	// Ordered by Hindi name: खैरा < झुलसा
	assert.Equal(t, "खैरा", diseases[0].NameHindi)
	assert.Equal(t, "झुलसा", diseases[1].NameHindi)
}

func TestGetDiseasesByCropEmpty(t *testing.T) {
	store := newTestStore(t)

	crop, err := store.CreateCrop(model.InsertCrop{NameHindi: "सोयाबीन", NameEnglish: "Soybean"})
	require.NoError(t, err)

	diseases, err := store.GetDiseasesByCrop(crop.ID)
	require.NoError(t, err)
	assert.NotNil(t, diseases)
	assert.Empty(t, diseases)
}

func TestDiseaseBilingualColumnsRoundtrip(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateDisease(model.InsertDisease{
		CropID:      "some-crop",
		NameHindi:   "रतुआ",
		NameEnglish: "Rust",
		Severity:    "medium",
		Type:        "fungal",
		Symptoms: &model.BilingualList{
			Hindi:   []string{"पत्तियों पर धब्बे"},
			English: []string{"Spots on leaves"},
		},
		Treatment: &model.BilingualList{
			Hindi:   []string{"छिड़काव करें"},
			English: []string{"Spray fungicide"},
		},
		Images: []string{"https://example.com/a.jpg", "https://example.com/b.jpg"},
	})
	require.NoError(t, err)

	got, err := store.GetDisease(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"Spots on leaves"}, got.Symptoms.Data().English)
	assert.Equal(t, []string{"छिड़काव करें"}, got.Treatment.Data().Hindi)
	assert.Len(t, got.Images, 2)
}

func TestUpdateDiseaseNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UpdateDisease("no-such-id", model.UpdateDisease{Severity: strPtr("high")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeedbackNewestFirst(t *testing.T) {
	store := newTestStore(t)

	cropID := "crop-1"
	for _, comment := range []string{"first", "second", "third"} {
		_, err := store.CreateFeedback(model.InsertFeedback{
			CropID:  &cropID,
			Type:    model.FeedbackTypeCrop,
			Rating:  4,
			Comment: comment,
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	all, err := store.GetAllFeedback()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Comment)
	assert.Equal(t, "first", all[2].Comment)

	byCrop, err := store.GetFeedbackByCrop(cropID)
	require.NoError(t, err)
	require.Len(t, byCrop, 3)
	assert.Equal(t, "third", byCrop[0].Comment)
}

func TestFeedbackByDiseaseFilters(t *testing.T) {
	store := newTestStore(t)

	diseaseID := "disease-1"
	otherID := "disease-2"
	for _, id := range []string{diseaseID, diseaseID, otherID} {
		id := id
		_, err := store.CreateFeedback(model.InsertFeedback{
			DiseaseID: &id,
			Type:      model.FeedbackTypeDisease,
			Rating:    3,
		})
		require.NoError(t, err)
	}

	entries, err := store.GetFeedbackByDisease(diseaseID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFeedbackRatingNotRangeValidated(t *testing.T) {
	store := newTestStore(t)

	// Ratings outside 1-5 are stored as-is; the storage layer does not
	// range-check. This documents existing behavior.
	for _, rating := range []int{0, 6, -3} {
		entry, err := store.CreateFeedback(model.InsertFeedback{
			Type:   model.FeedbackTypeGeneral,
			Rating: rating,
		})
		require.NoError(t, err)
		assert.Equal(t, rating, entry.Rating)
	}
}

func TestUserByPhoneAndDuplicate(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateUser(model.InsertUser{PhoneNumber: "+919876543210", Name: "Ramesh"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	byPhone, err := store.GetUserByPhone("+919876543210")
	require.NoError(t, err)
	require.NotNil(t, byPhone)
	assert.Equal(t, created.ID, byPhone.ID)

	byID, err := store.GetUser(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Ramesh", byID.Name)

	missing, err := store.GetUserByPhone("+910000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Phone numbers are unique
	_, err = store.CreateUser(model.InsertUser{PhoneNumber: "+919876543210"})
	assert.Error(t, err)
}
