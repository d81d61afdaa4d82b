package database

import (
	"fmt"
	"log"

	"github.com/krishimitra/api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// RunSeeds populates the crop and disease tables with the bilingual
// reference dataset. Crops and diseases are each inserted in one batch.
func RunSeeds(db *gorm.DB) error {
	return NewSeeder(db).SeedAll()
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	crops, err := s.SeedCrops()
	if err != nil {
		return fmt.Errorf("failed to seed crops: %w", err)
	}

	if err := s.SeedDiseases(crops); err != nil {
		return fmt.Errorf("failed to seed diseases: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedCrops inserts the six reference crops in one batch. Skipped when
// crops already exist.
func (s *Seeder) SeedCrops() ([]model.Crop, error) {
	var count int64
	if err := s.db.Model(&model.Crop{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		log.Println("⏭️  Crops already exist, skipping...")
		crops := []model.Crop{}
		if err := s.db.Find(&crops).Error; err != nil {
			return nil, err
		}
		return crops, nil
	}

	crops := []model.Crop{
		{
			NameHindi:        "गेहूं",
			NameEnglish:      "Wheat",
			ScientificName:   "Triticum aestivum",
			Category:         "rabi",
			SowingTime:       "नवंबर-दिसंबर",
			Temperature:      "15-25°C",
			WaterRequirement: "400-500 मिमी",
			ImageURL:         "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b",
		},
		{
			NameHindi:        "चावल",
			NameEnglish:      "Rice",
			ScientificName:   "Oryza sativa",
			Category:         "kharif",
			SowingTime:       "जून-जुलाई",
			Temperature:      "20-30°C",
			WaterRequirement: "1200-1500 मिमी",
			ImageURL:         "https://images.unsplash.com/photo-1536431311719-398b6704d4cc",
		},
		{
			NameHindi:        "गन्ना",
			NameEnglish:      "Sugarcane",
			ScientificName:   "Saccharum officinarum",
			Category:         "cash_crop",
			SowingTime:       "अक्टूबर-नवंबर",
			Temperature:      "20-35°C",
			WaterRequirement: "1500-2000 मिमी",
			ImageURL:         "https://images.unsplash.com/photo-1560493676-04071c5f467b",
		},
		{
			NameHindi:        "कपास",
			NameEnglish:      "Cotton",
			ScientificName:   "Gossypium hirsutum",
			Category:         "kharif",
			SowingTime:       "अप्रैल-मई",
			Temperature:      "21-27°C",
			WaterRequirement: "500-800 मिमी",
			ImageURL:         "https://images.unsplash.com/photo-1578662996442-48f60103fc96",
		},
		{
			NameHindi:        "मक्का",
			NameEnglish:      "Maize",
			ScientificName:   "Zea mays",
			Category:         "kharif",
			SowingTime:       "जून-जुलाई",
			Temperature:      "20-30°C",
			WaterRequirement: "500-800 मिमी",
			ImageURL:         "https://images.unsplash.com/photo-1605000797499-95a51c5269ae",
		},
		{
			NameHindi:        "सोयाबीन",
			NameEnglish:      "Soybean",
			ScientificName:   "Glycine max",
			Category:         "kharif",
			SowingTime:       "जून-जुलाई",
			Temperature:      "20-30°C",
			WaterRequirement: "450-700 मिमी",
			ImageURL:         "https://images.unsplash.com/photo-1500651230702-0e2d8a49d4ad",
		},
	}

	if err := s.db.Create(&crops).Error; err != nil {
		return nil, err
	}
	log.Printf("✅ Inserted %d crops", len(crops))
	return crops, nil
}

// SeedDiseases inserts one disease profile per crop in one batch. Crops
// without a specific profile get the generic fallback.
func (s *Seeder) SeedDiseases(crops []model.Crop) error {
	var count int64
	if err := s.db.Model(&model.Disease{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️  Diseases already exist, skipping...")
		return nil
	}

	diseases := make([]model.Disease, 0, len(crops))
	for _, crop := range crops {
		disease := diseaseProfileFor(crop)
		disease.CropID = crop.ID
		disease.Causes = datatypes.NewJSONType(model.BilingualList{
			Hindi:   []string{"अधिक नमी", "गर्म मौसम", "खराब जल निकासी"},
			English: []string{"High humidity", "Warm weather", "Poor drainage"},
		})
		disease.Prevention = datatypes.NewJSONType(model.BilingualList{
			Hindi:   []string{"प्रतिरोधी किस्मों का चुनाव", "उचित फसल चक्र", "खेत की सफाई"},
			English: []string{"Choose resistant varieties", "Proper crop rotation", "Field sanitation"},
		})
		disease.Images = datatypes.NewJSONSlice([]string{
			"https://images.unsplash.com/photo-1628126235206-5260b9ea6441",
			"https://images.unsplash.com/photo-1530836369250-ef72a3f5cda8",
			"https://images.unsplash.com/photo-1595576508898-0ad5c879a061",
		})
		diseases = append(diseases, disease)
	}

	if err := s.db.Create(&diseases).Error; err != nil {
		return err
	}
	log.Printf("✅ Inserted %d diseases", len(diseases))
	return nil
}

// diseaseProfileFor returns the reference disease profile for a crop.
func diseaseProfileFor(crop model.Crop) model.Disease {
	switch crop.NameEnglish {
	case "Wheat":
		return model.Disease{
			NameHindi:      "गेहूं का रतुआ",
			NameEnglish:    "Wheat Rust",
			ScientificName: "Puccinia triticina",
			Severity:       "medium",
			Type:           "fungal",
			Symptoms: datatypes.NewJSONType(model.BilingualList{
				Hindi: []string{
					"पत्तियों पर नारंगी-भूरे रंग के छोटे धब्बे",
					"धब्बे धीरे-धीरे बड़े होते जाते हैं",
					"पत्तियां पीली पड़कर सूखने लगती हैं",
				},
				English: []string{
					"Small orange-brown spots on leaves",
					"Spots gradually increase in size",
					"Leaves turn yellow and dry up",
				},
			}),
			Treatment: datatypes.NewJSONType(model.BilingualList{
				Hindi: []string{
					"प्रोपिकोनाज़ोल का छिड़काव करें",
					"संक्रमित पत्तियों को हटाएं",
					"10-15 दिन बाद दोबारा छिड़काव",
				},
				English: []string{
					"Spray propiconazole",
					"Remove infected leaves",
					"Repeat spray after 10-15 days",
				},
			}),
		}
	case "Rice":
		return model.Disease{
			NameHindi:      "धान का झुलसा रोग",
			NameEnglish:    "Rice Blast",
			ScientificName: "Magnaporthe oryzae",
			Severity:       "high",
			Type:           "fungal",
			Symptoms: datatypes.NewJSONType(model.BilingualList{
				Hindi: []string{
					"पत्तियों पर भूरे धब्बे",
					"धब्बों के चारों ओर पीला किनारा",
					"बाली में दाने काले पड़ जाते हैं",
				},
				English: []string{
					"Brown spots on leaves",
					"Yellow margins around spots",
					"Grains turn black in panicles",
				},
			}),
			Treatment: datatypes.NewJSONType(model.BilingualList{
				Hindi: []string{
					"ट्राइसाइक्लाजोल का छिड़काव",
					"पानी की मात्रा नियंत्रित करें",
					"प्रतिरोधी किस्म का चुनाव",
				},
				English: []string{
					"Spray tricyclazole",
					"Control water levels",
					"Choose resistant varieties",
				},
			}),
		}
	case "Cotton":
		return model.Disease{
			NameHindi:      "कपास का बॉलवर्म",
			NameEnglish:    "Bollworm",
			ScientificName: "Helicoverpa armigera",
			Severity:       "high",
			Type:           "pest",
			Symptoms: datatypes.NewJSONType(model.BilingualList{
				Hindi: []string{
					"फूलों और फलियों में छेद",
					"कीट दिखाई देना",
					"पत्तियों का कटना",
				},
				English: []string{
					"Holes in flowers and bolls",
					"Visible larvae",
					"Leaf cutting damage",
				},
			}),
			Treatment: datatypes.NewJSONType(model.BilingualList{
				Hindi: []string{
					"बीटी कपास का उपयोग करें",
					"नीम का तेल छिड़कें",
					"हाथ से कीट पकड़कर नष्ट करें",
				},
				English: []string{
					"Use Bt cotton",
					"Spray neem oil",
					"Hand pick and destroy larvae",
				},
			}),
		}
	case "Maize":
		return model.Disease{
			NameHindi:      "मक्का का पत्ती झुलसा",
			NameEnglish:    "Leaf Blight",
			ScientificName: "Bipolaris maydis",
			Severity:       "medium",
			Type:           "fungal",
			Symptoms: datatypes.NewJSONType(model.BilingualList{
				Hindi: []string{
					"पत्तियों पर लंबे धब्बे",
					"धब्बे भूरे से काले रंग के",
					"पौधे की वृद्धि रुकना",
				},
				English: []string{
					"Long spots on leaves",
					"Brown to black colored spots",
					"Stunted plant growth",
				},
			}),
			Treatment: datatypes.NewJSONType(model.BilingualList{
				Hindi: []string{
					"मैंकोजेब का छिड़काव",
					"संक्रमित पत्तियों को हटाएं",
					"फसल चक्र अपनाएं",
				},
				English: []string{
					"Spray mancozeb",
					"Remove infected leaves",
					"Follow crop rotation",
				},
			}),
		}
	default:
		return model.Disease{
			NameHindi:      crop.NameHindi + " का सामान्य रोग",
			NameEnglish:    crop.NameEnglish + " Common Disease",
			ScientificName: "Various pathogens",
			Severity:       "low",
			Type:           "fungal",
			Symptoms: datatypes.NewJSONType(model.BilingualList{
				Hindi: []string{
					"पत्तियों पर धब्बे",
					"पीले या भूरे निशान",
					"पौधे की वृद्धि रुकना",
				},
				English: []string{
					"Spots on leaves",
					"Yellow or brown marks",
					"Stunted plant growth",
				},
			}),
			Treatment: datatypes.NewJSONType(model.BilingualList{
				Hindi: []string{
					"फफूंदनाशी का छिड़काव",
					"संक्रमित भागों को हटाएं",
					"उचित देखभाल करें",
				},
				English: []string{
					"Apply fungicide",
					"Remove infected parts",
					"Proper crop care",
				},
			}),
		}
	}
}
