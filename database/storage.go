package database

import (
	"errors"

	"github.com/krishimitra/api/model"
)

var (
	// ErrNotFound is returned by update operations when no row matches the
	// given id. Get operations signal absence with a nil result instead.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when an insert violates a database constraint
	// that payload validation did not catch (e.g. duplicate phone number).
	ErrConflict = errors.New("record conflicts with an existing one")
)

// Storage is the sole gateway between route handlers and the relational
// store. One operation per capability; no transactions span entities.
type Storage interface {
	Init() error
	Close() error
	HealthCheck() error

	// Users
	GetUser(id string) (*model.User, error)
	GetUserByPhone(phoneNumber string) (*model.User, error)
	CreateUser(insert model.InsertUser) (*model.User, error)

	// Crops
	GetAllCrops() ([]model.Crop, error)
	GetCrop(id string) (*model.Crop, error)
	CreateCrop(insert model.InsertCrop) (*model.Crop, error)
	UpdateCrop(id string, update model.UpdateCrop) (*model.Crop, error)
	DeleteCrop(id string) error

	// Diseases
	GetDiseasesByCrop(cropID string) ([]model.Disease, error)
	GetDisease(id string) (*model.Disease, error)
	CreateDisease(insert model.InsertDisease) (*model.Disease, error)
	UpdateDisease(id string, update model.UpdateDisease) (*model.Disease, error)
	DeleteDisease(id string) error

	// Feedback
	CreateFeedback(insert model.InsertFeedback) (*model.Feedback, error)
	GetAllFeedback() ([]model.Feedback, error)
	GetFeedbackByCrop(cropID string) ([]model.Feedback, error)
	GetFeedbackByDisease(diseaseID string) ([]model.Feedback, error)

	// Background jobs
	CreateCronJobLog(entry *model.CronJobLog) error
	CountOrphanDiseases() (int64, error)
}
