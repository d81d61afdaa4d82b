package database

import "github.com/krishimitra/api/model"

// CreateCronJobLog records a background job execution.
func (s *GORMStore) CreateCronJobLog(entry *model.CronJobLog) error {
	return s.db.Create(entry).Error
}
