package cron

import (
	"log"
	"time"

	"github.com/krishimitra/api/database"
	"github.com/krishimitra/api/model"
	"github.com/robfig/cron/v3"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron  *cron.Cron
	store database.Storage
}

// NewCronManager creates a new cron manager
func NewCronManager(store database.Storage) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:  c,
		store: store,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	// Register all jobs
	if err := m.registerJobs(); err != nil {
		return err
	}

	// Start the cron scheduler
	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// 1. Hourly: database health ping
	_, err := m.cron.AddFunc("0 0 * * * *", func() {
		m.logJobStart("database_health_ping")
		m.DatabaseHealthPing()
	})
	if err != nil {
		return err
	}

	// 2. Daily at 2 AM: audit diseases whose crop was deleted
	_, err = m.cron.AddFunc("0 0 2 * * *", func() {
		m.logJobStart("orphan_disease_audit")
		m.OrphanDiseaseAudit()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

// logJobStart records the start of a job run
func (m *CronManager) logJobStart(jobName string) {
	entry := model.CronJobLog{
		JobName:   jobName,
		Status:    "started",
		StartedAt: time.Now(),
	}
	if err := m.store.CreateCronJobLog(&entry); err != nil {
		log.Printf("[CRON] Failed to log start of %s: %v", jobName, err)
	}
}

// logJobComplete records a successful job run
func (m *CronManager) logJobComplete(jobName string, startedAt time.Time, message string) {
	completedAt := time.Now()
	entry := model.CronJobLog{
		JobName:     jobName,
		Status:      "completed",
		StartedAt:   startedAt,
		CompletedAt: &completedAt,
		Duration:    int(completedAt.Sub(startedAt).Milliseconds()),
		Message:     message,
	}
	if err := m.store.CreateCronJobLog(&entry); err != nil {
		log.Printf("[CRON] Failed to log completion of %s: %v", jobName, err)
	}
	log.Printf("[CRON] %s: %s", jobName, message)
}

// logJobError records a failed job run
func (m *CronManager) logJobError(jobName string, startedAt time.Time, jobErr error) {
	completedAt := time.Now()
	entry := model.CronJobLog{
		JobName:     jobName,
		Status:      "failed",
		StartedAt:   startedAt,
		CompletedAt: &completedAt,
		Duration:    int(completedAt.Sub(startedAt).Milliseconds()),
		ErrorMsg:    jobErr.Error(),
	}
	if err := m.store.CreateCronJobLog(&entry); err != nil {
		log.Printf("[CRON] Failed to log error of %s: %v", jobName, err)
	}
	log.Printf("[CRON] %s failed: %v", jobName, jobErr)
}
