package cron

import (
	"fmt"
	"time"
)

// OrphanDiseaseAudit counts diseases whose crop row no longer exists.
// Dangling crop references are legal, so the audit reports and never
// repairs; the count gives admins a signal that reference data needs
// curation.
func (m *CronManager) OrphanDiseaseAudit() {
	startedAt := time.Now()
	jobName := "orphan_disease_audit"

	orphans, err := m.store.CountOrphanDiseases()
	if err != nil {
		m.logJobError(jobName, startedAt, fmt.Errorf("failed to count orphan diseases: %w", err))
		return
	}

	if orphans == 0 {
		m.logJobComplete(jobName, startedAt, "No orphan diseases found")
		return
	}

	m.logJobComplete(jobName, startedAt, fmt.Sprintf("Found %d diseases referencing deleted crops", orphans))
}

// DatabaseHealthPing verifies the database connection is alive
func (m *CronManager) DatabaseHealthPing() {
	startedAt := time.Now()
	jobName := "database_health_ping"

	if err := m.store.HealthCheck(); err != nil {
		m.logJobError(jobName, startedAt, fmt.Errorf("database ping failed: %w", err))
		return
	}

	m.logJobComplete(jobName, startedAt, "Database reachable")
}
