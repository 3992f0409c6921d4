package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jordanlanch/realtycrm/pkg/leads"
	"github.com/jordanlanch/realtycrm/pkg/metrics"
)

// CronManager schedules the periodic working-set refresh.
type CronManager struct {
	cron    *cron.Cron
	service *leads.Service
	metrics *metrics.Metrics
	logger  *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(service *leads.Service, m *metrics.Metrics, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		service: service,
		metrics: m,
		logger:  logger,
	}
}

// SetupJobs registers the refresh job on the given cron spec.
func (cm *CronManager) SetupJobs(refreshSpec string) error {
	cm.logger.Println("Setting up cron jobs...")

	_, err := cm.cron.AddFunc(refreshSpec, func() {
		cm.logger.Println("🕐 Running scheduled lead refresh...")

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		resp, err := cm.service.Refresh(ctx)
		if err != nil {
			cm.logger.Printf("❌ Scheduled refresh failed: %v", err)
			return
		}

		if cm.metrics != nil {
			cm.metrics.ObserveRefresh(resp.Source)
			cm.metrics.SetWorkingSetSize(resp.Total)
		}

		if resp.Refreshed {
			cm.logger.Printf("✅ Scheduled refresh completed: %d leads", resp.Total)
		} else {
			cm.logger.Printf("⚠️ Lead store unavailable, serving %d leads from the last snapshot", resp.Total)
		}
	})
	if err != nil {
		return err
	}

	cm.logger.Printf("✅ Cron jobs configured successfully")
	cm.logger.Printf("  - %s: refresh lead working set", refreshSpec)

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
