package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/knockbase/knockbase/pkg/reconcile"
	"github.com/knockbase/knockbase/pkg/sweeper"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron          *cron.Cron
	sweeper       *sweeper.Service
	engine        *reconcile.Engine
	logger        *log.Logger
	sweepInterval int
}

// NewCronManager creates a new cron manager. sweepIntervalMinutes controls
// how often the activation sweep runs; values below 1 fall back to 5.
func NewCronManager(sweepSvc *sweeper.Service, engine *reconcile.Engine, sweepIntervalMinutes int, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}
	if sweepIntervalMinutes < 1 {
		sweepIntervalMinutes = 5
	}

	return &CronManager{
		cron:          cron.New(),
		sweeper:       sweepSvc,
		engine:        engine,
		logger:        logger,
		sweepInterval: sweepIntervalMinutes,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Every N minutes: activate due scheduled assignments
	sweepSpec := fmt.Sprintf("*/%d * * * *", cm.sweepInterval)
	_, err := cm.cron.AddFunc(sweepSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if _, err := cm.sweeper.RunActivationSweep(ctx); err != nil {
			cm.logger.Printf("❌ Activation sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// Daily at 3 AM: full resync to repair any drift left behind by
	// partial reconciliation failures
	_, err = cm.cron.AddFunc("0 3 * * *", func() {
		cm.logger.Println("🕐 Running nightly consistency resync...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		report, err := cm.engine.ResyncAll(ctx, 0)
		if err != nil {
			cm.logger.Printf("❌ Nightly resync failed: %v", err)
			return
		}

		cm.logger.Printf("✅ Nightly resync done: %d agents, %d teams checked, %d drift(s) corrected, %d failure(s)",
			report.AgentsChecked, report.TeamsChecked, report.DriftsCorrected, report.Failures)
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Printf("  - Every %d min: activation sweep", cm.sweepInterval)
	cm.logger.Println("  - Daily at 3 AM: consistency resync")

	return nil
}

// Start starts the cron scheduler and runs one sweep immediately so
// assignments that came due while the server was down activate right away.
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if _, err := cm.sweeper.RunActivationSweep(ctx); err != nil {
			cm.logger.Printf("❌ Startup activation sweep failed: %v", err)
		}
	}()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}

// GetSweeper returns the sweeper (for manual triggers)
func (cm *CronManager) GetSweeper() *sweeper.Service {
	return cm.sweeper
}
