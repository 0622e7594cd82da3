package sweeper

import (
	"context"
	"log"
	"time"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/pkg/ledger"
	"github.com/knockbase/knockbase/pkg/metrics"
	"github.com/knockbase/knockbase/pkg/notify"
	"github.com/knockbase/knockbase/pkg/reconcile"
)

// Service runs the activation sweep: it finds pending scheduled assignments
// whose date has arrived and promotes each one to an active immediate
// assignment. Each promotion runs in its own transaction, so one bad row
// never blocks the rest of the batch.
type Service struct {
	client   *ent.Client
	ledger   *ledger.Service
	engine   *reconcile.Engine
	notifier notify.Notifier
	metrics  *metrics.Metrics
	logger   *log.Logger
}

// NewService creates a new sweeper. notifier and m may be nil.
func NewService(client *ent.Client, engine *reconcile.Engine, notifier notify.Notifier, m *metrics.Metrics, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		client:   client,
		ledger:   engine.Ledger(),
		engine:   engine,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// SweepReport summarizes one activation sweep run.
type SweepReport struct {
	Due       int `json:"due"`
	Activated int `json:"activated"`
	Failed    int `json:"failed"`
}

// RunActivationSweep promotes every due pending scheduled assignment. The
// flip (mark activated + create the immediate row + move the zone) is one
// transaction per row; the status propagation that follows is the same
// log-and-continue path the engine uses for direct assignments.
func (s *Service) RunActivationSweep(ctx context.Context) (*SweepReport, error) {
	start := time.Now()
	report := &SweepReport{}

	due, err := s.ledger.DuePending(ctx, start)
	if err != nil {
		return nil, err
	}
	report.Due = len(due)

	if len(due) == 0 {
		return report, nil
	}

	s.logger.Printf("🕐 Activation sweep: %d assignment(s) due", len(due))

	for _, row := range due {
		if err := s.activate(ctx, row); err != nil {
			report.Failed++
			s.logger.Printf("❌ Failed to activate scheduled assignment %d (zone %d): %v", row.ID, row.ZoneID, err)
			if s.metrics != nil {
				s.metrics.RecordActivation(false)
			}
			continue
		}
		report.Activated++
		if s.metrics != nil {
			s.metrics.RecordActivation(true)
		}
	}

	if s.metrics != nil {
		s.metrics.ObserveSweepDuration(time.Since(start))
	}
	if report.Activated > 0 || report.Failed > 0 {
		s.logger.Printf("✅ Activation sweep done: %d activated, %d failed (%.2fs)", report.Activated, report.Failed, time.Since(start).Seconds())
	}

	return report, nil
}

func (s *Service) activate(ctx context.Context, row *ent.ScheduledAssignment) error {
	target := ledger.TargetOfScheduled(row)
	now := time.Now()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return err
	}

	// Guard against a concurrent sweep or a cancellation that landed after
	// the batch was read: only a still-pending row flips.
	flipped, err := tx.ScheduledAssignment.Update().
		Where(
			scheduledassignment.ID(row.ID),
			scheduledassignment.StatusEQ(scheduledassignment.StatusPending),
		).
		SetStatus(scheduledassignment.StatusActivated).
		SetActivatedAt(now).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return err
	}
	if flipped == 0 {
		tx.Rollback()
		return nil
	}

	// Close any lingering immediate claim on the zone before opening the new
	// one. A consistent ledger has none at this point; drift gets repaired.
	if _, err := s.ledger.TerminateForZone(ctx, tx, row.ZoneID, now); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := s.ledger.CreateImmediate(ctx, tx, row.ZoneID, target, row.EffectiveFrom, row.AssignedByUserID); err != nil {
		tx.Rollback()
		return err
	}

	zoneUpdate := tx.Zone.UpdateOneID(row.ZoneID).SetStatus(zone.StatusActive)
	if target.IsAgent() {
		zoneUpdate.SetAssignedAgentID(target.ID()).ClearTeamID()
	} else {
		zoneUpdate.SetTeamID(target.ID()).ClearAssignedAgentID()
	}
	if err := zoneUpdate.Exec(ctx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	result := s.engine.AttachActivated(ctx, row.ZoneID, target)
	for _, p := range result.Partial {
		s.logger.Printf("⚠️  %s", p)
	}

	if s.notifier != nil {
		s.notifier.NotifyActivated(ctx, target, row.ZoneID, row.EffectiveFrom)
	}

	s.logger.Printf("✅ Activated scheduled assignment %d: zone %d → %s", row.ID, row.ZoneID, target)
	return nil
}
