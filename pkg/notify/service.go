package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/teammember"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/pkg/cache"
	"github.com/knockbase/knockbase/pkg/ledger"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Channel is the Redis pub/sub channel the socket gateway subscribes to.
const Channel = "knockbase:assignments"

// Event types published on the channel.
const (
	EventAssigned  = "zone.assigned"
	EventScheduled = "zone.scheduled"
	EventActivated = "zone.activated"
)

// Notifier delivers post-reconciliation events to affected agents.
// Implementations are fire-and-forget: failures are logged, never returned,
// so notification problems cannot block or roll back a reconciliation.
type Notifier interface {
	NotifyAssignment(ctx context.Context, target ledger.Target, zoneID int, effectiveFrom time.Time)
	NotifyScheduled(ctx context.Context, target ledger.Target, zoneID int, scheduledDate time.Time)
	NotifyActivated(ctx context.Context, target ledger.Target, zoneID int, effectiveFrom time.Time)
}

// Event is the payload published on the Redis channel.
type Event struct {
	Event         string    `json:"event"`
	ZoneID        int       `json:"zone_id"`
	TargetKind    string    `json:"target_kind"`
	TargetID      int       `json:"target_id"`
	EffectiveFrom time.Time `json:"effective_from"`
	Timestamp     int64     `json:"timestamp"`
}

// Service is the production Notifier: emails affected agents via SendGrid
// (console mode when no API key is configured) and publishes a JSON event on
// Redis for the socket gateway.
type Service struct {
	client      *ent.Client
	cache       *cache.Client
	fromEmail   string
	fromName    string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new notification service. cacheClient may be nil, in
// which case no socket events are published.
func NewService(client *ent.Client, cacheClient *cache.Client, fromEmail, fromName, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Notification service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Notification service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		client:      client,
		cache:       cacheClient,
		fromEmail:   fromEmail,
		fromName:    fromName,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// NotifyAssignment notifies the target that a zone was assigned to them now.
func (s *Service) NotifyAssignment(ctx context.Context, target ledger.Target, zoneID int, effectiveFrom time.Time) {
	s.publish(ctx, EventAssigned, target, zoneID, effectiveFrom)
	s.emailTarget(ctx, target,
		"New zone assignment",
		fmt.Sprintf("Zone #%d has been assigned to you, effective %s.", zoneID, effectiveFrom.Format("Jan 2, 2006")))
}

// NotifyScheduled notifies the target about a future-dated assignment.
func (s *Service) NotifyScheduled(ctx context.Context, target ledger.Target, zoneID int, scheduledDate time.Time) {
	s.publish(ctx, EventScheduled, target, zoneID, scheduledDate)
	s.emailTarget(ctx, target,
		"Upcoming zone assignment",
		fmt.Sprintf("Zone #%d is scheduled to be assigned to you on %s.", zoneID, scheduledDate.Format("Jan 2, 2006")))
}

// NotifyActivated notifies the target that a scheduled assignment took effect.
func (s *Service) NotifyActivated(ctx context.Context, target ledger.Target, zoneID int, effectiveFrom time.Time) {
	s.publish(ctx, EventActivated, target, zoneID, effectiveFrom)
	s.emailTarget(ctx, target,
		"Zone assignment now active",
		fmt.Sprintf("Your scheduled assignment for zone #%d is now active.", zoneID))
}

func (s *Service) publish(ctx context.Context, event string, target ledger.Target, zoneID int, effectiveFrom time.Time) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(Event{
		Event:         event,
		ZoneID:        zoneID,
		TargetKind:    string(target.Kind()),
		TargetID:      target.ID(),
		EffectiveFrom: effectiveFrom,
		Timestamp:     time.Now().Unix(),
	})
	if err != nil {
		log.Printf("⚠️  Failed to marshal notification event: %v", err)
		return
	}

	if err := s.cache.Publish(ctx, Channel, payload); err != nil {
		log.Printf("⚠️  Failed to publish notification event: %v", err)
	}
}

// emailTarget resolves the target to agent email addresses: the agent itself
// for individual assignments, every current member for team assignments.
func (s *Service) emailTarget(ctx context.Context, target ledger.Target, subject, body string) {
	var recipients []*ent.User

	switch {
	case target.IsAgent():
		u, err := s.client.User.Query().
			Where(user.ID(target.ID()), user.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			log.Printf("⚠️  Failed to resolve notification recipient: %v", err)
			return
		}
		recipients = append(recipients, u)
	case target.IsTeam():
		members, err := s.client.User.Query().
			Where(
				user.DeletedAtIsNil(),
				user.HasTeamMembershipsWith(teammember.TeamID(target.ID())),
			).
			All(ctx)
		if err != nil {
			log.Printf("⚠️  Failed to resolve team notification recipients: %v", err)
			return
		}
		recipients = members
	default:
		return
	}

	for _, u := range recipients {
		if err := s.sendEmail(u.Email, u.Name, subject, body); err != nil {
			log.Printf("⚠️  Failed to notify %s: %v", u.Email, err)
		}
	}
}

func (s *Service) sendEmail(toEmail, toName, subject, body string) error {
	if !s.useSendGrid {
		log.Printf("📧 [EMAIL] %s", subject)
		log.Printf("   To: %s <%s>", toName, toEmail)
		log.Printf("   %s", body)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, fmt.Sprintf("<html><body><p>%s</p></body></html>", body))

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	return nil
}
