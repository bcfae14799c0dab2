package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/pkg/helpers"
)

// EventType identifies a staff notification trigger.
type EventType string

const (
	EventClientLogin       EventType = "client_login"
	EventPropertySubmitted EventType = "property_submitted"
)

// StaffEvent is the JSON payload put on the RabbitMQ queue. The worker turns
// it into one email per configured staff address.
type StaffEvent struct {
	Type       EventType         `json:"type"`
	OccurredAt time.Time         `json:"occurred_at"`
	Data       map[string]string `json:"data"`
}

// Notifier publishes staff events fire-and-forget. Publish failures are
// logged and never returned: the triggering request must succeed regardless
// of notification outcome.
type Notifier struct {
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewNotifier(pub *helpers.RabbitPublisher, logger *logrus.Logger) *Notifier {
	return &Notifier{Pub: pub, Logger: logger}
}

func (n *Notifier) publish(ctx context.Context, ev StaffEvent) {
	if n == nil || n.Pub == nil {
		return
	}
	if err := n.Pub.PublishJSON(ctx, ev); err != nil && n.Logger != nil {
		n.Logger.WithError(err).WithField("event", ev.Type).Warn("staff notification publish failed")
	}
}

// ClientLogin notifies staff that a client signed in.
func (n *Notifier) ClientLogin(ctx context.Context, u *entity.User) {
	n.publish(ctx, StaffEvent{
		Type:       EventClientLogin,
		OccurredAt: time.Now().UTC(),
		Data: map[string]string{
			"name":  u.Name,
			"email": u.Email,
		},
	})
}

// PropertySubmitted notifies staff that a new listing is awaiting approval.
func (n *Notifier) PropertySubmitted(ctx context.Context, submitter *entity.User, p *entity.Property) {
	n.publish(ctx, StaffEvent{
		Type:       EventPropertySubmitted,
		OccurredAt: time.Now().UTC(),
		Data: map[string]string{
			"submitter_name":  submitter.Name,
			"submitter_email": submitter.Email,
			"title":           p.Title,
			"purpose":         string(p.Purpose),
			"neighborhood":    p.Neighborhood,
			"price":           fmt.Sprintf("%.2f", p.Price),
			"broker":          string(p.Broker.Name),
		},
	})
}

// Render builds the subject and plain-text body the worker mails to staff.
func Render(ev StaffEvent) (subject, text string) {
	when := ev.OccurredAt.Format(time.RFC1123)
	switch ev.Type {
	case EventClientLogin:
		subject = "Client login: " + ev.Data["name"]
		text = fmt.Sprintf("Client %s (%s) signed in at %s.",
			ev.Data["name"], ev.Data["email"], when)
	case EventPropertySubmitted:
		subject = "New property submission: " + ev.Data["title"]
		text = fmt.Sprintf(
			"%s (%s) submitted %q for %s in %s at R$ %s.\nAssigned broker: %s.\nSubmitted at %s. The listing is pending approval.",
			ev.Data["submitter_name"], ev.Data["submitter_email"], ev.Data["title"],
			ev.Data["purpose"], ev.Data["neighborhood"], ev.Data["price"],
			ev.Data["broker"], when)
	default:
		subject = "Notification"
		text = fmt.Sprintf("Event %s at %s.", ev.Type, when)
	}
	return subject, text
}
