package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderClientLogin(t *testing.T) {
	t.Parallel()
	ev := StaffEvent{
		Type:       EventClientLogin,
		OccurredAt: time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
		Data:       map[string]string{"name": "Joana", "email": "joana@example.com"},
	}
	subject, text := Render(ev)
	assert.Equal(t, "Client login: Joana", subject)
	assert.Contains(t, text, "joana@example.com")
}

func TestRenderPropertySubmitted(t *testing.T) {
	t.Parallel()
	ev := StaffEvent{
		Type:       EventPropertySubmitted,
		OccurredAt: time.Now().UTC(),
		Data: map[string]string{
			"submitter_name":  "Joana",
			"submitter_email": "joana@example.com",
			"title":           "Casa com quintal",
			"purpose":         "sale",
			"neighborhood":    "Parque Marinha",
			"price":           "380000.00",
			"broker":          "Helo",
		},
	}
	subject, text := Render(ev)
	assert.Equal(t, "New property submission: Casa com quintal", subject)
	assert.Contains(t, text, "pending approval")
	assert.Contains(t, text, "Helo")
}

func TestRenderUnknownEvent(t *testing.T) {
	t.Parallel()
	subject, _ := Render(StaffEvent{Type: "mystery", OccurredAt: time.Now()})
	assert.Equal(t, "Notification", subject)
}

func TestNotifierNilPublisherIsNoop(t *testing.T) {
	t.Parallel()
	var n *Notifier
	// must not panic without a publisher
	n.publish(context.Background(), StaffEvent{Type: EventClientLogin})

	n2 := NewNotifier(nil, nil)
	n2.publish(context.Background(), StaffEvent{Type: EventClientLogin})
}
