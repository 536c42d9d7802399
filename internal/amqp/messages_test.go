package amqp

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
	"github.com/google/uuid"

	"fintrack/internal/core"
)

func TestNewNotificationMessage(t *testing.T) {
	created := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	n := core.Notification{
		ID:        uuid.New(),
		OwnerID:   "owner-1",
		Title:     "Budget Alert",
		Message:   "You've exceeded your budget for Food",
		Kind:      core.KindOverspending,
		CreatedAt: created,
	}

	msg := NewNotificationMessage(n)
	be.Equal(t, n.ID.String(), msg.ID)
	be.Equal(t, "owner-1", msg.OwnerID)
	be.Equal(t, "overspending", msg.Kind)
	be.Equal(t, "Budget Alert", msg.Title)
	be.Equal(t, created, msg.CreatedAt)

	body, err := msg.ToJSON()
	be.NilErr(t, err)
	parsed, err := NotificationMessageFromJSON(body)
	be.NilErr(t, err)
	be.Equal(t, *msg, *parsed)
}
