package amqp

import (
	"encoding/json"
	"time"

	"fintrack/internal/core"
)

// NotificationMessage is the wire form of a notification fanned out to
// downstream consumers. It carries the full payload so consumers never
// need to call back into the service.
type NotificationMessage struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotificationMessage builds the wire message for a notification.
func NewNotificationMessage(n core.Notification) *NotificationMessage {
	return &NotificationMessage{
		ID:        n.ID.String(),
		OwnerID:   n.OwnerID,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
}

// ToJSON converts the message to JSON bytes
func (m *NotificationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// NotificationMessageFromJSON creates a message from JSON bytes
func NotificationMessageFromJSON(data []byte) (*NotificationMessage, error) {
	var msg NotificationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
