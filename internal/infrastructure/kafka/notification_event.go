package publisher

import (
	"context"
	"encoding/json"

	"github.com/hellolocal/shopads-service/internal/domain"
)

const (
	NotificationTopic = "notification-events"
	CommissionTopic   = "commission-events"
)

// NotificationEvent is the wire shape consumed by the notification
// service. Content and delivery are its problem, not ours.
type NotificationEvent struct {
	RecipientType string `json:"recipient_type"`
	RecipientID   string `json:"recipient_id,omitempty"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	Link          string `json:"link,omitempty"`
	Priority      string `json:"priority"`
}

// CommissionEvent asks the commerce side to derive pending commissions
// for a freshly captured order. Best-effort, published after commit.
type CommissionEvent struct {
	OrderID   string  `json:"order_id"`
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// KafkaNotifier adapts the publisher to the notification sink port.
type KafkaNotifier struct {
	publisher domain.PublisherPort
}

func NewKafkaNotifier(p domain.PublisherPort) *KafkaNotifier {
	return &KafkaNotifier{publisher: p}
}

func (n *KafkaNotifier) Notify(_ context.Context, notification domain.Notification) error {
	v, err := json.Marshal(NotificationEvent{
		RecipientType: notification.RecipientType,
		RecipientID:   notification.RecipientID,
		Title:         notification.Title,
		Message:       notification.Message,
		Link:          notification.Link,
		Priority:      notification.Priority,
	})
	if err != nil {
		return err
	}

	key := []byte(notification.RecipientType)
	if notification.RecipientID != "" {
		key = []byte(notification.RecipientID)
	}

	return n.publisher.Publish(NotificationTopic, domain.Message{Key: key, Value: v})
}

func PublishCommission(p domain.PublisherPort, event CommissionEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Publish(CommissionTopic, domain.Message{Key: []byte(event.OrderID), Value: v})
}
