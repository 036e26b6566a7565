package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"shopbot/internal/domain/service"
	"shopbot/internal/errors"
)

// PushMessage mirrors the body Google Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps an event the way a push subscription would deliver it.
func NewPushMessage(subscription string, event *service.OrderReadyEvent) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.OrderID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event)

	return msg, nil
}

// DecodeEvent extracts the order-ready event from the push body.
func (m *PushMessage) DecodeEvent() (*service.OrderReadyEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.OrderReadyEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse order ready event")
	}
	if event.OrderID == "" {
		return nil, errors.New("order ready event without order id")
	}

	return &event, nil
}

// eventAttributes are used for subscription filtering and tracing.
func eventAttributes(event *service.OrderReadyEvent) map[string]string {
	attributes := map[string]string{
		"order_id": event.OrderID,
		"user_id":  event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
