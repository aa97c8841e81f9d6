package service

import (
	"context"
	"encoding/json"
	"time"

	"eco-chat-be/internal/pkg/logger"
	"eco-chat-be/pkg/events"
	pktNats "eco-chat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const usageTopicName = "USAGE_EVENTS"

// IUsageRecorder is the fire-and-forget side used by request handlers.
type IUsageRecorder interface {
	Record(eventType, identity string, elapsed time.Duration, ok bool)
}

// IUsageConsumer drains the usage topic; main runs it in the background.
type IUsageConsumer interface {
	Consume(ctx context.Context) error
}

type usageService struct {
	pubSub  *gochannel.GoChannel
	natsPub *pktNats.Publisher // optional mirror, may be nil
	sysLog  logger.ILogger
}

func NewUsageService(
	pubSub *gochannel.GoChannel,
	natsPub *pktNats.Publisher,
	sysLog logger.ILogger,
) *usageService {
	return &usageService{
		pubSub:  pubSub,
		natsPub: natsPub,
		sysLog:  sysLog,
	}
}

type usageMessage struct {
	Type      string                 `json:"type"`
	Payload   map[string]interface{} `json:"payload"`
	Timestamp time.Time              `json:"timestamp"`
}

// Record publishes a usage event onto the in-process bus. Publishing failures
// are logged and swallowed; accounting must never fail a request.
func (us *usageService) Record(eventType, identity string, elapsed time.Duration, ok bool) {
	event := events.NewUsageEvent(eventType, identity, elapsed, ok)

	payload, err := json.Marshal(usageMessage{
		Type:      event.EventType(),
		Payload:   event.Payload(),
		Timestamp: event.Timestamp(),
	})
	if err != nil {
		us.sysLog.Error("usage", "Failed to marshal usage event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	if err := us.pubSub.Publish(usageTopicName, msg); err != nil {
		us.sysLog.Error("usage", "Failed to publish usage event", map[string]interface{}{"error": err.Error()})
	}
}

// Consume subscribes to the usage topic, logs each event, and mirrors it to
// NATS when a publisher is configured.
func (us *usageService) Consume(ctx context.Context) error {
	messages, err := us.pubSub.Subscribe(ctx, usageTopicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			us.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (us *usageService) processMessage(ctx context.Context, msg *message.Message) {
	var payload usageMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		us.sysLog.Error("usage", "Failed to unmarshal usage event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	us.sysLog.Info("usage", payload.Type, payload.Payload)

	if us.natsPub != nil {
		pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		event := events.BaseEvent{Type: payload.Type, Data: payload.Payload, OccurredAt: payload.Timestamp}
		if err := us.natsPub.Publish(pubCtx, event); err != nil {
			us.sysLog.Warn("usage", "Failed to mirror usage event to NATS", map[string]interface{}{"error": err.Error()})
		}
		cancel()
	}

	msg.Ack()
}
