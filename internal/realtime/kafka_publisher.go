package realtime

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/events"
)

type noopPublisher struct{}

func NewNoopPublisher() noopPublisher { return noopPublisher{} }

func (noopPublisher) PublishRecordChanged(context.Context, events.RecordEvent) error {
	return nil
}

// kafkaPublisher pushes record events to the broker so every API instance's
// bridge consumer can feed its own subscriber hub.
type kafkaPublisher struct {
	writer *kafkago.Writer
}

func NewKafkaPublisher(writer *kafkago.Writer) *kafkaPublisher {
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) PublishRecordChanged(ctx context.Context, event events.RecordEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: events.RecordChangedTopic,
		Key:   []byte(event.RecordID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
