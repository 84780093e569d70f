package realtime

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/events"
)

// RunBridge feeds broker record events into the local subscriber hub. It runs
// until the context is cancelled. Undecodable messages are committed and
// skipped; duplicates are tolerated downstream, so redelivery is harmless.
func RunBridge(
	ctx context.Context,
	reader *kafkago.Reader,
	hub *Hub,
	logger *zap.Logger,
) {
	log := logger.Named("realtime.bridge")
	log.Info("record event bridge started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("record event bridge stopped")
				return
			}
			log.Error("fetch record event failed", zap.Error(err))
			continue
		}

		var event events.RecordEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode record event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		hub.Publish(event.Record)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit record event failed", zap.Error(err))
		}
	}
}
