package realtime_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/events"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/realtime"
)

func receive(t *testing.T, ch <-chan json.RawMessage) json.RawMessage {
	t.Helper()
	select {
	case payload := <-ch:
		return payload
	case <-time.After(time.Second):
		t.Fatal("no payload delivered")
		return nil
	}
}

func TestHub_PublishReachesEverySubscriber(t *testing.T) {
	hub := realtime.NewHub()

	_, first := hub.Subscribe()
	_, second := hub.Subscribe()
	assert.Equal(t, 2, hub.SubscriberCount())

	hub.Publish(json.RawMessage(`{"lineNo":"BE-01"}`))

	assert.JSONEq(t, `{"lineNo":"BE-01"}`, string(receive(t, first)))
	assert.JSONEq(t, `{"lineNo":"BE-01"}`, string(receive(t, second)))
}

func TestHub_SlowSubscriberLosesMessages(t *testing.T) {
	hub := realtime.NewHub()
	_, ch := hub.Subscribe()

	// One more than the buffer: the publisher must not block and the
	// overflowing message is dropped.
	for i := 0; i < 17; i++ {
		hub.Publish(json.RawMessage(`{}`))
	}

	delivered := 0
	for {
		select {
		case <-ch:
			delivered++
			continue
		default:
		}
		break
	}
	assert.Equal(t, 16, delivered)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := realtime.NewHub()

	id, ch := hub.Subscribe()
	hub.Unsubscribe(id)

	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-ch
	assert.False(t, open)

	// Unsubscribing twice is harmless.
	hub.Unsubscribe(id)
}

func TestHub_PublishRecordChanged(t *testing.T) {
	hub := realtime.NewHub()
	_, ch := hub.Subscribe()

	err := hub.PublishRecordChanged(context.Background(), events.RecordEvent{
		EventType:  events.TypeRecordCreated,
		RecordID:   "rec-1",
		OccurredAt: time.Now().UTC(),
		Record:     json.RawMessage(`{"id":"rec-1","variance":-5}`),
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"rec-1","variance":-5}`, string(receive(t, ch)))
}
