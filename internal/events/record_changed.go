package events

import (
	"encoding/json"
	"time"
)

const RecordChangedTopic = "mfg.production.records.v1"

// SSE event name pushed to dashboard clients, kept identical to the wire
// name the frontend listens on.
const DataUpdatedEvent = "dataUpdated"

const (
	TypeRecordCreated = "record_created"
	TypeRecordUpdated = "record_updated"
	TypeClientEcho    = "client_echo"
)

// RecordEvent carries the serialized record (or an arbitrary client echo
// payload) through the fan-out path. Delivery is best-effort at-most-once;
// subscribers tolerate duplicates and re-fetch by identifier.
type RecordEvent struct {
	EventType  string          `json:"event_type"`
	RecordID   string          `json:"record_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	Record     json.RawMessage `json:"record"`
}
