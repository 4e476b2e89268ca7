// Package notify is the realtime fan-out boundary: room-keyed pub/sub the
// use cases publish to on match and message creation. Delivery is
// best-effort; callers log and swallow failures so a publish can never fail
// a primary operation.
package notify

import (
	"context"
	"strconv"
)

type Notifier interface {
	Publish(ctx context.Context, channel string, payload interface{}) error
}

// ChatChannel names the per-room channel subscribers join.
func ChatChannel(roomID int) string {
	return "chat_" + strconv.Itoa(roomID)
}

// MatchEventsChannel carries match acceptance events.
const MatchEventsChannel = "match_events"
