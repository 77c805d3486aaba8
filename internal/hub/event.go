package hub

import "astrid/internal/models"

// Event types on the wire.
const (
	EventState       = "state"
	EventUserLine    = "user_line"
	EventClearCenter = "clear_center"
	EventBotReply    = "bot_reply"
)

// Event is the tagged envelope sent to clients. Immutable once handed to
// Broadcast or Send.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
	Text string `json:"text,omitempty"`
}

// StateEvent carries a full HudState snapshot.
func StateEvent(st models.HudState) Event {
	return Event{Type: EventState, Data: st}
}

// UserLineEvent updates the small last-user-message line on every viewer.
func UserLineEvent(text string) Event {
	return Event{Type: EventUserLine, Text: text}
}

// ClearCenterEvent tells every viewer to show the typing indicator.
func ClearCenterEvent() Event {
	return Event{Type: EventClearCenter}
}

// BotReplyEvent carries a reply for clients to type out.
func BotReplyEvent(text string) Event {
	return Event{Type: EventBotReply, Text: text}
}
