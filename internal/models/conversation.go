package models

import "time"

// ConversationEntry is one user/bot exchange. Immutable once created.
type ConversationEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
}
