package models

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentGreeting    Intent = "greeting"
	IntentStatus      Intent = "status"
	IntentPower       Intent = "power"
	IntentBattery     Intent = "battery"
	IntentWater       Intent = "water"
	IntentMaintenance Intent = "maintenance"
	IntentUnknown     Intent = "unknown"
)

// Analysis is the classifier verdict for one message. Derived per message,
// never persisted.
type Analysis struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}
