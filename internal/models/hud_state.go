package models

// HudState is the single shared dashboard snapshot pushed to every viewer.
// Exactly one instance exists for the lifetime of the process; all reads and
// writes go through the state service.
type HudState struct {
	Headline   string  `json:"headline"`
	Eve        string  `json:"eve"`         // 1-3 char house status
	BatteryPct float64 `json:"battery_pct"` // 0..100, callers should clamp
	LoadW      float64 `json:"load_w"`
	SunW       float64 `json:"sun_w"`
	LoadMinW   float64 `json:"load_min_w"`
	LoadMaxW   float64 `json:"load_max_w"`
	SunMinW    float64 `json:"sun_min_w"`
	SunMaxW    float64 `json:"sun_max_w"`

	// Last user message shown at the top of the big box.
	LastUserLine string `json:"last_user_line"`

	// Transient: set just before a bot_reply broadcast, cleared right after.
	BotReplyPending *string `json:"bot_reply_pending,omitempty"`
}

// DefaultHudState returns the boot snapshot.
func DefaultHudState() HudState {
	return HudState{
		Headline:     "BRAM HOUSE",
		Eve:          "EVE",
		BatteryPct:   76.0,
		LoadW:        1344.0,
		SunW:         8000.0,
		LoadMinW:     0.0,
		LoadMaxW:     5000.0,
		SunMinW:      0.0,
		SunMaxW:      8000.0,
		LastUserLine: "HELLO ASTRID, HOW ARE MY RESERVE WATER LEVELS?",
	}
}

// StateUpdate is a partial HudState: nil fields are left untouched when applied.
type StateUpdate struct {
	Headline     *string  `json:"headline,omitempty"`
	Eve          *string  `json:"eve,omitempty" binding:"omitempty,min=1,max=3"`
	BatteryPct   *float64 `json:"battery_pct,omitempty"`
	LoadW        *float64 `json:"load_w,omitempty"`
	SunW         *float64 `json:"sun_w,omitempty"`
	LoadMinW     *float64 `json:"load_min_w,omitempty"`
	LoadMaxW     *float64 `json:"load_max_w,omitempty"`
	SunMinW      *float64 `json:"sun_min_w,omitempty"`
	SunMaxW      *float64 `json:"sun_max_w,omitempty"`
	LastUserLine *string  `json:"last_user_line,omitempty"`
}
