package service

import (
	"sync"

	"astrid/internal/models"
)

// StateService holds the one process-wide HudState. Numeric values are
// accepted as-is; out-of-range input is the caller's problem, not silently
// clamped here.
type StateService struct {
	mu sync.Mutex
	st models.HudState
}

func NewStateService() *StateService {
	return &StateService{st: models.DefaultHudState()}
}

// Get returns a copy of the current snapshot.
func (s *StateService) Get() models.HudState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

// ApplyPartial overwrites only the fields present in u and returns the
// resulting full state. Omitted fields keep their prior values.
func (s *StateService) ApplyPartial(u models.StateUpdate) models.HudState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.Headline != nil {
		s.st.Headline = *u.Headline
	}
	if u.Eve != nil {
		s.st.Eve = *u.Eve
	}
	if u.BatteryPct != nil {
		s.st.BatteryPct = *u.BatteryPct
	}
	if u.LoadW != nil {
		s.st.LoadW = *u.LoadW
	}
	if u.SunW != nil {
		s.st.SunW = *u.SunW
	}
	if u.LoadMinW != nil {
		s.st.LoadMinW = *u.LoadMinW
	}
	if u.LoadMaxW != nil {
		s.st.LoadMaxW = *u.LoadMaxW
	}
	if u.SunMinW != nil {
		s.st.SunMinW = *u.SunMinW
	}
	if u.SunMaxW != nil {
		s.st.SunMaxW = *u.SunMaxW
	}
	if u.LastUserLine != nil {
		s.st.LastUserLine = *u.LastUserLine
	}
	return s.st
}

// SetLastUserLine records the most recent user message.
func (s *StateService) SetLastUserLine(line string) models.HudState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.LastUserLine = line
	return s.st
}

// SetPendingReply marks a reply as in flight.
func (s *StateService) SetPendingReply(text string) models.HudState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.BotReplyPending = &text
	return s.st
}

// ClearPendingReply clears the in-flight reply marker.
func (s *StateService) ClearPendingReply() models.HudState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.BotReplyPending = nil
	return s.st
}
