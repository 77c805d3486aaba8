package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"astrid/internal/models"
)

const (
	maintenanceIntervalDays = 30

	// initialMaintenanceAge backdates the maintenance record at startup.
	initialMaintenanceAge = 7 * 24 * time.Hour

	waterReply = "I don't have access to water system sensors at the moment. My current monitoring is limited to power systems."
)

// responsePatterns holds the canned reply lists per intent. Power and battery
// entries are fmt templates filled from the live snapshot.
var responsePatterns = map[models.Intent][]string{
	models.IntentGreeting: {
		"Greetings, human. How may I assist you today?",
		"Hello there. What would you like to know about your systems?",
		"ASTRID online and ready. What's your query?",
	},
	models.IntentStatus: {
		"Current system status: All systems operational.",
		"Status check complete. Everything is running within normal parameters.",
		"Systems are functioning at optimal levels.",
	},
	models.IntentPower: {
		"Power consumption is currently at %dW with %dW solar generation.",
		"Your power grid shows %dW load against %dW solar input.",
		"Power status: %d%% battery, %dW consumption, %dW generation.",
	},
	models.IntentBattery: {
		"Battery capacity is at %d%%.",
		"Your energy storage shows %d%% remaining.",
		"Battery status: %d%% capacity available.",
	},
	models.IntentUnknown: {
		"I'm not sure I understand that query. Could you rephrase?",
		"That's outside my current knowledge base. Try asking about power, battery, or system status.",
		"I need more context to help you with that request.",
	},
}

// ResponderService turns an intent plus a HUD snapshot into a reply line.
// The random pick and the clock are injectable for deterministic tests.
type ResponderService struct {
	mu  sync.Mutex
	rnd *rand.Rand

	// pick overrides rnd when set; returns an index in [0, n).
	pick func(n int) int
	now  func() time.Time

	// lastMaintenance is set once at construction and never updated by any
	// exposed operation. Current behavior, kept on purpose.
	lastMaintenance time.Time
}

func NewResponderService() *ResponderService {
	now := time.Now()
	return &ResponderService{
		rnd:             rand.New(rand.NewSource(now.UnixNano())),
		now:             time.Now,
		lastMaintenance: now.Add(-initialMaintenanceAge),
	}
}

// choose returns a uniform index in [0, n).
func (s *ResponderService) choose(n int) int {
	if s.pick != nil {
		return s.pick(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// pickPattern selects one canned line for the intent.
func (s *ResponderService) pickPattern(intent models.Intent) string {
	list := responsePatterns[intent]
	return list[s.choose(len(list))]
}

// Generate produces the reply for an intent using the given snapshot. The
// numeric values come from the snapshot, never from the message text, and are
// truncated to integers for display.
func (s *ResponderService) Generate(intent models.Intent, st models.HudState) string {
	switch intent {
	case models.IntentGreeting, models.IntentStatus:
		return s.pickPattern(intent)

	case models.IntentPower:
		load, sun, battery := int(st.LoadW), int(st.SunW), int(st.BatteryPct)
		switch s.choose(len(responsePatterns[models.IntentPower])) {
		case 0:
			return fmt.Sprintf(responsePatterns[models.IntentPower][0], load, sun)
		case 1:
			return fmt.Sprintf(responsePatterns[models.IntentPower][1], load, sun)
		default:
			return fmt.Sprintf(responsePatterns[models.IntentPower][2], battery, load, sun)
		}

	case models.IntentBattery:
		template := s.pickPattern(models.IntentBattery)
		return fmt.Sprintf(template, int(st.BatteryPct))

	case models.IntentWater:
		return waterReply

	case models.IntentMaintenance:
		return s.maintenanceReply()

	default:
		return s.pickPattern(models.IntentUnknown)
	}
}

// maintenanceReply reports elapsed/remaining days against the 30-day interval.
func (s *ResponderService) maintenanceReply() string {
	daysSince := int(s.now().Sub(s.lastMaintenance).Hours() / 24)
	if daysSince > maintenanceIntervalDays {
		return fmt.Sprintf("System maintenance is overdue by %d days. Recommend scheduling a service check.",
			daysSince-maintenanceIntervalDays)
	}
	return fmt.Sprintf("Last maintenance was %d days ago. Next scheduled maintenance in %d days.",
		daysSince, maintenanceIntervalDays-daysSince)
}

// PatternCount reports the number of canned response categories.
func (s *ResponderService) PatternCount() int {
	return len(responsePatterns)
}

// LastMaintenance returns the maintenance timestamp used by reply wording.
func (s *ResponderService) LastMaintenance() time.Time {
	return s.lastMaintenance
}
