package service

import (
	"context"
	"math"
	"math/rand"
	"time"

	"astrid/internal/hub"
	"astrid/internal/models"
)

// Simulation constants.
const (
	// sunCycle is one full day-curve for solar generation. Short on purpose:
	// this is a demo feed, viewers should see movement within minutes.
	sunCycle = 10 * time.Minute

	// loadJitterFrac bounds the per-tick random walk of the house load,
	// as a fraction of the load display range.
	loadJitterFrac = 0.05

	// batteryPerWattSec converts net watts into battery percent per second.
	batteryPerWattSec = 0.0001
)

// SimulatorService feeds the HUD with synthetic telemetry: a bounded random
// walk for load, a sine day-curve for sun, and a battery that charges on
// surplus and drains on deficit. Every tick goes through the same
// ApplyPartial + broadcast path as a REST state update.
type SimulatorService struct {
	state State
	hb    Broadcaster
	rnd   *rand.Rand
	start time.Time
}

func NewSimulatorService(state State, hb Broadcaster) *SimulatorService {
	return &SimulatorService{
		state: state,
		hb:    hb,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		start: time.Now(),
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.step(now, tick)
		}
	}
}

// step advances one tick and broadcasts the resulting snapshot.
func (s *SimulatorService) step(now time.Time, tick time.Duration) {
	st := s.state.Get()

	load := s.nextLoad(st.LoadW, st.LoadMinW, st.LoadMaxW)
	sun := s.nextSun(now, st.SunMinW, st.SunMaxW)

	battery := st.BatteryPct + (sun-load)*batteryPerWattSec*tick.Seconds()
	battery = clamp(battery, 0, 100)

	full := s.state.ApplyPartial(partialTelemetry(load, sun, battery))
	if s.hb != nil {
		s.hb.Broadcast(hub.StateEvent(full))
	}
}

// nextLoad random-walks the load inside its display range.
func (s *SimulatorService) nextLoad(load, min, max float64) float64 {
	span := max - min
	if span <= 0 {
		return load
	}
	jitter := (s.rnd.Float64()*2 - 1) * span * loadJitterFrac
	return clamp(load+jitter, min, max)
}

// nextSun follows a clipped sine day-curve over sunCycle.
func (s *SimulatorService) nextSun(now time.Time, min, max float64) float64 {
	phase := now.Sub(s.start).Seconds() / sunCycle.Seconds()
	raw := max * math.Sin(2*math.Pi*phase)
	return clamp(raw, min, max)
}

func partialTelemetry(load, sun, battery float64) models.StateUpdate {
	return models.StateUpdate{LoadW: &load, SunW: &sun, BatteryPct: &battery}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
