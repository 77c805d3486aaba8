package service

import (
	"testing"

	"astrid/internal/models"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestState_GetReturnsDefaults(t *testing.T) {
	t.Parallel()

	s := NewStateService()
	if diff := cmp.Diff(models.DefaultHudState(), s.Get()); diff != "" {
		t.Fatalf("initial state mismatch (-want +got):\n%s", diff)
	}
}

// Fields absent from the update must keep their prior values, however often
// partial updates are applied.
func TestState_ApplyPartialPreservesOmittedFields(t *testing.T) {
	t.Parallel()

	s := NewStateService()

	got := s.ApplyPartial(models.StateUpdate{
		Headline:   strPtr("NEW HOUSE"),
		BatteryPct: f64Ptr(12.5),
	})

	want := models.DefaultHudState()
	want.Headline = "NEW HOUSE"
	want.BatteryPct = 12.5

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("after first partial (-want +got):\n%s", diff)
	}

	// A second disjoint update must not reset the first one's fields.
	got = s.ApplyPartial(models.StateUpdate{
		Eve:  strPtr("AVA"),
		SunW: f64Ptr(4321),
	})

	want.Eve = "AVA"
	want.SunW = 4321

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("after second partial (-want +got):\n%s", diff)
	}
}

func TestState_ApplyPartialEmptyIsNoop(t *testing.T) {
	t.Parallel()

	s := NewStateService()
	before := s.Get()
	after := s.ApplyPartial(models.StateUpdate{})
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("empty update changed state (-before +after):\n%s", diff)
	}
}

// Out-of-range numeric values are accepted as-is: clamping is the caller's
// job, not the store's.
func TestState_NoRangeValidation(t *testing.T) {
	t.Parallel()

	s := NewStateService()
	got := s.ApplyPartial(models.StateUpdate{BatteryPct: f64Ptr(640)})
	if got.BatteryPct != 640 {
		t.Fatalf("BatteryPct = %v, want 640 (stored unclamped)", got.BatteryPct)
	}
}

func TestState_PendingReplyLifecycle(t *testing.T) {
	t.Parallel()

	s := NewStateService()

	st := s.SetPendingReply("on my way")
	if st.BotReplyPending == nil || *st.BotReplyPending != "on my way" {
		t.Fatalf("pending = %v, want \"on my way\"", st.BotReplyPending)
	}

	st = s.ClearPendingReply()
	if st.BotReplyPending != nil {
		t.Fatalf("pending = %v after clear, want nil", *st.BotReplyPending)
	}
}

func TestState_SetLastUserLine(t *testing.T) {
	t.Parallel()

	s := NewStateService()
	st := s.SetLastUserLine("HOW ARE THE PANELS")
	if st.LastUserLine != "HOW ARE THE PANELS" {
		t.Fatalf("LastUserLine = %q", st.LastUserLine)
	}
	if st.Headline != models.DefaultHudState().Headline {
		t.Fatalf("Headline changed: %q", st.Headline)
	}
}
