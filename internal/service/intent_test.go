package service

import (
	"testing"

	"astrid/internal/models"
)

func TestClassify_KeywordCategories(t *testing.T) {
	t.Parallel()

	s := NewClassifierService()

	tests := []struct {
		name           string
		message        string
		wantIntent     models.Intent
		wantConfidence float64
	}{
		{"greeting_hello", "hello", models.IntentGreeting, 0.9},
		{"greeting_hey_with_noise", "HEY astrid!", models.IntentGreeting, 0.9},
		{"status_condition", "report the condition please", models.IntentStatus, 0.8},
		{"power_watt", "watt usage right now", models.IntentPower, 0.85},
		{"battery_charge", "charge remaining?", models.IntentBattery, 0.9},
		{"water_tank", "is the tank full", models.IntentWater, 0.7},
		{"maintenance_inspect", "please inspect the unit", models.IntentMaintenance, 0.8},
		{"unknown", "tell me a joke", models.IntentUnknown, 0.3},
		{"unknown_empty", "   ", models.IntentUnknown, 0.3},
		{"case_and_whitespace_normalized", "  GREETINGS  ", models.IntentGreeting, 0.9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Classify(tc.message)
			if got.Intent != tc.wantIntent || got.Confidence != tc.wantConfidence {
				t.Fatalf("Classify(%q) = %v/%v, want %v/%v",
					tc.message, got.Intent, got.Confidence, tc.wantIntent, tc.wantConfidence)
			}
		})
	}
}

// The rule order is part of the contract: status is checked before power and
// battery, so overlapping keywords resolve to status.
func TestClassify_PriorityTieBreaks(t *testing.T) {
	t.Parallel()

	s := NewClassifierService()

	tests := []struct {
		name       string
		message    string
		wantIntent models.Intent
		wantConf   float64
	}{
		// "status" (status set) beats "power" (power set).
		{"status_beats_power", "status of the power grid", models.IntentStatus, 0.8},
		// "what" is a status keyword, so the battery keyword never gets a look.
		{"what_beats_battery", "what is my battery level", models.IntentStatus, 0.8},
		{"how_beats_battery", "how much battery", models.IntentStatus, 0.8},
		// greeting outranks everything.
		{"greeting_beats_status", "hello, what's the status", models.IntentGreeting, 0.9},
		// power outranks battery when no status word is present.
		{"power_beats_battery", "power and battery figures", models.IntentPower, 0.85},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Classify(tc.message)
			if got.Intent != tc.wantIntent || got.Confidence != tc.wantConf {
				t.Fatalf("Classify(%q) = %v/%v, want %v/%v",
					tc.message, got.Intent, got.Confidence, tc.wantIntent, tc.wantConf)
			}
		})
	}
}
