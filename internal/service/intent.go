package service

import (
	"strings"

	"astrid/internal/models"
)

// unknownConfidence is returned when no keyword set matches.
const unknownConfidence = 0.3

// keywordRule binds one intent to its keyword set and fixed confidence.
type keywordRule struct {
	intent     models.Intent
	confidence float64
	keywords   []string
}

// classifierRules are checked in order; the first match wins. The order is
// behavior: "what is my battery level" hits the status rule ("what") before
// the battery rule ever runs. Do not reorder.
var classifierRules = []keywordRule{
	{models.IntentGreeting, 0.9, []string{"hello", "hi", "hey", "greetings"}},
	{models.IntentStatus, 0.8, []string{"status", "how", "what", "condition", "state"}},
	{models.IntentPower, 0.85, []string{"power", "electricity", "watt", "consumption", "generation"}},
	{models.IntentBattery, 0.9, []string{"battery", "capacity", "charge", "energy", "storage"}},
	{models.IntentWater, 0.7, []string{"water", "reserve", "level", "tank"}},
	{models.IntentMaintenance, 0.8, []string{"maintenance", "service", "check", "inspect"}},
}

// ClassifierService does deliberately simple substring matching. It is not
// NLP and is not meant to become NLP.
type ClassifierService struct{}

func NewClassifierService() *ClassifierService {
	return &ClassifierService{}
}

// Classify lower-cases and trims the message, then tests each rule's keyword
// set in priority order.
func (s *ClassifierService) Classify(message string) models.Analysis {
	m := strings.ToLower(strings.TrimSpace(message))
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(m, kw) {
				return models.Analysis{Intent: rule.intent, Confidence: rule.confidence}
			}
		}
	}
	return models.Analysis{Intent: models.IntentUnknown, Confidence: unknownConfidence}
}
