package service

import (
	"context"
	"time"

	"astrid/internal/hub"
	"astrid/internal/models"
	"astrid/internal/repository"
)

// State owns the single shared HUD snapshot. Every method returns the full
// resulting state so callers can broadcast it without a second read.
type State interface {
	Get() models.HudState
	ApplyPartial(u models.StateUpdate) models.HudState
	SetLastUserLine(line string) models.HudState
	SetPendingReply(text string) models.HudState
	ClearPendingReply() models.HudState
}

// Classifier maps a free-text message to an intent and confidence.
type Classifier interface {
	Classify(message string) models.Analysis
}

// Responder produces a reply string for an intent and a state snapshot.
type Responder interface {
	Generate(intent models.Intent, st models.HudState) string
	PatternCount() int
	LastMaintenance() time.Time
}

// Conversation is the bounded history of user/bot exchanges.
type Conversation interface {
	Append(ctx context.Context, userMessage, botResponse string) error
	List(ctx context.Context) ([]models.ConversationEntry, error)
	Count(ctx context.Context) (int, error)
}

// Controller runs the classify → generate → record pipeline and reports
// controller housekeeping status.
type Controller interface {
	Process(ctx context.Context, message string) (string, models.Analysis, error)
	Status() models.ControllerStatus
}

// Simulator drives demo telemetry. Stop via context cancellation.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// Broadcaster pushes an event to every connected viewer.
type Broadcaster interface {
	Broadcast(ev hub.Event)
}

// Service aggregates all sub-services.
type Service struct {
	State
	Classifier
	Responder
	Conversation
	Controller
	Simulator
}

// NewService wires the repository layer and the broadcaster into concrete
// services.
func NewService(repos *repository.Repository, hb Broadcaster) *Service {
	state := NewStateService()
	classifier := NewClassifierService()
	responder := NewResponderService()
	conversation := NewConversationService(repos.Conversation)
	return &Service{
		State:        state,
		Classifier:   classifier,
		Responder:    responder,
		Conversation: conversation,
		Controller:   NewControllerService(classifier, responder, conversation, state),
		Simulator:    NewSimulatorService(state, hb),
	}
}
