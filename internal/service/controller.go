package service

import (
	"context"

	"astrid/internal/models"
)

const controllerModeNormal = "normal"

// ControllerService glues the classifier, the responder and the conversation
// log into the message pipeline shared by the websocket dispatcher and the
// direct /api/controller/process path.
type ControllerService struct {
	classifier   Classifier
	responder    Responder
	conversation Conversation
	state        State

	mode        string
	alerts      []string
	preferences map[string]string
}

func NewControllerService(classifier Classifier, responder Responder, conversation Conversation, state State) *ControllerService {
	return &ControllerService{
		classifier:   classifier,
		responder:    responder,
		conversation: conversation,
		state:        state,
		mode:         controllerModeNormal,
		alerts:       []string{},
		preferences:  map[string]string{},
	}
}

// Process classifies the message, generates a reply from the current snapshot
// and records the exchange. The reply is always valid; a non-nil error means
// only that the history entry was lost.
func (c *ControllerService) Process(ctx context.Context, message string) (string, models.Analysis, error) {
	analysis := c.classifier.Classify(message)
	reply := c.responder.Generate(analysis.Intent, c.state.Get())
	err := c.conversation.Append(ctx, message, reply)
	return reply, analysis, err
}

// Status reports the controller housekeeping record.
func (c *ControllerService) Status() models.ControllerStatus {
	return models.ControllerStatus{
		SystemStatus: models.SystemStatus{
			LastMaintenance: c.responder.LastMaintenance(),
			Alerts:          c.alerts,
			Mode:            c.mode,
		},
		UserPreferences: c.preferences,
		ActivePatterns:  c.responder.PatternCount(),
	}
}
