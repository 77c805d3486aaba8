package handlers

import (
	"context"
	"time"

	"astrid/internal/hub"
	"astrid/internal/models"
	"astrid/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockState struct {
	st models.HudState

	applyCalls int
	lastUpdate models.StateUpdate

	lastUserLine string
	pendingSet   []string
	pendingClear int
}

func (m *mockState) Get() models.HudState { return m.st }

func (m *mockState) ApplyPartial(u models.StateUpdate) models.HudState {
	m.applyCalls++
	m.lastUpdate = u
	if u.Headline != nil {
		m.st.Headline = *u.Headline
	}
	if u.BatteryPct != nil {
		m.st.BatteryPct = *u.BatteryPct
	}
	if u.LastUserLine != nil {
		m.st.LastUserLine = *u.LastUserLine
	}
	return m.st
}

func (m *mockState) SetLastUserLine(line string) models.HudState {
	m.lastUserLine = line
	m.st.LastUserLine = line
	return m.st
}

func (m *mockState) SetPendingReply(text string) models.HudState {
	m.pendingSet = append(m.pendingSet, text)
	m.st.BotReplyPending = &text
	return m.st
}

func (m *mockState) ClearPendingReply() models.HudState {
	m.pendingClear++
	m.st.BotReplyPending = nil
	return m.st
}

type mockClassifier struct {
	resp        models.Analysis
	lastMessage string
}

func (m *mockClassifier) Classify(message string) models.Analysis {
	m.lastMessage = message
	return m.resp
}

type mockResponder struct {
	reply        string
	patternCount int
	lastMaint    time.Time
}

func (m *mockResponder) Generate(intent models.Intent, st models.HudState) string { return m.reply }
func (m *mockResponder) PatternCount() int                                        { return m.patternCount }
func (m *mockResponder) LastMaintenance() time.Time                               { return m.lastMaint }

type mockConversation struct {
	entries   []models.ConversationEntry
	appendErr error
	listErr   error

	lastUser string
	lastBot  string
}

func (m *mockConversation) Append(ctx context.Context, user, bot string) error {
	m.lastUser = user
	m.lastBot = bot
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, models.ConversationEntry{
		Timestamp: time.Now().UTC(), UserMessage: user, BotResponse: bot,
	})
	return nil
}

func (m *mockConversation) List(ctx context.Context) ([]models.ConversationEntry, error) {
	return m.entries, m.listErr
}

func (m *mockConversation) Count(ctx context.Context) (int, error) {
	return len(m.entries), m.listErr
}

type mockController struct {
	reply    string
	analysis models.Analysis
	err      error
	status   models.ControllerStatus

	processCalls int
	lastMessage  string
}

func (m *mockController) Process(ctx context.Context, message string) (string, models.Analysis, error) {
	m.processCalls++
	m.lastMessage = message
	return m.reply, m.analysis, m.err
}

func (m *mockController) Status() models.ControllerStatus { return m.status }

// ---- Shared Test Helpers ----

func newTestHub() *hub.Hub {
	return hub.New(nil)
}

func newTestRouter(s *service.Service, hb *hub.Hub) *gin.Engine {
	if hb == nil {
		hb = newTestHub()
	}
	h := NewHandler(s, hb, nil, time.Millisecond)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
