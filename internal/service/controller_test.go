package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"astrid/internal/models"
)

// fakes local to the controller tests

type fakeClassifier struct {
	resp models.Analysis
	got  string
}

func (f *fakeClassifier) Classify(message string) models.Analysis {
	f.got = message
	return f.resp
}

type fakeResponder struct {
	reply     string
	gotIntent models.Intent
	gotState  models.HudState
	maint     time.Time
}

func (f *fakeResponder) Generate(intent models.Intent, st models.HudState) string {
	f.gotIntent = intent
	f.gotState = st
	return f.reply
}
func (f *fakeResponder) PatternCount() int          { return 5 }
func (f *fakeResponder) LastMaintenance() time.Time { return f.maint }

type fakeConversation struct {
	appendErr error
	gotUser   string
	gotBot    string
	calls     int
}

func (f *fakeConversation) Append(ctx context.Context, user, bot string) error {
	f.calls++
	f.gotUser = user
	f.gotBot = bot
	return f.appendErr
}
func (f *fakeConversation) List(ctx context.Context) ([]models.ConversationEntry, error) {
	return nil, nil
}
func (f *fakeConversation) Count(ctx context.Context) (int, error) { return f.calls, nil }

func newControllerFixture() (*ControllerService, *fakeClassifier, *fakeResponder, *fakeConversation, *StateService) {
	cl := &fakeClassifier{resp: models.Analysis{Intent: models.IntentPower, Confidence: 0.85}}
	rs := &fakeResponder{reply: "lots of watts"}
	cv := &fakeConversation{}
	st := NewStateService()
	return NewControllerService(cl, rs, cv, st), cl, rs, cv, st
}

func TestController_ProcessPipeline(t *testing.T) {
	t.Parallel()

	c, cl, rs, cv, st := newControllerFixture()
	st.SetLastUserLine("power please")

	reply, analysis, err := c.Process(context.Background(), "power please")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if reply != "lots of watts" {
		t.Fatalf("reply = %q", reply)
	}
	if analysis.Intent != models.IntentPower || analysis.Confidence != 0.85 {
		t.Fatalf("analysis = %+v", analysis)
	}
	if cl.got != "power please" {
		t.Fatalf("classifier saw %q", cl.got)
	}
	// The responder must get the current snapshot, not a stale one.
	if rs.gotIntent != models.IntentPower || rs.gotState.LastUserLine != "power please" {
		t.Fatalf("responder saw intent=%v state.LastUserLine=%q", rs.gotIntent, rs.gotState.LastUserLine)
	}
	if cv.calls != 1 || cv.gotUser != "power please" || cv.gotBot != "lots of watts" {
		t.Fatalf("conversation append: calls=%d user=%q bot=%q", cv.calls, cv.gotUser, cv.gotBot)
	}
}

// A failed history write must not invalidate the reply.
func TestController_ProcessAppendFailureKeepsReply(t *testing.T) {
	t.Parallel()

	c, _, _, cv, _ := newControllerFixture()
	cv.appendErr = errors.New("disk gone")

	reply, _, err := c.Process(context.Background(), "power please")
	if err == nil {
		t.Fatal("expected append error to surface")
	}
	if reply != "lots of watts" {
		t.Fatalf("reply = %q, want the generated reply even on append failure", reply)
	}
}

func TestController_Status(t *testing.T) {
	t.Parallel()

	maint := time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)
	cl := &fakeClassifier{}
	rs := &fakeResponder{maint: maint}
	c := NewControllerService(cl, rs, &fakeConversation{}, NewStateService())

	got := c.Status()
	if got.SystemStatus.Mode != "normal" {
		t.Fatalf("mode = %q, want normal", got.SystemStatus.Mode)
	}
	if !got.SystemStatus.LastMaintenance.Equal(maint) {
		t.Fatalf("last_maintenance = %v, want %v", got.SystemStatus.LastMaintenance, maint)
	}
	if got.SystemStatus.Alerts == nil || len(got.SystemStatus.Alerts) != 0 {
		t.Fatalf("alerts = %#v, want empty non-nil list", got.SystemStatus.Alerts)
	}
	if got.UserPreferences == nil || len(got.UserPreferences) != 0 {
		t.Fatalf("user_preferences = %#v, want empty non-nil map", got.UserPreferences)
	}
	if got.ActivePatterns != 5 {
		t.Fatalf("active_patterns = %d, want 5", got.ActivePatterns)
	}
}
