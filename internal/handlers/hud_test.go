package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"astrid/internal/hub"
	"astrid/internal/models"
	"astrid/internal/service"
)

// fakeChannel lets REST tests observe what was broadcast through the hub.
type fakeChannel struct {
	mu     sync.Mutex
	events []hub.Event
	fail   bool
}

func (f *fakeChannel) WriteJSON(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("peer gone")
	}
	f.events = append(f.events, v.(hub.Event))
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func (f *fakeChannel) received() []hub.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]hub.Event, len(f.events))
	copy(out, f.events)
	return out
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&service.Service{}, nil)

	w := doJSON(t, router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestGetState(t *testing.T) {
	st := &mockState{st: models.DefaultHudState()}
	router := newTestRouter(&service.Service{State: st}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got models.HudState
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Headline != "BRAM HOUSE" || got.BatteryPct != 76.0 {
		t.Fatalf("state = %+v", got)
	}
}

func TestUpdateState_PartialAndBroadcast(t *testing.T) {
	st := &mockState{st: models.DefaultHudState()}
	hb := newTestHub()
	viewer := &fakeChannel{}
	hb.Register(viewer)

	router := newTestRouter(&service.Service{State: st}, hb)

	w := doJSON(t, router, http.MethodPut, "/api/state", `{"headline":"NEW","battery_pct":42}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	if st.applyCalls != 1 {
		t.Fatalf("applyCalls = %d", st.applyCalls)
	}
	if st.lastUpdate.Headline == nil || *st.lastUpdate.Headline != "NEW" {
		t.Fatalf("headline not bound: %+v", st.lastUpdate)
	}
	if st.lastUpdate.BatteryPct == nil || *st.lastUpdate.BatteryPct != 42 {
		t.Fatalf("battery_pct not bound: %+v", st.lastUpdate)
	}
	if st.lastUpdate.Eve != nil || st.lastUpdate.LoadW != nil {
		t.Fatalf("omitted fields bound: %+v", st.lastUpdate)
	}

	// The resulting full snapshot is broadcast to all viewers.
	events := viewer.received()
	if len(events) != 1 || events[0].Type != hub.EventState {
		t.Fatalf("viewer events = %+v, want one state event", events)
	}
}

func TestUpdateState_EveLengthValidated(t *testing.T) {
	st := &mockState{st: models.DefaultHudState()}
	router := newTestRouter(&service.Service{State: st}, nil)

	for _, body := range []string{`{"eve":""}`, `{"eve":"ABCD"}`} {
		w := doJSON(t, router, http.MethodPut, "/api/state", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, w.Code)
		}
	}
	if st.applyCalls != 0 {
		t.Fatalf("applyCalls = %d after invalid bodies", st.applyCalls)
	}

	// 1-3 chars is fine.
	w := doJSON(t, router, http.MethodPut, "/api/state", `{"eve":"AVA"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("valid eve rejected: %d", w.Code)
	}
}

func TestInjectBotReply(t *testing.T) {
	st := &mockState{st: models.DefaultHudState()}
	hb := newTestHub()
	viewer := &fakeChannel{}
	hb.Register(viewer)

	router := newTestRouter(&service.Service{State: st}, hb)

	w := doJSON(t, router, http.MethodPost, "/api/bot_reply", `{"text":"Water reserves at 84%."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	// Pending is set, broadcast, then cleared.
	if len(st.pendingSet) != 1 || st.pendingSet[0] != "Water reserves at 84%." {
		t.Fatalf("pendingSet = %v", st.pendingSet)
	}
	if st.pendingClear != 1 {
		t.Fatalf("pendingClear = %d", st.pendingClear)
	}

	events := viewer.received()
	if len(events) != 1 || events[0].Type != hub.EventBotReply || events[0].Text != "Water reserves at 84%." {
		t.Fatalf("viewer events = %+v", events)
	}
}

func TestInjectBotReply_MissingText(t *testing.T) {
	router := newTestRouter(&service.Service{State: &mockState{}}, nil)

	w := doJSON(t, router, http.MethodPost, "/api/bot_reply", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
