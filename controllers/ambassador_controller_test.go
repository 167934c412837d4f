package controllers_test

import (
	"net/http"
	"strings"
	"testing"
)

func sectionOf(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	section, ok := body["section"].(string)
	if !ok {
		t.Fatalf("response %v carries no section name", body)
	}
	return section
}

func TestTrainingSectionNavigation(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	body := decodeBody(t, doJSON(t, r, "GET", "/api/ambassador", token, nil))
	if got := sectionOf(t, body); got != "identity" {
		t.Fatalf("initial section = %q, want identity", got)
	}

	for _, want := range []string{"values", "audience", "voice"} {
		body = decodeBody(t, doJSON(t, r, "POST", "/api/ambassador/next", token, nil))
		if got := sectionOf(t, body); got != want {
			t.Fatalf("next section = %q, want %q", got, want)
		}
	}

	// Forward past the last tab is a no-op.
	body = decodeBody(t, doJSON(t, r, "POST", "/api/ambassador/next", token, nil))
	if got := sectionOf(t, body); got != "voice" {
		t.Errorf("next on last tab moved to %q", got)
	}

	for _, want := range []string{"audience", "values", "identity"} {
		body = decodeBody(t, doJSON(t, r, "POST", "/api/ambassador/previous", token, nil))
		if got := sectionOf(t, body); got != want {
			t.Fatalf("previous section = %q, want %q", got, want)
		}
	}

	// Backward past the first tab is a no-op too.
	body = decodeBody(t, doJSON(t, r, "POST", "/api/ambassador/previous", token, nil))
	if got := sectionOf(t, body); got != "identity" {
		t.Errorf("previous on first tab moved to %q", got)
	}
}

func TestSkipAdvancesAndCompletesOnFinalSection(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	body := decodeBody(t, doJSON(t, r, "POST", "/api/ambassador/skip", token, nil))
	if got := sectionOf(t, body); got != "values" {
		t.Fatalf("skip from identity landed on %q", got)
	}

	doJSON(t, r, "POST", "/api/ambassador/skip", token, nil)
	doJSON(t, r, "POST", "/api/ambassador/skip", token, nil)

	// Skip on the final tab finishes the whole flow.
	w := doJSON(t, r, "POST", "/api/ambassador/skip", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("final skip: status %d, body %s", w.Code, w.Body.String())
	}
	body = decodeBody(t, w)
	profile, ok := body["profile"].(map[string]interface{})
	if !ok || profile["completed"] != true {
		t.Errorf("final skip response = %v, want a completed profile", body)
	}
	if !hasNotification(drainNotifications(t, r, token), "success", "ambassador is ready") {
		t.Error("no completion notification after the final skip")
	}
}

func TestCompleteSurvivesGenerationBackendFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.close() // backend unreachable from here on
	r, token := newTestServer(t, backend.server.URL)

	w := doJSON(t, r, "POST", "/api/ambassador/complete", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete: status %d, body %s", w.Code, w.Body.String())
	}
	if !hasNotification(drainNotifications(t, r, token), "success", "ambassador is ready") {
		t.Error("completion notification missing when character registration fails")
	}
}

func TestPreviewRecomputedOnEveryUpdate(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	body := decodeBody(t, doJSON(t, r, "GET", "/api/ambassador", token, nil))
	if body["preview_visible"] != false {
		t.Fatal("empty profile must hide the preview")
	}

	body = decodeBody(t, doJSON(t, r, "PATCH", "/api/ambassador", token, map[string]string{"name": "Ava"}))
	if body["preview_visible"] != true {
		t.Error("a name alone must reveal the preview card")
	}
	if body["preview"] != "" {
		t.Errorf("preview = %q, want empty with no summary sources set", body["preview"])
	}

	body = decodeBody(t, doJSON(t, r, "PATCH", "/api/ambassador", token, map[string]string{
		"brand_story": "Sustainable fashion from recycled fabrics.",
	}))
	if body["preview"] != "Sustainable fashion from recycled fabrics." {
		t.Errorf("preview = %q, want the brand story verbatim", body["preview"])
	}

	// Partial update: unrelated fields stay put.
	body = decodeBody(t, doJSON(t, r, "PATCH", "/api/ambassador", token, map[string]string{"personality": "Warm"}))
	profile := body["profile"].(map[string]interface{})
	if profile["name"] != "Ava" || profile["brand_story"] != "Sustainable fashion from recycled fabrics." {
		t.Errorf("partial update clobbered other fields: %v", profile)
	}
}

func TestToggleValueRejectsUnknownTag(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	if w := doJSON(t, r, "POST", "/api/ambassador/values/toggle", token, map[string]string{"tag": "Synergy"}); w.Code != http.StatusBadRequest {
		t.Errorf("unknown value: status %d, want 400", w.Code)
	}

	body := decodeBody(t, doJSON(t, r, "POST", "/api/ambassador/values/toggle", token, map[string]string{"tag": "Creativity"}))
	profile := body["profile"].(map[string]interface{})
	selected, _ := profile["selected_values"].([]interface{})
	if len(selected) != 1 || selected[0] != "Creativity" {
		t.Errorf("selected_values = %v, want [Creativity]", selected)
	}

	if w := doJSON(t, r, "POST", "/api/ambassador/themes/toggle", token, map[string]string{"tag": "Blockchain"}); w.Code != http.StatusBadRequest {
		t.Errorf("unknown theme: status %d, want 400", w.Code)
	}
}

func TestSetToneRejectsUnknownAttribute(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	if w := doJSON(t, r, "PUT", "/api/ambassador/tones/sarcasm", token, map[string]int{"value": 40}); w.Code != http.StatusBadRequest {
		t.Errorf("unknown tone key: status %d, want 400", w.Code)
	}

	body := decodeBody(t, doJSON(t, r, "PUT", "/api/ambassador/tones/playful", token, map[string]int{"value": 80}))
	profile := body["profile"].(map[string]interface{})
	tones := profile["tone_sliders"].(map[string]interface{})
	if tones["playful"] != float64(80) {
		t.Errorf("tone playful = %v, want 80", tones["playful"])
	}
}

func TestNavigateValidatesPage(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	if w := doJSON(t, r, "PUT", "/api/session/page", token, map[string]string{"page": "dashboard"}); w.Code != http.StatusBadRequest {
		t.Errorf("unknown page: status %d, want 400", w.Code)
	}

	body := decodeBody(t, doJSON(t, r, "PUT", "/api/session/page", token, map[string]string{"page": "content-hub"}))
	if body["active_page"] != "content-hub" {
		t.Errorf("active_page = %v, want content-hub", body["active_page"])
	}
}

func TestViewModeValidatesMode(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	if w := doJSON(t, r, "PUT", "/api/session/view-mode", token, map[string]string{"mode": "carousel"}); w.Code != http.StatusBadRequest {
		t.Errorf("unknown mode: status %d, want 400", w.Code)
	}

	body := decodeBody(t, doJSON(t, r, "PUT", "/api/session/view-mode", token, map[string]string{"mode": "list"}))
	if body["view_mode"] != "list" {
		t.Errorf("view_mode = %v, want list", body["view_mode"])
	}
}

func TestNotificationsDrainOnRead(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	doJSON(t, r, "POST", "/api/ambassador/complete", token, nil)

	first := drainNotifications(t, r, token)
	if len(first) == 0 {
		t.Fatal("expected a pending notification")
	}
	if second := drainNotifications(t, r, token); len(second) != 0 {
		t.Errorf("second read returned %v, want an empty queue", second)
	}
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, _ := newTestServer(t, backend.server.URL)

	w := doJSON(t, r, "GET", "/api/ambassador", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "false") {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}
