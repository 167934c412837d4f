package controllers_test

import (
	"net/http"
	"testing"
)

var accountForm = map[string]string{
	"full_name": "Jamie Rivers",
	"email":     "jamie@example.com",
	"password":  "secret123",
}

var paymentForm = map[string]string{
	"card_number": "4242424242424242",
	"expiry":      "12/27",
	"cvc":         "123",
	"name":        "Jamie Rivers",
}

func TestScheduleGatedUntilBothStepsComplete(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	suggested := listPosts(t, r, token, "suggested")
	first := postID(t, suggested[0])
	second := postID(t, suggested[1])

	w := doJSON(t, r, "POST", "/api/gate/trigger", token, map[string]interface{}{
		"action": "schedule", "post_id": first,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("trigger: status %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["executed"] != false || body["step"] != "account" {
		t.Fatalf("trigger = %v, want account dialog and no execution", body)
	}

	if hasNotification(drainNotifications(t, r, token), "success", "scheduled") {
		t.Fatal("scheduled notification before any step completed")
	}

	w = doJSON(t, r, "POST", "/api/gate/steps/account", token, accountForm)
	if w.Code != http.StatusOK {
		t.Fatalf("account step: status %d, body %s", w.Code, w.Body.String())
	}
	body = decodeBody(t, w)
	if body["finished"] != false || body["step"] != "payment" {
		t.Fatalf("account step = %v, want payment next", body)
	}

	if hasNotification(drainNotifications(t, r, token), "success", "scheduled") {
		t.Fatal("scheduled notification before payment completed")
	}

	w = doJSON(t, r, "POST", "/api/gate/steps/payment", token, paymentForm)
	if w.Code != http.StatusOK {
		t.Fatalf("payment step: status %d, body %s", w.Code, w.Body.String())
	}
	if body = decodeBody(t, w); body["finished"] != true {
		t.Fatalf("payment step = %v, want finished", body)
	}

	if !hasNotification(drainNotifications(t, r, token), "success", "scheduled") {
		t.Fatal("no scheduled notification after the sequence finished")
	}

	// Unlocked: a second gated action executes with no dialogs.
	w = doJSON(t, r, "POST", "/api/gate/trigger", token, map[string]interface{}{
		"action": "schedule", "post_id": second,
	})
	if body = decodeBody(t, w); body["executed"] != true {
		t.Fatalf("second trigger = %v, want immediate execution", body)
	}
	if !hasNotification(drainNotifications(t, r, token), "success", "scheduled") {
		t.Fatal("no scheduled notification on immediate execution")
	}
}

func TestPostNowNotificationKeyedByAction(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	id := postID(t, listPosts(t, r, token, "suggested")[0])

	doJSON(t, r, "POST", "/api/gate/trigger", token, map[string]interface{}{"action": "post", "post_id": id})
	doJSON(t, r, "POST", "/api/gate/steps/account", token, accountForm)
	doJSON(t, r, "POST", "/api/gate/steps/payment", token, paymentForm)

	notifications := drainNotifications(t, r, token)
	if !hasNotification(notifications, "success", "live") {
		t.Errorf("notifications = %v, want the post-now success message", notifications)
	}
	if hasNotification(notifications, "success", "scheduled") {
		t.Error("post-now resumed with the schedule message")
	}
}

func TestCancelDropsPendingAction(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	id := postID(t, listPosts(t, r, token, "suggested")[0])

	doJSON(t, r, "POST", "/api/gate/trigger", token, map[string]interface{}{"action": "schedule", "post_id": id})

	if w := doJSON(t, r, "POST", "/api/gate/cancel", token, nil); w.Code != http.StatusOK {
		t.Fatalf("cancel: status %d", w.Code)
	}

	// No step can complete once cancelled.
	if w := doJSON(t, r, "POST", "/api/gate/steps/payment", token, paymentForm); w.Code != http.StatusConflict {
		t.Errorf("payment after cancel: status %d, want 409", w.Code)
	}

	status := decodeBody(t, doJSON(t, r, "GET", "/api/gate", token, nil))
	if status["has_account"] != false {
		t.Error("cancel must not grant an account")
	}

	// The gate re-arms: triggering again reopens the sequence.
	w := doJSON(t, r, "POST", "/api/gate/trigger", token, map[string]interface{}{"action": "schedule", "post_id": id})
	if body := decodeBody(t, w); body["executed"] != false || body["step"] != "account" {
		t.Errorf("re-trigger = %v, want a fresh account dialog", body)
	}
}

func TestCancelKeepsAccountCreatedMidSequence(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	id := postID(t, listPosts(t, r, token, "suggested")[0])

	doJSON(t, r, "POST", "/api/gate/trigger", token, map[string]interface{}{"action": "schedule", "post_id": id})
	doJSON(t, r, "POST", "/api/gate/steps/account", token, accountForm)
	doJSON(t, r, "POST", "/api/gate/cancel", token, nil)

	// hasAccount is set once, never reset; the next trigger executes
	// immediately even though payment was abandoned.
	w := doJSON(t, r, "POST", "/api/gate/trigger", token, map[string]interface{}{"action": "schedule", "post_id": id})
	if body := decodeBody(t, w); body["executed"] != true {
		t.Errorf("trigger after mid-sequence cancel = %v, want immediate execution", body)
	}
}

func TestSubscriptionGateFullSequence(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	w := doJSON(t, r, "POST", "/api/scheduler/connect", token, map[string]string{"platform": "instagram"})
	if w.Code != http.StatusOK {
		t.Fatalf("connect: status %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["executed"] != false || body["step"] != "pricing" {
		t.Fatalf("connect = %v, want the pricing dialog", body)
	}
	if body["offer"] == nil || body["offer_expires_at"] == nil {
		t.Fatal("pricing dialog must carry the offer and its countdown deadline")
	}

	if body = decodeBody(t, doJSON(t, r, "POST", "/api/gate/steps/pricing", token, nil)); body["step"] != "payment" {
		t.Fatalf("pricing step = %v, want payment next", body)
	}
	if body = decodeBody(t, doJSON(t, r, "POST", "/api/gate/steps/payment", token, paymentForm)); body["step"] != "account" {
		t.Fatalf("payment step = %v, want account next", body)
	}
	if body = decodeBody(t, doJSON(t, r, "POST", "/api/gate/steps/account", token, accountForm)); body["finished"] != true {
		t.Fatalf("account step = %v, want finished", body)
	}

	status := decodeBody(t, doJSON(t, r, "GET", "/api/gate", token, nil))
	if status["has_subscription"] != true || status["has_account"] != true {
		t.Errorf("status = %v, want subscription and account set", status)
	}
	if !hasNotification(drainNotifications(t, r, token), "success", "instagram") {
		t.Error("no connect notification after the sequence finished")
	}

	// Subscribed: connecting another platform needs no dialogs.
	w = doJSON(t, r, "POST", "/api/scheduler/connect", token, map[string]string{"platform": "tiktok"})
	if body = decodeBody(t, w); body["executed"] != true {
		t.Errorf("second connect = %v, want immediate execution", body)
	}
}

func TestSubscriptionGateSkipsAccountStepWhenAccountExists(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	id := postID(t, listPosts(t, r, token, "suggested")[0])

	// Unlock the account gate first.
	doJSON(t, r, "POST", "/api/gate/trigger", token, map[string]interface{}{"action": "post", "post_id": id})
	doJSON(t, r, "POST", "/api/gate/steps/account", token, accountForm)
	doJSON(t, r, "POST", "/api/gate/steps/payment", token, paymentForm)

	doJSON(t, r, "POST", "/api/scheduler/connect", token, map[string]string{"platform": "x"})
	doJSON(t, r, "POST", "/api/gate/steps/pricing", token, nil)

	w := doJSON(t, r, "POST", "/api/gate/steps/payment", token, paymentForm)
	if body := decodeBody(t, w); body["finished"] != true {
		t.Errorf("payment step = %v, want the existing account step skipped", body)
	}
}

func TestTriggerValidation(t *testing.T) {
	backend := newFakeBackend()
	defer backend.close()
	r, token := newTestServer(t, backend.server.URL)

	if w := doJSON(t, r, "POST", "/api/gate/trigger", token, map[string]interface{}{"action": "launch"}); w.Code != http.StatusBadRequest {
		t.Errorf("unknown action: status %d, want 400", w.Code)
	}
	if w := doJSON(t, r, "POST", "/api/gate/trigger", token, map[string]interface{}{"action": "schedule", "post_id": 99999}); w.Code != http.StatusNotFound {
		t.Errorf("missing post: status %d, want 404", w.Code)
	}
	if w := doJSON(t, r, "POST", "/api/scheduler/connect", token, map[string]string{"platform": "myspace"}); w.Code != http.StatusBadRequest {
		t.Errorf("unknown platform: status %d, want 400", w.Code)
	}
}
