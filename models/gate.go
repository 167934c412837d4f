package models

import (
	"errors"
	"time"
)

type GateKind string

const (
	GateKindAccount      GateKind = "account"
	GateKindSubscription GateKind = "subscription"
)

type GateStep string

const (
	GateStepAccount GateStep = "account"
	GateStepPayment GateStep = "payment"
	GateStepPricing GateStep = "pricing"
)

type GateAction string

const (
	GateActionSchedule GateAction = "schedule"
	GateActionPost     GateAction = "post"
	GateActionConnect  GateAction = "connect"
)

var (
	ErrGateIdle      = errors.New("no gate sequence in progress")
	ErrGateWrongStep = errors.New("step is not the current gate step")
)

// Steps returns the ordered dialog sequence for this gate kind. The account
// gate runs account-creation then payment; the subscription gate runs the
// pricing offer, payment, then account-creation.
func (k GateKind) Steps() []GateStep {
	if k == GateKindSubscription {
		return []GateStep{GateStepPricing, GateStepPayment, GateStepAccount}
	}
	return []GateStep{GateStepAccount, GateStepPayment}
}

// Gate is one instance of the generalized interception state machine: a gated
// action is recorded as a resume token, the fixed step sequence runs, and the
// action resumes when the last step completes. A gate with an empty
// CurrentStep has no dialog open; whether it is locked is decided by the
// session precondition (HasAccount / HasSubscription), which is set once and
// never cleared.
type Gate struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID uint      `gorm:"not null;uniqueIndex:uk_gates_session_kind" json:"-"`
	Kind      GateKind  `gorm:"type:varchar(15);not null;uniqueIndex:uk_gates_session_kind" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CurrentStep GateStep `gorm:"type:varchar(15)" json:"current_step,omitempty"`

	// Resume token for the deferred action.
	PendingAction   GateAction `gorm:"type:varchar(15)" json:"pending_action,omitempty"`
	PendingPostID   uint       `json:"pending_post_id,omitempty"`
	PendingPlatform string     `gorm:"type:varchar(15)" json:"pending_platform,omitempty"`

	// Deadline of the limited-time pricing offer, informational only.
	OfferExpiresAt *time.Time `json:"offer_expires_at,omitempty"`
}

// Pending reports whether a dialog sequence is in progress.
func (g *Gate) Pending() bool {
	return g.CurrentStep != ""
}

// Begin records the deferred action and opens the first step.
func (g *Gate) Begin(action GateAction, postID uint, platform string) GateStep {
	g.CurrentStep = g.Kind.Steps()[0]
	g.PendingAction = action
	g.PendingPostID = postID
	g.PendingPlatform = platform
	return g.CurrentStep
}

// Advance completes the given step. Only the current step may complete.
// When the last step of the sequence finishes, finished is true and the
// caller resumes the recorded action (then clears the gate).
func (g *Gate) Advance(step GateStep) (next GateStep, finished bool, err error) {
	if !g.Pending() {
		return "", false, ErrGateIdle
	}
	if step != g.CurrentStep {
		return "", false, ErrGateWrongStep
	}

	steps := g.Kind.Steps()
	idx := 0
	for i, s := range steps {
		if s == g.CurrentStep {
			idx = i
			break
		}
	}
	if idx == len(steps)-1 {
		g.CurrentStep = ""
		return "", true, nil
	}
	g.CurrentStep = steps[idx+1]
	return g.CurrentStep, false, nil
}

// Cancel abandons the sequence and drops the resume token. The precondition
// already earned (an account created mid-sequence) is not rolled back.
func (g *Gate) Cancel() {
	g.Clear()
}

// Clear resets the dialog state and resume token.
func (g *Gate) Clear() {
	g.CurrentStep = ""
	g.PendingAction = ""
	g.PendingPostID = 0
	g.PendingPlatform = ""
	g.OfferExpiresAt = nil
}

// ResumeToken returns the recorded deferred action.
func (g *Gate) ResumeToken() (GateAction, uint, string) {
	return g.PendingAction, g.PendingPostID, g.PendingPlatform
}
