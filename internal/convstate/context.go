// Package convstate tracks short-lived per-user conversation state: the
// coarse topic a user is inside and, for franchise enquiries, how far the
// lead-collection flow has progressed. State is advisory and expires after
// thirty minutes of silence so stale flows never trap a returning user.
package convstate

import (
	"context"
	"errors"
	"time"
)

// Intent is the coarse conversation topic.
type Intent string

const (
	IntentNone      Intent = "NONE"
	IntentServices  Intent = "SERVICES"
	IntentFranchise Intent = "FRANCHISE"
)

// Stage is the lead-collection step a franchise flow is waiting on. Empty
// means the user is not inside the flow.
type Stage string

const (
	StageNone               Stage = ""
	StageCollectingName     Stage = "COLLECTING_NAME"
	StageCollectingLocation Stage = "COLLECTING_LOCATION"
	StageCollectingEmail    Stage = "COLLECTING_EMAIL"
	StageCollectingDetails  Stage = "COLLECTING_DETAILS"
)

// DefaultTTL is how long an untouched context survives.
const DefaultTTL = 30 * time.Minute

// Draft accumulates lead fields across the collection flow.
type Draft struct {
	Name     string `json:"name,omitempty"`
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
	Details  string `json:"details,omitempty"`
}

// Context is one user's conversation state.
type Context struct {
	Phone     string    `json:"phone"`
	Intent    Intent    `json:"intent"`
	Stage     Stage     `json:"stage,omitempty"`
	Enquiry   string    `json:"enquiry,omitempty"`
	Draft     Draft     `json:"draft"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InFlow reports whether the user is mid lead-collection.
func (c *Context) InFlow() bool {
	return c != nil && c.Stage != StageNone
}

// ErrStoreUnavailable wraps backend failures so callers can degrade rather
// than drop the message.
var ErrStoreUnavailable = errors.New("convstate: store unavailable")

// Store persists per-user conversation contexts. Get returns (nil, nil)
// when the user has no live context; expiry is the store's concern.
type Store interface {
	Get(ctx context.Context, phone string) (*Context, error)
	Set(ctx context.Context, state *Context) error
	Clear(ctx context.Context, phone string) error
}
