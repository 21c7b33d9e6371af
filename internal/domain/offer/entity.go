package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPending       = errors.New("offer is not pending")
	ErrMissingReference = errors.New("offer requires child, provider and placement references")
)

// Details is the child and provider as they were when the offer was issued.
// The waitlist entry is deleted on acceptance; the offer keeps its own copy.
type Details struct {
	ChildName        string
	ChildAge         int
	ChildLocation    string
	ProviderName     string
	ProviderLocation string
}

// Offer binds one waitlist entry to one placement. Transitions are one-way:
// pending -> accepted or pending -> declined.
type Offer struct {
	id          uuid.UUID
	childID     uuid.UUID
	providerID  uuid.UUID
	placementID uuid.UUID
	details     Details
	status      Status
	createdAt   time.Time
	respondedAt *time.Time
}

func NewOffer(childID, providerID, placementID uuid.UUID, details Details, now time.Time) (*Offer, error) {
	if childID == uuid.Nil || providerID == uuid.Nil || placementID == uuid.Nil {
		return nil, ErrMissingReference
	}
	return &Offer{
		id:          uuid.New(),
		childID:     childID,
		providerID:  providerID,
		placementID: placementID,
		details:     details,
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

func ReconstructOffer(
	id, childID, providerID, placementID uuid.UUID,
	details Details,
	status Status,
	createdAt time.Time,
	respondedAt *time.Time,
) *Offer {
	return &Offer{
		id:          id,
		childID:     childID,
		providerID:  providerID,
		placementID: placementID,
		details:     details,
		status:      status,
		createdAt:   createdAt,
		respondedAt: respondedAt,
	}
}

// Respond settles the offer. A second settlement is an error, never a no-op.
func (o *Offer) Respond(d Decision, now time.Time) error {
	if d != DecisionAccept && d != DecisionDecline {
		return ErrInvalidDecision
	}
	if o.status != StatusPending {
		return ErrNotPending
	}
	o.status = d.target()
	at := now
	o.respondedAt = &at
	return nil
}

func (o *Offer) IsPending() bool {
	return o.status == StatusPending
}

// Clone returns a deep copy; stores hand out clones so callers cannot mutate shared state.
func (o *Offer) Clone() *Offer {
	c := *o
	if o.respondedAt != nil {
		at := *o.respondedAt
		c.respondedAt = &at
	}
	return &c
}

func (o *Offer) ID() uuid.UUID           { return o.id }
func (o *Offer) ChildID() uuid.UUID      { return o.childID }
func (o *Offer) ProviderID() uuid.UUID   { return o.providerID }
func (o *Offer) PlacementID() uuid.UUID  { return o.placementID }
func (o *Offer) Details() Details        { return o.details }
func (o *Offer) Status() Status          { return o.status }
func (o *Offer) CreatedAt() time.Time    { return o.createdAt }
func (o *Offer) RespondedAt() *time.Time { return o.respondedAt }
