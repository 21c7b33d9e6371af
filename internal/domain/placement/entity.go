package placement

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveCount  = errors.New("placement count must be positive")
	ErrCountTooLarge     = errors.New("placement count is too large")
	ErrMissingProvider   = errors.New("provider reference is required")
	ErrNoCapacity        = errors.New("placement has no available capacity")
	ErrCapacityUnderflow = errors.New("available count would become negative")
)

const MaxCount = 10000

// Placement is a capacity block declared by a provider. total is fixed at creation and
// available only ever decreases, one unit per accepted offer.
type Placement struct {
	id         uuid.UUID
	providerID uuid.UUID
	ages       AgeRange
	total      int
	available  int
	seq        int64
	createdAt  time.Time
}

func NewPlacement(providerID uuid.UUID, ages AgeRange, count int, now time.Time) (*Placement, error) {
	if providerID == uuid.Nil {
		return nil, ErrMissingProvider
	}
	if count <= 0 {
		return nil, ErrNonPositiveCount
	}
	if count > MaxCount {
		return nil, ErrCountTooLarge
	}
	return &Placement{
		id:         uuid.New(),
		providerID: providerID,
		ages:       ages,
		total:      count,
		available:  count,
		createdAt:  now,
	}, nil
}

func ReconstructPlacement(
	id, providerID uuid.UUID,
	ages AgeRange,
	total, available int,
	seq int64,
	createdAt time.Time,
) *Placement {
	return &Placement{
		id:         id,
		providerID: providerID,
		ages:       ages,
		total:      total,
		available:  available,
		seq:        seq,
		createdAt:  createdAt,
	}
}

func (p *Placement) AssignSequence(seq int64) {
	p.seq = seq
}

func (p *Placement) HasCapacity() bool {
	return p.available > 0
}

func (p *Placement) Accepts(age int) bool {
	return p.ages.Contains(age)
}

// CheckOfferable reports whether one more pending offer may be issued. Pending offers
// do not consume capacity, but no more may be outstanding than could be accepted.
func (p *Placement) CheckOfferable(pendingOffers int) error {
	if p.available <= 0 || pendingOffers >= p.available {
		return ErrNoCapacity
	}
	return nil
}

// Consume takes one unit of capacity. Underflow means an earlier invariant was broken
// and is never clamped.
func (p *Placement) Consume() error {
	if p.available <= 0 {
		return ErrCapacityUnderflow
	}
	p.available--
	return nil
}

func (p *Placement) ID() uuid.UUID         { return p.id }
func (p *Placement) ProviderID() uuid.UUID { return p.providerID }
func (p *Placement) Ages() AgeRange        { return p.ages }
func (p *Placement) TotalCount() int       { return p.total }
func (p *Placement) AvailableCount() int   { return p.available }
func (p *Placement) Seq() int64            { return p.seq }
func (p *Placement) CreatedAt() time.Time  { return p.createdAt }
