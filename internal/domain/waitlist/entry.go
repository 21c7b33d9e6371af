package waitlist

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyChildName   = errors.New("child name cannot be empty")
	ErrChildNameTooLong = errors.New("child name is too long (max 255 characters)")
	ErrNegativeAge      = errors.New("child age cannot be negative")
	ErrAgeOutOfRange    = errors.New("child age is out of range")
	ErrMissingClient    = errors.New("client reference is required")
	ErrEmptyLocation    = errors.New("location cannot be empty")
)

const (
	MaxChildNameLength = 255
	MaxChildAge        = 18
)

// Entry is a child awaiting placement. seq is assigned by the store on insert and is the
// only FIFO key; addedAt is informational and may tie.
type Entry struct {
	id        uuid.UUID
	clientID  uuid.UUID
	childName string
	age       int
	location  string
	seq       int64
	addedAt   time.Time
}

func NewEntry(clientID uuid.UUID, childName string, age int, location string, now time.Time) (*Entry, error) {
	if clientID == uuid.Nil {
		return nil, ErrMissingClient
	}
	childName = strings.TrimSpace(childName)
	if childName == "" {
		return nil, ErrEmptyChildName
	}
	if len(childName) > MaxChildNameLength {
		return nil, ErrChildNameTooLong
	}
	if age < 0 {
		return nil, ErrNegativeAge
	}
	if age > MaxChildAge {
		return nil, ErrAgeOutOfRange
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}

	return &Entry{
		id:        uuid.New(),
		clientID:  clientID,
		childName: childName,
		age:       age,
		location:  location,
		addedAt:   now,
	}, nil
}

func ReconstructEntry(id, clientID uuid.UUID, childName string, age int, location string, seq int64, addedAt time.Time) *Entry {
	return &Entry{
		id:        id,
		clientID:  clientID,
		childName: childName,
		age:       age,
		location:  location,
		seq:       seq,
		addedAt:   addedAt,
	}
}

// AssignSequence is called by the store exactly once, inside the inserting transaction.
func (e *Entry) AssignSequence(seq int64) {
	e.seq = seq
}

// Before reports FIFO order.
func (e *Entry) Before(other *Entry) bool {
	return e.seq < other.seq
}

func (e *Entry) ID() uuid.UUID       { return e.id }
func (e *Entry) ClientID() uuid.UUID { return e.clientID }
func (e *Entry) ChildName() string   { return e.childName }
func (e *Entry) Age() int            { return e.age }
func (e *Entry) Location() string    { return e.location }
func (e *Entry) Seq() int64          { return e.seq }
func (e *Entry) AddedAt() time.Time  { return e.addedAt }

// SortFIFO orders entries by insertion sequence in place.
func SortFIFO(entries []*Entry) {
	slices.SortStableFunc(entries, func(a, b *Entry) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	})
}

// Position returns the 1-based FIFO rank of id among entries, which need not be sorted.
func Position(entries []*Entry, id uuid.UUID) (int, bool) {
	var target *Entry
	for _, e := range entries {
		if e.id == id {
			target = e
			break
		}
	}
	if target == nil {
		return 0, false
	}

	rank := 1
	for _, e := range entries {
		if e.Before(target) {
			rank++
		}
	}
	return rank, true
}
