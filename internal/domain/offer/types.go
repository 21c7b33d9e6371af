package offer

import (
	"errors"
	"strings"
)

var (
	ErrInvalidStatus   = errors.New("invalid offer status")
	ErrInvalidDecision = errors.New("invalid decision")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

func NewStatus(value string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(value)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusDeclined
}

type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
)

// ParseDecision also accepts the target status spelling ("accepted", "declined").
func ParseDecision(value string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "accept", "accepted":
		return DecisionAccept, nil
	case "decline", "declined":
		return DecisionDecline, nil
	default:
		return "", ErrInvalidDecision
	}
}

func (d Decision) String() string {
	return string(d)
}

func (d Decision) target() Status {
	if d == DecisionAccept {
		return StatusAccepted
	}
	return StatusDeclined
}
