package placement

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeMinAge  = errors.New("minimum age cannot be negative")
	ErrInvertedAgeSpan = errors.New("minimum age cannot exceed maximum age")
)

// AgeRange is inclusive on both ends.
type AgeRange struct {
	min int
	max int
}

func NewAgeRange(minAge, maxAge int) (AgeRange, error) {
	if minAge < 0 {
		return AgeRange{}, ErrNegativeMinAge
	}
	if minAge > maxAge {
		return AgeRange{}, ErrInvertedAgeSpan
	}
	return AgeRange{min: minAge, max: maxAge}, nil
}

func (r AgeRange) Min() int { return r.min }
func (r AgeRange) Max() int { return r.max }

func (r AgeRange) Contains(age int) bool {
	return age >= r.min && age <= r.max
}

func (r AgeRange) String() string {
	return fmt.Sprintf("%d-%d", r.min, r.max)
}
