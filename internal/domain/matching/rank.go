// Package matching ranks waitlist entries for a provider's open placements.
//
// Ranking is a pure function of one store snapshot: proximity first (locality score),
// first-come-first-served second (insertion sequence).
package matching

import (
	"cmp"
	"slices"

	"daycare-waitlist/internal/domain/locality"
	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/domain/placement"
	"daycare-waitlist/internal/domain/waitlist"

	"github.com/google/uuid"
)

type Candidate struct {
	Entry     *waitlist.Entry
	Placement *placement.Placement
	Distance  int
	// PriorOffer is the most recent settled offer from this provider for the entry, if any.
	PriorOffer *offer.Offer
}

type Input struct {
	ProviderID       uuid.UUID
	ProviderLocation string
	// Placements of the provider in declaration order; the first one whose range
	// contains the child's age is the match.
	Placements []*placement.Placement
	Entries    []*waitlist.Entry
	// Offers may include other providers' offers; they are ignored.
	Offers []*offer.Offer
}

func Rank(in Input) []Candidate {
	open := make([]*placement.Placement, 0, len(in.Placements))
	for _, p := range in.Placements {
		if p.ProviderID() == in.ProviderID && p.HasCapacity() {
			open = append(open, p)
		}
	}
	if len(open) == 0 {
		return []Candidate{}
	}

	pending := make(map[uuid.UUID]bool)
	prior := make(map[uuid.UUID]*offer.Offer)
	for _, o := range in.Offers {
		if o.ProviderID() != in.ProviderID {
			continue
		}
		if o.IsPending() {
			pending[o.ChildID()] = true
			continue
		}
		if last, ok := prior[o.ChildID()]; !ok || !o.CreatedAt().Before(last.CreatedAt()) {
			prior[o.ChildID()] = o
		}
	}

	candidates := make([]Candidate, 0, len(in.Entries))
	for _, e := range in.Entries {
		if pending[e.ID()] {
			continue
		}
		match := firstAccepting(open, e.Age())
		if match == nil {
			continue
		}
		candidates = append(candidates, Candidate{
			Entry:      e,
			Placement:  match,
			Distance:   locality.Score(e.Location(), in.ProviderLocation),
			PriorOffer: prior[e.ID()],
		})
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.Entry.Seq(), b.Entry.Seq())
	})
	return candidates
}

func firstAccepting(open []*placement.Placement, age int) *placement.Placement {
	for _, p := range open {
		if p.Accepts(age) {
			return p
		}
	}
	return nil
}
