package queries

import (
	"time"

	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/domain/matching"
	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/domain/placement"
	"daycare-waitlist/internal/domain/waitlist"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type EntryView struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	ChildName string    `json:"child_name"`
	Age       int       `json:"age"`
	Location  string    `json:"location"`
	AddedAt   time.Time `json:"added_at"`
	// Position is the 1-based FIFO rank; nil when not computed.
	Position *int `json:"position,omitempty"`
}

type PlacementView struct {
	ID             uuid.UUID `json:"id"`
	ProviderID     uuid.UUID `json:"provider_id"`
	MinAge         int       `json:"min_age"`
	MaxAge         int       `json:"max_age"`
	TotalCount     int       `json:"total_count"`
	AvailableCount int       `json:"available_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type OfferView struct {
	ID               uuid.UUID  `json:"id"`
	ChildID          uuid.UUID  `json:"child_id"`
	ChildName        string     `json:"child_name"`
	ChildAge         int        `json:"child_age"`
	ChildLocation    string     `json:"child_location"`
	ProviderID       uuid.UUID  `json:"provider_id"`
	ProviderName     string     `json:"provider_name"`
	ProviderLocation string     `json:"provider_location"`
	PlacementID      uuid.UUID  `json:"placement_id"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
}

type CandidateView struct {
	ChildID     uuid.UUID `json:"child_id"`
	ChildName   string    `json:"child_name"`
	Age         int       `json:"age"`
	Location    string    `json:"location"`
	AddedAt     time.Time `json:"added_at"`
	PlacementID uuid.UUID `json:"placement_id"`
	Distance    int       `json:"distance"`
	// ExistingOffer is the latest settled offer status from this provider, if any.
	ExistingOffer *string `json:"existing_offer,omitempty"`
}

type ClientView struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"created_at"`
	Children  []EntryView `json:"children"`
}

type ProviderView struct {
	ID         uuid.UUID       `json:"id"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Location   string          `json:"location"`
	CreatedAt  time.Time       `json:"created_at"`
	Placements []PlacementView `json:"placements"`
}

type AccountView struct {
	ID    uuid.UUID `json:"id"`
	Kind  string    `json:"kind"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type StatsView struct {
	Clients        int `json:"clients"`
	Providers      int `json:"providers"`
	WaitlistSize   int `json:"waitlist_size"`
	Placements     int `json:"placements"`
	PendingOffers  int `json:"pending_offers"`
	AcceptedOffers int `json:"accepted_offers"`
}

func NewEntryView(e *waitlist.Entry, position *int) EntryView {
	return EntryView{
		ID:        e.ID(),
		ClientID:  e.ClientID(),
		ChildName: e.ChildName(),
		Age:       e.Age(),
		Location:  e.Location(),
		AddedAt:   e.AddedAt(),
		Position:  position,
	}
}

func NewPlacementView(p *placement.Placement) PlacementView {
	return PlacementView{
		ID:             p.ID(),
		ProviderID:     p.ProviderID(),
		MinAge:         p.Ages().Min(),
		MaxAge:         p.Ages().Max(),
		TotalCount:     p.TotalCount(),
		AvailableCount: p.AvailableCount(),
		CreatedAt:      p.CreatedAt(),
	}
}

func NewOfferView(o *offer.Offer) OfferView {
	d := o.Details()
	return OfferView{
		ID:               o.ID(),
		ChildID:          o.ChildID(),
		ChildName:        d.ChildName,
		ChildAge:         d.ChildAge,
		ChildLocation:    d.ChildLocation,
		ProviderID:       o.ProviderID(),
		ProviderName:     d.ProviderName,
		ProviderLocation: d.ProviderLocation,
		PlacementID:      o.PlacementID(),
		Status:           o.Status().String(),
		CreatedAt:        o.CreatedAt(),
		RespondedAt:      o.RespondedAt(),
	}
}

func NewCandidateView(c matching.Candidate) CandidateView {
	v := CandidateView{
		ChildID:     c.Entry.ID(),
		ChildName:   c.Entry.ChildName(),
		Age:         c.Entry.Age(),
		Location:    c.Entry.Location(),
		AddedAt:     c.Entry.AddedAt(),
		PlacementID: c.Placement.ID(),
		Distance:    c.Distance,
	}
	if c.PriorOffer != nil {
		s := c.PriorOffer.Status().String()
		v.ExistingOffer = &s
	}
	return v
}

func NewClientAccountView(c *account.Client) AccountView {
	return AccountView{ID: c.ID(), Kind: account.KindClient.String(), Email: c.Email().String(), Name: c.Name()}
}

func NewProviderAccountView(p *account.Provider) AccountView {
	return AccountView{ID: p.ID(), Kind: account.KindProvider.String(), Email: p.Email().String(), Name: p.Name()}
}
