package request

import (
	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/usecase/commands"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateOfferRequest struct {
	ChildID     uuid.UUID `json:"childId" binding:"required"`
	ProviderID  uuid.UUID `json:"providerId" binding:"required"`
	PlacementID uuid.UUID `json:"placementId" binding:"required"`
}

func (r *CreateOfferRequest) ToInput() commands.CreateOfferInput {
	return commands.CreateOfferInput{
		ChildID:     r.ChildID,
		ProviderID:  r.ProviderID,
		PlacementID: r.PlacementID,
	}
}

type RespondToOfferRequest struct {
	Decision string `json:"decision" binding:"required"`
}

func (r *RespondToOfferRequest) ToDomain() (offer.Decision, error) {
	return offer.ParseDecision(r.Decision)
}

// ListOffersQuery binds the optional listing filters from the query string.
type ListOffersQuery struct {
	ProviderID string `form:"providerId" binding:"omitempty,uuid"`
	ChildID    string `form:"childId" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending accepted declined"`
}

func (q *ListOffersQuery) ToFilter() (shared.OfferFilter, error) {
	var f shared.OfferFilter
	if q.ProviderID != "" {
		id, err := uuid.Parse(q.ProviderID)
		if err != nil {
			return f, err
		}
		f.ProviderID = &id
	}
	if q.ChildID != "" {
		id, err := uuid.Parse(q.ChildID)
		if err != nil {
			return f, err
		}
		f.ChildID = &id
	}
	if q.Status != "" {
		s, err := offer.NewStatus(q.Status)
		if err != nil {
			return f, err
		}
		f.Status = &s
	}
	return f, nil
}
