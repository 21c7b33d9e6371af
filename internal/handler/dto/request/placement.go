package request

import (
	"daycare-waitlist/internal/usecase/commands"

	"github.com/google/uuid"
)

type DeclareCapacityRequest struct {
	ProviderID uuid.UUID `json:"providerId" binding:"required"`
	MinAge     *int      `json:"minAge" binding:"required,min=0"`
	MaxAge     *int      `json:"maxAge" binding:"required,min=0"`
	Count      int       `json:"count" binding:"required,min=1"`
}

// ToInput leaves the range check (minAge <= maxAge) to the placement domain.
func (r *DeclareCapacityRequest) ToInput() commands.DeclareCapacityInput {
	return commands.DeclareCapacityInput{
		ProviderID: r.ProviderID,
		MinAge:     *r.MinAge,
		MaxAge:     *r.MaxAge,
		Count:      r.Count,
	}
}

type ListPlacementsQuery struct {
	ProviderID string `form:"providerId" binding:"omitempty,uuid"`
}

func (q *ListPlacementsQuery) ProviderFilter() (*uuid.UUID, error) {
	if q.ProviderID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(q.ProviderID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
