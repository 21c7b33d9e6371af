package response

import (
	"time"

	"daycare-waitlist/internal/usecase/queries"
)

type PlacementResponse struct {
	ID             string    `json:"id"`
	ProviderID     string    `json:"providerId"`
	MinAge         int       `json:"minAge"`
	MaxAge         int       `json:"maxAge"`
	TotalCount     int       `json:"totalCount"`
	AvailableCount int       `json:"availableCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromPlacementView(v *queries.PlacementView) (*PlacementResponse, error) {
	res, err := convert[PlacementResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func FromPlacementViews(vs []queries.PlacementView) ([]PlacementResponse, error) {
	return convertAll[PlacementResponse](vs)
}
