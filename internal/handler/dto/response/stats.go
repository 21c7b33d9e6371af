package response

import (
	"daycare-waitlist/internal/usecase/queries"
)

type StatsResponse struct {
	Clients        int `json:"clients"`
	Providers      int `json:"providers"`
	WaitlistSize   int `json:"waitlistSize"`
	Placements     int `json:"placements"`
	PendingOffers  int `json:"pendingOffers"`
	AcceptedOffers int `json:"acceptedOffers"`
}

func FromStatsView(v *queries.StatsView) (*StatsResponse, error) {
	res, err := convert[StatsResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
