package response

import (
	"time"

	"daycare-waitlist/internal/usecase/queries"
)

type OfferResponse struct {
	ID               string     `json:"id"`
	ChildID          string     `json:"childId"`
	ChildName        string     `json:"childName"`
	ChildAge         int        `json:"childAge"`
	ChildLocation    string     `json:"childLocation"`
	ProviderID       string     `json:"providerId"`
	ProviderName     string     `json:"providerName"`
	ProviderLocation string     `json:"providerLocation"`
	PlacementID      string     `json:"placementId"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	RespondedAt      *time.Time `json:"respondedAt"`
}

func FromOfferView(v *queries.OfferView) (*OfferResponse, error) {
	res, err := convert[OfferResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func FromOfferViews(vs []queries.OfferView) ([]OfferResponse, error) {
	return convertAll[OfferResponse](vs)
}

type CandidateResponse struct {
	ChildID       string    `json:"childId"`
	ChildName     string    `json:"childName"`
	Age           int       `json:"age"`
	Location      string    `json:"location"`
	AddedAt       time.Time `json:"addedAt"`
	PlacementID   string    `json:"placementId"`
	Distance      int       `json:"distance"`
	ExistingOffer *string   `json:"existingOffer"`
}

func FromCandidateViews(vs []queries.CandidateView) ([]CandidateResponse, error) {
	return convertAll[CandidateResponse](vs)
}
