package response

import (
	"time"

	"daycare-waitlist/internal/usecase/queries"
)

type EntryResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	ChildName string    `json:"childName"`
	Age       int       `json:"age"`
	Location  string    `json:"location"`
	AddedAt   time.Time `json:"addedAt"`
	Position  *int      `json:"position,omitempty"`
}

func FromEntryView(v *queries.EntryView) (*EntryResponse, error) {
	res, err := convert[EntryResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func FromEntryViews(vs []queries.EntryView) ([]EntryResponse, error) {
	return convertAll[EntryResponse](vs)
}

// PositionResponse carries a null position when the child is no longer waiting.
type PositionResponse struct {
	Position *int `json:"position"`
}
