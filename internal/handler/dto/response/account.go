package response

import (
	"time"

	"daycare-waitlist/internal/usecase/commands"
	"daycare-waitlist/internal/usecase/queries"
)

type AccountResponse struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func FromAccountView(v *queries.AccountView) (*AccountResponse, error) {
	res, err := convert[AccountResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	Account     AccountResponse `json:"account"`
}

func FromLoginResult(r *commands.LoginResult) (*LoginResponse, error) {
	acc, err := FromAccountView(&r.Account)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{AccessToken: r.AccessToken, Account: *acc}, nil
}

type ClientResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"createdAt"`
	Children  []EntryResponse `json:"children" copier:"-"`
}

func FromClientView(v *queries.ClientView) (*ClientResponse, error) {
	res, err := convert[ClientResponse](v)
	if err != nil {
		return nil, err
	}
	if res.Children, err = FromEntryViews(v.Children); err != nil {
		return nil, err
	}
	return &res, nil
}

type ProviderResponse struct {
	ID         string              `json:"id"`
	Email      string              `json:"email"`
	Name       string              `json:"name"`
	Location   string              `json:"location"`
	CreatedAt  time.Time           `json:"createdAt"`
	Placements []PlacementResponse `json:"placements" copier:"-"`
}

func FromProviderView(v *queries.ProviderView) (*ProviderResponse, error) {
	res, err := convert[ProviderResponse](v)
	if err != nil {
		return nil, err
	}
	if res.Placements, err = FromPlacementViews(v.Placements); err != nil {
		return nil, err
	}
	return &res, nil
}
