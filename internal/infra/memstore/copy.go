package memstore

import (
	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/domain/placement"
	"daycare-waitlist/internal/domain/waitlist"
)

// Entities cross the store boundary by copy in both directions.

func copyEntry(e *waitlist.Entry) *waitlist.Entry {
	return waitlist.ReconstructEntry(e.ID(), e.ClientID(), e.ChildName(), e.Age(), e.Location(), e.Seq(), e.AddedAt())
}

func copyPlacement(p *placement.Placement) *placement.Placement {
	return placement.ReconstructPlacement(
		p.ID(), p.ProviderID(), p.Ages(), p.TotalCount(), p.AvailableCount(), p.Seq(), p.CreatedAt(),
	)
}

func copyClient(c *account.Client) *account.Client {
	return account.ReconstructClient(c.ID(), c.Email(), c.Name(), c.PasswordHash(), c.CreatedAt())
}

func copyProvider(p *account.Provider) *account.Provider {
	return account.ReconstructProvider(p.ID(), p.Email(), p.Name(), p.Location(), p.PasswordHash(), p.CreatedAt())
}
