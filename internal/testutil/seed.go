package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/domain/placement"
	"daycare-waitlist/internal/domain/waitlist"
	"daycare-waitlist/internal/pkg/password"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

var BaseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// Seeder writes fixtures straight through a unit of work, bypassing use cases.
type Seeder struct {
	t   testing.TB
	uow shared.UnitOfWork
	n   int
}

func NewSeeder(t testing.TB, uow shared.UnitOfWork) *Seeder {
	return &Seeder{t: t, uow: uow}
}

func (s *Seeder) within(fn func(ctx context.Context, tx shared.Tx) error) {
	s.t.Helper()
	require.NoError(s.t, s.uow.Within(context.Background(), fn))
}

func (s *Seeder) nextEmail(prefix string) account.Email {
	s.t.Helper()
	s.n++
	email, err := account.NewEmail(fmt.Sprintf("%s%d@example.com", prefix, s.n))
	require.NoError(s.t, err)
	return email
}

func (s *Seeder) hash() string {
	s.t.Helper()
	h, err := password.HashPasswordWithCost(DefaultPassword, bcrypt.MinCost)
	require.NoError(s.t, err)
	return h
}

func (s *Seeder) Client(name string) *account.Client {
	s.t.Helper()
	c, err := account.NewClient(s.nextEmail("client"), name, s.hash(), BaseTime)
	require.NoError(s.t, err)
	s.within(func(ctx context.Context, tx shared.Tx) error {
		return tx.Accounts().InsertClient(ctx, c)
	})
	return c
}

func (s *Seeder) Provider(name, location string) *account.Provider {
	s.t.Helper()
	p, err := account.NewProvider(s.nextEmail("provider"), name, location, s.hash(), BaseTime)
	require.NoError(s.t, err)
	s.within(func(ctx context.Context, tx shared.Tx) error {
		return tx.Accounts().InsertProvider(ctx, p)
	})
	return p
}

func (s *Seeder) Entry(clientID uuid.UUID, childName string, age int, location string) *waitlist.Entry {
	s.t.Helper()
	e, err := waitlist.NewEntry(clientID, childName, age, location, BaseTime)
	require.NoError(s.t, err)
	s.within(func(ctx context.Context, tx shared.Tx) error {
		return tx.Waitlist().Insert(ctx, e)
	})
	return e
}

func (s *Seeder) Placement(providerID uuid.UUID, minAge, maxAge, count int) *placement.Placement {
	s.t.Helper()
	ages, err := placement.NewAgeRange(minAge, maxAge)
	require.NoError(s.t, err)
	p, err := placement.NewPlacement(providerID, ages, count, BaseTime)
	require.NoError(s.t, err)
	s.within(func(ctx context.Context, tx shared.Tx) error {
		return tx.Placements().Insert(ctx, p)
	})
	return p
}
