//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/infra/postgres"
	"daycare-waitlist/internal/pkg/clock"
	"daycare-waitlist/internal/pkg/config"
	"daycare-waitlist/internal/pkg/errs"
	"daycare-waitlist/internal/pkg/metrics"
	"daycare-waitlist/internal/testutil"
	"daycare-waitlist/internal/usecase/commands"
	"daycare-waitlist/internal/usecase/queries"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"
)

const (
	testUser     = "test"
	testPassword = "testpass"
	testDB       = "daycare"
)

type PostgresSuite struct {
	suite.Suite
	container testcontainers.Container
	pool      *pgxpool.Pool
	uow       *postgres.PostgresUoW
	ctx       context.Context
}

func TestPostgresSuite(t *testing.T) {
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	s.ctx = context.Background()
	ctx, cancel := context.WithTimeout(s.ctx, 3*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
			Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
					testUser, testPassword, host, port.Port(), testDB)
			}).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err, "start postgres container")
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, nat.Port("5432/tcp"))
	s.Require().NoError(err)

	s.pool, err = postgres.NewPool(ctx, config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   testDB,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 30,
	})
	s.Require().NoError(err, "connect")
	s.Require().NoError(postgres.Migrate(ctx, s.pool), "migrate")

	s.uow = postgres.NewPostgresUoW(s.pool, 3)
}

func (s *PostgresSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.container.Terminate(ctx); err != nil {
			slog.Warn("failed to terminate postgres container", "error", err.Error())
		}
	}
}

func (s *PostgresSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE offers, placements, waitlist_entries, providers, clients RESTART IDENTITY`)
	s.Require().NoError(err)
}

func (s *PostgresSuite) TestMigrateIsIdempotent() {
	s.NoError(postgres.Migrate(s.ctx, s.pool))
}

func (s *PostgresSuite) TestRepositoriesRoundTrip() {
	seed := testutil.NewSeeder(s.T(), s.uow)
	client := seed.Client("Pat")
	provider := seed.Provider("Sunny Days", "Springfield")
	first := seed.Placement(provider.ID(), 2, 4, 2)
	second := seed.Placement(provider.ID(), 0, 1, 1)
	a := seed.Entry(client.ID(), "A", 3, "Springfield")
	b := seed.Entry(client.ID(), "B", 1, "Shelbyville")

	s.Require().NoError(s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Waitlist().ListOrdered(ctx)
		s.Require().NoError(err)
		s.Require().Len(entries, 2)
		s.Equal(a.ID(), entries[0].ID())
		s.Equal(b.ID(), entries[1].ID())
		s.Less(entries[0].Seq(), entries[1].Seq())

		placements, err := tx.Placements().ListByProvider(ctx, provider.ID())
		s.Require().NoError(err)
		s.Require().Len(placements, 2)
		s.Equal(first.ID(), placements[0].ID())
		s.Equal(second.ID(), placements[1].ID())
		s.Equal("2-4", placements[0].Ages().String())

		got, err := tx.Accounts().FindProviderByEmail(ctx, provider.Email())
		s.Require().NoError(err)
		s.Equal(provider.ID(), got.ID())

		_, err = tx.Waitlist().FindByID(ctx, uuid.New())
		s.True(infra.IsKind(err, infra.KindNotFound))
		return nil
	}))

	err := s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Waitlist().Remove(ctx, a.ID())
	})
	s.True(infra.IsKind(err, infra.KindReadOnly), "got %v", err)
}

func (s *PostgresSuite) TestPendingOfferUniqueIndex() {
	seed := testutil.NewSeeder(s.T(), s.uow)
	client := seed.Client("Pat")
	provider := seed.Provider("Sunny Days", "Springfield")
	pl := seed.Placement(provider.ID(), 2, 4, 2)
	child := seed.Entry(client.ID(), "A", 3, "Springfield")

	details := offer.Details{
		ChildName: "A", ChildAge: 3, ChildLocation: "Springfield",
		ProviderName: "Sunny Days", ProviderLocation: "Springfield",
	}
	insert := func() (*offer.Offer, error) {
		o, err := offer.NewOffer(child.ID(), provider.ID(), pl.ID(), details, testutil.BaseTime)
		s.Require().NoError(err)
		return o, s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Offers().Insert(ctx, o)
		})
	}

	first, err := insert()
	s.Require().NoError(err)
	s.Require().NoError(s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		got, err := tx.Offers().FindByID(ctx, first.ID())
		s.Require().NoError(err)
		s.Equal(details, got.Details())
		return nil
	}))
	_, err = insert()
	s.True(infra.IsKind(err, infra.KindDuplicateKey), "got %v", err)

	s.Require().NoError(first.Respond(offer.DecisionDecline, testutil.BaseTime.Add(time.Minute)))
	s.Require().NoError(s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().UpdateStatus(ctx, first)
	}))
	_, err = insert()
	s.NoError(err, "a declined offer frees the pair")

	err = s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().UpdateStatus(ctx, first)
	})
	s.True(infra.IsKind(err, infra.KindConflict), "got %v", err)
}

func (s *PostgresSuite) TestConsumeOneStopsAtZero() {
	seed := testutil.NewSeeder(s.T(), s.uow)
	provider := seed.Provider("Sunny Days", "Springfield")
	pl := seed.Placement(provider.ID(), 2, 4, 1)

	consume := func() error {
		return s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Placements().ConsumeOne(ctx, pl.ID())
		})
	}
	s.Require().NoError(consume())
	s.True(infra.IsKind(consume(), infra.KindConflict))

	err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Placements().ConsumeOne(ctx, uuid.New())
	})
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *PostgresSuite) TestConcurrentAcceptancesNeverOverdraw() {
	const capacity = 4
	seed := testutil.NewSeeder(s.T(), s.uow)
	client := seed.Client("Pat")
	provider := seed.Provider("Sunny Days", "Springfield")
	pl := seed.Placement(provider.ID(), 0, 5, capacity)

	children := make([]uuid.UUID, capacity*3)
	for i := range children {
		children[i] = seed.Entry(client.ID(), fmt.Sprintf("child-%d", i), 3, "Springfield").ID()
	}

	offers := commands.NewOfferCommands(s.uow, clock.NewRealClock(), metrics.New())
	var g errgroup.Group
	for _, childID := range children {
		g.Go(func() error {
			v, err := offers.CreateOffer(s.ctx, commands.CreateOfferInput{
				ChildID: childID, ProviderID: provider.ID(), PlacementID: pl.ID(),
			})
			if err != nil {
				if errs.Is(err, errs.ErrCapacityExhausted) {
					return nil
				}
				return err
			}
			_, err = offers.RespondToOffer(s.ctx, v.ID, offer.DecisionAccept)
			return err
		})
	}
	s.Require().NoError(g.Wait())

	placements, err := queries.NewPlacementQueries(s.uow).List(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(placements, 1)
	s.Equal(0, placements[0].AvailableCount)

	stats, err := queries.NewStatsQueries(s.uow).Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(capacity, stats.AcceptedOffers)
	s.Equal(len(children)-capacity, stats.WaitlistSize)
	s.Zero(stats.PendingOffers)
}

func (s *PostgresSuite) TestRankCandidatesFromSnapshot() {
	seed := testutil.NewSeeder(s.T(), s.uow)
	client := seed.Client("Pat")
	provider := seed.Provider("Sunny Days", "Springfield")
	seed.Placement(provider.ID(), 2, 4, 1)
	a := seed.Entry(client.ID(), "A", 3, "Springfield")
	b := seed.Entry(client.ID(), "B", 3, "Springfield")

	got, err := queries.NewMatchingQueries(s.uow, nil).RankCandidates(s.ctx, provider.ID())
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(a.ID(), got[0].ChildID)
	s.Equal(b.ID(), got[1].ChildID)
}

func (s *PostgresSuite) TestOfferPlacedElsewhereFreesCapacity() {
	seed := testutil.NewSeeder(s.T(), s.uow)
	client := seed.Client("Pat")
	x := seed.Provider("Sunny Days", "Springfield")
	y := seed.Provider("Rainbow", "Shelbyville")
	px := seed.Placement(x.ID(), 2, 4, 1)
	py := seed.Placement(y.ID(), 2, 4, 1)
	a := seed.Entry(client.ID(), "A", 3, "Springfield")
	b := seed.Entry(client.ID(), "B", 3, "Springfield")

	offers := commands.NewOfferCommands(s.uow, clock.NewRealClock(), nil)
	create := func(childID, providerID, placementID uuid.UUID) *queries.OfferView {
		v, err := offers.CreateOffer(s.ctx, commands.CreateOfferInput{
			ChildID: childID, ProviderID: providerID, PlacementID: placementID,
		})
		s.Require().NoError(err)
		return v
	}

	fromX := create(a.ID(), x.ID(), px.ID())
	create(a.ID(), y.ID(), py.ID())
	_, err := offers.RespondToOffer(s.ctx, fromX.ID, offer.DecisionAccept)
	s.Require().NoError(err)

	fromY := create(b.ID(), y.ID(), py.ID())
	s.Equal("B", fromY.ChildName)

	accepted := offer.StatusAccepted
	list, err := queries.NewOfferQueries(s.uow).List(s.ctx, shared.OfferFilter{Status: &accepted})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("A", list[0].ChildName)
	s.Equal("Sunny Days", list[0].ProviderName)
}
