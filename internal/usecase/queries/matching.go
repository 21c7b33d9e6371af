package queries

//go:generate mockgen -source=matching.go -destination=../mocks/queries/matching_mock.go -package=queriesmock

import (
	"context"
	"log/slog"
	"time"

	"daycare-waitlist/internal/domain/matching"
	"daycare-waitlist/internal/pkg/metrics"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

type MatchingQueries interface {
	RankCandidates(ctx context.Context, providerID uuid.UUID) ([]CandidateView, error)
}

type matchingQueriesImpl struct {
	uow     shared.UnitOfWork
	metrics *metrics.Metrics
}

func NewMatchingQueries(uow shared.UnitOfWork, m *metrics.Metrics) MatchingQueries {
	return &matchingQueriesImpl{uow: uow, metrics: m}
}

// RankCandidates reads provider, placements, waitlist and offers from one snapshot.
func (q *matchingQueriesImpl) RankCandidates(ctx context.Context, providerID uuid.UUID) ([]CandidateView, error) {
	start := time.Now()
	var candidates []matching.Candidate

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		provider, err := tx.Accounts().FindProviderByID(ctx, providerID)
		if err != nil {
			return shared.TranslateNotFound(err, "provider")
		}

		placements, err := tx.Placements().ListByProvider(ctx, providerID)
		if err != nil {
			return err
		}
		entries, err := tx.Waitlist().ListOrdered(ctx)
		if err != nil {
			return err
		}
		offers, err := tx.Offers().List(ctx, shared.OfferFilter{ProviderID: &providerID})
		if err != nil {
			return err
		}

		candidates = matching.Rank(matching.Input{
			ProviderID:       providerID,
			ProviderLocation: provider.Location(),
			Placements:       placements,
			Entries:          entries,
			Offers:           offers,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	q.metrics.ObserveRank(time.Since(start))
	slog.DebugContext(ctx, "candidates ranked",
		"provider_id", providerID,
		"count", len(candidates))

	views := make([]CandidateView, len(candidates))
	for i, c := range candidates {
		views[i] = NewCandidateView(c)
	}
	return views, nil
}
