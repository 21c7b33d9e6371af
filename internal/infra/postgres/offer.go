package postgres

import (
	"context"
	"strconv"
	"strings"

	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/pkg/pgconv"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const offerColumns = `id, child_id, provider_id, placement_id,
	child_name, child_age, child_location, provider_name, provider_location,
	status, created_at, responded_at`

type offerRepo struct {
	db DBTX
}

func (r *offerRepo) Insert(ctx context.Context, o *offer.Offer) error {
	d := o.Details()
	_, err := r.db.Exec(ctx, `
		INSERT INTO offers (`+offerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		pgconv.UUIDToPgtype(o.ID()),
		pgconv.UUIDToPgtype(o.ChildID()),
		pgconv.UUIDToPgtype(o.ProviderID()),
		pgconv.UUIDToPgtype(o.PlacementID()),
		d.ChildName,
		d.ChildAge,
		d.ChildLocation,
		d.ProviderName,
		d.ProviderLocation,
		o.Status().String(),
		pgconv.TimeToPgtype(o.CreatedAt()),
		pgconv.TimePtrToPgtype(o.RespondedAt()),
	)
	if err != nil {
		return mapErr("insert offer", err)
	}
	return nil
}

func (r *offerRepo) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	return r.findOne(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
}

func (r *offerRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	return r.findOne(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1 FOR UPDATE`, id)
}

func (r *offerRepo) findOne(ctx context.Context, sql string, id uuid.UUID) (*offer.Offer, error) {
	o, err := scanOffer(r.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "offer not found")
		}
		return nil, mapErr("find offer", err)
	}
	return o, nil
}

func (r *offerRepo) FindPending(ctx context.Context, childID, providerID uuid.UUID) (*offer.Offer, error) {
	o, err := scanOffer(r.db.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE child_id = $1 AND provider_id = $2 AND status = 'pending'`,
		pgconv.UUIDToPgtype(childID), pgconv.UUIDToPgtype(providerID)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, mapErr("find pending offer", err)
	}
	return o, nil
}

func (r *offerRepo) CountPendingByPlacement(ctx context.Context, placementID uuid.UUID) (int, error) {
	return count(ctx, r.db, `
		SELECT count(*) FROM offers o
		WHERE o.placement_id = $1 AND o.status = 'pending'
		  AND EXISTS (SELECT 1 FROM waitlist_entries w WHERE w.id = o.child_id)`,
		pgconv.UUIDToPgtype(placementID))
}

func (r *offerRepo) List(ctx context.Context, filter shared.OfferFilter) ([]*offer.Offer, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, cond+" = $"+strconv.Itoa(len(args)))
	}
	if filter.ProviderID != nil {
		add("provider_id", pgconv.UUIDToPgtype(*filter.ProviderID))
	}
	if filter.ChildID != nil {
		add("child_id", pgconv.UUIDToPgtype(*filter.ChildID))
	}
	if filter.Status != nil {
		add("status", filter.Status.String())
	}

	sql := `SELECT ` + offerColumns + ` FROM offers`
	if len(conds) > 0 {
		sql += ` WHERE ` + strings.Join(conds, " AND ")
	}
	sql += ` ORDER BY seq`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapErr("list offers", err)
	}
	defer rows.Close()

	out := make([]*offer.Offer, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, mapErr("scan offer", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list offers", err)
	}
	return out, nil
}

func (r *offerRepo) UpdateStatus(ctx context.Context, o *offer.Offer) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE offers SET status = $2, responded_at = $3
		WHERE id = $1 AND status = 'pending'`,
		pgconv.UUIDToPgtype(o.ID()),
		o.Status().String(),
		pgconv.TimePtrToPgtype(o.RespondedAt()),
	)
	if err != nil {
		return mapErr("update offer status", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	if _, err := r.FindByID(ctx, o.ID()); err != nil {
		return err
	}
	return infra.NewRepoErr(infra.KindConflict, "offer is no longer pending")
}

func (r *offerRepo) CountByStatus(ctx context.Context, status offer.Status) (int, error) {
	return count(ctx, r.db, `SELECT count(*) FROM offers WHERE status = $1`, status.String())
}

func scanOffer(row pgx.Row) (*offer.Offer, error) {
	var (
		id, childID, providerID, placementID pgtype.UUID
		d                                    offer.Details
		status                               string
		createdAt, respondedAt               pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &childID, &providerID, &placementID,
		&d.ChildName, &d.ChildAge, &d.ChildLocation, &d.ProviderName, &d.ProviderLocation,
		&status, &createdAt, &respondedAt,
	); err != nil {
		return nil, err
	}
	st, err := offer.NewStatus(status)
	if err != nil {
		return nil, err
	}
	return offer.ReconstructOffer(
		pgconv.UUIDFromPgtype(id),
		pgconv.UUIDFromPgtype(childID),
		pgconv.UUIDFromPgtype(providerID),
		pgconv.UUIDFromPgtype(placementID),
		d,
		st,
		createdAt.Time.UTC(),
		pgconv.TimePtrFromPgtype(respondedAt),
	), nil
}
