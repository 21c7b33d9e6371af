package postgres

import (
	"context"

	"daycare-waitlist/internal/domain/placement"
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const placementColumns = `id, provider_id, min_age, max_age, total_count, available_count, seq, created_at`

type placementRepo struct {
	db DBTX
}

func (r *placementRepo) Insert(ctx context.Context, p *placement.Placement) error {
	var seq int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO placements (id, provider_id, min_age, max_age, total_count, available_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING seq`,
		pgconv.UUIDToPgtype(p.ID()),
		pgconv.UUIDToPgtype(p.ProviderID()),
		p.Ages().Min(),
		p.Ages().Max(),
		p.TotalCount(),
		p.AvailableCount(),
		pgconv.TimeToPgtype(p.CreatedAt()),
	).Scan(&seq)
	if err != nil {
		return mapErr("insert placement", err)
	}
	p.AssignSequence(seq)
	return nil
}

func (r *placementRepo) FindByID(ctx context.Context, id uuid.UUID) (*placement.Placement, error) {
	return r.findOne(ctx, `SELECT `+placementColumns+` FROM placements WHERE id = $1`, id)
}

func (r *placementRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*placement.Placement, error) {
	return r.findOne(ctx, `SELECT `+placementColumns+` FROM placements WHERE id = $1 FOR UPDATE`, id)
}

func (r *placementRepo) findOne(ctx context.Context, sql string, id uuid.UUID) (*placement.Placement, error) {
	p, err := scanPlacement(r.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "placement not found")
		}
		return nil, mapErr("find placement", err)
	}
	return p, nil
}

func (r *placementRepo) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*placement.Placement, error) {
	return r.list(ctx, `SELECT `+placementColumns+` FROM placements WHERE provider_id = $1 ORDER BY seq`,
		pgconv.UUIDToPgtype(providerID))
}

func (r *placementRepo) List(ctx context.Context) ([]*placement.Placement, error) {
	return r.list(ctx, `SELECT `+placementColumns+` FROM placements ORDER BY seq`)
}

func (r *placementRepo) list(ctx context.Context, sql string, args ...any) ([]*placement.Placement, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapErr("list placements", err)
	}
	defer rows.Close()

	out := make([]*placement.Placement, 0)
	for rows.Next() {
		p, err := scanPlacement(rows)
		if err != nil {
			return nil, mapErr("scan placement", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list placements", err)
	}
	return out, nil
}

// ConsumeOne is a guarded decrement; the CHECK constraint backs it up.
func (r *placementRepo) ConsumeOne(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE placements SET available_count = available_count - 1
		WHERE id = $1 AND available_count > 0`,
		pgconv.UUIDToPgtype(id))
	if err != nil {
		return mapErr("consume placement", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	return infra.NewRepoErr(infra.KindConflict, "placement has no available capacity")
}

func (r *placementRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, `SELECT count(*) FROM placements`)
}

func scanPlacement(row pgx.Row) (*placement.Placement, error) {
	var (
		id, providerID   pgtype.UUID
		minAge, maxAge   int
		total, available int
		seq              int64
		createdAt        pgtype.Timestamptz
	)
	if err := row.Scan(&id, &providerID, &minAge, &maxAge, &total, &available, &seq, &createdAt); err != nil {
		return nil, err
	}
	ages, err := placement.NewAgeRange(minAge, maxAge)
	if err != nil {
		return nil, err
	}
	return placement.ReconstructPlacement(
		pgconv.UUIDFromPgtype(id), pgconv.UUIDFromPgtype(providerID), ages, total, available, seq, createdAt.Time.UTC(),
	), nil
}
