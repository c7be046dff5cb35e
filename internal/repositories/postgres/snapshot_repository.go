package postgres

import (
	"context"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// BulkInsert appends one row per snapshot. Snapshots are observations, so
// there is no upsert path; every collection pass adds new rows.
func (r *SnapshotRepository) BulkInsert(ctx context.Context, snapshots []*models.CrowdSnapshot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO crowd_snapshots (
            place_id, observed_at, current_popularity, peak_hours,
            best_time_to_visit, affluence_score, time_spent_minutes, wait_time_minutes
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8
        )
    `

	for _, snapshot := range snapshots {
		_, err = tx.Exec(ctx, query,
			snapshot.PlaceID,
			snapshot.ObservedAt,
			snapshot.CurrentPopularity,
			snapshot.PeakHours,
			snapshot.BestTimeToVisit,
			snapshot.AffluenceScore,
			snapshot.TimeSpentMinutes,
			snapshot.WaitTimeMinutes,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *SnapshotRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM crowd_snapshots").Scan(&count)
	return count, err
}

func (r *SnapshotRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE crowd_snapshots")
	return err
}
