package postgres

import (
	"context"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VenueRepository struct {
	pool *pgxpool.Pool
}

func NewVenueRepository(pool *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{pool: pool}
}

// BulkUpsert writes venues together with their capacity estimates. Re-running
// a collection refreshes existing rows instead of duplicating them.
func (r *VenueRepository) BulkUpsert(ctx context.Context, venues []*models.Venue, estimates map[string]models.CapacityEstimate) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO venues (
            id, name, address, lat, lng, rating, review_count, price_level,
            phone, website, types, photo_count,
            estimated_capacity, capacity_confidence, capacity_signals, capacity_methodology
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
        )
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            address = EXCLUDED.address,
            lat = EXCLUDED.lat,
            lng = EXCLUDED.lng,
            rating = EXCLUDED.rating,
            review_count = EXCLUDED.review_count,
            price_level = EXCLUDED.price_level,
            phone = EXCLUDED.phone,
            website = EXCLUDED.website,
            types = EXCLUDED.types,
            photo_count = EXCLUDED.photo_count,
            estimated_capacity = EXCLUDED.estimated_capacity,
            capacity_confidence = EXCLUDED.capacity_confidence,
            capacity_signals = EXCLUDED.capacity_signals,
            capacity_methodology = EXCLUDED.capacity_methodology
    `

	for _, venue := range venues {
		estimate, ok := estimates[venue.ID]
		var (
			capacity    *int
			confidence  *string
			signals     []string
			methodology *string
		)
		if ok {
			capacity = &estimate.EstimatedCapacity
			conf := string(estimate.Confidence)
			confidence = &conf
			signals = estimate.SignalsUsed
			methodology = &estimate.Methodology
		}

		_, err = tx.Exec(ctx, query,
			venue.ID,
			venue.Name,
			venue.Address,
			venue.Location.Lat,
			venue.Location.Lng,
			venue.Rating,
			venue.ReviewCount,
			venue.PriceLevel,
			venue.Phone,
			venue.Website,
			venue.Types,
			venue.PhotoCount,
			capacity,
			confidence,
			signals,
			methodology,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *VenueRepository) GetAll(ctx context.Context) (map[string]*models.Venue, error) {
	query := `
        SELECT
            id, name, address, lat, lng, rating, review_count, price_level,
            phone, website, types, photo_count
        FROM venues
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make(map[string]*models.Venue)
	for rows.Next() {
		venue := &models.Venue{}
		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Address,
			&venue.Location.Lat,
			&venue.Location.Lng,
			&venue.Rating,
			&venue.ReviewCount,
			&venue.PriceLevel,
			&venue.Phone,
			&venue.Website,
			&venue.Types,
			&venue.PhotoCount,
		)
		if err != nil {
			return nil, err
		}
		venues[venue.ID] = venue
	}
	return venues, rows.Err()
}

func (r *VenueRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM venues").Scan(&count)
	return count, err
}

func (r *VenueRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE venues CASCADE")
	return err
}
