// repository/trek_repository.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
	"github.com/lib/pq"
)

// TrekRepository handles database operations for trek templates
type TrekRepository struct {
	DB *sql.DB
}

// NewTrekRepository creates a new TrekRepository
func NewTrekRepository(conn *sql.DB) *TrekRepository {
	return &TrekRepository{DB: conn}
}

const trekColumns = `id, region_id, name, summary, difficulty, duration_days, max_altitude,
	min_group_size, max_group_size, reference_price, currency, cost_components, itinerary,
	cover_image, cover_thumbnail, gallery, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrek(row rowScanner) (*models.TrekRoute, error) {
	var trek models.TrekRoute
	var components, itinerary []byte
	err := row.Scan(&trek.ID, &trek.RegionID, &trek.Name, &trek.Summary, &trek.Difficulty,
		&trek.DurationDays, &trek.MaxAltitude, &trek.MinGroupSize, &trek.MaxGroupSize,
		&trek.ReferencePrice, &trek.Currency, &components, &itinerary,
		&trek.CoverImage, &trek.CoverThumbnail, pq.Array(&trek.Gallery), &trek.CreatedAt, &trek.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(components, &trek.CostComponents); err != nil {
		return nil, fmt.Errorf("failed to decode cost components: %w", err)
	}
	if err := json.Unmarshal(itinerary, &trek.Itinerary); err != nil {
		return nil, fmt.Errorf("failed to decode itinerary: %w", err)
	}
	if trek.Gallery == nil {
		trek.Gallery = []string{}
	}
	return &trek, nil
}

// ListTreks returns trek templates, optionally limited to one region
func (r *TrekRepository) ListTreks(ctx context.Context, regionID string) ([]models.TrekRoute, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+trekColumns+" FROM trek_templates WHERE ($1 = '' OR region_id = $1) ORDER BY name",
		regionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list treks: %w", err)
	}
	defer rows.Close()

	treks := []models.TrekRoute{}
	for rows.Next() {
		trek, err := scanTrek(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trek: %w", err)
		}
		treks = append(treks, *trek)
	}
	return treks, rows.Err()
}

// GetTrekByID retrieves a trek template by its ID
func (r *TrekRepository) GetTrekByID(ctx context.Context, id string) (*models.TrekRoute, error) {
	trek, err := scanTrek(r.DB.QueryRowContext(ctx, "SELECT "+trekColumns+" FROM trek_templates WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Trek")
		}
		return nil, fmt.Errorf("failed to get trek: %w", err)
	}
	return trek, nil
}

// StoreTrek saves a new trek template
func (r *TrekRepository) StoreTrek(ctx context.Context, trek *models.TrekRoute) error {
	components, itinerary, err := encodeTrekJSON(trek)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO trek_templates (`+trekColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		trek.ID, trek.RegionID, trek.Name, trek.Summary, trek.Difficulty, trek.DurationDays,
		trek.MaxAltitude, trek.MinGroupSize, trek.MaxGroupSize, trek.ReferencePrice, trek.Currency,
		string(components), string(itinerary), trek.CoverImage, trek.CoverThumbnail, pq.Array(trek.Gallery),
		trek.CreatedAt, trek.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trek: %w", err)
	}
	return nil
}

// UpdateTrek overwrites an existing trek template
func (r *TrekRepository) UpdateTrek(ctx context.Context, trek *models.TrekRoute) error {
	components, itinerary, err := encodeTrekJSON(trek)
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx,
		`UPDATE trek_templates SET
			region_id = $2, name = $3, summary = $4, difficulty = $5, duration_days = $6,
			max_altitude = $7, min_group_size = $8, max_group_size = $9, reference_price = $10,
			currency = $11, cost_components = $12, itinerary = $13, cover_image = $14,
			cover_thumbnail = $15, gallery = $16, updated_at = $17
		 WHERE id = $1`,
		trek.ID, trek.RegionID, trek.Name, trek.Summary, trek.Difficulty, trek.DurationDays,
		trek.MaxAltitude, trek.MinGroupSize, trek.MaxGroupSize, trek.ReferencePrice, trek.Currency,
		string(components), string(itinerary), trek.CoverImage, trek.CoverThumbnail, pq.Array(trek.Gallery),
		trek.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update trek: %w", err)
	}
	return requireOneRow(result, "Trek")
}

// UpdateItinerary replaces only the itinerary of a trek
func (r *TrekRepository) UpdateItinerary(ctx context.Context, trekID string, days []models.ItineraryDay) error {
	encoded, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("failed to encode itinerary: %w", err)
	}

	result, err := r.DB.ExecContext(ctx,
		"UPDATE trek_templates SET itinerary = $2, updated_at = NOW() WHERE id = $1",
		trekID, string(encoded),
	)
	if err != nil {
		return fmt.Errorf("failed to update itinerary: %w", err)
	}
	return requireOneRow(result, "Trek")
}

// encodeTrekJSON renders the JSONB columns; pass them as strings, lib/pq sends []byte as bytea
func encodeTrekJSON(trek *models.TrekRoute) ([]byte, []byte, error) {
	components, err := json.Marshal(trek.CostComponents)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode cost components: %w", err)
	}
	itinerary, err := json.Marshal(trek.Itinerary)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode itinerary: %w", err)
	}
	return components, itinerary, nil
}

func requireOneRow(result sql.Result, resource string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return utils.NewNotFoundError(resource)
	}
	return nil
}
