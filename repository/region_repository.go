package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
)

// RegionRepository handles database operations for regions
type RegionRepository struct {
	DB *sql.DB
}

// NewRegionRepository creates a new RegionRepository
func NewRegionRepository(conn *sql.DB) *RegionRepository {
	return &RegionRepository{DB: conn}
}

const regionColumns = "id, name, description, country, image_url, highest_point, best_season, created_at"

// ListRegions returns all regions ordered by name
func (r *RegionRepository) ListRegions(ctx context.Context) ([]models.Region, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+regionColumns+" FROM regions ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	defer rows.Close()

	regions := []models.Region{}
	for rows.Next() {
		var region models.Region
		if err := rows.Scan(&region.ID, &region.Name, &region.Description, &region.Country,
			&region.ImageURL, &region.HighestPoint, &region.BestSeason, &region.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, region)
	}
	return regions, rows.Err()
}

// GetRegionByID retrieves a region by its ID
func (r *RegionRepository) GetRegionByID(ctx context.Context, id string) (*models.Region, error) {
	var region models.Region
	err := r.DB.QueryRowContext(ctx, "SELECT "+regionColumns+" FROM regions WHERE id = $1", id).
		Scan(&region.ID, &region.Name, &region.Description, &region.Country,
			&region.ImageURL, &region.HighestPoint, &region.BestSeason, &region.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Region")
		}
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	return &region, nil
}
