package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/lib/pq"
)

// GuideRepository handles database operations for guides
type GuideRepository struct {
	DB *sql.DB
}

// NewGuideRepository creates a new GuideRepository
func NewGuideRepository(conn *sql.DB) *GuideRepository {
	return &GuideRepository{DB: conn}
}

// ListVerifiedGuides returns verified guides, optionally limited to one region
func (r *GuideRepository) ListVerifiedGuides(ctx context.Context, regionID string) ([]models.Guide, error) {
	query := `
		SELECT id, region_id, name, languages, years_experience, rating, verified, daily_rate
		FROM guides
		WHERE verified = TRUE AND ($1 = '' OR region_id = $1)
		ORDER BY rating DESC, name
	`
	rows, err := r.DB.QueryContext(ctx, query, regionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guides: %w", err)
	}
	defer rows.Close()

	guides := []models.Guide{}
	for rows.Next() {
		var guide models.Guide
		if err := rows.Scan(&guide.ID, &guide.RegionID, &guide.Name, pq.Array(&guide.Languages),
			&guide.YearsExperience, &guide.Rating, &guide.Verified, &guide.DailyRate); err != nil {
			return nil, fmt.Errorf("failed to scan guide: %w", err)
		}
		guides = append(guides, guide)
	}
	return guides, rows.Err()
}
