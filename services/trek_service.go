package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
)

// RegionStore reads regions
type RegionStore interface {
	ListRegions(ctx context.Context) ([]models.Region, error)
	GetRegionByID(ctx context.Context, id string) (*models.Region, error)
}

// TrekStore reads and writes trek templates
type TrekStore interface {
	TrekReader
	ListTreks(ctx context.Context, regionID string) ([]models.TrekRoute, error)
	StoreTrek(ctx context.Context, trek *models.TrekRoute) error
	UpdateTrek(ctx context.Context, trek *models.TrekRoute) error
	UpdateItinerary(ctx context.Context, trekID string, days []models.ItineraryDay) error
}

// GuideStore reads guide listings
type GuideStore interface {
	ListVerifiedGuides(ctx context.Context, regionID string) ([]models.Guide, error)
}

// FileRemover deletes stored uploads
type FileRemover interface {
	Remove(paths ...string)
}

// TrekService serves the region, trek and guide catalog
type TrekService struct {
	regions RegionStore
	treks   TrekStore
	guides  GuideStore
	files   FileRemover
}

// NewTrekService creates a new trek service
func NewTrekService(regions RegionStore, treks TrekStore, guides GuideStore, files FileRemover) *TrekService {
	return &TrekService{regions: regions, treks: treks, guides: guides, files: files}
}

func (s *TrekService) ListRegions(ctx context.Context) ([]models.Region, error) {
	return s.regions.ListRegions(ctx)
}

func (s *TrekService) GetRegion(ctx context.Context, id string) (*models.Region, error) {
	return s.regions.GetRegionByID(ctx, id)
}

func (s *TrekService) ListTreks(ctx context.Context, regionID string) ([]models.TrekRoute, error) {
	return s.treks.ListTreks(ctx, regionID)
}

func (s *TrekService) GetTrek(ctx context.Context, id string) (*models.TrekRoute, error) {
	return s.treks.GetTrekByID(ctx, id)
}

func (s *TrekService) ListVerifiedGuides(ctx context.Context, regionID string) ([]models.Guide, error) {
	return s.guides.ListVerifiedGuides(ctx, regionID)
}

// CreateTemplate stores a new trek template from the form's data blob
func (s *TrekService) CreateTemplate(ctx context.Context, data []byte, media models.TemplateMedia) (*models.TrekRoute, error) {
	var request models.TrekTemplateRequest
	if err := json.Unmarshal(data, &request); err != nil {
		return nil, utils.NewBadRequestError("data must be a JSON object")
	}

	now := time.Now().UTC()
	trek := &models.TrekRoute{
		ID:        utils.GenerateID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.applyTemplate(ctx, trek, &request, media); err != nil {
		return nil, err
	}

	if err := s.treks.StoreTrek(ctx, trek); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return trek, nil
}

// UpdateTemplate applies the fields present in data on top of the stored template
func (s *TrekService) UpdateTemplate(ctx context.Context, id string, data []byte, media models.TemplateMedia) (*models.TrekRoute, error) {
	trek, err := s.treks.GetTrekByID(ctx, id)
	if err != nil {
		return nil, err
	}

	request := templateRequestFrom(trek)
	if len(data) > 0 {
		var present map[string]json.RawMessage
		if err := json.Unmarshal(data, &present); err != nil {
			return nil, utils.NewBadRequestError("data must be a JSON object")
		}
		// A new rate sheet replaces the stored components unless extras are sent with it
		if _, ok := present["pricing"]; ok {
			if _, ok := present["costComponents"]; !ok {
				request.CostComponents = nil
			}
		}
		if err := json.Unmarshal(data, &request); err != nil {
			return nil, utils.NewBadRequestError("data must be a JSON object")
		}
	}

	oldCover, oldThumb := trek.CoverImage, trek.CoverThumbnail
	trek.UpdatedAt = time.Now().UTC()
	if err := s.applyTemplate(ctx, trek, &request, media); err != nil {
		return nil, err
	}

	if err := s.treks.UpdateTrek(ctx, trek); err != nil {
		return nil, err
	}
	if media.CoverImage != "" && oldCover != media.CoverImage {
		s.files.Remove(oldCover, oldThumb)
	}
	return trek, nil
}

// applyTemplate validates request and copies it onto trek
func (s *TrekService) applyTemplate(ctx context.Context, trek *models.TrekRoute, request *models.TrekTemplateRequest, media models.TemplateMedia) error {
	if err := validateTemplate(request); err != nil {
		return err
	}
	if _, err := s.regions.GetRegionByID(ctx, request.RegionID); err != nil {
		return err
	}

	components := request.CostComponents
	if request.Pricing != nil {
		components = append(StandardCostSheet(*request.Pricing), components...)
	}
	if err := ValidateCostComponents(components); err != nil {
		return err
	}

	itinerary, err := NormalizeItinerary(request.Itinerary)
	if err != nil {
		return err
	}

	currency := request.Currency
	if currency == "" {
		currency = utils.DefaultCurrency
	}

	trek.RegionID = request.RegionID
	trek.Name = request.Name
	trek.Summary = request.Summary
	trek.Difficulty = request.Difficulty
	trek.DurationDays = request.DurationDays
	trek.MaxAltitude = request.MaxAltitude
	trek.MinGroupSize = request.MinGroupSize
	trek.MaxGroupSize = request.MaxGroupSize
	trek.ReferencePrice = utils.RoundMoney(request.ReferencePrice)
	trek.Currency = currency
	trek.CostComponents = components
	trek.Itinerary = itinerary
	trek.Gallery = append(utils.TrimAll(request.Gallery), media.Gallery...)
	if media.CoverImage != "" {
		trek.CoverImage = media.CoverImage
		trek.CoverThumbnail = media.CoverThumbnail
	}
	return nil
}

func validateTemplate(request *models.TrekTemplateRequest) error {
	if err := utils.ValidateRequired(request.Name, "name"); err != nil {
		return err
	}
	if err := utils.ValidateRequired(request.RegionID, "region"); err != nil {
		return err
	}
	if err := utils.ValidatePositiveInt(request.DurationDays, "duration days"); err != nil {
		return err
	}
	if err := utils.ValidatePositiveInt(request.MinGroupSize, "minimum group size"); err != nil {
		return err
	}
	if request.MaxGroupSize < request.MinGroupSize {
		return utils.NewValidationError("maximum group size must not be below minimum group size")
	}
	if request.MaxAltitude < 0 {
		return utils.NewValidationError("max altitude cannot be negative")
	}
	return utils.ValidateNonNegativeDecimal(request.ReferencePrice, "reference price")
}

func templateRequestFrom(trek *models.TrekRoute) models.TrekTemplateRequest {
	return models.TrekTemplateRequest{
		RegionID:       trek.RegionID,
		Name:           trek.Name,
		Summary:        trek.Summary,
		Difficulty:     trek.Difficulty,
		DurationDays:   trek.DurationDays,
		MaxAltitude:    trek.MaxAltitude,
		MinGroupSize:   trek.MinGroupSize,
		MaxGroupSize:   trek.MaxGroupSize,
		ReferencePrice: trek.ReferencePrice,
		Currency:       trek.Currency,
		CostComponents: trek.CostComponents,
		Itinerary:      trek.Itinerary,
		Gallery:        trek.Gallery,
	}
}
