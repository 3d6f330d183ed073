package handlers

import (
	"strconv"

	"github.com/fadhlanhapp/trekshare-backend/services"
	"github.com/fadhlanhapp/trekshare-backend/utils"

	"github.com/gin-gonic/gin"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	TrekService      *services.TrekService
	QuoteService     *services.QuoteService
	ItineraryService *services.ItineraryService
	BookingService   *services.BookingService
	ExcelService     *services.ExcelService
	MediaService     *services.MediaService
}

// Stores groups the persistence the services are built on
type Stores struct {
	Regions  services.RegionStore
	Treks    services.TrekStore
	Guides   services.GuideStore
	Bookings services.BookingStore
	Drafts   services.DraftRepository
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices(stores Stores, media *services.MediaService) *HandlerServices {
	return &HandlerServices{
		TrekService:      services.NewTrekService(stores.Regions, stores.Treks, stores.Guides, media),
		QuoteService:     services.NewQuoteService(stores.Treks),
		ItineraryService: services.NewItineraryService(stores.Treks, stores.Drafts),
		BookingService:   services.NewBookingService(stores.Treks, stores.Bookings, stores.Drafts),
		ExcelService:     services.NewExcelService(stores.Treks),
		MediaService:     media,
	}
}

var handlerServices *HandlerServices

// InitHandlers sets the services the handlers use
func InitHandlers(s *HandlerServices) {
	handlerServices = s
}

// queryInt reads an optional integer query parameter; missing means zero
func queryInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, utils.NewInvalidArgumentError("%s must be a whole number", name)
	}
	return n, nil
}
