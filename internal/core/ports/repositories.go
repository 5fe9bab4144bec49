package ports

import (
	"github.com/samirrijal/parkplanner/internal/core/domain"
)

// CatalogLoader builds the park catalog from a source such as a file path.
type CatalogLoader interface {
	Open(path string) (*domain.Catalog, error)
}

// TripWriter persists a finished itinerary. Implementations release their
// underlying resource once Write returns.
type TripWriter interface {
	Write(entries []domain.ItineraryEntry) error
}
