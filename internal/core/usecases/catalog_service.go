package usecases

import (
	"log/slog"

	"github.com/samirrijal/parkplanner/internal/core/domain"
	"github.com/samirrijal/parkplanner/internal/core/ports"
	"github.com/samirrijal/parkplanner/internal/pkg/metrics"
	"github.com/samirrijal/parkplanner/internal/pkg/render"
)

// CatalogService handles park listing and lookup.
type CatalogService struct {
	catalog *domain.Catalog
	cache   ports.CacheService
}

// NewCatalogService creates a new CatalogService. cache may be nil.
func NewCatalogService(catalog *domain.Catalog, cache ports.CacheService) *CatalogService {
	return &CatalogService{catalog: catalog, cache: cache}
}

// List renders every park in catalog order.
func (s *CatalogService) List() string {
	return render.ParkRows(s.catalog.Parks())
}

// Search renders the parks whose name contains query, ignoring ASCII case.
// The catalog never changes, so results are cached for the whole session.
func (s *CatalogService) Search(query string) string {
	metrics.CatalogSearches.Inc()

	// Try cache
	cacheKey := "parks:search:" + domain.FoldASCII(query)
	if s.cache != nil {
		if rows, ok := s.cache.Get(cacheKey); ok {
			metrics.CacheHits.WithLabelValues("search").Inc()
			return rows
		}
		metrics.CacheMisses.WithLabelValues("search").Inc()
	}

	matches := s.catalog.Match(query)
	slog.Debug("park search", "query", query, "matches", len(matches))
	rows := render.ParkRows(matches)

	if s.cache != nil {
		s.cache.Set(cacheKey, rows)
	}

	return rows
}

// FindByID returns a single park.
func (s *CatalogService) FindByID(id int) (domain.Park, error) {
	return s.catalog.FindByID(id)
}
