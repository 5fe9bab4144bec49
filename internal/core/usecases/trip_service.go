package usecases

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/samirrijal/parkplanner/internal/core/domain"
	"github.com/samirrijal/parkplanner/internal/core/ports"
	"github.com/samirrijal/parkplanner/internal/pkg/metrics"
	"github.com/samirrijal/parkplanner/internal/pkg/render"
)

// TripService owns the itinerary being planned in a session.
type TripService struct {
	parks     domain.ParkLookup
	itinerary domain.Itinerary
}

// NewTripService creates a TripService with an empty itinerary.
func NewTripService(parks domain.ParkLookup) *TripService {
	return &TripService{parks: parks}
}

// Add appends the park with the given id to the trip.
func (s *TripService) Add(id int) (domain.ItineraryEntry, error) {
	entry, err := s.itinerary.Append(id, s.parks)
	switch {
	case errors.Is(err, domain.ErrItineraryFull):
		metrics.AddRejections.WithLabelValues(metrics.ReasonFull).Inc()
		return entry, err
	case errors.Is(err, domain.ErrNotFound):
		metrics.AddRejections.WithLabelValues(metrics.ReasonNotFound).Inc()
		return entry, err
	case err != nil:
		return entry, err
	}

	metrics.ParksAdded.Inc()
	slog.Debug("park added", "park_id", entry.ParkID, "cumulative_miles", entry.CumulativeMiles, "stops", s.itinerary.Len())
	return entry, nil
}

// Full reports whether the trip has reached domain.MaxParks.
func (s *TripService) Full() bool {
	return s.itinerary.Full()
}

// Entries returns the stops added so far.
func (s *TripService) Entries() []domain.ItineraryEntry {
	return s.itinerary.Entries()
}

// Display renders the trip one row per stop.
func (s *TripService) Display() string {
	return render.ItineraryRows(s.itinerary.Entries())
}

// Save hands the trip to w, which persists and releases its output.
func (s *TripService) Save(w ports.TripWriter) error {
	entries := s.itinerary.Entries()
	if err := w.Write(entries); err != nil {
		return fmt.Errorf("save trip: %w", err)
	}
	metrics.TripsSaved.Inc()
	slog.Info("trip saved", "stops", len(entries))
	return nil
}
