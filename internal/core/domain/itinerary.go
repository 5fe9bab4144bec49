package domain

import (
	"fmt"

	"github.com/samirrijal/parkplanner/internal/pkg/geospatial"
)

// MaxParks is the number of parks a single trip can hold.
const MaxParks = 10

// ParkLookup resolves park ids. *Catalog satisfies it.
type ParkLookup interface {
	FindByID(id int) (Park, error)
}

// Itinerary is an append-only, ordered list of at most MaxParks stops.
// The zero value is an empty itinerary ready to use.
type Itinerary struct {
	entries []ItineraryEntry
	last    GeoPoint
}

// Append adds the park with the given id to the end of the trip. The
// itinerary is left unchanged when it is already full (ErrItineraryFull)
// or when the id is unknown (ErrNotFound).
func (it *Itinerary) Append(id int, parks ParkLookup) (ItineraryEntry, error) {
	if it.Full() {
		return ItineraryEntry{}, ErrItineraryFull
	}

	park, err := parks.FindByID(id)
	if err != nil {
		return ItineraryEntry{}, err
	}

	entry := ItineraryEntry{ParkID: park.ID, ParkName: park.Name}
	if n := len(it.entries); n > 0 {
		leg, err := geospatial.Distance(it.last.Lat, it.last.Lon, park.Location.Lat, park.Location.Lon)
		if err != nil {
			return ItineraryEntry{}, fmt.Errorf("distance to park %d: %w", park.ID, err)
		}
		entry.CumulativeMiles = it.entries[n-1].CumulativeMiles + leg
	}

	it.entries = append(it.entries, entry)
	it.last = park.Location
	return entry, nil
}

// Entries returns a copy of the stops in the order they were added.
func (it *Itinerary) Entries() []ItineraryEntry {
	out := make([]ItineraryEntry, len(it.entries))
	copy(out, it.entries)
	return out
}

// Len returns the number of stops.
func (it *Itinerary) Len() int {
	return len(it.entries)
}

// Full reports whether another Append would fail with ErrItineraryFull.
func (it *Itinerary) Full() bool {
	return len(it.entries) >= MaxParks
}
