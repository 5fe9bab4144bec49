package domain

// Park is a single catalog entry.
type Park struct {
	ID       int      `json:"id" validate:"gte=0"`
	Name     string   `json:"name" validate:"required,parktoken"`
	Location GeoPoint `json:"location"`
}

// ItineraryEntry is one stop of a planned trip. CumulativeMiles is the
// distance travelled from the first stop up to and including this one.
type ItineraryEntry struct {
	ParkID          int     `json:"park_id"`
	ParkName        string  `json:"park_name"`
	CumulativeMiles float64 `json:"cumulative_miles"`
}
