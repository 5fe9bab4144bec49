// Package render produces the fixed-width text used for park listings and
// trip displays. Whitespace in every format is significant.
package render

import (
	"fmt"
	"strings"

	"github.com/samirrijal/parkplanner/internal/core/domain"
)

const (
	// ParkHeader precedes park listings.
	ParkHeader = " ID               Name                        Latitude Longitude"
	// ItineraryHeader precedes trip displays.
	ItineraryHeader = " ID               Name                        Distance"
)

// ParkRow formats a park as "%3d %-40s %8.2f %8.2f\n".
func ParkRow(p domain.Park) string {
	return fmt.Sprintf("%3d %-40s %8.2f %8.2f\n", p.ID, p.Name, p.Location.Lat, p.Location.Lon)
}

// ItineraryRow formats a trip stop as "%3d %-40s %8.2f\n".
func ItineraryRow(e domain.ItineraryEntry) string {
	return fmt.Sprintf("%3d %-40s %8.2f\n", e.ParkID, e.ParkName, e.CumulativeMiles)
}

func ParkRows(parks []domain.Park) string {
	var sb strings.Builder
	for _, p := range parks {
		sb.WriteString(ParkRow(p))
	}
	return sb.String()
}

func ItineraryRows(entries []domain.ItineraryEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(ItineraryRow(e))
	}
	return sb.String()
}
