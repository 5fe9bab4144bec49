package tripfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/samirrijal/parkplanner/internal/core/domain"
)

// Writer implements ports.TripWriter with one "name,distance" line per stop.
type Writer struct {
	out io.WriteCloser
}

// Create truncates or creates the trip file at path.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTripAccess, err)
	}
	return &Writer{out: f}, nil
}

// NewWriter wraps an already open destination.
func NewWriter(out io.WriteCloser) *Writer {
	return &Writer{out: out}
}

// Write emits every entry in order and closes the destination. Distances
// are written with two fractional digits.
func (w *Writer) Write(entries []domain.ItineraryEntry) error {
	bw := bufio.NewWriter(w.out)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s,%.2f\n", e.ParkName, e.CumulativeMiles); err != nil {
			_ = w.out.Close()
			return fmt.Errorf("write trip entry %q: %w", e.ParkName, err)
		}
	}

	if err := bw.Flush(); err != nil {
		_ = w.out.Close()
		return fmt.Errorf("flush trip file: %w", err)
	}
	if err := w.out.Close(); err != nil {
		return fmt.Errorf("close trip file: %w", err)
	}
	return nil
}
