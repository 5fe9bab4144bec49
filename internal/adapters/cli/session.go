package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/samirrijal/parkplanner/internal/core/domain"
	"github.com/samirrijal/parkplanner/internal/core/usecases"
	"github.com/samirrijal/parkplanner/internal/pkg/metrics"
	"github.com/samirrijal/parkplanner/internal/pkg/render"
)

const menu = `Parks Program - Please choose an option.

L - List parks
S - Search for park
A - Add park to trip
D - Display trip
Q - Quit

Option: `

// Session runs the interactive menu until the user quits or input ends.
type Session struct {
	catalog *usecases.CatalogService
	trip    *usecases.TripService
	in      *input
	out     io.Writer
	log     *slog.Logger
}

// NewSession creates a session reading answers from in and writing to out.
func NewSession(catalog *usecases.CatalogService, trip *usecases.TripService, in io.Reader, out io.Writer) *Session {
	return newSession(catalog, trip, newInput(in), out, slog.Default())
}

func newSession(catalog *usecases.CatalogService, trip *usecases.TripService, in *input, out io.Writer, log *slog.Logger) *Session {
	return &Session{catalog: catalog, trip: trip, in: in, out: out, log: log}
}

// Run shows the menu and dispatches options. It returns when the user
// chooses Q or stdin is exhausted; both end the session normally.
func (s *Session) Run() {
	for {
		fmt.Fprint(s.out, menu)

		option, ok := s.in.line()
		if !ok {
			fmt.Fprintln(s.out)
			return
		}

		var more bool
		switch strings.ToUpper(option) {
		case "L":
			more = s.list()
		case "S":
			more = s.search()
		case "A":
			more = s.add()
		case "D":
			more = s.display()
		case "Q":
			fmt.Fprintln(s.out)
			return
		default:
			metrics.InvalidOptions.Inc()
			s.log.Debug("invalid menu option", "option", option)
			fmt.Fprint(s.out, "Invalid option\n\n")
			more = true
		}

		if !more {
			fmt.Fprintln(s.out)
			return
		}
	}
}

func (s *Session) list() bool {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, render.ParkHeader)
	fmt.Fprintln(s.out, s.catalog.List())
	return true
}

func (s *Session) search() bool {
	fmt.Fprint(s.out, "Park name (is/contains): ")
	query, ok := s.in.line()
	if !ok {
		return false
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, render.ParkHeader)
	fmt.Fprintln(s.out, s.catalog.Search(query))
	fmt.Fprintln(s.out)
	return true
}

func (s *Session) add() bool {
	if s.trip.Full() {
		metrics.AddRejections.WithLabelValues(metrics.ReasonFull).Inc()
		fmt.Fprint(s.out, "Trip is full\n\n")
		return true
	}

	fmt.Fprint(s.out, "Park id: ")
	tok, ok := s.in.token()
	if !ok {
		return false
	}

	id, err := strconv.Atoi(tok)
	if err != nil {
		metrics.AddRejections.WithLabelValues(metrics.ReasonInvalidID).Inc()
		fmt.Fprint(s.out, "Invalid id\n\n")
		return true
	}

	entry, err := s.trip.Add(id)
	switch {
	case errors.Is(err, domain.ErrItineraryFull):
		fmt.Fprint(s.out, "Trip is full\n\n")
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprint(s.out, "Invalid id\n\n")
	case err != nil:
		s.log.Error("add park", "park_id", id, "error", err)
		fmt.Fprint(s.out, "Invalid id\n\n")
	default:
		fmt.Fprintf(s.out, "Park added to trip: %s\n\n", entry.ParkName)
	}
	return true
}

func (s *Session) display() bool {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, render.ItineraryHeader)
	fmt.Fprintln(s.out, s.trip.Display())
	return true
}
