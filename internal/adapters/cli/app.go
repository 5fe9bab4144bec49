package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/samirrijal/parkplanner/internal/adapters/tripfile"
	"github.com/samirrijal/parkplanner/internal/core/domain"
	"github.com/samirrijal/parkplanner/internal/core/ports"
	"github.com/samirrijal/parkplanner/internal/core/usecases"
	"github.com/samirrijal/parkplanner/internal/pkg/metrics"
)

const usage = "Usage: parks parkfile tripfile"

// App wires the planner for one invocation of the parks command.
type App struct {
	loader          ports.CatalogLoader
	cache           ports.CacheService
	createTrip      func(path string) (ports.TripWriter, error)
	metricsTextfile string
}

// NewApp creates an App that writes trips with tripfile. cache may be nil;
// an empty metricsTextfile disables the metrics dump.
func NewApp(loader ports.CatalogLoader, cache ports.CacheService, metricsTextfile string) *App {
	return &App{
		loader:          loader,
		cache:           cache,
		createTrip:      createTripFile,
		metricsTextfile: metricsTextfile,
	}
}

func createTripFile(path string) (ports.TripWriter, error) {
	w, err := tripfile.Create(path)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Run executes one session for args (park file, trip file) and returns the
// process exit code.
func (a *App) Run(args []string, stdin io.Reader, stdout io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stdout, usage)
		return 1
	}
	parkPath, tripPath := args[0], args[1]
	log := slog.With("session_id", uuid.NewString())

	catalog, err := a.loader.Open(parkPath)
	if err != nil {
		log.Warn("park file rejected", "path", parkPath, "error", err)
		fmt.Fprintln(stdout, loadFailureMessage(parkPath, err))
		return 1
	}
	metrics.CatalogParks.Set(float64(catalog.Len()))

	in := newInput(stdin)

	if _, err := os.Stat(tripPath); err == nil {
		fmt.Fprintf(stdout, "%s exists - OK to overwrite (y,n)?: ", tripPath)
		answer, _ := in.token()
		if !strings.HasPrefix(strings.ToLower(answer), "y") {
			log.Info("overwrite declined", "path", tripPath)
			return 1
		}
	}

	trip, err := a.createTrip(tripPath)
	if err != nil {
		log.Warn("trip file not created", "path", tripPath, "error", err)
		fmt.Fprintln(stdout, "Cannot create trip file")
		return 1
	}

	trips := usecases.NewTripService(catalog)
	session := newSession(usecases.NewCatalogService(catalog, a.cache), trips, in, stdout, log)
	session.Run()

	code := 0
	if err := trips.Save(trip); err != nil {
		log.Error("trip not saved", "path", tripPath, "error", err)
		code = 1
	}

	if a.metricsTextfile != "" {
		if err := metrics.WriteTextfile(a.metricsTextfile); err != nil {
			log.Warn("metrics textfile not written", "path", a.metricsTextfile, "error", err)
		}
	}

	return code
}

func loadFailureMessage(path string, err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyCatalog):
		return "Empty park file"
	case errors.Is(err, domain.ErrInvalidCatalog):
		return "Invalid park file"
	default:
		return "Unable to access park file: " + path
	}
}
