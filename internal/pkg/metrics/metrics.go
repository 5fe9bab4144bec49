package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogParks = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "parkplanner",
		Subsystem: "catalog",
		Name:      "parks_loaded",
		Help:      "Number of parks in the loaded catalog",
	})

	CatalogSearches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "parkplanner",
		Subsystem: "catalog",
		Name:      "searches_total",
		Help:      "Total park name searches",
	})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "parkplanner",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total cache hits",
	}, []string{"operation"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "parkplanner",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total cache misses",
	}, []string{"operation"})

	ParksAdded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "parkplanner",
		Subsystem: "trip",
		Name:      "parks_added_total",
		Help:      "Total parks appended to the trip",
	})

	AddRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "parkplanner",
		Subsystem: "trip",
		Name:      "add_rejections_total",
		Help:      "Total rejected add requests by reason",
	}, []string{"reason"})

	TripsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "parkplanner",
		Subsystem: "trip",
		Name:      "saved_total",
		Help:      "Total trip files written",
	})

	InvalidOptions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "parkplanner",
		Subsystem: "menu",
		Name:      "invalid_options_total",
		Help:      "Total unrecognised menu options",
	})
)

// Rejection reasons for AddRejections.
const (
	ReasonFull      = "full"
	ReasonNotFound  = "not_found"
	ReasonInvalidID = "invalid_id"
)

// WriteTextfile dumps every registered metric to path in the text
// exposition format read by the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
