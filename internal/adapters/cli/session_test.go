package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/parkplanner/internal/core/domain"
	"github.com/samirrijal/parkplanner/internal/core/usecases"
)

func runSession(t *testing.T, stdin string, parks ...domain.Park) (string, *usecases.TripService) {
	t.Helper()
	catalog, err := domain.NewCatalog(parks)
	require.NoError(t, err)

	trips := usecases.NewTripService(catalog)
	var out bytes.Buffer
	NewSession(usecases.NewCatalogService(catalog, nil), trips, strings.NewReader(stdin), &out).Run()
	return out.String(), trips
}

var (
	alpha = domain.Park{ID: 1, Name: "Alpha"}
	beta  = domain.Park{ID: 2, Name: "Beta", Location: domain.GeoPoint{Lat: 0, Lon: 1}}
)

func TestSession_Transcript(t *testing.T) {
	out, _ := runSession(t, "A\n1\nD\nQ\n", alpha)

	want := menu +
		"Park id: Park added to trip: Alpha\n\n" +
		menu +
		"\n" +
		" ID               Name                        Distance\n" +
		"  1 Alpha                                        0.00\n" +
		"\n" +
		menu +
		"\n"
	assert.Equal(t, want, out)
}

func TestSession_List(t *testing.T) {
	out, _ := runSession(t, "l\nq\n", alpha, beta)

	want := menu +
		"\n" +
		" ID               Name                        Latitude Longitude\n" +
		"  1 Alpha                                        0.00     0.00\n" +
		"  2 Beta                                         0.00     1.00\n" +
		"\n" +
		menu +
		"\n"
	assert.Equal(t, want, out)
}

func TestSession_SearchEmptyQueryListsEverything(t *testing.T) {
	listOut, _ := runSession(t, "L\nQ\n", alpha, beta)
	searchOut, _ := runSession(t, "S\n\nQ\n", alpha, beta)

	listing := strings.TrimPrefix(strings.TrimSuffix(listOut, menu+"\n"), menu)
	searching := strings.TrimPrefix(strings.TrimSuffix(searchOut, menu+"\n"), menu+"Park name (is/contains): ")
	assert.Equal(t, listing+"\n", searching)
}

func TestSession_OptionsMustMatchWholeLine(t *testing.T) {
	out, _ := runSession(t, "List\n L\nQ\n", alpha)
	assert.Equal(t, 2, strings.Count(out, "Invalid option\n\n"))
}

func TestSession_IDTokenIgnoresRestOfLine(t *testing.T) {
	out, trips := runSession(t, "A\n\n  2 and more\nQ\n", alpha, beta)
	assert.Contains(t, out, "Park added to trip: Beta\n")
	require.Len(t, trips.Entries(), 1)
	assert.Equal(t, 2, trips.Entries()[0].ParkID)
}

func TestSession_FullTripSkipsPrompt(t *testing.T) {
	var stdin strings.Builder
	for i := 0; i < domain.MaxParks; i++ {
		stdin.WriteString("A\n1\n")
	}
	stdin.WriteString("A\n1\nQ\n")

	out, trips := runSession(t, stdin.String(), alpha)
	assert.Len(t, trips.Entries(), domain.MaxParks)
	assert.Equal(t, domain.MaxParks, strings.Count(out, "Park id: "))
	assert.Contains(t, out, "Trip is full\n\n")
	// The "1" after the rejected A is read as a menu option.
	assert.Contains(t, out, "Invalid option\n\n")
}

func TestSession_EndOfInputDuringPrompt(t *testing.T) {
	out, trips := runSession(t, "A\n", alpha)
	assert.True(t, strings.HasSuffix(out, "Park id: \n"))
	assert.Empty(t, trips.Entries())

	out, _ = runSession(t, "S\n", alpha)
	assert.True(t, strings.HasSuffix(out, "Park name (is/contains): \n"))
}

func TestSession_LogsInvalidOption(t *testing.T) {
	catalog, err := domain.NewCatalog([]domain.Park{alpha})
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newSession(usecases.NewCatalogService(catalog, nil), usecases.NewTripService(catalog),
		newInput(strings.NewReader("Z\nQ\n")), &bytes.Buffer{}, logger)
	s.Run()

	assert.Contains(t, logs.String(), "invalid menu option")
	assert.Contains(t, logs.String(), "option=Z")
}
