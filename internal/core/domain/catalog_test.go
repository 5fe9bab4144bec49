package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/parkplanner/internal/core/domain"
	"github.com/samirrijal/parkplanner/internal/pkg/geospatial"
)

func park(id int, name string, lat, lon float64) domain.Park {
	return domain.Park{ID: id, Name: name, Location: domain.GeoPoint{Lat: lat, Lon: lon}}
}

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog([]domain.Park{
		park(42, "Yellowstone", 44.4280, -110.5885),
		park(7, "GrandCanyon", 36.1069, -112.1129),
		park(0, "Acadia", 44.3386, -68.2733),
		park(13, "YOSEMITE", 37.8651, -119.5383),
	})
	require.NoError(t, err)
	return c
}

func TestNewCatalog_PreservesOrder(t *testing.T) {
	c := testCatalog(t)

	parks := c.Parks()
	require.Len(t, parks, 4)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []int{42, 7, 0, 13}, []int{parks[0].ID, parks[1].ID, parks[2].ID, parks[3].ID})
}

func TestNewCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		parks   []domain.Park
		wantErr error
	}{
		{"empty", nil, domain.ErrEmptyCatalog},
		{"duplicate id", []domain.Park{park(1, "A", 0, 0), park(1, "B", 0, 0)}, domain.ErrInvalidCatalog},
		{"negative id", []domain.Park{park(-1, "A", 0, 0)}, domain.ErrInvalidCatalog},
		{"no name", []domain.Park{park(1, "", 0, 0)}, domain.ErrInvalidCatalog},
		{"latitude out of range", []domain.Park{park(1, "A", 91, 0)}, geospatial.ErrInvalidLatitude},
		{"longitude out of range", []domain.Park{park(1, "A", 0, -180.5)}, geospatial.ErrInvalidLongitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := domain.NewCatalog(tt.parks)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	in := []domain.Park{park(1, "Alpha", 0, 0)}
	c, err := domain.NewCatalog(in)
	require.NoError(t, err)

	in[0].Name = "Mutated"
	got, err := c.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)

	out := c.Parks()
	out[0].Name = "Mutated"
	assert.Equal(t, "Alpha", c.Parks()[0].Name)
}

func TestCatalog_FindByID(t *testing.T) {
	c := testCatalog(t)

	p, err := c.FindByID(0)
	require.NoError(t, err)
	assert.Equal(t, "Acadia", p.Name)

	_, err = c.FindByID(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_Match(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{42, 7, 0, 13}},
		{"yo", []int{13}},
		{"Y", []int{42, 13}},
		{"stone", []int{42}},
		{"CANYON", []int{7}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var ids []int
			for _, p := range c.Match(tt.query) {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFoldASCII(t *testing.T) {
	assert.Equal(t, "abc-xyz_09", domain.FoldASCII("AbC-XyZ_09"))
	// Non-ASCII letters are not folded.
	assert.Equal(t, "Émile", domain.FoldASCII("Émile"))
}
