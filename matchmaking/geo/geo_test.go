// matchmaking/geo/geo_test.go
package geo

import (
	"math"
	"testing"

	"github.com/findrivals/go-backend/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func teamAt(teamID string, lat, lon float64) models.Team {
	return models.Team{
		TeamID:    teamID,
		Sport:     models.SportCricket,
		Latitude:  floatPtr(lat),
		Longitude: floatPtr(lon),
	}
}

func TestHaversine_SelfDistanceIsZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{12.9716, 77.5946},
		{-33.8688, 151.2093},
		{89.9, -179.9},
	}
	for _, p := range points {
		assert.InDelta(t, 0, Haversine(p[0], p[1], p[0], p[1]), 1e-9)
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	d1 := Haversine(12.9716, 77.5946, 13.0827, 80.2707)
	d2 := Haversine(13.0827, 80.2707, 12.9716, 77.5946)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestHaversine_OneDegreeLongitudeAtEquator(t *testing.T) {
	// One degree of longitude on the equator is ~111.19 km.
	d := Haversine(0, 0, 0, 1)
	assert.InDelta(t, 111.19, d, 0.5)
}

func TestClampRadius(t *testing.T) {
	assert.Equal(t, 1.0, ClampRadius(0))
	assert.Equal(t, 1.0, ClampRadius(-5))
	assert.Equal(t, 10.0, ClampRadius(10))
	assert.Equal(t, 100.0, ClampRadius(100))
	assert.Equal(t, 100.0, ClampRadius(250))
}

func TestRankByProximity_FiltersAndAnnotates(t *testing.T) {
	t1 := teamAt("CRK-100", 0, 0)
	t2 := teamAt("CRK-101", 0, 1) // ~111.19 km from center, outside 50 km
	t3 := models.Team{TeamID: "CRK-102", Sport: models.SportCricket} // no location

	results := RankByProximity([]models.Team{t1, t2, t3}, &Point{Latitude: 0, Longitude: 0}, 50)

	require.Len(t, results, 2)

	ids := []string{results[0].TeamID, results[1].TeamID}
	assert.ElementsMatch(t, []string{"CRK-100", "CRK-102"}, ids)

	for _, r := range results {
		switch r.TeamID {
		case "CRK-100":
			require.NotNil(t, r.DistanceKm)
			assert.Equal(t, 0.0, *r.DistanceKm)
		case "CRK-102":
			// Missing location is included without an annotation, not excluded.
			assert.Nil(t, r.DistanceKm)
		}
	}
}

func TestRankByProximity_OrdersNearestFirst(t *testing.T) {
	far := teamAt("FTB-102", 0, 0.5)
	near := teamAt("FTB-101", 0, 0.1)
	center := teamAt("FTB-100", 0, 0)

	results := RankByProximity([]models.Team{far, near, center}, &Point{}, 100)

	require.Len(t, results, 3)
	assert.Equal(t, "FTB-100", results[0].TeamID)
	assert.Equal(t, "FTB-101", results[1].TeamID)
	assert.Equal(t, "FTB-102", results[2].TeamID)
}

func TestRankByProximity_UnknownDistanceSortsFirst(t *testing.T) {
	unlocated := models.Team{TeamID: "TNS-101", Sport: models.SportTennis}
	located := teamAt("TNS-100", 0, 0.2)

	results := RankByProximity([]models.Team{located, unlocated}, &Point{}, 100)

	require.Len(t, results, 2)
	// Teams without a computed distance sort with key 0, ahead of real distances.
	assert.Equal(t, "TNS-101", results[0].TeamID)
	assert.Nil(t, results[0].DistanceKm)
	assert.Equal(t, "TNS-100", results[1].TeamID)
}

func TestRankByProximity_NoCenterReturnsAllInInputOrder(t *testing.T) {
	teams := []models.Team{
		teamAt("KBD-102", 10, 10),
		{TeamID: "KBD-100"},
		teamAt("KBD-101", -45, 90),
	}

	results := RankByProximity(teams, nil, 10)

	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, teams[i].TeamID, r.TeamID)
		assert.Nil(t, r.DistanceKm)
	}
}

func TestRankByProximity_MalformedCoordinatesFailOpen(t *testing.T) {
	bad := models.Team{
		TeamID:    "SHT-101",
		Latitude:  floatPtr(math.NaN()),
		Longitude: floatPtr(77.0),
	}
	good := teamAt("SHT-100", 0, 0)

	results := RankByProximity([]models.Team{good, bad}, &Point{}, 10)

	require.Len(t, results, 2)
	for _, r := range results {
		if r.TeamID == "SHT-101" {
			assert.Nil(t, r.DistanceKm)
		}
	}
}

func TestRankByProximity_RoundsToTwoDecimals(t *testing.T) {
	team := teamAt("CRK-100", 0, 0.1)

	results := RankByProximity([]models.Team{team}, &Point{}, 50)

	require.Len(t, results, 1)
	require.NotNil(t, results[0].DistanceKm)
	d := *results[0].DistanceKm
	assert.Equal(t, math.Round(d*100)/100, d)
	assert.InDelta(t, 11.12, d, 0.05)
}

func TestRankByProximity_Idempotent(t *testing.T) {
	teams := []models.Team{
		teamAt("CRK-100", 0, 0.3),
		{TeamID: "CRK-101"},
		teamAt("CRK-102", 0, 0.1),
	}
	center := &Point{Latitude: 0, Longitude: 0}

	first := RankByProximity(teams, center, 50)
	second := RankByProximity(teams, center, 50)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].TeamID, second[i].TeamID)
	}
}
