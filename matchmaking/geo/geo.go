// matchmaking/geo/geo.go
package geo

import (
	"math"
	"sort"

	"github.com/findrivals/go-backend/shared/models"
)

// earthRadiusKm is the mean Earth radius used by the spherical approximation.
const earthRadiusKm = 6371.0

// Radius bounds for nearby queries. The boundary layer clamps into this range;
// RankByProximity assumes a valid radius and does not re-validate.
const (
	MinRadiusKm = 1.0
	MaxRadiusKm = 100.0
)

// Point is a geographic coordinate pair (WGS 84, decimal degrees).
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RankedTeam is a team annotated with its great-circle distance from a query
// center. DistanceKm is nil when the distance is unknown (no center supplied,
// team has no location, or the per-team computation failed).
type RankedTeam struct {
	models.Team
	DistanceKm *float64 `json:"distance_km,omitempty" bson:"-"`
}

// Haversine returns the great-circle distance in kilometers between two
// points given in decimal degrees. Spherical earth, no ellipsoidal correction.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dlon/2)*math.Sin(dlon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ClampRadius forces a radius into [MinRadiusKm, MaxRadiusKm].
func ClampRadius(radiusKm float64) float64 {
	if radiusKm < MinRadiusKm {
		return MinRadiusKm
	}
	if radiusKm > MaxRadiusKm {
		return MaxRadiusKm
	}
	return radiusKm
}

// RankByProximity filters teams to those within radiusKm of center and orders
// them nearest-first. The rules:
//
//   - center == nil: every team is returned in input order, none annotated.
//   - a team without a complete coordinate pair is always included without a
//     distance; incomplete records are not silently hidden.
//   - a team whose distance computation does not produce a finite number is
//     included without a distance (fail-open per item).
//   - otherwise the team is included only if its distance is within radiusKm,
//     annotated with the distance rounded to 2 decimal places.
//
// Ranking uses the unrounded distance; teams without one sort as distance 0.
// The sort is stable, so equal keys keep their input order. The input slice is
// not mutated and repeated calls yield identical output.
func RankByProximity(teams []models.Team, center *Point, radiusKm float64) []RankedTeam {
	results := make([]RankedTeam, 0, len(teams))

	if center == nil {
		for _, t := range teams {
			results = append(results, RankedTeam{Team: t})
		}
		return results
	}

	type entry struct {
		ranked  RankedTeam
		sortKey float64
	}
	entries := make([]entry, 0, len(teams))

	for _, t := range teams {
		if !t.HasLocation() {
			entries = append(entries, entry{ranked: RankedTeam{Team: t}})
			continue
		}

		dist := Haversine(center.Latitude, center.Longitude, *t.Latitude, *t.Longitude)
		if math.IsNaN(dist) || math.IsInf(dist, 0) {
			// Malformed coordinates must not abort the whole query.
			entries = append(entries, entry{ranked: RankedTeam{Team: t}})
			continue
		}
		if dist > radiusKm {
			continue
		}

		rounded := math.Round(dist*100) / 100
		entries = append(entries, entry{
			ranked:  RankedTeam{Team: t, DistanceKm: &rounded},
			sortKey: dist,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sortKey < entries[j].sortKey
	})

	for _, e := range entries {
		results = append(results, e.ranked)
	}
	return results
}
