// Package geo handles coordinate projections and planar geometry.
package geo

import (
	"fmt"
	"math"
)

// Projection maps geographic WGS84 coordinates to a planar reference system.
// Implementations are pure: no side effects, no network access.
type Projection interface {
	// Name is the short label of the target reference system, used in
	// configuration and report headers.
	Name() string
	// Project converts latitude/longitude in decimal degrees to planar
	// easting/northing in meters.
	Project(lat, lon float64) (easting, northing float64)
}

// ByName returns the projection registered under the given name.
func ByName(name string) (Projection, error) {
	switch name {
	case "lv95", "LV95":
		return LV95{}, nil
	default:
		return nil, fmt.Errorf("unknown projection %q", name)
	}
}

// LV95 projects WGS84 coordinates to the Swiss LV95 (EPSG:2056) system
// using the swisstopo approximation formulas. Accuracy is about a meter
// within Switzerland; coordinates far outside the Swiss domain still
// produce a defined result, it is just not meaningful.
type LV95 struct{}

// Name implements Projection.
func (LV95) Name() string { return "LV95" }

// Project implements Projection.
func (LV95) Project(lat, lon float64) (easting, northing float64) {
	// Auxiliary values relative to the Bern reference meridian,
	// in units of 10000 sexagesimal seconds.
	latAux := (lat*3600 - 169028.66) / 10000
	lonAux := (lon*3600 - 26782.5) / 10000

	easting = 2600072.37 +
		211455.93*lonAux -
		10938.51*lonAux*latAux -
		0.36*lonAux*math.Pow(latAux, 2) -
		44.54*math.Pow(lonAux, 3)

	northing = 1200147.07 +
		308807.95*latAux +
		3745.25*math.Pow(lonAux, 2) +
		76.63*math.Pow(latAux, 2) -
		194.56*math.Pow(lonAux, 2)*latAux +
		119.79*math.Pow(latAux, 3)

	return easting, northing
}
