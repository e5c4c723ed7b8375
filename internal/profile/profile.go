// Package profile builds the per-point route profile and its aggregates.
package profile

import (
	"context"

	"github.com/DominikBaer/kroki/internal/geo"
	"github.com/DominikBaer/kroki/internal/gpx"
	"github.com/DominikBaer/kroki/internal/height"

	"github.com/rs/zerolog"
)

// Point is one profiled route point. Distance, DeltaElevation and
// Azimuth are measured from the immediately preceding point and are
// zero by convention on the first point. ElevationKnown is false when
// the elevation fell back to the 0.0 sentinel.
type Point struct {
	Easting        float64
	Northing       float64
	Elevation      float64
	Distance       float64
	DeltaElevation float64
	Azimuth        float64
	ElevationKnown bool
}

// Profile is the complete route profile for one conversion run.
// TotalAscent and TotalDescent are only meaningful when
// ElevationComplete is true.
type Profile struct {
	CRS               string
	Points            []Point
	TotalDistance     float64
	TotalAscent       float64
	TotalDescent      float64
	ElevationComplete bool
}

// Builder runs the conversion pipeline for a single route. It holds no
// per-run state; concurrent runs may share one Builder.
type Builder struct {
	Projection geo.Projection
	Resolver   height.Resolver
	Log        zerolog.Logger
}

// Build projects the raw points, resolves their elevations and derives
// distance, azimuth and elevation delta per point in a single ordered
// pass. Distance and azimuth are both computed on the planar basis so
// the two always describe the same segment geometry.
func (b *Builder) Build(ctx context.Context, points []gpx.RawPoint) (*Profile, error) {
	if len(points) == 0 {
		return nil, gpx.ErrNoPoints
	}

	p := &Profile{
		CRS:               b.Projection.Name(),
		Points:            make([]Point, 0, len(points)),
		ElevationComplete: true,
	}

	for i, raw := range points {
		e, n := b.Projection.Project(raw.Latitude, raw.Longitude)

		ele, known := b.Resolver.Resolve(ctx, raw.Elevation, e, n)
		if !known {
			p.ElevationComplete = false
		}

		pt := Point{
			Easting:        e,
			Northing:       n,
			Elevation:      ele,
			ElevationKnown: known,
		}

		if i > 0 {
			prev := p.Points[i-1]
			pt.Distance = geo.Distance(prev.Easting, prev.Northing, e, n)
			pt.Azimuth = geo.Azimuth(prev.Easting, prev.Northing, e, n)
			pt.DeltaElevation = ele - prev.Elevation
		}

		p.Points = append(p.Points, pt)
	}

	aggregate(p)

	b.Log.Debug().
		Int("points", len(p.Points)).
		Float64("total_distance", p.TotalDistance).
		Bool("elevation_complete", p.ElevationComplete).
		Msg("Route profile built")

	return p, nil
}

// aggregate sums route totals over the pass results. Ascent and descent
// stay zero unless every elevation came from a real source; the sentinel
// must never be summed as if it were terrain.
func aggregate(p *Profile) {
	for _, pt := range p.Points[1:] {
		p.TotalDistance += pt.Distance
	}

	if !p.ElevationComplete {
		return
	}

	for _, pt := range p.Points[1:] {
		if pt.DeltaElevation > 0 {
			p.TotalAscent += pt.DeltaElevation
		} else {
			p.TotalDescent += -pt.DeltaElevation
		}
	}
}
