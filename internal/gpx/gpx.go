// Package gpx extracts route points from GPX documents.
package gpx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformed indicates the document could not be parsed as GPX at all.
	ErrMalformed = errors.New("malformed GPX document")
	// ErrNoPoints indicates no usable points in any point category.
	ErrNoPoints = errors.New("no track, route or way points found")
)

// RawPoint is a single waypoint as read from the source document.
// Elevation is nil when the point carries no usable ele element.
type RawPoint struct {
	Elevation *float64
	Latitude  float64
	Longitude float64
}

// waypoint mirrors a trkpt/rtept/wpt element. Coordinates are kept as
// strings so a missing attribute is distinguishable from zero.
type waypoint struct {
	Lat string `xml:"lat,attr"`
	Lon string `xml:"lon,attr"`
	Ele string `xml:"ele"`
}

type document struct {
	Tracks []struct {
		Segments []struct {
			Points []waypoint `xml:"trkpt"`
		} `xml:"trkseg"`
	} `xml:"trk"`
	Routes []struct {
		Points []waypoint `xml:"rtept"`
	} `xml:"rte"`
	Waypoints []waypoint `xml:"wpt"`
}

// Point categories are tried in order, first non-empty result wins.
// Later categories are never merged in.
var strategies = []func(*document) []waypoint{
	func(d *document) []waypoint { // track points
		var pts []waypoint
		for _, trk := range d.Tracks {
			for _, seg := range trk.Segments {
				pts = append(pts, seg.Points...)
			}
		}
		return pts
	},
	func(d *document) []waypoint { // route points
		var pts []waypoint
		for _, rte := range d.Routes {
			pts = append(pts, rte.Points...)
		}
		return pts
	},
	func(d *document) []waypoint { // standalone waypoints
		return d.Waypoints
	},
}

// Extract parses GPX bytes and returns the points of the first non-empty
// category (tracks, then routes, then standalone waypoints) in document
// order. Points missing a lat or lon attribute are skipped individually.
func Extract(data []byte) ([]RawPoint, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	for _, extract := range strategies {
		raw := extract(&doc)
		if len(raw) == 0 {
			continue
		}

		points := make([]RawPoint, 0, len(raw))
		for _, wp := range raw {
			pt, ok := convert(wp)
			if !ok {
				continue
			}
			points = append(points, pt)
		}

		if len(points) > 0 {
			return points, nil
		}
	}

	return nil, ErrNoPoints
}

// convert turns a raw waypoint into a RawPoint. Returns false when the
// required coordinate attributes are absent or unparsable.
func convert(wp waypoint) (RawPoint, bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(wp.Lat), 64)
	if err != nil {
		return RawPoint{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(wp.Lon), 64)
	if err != nil {
		return RawPoint{}, false
	}

	pt := RawPoint{Latitude: lat, Longitude: lon}

	// Elevation is optional; an empty or unparsable ele is treated as
	// absent, never as an error.
	if ele := strings.TrimSpace(wp.Ele); ele != "" {
		if v, err := strconv.ParseFloat(ele, 64); err == nil {
			pt.Elevation = &v
		}
	}

	return pt, true
}
