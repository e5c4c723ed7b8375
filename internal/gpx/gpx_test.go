package gpx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const trackDoc = `<?xml version="1.0" encoding="UTF-8"?>
<gpx xmlns="http://www.topografix.com/GPX/1/1" version="1.1" creator="test">
  <trk>
    <trkseg>
      <trkpt lat="46.95" lon="7.44"><ele>540.2</ele></trkpt>
      <trkpt lat="46.96" lon="7.45"><ele>555.0</ele></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="46.97" lon="7.46"></trkpt>
    </trkseg>
  </trk>
  <rte>
    <rtept lat="10.0" lon="10.0"><ele>1.0</ele></rtept>
  </rte>
  <wpt lat="20.0" lon="20.0"><ele>2.0</ele></wpt>
</gpx>`

func TestExtractTrackPrecedence(t *testing.T) {
	points, err := Extract([]byte(trackDoc))
	require.NoError(t, err)

	// Route points and waypoints must not leak in alongside track points.
	require.Len(t, points, 3)
	require.Equal(t, 46.95, points[0].Latitude)
	require.Equal(t, 7.44, points[0].Longitude)
	require.NotNil(t, points[0].Elevation)
	require.Equal(t, 540.2, *points[0].Elevation)
	require.Nil(t, points[2].Elevation)
}

func TestExtractRouteFallback(t *testing.T) {
	doc := `<gpx xmlns="http://www.topografix.com/GPX/1/1">
  <rte>
    <rtept lat="47.0" lon="8.0"><ele>600</ele></rtept>
    <rtept lat="47.1" lon="8.1"/>
  </rte>
  <wpt lat="20.0" lon="20.0"/>
</gpx>`

	points, err := Extract([]byte(doc))
	require.NoError(t, err)
	require.Len(t, points, 2)
	require.Equal(t, 47.0, points[0].Latitude)
}

func TestExtractWaypointFallback(t *testing.T) {
	doc := `<gpx xmlns="http://www.topografix.com/GPX/1/1">
  <wpt lat="47.2" lon="8.2"><ele>700.5</ele></wpt>
</gpx>`

	points, err := Extract([]byte(doc))
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.Equal(t, 700.5, *points[0].Elevation)
}

func TestExtractNoPoints(t *testing.T) {
	doc := `<gpx xmlns="http://www.topografix.com/GPX/1/1">
  <metadata><name>empty</name></metadata>
</gpx>`

	_, err := Extract([]byte(doc))
	require.ErrorIs(t, err, ErrNoPoints)
}

func TestExtractMalformedDocument(t *testing.T) {
	_, err := Extract([]byte(`<gpx><trk><trkseg>`))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestExtractSkipsPointsWithoutCoordinates(t *testing.T) {
	doc := `<gpx xmlns="http://www.topografix.com/GPX/1/1">
  <trk><trkseg>
    <trkpt lat="46.95" lon="7.44"/>
    <trkpt lon="7.45"/>
    <trkpt lat="borken" lon="7.46"/>
    <trkpt lat="46.98" lon="7.47"/>
  </trkseg></trk>
</gpx>`

	points, err := Extract([]byte(doc))
	require.NoError(t, err)
	require.Len(t, points, 2)
	require.Equal(t, 46.95, points[0].Latitude)
	require.Equal(t, 46.98, points[1].Latitude)
}

func TestExtractUnparsableElevationIsAbsent(t *testing.T) {
	doc := `<gpx xmlns="http://www.topografix.com/GPX/1/1">
  <trk><trkseg>
    <trkpt lat="46.95" lon="7.44"><ele>n/a</ele></trkpt>
    <trkpt lat="46.96" lon="7.45"><ele> 512.75 </ele></trkpt>
  </trkseg></trk>
</gpx>`

	points, err := Extract([]byte(doc))
	require.NoError(t, err)
	require.Len(t, points, 2)
	require.Nil(t, points[0].Elevation)
	require.Equal(t, 512.75, *points[1].Elevation)
}

func TestExtractCategoryWithOnlyMalformedPointsFallsThrough(t *testing.T) {
	doc := `<gpx xmlns="http://www.topografix.com/GPX/1/1">
  <trk><trkseg><trkpt lon="7.44"/></trkseg></trk>
  <rte><rtept lat="47.0" lon="8.0"/></rte>
</gpx>`

	points, err := Extract([]byte(doc))
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.Equal(t, 47.0, points[0].Latitude)
}
