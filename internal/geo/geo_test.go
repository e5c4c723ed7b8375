package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLV95ReferencePoint(t *testing.T) {
	// The Bern reference point of the swisstopo approximation formulas
	// maps exactly onto the formula constants.
	e, n := LV95{}.Project(169028.66/3600.0, 26782.5/3600.0)
	require.InDelta(t, 2600072.37, e, 0.001)
	require.InDelta(t, 1200147.07, n, 0.001)
}

func TestLV95Orientation(t *testing.T) {
	p := LV95{}
	e0, n0 := p.Project(46.95, 7.44)

	e1, _ := p.Project(46.95, 7.45)
	require.Greater(t, e1, e0, "easting grows with longitude")

	_, n2 := p.Project(46.96, 7.44)
	require.Greater(t, n2, n0, "northing grows with latitude")
}

func TestByName(t *testing.T) {
	p, err := ByName("lv95")
	require.NoError(t, err)
	require.Equal(t, "LV95", p.Name())

	_, err = ByName("utm32")
	require.Error(t, err)
}

func TestDistance(t *testing.T) {
	require.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-9)
	require.InDelta(t, 0.0, Distance(7, 7, 7, 7), 1e-9)
}

func TestAzimuth(t *testing.T) {
	tests := []struct {
		name           string
		e2, n2, expect float64
	}{
		{"north", 0, 1, 0},
		{"east", 1, 0, 90},
		{"south", 0, -1, 180},
		{"west", -1, 0, 270},
		{"southwest", -1, -1, 225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Azimuth(0, 0, tt.e2, tt.n2)
			require.InDelta(t, tt.expect, got, 1e-9)
			require.GreaterOrEqual(t, got, 0.0)
			require.Less(t, got, 360.0)
		})
	}
}
