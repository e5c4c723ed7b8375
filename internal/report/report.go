// Package report renders a route profile as a fixed-width text table.
package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DominikBaer/kroki/internal/profile"
)

const (
	ruleWidth = 100
	colWidth  = 12
)

// Format renders the profile as the Kroki report: a header, one row per
// point and trailing totals. Ascent and descent lines are emitted only
// when every point's elevation came from a real source; a point whose
// elevation is unresolved shows "N/A" instead of the sentinel.
func Format(p *profile.Profile) string {
	rule := strings.Repeat("=", ruleWidth)
	dash := strings.Repeat("-", ruleWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nKROKI - Route profile (%s)\n%s\n\n", rule, p.CRS, rule)

	fmt.Fprintf(&b, "%-4s %s %s %s %s %s %s\n",
		"Pt",
		pad("E (m)"), pad("N (m)"), pad("Dist (m)"),
		pad("Elev (m)"), pad("ΔElev (m)"), pad("Azim (°)"))
	b.WriteString(dash + "\n")

	for i, pt := range p.Points {
		elev := "N/A"
		if pt.ElevationKnown {
			elev = fmt.Sprintf("%.2f", pt.Elevation)
		}

		fmt.Fprintf(&b, "%-4d %12.2f %12.2f %12.2f %12s %12.2f %12.2f\n",
			i+1, pt.Easting, pt.Northing, pt.Distance,
			elev, pt.DeltaElevation, pt.Azimuth)
	}

	b.WriteString(dash + "\n")

	fmt.Fprintf(&b, "\nTotal distance: %.2f m\n", p.TotalDistance)
	if p.ElevationComplete {
		fmt.Fprintf(&b, "Total ascent : %.2f m\n", p.TotalAscent)
		fmt.Fprintf(&b, "Total descent: %.2f m\n", p.TotalDescent)
	}

	return b.String()
}

// pad right-aligns a header label by rune count, since fmt pads by
// bytes and two of the labels contain multi-byte runes.
func pad(s string) string {
	if n := colWidth - utf8.RuneCountInString(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}

	return s
}
