package diagram

import (
	"math"

	"github.com/alexiusacademia/gospar/internal/buckling"
	"github.com/alexiusacademia/gospar/internal/platform"
)

// NewProfileData collects the drawing data of one evaluated column.
// ballastTop is the elevation of the top of all ballast, or NaN when the
// column carries none.
func NewProfileData(title string, cr *platform.ColumnResults, ballastTop float64) ProfileData {
	data := ProfileData{
		Title:       title,
		BallastTop:  ballastTop,
		HasBallast:  !math.IsNaN(ballastTop),
		UnityLabels: buckling.UnityNames[:],
	}
	for _, r := range cr.Column.Radius {
		data.MaxRadius = math.Max(data.MaxRadius, r)
	}

	for i, s := range cr.Column.Sections {
		row := SectionRow{ZBot: s.ZBot, ZTop: s.ZTop, OuterRadius: s.OuterRadius()}
		for _, u := range cr.Buckling.Sections[i].Unities() {
			if u.Status == buckling.StatusUndefined {
				row.Undefined = true
				continue
			}
			row.MaxUnity = math.Max(row.MaxUnity, u.Value)
		}
		data.Sections = append(data.Sections, row)
	}

	for k := range buckling.UnityNames {
		data.Unities = append(data.Unities, cr.Buckling.Array(k))
	}
	return data
}
