package diagram

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var seriesColors = []color.Color{
	color.RGBA{R: 220, G: 20, B: 60, A: 255},
	color.RGBA{R: 0, G: 0, B: 139, A: 255},
	color.RGBA{R: 0, G: 100, B: 0, A: 255},
	color.RGBA{R: 255, G: 140, B: 0, A: 255},
}

// ExportUnityProfile plots every unity check against section midpoint
// elevation with the allowable limit of 1.0.
func ExportUnityProfile(data ProfileData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title + " Buckling Unity Checks"
	p.X.Label.Text = "Unity"
	p.Y.Label.Text = "Elevation (m)"
	p.Legend.Top = true

	n := len(data.Sections)
	zmin, zmax := 0.0, 0.0
	if n > 0 {
		zmin, zmax = data.Sections[0].ZBot, data.Sections[n-1].ZTop
	}

	for k, series := range data.Unities {
		var pts plotter.XYs
		for i, v := range series {
			if math.IsNaN(v) || i >= n {
				continue
			}
			s := data.Sections[i]
			pts = append(pts, plotter.XY{X: v, Y: 0.5 * (s.ZBot + s.ZTop)})
		}
		if len(pts) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		c := seriesColors[k%len(seriesColors)]
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = c
		points.GlyphStyle.Color = c
		p.Add(line, points)
		if k < len(data.UnityLabels) {
			p.Legend.Add(data.UnityLabels[k], line)
		}
	}

	limit, err := plotter.NewLine(plotter.XYs{{X: 1, Y: zmin}, {X: 1, Y: zmax}})
	if err != nil {
		return err
	}
	limit.LineStyle.Width = vg.Points(1)
	limit.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	limit.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(limit)

	if err := addWaterline(p, 0, 1.2); err != nil {
		return err
	}
	p.X.Min = 0

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

// ExportColumnProfile draws the column outline, its ballast, and the
// still waterline.
func ExportColumnProfile(data ProfileData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title + " Column Profile"
	p.X.Label.Text = "Radius (m)"
	p.Y.Label.Text = "Elevation (m)"

	n := len(data.Sections)
	if n == 0 {
		return save(p, 6*vg.Inch, 8*vg.Inch, filename)
	}

	right := make(plotter.XYs, 0, n+1)
	right = append(right, plotter.XY{X: data.Sections[0].OuterRadius, Y: data.Sections[0].ZBot})
	for _, s := range data.Sections {
		right = append(right, plotter.XY{X: s.OuterRadius, Y: s.ZTop})
	}
	outline := make(plotter.XYs, 0, 2*len(right)+1)
	outline = append(outline, right...)
	for i := len(right) - 1; i >= 0; i-- {
		outline = append(outline, plotter.XY{X: -right[i].X, Y: right[i].Y})
	}
	outline = append(outline, right[0])

	shell, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	shell.LineStyle.Width = vg.Points(2)
	shell.LineStyle.Color = color.Black
	p.Add(shell)

	if data.HasBallast && data.BallastTop > data.Sections[0].ZBot {
		var fill plotter.XYs
		for _, pt := range right {
			if pt.Y < data.BallastTop {
				fill = append(fill, pt)
			}
		}
		fill = append(fill, plotter.XY{X: fill[len(fill)-1].X, Y: data.BallastTop})
		for i := len(fill) - 1; i >= 0; i-- {
			fill = append(fill, plotter.XY{X: -fill[i].X, Y: fill[i].Y})
		}
		ballast, err := plotter.NewPolygon(fill)
		if err != nil {
			return err
		}
		ballast.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
		ballast.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		p.Add(ballast)
	}

	if err := addWaterline(p, -1.5*data.MaxRadius, 1.5*data.MaxRadius); err != nil {
		return err
	}

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

func addWaterline(p *plot.Plot, x0, x1 float64) error {
	wl, err := plotter.NewLine(plotter.XYs{{X: x0, Y: 0}, {X: x1, Y: 0}})
	if err != nil {
		return err
	}
	wl.LineStyle.Width = vg.Points(1)
	wl.LineStyle.Color = color.RGBA{R: 30, G: 144, B: 255, A: 255}
	wl.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(wl)
	return nil
}

// save writes the plot in the format given by the file extension,
// defaulting to PNG.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
