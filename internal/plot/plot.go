package plot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"tspga/internal/geom"
)

// DefaultSizeIn is the square route image side in inches
const DefaultSizeIn = 9

var (
	routeColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	pointColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	meanColor  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// Series is one named curve over generations
type Series struct {
	Name   string
	Values []float64
}

// Route draws the closed tour as a polyline over a scatter of the points and saves it.
// The image format follows the path extension (png, svg, pdf).
func Route(points geom.PointSet, route []int, title, path string, sizeIn float64) error {
	if len(route) != len(points) {
		return fmt.Errorf("plot: route has %d cities, point set has %d", len(route), len(points))
	}
	if sizeIn <= 0 {
		sizeIn = DefaultSizeIn
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	tour := make(plotter.XYs, len(route)+1)
	for i, city := range route {
		if city < 0 || city >= len(points) {
			return fmt.Errorf("plot: route[%d]=%d out of range", i, city)
		}
		tour[i].X = points[city].X
		tour[i].Y = points[city].Y
	}
	// close the loop back to the first city
	tour[len(route)] = tour[0]

	line, err := plotter.NewLine(tour)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = routeColor

	scatter, err := plotter.NewScatter(pointsXY(points))
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = pointColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(plotter.NewGrid(), line, scatter)
	squareAxes(p, points)

	return save(p, vg.Length(sizeIn)*vg.Inch, vg.Length(sizeIn)*vg.Inch, path)
}

// History draws one line per series, x is the generation index
func History(series []Series, title, path string) error {
	if len(series) == 0 {
		return fmt.Errorf("plot: no series to draw")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Tour length"

	colors := []color.Color{routeColor, meanColor, pointColor}
	for i, s := range series {
		pts := make(plotter.XYs, len(s.Values))
		for g, v := range s.Values {
			pts[g].X = float64(g)
			pts[g].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot: series %q: %w", s.Name, err)
		}
		line.LineStyle.Color = colors[i%len(colors)]
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	p.Legend.Top = true

	return save(p, 6*vg.Inch, 4*vg.Inch, path)
}

func pointsXY(points geom.PointSet) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	return xys
}

// squareAxes gives both axes the same range so circles look like circles
func squareAxes(p *plot.Plot, points geom.PointSet) {
	lo, hi := points.Bounds()
	span := hi.X - lo.X
	if dy := hi.Y - lo.Y; dy > span {
		span = dy
	}
	if span == 0 {
		span = 1
	}
	pad := span * 0.05
	cx, cy := (lo.X+hi.X)/2, (lo.Y+hi.Y)/2
	half := span/2 + pad
	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
}

func save(p *plot.Plot, w, h vg.Length, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return p.Save(w, h, path)
}
