// Package render draws latitude-longitude grids as PNG figures.
package render

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/GraveyardDuck/lab-4/internal/topo"
)

const (
	figWidth  = 7 * vg.Inch
	figHeight = 5.5 * vg.Inch
	legendH   = 0.8 * vg.Inch
)

// Figure is a rendered map plus the color scale it was drawn with.
type Figure struct {
	plot  *plot.Plot
	cm    palette.ColorMap
	units string
}

// gridXYZ adapts a Grid to the plotter.GridXYZ interface.
type gridXYZ struct {
	g *topo.Grid
}

func (g gridXYZ) Dims() (c, r int)   { return len(g.g.Lon), len(g.g.Lat) }
func (g gridXYZ) Z(c, r int) float64 { return g.g.Data.Get(r, c) }
func (g gridXYZ) X(c int) float64    { return g.g.Lon[c] }
func (g gridXYZ) Y(r int) float64    { return g.g.Lat[r] }

// Contour draws g as filled bands quantized to the given level
// boundaries, with contour lines at the same levels. Cells holding NaN
// are left blank. The levels must be increasing.
func Contour(g *topo.Grid, levels []float64, title string) (*Figure, error) {
	if len(levels) < 2 {
		return nil, fmt.Errorf("render: need at least 2 contour levels, got %d", len(levels))
	}
	p, err := newMapPlot(title)
	if err != nil {
		return nil, err
	}
	cm := moreland.ExtendedKindlmann()
	cm.SetMin(levels[0])
	cm.SetMax(levels[len(levels)-1])
	data := gridXYZ{g}
	bands := plotter.NewHeatMap(data, cm.Palette(len(levels)-1))
	bands.Min = levels[0]
	bands.Max = levels[len(levels)-1]
	lines := plotter.NewContour(data, levels, cm.Palette(len(levels)))
	p.Add(bands, lines)
	return &Figure{plot: p, cm: cm, units: g.Units}, nil
}

// Pseudocolor draws g as a cell-colored map with a continuous palette
// over [0,1].
func Pseudocolor(g *topo.Grid, title string) (*Figure, error) {
	p, err := newMapPlot(title)
	if err != nil {
		return nil, err
	}
	cm := moreland.SmoothBlueTan()
	cm.SetMin(0)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(gridXYZ{g}, cm.Palette(255))
	hm.Min = 0
	hm.Max = 1
	p.Add(hm)
	return &Figure{plot: p, cm: cm, units: g.Units}, nil
}

func newMapPlot(title string) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	return p, nil
}

// WritePNG writes the figure to path, with a horizontal color-bar
// legend in a strip below the map.
func (f *Figure) WritePNG(path string) error {
	c := vgimg.New(figWidth, figHeight)
	dc := draw.New(c)
	mainc := draw.Crop(dc, 0, 0, legendH, 0)
	legendc := draw.Crop(dc, 0, 0, 0, legendH-figHeight)

	f.plot.Draw(mainc)

	l, err := plot.New()
	if err != nil {
		return err
	}
	l.Add(&plotter.ColorBar{ColorMap: f.cm})
	l.HideY()
	l.X.Padding = 0
	l.X.Label.Text = f.units
	l.Draw(legendc)

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
