package topo

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"
	"github.com/ctessum/unit"
)

// gravity is the standard acceleration due to gravity, used to convert
// surface geopotential to elevation.
var gravity = unit.New(9.8, unit.MeterPerSecond2)

const metersPerKilometer = 1000

// Grid is a two-dimensional field on a latitude-longitude grid, together
// with its name, physical units, and coordinate vectors. Data has shape
// [len(Lat), len(Lon)].
type Grid struct {
	Name  string
	Units string
	Lat   []float64
	Lon   []float64
	Data  *sparse.DenseArray
}

// Height converts a surface geopotential field (m²/s²) to an elevation
// field in kilometers. The result shares the source's coordinate vectors
// and preserves its shape.
func Height(geopotential *Grid) *Grid {
	h := sparse.ZerosDense(geopotential.Data.Shape...)
	div := gravity.Value() * metersPerKilometer
	for i, v := range geopotential.Data.Elements {
		h.Elements[i] = v / div
	}
	return &Grid{
		Name:  "height",
		Units: "km",
		Lat:   geopotential.Lat,
		Lon:   geopotential.Lon,
		Data:  h,
	}
}

// MaskOcean returns a copy of g where every cell whose companion land
// fraction is not strictly greater than zero is replaced with NaN.
// Neither input is modified. Reapplying the mask to an already-masked
// grid yields the same result.
func MaskOcean(g, landFrac *Grid) (*Grid, error) {
	if err := sameShape(g, landFrac); err != nil {
		return nil, err
	}
	out := sparse.ZerosDense(g.Data.Shape...)
	for i, f := range landFrac.Data.Elements {
		if f > 0 {
			out.Elements[i] = g.Data.Elements[i]
		} else {
			out.Elements[i] = math.NaN()
		}
	}
	return &Grid{
		Name:  g.Name,
		Units: g.Units,
		Lat:   g.Lat,
		Lon:   g.Lon,
		Data:  out,
	}, nil
}

func sameShape(a, b *Grid) error {
	if len(a.Lat) != len(b.Lat) || len(a.Lon) != len(b.Lon) {
		return fmt.Errorf("topo: coordinate mismatch between %q (%d×%d) and %q (%d×%d)",
			a.Name, len(a.Lat), len(a.Lon), b.Name, len(b.Lat), len(b.Lon))
	}
	if len(a.Data.Shape) != len(b.Data.Shape) {
		return fmt.Errorf("topo: shape mismatch between %q %v and %q %v",
			a.Name, a.Data.Shape, b.Name, b.Data.Shape)
	}
	for i, s := range a.Data.Shape {
		if s != b.Data.Shape[i] {
			return fmt.Errorf("topo: shape mismatch between %q %v and %q %v",
				a.Name, a.Data.Shape, b.Name, b.Data.Shape)
		}
	}
	return nil
}
