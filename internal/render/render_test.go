package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ctessum/sparse"

	"github.com/GraveyardDuck/lab-4/internal/topo"
)

func testGrid(vals [][]float64, units string) *topo.Grid {
	nLat, nLon := len(vals), len(vals[0])
	data := sparse.ZerosDense(nLat, nLon)
	for i, row := range vals {
		for j, v := range row {
			data.Set(v, i, j)
		}
	}
	lat := make([]float64, nLat)
	lon := make([]float64, nLon)
	for i := range lat {
		lat[i] = -10 + 5*float64(i)
	}
	for j := range lon {
		lon[j] = 10 * float64(j)
	}
	return &topo.Grid{Name: "test", Units: units, Lat: lat, Lon: lon, Data: data}
}

func TestContourWritePNG(t *testing.T) {
	nan := math.NaN()
	g := testGrid([][]float64{
		{0.1, 0.5, nan, 2.2},
		{1.4, nan, 3.8, 4.4},
		{nan, 2.9, 5.1, 0.3},
	}, "km")
	levels := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5, 5.5, 6}
	fig, err := Contour(g, levels, "test contour")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "contour.png")
	if err := fig.WritePNG(path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("wrote an empty PNG")
	}
}

func TestContourTooFewLevels(t *testing.T) {
	g := testGrid([][]float64{{1, 2}, {3, 4}}, "km")
	if _, err := Contour(g, []float64{1}, "bad"); err == nil {
		t.Error("want error for a single level, got nil")
	}
}

func TestPseudocolorWritePNG(t *testing.T) {
	g := testGrid([][]float64{
		{0, 0.25, 0.5, 1},
		{1, 0.75, 0, 0.1},
		{0.9, 1, 0.33, 0},
	}, "fraction")
	fig, err := Pseudocolor(g, "test land fraction")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "landfrac.png")
	if err := fig.WritePNG(path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("wrote an empty PNG")
	}
}

func TestGridXYZ(t *testing.T) {
	g := testGrid([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}, "km")
	xyz := gridXYZ{g}
	c, r := xyz.Dims()
	if c != 3 || r != 2 {
		t.Fatalf("Dims() = %d, %d, want 3, 2", c, r)
	}
	if got := xyz.Z(2, 1); got != 6 {
		t.Errorf("Z(2, 1) = %g, want 6", got)
	}
	if got := xyz.X(1); got != 10 {
		t.Errorf("X(1) = %g, want 10", got)
	}
	if got := xyz.Y(1); got != -5 {
		t.Errorf("Y(1) = %g, want -5", got)
	}
}
