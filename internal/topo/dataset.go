package topo

import (
	"fmt"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/ctessum/sparse"
)

// Variable names in CAM topography boundary-condition files.
const (
	geopotentialVar = "PHIS"
	landFracVar     = "LANDFRAC"
)

// Dataset provides access to a topography boundary-condition file. The
// file is read fully at open time and is read-only thereafter.
type Dataset struct {
	nc       api.Group
	lat      []float64
	lon      []float64
	phis     *Grid
	landFrac *Grid
}

// Open opens a NetCDF boundary-condition file and loads its coordinate
// vectors and the surface geopotential and land-fraction grids.
func Open(path string) (*Dataset, error) {
	nc, err := netcdf.Open(path)
	if err != nil {
		return nil, err
	}
	d := &Dataset{nc: nc}
	d.lat, err = coordValues(nc, "lat")
	if err != nil {
		nc.Close()
		return nil, err
	}
	d.lon, err = coordValues(nc, "lon")
	if err != nil {
		nc.Close()
		return nil, err
	}
	d.phis, err = d.readGrid(geopotentialVar)
	if err != nil {
		nc.Close()
		return nil, err
	}
	d.landFrac, err = d.readGrid(landFracVar)
	if err != nil {
		nc.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying file.
func (d *Dataset) Close() {
	d.nc.Close()
}

// Geopotential returns the surface geopotential grid (m²/s²).
func (d *Dataset) Geopotential() *Grid {
	return d.phis
}

// LandFraction returns the land-fraction grid, with values in [0,1].
func (d *Dataset) LandFraction() *Grid {
	return d.landFrac
}

// Summary returns summary information about the dataset suitable for
// logging.
func (d *Dataset) Summary() []any {
	return []any{
		"dims", []string{"lat", "lon"},
		"grids", []string{geopotentialVar, landFracVar},
		"variables", d.nc.ListVariables(),
		"latCnt", len(d.lat),
		"lonCnt", len(d.lon),
	}
}

// coordValues reads a coordinate vector, accepting either float32 or
// float64 storage.
func coordValues(nc api.Group, name string) ([]float64, error) {
	vg, err := nc.GetVarGetter(name)
	if err != nil {
		return nil, err
	}
	v, err := vg.Values()
	if err != nil {
		return nil, err
	}
	switch vv := v.(type) {
	case []float64:
		return vv, nil
	case []float32:
		out := make([]float64, len(vv))
		for i, x := range vv {
			out[i] = float64(x)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("topo: coordinate %q has unsupported type %T", name, v)
	}
}

// readGrid reads a named lat/lon variable into a Grid, squeezing a
// leading length-1 record dimension if the file carries one.
func (d *Dataset) readGrid(name string) (*Grid, error) {
	vg, err := d.nc.GetVarGetter(name)
	if err != nil {
		return nil, err
	}
	v, err := vg.Values()
	if err != nil {
		return nil, err
	}
	data, err := toDense(v)
	if err != nil {
		return nil, fmt.Errorf("topo: variable %q: %v", name, err)
	}
	if data.Shape[0] != len(d.lat) || data.Shape[1] != len(d.lon) {
		return nil, fmt.Errorf("topo: variable %q has shape %v, want [%d %d]",
			name, data.Shape, len(d.lat), len(d.lon))
	}
	units := ""
	if u, ok := vg.Attributes().Get("units"); ok {
		if s, ok := u.(string); ok {
			units = s
		}
	}
	return &Grid{
		Name:  name,
		Units: units,
		Lat:   d.lat,
		Lon:   d.lon,
		Data:  data,
	}, nil
}

// toDense converts the nested slices returned by the NetCDF reader into
// a two-dimensional dense array.
func toDense(v any) (*sparse.DenseArray, error) {
	// Squeeze a length-1 record dimension.
	switch vv := v.(type) {
	case [][][]float64:
		if len(vv) != 1 {
			return nil, fmt.Errorf("record dimension has length %d, want 1", len(vv))
		}
		v = vv[0]
	case [][][]float32:
		if len(vv) != 1 {
			return nil, fmt.Errorf("record dimension has length %d, want 1", len(vv))
		}
		v = vv[0]
	}
	switch vv := v.(type) {
	case [][]float64:
		data := sparse.ZerosDense(len(vv), len(vv[0]))
		k := 0
		for _, row := range vv {
			for _, x := range row {
				data.Elements[k] = x
				k++
			}
		}
		return data, nil
	case [][]float32:
		data := sparse.ZerosDense(len(vv), len(vv[0]))
		k := 0
		for _, row := range vv {
			for _, x := range row {
				data.Elements[k] = float64(x)
				k++
			}
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported type %T", v)
	}
}
