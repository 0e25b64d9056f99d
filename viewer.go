// Command lab-4 renders topography boundary-condition data: a masked
// surface-height map and a land-fraction map.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"

	"github.com/GraveyardDuck/lab-4/internal/render"
	"github.com/GraveyardDuck/lab-4/internal/topo"
)

var (
	file   = flag.String("file", "", "path to a topography boundary-condition file in NetCDF format")
	outDir = flag.String("out", ".", "directory where the rendered figures are written")
)

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ds, err := topo.Open(*file)
	if err != nil {
		logger.Error("Could not open the boundary-condition file", "err", err)
		os.Exit(1)
	}
	defer ds.Close()
	logger.Info("boundary-condition summary", ds.Summary()...)

	height := topo.Height(ds.Geopotential())
	masked, err := topo.MaskOcean(height, ds.LandFraction())
	if err != nil {
		logger.Error("Could not mask ocean cells", "err", err)
		os.Exit(1)
	}

	// Height bands from 0 to 6 km in 0.5 km steps.
	levels := make([]float64, 13)
	floats.Span(levels, 0, 6)

	fig, err := render.Contour(masked, levels, "Surface height over land")
	if err != nil {
		logger.Error("Could not render the height figure", "err", err)
		os.Exit(1)
	}
	path := filepath.Join(*outDir, "height.png")
	if err := fig.WritePNG(path); err != nil {
		logger.Error("Could not write the height figure", "err", err)
		os.Exit(1)
	}
	logger.Info("wrote figure", "path", path)

	fig, err = render.Pseudocolor(ds.LandFraction(), "Land fraction")
	if err != nil {
		logger.Error("Could not render the land-fraction figure", "err", err)
		os.Exit(1)
	}
	path = filepath.Join(*outDir, "landfrac.png")
	if err := fig.WritePNG(path); err != nil {
		logger.Error("Could not write the land-fraction figure", "err", err)
		os.Exit(1)
	}
	logger.Info("wrote figure", "path", path)
}
