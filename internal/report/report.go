// Package report renders the PlayStation sales charts and the top-10 export.
//
// Charts are drawn with gonum/plot; the image format follows the output
// file extension (PNG for ".png"). Every write creates missing parent
// directories first and fully overwrites any previous artifact.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/JonMunkholm/psanalysis/internal/analysis"
	"github.com/JonMunkholm/psanalysis/internal/dataset"
)

// ErrIO wraps every directory creation and file write failure.
var ErrIO = errors.New("report i/o failure")

// TopCSVName is the export written next to the top-10 chart.
const TopCSVName = "top10_playstation.csv"

// Chart text.
const (
	GenreTitle  = "Total Global Sales per Genre (PlayStation)"
	GenreXLabel = "Genre"
	SalesLabel  = "Global Sales (millions)"
	TopTitle    = "Top 10 PlayStation Games by Global Sales"
)

// Options holds rendered chart dimensions.
type Options struct {
	GenreWidth  vg.Length
	GenreHeight vg.Length
	TopWidth    vg.Length
	TopHeight   vg.Length
}

// DefaultOptions returns 10x5 inch genre and 10x6 inch top-10 charts.
func DefaultOptions() Options {
	return Options{
		GenreWidth:  10 * vg.Inch,
		GenreHeight: 5 * vg.Inch,
		TopWidth:    10 * vg.Inch,
		TopHeight:   6 * vg.Inch,
	}
}

// Reporter writes chart and CSV artifacts.
type Reporter struct {
	opts Options
}

// New creates a Reporter. Zero dimensions fall back to DefaultOptions.
func New(opts Options) *Reporter {
	def := DefaultOptions()
	if opts.GenreWidth <= 0 {
		opts.GenreWidth = def.GenreWidth
	}
	if opts.GenreHeight <= 0 {
		opts.GenreHeight = def.GenreHeight
	}
	if opts.TopWidth <= 0 {
		opts.TopWidth = def.TopWidth
	}
	if opts.TopHeight <= 0 {
		opts.TopHeight = def.TopHeight
	}
	return &Reporter{opts: opts}
}

// GenreChart summarizes sales per genre and, when outputPath is not empty,
// saves a vertical bar chart of the summary there. Genres run left to right
// in descending order. The summary is returned either way.
func (r *Reporter) GenreChart(t *dataset.Table, outputPath string) ([]analysis.GenreSales, error) {
	summary := analysis.GenreSalesSummary(t)
	if outputPath == "" {
		return summary, nil
	}

	bc := barSpec{
		Title:  GenreTitle,
		XLabel: GenreXLabel,
		YLabel: SalesLabel,
		Labels: make([]string, len(summary)),
		Values: make([]float64, len(summary)),
	}
	for i, g := range summary {
		bc.Labels[i] = g.Genre
		bc.Values[i] = g.GlobalSales
	}

	p, err := newBarPlot(bc, vg.Points(20))
	if err != nil {
		return nil, err
	}
	if err := savePlot(p, r.opts.GenreWidth, r.opts.GenreHeight, outputPath); err != nil {
		return nil, err
	}
	return summary, nil
}

// TopCSVPath returns where Top10ChartAndCSV writes its CSV for a chart path.
func TopCSVPath(chartPath string) string {
	return filepath.Join(filepath.Dir(chartPath), TopCSVName)
}

// Top10ChartAndCSV ranks the ten best-selling games, writes them to
// TopCSVPath(outputPath) and saves a horizontal bar chart at outputPath with
// the best seller on top. The ranking is returned in descending order.
func (r *Reporter) Top10ChartAndCSV(t *dataset.Table, outputPath string) ([]analysis.GameSales, error) {
	if outputPath == "" {
		return nil, errors.New("top-10 chart: output path is required")
	}

	top := analysis.TopNBySales(t, analysis.DefaultTopN)

	if err := writeTopCSVFile(TopCSVPath(outputPath), top); err != nil {
		return nil, err
	}

	asc := analysis.Ascending(top)
	bc := barSpec{
		Title:      TopTitle,
		XLabel:     SalesLabel,
		Labels:     make([]string, len(asc)),
		Values:     make([]float64, len(asc)),
		Horizontal: true,
	}
	for i, g := range asc {
		bc.Labels[i] = g.Label()
		bc.Values[i] = g.GlobalSales
	}

	p, err := newBarPlot(bc, vg.Points(18))
	if err != nil {
		return nil, err
	}
	if err := savePlot(p, r.opts.TopWidth, r.opts.TopHeight, outputPath); err != nil {
		return nil, err
	}
	return top, nil
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory %s: %w", ErrIO, dir, err)
	}
	return nil
}

func savePlot(p *plot.Plot, w, h vg.Length, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("%w: save chart %s: %w", ErrIO, path, err)
	}
	return nil
}

func writeTopCSVFile(path string, rows []analysis.GameSales) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, path, err)
	}

	if err := WriteTopCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIO, path, err)
	}
	return nil
}
