// Package pipeline runs the PlayStation sales analysis end to end:
// load, clean, rank, then write the charts and the top-10 export.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/JonMunkholm/psanalysis/internal/analysis"
	"github.com/JonMunkholm/psanalysis/internal/config"
	"github.com/JonMunkholm/psanalysis/internal/dataset"
	"github.com/JonMunkholm/psanalysis/internal/logging"
	"github.com/JonMunkholm/psanalysis/internal/report"
)

// Result lists what a run produced.
type Result struct {
	Stats         dataset.CleanStats
	Top           []analysis.GameSales
	Genres        []analysis.GenreSales
	GenrePlotPath string
	TopPlotPath   string
	TopCSVPath    string
}

// Run executes every stage in order, writing the human-readable report to
// out. The first failing stage aborts the run and its error is returned.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) (*Result, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	dataPath := cfg.Paths.DataPath
	if _, err := os.Stat(dataPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s: download Video_Games.csv and place it in the Data folder",
				dataset.ErrFileNotFound, dataPath)
		}
		return nil, fmt.Errorf("stat dataset: %w", err)
	}

	raw, err := dataset.LoadRaw(dataPath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	logger.Info("dataset loaded", "path", dataPath, "rows", raw.Len(), "columns", len(raw.Header))

	table, stats := dataset.CleanWithStats(raw)
	logger.Info("dataset cleaned",
		"rows", stats.Total,
		"missing_required", stats.MissingRequired,
		"other_platform", stats.OtherPlatform,
		"retained", stats.Retained,
	)

	res := &Result{
		Stats:         stats,
		GenrePlotPath: cfg.GenrePlotPath(),
		TopPlotPath:   cfg.TopPlotPath(),
		TopCSVPath:    report.TopCSVPath(cfg.TopPlotPath()),
	}

	res.Top = analysis.TopNBySales(table, analysis.DefaultTopN)
	if _, err := fmt.Fprintln(out, "Top 10 PlayStation games by global sales:"); err != nil {
		return nil, fmt.Errorf("print ranking: %w", err)
	}
	if err := report.RenderTopTable(out, res.Top); err != nil {
		return nil, fmt.Errorf("print ranking: %w", err)
	}

	reporter := report.New(chartOptions(cfg.Charts))

	res.Genres, err = reporter.GenreChart(table, res.GenrePlotPath)
	if err != nil {
		return nil, fmt.Errorf("genre chart: %w", err)
	}
	logger.Debug("genre chart written", "path", res.GenrePlotPath, "genres", len(res.Genres))
	if _, err := fmt.Fprintf(out, "Genre sales plot saved to %s\n", res.GenrePlotPath); err != nil {
		return nil, err
	}

	if _, err := reporter.Top10ChartAndCSV(table, res.TopPlotPath); err != nil {
		return nil, fmt.Errorf("top-10 report: %w", err)
	}
	logger.Debug("top-10 report written", "chart", res.TopPlotPath, "csv", res.TopCSVPath, "games", len(res.Top))
	if _, err := fmt.Fprintf(out, "Top 10 chart saved to %s\nTop 10 CSV saved to %s\n", res.TopPlotPath, res.TopCSVPath); err != nil {
		return nil, err
	}

	logger.Info("analysis complete", "duration", time.Since(start).Round(time.Millisecond))
	return res, nil
}

// chartOptions converts configured inch sizes to report options.
func chartOptions(c config.ChartConfig) report.Options {
	return report.Options{
		GenreWidth:  vg.Length(c.Width) * vg.Inch,
		GenreHeight: vg.Length(c.GenreHeight) * vg.Inch,
		TopWidth:    vg.Length(c.Width) * vg.Inch,
		TopHeight:   vg.Length(c.TopHeight) * vg.Inch,
	}
}
