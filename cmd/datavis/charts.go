package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/datavis/barchart"
	"github.com/midbel/datavis/linechart"
	"github.com/midbel/datavis/source"
)

var (
	barFile     string
	barOut      string
	barCategory string
	barValue    string
	barLocale   string
	barFill     string
	barPadding  float64
	barWidth    float64
	barHeight   float64

	linesFile    string
	linesOut     string
	linesPin     []string
	linesBrush   string
	linesWidth   float64
	linesHeight  float64
	linesContext float64
	linesRest    float64
	linesDimmed  float64

	buildDir string
)

var errBrush = errors.New("brush should be written X0:X1")

func newBarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Draw the bar chart of the most visited places",
		Args:  cobra.NoArgs,
		RunE:  runBarCmd,
	}
	cmd.Flags().StringVar(&barFile, "file", defaultBarFile, "CSV/XLSX file or URL")
	cmd.Flags().StringVarP(&barOut, "out", "o", "-", "output file (- for stdout)")
	addBarFlags(cmd)
	return cmd
}

func newLinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines",
		Short: "Draw the fertility line chart",
		Args:  cobra.NoArgs,
		RunE:  runLinesCmd,
	}
	cmd.Flags().StringVar(&linesFile, "file", defaultLinesFile, "CSV/XLSX file or URL")
	cmd.Flags().StringVarP(&linesOut, "out", "o", "-", "output file (- for stdout)")
	cmd.Flags().StringSliceVar(&linesPin, "pin", nil, "name or code of a serie to pin (repeatable)")
	cmd.Flags().StringVar(&linesBrush, "brush", "", "selection on the overview in pixels (X0:X1)")
	addLinesFlags(cmd)
	return cmd
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Draw both charts into a directory",
		Args:  cobra.NoArgs,
		RunE:  runBuildCmd,
	}
	cmd.Flags().StringVar(&barFile, "bar-file", defaultBarFile, "CSV/XLSX file or URL of the bar chart")
	cmd.Flags().StringVar(&linesFile, "lines-file", defaultLinesFile, "CSV/XLSX file or URL of the line chart")
	cmd.Flags().StringVar(&buildDir, "out", ".", "output directory")
	addBarFlags(cmd)
	addLinesFlags(cmd)
	return cmd
}

func addBarFlags(cmd *cobra.Command) {
	def := barchart.DefaultOptions()
	cmd.Flags().StringVar(&barCategory, "category", def.Category, "column of the categories")
	cmd.Flags().StringVar(&barValue, "value", def.Value, "column of the values")
	cmd.Flags().StringVar(&barLocale, "locale", def.Locale, "locale used to format the values")
	cmd.Flags().StringVar(&barFill, "fill", def.Fill, "color of the bars")
	cmd.Flags().Float64Var(&barPadding, "padding", def.Padding, "padding between bands (0-1)")
	cmd.Flags().Float64Var(&barWidth, "bar-width", def.Width, "width of the bar chart")
	cmd.Flags().Float64Var(&barHeight, "bar-height", def.Height, "height of the bar chart")
}

func addLinesFlags(cmd *cobra.Command) {
	var (
		layout = linechart.DefaultLayout()
		style  = linechart.DefaultStyle()
	)
	cmd.Flags().Float64Var(&linesWidth, "lines-width", layout.Width, "width of the focus chart")
	cmd.Flags().Float64Var(&linesHeight, "lines-height", layout.Height, "height of the focus chart")
	cmd.Flags().Float64Var(&linesContext, "context-height", layout.ContextHeight, "height of the overview")
	cmd.Flags().Float64Var(&linesRest, "opacity-rest", style.Rest, "opacity of the lines when nothing is selected")
	cmd.Flags().Float64Var(&linesDimmed, "opacity-dimmed", style.Dimmed, "opacity of the lines not selected")
}

func barOptions(cmd *cobra.Command, fileFlag string) barchart.Options {
	cfg := fileCfg.Bar
	applyStringConfig(cmd, fileFlag, &barFile, cfg.File)
	applyStringConfig(cmd, "category", &barCategory, cfg.Category)
	applyStringConfig(cmd, "value", &barValue, cfg.Value)
	applyStringConfig(cmd, "locale", &barLocale, cfg.Locale)
	applyStringConfig(cmd, "fill", &barFill, cfg.Fill)
	applyFloatConfig(cmd, "padding", &barPadding, cfg.Padding)
	applyFloatConfig(cmd, "bar-width", &barWidth, cfg.Width)
	applyFloatConfig(cmd, "bar-height", &barHeight, cfg.Height)

	opts := barchart.DefaultOptions()
	opts.Category = barCategory
	opts.Value = barValue
	opts.XTitle = barCategory
	opts.Locale = barLocale
	opts.Fill = barFill
	opts.Padding = barPadding
	opts.Width = barWidth
	opts.Height = barHeight
	return opts
}

func linesSettings(cmd *cobra.Command, fileFlag string) (linechart.Layout, linechart.Style) {
	cfg := fileCfg.Lines
	applyStringConfig(cmd, fileFlag, &linesFile, cfg.File)
	applyFloatConfig(cmd, "lines-width", &linesWidth, cfg.Width)
	applyFloatConfig(cmd, "lines-height", &linesHeight, cfg.Height)
	applyFloatConfig(cmd, "context-height", &linesContext, cfg.ContextHeight)
	applyFloatConfig(cmd, "opacity-rest", &linesRest, cfg.Rest)
	applyFloatConfig(cmd, "opacity-dimmed", &linesDimmed, cfg.Dimmed)

	layout := linechart.DefaultLayout()
	layout.Width = linesWidth
	layout.Height = linesHeight
	layout.ContextHeight = linesContext

	style := linechart.DefaultStyle()
	style.Rest = linesRest
	style.Dimmed = linesDimmed
	return layout, style
}

func runBarCmd(cmd *cobra.Command, _ []string) error {
	opts := barOptions(cmd, "file")
	chart, err := loadBars(cmd.Context(), barFile, opts)
	if err != nil {
		return err
	}
	return writeOutput(barOut, chart.Render)
}

func runLinesCmd(cmd *cobra.Command, _ []string) error {
	layout, style := linesSettings(cmd, "file")
	viewer, err := loadLines(cmd.Context(), linesFile, layout, style)
	if err != nil {
		return err
	}
	for _, p := range linesPin {
		if _, ok := viewer.Resolve(p); !ok {
			return fmt.Errorf("%s: unknown serie", p)
		}
		viewer.Click(p)
	}
	if linesBrush != "" {
		x0, x1, err := parseBrush(linesBrush)
		if err != nil {
			return err
		}
		viewer.Brush(x0, x1)
		logger.Debug("brush", "x0", x0, "x1", x1, "min", viewer.Domain().Min, "max", viewer.Domain().Max)
	}
	return writeOutput(linesOut, viewer.Render)
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	var (
		opts          = barOptions(cmd, "bar-file")
		layout, style = linesSettings(cmd, "lines-file")
	)
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	grp, ctx := errgroup.WithContext(cmd.Context())
	grp.Go(func() error {
		chart, err := loadBars(ctx, barFile, opts)
		if err != nil {
			return err
		}
		return writeOutput(filepath.Join(buildDir, "bars.svg"), chart.Render)
	})
	grp.Go(func() error {
		viewer, err := loadLines(ctx, linesFile, layout, style)
		if err != nil {
			return err
		}
		return writeOutput(filepath.Join(buildDir, "lines.svg"), viewer.Render)
	})
	return grp.Wait()
}

func loadBars(ctx context.Context, file string, opts barchart.Options) (*barchart.Chart, error) {
	tb, err := source.Load(ctx, file)
	if err != nil {
		return nil, err
	}
	rows, err := barchart.Rows(tb, opts.Category, opts.Value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	logger.Debug("table loaded", "file", file, "rows", len(rows))
	return barchart.New(rows, opts)
}

func loadLines(ctx context.Context, file string, layout linechart.Layout, style linechart.Style) (*linechart.Viewer, error) {
	tb, err := source.Load(ctx, file)
	if err != nil {
		return nil, err
	}
	ds, err := linechart.Reshape(tb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	logger.Debug("table loaded", "file", file, "series", len(ds.Series), "years", len(ds.Years))
	return linechart.NewViewer(ds, layout, style)
}

func parseBrush(str string) (float64, float64, error) {
	left, right, ok := strings.Cut(str, ":")
	if !ok {
		return 0, 0, errBrush
	}
	x0, err := strconv.ParseFloat(strings.TrimSpace(left), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", errBrush, err)
	}
	x1, err := strconv.ParseFloat(strings.TrimSpace(right), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", errBrush, err)
	}
	return x0, x1, nil
}

type countWriter struct {
	io.Writer
	n int64
}

func (w *countWriter) Write(b []byte) (int, error) {
	n, err := w.Writer.Write(b)
	w.n += int64(n)
	return n, err
}

func writeOutput(file string, render func(io.Writer) error) error {
	if file == "" || file == "-" {
		return render(os.Stdout)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	cw := countWriter{Writer: f}
	if err := render(&cw); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("chart written", "file", file, "size", humanize.Bytes(uint64(cw.n)))
	return nil
}
