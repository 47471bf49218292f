package main

import (
	"github.com/spf13/cobra"

	"github.com/midbel/datavis/internal/explore"
	"github.com/midbel/datavis/internal/web"
)

var (
	serveAddr  string
	exploreOut string
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve both charts over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", defaultAddr, "listening address")
	cmd.Flags().StringVar(&barFile, "bar-file", defaultBarFile, "CSV/XLSX file or URL of the bar chart")
	cmd.Flags().StringVar(&linesFile, "lines-file", defaultLinesFile, "CSV/XLSX file or URL of the line chart")
	addBarFlags(cmd)
	addLinesFlags(cmd)
	return cmd
}

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore the line chart from the terminal",
		Args:  cobra.NoArgs,
		RunE:  runExploreCmd,
	}
	cmd.Flags().StringVar(&linesFile, "file", defaultLinesFile, "CSV/XLSX file or URL")
	cmd.Flags().StringVarP(&exploreOut, "out", "o", "lines.svg", "file written when a snapshot is taken")
	addLinesFlags(cmd)
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	applyStringConfig(cmd, "addr", &serveAddr, fileCfg.Server.Addr)
	var (
		opts          = barOptions(cmd, "bar-file")
		layout, style = linesSettings(cmd, "lines-file")
		ctx           = cmd.Context()
		srvOpts       = web.Options{Logger: logger}
	)
	srvOpts.Bars, srvOpts.BarsErr = loadBars(ctx, barFile, opts)
	if srvOpts.BarsErr != nil {
		logger.Error("bar chart not loaded", "file", barFile, "err", srvOpts.BarsErr)
	}
	srvOpts.Lines, srvOpts.LinesErr = loadLines(ctx, linesFile, layout, style)
	if srvOpts.LinesErr != nil {
		logger.Error("line chart not loaded", "file", linesFile, "err", srvOpts.LinesErr)
	}
	return web.New(srvOpts).ListenAndServe(ctx, serveAddr)
}

func runExploreCmd(cmd *cobra.Command, _ []string) error {
	layout, style := linesSettings(cmd, "file")
	viewer, err := loadLines(cmd.Context(), linesFile, layout, style)
	if err != nil {
		return err
	}
	return explore.Run(viewer, exploreOut)
}
