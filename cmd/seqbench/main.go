// seqbench runs the full container benchmark catalogue and exports
// the accumulated graphs. The catalogue itself is static; flags only
// control output, run scale and profiling.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/shivam-909/seqbench/internal/graphs"
	"github.com/shivam-909/seqbench/internal/suites"
)

var (
	formats     []string
	outDir      string
	scale       int
	profileMode string
)

func main() {
	root := &cobra.Command{
		Use:          "seqbench",
		Short:        "benchmark sequence containers under interchangeable allocators",
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().StringSliceVar(&formats, "format", []string{"html"},
		"output formats: json, csv, html, sqlite (repeatable)")
	root.Flags().StringVar(&outDir, "out", ".", "directory results are written to")
	root.Flags().IntVar(&scale, "scale", 1, "divide every declared problem size by this factor")
	root.Flags().StringVar(&profileMode, "profile", "", "profiling mode: cpu or mem")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(outDir)).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(outDir)).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	report := graphs.NewReport()
	start := time.Now()
	suites.RunAll(report, scale)
	slog.Info("benchmarks complete", "elapsed", time.Since(start))

	// Measurement is strictly sequential; only the exports fan out.
	var g errgroup.Group
	for _, f := range formats {
		f := f
		g.Go(func() error { return export(report, f) })
	}
	return g.Wait()
}

func export(r *graphs.Report, format string) error {
	if format == "sqlite" {
		path := filepath.Join(outDir, "results.db")
		if err := r.ExportSQLite(path); err != nil {
			return err
		}
		slog.Info("wrote results", "path", path)
		return nil
	}

	path := filepath.Join(outDir, "results."+format)
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		err = r.WriteJSON(f)
	case "csv":
		err = r.WriteCSV(f)
	case "html":
		err = r.WriteHTML(f)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	slog.Info("wrote results", "path", path)
	return nil
}
