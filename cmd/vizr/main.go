package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/halden/vizr"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "vizr",
		Short:        "Render aggregated report datasets as SVG charts",
		SilenceUsage: true,
	}
	root.AddCommand(renderCmd())
	return root
}

func renderCmd() *cobra.Command {
	var (
		settingsPath string
		outDir       string
		types        []string
		logLevel     string
	)
	cmd := &cobra.Command{
		Use:   "render <dataset.json>",
		Short: "Render one dataset to SVG, one file per chart type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vizr.SetLogLevel(logLevel)

			ds, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			settings := vizr.DefaultSettings()
			if settingsPath != "" {
				settings, err = vizr.LoadSettings(settingsPath)
				if err != nil {
					return err
				}
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			var grp errgroup.Group
			for _, t := range types {
				chartType := vizr.ChartType(strings.TrimSpace(t))
				grp.Go(func() error {
					return renderOne(ds, settings, chartType, outDir)
				})
			}
			return grp.Wait()
		},
	}
	cmd.Flags().StringVarP(&settingsPath, "settings", "s", "", "visualization settings file (YAML)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringSliceVarP(&types, "type", "t", []string{"line"}, "chart types to render")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "diagnostic verbosity")
	return cmd
}

func loadDataset(path string) (*vizr.AggregatedDataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ds vizr.AggregatedDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return &ds, nil
}

// renderOne runs a full render cycle for one chart type. Each chart gets
// its own surface, so concurrent invocations never share state.
func renderOne(ds *vizr.AggregatedDataset, settings vizr.VisualizationSettings, t vizr.ChartType, outDir string) error {
	chart := vizr.New(t, ds, settings)
	if err := chart.Render(); err != nil {
		return fmt.Errorf("%s: %w", t, err)
	}
	out := filepath.Join(outDir, fmt.Sprintf("chart-%s.svg", t))
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	return chart.WriteSVG(f)
}
