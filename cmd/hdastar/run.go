package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/hdastar/driver"
	"github.com/katalvlaran/hdastar/graph"
	"github.com/katalvlaran/hdastar/hda"
	"github.com/katalvlaran/hdastar/internal/config"
	"github.com/katalvlaran/hdastar/report"
	"github.com/katalvlaran/hdastar/stats"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	exitOK          = 0
	exitUsage       = 1
	exitBadArgument = 2
	exitNoPath      = 3
)

// run builds and executes the root cobra command, returning the process
// exit code rather than calling os.Exit itself so tests can call it
// directly.
func run(args []string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	exitCode := exitOK

	root := &cobra.Command{
		Use:           "hdastar",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:  "run FILENAME STARTING_SEED [N_SEEDS] [N_REPS]",
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runSearches(cmd, args, logger)
			exitCode = code
			return err
		},
	}
	runCmd.Flags().Int("workers", 16, "number of worker goroutines/partitions")
	runCmd.Flags().String("variant", "mp", `engine variant: "mp" or "sm"`)
	runCmd.Flags().Bool("require-path-exists", false, "gate MP termination on a finite bound")
	runCmd.Flags().String("db", "", "optional SQLite path to also persist run reports")
	runCmd.Flags().Bool("metrics", false, "enable Prometheus instrumentation on the default registerer")
	runCmd.Flags().Bool("trace", false, "enable OpenTelemetry span emission around each run's phases")
	runCmd.Flags().String("config", "", "optional config file (env HDASTAR_*, flags override)")

	root.AddCommand(runCmd)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		logger.Error(err.Error())
		if exitCode == exitOK {
			exitCode = exitUsage
		}
	}
	return exitCode
}

func runSearches(cmd *cobra.Command, args []string, logger *slog.Logger) (int, error) {
	filename := args[0]
	startingSeed, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return exitBadArgument, fmt.Errorf("bad STARTING_SEED %q: %w", args[1], err)
	}
	nSeeds, err := parseOptionalInt(args, 2, 1)
	if err != nil {
		return exitBadArgument, err
	}
	nReps, err := parseOptionalInt(args, 3, 1)
	if err != nil {
		return exitBadArgument, err
	}

	cfg, err := config.Resolve(viper.New(), cmd.Flags())
	if err != nil {
		return exitBadArgument, err
	}

	f, err := os.Open(filename)
	if err != nil {
		return exitUsage, fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	algorithm := "hdastar-mp"
	if cfg.Variant == "sm" {
		algorithm = "hdastar-sm"
	}

	var statsOpts []stats.Option
	if cfg.Metrics {
		statsOpts = append(statsOpts, stats.WithMetrics(prometheus.DefaultRegisterer))
	}
	if cfg.Trace {
		tp := sdktrace.NewTracerProvider()
		defer func() { _ = tp.Shutdown(context.Background()) }()
		otel.SetTracerProvider(tp)
		statsOpts = append(statsOpts, stats.WithTracing(otel.Tracer("hdastar")))
	}

	readTimer := stats.New(algorithm, cfg.Workers, filename, startingSeed, statsOpts...)
	readTimer.BeginRead(context.Background())
	g, err := graph.ReadGraph(f)
	readTimer.EndRead()
	if err != nil {
		return exitUsage, fmt.Errorf("read graph %s: %w", filename, err)
	}
	readSeconds := readTimer.ReadSeconds()

	var store *report.Store
	if cfg.DBPath != "" {
		store, err = report.Open(cfg.DBPath)
		if err != nil {
			return exitUsage, err
		}
		defer store.Close()
	}

	csvFile, err := os.OpenFile("AstarReport.csv", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return exitUsage, fmt.Errorf("open AstarReport.csv: %w", err)
	}
	defer csvFile.Close()

	searchOpts := []hda.Option{
		hda.WithWorkers(cfg.Workers),
		hda.WithVariant(cfg.HDAVariant()),
	}
	if cfg.RequirePathExists {
		searchOpts = append(searchOpts, hda.WithRequirePathExists())
	}

	anyNoPath := false
	for seed := startingSeed; seed < startingSeed+uint64(nSeeds); seed++ {
		source, dest := graph.DeriveEndpoints(seed, g.NumVertices())
		for rep := 0; rep < nReps; rep++ {
			collector := stats.New(algorithm, cfg.Workers, filename, seed, statsOpts...)
			collector.SetReadSeconds(readSeconds)

			collector.BeginSearch(context.Background())
			res, err := driver.Search(g, source, dest, searchOpts...)
			collector.EndSearch()
			if err != nil {
				return exitUsage, err
			}
			collector.RecordEngineTimings(res.SearchSeconds, res.ReconstructSeconds)

			if res.Status != hda.StatusOK {
				anyNoPath = true
				logger.Warn("no path found", "seed", seed, "status", res.Status.String())
				continue
			}

			path := make([]uint32, len(res.Path))
			for i, v := range res.Path {
				path[i] = uint32(v)
			}
			collector.Finish(res.Cost, path, res.NodesVisited)

			fmt.Printf("Total cost: %v\n", res.Cost)
			fmt.Printf("Total steps: %d\n", len(res.Path))

			if err := collector.DumpCSV(csvFile); err != nil {
				return exitUsage, err
			}
			if store != nil {
				if err := store.Save(&report.Run{
					Algorithm:          algorithm,
					Threads:            cfg.Workers,
					Input:              filename,
					Seed:               seed,
					Cost:               res.Cost,
					Steps:              len(res.Path),
					ReadSeconds:        readSeconds,
					SearchSeconds:      res.SearchSeconds,
					ReconstructSeconds: res.ReconstructSeconds,
					NodesVisited:       res.NodesVisited,
					Path:               pathLabel(path),
					RanAt:              time.Now(),
				}); err != nil {
					return exitUsage, err
				}
			}
		}
	}

	if anyNoPath {
		return exitNoPath, nil
	}
	return exitOK, nil
}

func parseOptionalInt(args []string, idx, def int) (int, error) {
	if idx >= len(args) {
		return def, nil
	}
	v, err := strconv.Atoi(args[idx])
	if err != nil {
		return 0, fmt.Errorf("bad integer argument %q: %w", args[idx], err)
	}
	return v, nil
}

func pathLabel(path []uint32) string {
	out := ""
	for i, v := range path {
		if i > 0 {
			out += "-"
		}
		out += strconv.FormatUint(uint64(v), 10)
	}
	return out
}
