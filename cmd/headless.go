package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/hackpage/internal/background"
	"github.com/iburimskiy/hackpage/internal/host"
	"github.com/iburimskiy/hackpage/internal/telemetry"
)

var (
	headlessFrames  int
	headlessWidth   int
	headlessHeight  int
	headlessScale   float64
	headlessSeed    int64
	headlessCSV     string
	headlessPointer bool
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Simulate the particle backdrop without a window and report frame statistics",
	RunE:  runHeadless,
}

func init() {
	rootCmd.AddCommand(headlessCmd)
	headlessCmd.Flags().IntVar(&headlessFrames, "frames", 600, "frames to simulate")
	headlessCmd.Flags().IntVar(&headlessWidth, "width", 1000, "surface width in device pixels")
	headlessCmd.Flags().IntVar(&headlessHeight, "height", 800, "surface height in device pixels")
	headlessCmd.Flags().Float64Var(&headlessScale, "scale", 1, "device pixel ratio")
	headlessCmd.Flags().Int64Var(&headlessSeed, "seed", 1, "particle RNG seed")
	headlessCmd.Flags().StringVar(&headlessCSV, "csv", "", "write per-frame stats to this CSV file")
	headlessCmd.Flags().BoolVar(&headlessPointer, "pointer", true, "sweep a scripted pointer over the surface")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if headlessFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", headlessFrames)
	}
	bg, err := background.New(cfg, headlessSeed)
	if err != nil {
		return err
	}
	var path telemetry.PointerPath = telemetry.NoPointer
	if headlessPointer {
		path = telemetry.Lissajous
	}
	surface := host.Surface{Width: headlessWidth, Height: headlessHeight, Scale: headlessScale}
	rows := telemetry.Simulate(bg, surface, headlessFrames, cfg.Window.TPS, path)
	if rows == nil {
		slog.Warn("no drawing surface, nothing simulated", "width", headlessWidth, "height", headlessHeight)
		return nil
	}

	sum := telemetry.Summarize(rows)
	slog.Info("simulation finished",
		"frames", sum.Frames,
		"particles", rows[len(rows)-1].Particles,
		"mean_speed", fmt.Sprintf("%.3f", sum.MeanSpeed),
		"peak_speed", fmt.Sprintf("%.3f", sum.PeakSpeed),
		"mean_connections", fmt.Sprintf("%.1f", sum.MeanConnections),
		"bounds_violations", sum.Violations,
	)
	if headlessCSV != "" {
		if err := telemetry.WriteCSV(headlessCSV, rows); err != nil {
			return err
		}
		slog.Info("frame stats written", "path", headlessCSV)
	}
	if sum.Violations > 0 {
		return fmt.Errorf("%d frames had particles outside the surface", sum.Violations)
	}
	return nil
}
