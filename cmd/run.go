package cmd

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/hackpage/internal/game"
)

var (
	runMusic      string
	runSeed       int64
	runFullscreen bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the landing page window",
	RunE:  runPage,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runMusic, "music", "", "soundtrack to loop behind the page (wav, mp3, flac)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "particle RNG seed (0 = config or time based)")
	runCmd.Flags().BoolVar(&runFullscreen, "fullscreen", false, "start fullscreen")
}

func runPage(cmd *cobra.Command, args []string) error {
	seed := runSeed
	if seed == 0 {
		seed = cfg.Particles.SeedOrNow()
	}

	g, err := game.New(cfg, game.Options{Seed: seed, MusicPath: runMusic})
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetFullscreen(cfg.Window.Fullscreen || runFullscreen)

	slog.Info("opening page", "width", cfg.Window.Width, "height", cfg.Window.Height, "seed", seed)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
