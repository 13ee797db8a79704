package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/hackpage/internal/hero"
)

// dialogResult is posted back to the game loop by dialog goroutines.
type dialogResult struct {
	musicPath string
	err       error
}

// activate runs the action behind a clicked hero element. Dialogs block, so
// they run off the game loop and report back through g.dialogs.
func (g *Game) activate(e hero.Element) {
	switch {
	case e.Kind == hero.Button && e.Variant == "secondary":
		slog.Info("pre-register clicked")
		g.runDialog(func() dialogResult {
			err := zenity.Notify("Pre-registration opens soon. Stay tuned!", zenity.Title(g.cfg.Hero.Title))
			return dialogResult{err: err}
		})
	case e.URL != "":
		slog.Info("link clicked", "label", e.Text, "url", e.URL)
		g.runDialog(func() dialogResult {
			err := zenity.Info(fmt.Sprintf("%s\n\n%s", e.Text, e.URL),
				zenity.Title(g.cfg.Hero.Title), zenity.InfoIcon)
			return dialogResult{err: ignoreCancel(err)}
		})
	}
}

// pickSoundtrack asks for an audio file to play behind the page.
func (g *Game) pickSoundtrack() {
	g.runDialog(func() dialogResult {
		path, err := zenity.SelectFile(
			zenity.Title("Choose a soundtrack"),
			zenity.FileFilters{{
				Name:     "Audio",
				Patterns: []string{"*.wav", "*.mp3", "*.flac"},
			}},
		)
		if err != nil {
			return dialogResult{err: ignoreCancel(err)}
		}
		return dialogResult{musicPath: path}
	})
}

func (g *Game) runDialog(fn func() dialogResult) {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true
	go func() { g.dialogs <- fn() }()
}

// pollDialogs applies at most one finished dialog per tick.
func (g *Game) pollDialogs() {
	select {
	case res := <-g.dialogs:
		g.dialogOpen = false
		if res.err != nil {
			slog.Warn("dialog failed", "error", res.err)
			g.lastErr = res.err
		}
		if res.musicPath != "" {
			g.playSoundtrack(res.musicPath)
		}
	default:
	}
}

func (g *Game) playSoundtrack(path string) {
	if err := g.player.Play(path); err != nil {
		slog.Warn("soundtrack unavailable", "path", path, "error", err)
		g.lastErr = err
		return
	}
	g.lastErr = nil
}

func ignoreCancel(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}
