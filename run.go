package slingshot

import "github.com/hajimehoshi/ebiten/v2"

// Run opens a resizable window sized from the stage's config and blocks until
// it is closed or a finished script ends the run.
func Run(s *Stage) error {
	ebiten.SetWindowTitle(s.cfg.Title)
	ebiten.SetWindowSize(s.cfg.Width, s.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	s.logger.Info("starting", "title", s.cfg.Title, "width", s.cfg.Width, "height", s.cfg.Height,
		"session", s.game.Session())
	return ebiten.RunGame(s)
}
