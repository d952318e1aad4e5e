package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"mazerun/internal/config"
	"mazerun/internal/debug"
	"mazerun/internal/env"
	"mazerun/internal/game"
	"mazerun/internal/graphics"
	"mazerun/internal/hud"
	"mazerun/internal/input"
	"mazerun/internal/logger"
	"mazerun/internal/maze"
	"mazerun/internal/scene"
)

const frameDT = 1.0 / 60

func main() {
	log := logger.New()
	if err := env.Load(".env"); err != nil {
		log.WithError(err).Warn("could not read .env")
	}

	cfg := config.Load(env.Get("MAZERUN_CONFIG", config.Path))
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid tuning")
	}
	if !cfg.TunnelSafe(frameDT) {
		log.Warn("tuning allows tunneling through walls at the target frame rate")
	}

	grid, err := maze.Level1()
	if err != nil {
		log.WithError(err).Fatal("invalid level layout")
	}
	w, h := grid.Size()
	log.WithFields(logrus.Fields{
		"size":        fmt.Sprintf("%dx%d", w, h),
		"checkpoints": len(grid.Checkpoints()),
	}).Info("level loaded")

	g := game.New(grid, cfg, log)
	defer g.Close()

	scn := scene.New(grid, cfg)
	overlay := hud.New()
	dbg := debug.New(cfg.CellSize)
	dbg.SetShow(cfg.ShowDebug)
	sampler := input.NewSampler()

	update := func(dt float32) {
		snap := g.Snapshot()
		switch {
		case !snap.Started && sampler.StartRequested():
			g.Start()
			sampler.Capture()
		case snap.Complete && sampler.RestartRequested():
			g.Reset()
			sampler.Release()
		}

		in := sampler.Sample(g.Snapshot().Started)
		g.Update(dt, in)
		scn.Update(dt, g.Pose())
	}
	draw := func() {
		scn.Draw(g.Reached)
		overlay.Draw(g.Snapshot())
		dbg.Draw(g.Pose())
	}

	graphics.Run("mazerun", cfg.Windowed, update, draw)
}
