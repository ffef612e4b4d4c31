package main

import (
	"context"
	"log"
	"time"

	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/game"
)

// Loop drives a game session at a fixed tick rate, or as fast as possible
// when not in realtime mode.
type Loop struct {
	game     *game.Game
	tickRate int
	realtime bool
	maxTicks uint64
	restart  bool
}

func NewLoop(g *game.Game, tickRate int, realtime bool, maxTicks uint64, restart bool) *Loop {
	return &Loop{
		game:     g,
		tickRate: tickRate,
		realtime: realtime,
		maxTicks: maxTicks,
		restart:  restart,
	}
}

// done reports whether the session has nothing more to simulate.
func (l *Loop) done() bool {
	if l.game.Finished() {
		return true
	}
	if l.maxTicks > 0 && l.game.Tick() >= l.maxTicks {
		return true
	}
	state := l.game.State()
	return !l.restart && (state == cfg.GameOver || state == cfg.GameWin)
}

func (l *Loop) Run(ctx context.Context) error {
	if !l.realtime {
		for !l.done() {
			if err := ctx.Err(); err != nil {
				return err
			}
			l.game.Update()
		}
		return nil
	}

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("[%s] loop started at %d ticks/second", l.game.RunID(), l.tickRate)

	for !l.done() {
		select {
		case <-ctx.Done():
			log.Printf("[%s] loop stopped", l.game.RunID())
			return ctx.Err()
		case <-ticker.C:
			l.game.Update()
		}
	}
	return nil
}
