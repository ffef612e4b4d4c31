// Command simulate runs arena sessions without a window, driven by an
// autopilot, and prints how they ended.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/circleclash/assets"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/game"
	"golang.org/x/sync/errgroup"
)

func main() {
	ticks := flag.Uint64("ticks", 60*60*5, "Stop after this many ticks (0 = until the session ends)")
	seed := flag.Int64("seed", 1, "Wave spawn seed")
	realtime := flag.Bool("realtime", false, "Run at the configured tick rate instead of as fast as possible")
	restart := flag.Bool("restart", false, "Restart after game over or win until -ticks is reached")
	arena := flag.String("arena", cfg.Arena.MapPath, "Embedded arena map")
	flag.Parse()

	pilot := NewAutopilot(*restart)
	g := game.New(game.Options{
		Arena: assets.MustLoadArena(*arena),
		Input: pilot,
		Seed:  *seed,
	})
	pilot.Attach(g)

	loop := NewLoop(g, cfg.C.TPS, *realtime, *ticks, *restart)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()
		return loop.Run(ctx)
	})

	eg.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case <-sigChan:
			log.Println("Shutting down simulation...")
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Simulation error: %v", err)
	}

	p := g.PlayerCharacter()
	fmt.Printf("run=%s state=%s score=%d wave=%d ticks=%d health=%.0f\n",
		g.RunID(), g.State(), g.Score(), g.Wave(), g.Tick(), p.Health)
}
