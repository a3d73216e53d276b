package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ur/agent"
	"ur/config"
	"ur/engine"
	"ur/game"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runMatch(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("match aborted")
		os.Exit(1)
	}
}

type tally struct {
	wins     [2]int
	captures [2]int
	turns    int
	games    int
}

// runMatch plays cfg.Games games between the two configured players.
func runMatch(ctx context.Context, cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	kinds, err := parseKinds(cfg.PlayerOne, cfg.PlayerTwo)
	if err != nil {
		return err
	}
	log.Info().Msgf("playing %d games: %s vs %s (seed %d)", cfg.Games, kinds[0], kinds[1], seed)

	dice := game.NewSource(seed)
	var agents [2]agent.Agent
	for i, kind := range kinds {
		agents[i], err = agent.New(agent.Config{Kind: kind, Seed: seed + uint64(i) + 1, Search: cfg.Search})
		if err != nil {
			return err
		}
	}

	var t tally
	for i := 0; i < cfg.Games; i++ {
		e := engine.New(agents[0], agents[1], dice, engine.WithMaxTurns(cfg.MaxTurns))
		record, err := e.Run(ctx)
		if errors.Is(err, engine.ErrTurnLimit) {
			log.Warn().Msgf("game %d stopped after %d turns", i+1, len(record.Turns))
			continue
		}
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}

		t.games++
		t.wins[record.Winner]++
		t.turns += len(record.Turns)
		for p := range t.captures {
			t.captures[p] += record.Captures[p]
		}
		for _, m := range record.Searches {
			log.Debug().
				Int("step", m.Step).
				Int("simulations", m.Simulations).
				Int("nodes", m.Nodes).
				Float64("throughput", m.Throughput()).
				Msg("search")
		}
		log.Info().Msgf("game %d over! winner: %s (%s) in %d turns", i+1, record.Winner, kinds[record.Winner], len(record.Turns))
	}

	printSummary(kinds, t)
	return nil
}

func parseKinds(one, two string) ([2]agent.Kind, error) {
	var kinds [2]agent.Kind
	for i, name := range []string{one, two} {
		kind, err := agent.ParseKind(name)
		if err != nil {
			return kinds, err
		}
		kinds[i] = kind
	}
	return kinds, nil
}

func printSummary(kinds [2]agent.Kind, t tally) {
	out := termenv.NewOutput(os.Stdout)
	colors := [2]termenv.Color{out.Color("4"), out.Color("1")}

	fmt.Fprintln(out, out.String("Royal Game of Ur").Bold())
	for p, kind := range kinds {
		rate := 0.0
		if t.games > 0 {
			rate = 100 * float64(t.wins[p]) / float64(t.games)
		}
		name := out.String(fmt.Sprintf("%s (%s)", game.Player(p), kind)).Foreground(colors[p])
		fmt.Fprintf(out, "  %s  wins %d/%d (%.1f%%)  captures %d\n", name, t.wins[p], t.games, rate, t.captures[p])
	}
	if t.games > 0 {
		fmt.Fprintf(out, "  average game length %.1f turns\n", float64(t.turns)/float64(t.games))
	}
}
