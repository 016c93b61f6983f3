package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/pokerkit/showdown/events"
	"github.com/pokerkit/showdown/game"
	"github.com/pokerkit/showdown/server"
)

var CLI struct {
	Debug bool     `help:"Enable debug logging"`
	Deal  DealCmd  `cmd:"" default:"1" help:"Deal a random hand and print the showdown"`
	Serve ServeCmd `cmd:"" help:"Run the showdown evaluation service"`
}

// DealCmd deals a single Texas Hold'em showdown for 2-9 players.
type DealCmd struct {
	Players int   `arg:"" optional:"" default:"4" help:"Number of players (2-9)"`
	Seed    int64 `help:"Deterministic shuffle seed (0 = random)"`
}

func (c *DealCmd) Run(logger *log.Logger) error {
	// Out-of-range counts are clamped, not rejected; this is host glue,
	// not an engine precondition.
	numPlayers := c.Players
	if numPlayers < game.MinPlayers {
		numPlayers = game.MinPlayers
	}
	if numPlayers > game.MaxPlayers {
		numPlayers = game.MaxPlayers
	}

	var rng *rand.Rand
	if c.Seed != 0 {
		rng = rand.New(rand.NewSource(c.Seed))
	}

	table := game.NewTable(logger, events.NewInMemoryEventStore())
	showdown, err := table.Run(context.Background(), numPlayers, rng)
	if err != nil {
		return err
	}

	fmt.Println("\n--- Texas Hold'em showdown ---")
	for _, player := range showdown.Players {
		fmt.Printf("%s: %s\n", player.ID, player.Hole)
	}
	fmt.Printf("\nCommunity: %s\n\n", showdown.Community)

	for _, result := range showdown.Results {
		fmt.Printf("%s: Best = %s  -> %s\n", result.PlayerID, result.Best.Cards, result.Best.Score.Category)
	}
	fmt.Println("\nWinner(s): " + strings.Join(showdown.Winners, ", "))

	return nil
}

// ServeCmd runs the stateless evaluation service.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides SHOWDOWN_ADDR)"`
}

func (c *ServeCmd) Run(logger *log.Logger) error {
	cfg, err := server.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.Addr != "" {
		cfg.Addr = c.Addr
	}

	return server.NewServer(cfg, logger).Start()
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("showdown"),
		kong.Description("Texas Hold'em showdown: hand evaluation, best-hand search and winner selection"),
		kong.UsageOnError(),
	)

	logger := log.New(os.Stderr)
	if CLI.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
