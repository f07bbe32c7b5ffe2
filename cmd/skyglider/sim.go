package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyglider/internal/audio"
	"github.com/vovakirdan/skyglider/internal/bot"
	"github.com/vovakirdan/skyglider/internal/config"
	"github.com/vovakirdan/skyglider/internal/core"
	"github.com/vovakirdan/skyglider/internal/glider"
	"github.com/vovakirdan/skyglider/internal/session"
)

var (
	flagTicks   int
	flagGames   int
	flagNight   bool
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a bot policy headless and print a summary",
	Long: `Let a bot policy fly without a terminal UI, as fast as possible, and
print how each flight ended. Runs are reproducible with --seed.

Examples:
  skyglider sim
  skyglider sim --policy avoider --games 10 --seed 7
  skyglider sim --policy kamikaze --difficulty hard --ticks 2000`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Tick limit per flight")
	simCmd.Flags().IntVar(&flagGames, "games", 1, "Number of flights")
	simCmd.Flags().BoolVar(&flagNight, "night", false, "Fly at night")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log state transitions")
}

// simResult is the outcome of one headless flight.
type simResult struct {
	Score    int
	Frames   int
	Health   float64
	Fuel     float64
	Reason   string
	Collects int
	Damages  int
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, dm, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagTicks <= 0 || flagGames <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks and --games must be positive")
		os.Exit(1)
	}

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyglider-sim",
		Level:           level,
	})

	results := simulate(cfg, dm, logger)
	printSummary(cfg, dm, results)
}

// simulate flies flagGames bot flights through the session controller,
// delivering timer tickets in order without waiting.
func simulate(cfg *config.GliderConfig, dm *config.DifficultyManager, logger *log.Logger) []simResult {
	rng := core.NewRand(flagSeed)
	world := glider.NewWorld(cfg, dm, rng)
	drv := &session.ManualDriver{}
	rec := &audio.Recorder{}
	ctrl := session.New(session.Deps{
		Config:     cfg,
		World:      world,
		Difficulty: dm,
		Driver:     drv,
		Sink:       rec,
		Logger:     logger,
		Rand:       rng,
		TickRate:   flagFPS,
	})

	start := core.Intent{Action: core.ActionStartDay}
	if flagNight {
		start.Action = core.ActionStartNight
	}

	results := make([]simResult, 0, flagGames)
	for range flagGames {
		collects, damages := rec.Collects, rec.Damages

		ctrl.Handle(start)
		ctrl.Handle(core.Intent{Action: core.ActionToggleBot})
		for world.Frame() < flagTicks && ctrl.State() == session.StateActive {
			tk, ok := drv.Pop()
			if !ok {
				break
			}
			ctrl.Fire(tk)
		}

		reason := string(world.Reason())
		if !world.Over() {
			reason = "tick limit"
		}
		results = append(results, simResult{
			Score:    world.Score(),
			Frames:   world.Frame(),
			Health:   world.Health(),
			Fuel:     world.Fuel(),
			Reason:   reason,
			Collects: rec.Collects - collects,
			Damages:  rec.Damages - damages,
		})
		ctrl.Restart()
	}
	return results
}

func printSummary(cfg *config.GliderConfig, dm *config.DifficultyManager, results []simResult) {
	policy := bot.Policy(cfg.Bot.DemoPolicy)
	fmt.Printf("Policy: %s (%s)\n", policy, policy.Description())
	fmt.Printf("Difficulty: %s [%s]\n", dm.Current(), dm.Rates())
	fmt.Println()

	fmt.Printf("  %-4s  %6s  %7s  %6s  %5s  %7s  %7s  %s\n",
		"#", "Score", "Frames", "Health", "Fuel", "Orbs", "Hits", "Ended")
	fmt.Printf("  %-4s  %6s  %7s  %6s  %5s  %7s  %7s  %s\n",
		"-", "-----", "------", "------", "----", "----", "----", "-----")
	for i, r := range results {
		fmt.Printf("  %-4d  %6d  %7d  %6.1f  %5.1f  %7d  %7d  %s\n",
			i+1, r.Score, r.Frames, r.Health, r.Fuel, r.Collects, r.Damages, r.Reason)
	}

	if len(results) > 1 {
		best := lo.MaxBy(results, func(a, b simResult) bool { return a.Score > b.Score })
		total := lo.SumBy(results, func(r simResult) int { return r.Score })
		survived := lo.CountBy(results, func(r simResult) bool { return r.Reason == "tick limit" })
		fmt.Println()
		fmt.Printf("Best %d, mean %.1f, survived %d/%d\n",
			best.Score, float64(total)/float64(len(results)), survived, len(results))
	}
}
