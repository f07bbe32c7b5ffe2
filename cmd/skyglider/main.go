// skyglider is a side-scrolling glider arcade game for the terminal.
//
// Usage:
//
//	skyglider play           - Play in the terminal
//	skyglider sim            - Let a bot policy fly headless and print a summary
//	skyglider policies       - List the bot policies
//	skyglider config         - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible runs
//	--config <path>        - Load a custom config YAML
//	--difficulty <name>    - easy, medium, hard or custom
//	--rates <c,b,h>        - Custom spawn intervals, selects custom difficulty
//	--policy <name|1-4>    - Bot policy for demo, toggled bot and sim
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyglider/internal/bot"
	"github.com/vovakirdan/skyglider/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagRates      string
	flagPolicy     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyglider",
	Short: "Skyglider - fly a glider through storm clouds in your terminal",
	Long: `Skyglider is a side-scrolling arcade game. Keep the glider aloft with
thrust, collect blue orbs for score and fuel, and avoid red storm orbs and
thunder clouds. Four bot policies can fly for you.

Available commands:
  play      - Play in the terminal
  sim       - Run a bot policy headless and print a summary
  policies  - List the bot policies
  config    - Print the effective configuration

Examples:
  skyglider play
  skyglider play --difficulty hard --seed 42
  skyglider sim --policy smart --ticks 10000
  skyglider config --rates 60,90,300`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard, custom")
	rootCmd.PersistentFlags().StringVar(&flagRates, "rates", "", "Custom spawn intervals collectible,hazard_ball,hazard_cloud")
	rootCmd.PersistentFlags().StringVar(&flagPolicy, "policy", "", "Bot policy name or number (1-4)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(policiesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings loads the config and applies the global flag overrides.
func loadSettings() (*config.GliderConfig, *config.DifficultyManager, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	if flagPolicy != "" {
		p, err := bot.ParsePolicy(flagPolicy)
		if err != nil {
			return nil, nil, err
		}
		cfg.Bot.DemoPolicy = int(p)
	}

	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return nil, nil, err
		}
		cfg.Difficulty.Default = d
	}

	dm := config.NewDifficultyManager(cfg.Difficulty)
	if flagRates != "" {
		rates, err := config.ParseRates(flagRates)
		if err != nil {
			return nil, nil, err
		}
		cfg.Difficulty.Custom = rates
		if err := dm.SetCustom(rates); err != nil {
			return nil, nil, err
		}
		dm.Set(config.DifficultyCustom)
	}

	return &cfg, dm, nil
}
