package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyglider/internal/audio"
	"github.com/vovakirdan/skyglider/internal/core"
	"github.com/vovakirdan/skyglider/internal/platform/tui"
)

var (
	flagLogFile string
	flagVolume  float64
	flagMute    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game. It waits on a title screen; after a few idle seconds a
bot starts a demo flight, interrupted by any key.

Controls:
  Space/W/Up   - Thrust (mouse buttons work too)
  Enter / N    - Start a day / night flight
  B            - Toggle the bot
  1-4          - Select the bot policy
  Tab          - Cycle difficulty
  H/?          - Help (pauses)
  P/Esc        - Pause
  R            - Restart
  D            - Show hitboxes
  M, +, -      - Mute, volume
  Q/Ctrl+C     - Quit

Examples:
  skyglider play
  skyglider play --difficulty easy --volume 0.3
  skyglider play --log-file /tmp/skyglider.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal belongs to the game)")
	playCmd.Flags().Float64Var(&flagVolume, "volume", -1, "Volume 0..1 (default from config)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, dm, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagVolume >= 0 {
		cfg.Audio.Volume = core.ClampF(flagVolume, 0, 1)
	}
	if flagMute {
		cfg.Audio.Muted = true
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyglider",
		Level:           log.DebugLevel,
	})

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var sink audio.Sink = audio.Nop{}
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio)
		if initErr := sm.Init(); initErr != nil {
			logger.Warn("audio unavailable", "error", initErr)
		} else {
			defer sm.Close()
			sink = sm
		}
	}

	logger.Info("starting",
		"size", fmt.Sprintf("%dx%d", width, height),
		"fps", flagFPS,
		"difficulty", dm.Current(),
		"rates", dm.Rates(),
	)

	runErr := tui.Run(tui.Options{
		Config:     cfg,
		Difficulty: dm,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Sink:   sink,
		Logger: logger,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
