package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/levelrun/internal/audio"
	"github.com/vovakirdan/levelrun/internal/core"
	"github.com/vovakirdan/levelrun/internal/flow"
	"github.com/vovakirdan/levelrun/internal/levels"
	"github.com/vovakirdan/levelrun/internal/platform/tui"
	"github.com/vovakirdan/levelrun/internal/storage"
)

var (
	flagFPS  int
	flagBell bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session",
	Long: `Start a session at the main menu.

Controls:
  Enter      - Start from the main menu
  Space      - Collect points
  X          - Get hit (lose a life)
  R          - Restart the session (after game over)
  B          - Back to the main menu (after game over)
  Esc        - Quit
  Ctrl+C     - Quit immediately

Debug controls:
  End        - Force game over
  Delete     - Force death
  Home       - Beat the current level

Examples:
  levelrun play
  levelrun play --fps 30
  levelrun play --config ./my-session.yaml --bell`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell for sound cues")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, catalog, err := loadSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, logErr := openLogFile(flagLogFile)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", logErr)
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger := newLogger(logOut, "levelrun")

	stage := levels.NewStage(catalog, levels.WithStageLogger(logger))
	mixerOpts := []audio.Option{audio.WithLogger(logger)}
	if flagBell {
		mixerOpts = append(mixerOpts, audio.WithSink(audio.BellSink{W: os.Stdout}))
	}
	mixer := audio.NewMixer(cfg.Audio, mixerOpts...)
	panels := tui.NewPanels()

	ctrl, err := flow.New(cfg, flow.Ports{
		Presentation: panels,
		Levels:       stage,
		Audio:        mixer,
	}, flow.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without storage - the session still works
		store = nil
	}

	ctrl.ShowMainMenu()
	runErr := tui.Run(tui.Deps{
		Controller: ctrl,
		Panels:     panels,
		Catalog:    catalog,
		Mixer:      mixer,
		Store:      store,
		Logger:     logger,
	}, rc)

	ctrl.Close()
	if waitErr := stage.Wait(); waitErr != nil {
		runErr = errors.Join(runErr, waitErr)
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
