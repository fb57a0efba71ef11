// Command persona plays and draws the persona synth.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gordonklaus/persona/render"
)

var logger = slog.Default()

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
	slog.SetDefault(logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "persona",
	Short: "A persona-driven additive synth",
	Long: `persona maps a single persona value onto a blend of four developmental
stages and plays the result as a drifting additive drone.

Examples:
  persona play --backend portaudio --window
  persona play --config 'p=0.700&e=0.300&rn=c%233'
  persona render -o frame.png --config 'p=0.9'
  persona state --config 'p=0.4'`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(debug)
	},
}

var (
	debug      bool
	configFlag string

	// play
	backend  string
	rate     float64
	buffer   int
	midiPort string
	window   bool
	keys     bool
	winW     int
	winH     int

	// render
	output string
	width  int
	height int
	atTime float64
	energy float64
	seed   int64
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug logging")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Initial config string (p=0.500&d=...&rn=c3)")

	playCmd.Flags().StringVarP(&backend, "backend", "b", "portaudio", "Audio backend (portaudio, oto, headless)")
	playCmd.Flags().Float64Var(&rate, "rate", 44100, "Sample rate")
	playCmd.Flags().IntVar(&buffer, "buffer", 512, "Frames per audio buffer")
	playCmd.Flags().StringVar(&midiPort, "midi-port", "", "MIDI input port to take root notes from")
	playCmd.Flags().BoolVarP(&window, "window", "w", false, "Open the visualizer window")
	playCmd.Flags().BoolVarP(&keys, "keys", "k", true, "Read control keys from the terminal")
	playCmd.Flags().Float64Var(&energy, "energy", render.DefaultSettings().Energy, "Visual energy (0-1)")
	playCmd.Flags().IntVar(&winW, "width", 960, "Window width")
	playCmd.Flags().IntVar(&winH, "height", 540, "Window height")

	renderCmd.Flags().StringVarP(&output, "output", "o", "persona.png", "Output PNG file")
	renderCmd.Flags().IntVar(&width, "width", 1280, "Image width")
	renderCmd.Flags().IntVar(&height, "height", 720, "Image height")
	renderCmd.Flags().Float64VarP(&atTime, "time", "t", 0, "Animation time in seconds")
	renderCmd.Flags().Float64Var(&energy, "energy", render.DefaultSettings().Energy, "Visual energy (0-1)")
	renderCmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")

	stateCmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")

	rootCmd.AddCommand(playCmd, renderCmd, stateCmd, configCmd)
}
