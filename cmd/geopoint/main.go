package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"geopoint/internal/config"
	"geopoint/internal/tui"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd launches the interactive viewer when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "geopoint",
	Short: "geopoint - plot 2D points in the terminal and measure distances",
	Long: `geopoint renders point datasets (WKT, CSV, GeoJSON, KML) on a braille
canvas in the terminal, with pan/zoom, a points table, and a measure mode
that reports the Euclidean distance between any two plotted points.

Run without arguments to start the interactive viewer.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		// The viewer owns the terminal; keep it log-free
		if cmd.Name() == "geopoint" || cmd.Name() == "view" {
			logger = zap.NewNop()
			return nil
		}
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViewer("")
	},
}

// viewCmd launches the viewer with a preloaded file.
var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open the viewer, optionally preloading a point file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return runViewer(path)
	},
}

// renderCmd prints the textual projection of points.
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Print each point as an X/Y line",
	Long: `Prints every point as "X: <x>, Y: <y>". Points come from a file
argument, an inline --wkt string, or the --x/--y flags. A flag left out is
an unset coordinate and prints as "undefined".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

// distanceCmd computes Euclidean distances.
var distanceCmd = &cobra.Command{
	Use:   "distance [x1 y1 x2 y2]",
	Short: "Compute the Euclidean distance between two points",
	Long: `With four numeric arguments, prints the distance between (x1, y1)
and (x2, y2). With --from, prints each consecutive pairwise distance in the
file plus the total path length.`,
	RunE: runDistance,
}

func runViewer(path string) error {
	var m tea.Model
	if path != "" {
		m = tui.NewWithPath(cfg, path)
	} else {
		m = tui.New(cfg)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "Path to YAML config")

	renderCmd.Flags().String("wkt", "", "Inline WKT (POINT or MULTIPOINT)")
	renderCmd.Flags().Float64("x", 0, "X coordinate of a single point")
	renderCmd.Flags().Float64("y", 0, "Y coordinate of a single point")

	distanceCmd.Flags().String("from", "", "Point file; print consecutive pairwise distances")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(distanceCmd)
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "geopoint.yaml"
	}
	return home + "/.config/geopoint/geopoint.yaml"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
