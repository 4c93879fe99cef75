package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/nodeweb/internal/config"
	"github.com/san-kum/nodeweb/internal/export"
	"github.com/san-kum/nodeweb/internal/gui"
	"github.com/san-kum/nodeweb/internal/metrics"
	"github.com/san-kum/nodeweb/internal/render"
	"github.com/san-kum/nodeweb/internal/scene"
	"github.com/san-kum/nodeweb/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	nodeColor   string
	background  string
	radius      float64
	lineWidth   float64
	interactive bool
	seed        int64
	frameRate   int
	width       int
	height      int
	// tui
	theme string
	// export
	exportFrames int
	outFile      string
	// stats
	statsFrames int
	// config init
	force bool
)

func main() {
	log.SetPrefix("nodeweb: ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "nodeweb",
		Short:        "animated particle network",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&nodeColor, "color", config.DefaultColor, "node and edge color (hex)")
	pf.StringVar(&background, "background", scene.DefaultBackground, "background color (hex)")
	pf.Float64Var(&radius, "radius", 2, "node radius")
	pf.Float64Var(&lineWidth, "line-width", 0.8, "edge line width")
	pf.BoolVar(&interactive, "interactive", true, "pointer joins the network")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	pf.IntVar(&width, "width", config.DefaultWidth, "canvas width")
	pf.IntVar(&height, "height", config.DefaultHeight, "canvas height")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "show the network in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "show the network in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", viz.ThemeMinimal.Name, "panel theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	exportCmd := &cobra.Command{
		Use:       "export [svg|gif]",
		Short:     "render frames without a window",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"svg", "gif"},
		RunE:      runExport,
	}
	exportCmd.Flags().IntVar(&exportFrames, "frames", 120, "frames to run")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default nodeweb.<format>)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "run headless and summarize the network",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&statsFrames, "frames", 600, "frames to run")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(guiCmd, tuiCmd, exportCmd, statsCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig layers the config file, then the preset, then any flag the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" && !cfg.Apply(preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = nodeColor
	}
	if flags.Changed("background") {
		cfg.Background = background
	}
	if flags.Changed("radius") {
		cfg.NodeRadius = radius
	}
	if flags.Changed("line-width") {
		cfg.LineWidth = lineWidth
	}
	if flags.Changed("interactive") {
		cfg.Interactive = interactive
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.Window.FPS = frameRate
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}

	if cfg.Window.FPS <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", cfg.Window.FPS)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}

// windowFor names the window after the configured canvas.
func windowFor(cfg *config.Config) gui.Window {
	title := cfg.Canvas
	if title == "" {
		title = "nodeweb"
	}
	return gui.Window{
		Title:  title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		FPS:    cfg.Window.FPS,
	}
}

func newScene(cmd *cobra.Command) (*scene.Scene, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	s, err := scene.New(cfg.Options())
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	s, cfg, err := newScene(cmd)
	if err != nil {
		return err
	}
	return gui.Run(cmd.Context(), s, windowFor(cfg))
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, cfg, err := newScene(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cmd.Context(), s, cfg.Window.FPS, theme)
}

func runExport(cmd *cobra.Command, args []string) error {
	format := args[0]
	if exportFrames <= 0 {
		return export.ErrNoFrames
	}
	s, cfg, err := newScene(cmd)
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = "nodeweb." + format
	}
	if err := writeExport(cmd.Context(), path, format, s, cfg); err != nil {
		return err
	}

	fmt.Printf("%s %d frames -> %s\n", good.Sprint("exported"), exportFrames, path)
	return nil
}

// writeExport renders to path and removes the file if anything fails.
func writeExport(ctx context.Context, path, format string, s *scene.Scene, cfg *config.Config) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	w, h := cfg.Window.Width, cfg.Window.Height
	switch format {
	case "svg":
		return export.WriteSVG(ctx, f, s, float64(w), float64(h), exportFrames)
	case "gif":
		return export.WriteGIF(ctx, f, s, w, h, exportFrames, cfg.Window.FPS)
	}
	return fmt.Errorf("unknown export format: %s", format)
}

func runStats(cmd *cobra.Command, args []string) error {
	s, cfg, err := newScene(cmd)
	if err != nil {
		return err
	}

	count := metrics.NewNodeCount()
	nodes := metrics.NewHistory(count, max(statsFrames, 1))
	edges := metrics.NewEdgeCount()
	opacity := metrics.NewMeanOpacity()
	s.AddObserver(metrics.Set{nodes, edges, opacity})

	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	if err := export.Headless(cmd.Context(), s, w, h, statsFrames, render.Discard{}, nil); err != nil {
		return err
	}

	eng := s.Engine()
	banner(fmt.Sprintf("%dx%d, %d frames", cfg.Window.Width, cfg.Window.Height, statsFrames))
	table([]string{"METRIC", "VALUE"}, [][]string{
		{"nodes", fmt.Sprintf("%d", eng.Particles())},
		{"target", fmt.Sprintf("%d", eng.Target())},
		{"peak nodes", fmt.Sprintf("%d", count.Peak())},
		{"edges (last)", fmt.Sprintf("%d", edges.Last())},
		{"edges (mean)", fmt.Sprintf("%.1f", edges.Value())},
		{"mean opacity", fmt.Sprintf("%.3f", opacity.Value())},
	})
	if eng.Particles() < eng.Target() {
		warn.Printf("\n  density still ramping: %d of %d nodes\n", eng.Particles(), eng.Target())
	}

	if values := nodes.Values(); len(values) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(values,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("nodes per frame")))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	rows := make([][]string, 0, len(config.Presets))
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		rows = append(rows, []string{
			name,
			cfg.Color,
			cfg.Background,
			fmt.Sprintf("%g", cfg.Tuning.DensityDivisor),
			fmt.Sprintf("%g", cfg.Tuning.LinkDistance),
			fmt.Sprintf("%t", cfg.Interactive),
		})
	}
	table([]string{"PRESET", "COLOR", "BACKGROUND", "DENSITY", "LINK", "INTERACTIVE"}, rows)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "nodeweb.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if preset != "" && !cfg.Apply(preset) {
		return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Printf("%s %s\n", good.Sprint("wrote"), filepath.Clean(path))
	return nil
}
