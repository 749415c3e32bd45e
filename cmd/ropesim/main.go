package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ropesim/internal/analysis"
	"github.com/san-kum/ropesim/internal/config"
	"github.com/san-kum/ropesim/internal/export"
	"github.com/san-kum/ropesim/internal/gui"
	"github.com/san-kum/ropesim/internal/metrics"
	"github.com/san-kum/ropesim/internal/noise"
	"github.com/san-kum/ropesim/internal/optim"
	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/sim"
	"github.com/san-kum/ropesim/internal/tui"
)

var (
	configFile string
	preset     string
	duration   float64
	particles  int
	length     float64
	stiffness  float64
	iterations int
	windScale  float64
	windSeed   int64
	outFile    string
	frameRate  int
	wireframe  bool
	// mesh command
	camX, camY, camZ float64
	// tune command
	tuneMetric string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ropesim",
		Short: "verlet rope simulation and ribbon tessellation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "preset name (powerline, tether, chain, banner)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless run with metrics",
		RunE:  runHeadless,
	}
	addRopeFlags(runCmd)
	runCmd.Flags().StringVar(&outFile, "out", "", "write run record as json")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal view",
		RunE:  runLive,
	}
	addRopeFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "display frame rate")
	liveCmd.Flags().BoolVar(&wireframe, "mesh", false, "draw the ribbon wireframe instead of the chain")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "open the 3d viewer",
		RunE:  runView,
	}
	addRopeFlags(viewCmd)

	meshCmd := &cobra.Command{
		Use:   "mesh",
		Short: "tessellate once and write a wavefront obj",
		RunE:  runMesh,
	}
	addRopeFlags(meshCmd)
	meshCmd.Flags().StringVar(&outFile, "out", "rope.obj", "output obj path")
	meshCmd.Flags().Float64Var(&camX, "cam-x", 0, "camera x")
	meshCmd.Flags().Float64Var(&camY, "cam-y", 0, "camera y")
	meshCmd.Flags().Float64Var(&camZ, "cam-z", 10, "camera z")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid-search stiffness and iterations",
		RunE:  runTune,
	}
	addRopeFlags(tuneCmd)
	tuneCmd.Flags().StringVar(&tuneMetric, "metric", "stretch", "metric to minimize (stretch, settle, sway)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "dominant sway frequency of the rope tip",
		RunE:  runAnalyze,
	}
	addRopeFlags(analyzeCmd)

	rootCmd.AddCommand(runCmd, liveCmd, viewCmd, meshCmd, tuneCmd, analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addRopeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&duration, "time", 10.0, "simulated duration (seconds)")
	cmd.Flags().IntVar(&particles, "particles", 0, "override particle count")
	cmd.Flags().Float64Var(&length, "length", 0, "override rope length")
	cmd.Flags().Float64Var(&stiffness, "stiffness", 0, "override constraint stiffness")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "override solver iterations")
	cmd.Flags().Float64Var(&windScale, "wind", -1, "override wind scale (0 disables)")
	cmd.Flags().Int64Var(&windSeed, "wind-seed", 0, "wind noise seed")
}

// loadConfig resolves --config / --preset / defaults, then applies the
// per-command overrides.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	case preset != "":
		c, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		copied := *c
		cfg = &copied
	default:
		cfg = config.Default()
	}

	if particles > 0 {
		cfg.Particles = particles
	}
	if length > 0 {
		cfg.Length = length
	}
	if stiffness > 0 {
		cfg.Stiffness = stiffness
	}
	if iterations > 0 {
		cfg.Iterations = iterations
	}
	if windScale >= 0 {
		cfg.ApplyWind = windScale > 0
		cfg.WindScale = windScale
	}
	if windSeed != 0 {
		cfg.WindSeed = windSeed
	}
	return cfg, nil
}

func buildRope(cfg *config.Config) (*rope.Rope, error) {
	end, err := cfg.EndDriver()
	if err != nil {
		return nil, err
	}
	opts := []rope.Option{
		rope.WithOrigin(cfg.Origin.V3()),
		rope.WithWind(noise.NewValue(cfg.WindSeed)),
	}
	if end != nil {
		opts = append(opts, rope.WithEndTarget(end))
	}
	if w := cfg.World(); w != nil {
		opts = append(opts, rope.WithWorld(w))
	}
	return rope.New(cfg.RopeParams(), opts...)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := buildRope(cfg)
	if err != nil {
		return err
	}

	runner := sim.New(r)
	runner.AddMetric(metrics.NewStretch())
	runner.AddMetric(metrics.NewSettle(0.01))
	runner.AddMetric(metrics.NewSway())

	ctx, cancel := signalContext()
	defer cancel()

	result, err := runner.Run(ctx, duration)
	if err != nil {
		return err
	}

	fmt.Printf("frames: %d\n", result.Frames)
	for name, v := range result.Metrics {
		fmt.Printf("%-8s %.5f\n", name, v)
	}
	if len(result.Stretch) > 1 {
		fmt.Println("\nworst segment stretch over time:")
		fmt.Println(asciigraph.Plot(result.Stretch, asciigraph.Height(10), asciigraph.Width(70)))
	}

	if outFile != "" {
		rec := export.NewRunRecord(preset, cfg.Particles, cfg.Length, duration, result)
		if err := export.SaveJSON(outFile, rec); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := buildRope(cfg)
	if err != nil {
		return err
	}

	lr := tui.NewLiveRenderer(frameRate, wireframe)
	lr.Start()
	defer lr.Stop()

	runner := sim.New(r)
	runner.AddObserver(lr)

	ctx, cancel := signalContext()
	defer cancel()
	_, err = runner.Run(ctx, duration)
	if err == context.Canceled {
		return nil
	}
	return err
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := buildRope(cfg)
	if err != nil {
		return err
	}
	title := preset
	if title == "" {
		title = "default"
	}
	gui.NewApp(r, title).Run()
	return nil
}

func runMesh(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := buildRope(cfg)
	if err != nil {
		return err
	}

	// Let the rope settle for the requested duration before snapshotting.
	runner := sim.New(r)
	ctx, cancel := signalContext()
	defer cancel()
	if _, err := runner.Run(ctx, duration); err != nil {
		return err
	}

	m := r.Render(mgl64.Vec3{camX, camY, camZ})
	if m == nil {
		return fmt.Errorf("drawing is disabled in this configuration")
	}
	if err := export.SaveOBJ(outFile, m, "rope"); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d triangles)\n", outFile, m.TriangleCount())
	return nil
}

func runTune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	grid := optim.NewGridSearch(
		[]string{"stiffness", "iterations"},
		[][]float64{
			{0.5, 0.7, 0.9, 1.0, 1.2},
			{1, 2, 4, 8},
		},
		duration,
	)

	build := func(params map[string]float64) (*sim.Runner, error) {
		c := *cfg
		c.Stiffness = params["stiffness"]
		c.Iterations = int(params["iterations"])
		r, err := buildRope(&c)
		if err != nil {
			return nil, err
		}
		runner := sim.New(r)
		runner.AddMetric(metrics.NewStretch())
		runner.AddMetric(metrics.NewSettle(0.01))
		runner.AddMetric(metrics.NewSway())
		return runner, nil
	}

	ctx, cancel := signalContext()
	defer cancel()
	best, value, err := grid.Search(ctx, build, tuneMetric)
	if err != nil {
		return err
	}
	if best == nil {
		return fmt.Errorf("no parameter combination produced metric %q", tuneMetric)
	}
	fmt.Printf("best %s = %.5f with stiffness=%.2f iterations=%d\n",
		tuneMetric, value, best["stiffness"], int(best["iterations"]))
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := buildRope(cfg)
	if err != nil {
		return err
	}

	runner := sim.New(r)
	ctx, cancel := signalContext()
	defer cancel()
	result, err := runner.Run(ctx, duration)
	if err != nil {
		return err
	}

	// Sway is mostly horizontal; analyze the tip's X track.
	xs := make([]float64, len(result.Tip))
	for i, p := range result.Tip {
		xs[i] = p.X()
	}
	freq, mag := analysis.DominantFrequency(xs, float64(cfg.PhysicsRate))
	fmt.Printf("dominant tip frequency: %.3f Hz (magnitude %.3f)\n", freq, mag)

	if ps := analysis.PowerSpectrum(xs); len(ps) > 1 {
		fmt.Println("\npower spectrum:")
		fmt.Println(asciigraph.Plot(ps, asciigraph.Height(10), asciigraph.Width(70)))
	}
	return nil
}
