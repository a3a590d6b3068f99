package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/joho/godotenv"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/content"
	"github.com/san-kum/folio/internal/export"
	"github.com/san-kum/folio/internal/gui"
	"github.com/san-kum/folio/internal/scene"
	"github.com/san-kum/folio/internal/server"
	"github.com/san-kum/folio/internal/storage"
	"github.com/san-kum/folio/internal/tui"
	"github.com/san-kum/folio/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	themeName  string
	fps        int
	seed       int64
	// snapshot
	ticks   int
	width   int
	height  int
	format  string
	outFile string
	count   int
	// show
	showSVG bool
	// stats
	samples int
	bins    int
)

// main registers the commands and runs the terminal page when no
// subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "terminal portfolio with a particle splash",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, p, err := setup(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, p)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "snapshot directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "apply a named preset")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", 0, "frames per second")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "particle field seed (0 = random)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "show the page in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, p, err := setup(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg, p)
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one splash frame to svg and archive it",
		RunE:  takeSnapshot,
	}
	snapshotCmd.Flags().IntVar(&ticks, "ticks", 300, "frames to advance before rendering")
	snapshotCmd.Flags().IntVar(&width, "width", 640, "width in pixels")
	snapshotCmd.Flags().IntVar(&height, "height", 400, "height in pixels")
	snapshotCmd.Flags().StringVar(&format, "format", string(export.FormatPoints), "points or braille")
	snapshotCmd.Flags().StringVarP(&outFile, "output", "o", "", "also write the svg here")
	snapshotCmd.Flags().IntVarP(&count, "count", "n", 1, "snapshots to render with consecutive seeds")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list archived snapshots",
		RunE:  listSnapshots,
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "print snapshot metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showSnapshot,
	}
	showCmd.Flags().BoolVar(&showSVG, "svg", false, "print the svg instead")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "compare the particle distribution against linear sampling",
		RunE:  samplerStats,
	}
	statsCmd.Flags().IntVar(&samples, "samples", 20000, "particles to sample")
	statsCmd.Flags().IntVar(&bins, "bins", 20, "histogram bins over cos(phi)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark splash frames",
		RunE:  benchSplash,
	}
	benchCmd.Flags().IntVar(&ticks, "ticks", 600, "frames per size")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the page over http",
		RunE:  serve,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a starter config with the built-in profile",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s theme=%s fps=%d\n", name, p.Theme, p.FPS)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, snapshotCmd, listCmd, showCmd, statsCmd, benchCmd, serveCmd, initConfigCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the config file, applies the preset and flag overrides, and
// resolves the profile.
func setup(cmd *cobra.Command) (*config.Config, *content.Profile, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if preset != "" && !cfg.ApplyPreset(preset) {
		return nil, nil, fmt.Errorf("unknown preset: %s (try: folio presets)", preset)
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	p, err := cfg.ResolveProfile()
	if err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}

func takeSnapshot(cmd *cobra.Command, args []string) error {
	if count < 1 {
		return fmt.Errorf("count must be positive")
	}
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	s := cfg.SeedOr(time.Now().UnixNano())
	theme := viz.GetTheme(cfg.Theme)

	snaps, err := export.Ensemble(cmd.Context(), export.Options{
		Seed:   s,
		Ticks:  ticks,
		Width:  width,
		Height: height,
		Format: export.Format(format),
		Theme:  theme,
	}, count)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	for i, snap := range snaps {
		id, err := st.Save(storage.SnapshotMetadata{
			Seed:      s + int64(i),
			Ticks:     ticks,
			Yaw:       snap.Rotation.Yaw,
			Pitch:     snap.Rotation.Pitch,
			Width:     width,
			Height:    height,
			Particles: scene.ParticleCount,
			Visible:   snap.Visible,
			Format:    format,
			Theme:     theme.Name,
		}, snap.SVG)
		if err != nil {
			return err
		}
		fmt.Printf("snapshot: %s  seed: %d  visible: %d/%d\n", id, s+int64(i), snap.Visible, scene.ParticleCount)
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, []byte(snaps[0].SVG), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
	}
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	snaps, err := st.List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSEED\tTICKS\tSIZE\tVISIBLE\tFORMAT")

	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%dx%d\t%d\t%s\n",
			s.ID,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Seed,
			s.Ticks,
			s.Width, s.Height,
			s.Visible,
			s.Format,
		)
	}

	return w.Flush()
}

func showSnapshot(cmd *cobra.Command, args []string) error {
	id := args[0]
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if showSVG {
		svg, err := st.LoadSVG(id)
		if err != nil {
			return err
		}
		fmt.Println(svg)
		return nil
	}

	meta, err := st.Load(id)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func samplerStats(cmd *cobra.Command, args []string) error {
	if samples <= 0 || bins <= 1 {
		return fmt.Errorf("need samples > 0 and bins > 1")
	}
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	s := cfg.SeedOr(time.Now().UnixNano())

	uniform := scene.Histogram(scene.Sample(samples, scene.Radius, rand.New(rand.NewSource(s))), scene.Radius, bins)
	linear := scene.Histogram(scene.SampleLinear(samples, scene.Radius, rand.New(rand.NewSource(s))), scene.Radius, bins)

	fmt.Printf("samples: %d  bins: %d  seed: %d\n\n", samples, bins, s)
	for _, h := range []struct {
		name   string
		counts []int
	}{
		{"acos(2u-1)", uniform},
		{"linear phi", linear},
	} {
		data := make([]float64, len(h.counts))
		for i, c := range h.counts {
			data[i] = float64(c)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.LowerBound(0),
			asciigraph.Caption(fmt.Sprintf("%s  chi2=%.1f  (cos phi from -1 to 1)", h.name, scene.ChiSquare(h.counts))),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func benchSplash(cmd *cobra.Command, args []string) error {
	if ticks <= 0 {
		return fmt.Errorf("ticks must be positive")
	}
	sizes := []scene.Viewport{{Width: 160, Height: 96}, {Width: 640, Height: 400}, {Width: 1920, Height: 1080}}

	fmt.Printf("benchmarking %d particles\n\n", scene.ParticleCount)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tTICKS\tTIME\tTICKS/SEC\tVISIBLE")

	for _, vp := range sizes {
		splash := viz.NewSplash(60)
		ctrl := scene.New(rand.New(rand.NewSource(42)))
		if err := ctrl.Initialize(splash, vp); err != nil {
			return err
		}

		start := time.Now()
		for i := 0; i < ticks; i++ {
			ctrl.Tick()
		}
		elapsed := time.Since(start)
		ctrl.Dispose()

		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\t%d\n",
			vp.Width, vp.Height, ticks, elapsed, float64(ticks)/elapsed.Seconds(), splash.Drawn())
	}

	return w.Flush()
}

func serve(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}
	cfg, p, err := setup(cmd)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if addr == "" {
		addr = config.DefaultAddr
	}

	r := server.New(p, server.Options{
		Seed:  cfg.SeedOr(time.Now().UnixNano()),
		Theme: viz.GetTheme(cfg.Theme),
	})
	log.Printf("serving %s on %s", p.Name, addr)
	return r.Run(addr)
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "folio.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.DefaultConfig()
	cfg.Profile = content.Default()
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
