package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/morphpage/internal/audio"
	"github.com/san-kum/morphpage/internal/config"
	"github.com/san-kum/morphpage/internal/morph"
	"github.com/san-kum/morphpage/internal/prefs"
	"github.com/san-kum/morphpage/internal/theme"
	"github.com/san-kum/morphpage/internal/tui"
	"github.com/san-kum/morphpage/internal/viz"
)

var (
	configFile string
	logFile    string
	preset     string
	speedMs    int
	pauseMs    int
	frames     int
	ticks      int
	jsonOut    string
	volume     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "morphpage",
		Short:         "glitching not-found title and front page in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotFound(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write debug logs to this file")

	notFoundCmd := &cobra.Command{
		Use:   "notfound",
		Short: "show the not-found page",
		Args:  cobra.NoArgs,
		RunE:  runNotFound,
	}
	notFoundCmd.Flags().StringVar(&preset, "preset", "", "use a morph preset")

	frontCmd := &cobra.Command{
		Use:   "front",
		Short: "show the front page",
		Args:  cobra.NoArgs,
		RunE:  runFront,
	}
	frontCmd.Flags().Float64Var(&volume, "volume", 0.1, "theme click volume (0 mutes)")

	morphCmd := &cobra.Command{
		Use:   "morph [text]",
		Short: "stream the morphing text to the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMorph,
	}
	morphCmd.Flags().StringVar(&preset, "preset", "", "use a morph preset")
	morphCmd.Flags().IntVar(&speedMs, "speed", 0, "tick interval in ms (overrides config)")
	morphCmd.Flags().IntVar(&pauseMs, "pause", -1, "clean-text pause in ms (overrides config)")
	morphCmd.Flags().IntVar(&frames, "frames", 0, "stop after this many frames (0 = until interrupted)")

	traceCmd := &cobra.Command{
		Use:   "trace [text]",
		Short: "dry-run the animation on virtual time and plot it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&preset, "preset", "", "use a morph preset")
	traceCmd.Flags().IntVar(&ticks, "ticks", 24, "number of frames after the first")
	traceCmd.Flags().StringVar(&jsonOut, "json", "", "export the frames as json to a file (- prints json instead of the chart)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list morph presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(notFoundCmd, frontCmd, morphCmd, traceCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newLogger writes development logs to --log. Without it nothing is logged,
// the pages own the terminal.
func newLogger() (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{logFile}
	cfg.ErrorOutputPaths = []string{logFile}
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("opening log %s: %w", logFile, err)
	}
	return log, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// morphConfig picks the morph section, a preset if one was named, and the
// text argument if given.
func morphConfig(cfg *config.Config, args []string) (config.MorphConfig, error) {
	mc := cfg.Morph
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return mc, fmt.Errorf("unknown preset %q (see: morphpage presets)", preset)
		}
		mc = *p
	}
	if len(args) > 0 {
		mc.Text = args[0]
	}
	return mc, nil
}

func runNotFound(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mc, err := morphConfig(cfg, nil)
	if err != nil {
		return err
	}
	return viz.RunNotFound(mc, prefs.Open(cfg.Storage.AppName, log), log)
}

func runFront(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	player, closePlayer := newPlayer(volume, log)
	defer closePlayer()

	return viz.RunFront(cfg, prefs.Open(cfg.Storage.AppName, log), player, log)
}

// newPlayer opens the theme click. It returns a nil Player when the sound is
// muted or the speaker cannot be opened.
func newPlayer(volume float64, log *zap.Logger) (theme.Player, func()) {
	if volume <= 0 {
		return nil, func() {}
	}
	c := audio.NewClicker(volume)
	if err := c.Initialize(); err != nil {
		log.Warn("theme sound disabled", zap.Error(err))
		return nil, func() {}
	}
	return c, c.Close
}

func runMorph(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mc, err := morphConfig(cfg, args)
	if err != nil {
		return err
	}
	mcfg, err := mc.ToMorph()
	if err != nil {
		return err
	}
	if speedMs != 0 {
		mcfg.Interval = time.Duration(speedMs) * time.Millisecond
	}
	if pauseMs >= 0 {
		mcfg.Pause = time.Duration(pauseMs) * time.Millisecond
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stream := tui.NewStream(os.Stdout, frames)
	defer stream.Close()

	a, err := morph.New(mc.Text, stream, mcfg, morph.WithLogger(log))
	if err != nil {
		return err
	}
	a.Start()
	defer a.Stop()

	select {
	case <-ctx.Done():
	case <-stream.Done():
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mc, err := morphConfig(cfg, args)
	if err != nil {
		return err
	}
	mcfg, err := mc.ToMorph()
	if err != nil {
		return err
	}

	trace, err := tui.Trace(mc.Text, mcfg, ticks)
	if err != nil {
		return err
	}
	switch jsonOut {
	case "":
		return tui.WriteTrace(os.Stdout, trace)
	case "-":
		return tui.EncodeJSON(os.Stdout, mc.Text, mcfg, trace)
	}
	if err := tui.ExportJSON(jsonOut, mc.Text, mcfg, trace); err != nil {
		return err
	}
	return tui.WriteTrace(os.Stdout, trace)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tINTERVAL\tPAUSE\tTEXT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dms\t%dms\t%s\n", name, p.IntervalMs, p.PauseMs, p.Text)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "morphpage.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
