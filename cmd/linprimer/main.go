package main

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/linprimer/internal/config"
	"github.com/san-kum/linprimer/internal/logging"
	"github.com/san-kum/linprimer/internal/store"
	"github.com/san-kum/linprimer/internal/tui"
	"github.com/san-kum/linprimer/internal/viz"
)

var (
	configFile string
	profile    string
	dataDir    string
	themeName  string
	fps        int
	logLevel   string
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(negativeArgs(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "linprimer",
		Short:         "an animated linear algebra primer for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			return tui.Run(tui.NewApp(tuiOptions(cfg, logger)))
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&profile, "profile", "", "display profile ("+strings.Join(config.ListProfiles(), ", ")+")")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&themeName, "theme", config.DefaultTheme, "theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "animation frames per second")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		sectionsCmd(),
		showCmd(),
		playCmd(),
		truncateCmd(),
		matrixCmd(),
		recordCmd(),
		runsCmd(),
		plotCmd(),
		analyzeCmd(),
		exportSVGCmd(),
		tourCmd(),
		serveCmd(),
		configCmd(),
	)
	return rootCmd
}

var negativeNumber = regexp.MustCompile(`^-[0-9.]`)

// negativeArgs lets positional arguments start with a minus sign, as in
// "truncate -0.871 2" or "matrix -1,2;3,4". Flags are moved ahead of a "--"
// so that pflag reads such arguments as values instead of shorthands.
func negativeArgs(root *cobra.Command, args []string) []string {
	if slices.Contains(args, "--") {
		return args
	}
	cmd, _, err := root.Find(args)
	if err != nil {
		return args
	}
	lookup := func(tok string) *pflag.Flag {
		name, _, _ := strings.Cut(strings.TrimLeft(tok, "-"), "=")
		for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags(), root.PersistentFlags()} {
			var f *pflag.Flag
			if strings.HasPrefix(tok, "--") {
				f = fs.Lookup(name)
			} else if len(name) > 0 {
				f = fs.ShorthandLookup(name[:1])
			}
			if f != nil {
				return f
			}
		}
		return nil
	}

	var flags, positional []string
	negative := false
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if !strings.HasPrefix(tok, "-") || negativeNumber.MatchString(tok) {
			positional = append(positional, tok)
			negative = negative || negativeNumber.MatchString(tok)
			continue
		}
		flags = append(flags, tok)
		f := lookup(tok)
		inline := strings.Contains(tok, "=") || (!strings.HasPrefix(tok, "--") && len(tok) > 2)
		if f != nil && f.NoOptDefVal == "" && !inline && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	if !negative {
		return args
	}

	path := strings.Fields(cmd.CommandPath())[1:]
	if len(positional) < len(path) || !slices.Equal(positional[:len(path)], path) {
		return args
	}
	out := append([]string{}, path...)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional[len(path):]...)
}

// setup resolves the configuration (file, then profile, then explicit
// flags) and builds the logger.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	if profile != "" {
		p := config.GetProfile(profile)
		if p == nil {
			return nil, nil, fmt.Errorf("unknown profile %q (have %s)", profile, strings.Join(config.ListProfiles(), ", "))
		}
		cfg.Apply(p)
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("theme") {
		if !viz.HasTheme(themeName) {
			return nil, nil, fmt.Errorf("unknown theme %q (have %s)", themeName, strings.Join(viz.ThemeNames(), ", "))
		}
		cfg.Theme = themeName
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	viz.SetTheme(cfg.Theme)
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))
	logger.Debug("config resolved", "theme", cfg.Theme, "fps", cfg.FPS, "data", cfg.DataDir, "profile", profile)
	return cfg, logger, nil
}

func tuiOptions(cfg *config.Config, logger *slog.Logger) tui.Options {
	return tui.Options{
		Theme:  cfg.Theme,
		FPS:    cfg.FPS,
		Cols:   cfg.Canvas.Width,
		Logger: logger,
	}
}

func openStore(cfg *config.Config) (*store.Store, error) {
	st := store.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}
	return st, nil
}

func saveOptions(cfg *config.Config) store.SaveOptions {
	return store.SaveOptions{FPS: cfg.FPS, Precision: cfg.Precision}
}
