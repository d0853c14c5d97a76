package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/wsglyph/internal/config"
	"github.com/1broseidon/wsglyph/internal/daemon"
	"github.com/1broseidon/wsglyph/internal/i3"
	"github.com/1broseidon/wsglyph/internal/icon"
	"github.com/1broseidon/wsglyph/internal/ipc"
	"github.com/1broseidon/wsglyph/internal/reconcile"
	"github.com/1broseidon/wsglyph/internal/tui"
	"github.com/1broseidon/wsglyph/internal/x11"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		os.Exit(runDaemon(os.Args[2:]))
	case "rename":
		os.Exit(runRename(os.Args[2:]))
	case "clean":
		os.Exit(runClean(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "icons":
		os.Exit(runIcons(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wsglyph <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Rename workspaces on window events (foreground)")
	fmt.Fprintln(w, "  rename              Run a single rename pass and exit")
	fmt.Fprintln(w, "  clean               Strip icons from all workspace names and exit")
	fmt.Fprintln(w, "  status              Show daemon status")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  icons               Browse the icon tables interactively")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'wsglyph <command> --help' for command-specific options.")
}

// loadConfig loads from the given path or the standard location.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

// passOptions builds reconciliation options from config plus the
// command-line overrides shared by daemon and rename.
func passOptions(cfg *config.Config, noRenumber bool, formatFlag string) (reconcile.Options, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return reconcile.Options{}, err
	}
	if formatFlag != "" {
		mode, err = icon.ParseMode(formatFlag)
		if err != nil {
			return reconcile.Options{}, err
		}
	}
	return reconcile.Options{
		Renumber:    cfg.GetRenumberWorkspaces() && !noRenumber,
		SingleIcon:  cfg.SingleIconOnly,
		DefaultIcon: cfg.DefaultIcon,
		Format:      mode,
	}, nil
}

// buildAutonamer wires the full stack: config, X11 property source,
// resolver, i3 client. The returned cleanup closes the X connection.
func buildAutonamer(cfg *config.Config, opts reconcile.Options, logger *slog.Logger) (*daemon.Autonamer, func(), error) {
	xc, err := x11.NewClient(logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to X display: %w", err)
	}

	resolver := icon.NewResolver(cfg.Table(), xc, icon.ResolverOptions{
		DefaultIcon:    cfg.DefaultIcon,
		NamesFirst:     cfg.GetCheckWindowNamesFirst(),
		ExactNameMatch: cfg.RequireExactNameMatch,
		Logger:         logger,
	})
	wm := i3.NewClient(logger)
	namer := daemon.New(wm, resolver.Resolve, opts, logger)
	return namer, xc.Close, nil
}

func componentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func runDaemon(args []string) int {
	fs := flag.NewFlagSet("daemon", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wsglyph daemon [flags]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Listen for i3 window events and rename workspaces to show icons")
		fmt.Fprintln(os.Stderr, "for running programs, renumbering them in ascending order with a")
		fmt.Fprintln(os.Stderr, "gap between monitors. On SIGINT/SIGTERM the icons are stripped")
		fmt.Fprintln(os.Stderr, "before exiting.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "Config file path (default: ~/.config/wsglyph/config.yaml)")
	noRenumber := fs.Bool("norenumber_workspaces", false, "Disable automatic workspace re-numbering")
	format := fs.String("icon_list_format", "", "Icon list format: default, mathematician or chemist")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}
	opts, err := passOptions(cfg, *noRenumber, *format)
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 1
	}
	log.Printf("Configuration loaded (format: %s, renumber: %v)", opts.Format, opts.Renumber)

	logger := componentLogger()
	namer, cleanup, err := buildAutonamer(cfg, opts, logger)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer cleanup()

	server, err := ipc.NewServer(namer)
	if err != nil {
		log.Printf("Failed to create control server: %v", err)
		return 1
	}
	if err := server.Start(); err != nil {
		log.Printf("Failed to start control server: %v", err)
		return 1
	}
	defer server.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("wsglyph daemon started successfully")
	if err := namer.Run(ctx); err != nil {
		log.Printf("Daemon stopped: %v", err)
		return 1
	}
	log.Println("wsglyph daemon exited cleanly")
	return 0
}

func runRename(args []string) int {
	fs := flag.NewFlagSet("rename", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wsglyph rename [flags]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run one rename pass against the current tree, without a daemon.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "Config file path (default: ~/.config/wsglyph/config.yaml)")
	noRenumber := fs.Bool("norenumber_workspaces", false, "Disable automatic workspace re-numbering")
	format := fs.String("icon_list_format", "", "Icon list format: default, mathematician or chemist")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	opts, err := passOptions(cfg, *noRenumber, *format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	namer, cleanup, err := buildAutonamer(cfg, opts, componentLogger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer cleanup()

	if err := namer.RenameNow(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runClean(args []string) int {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wsglyph clean")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Strip icon annotations from all workspace names, keeping numbers")
		fmt.Fprintln(os.Stderr, "and shortnames. Works with or without a running daemon.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "clean takes no arguments")
		fs.Usage()
		return 2
	}

	logger := componentLogger()
	wm := i3.NewClient(logger)
	workspaces, err := wm.Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, r := range reconcile.PlanCleanup(workspaces) {
		if err := wm.Rename(r.From, r.To); err != nil {
			// Best effort: keep going so every workspace gets a chance.
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return 0
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wsglyph status")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show daemon status via the control socket.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "status takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	status, err := client.GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("daemon_running:   %v\n", status.DaemonRunning)
	fmt.Printf("uptime_seconds:   %d\n", status.UptimeSeconds)
	fmt.Printf("passes:           %d\n", status.Passes)
	fmt.Printf("renames_issued:   %d\n", status.RenamesIssued)
	fmt.Printf("icon_list_format: %s\n", status.IconListFormat)
	fmt.Printf("renumbering:      %v\n", status.Renumbering)
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  wsglyph config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  wsglyph config print [--path PATH] [--defaults]")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/wsglyph/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		if _, err := loadConfig(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/wsglyph/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var cfg *config.Config
		if *printDefaults {
			cfg = config.DefaultConfig()
		} else {
			var err error
			cfg, err = loadConfig(*path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func runIcons(args []string) int {
	fs := flag.NewFlagSet("icons", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wsglyph icons [--filter S]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Browse the merged icon tables interactively.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings:")
		fmt.Fprintln(os.Stderr, "  tab       Switch between class and name tables")
		fmt.Fprintln(os.Stderr, "  /         Edit the filter")
		fmt.Fprintln(os.Stderr, "  j/k, ↑/↓  Move selection")
		fmt.Fprintln(os.Stderr, "  q, Esc    Quit")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "Config file path (default: ~/.config/wsglyph/config.yaml)")
	filter := fs.String("filter", "", "Initial filter text")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := tui.Run(cfg.Table(), *filter); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
