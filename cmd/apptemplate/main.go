package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"apptemplate/internal/config"
	"apptemplate/internal/i18n"
	"apptemplate/internal/logging"
	"apptemplate/internal/trace"
	"apptemplate/internal/ui"
)

// shutdownTimeout bounds how long pending spans may take to flush on exit.
const shutdownTimeout = 5 * time.Second

type options struct {
	envFile     string
	noAltScreen bool
	printConfig bool
	maxEvents   int
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.envFile, "env-file", "", "dotenv file to load (default $ENVFILE, then .env)")
	flag.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")
	flag.BoolVar(&opts.printConfig, "print-config", false, "print the resolved configuration and exit")
	flag.IntVar(&opts.maxEvents, "events", trace.DefaultMaxEvents, "navigation events kept for the debug log")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: apptemplate [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs the starter app: a home screen with an animated box and\n")
		fmt.Fprintf(os.Stderr, "links to a details screen, configured from the environment.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func main() {
	opts := parseFlags()

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.printConfig {
		printConfig(cfg)
		return
	}

	if err := run(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, opts options) error {
	log, closer, err := logging.New(logging.Options{
		File:  cfg.LogFile,
		Level: cfg.LogLevel,
		Debug: cfg.DebugEnabled(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer closer.Close()

	log.Info().
		Str("app", cfg.AppName).
		Str("envFile", cfg.EnvFile).
		Bool("debug", cfg.DebugEnabled()).
		Msg("starting")

	catalog, err := i18n.FromEnv()
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	ctx := context.Background()
	exporter, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		// Export is optional; keep recording locally.
		log.Warn().Err(err).Msg("otlp export disabled")
		exporter = nil
	}
	recorder := trace.NewRecorder(opts.maxEvents, exporter)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := recorder.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("trace shutdown")
		}
	}()

	model, err := ui.NewAppModel(ui.Env{
		Config:   cfg,
		Catalog:  catalog,
		Log:      log,
		Recorder: recorder,
	})
	if err != nil {
		return err
	}

	var progOpts []tea.ProgramOption
	if !opts.noAltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model.AsTeaModel(), progOpts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	log.Info().Int("depth", model.Nav.Depth()).Msg("exiting")
	return nil
}

// printConfig writes the resolved configuration to stderr, masking secrets.
func printConfig(cfg config.Config) {
	out := logging.NewConsole(os.Stderr, zerolog.InfoLevel)
	file := cfg.EnvFile
	if file == "" {
		file = "(none)"
	}
	out.Info().Str("file", file).Msg("env file")
	for _, e := range cfg.Entries() {
		out.Info().Str("key", e.Key).Str("value", e.Value).Msg("config")
	}
}
