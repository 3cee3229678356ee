// Cli reads lines with libeditline, keeping history across runs and
// ending input on Meta-d.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"editline"
	"editline/config"
	"editline/logging"
	"editline/session"
	"editline/term"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "Config file (default ~/.config/editline/config.toml)")
		history    = pflag.String("history", "", "History file, overrides the config")
		prompt     = pflag.StringP("prompt", "p", "", "Prompt, overrides the config")
		initConfig = pflag.Bool("init-config", false, "Print the default config and exit")
		logLevel   = pflag.String("log-level", "warn", "Log level (debug, info, warn, error)")
		noColor    = pflag.Bool("no-color", false, "Disable styled output")
	)
	pflag.Parse()

	if *noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if *initConfig {
		fmt.Print(config.DefaultTOML())
		return
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	log := logging.New(os.Stderr, level)
	editline.SetLogger(log)

	var o overrides
	if pflag.CommandLine.Changed("prompt") {
		o.prompt = prompt
	}
	o.history = *history
	cfg, err := loadConfig(*configPath, o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// overrides are command-line settings that win over the config file.
type overrides struct {
	prompt  *string // nil keeps the configured prompt
	history string
}

// loadConfig loads the config at path, or the user config when path is
// empty, applies o and validates the result.
func loadConfig(path string, o overrides) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.prompt != nil {
		cfg.Prompt.Text = *o.prompt
	}
	if o.history != "" {
		cfg.History.Enabled = true
		cfg.History.File = o.history
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config, log *slog.Logger) error {
	// libeditline leaves the terminal raw if killed mid-line
	state, err := term.Save(os.Stdin)
	switch {
	case err == nil:
		defer state.Restore()
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigCh
			state.Restore()
			log.Info("interrupted", "signal", sig.String())
			os.Exit(130)
		}()
		if w, h, err := term.Size(os.Stdin); err == nil {
			log.Debug("terminal", "width", w, "height", h)
		}
	default:
		log.Debug("stdin is not a terminal", "error", err)
	}

	opts, err := session.FromConfig(cfg, false)
	if err != nil {
		return err
	}
	opts.Out = os.Stdout
	opts.Logger = log

	s, err := session.New(session.Native(), opts)
	if err != nil {
		return err
	}
	if err := s.Run(); err != nil {
		return err
	}
	log.Info("session ended", "lines", s.Lines())
	return nil
}
