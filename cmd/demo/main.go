// Demo reads lines with tab completion over a fixed word list.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
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
		history    = pflag.String("history", "", "History file; completion demo runs without history unless set")
		prompt     = pflag.StringP("prompt", "p", "", "Prompt, overrides the config")
		words      = pflag.StringSlice("words", nil, "Completion words, overrides the config")
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

	var cfg *config.Config
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if pflag.CommandLine.Changed("prompt") {
		cfg.Prompt.Text = *prompt
	}
	cfg.History.Enabled = *history != ""
	cfg.History.File = *history
	if pflag.CommandLine.Changed("words") {
		cfg.Completion.Words = completionWords(*words)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// completionWords appends the trailing space libeditline inserts after a
// completed word.
func completionWords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		out = append(out, w+" ")
	}
	return out
}

func run(cfg *config.Config, log *slog.Logger) error {
	state, err := term.Save(os.Stdin)
	if err != nil {
		log.Debug("stdin is not a terminal", "error", err)
	} else {
		defer state.Restore()
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			state.Restore()
			os.Exit(130)
		}()
	}

	opts, err := session.FromConfig(cfg, true)
	if err != nil {
		return err
	}
	opts.Out = os.Stdout
	opts.Logger = log
	log.Debug("completion words", "words", strings.Join(opts.Words, "|"))

	s, err := session.New(session.Native(), opts)
	if err != nil {
		return err
	}
	return s.Run()
}
