// Package session runs an interactive read-eval-print session on top of
// libeditline: load history, bind keys, read lines until the user quits,
// save history.
package session

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"editline"
	"editline/config"
)

// Editor is the slice of the editline API a session drives.
type Editor interface {
	ReadLine(prompt string) (string, bool)
	AddHistory(line string)
	ReadHistory(path string) error
	WriteHistory(path string) error
	BindKey(k editline.Key, h editline.KeyHandler) error
	SetCompleter(c editline.Completer)
}

type lineEditor struct{}

func (lineEditor) ReadLine(prompt string) (string, bool)               { return editline.ReadLine(prompt) }
func (lineEditor) AddHistory(line string)                              { editline.AddHistory(line) }
func (lineEditor) ReadHistory(path string) error                       { return editline.ReadHistory(path) }
func (lineEditor) WriteHistory(path string) error                      { return editline.WriteHistory(path) }
func (lineEditor) BindKey(k editline.Key, h editline.KeyHandler) error { return editline.BindKey(k, h) }
func (lineEditor) SetCompleter(c editline.Completer)                   { editline.SetCompleter(c) }

// Native returns the Editor backed by libeditline.
func Native() Editor {
	return lineEditor{}
}

// QuitCommand ends the session when typed as a whole line.
const QuitCommand = "exit"

var (
	echoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	byeStyle  = lipgloss.NewStyle().Bold(true)
)

// Options configures a Session.
type Options struct {
	Prompt      string
	HistoryPath string   // empty disables history
	Words       []string // nil disables completion
	Keybindings config.Keybindings

	Out    io.Writer
	Logger *slog.Logger
}

// Session is one interactive run.
type Session struct {
	ed   Editor
	opts Options
	log  *slog.Logger

	lines int
}

// New creates a session. Key bindings and completion are registered here
// so they are in place before the first line is read.
func New(ed Editor, opts Options) (*Session, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{ed: ed, opts: opts, log: opts.Logger}

	if err := s.bindKeys(); err != nil {
		return nil, err
	}
	if opts.Words != nil {
		ed.SetCompleter(editline.Words(opts.Words))
		s.log.Debug("completion enabled", "words", len(opts.Words))
	}
	return s, nil
}

func (s *Session) bindKeys() error {
	actions := []struct {
		name    string
		key     string
		handler editline.KeyHandler
	}{
		{"exit", s.opts.Keybindings.Exit, s.exit},
		{"signal", s.opts.Keybindings.Signal, func() editline.Status { return editline.Signal }},
		{"accept", s.opts.Keybindings.Accept, func() editline.Status { return editline.Done }},
	}

	for _, a := range actions {
		if a.key == "" {
			continue
		}
		k, err := editline.ParseKey(a.key)
		if err != nil {
			return fmt.Errorf("binding %s: %w", a.name, err)
		}
		if err := s.ed.BindKey(k, a.handler); err != nil {
			return fmt.Errorf("binding %s: %w", a.name, err)
		}
		s.log.Debug("key bound", "action", a.name, "key", k.String(), "code", k.Code(), "meta", k.InMetaMap())
	}
	return nil
}

func (s *Session) exit() editline.Status {
	fmt.Fprintln(s.opts.Out, byeStyle.Render("Bye bye!"))
	return editline.EOF
}

// Run reads lines until end of input or the quit command, echoing each
// one. History is loaded before the first line and saved afterwards.
func (s *Session) Run() error {
	s.loadHistory()

	for {
		line, ok := s.ed.ReadLine(s.opts.Prompt)
		if !ok {
			s.log.Debug("end of input")
			break
		}
		s.lines++
		if line != "" {
			s.ed.AddHistory(line)
		}

		fmt.Fprintln(s.opts.Out, echoStyle.Render("got: "+line))
		if line == QuitCommand {
			break
		}
	}

	return s.saveHistory()
}

// Lines returns how many lines were read.
func (s *Session) Lines() int {
	return s.lines
}

func (s *Session) loadHistory() {
	if s.opts.HistoryPath == "" {
		return
	}
	err := s.ed.ReadHistory(s.opts.HistoryPath)
	switch {
	case err == nil:
		s.log.Debug("history loaded", "path", s.opts.HistoryPath)
	case errors.Is(err, fs.ErrNotExist):
		s.log.Debug("no history yet", "path", s.opts.HistoryPath)
	default:
		s.log.Warn("loading history failed", "error", err)
	}
}

func (s *Session) saveHistory() error {
	if s.opts.HistoryPath == "" {
		return nil
	}
	if err := s.ed.WriteHistory(s.opts.HistoryPath); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	s.log.Debug("history saved", "path", s.opts.HistoryPath, "lines", s.lines)
	return nil
}

// FromConfig builds Options from cfg. Completion is only enabled when
// complete is set.
func FromConfig(cfg *config.Config, complete bool) (Options, error) {
	opts := Options{
		Prompt:      cfg.Prompt.Text,
		Keybindings: cfg.Keybindings,
	}
	if cfg.History.Enabled {
		path, err := cfg.HistoryPath()
		if err != nil {
			return Options{}, err
		}
		opts.HistoryPath = path
	}
	if complete {
		opts.Words = append([]string{}, cfg.Completion.Words...)
	}
	return opts, nil
}
