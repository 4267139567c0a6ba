package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/popup-select/internal/backend"
	"github.com/atomicstack/popup-select/internal/options"
	"github.com/atomicstack/popup-select/internal/ui"
	"github.com/atomicstack/popup-select/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	ModeCross = "cross"
	ModeGroup = "group"
)

var (
	ErrNoOptions    = errors.New("no options given")
	ErrUnknownValue = errors.New("initial value is not an option")
)

// Config describes user-provided application options.
type Config struct {
	OptionsFile string
	Labels      []string
	Values      []string
	Mode        string
	Style       string
	Behavior    string
	Title       string
	Width       int
	Height      int
	Size        int
	Watch       time.Duration
	ShowFooter  bool
}

// LoadOptions reads the option file when one is configured, otherwise the
// positional labels become a plain sequence.
func LoadOptions(cfg Config) (options.Options, error) {
	if cfg.OptionsFile != "" {
		opts, err := options.LoadFile(cfg.OptionsFile)
		if err != nil {
			return options.Options{}, fmt.Errorf("load options: %w", err)
		}
		return opts, nil
	}
	if len(cfg.Labels) == 0 {
		return options.Options{}, ErrNoOptions
	}
	return options.Strings(cfg.Labels...), nil
}

// Build constructs the widget described by cfg and the model rendering it.
// Initial values are given as labels and resolved against opts.
func Build(cfg Config, opts options.Options, watcher *backend.Watcher) (*ui.Model, error) {
	values, err := resolveValues(opts, cfg.Values)
	if err != nil {
		return nil, err
	}
	settings := ui.Settings{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Watcher:    watcher,
	}
	widgetOpts := []widget.Option{widget.WithOptions(opts)}
	if cfg.Title != "" {
		widgetOpts = append(widgetOpts, widget.WithName(cfg.Title))
	}

	switch cfg.Mode {
	case "", ModeCross:
		widgetOpts = append(widgetOpts, widget.WithValue(values))
		if cfg.Size > 0 {
			widgetOpts = append(widgetOpts, widget.WithSize(cfg.Size))
		}
		return ui.NewCrossModel(widget.NewCrossSelector(widgetOpts...), settings), nil
	case ModeGroup:
		behavior := widget.Behavior(cfg.Behavior)
		switch {
		case behavior == widget.BehaviorRadio && len(values) == 1:
			widgetOpts = append(widgetOpts, widget.WithValue(values[0]))
		case len(values) > 0:
			widgetOpts = append(widgetOpts, widget.WithValue(values))
		}
		group, err := widget.NewToggleGroup(widget.Style(cfg.Style), behavior, widgetOpts...)
		if err != nil {
			return nil, fmt.Errorf("build toggle group: %w", err)
		}
		return ui.NewGroupModel(group, settings), nil
	}
	return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
}

func resolveValues(opts options.Options, labels []string) ([]any, error) {
	tbl := options.NewTable(opts)
	values := make([]any, 0, len(labels))
	for _, label := range labels {
		v, ok := tbl.Lookup(label)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownValue, label)
		}
		values = append(values, v)
	}
	return values, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (ui.Result, error) {
	opts, err := LoadOptions(cfg)
	if err != nil {
		return ui.Result{}, err
	}
	var watcher *backend.Watcher
	if cfg.OptionsFile != "" && cfg.Watch > 0 {
		watcher = backend.NewFileWatcher(cfg.OptionsFile, cfg.Watch)
		defer watcher.Stop()
	}
	model, err := Build(cfg, opts, watcher)
	if err != nil {
		return ui.Result{}, err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return model.Result(), nil
	}
	if err != nil {
		return ui.Result{}, err
	}
	return model.Result(), nil
}
