package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/popup-select/internal/app"
	"github.com/atomicstack/popup-select/internal/widget"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Output  Output
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Output struct {
	Format string
}

const (
	FormatPlain = "plain"
	FormatTable = "table"
)

const (
	envOptionsFile = "POPUP_SELECT_OPTIONS_FILE"
	envValue       = "POPUP_SELECT_VALUE"
	envMode        = "POPUP_SELECT_MODE"
	envStyle       = "POPUP_SELECT_STYLE"
	envBehavior    = "POPUP_SELECT_BEHAVIOR"
	envTitle       = "POPUP_SELECT_TITLE"
	envWidth       = "POPUP_SELECT_WIDTH"
	envHeight      = "POPUP_SELECT_HEIGHT"
	envSize        = "POPUP_SELECT_SIZE"
	envWatch       = "POPUP_SELECT_WATCH"
	envFormat      = "POPUP_SELECT_FORMAT"
	envShowFooter  = "POPUP_SELECT_FOOTER"
	envTrace       = "POPUP_SELECT_TRACE"
	envLogFile     = "POPUP_SELECT_LOG_FILE"
)

var (
	ErrMissingOptions = errors.New("either -options-file or positional labels are required")
	ErrWatchNeedsFile = errors.New("-watch requires -options-file")
)

// labelList collects a repeatable flag.
type labelList []string

func (l *labelList) String() string { return strings.Join(*l, ",") }

func (l *labelList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("popup-select", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	var values labelList
	fs.Var(&values, "value", "label of an initially selected option (repeatable)")
	optionsFile := fs.String("options-file", envOrDefault(env, envOptionsFile, ""), "YAML file holding a list or a label->value mapping")
	mode := fs.String("mode", envOrDefault(env, envMode, app.ModeCross), "widget to show: cross or group")
	style := fs.String("style", envOrDefault(env, envStyle, string(widget.StyleBox)), "group style: button or box")
	behavior := fs.String("behavior", envOrDefault(env, envBehavior, string(widget.BehaviorCheck)), "group behavior: check or radio")
	title := fs.String("title", envOrDefault(env, envTitle, ""), "header shown above the widget")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	size := fs.Int("size", envOrInt(env, envSize, 0), "rows shown per list (0 keeps the widget default)")
	watch := fs.Duration("watch", envOrDuration(env, envWatch, 0), "reload the options file at this interval (0 disables)")
	format := fs.String("format", envOrDefault(env, envFormat, FormatPlain), "output format: plain or table")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if len(values) == 0 {
		values = envOrList(env, envValue)
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *size < 0 {
		return Config{}, fmt.Errorf("size must be >= 0 (got %d)", *size)
	}

	cfg := Config{
		App: app.Config{
			OptionsFile: *optionsFile,
			Labels:      fs.Args(),
			Values:      []string(values),
			Mode:        *mode,
			Style:       *style,
			Behavior:    *behavior,
			Title:       *title,
			Width:       *width,
			Height:      *height,
			Size:        *size,
			Watch:       *watch,
			ShowFooter:  *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Output: Output{
			Format: *format,
		},
		Flags: map[string]string{
			"optionsFile": *optionsFile,
			"value":       values.String(),
			"mode":        *mode,
			"style":       *style,
			"behavior":    *behavior,
			"title":       *title,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"size":        strconv.Itoa(*size),
			"watch":       watch.String(),
			"format":      *format,
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// envOrList splits a comma separated variable, dropping blank entries.
func envOrList(env map[string]string, key string) labelList {
	v, ok := env[key]
	if !ok {
		return nil
	}
	var out labelList
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects combinations the application cannot run with.
func Validate(cfg Config) error {
	switch cfg.App.Mode {
	case app.ModeCross, app.ModeGroup:
	default:
		return fmt.Errorf("mode must be %s or %s (got %q)", app.ModeCross, app.ModeGroup, cfg.App.Mode)
	}
	switch cfg.Output.Format {
	case FormatPlain, FormatTable:
	default:
		return fmt.Errorf("format must be %s or %s (got %q)", FormatPlain, FormatTable, cfg.Output.Format)
	}
	if cfg.App.Mode == app.ModeGroup {
		switch widget.Style(cfg.App.Style) {
		case widget.StyleButton, widget.StyleBox:
		default:
			return fmt.Errorf("style must be %s or %s (got %q)", widget.StyleButton, widget.StyleBox, cfg.App.Style)
		}
		switch widget.Behavior(cfg.App.Behavior) {
		case widget.BehaviorCheck, widget.BehaviorRadio:
		default:
			return fmt.Errorf("behavior must be %s or %s (got %q)", widget.BehaviorCheck, widget.BehaviorRadio, cfg.App.Behavior)
		}
	}
	if cfg.App.OptionsFile == "" && len(cfg.App.Labels) == 0 {
		return ErrMissingOptions
	}
	if cfg.App.Watch > 0 && cfg.App.OptionsFile == "" {
		return ErrWatchNeedsFile
	}
	return nil
}
