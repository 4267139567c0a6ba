package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs([]string{"a", "b"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Mode != "cross" || cfg.App.Style != "box" || cfg.App.Behavior != "check" {
		t.Fatalf("unexpected defaults %+v", cfg.App)
	}
	if cfg.Output.Format != FormatPlain {
		t.Fatalf("expected plain format, got %q", cfg.Output.Format)
	}
	if !reflect.DeepEqual(cfg.App.Labels, []string{"a", "b"}) {
		t.Fatalf("expected positional labels, got %v", cfg.App.Labels)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{
		"-options-file", "opts.yaml",
		"-value", "x", "-value", "y",
		"-mode", "group", "-style", "button", "-behavior", "radio",
		"-width", "90", "-height", "20", "-size", "5",
		"-watch", "2s", "-format", "table", "-footer", "-trace",
		"-log-file", "trace.log",
	}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.OptionsFile != "opts.yaml" || cfg.App.Mode != "group" || cfg.App.Style != "button" || cfg.App.Behavior != "radio" {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if !reflect.DeepEqual(cfg.App.Values, []string{"x", "y"}) {
		t.Fatalf("expected repeated values, got %v", cfg.App.Values)
	}
	if cfg.App.Width != 90 || cfg.App.Height != 20 || cfg.App.Size != 5 || cfg.App.Watch != 2*time.Second || !cfg.App.ShowFooter {
		t.Fatalf("unexpected sizing %+v", cfg.App)
	}
	if cfg.Output.Format != FormatTable || !cfg.Logging.Trace || cfg.Logging.FilePath != "trace.log" {
		t.Fatalf("unexpected output/logging %+v %+v", cfg.Output, cfg.Logging)
	}
	if cfg.Flags["value"] != "x,y" || cfg.Flags["watch"] != "2s" {
		t.Fatalf("unexpected flags %v", cfg.Flags)
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{
		"POPUP_SELECT_OPTIONS_FILE=env.yaml",
		"POPUP_SELECT_VALUE=a, b,,c",
		"POPUP_SELECT_WIDTH=70",
		"POPUP_SELECT_WATCH=500ms",
		"POPUP_SELECT_FOOTER=true",
		"POPUP_SELECT_HEIGHT=bogus",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.OptionsFile != "env.yaml" || cfg.App.Width != 70 || cfg.App.Watch != 500*time.Millisecond || !cfg.App.ShowFooter {
		t.Fatalf("unexpected env config %+v", cfg.App)
	}
	if cfg.App.Height != 0 {
		t.Fatalf("expected unparsable height to fall back, got %d", cfg.App.Height)
	}
	if !reflect.DeepEqual(cfg.App.Values, []string{"a", "b", "c"}) {
		t.Fatalf("expected env values, got %v", cfg.App.Values)
	}

	cfg, err = LoadArgs([]string{"-value", "z"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.App.Values, []string{"z"}) {
		t.Fatalf("expected flag to win over env, got %v", cfg.App.Values)
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	for _, args := range [][]string{{"-width", "-1"}, {"-height", "-2"}, {"-size", "-3"}} {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
	if _, err := LoadArgs([]string{"-nope"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
		err  error
	}{
		{name: "no options", args: nil, err: ErrMissingOptions},
		{name: "watch without file", args: []string{"-watch", "1s", "a"}, err: ErrWatchNeedsFile},
		{name: "bad mode", args: []string{"-mode", "tree", "a"}, want: "mode must be"},
		{name: "bad format", args: []string{"-format", "json", "a"}, want: "format must be"},
		{name: "bad style", args: []string{"-mode", "group", "-style", "round", "a"}, want: "style must be"},
		{name: "bad behavior", args: []string{"-mode", "group", "-behavior", "maybe", "a"}, want: "behavior must be"},
		{name: "style ignored outside groups", args: []string{"-style", "round", "a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadArgs(tc.args, nil)
			if err != nil {
				t.Fatalf("unexpected load error: %v", err)
			}
			err = Validate(cfg)
			switch {
			case tc.err != nil:
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
			case tc.want != "":
				if err == nil || !strings.Contains(err.Error(), tc.want) {
					t.Fatalf("expected error containing %q, got %v", tc.want, err)
				}
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
