package main

import (
	"strings"
	"testing"

	"github.com/atomicstack/popup-select/internal/app"
	"github.com/atomicstack/popup-select/internal/config"
	"github.com/atomicstack/popup-select/internal/testutil"
	"github.com/atomicstack/popup-select/internal/ui"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			OptionsFile: "opts.yaml",
			Mode:        app.ModeCross,
			Width:       80,
			Height:      24,
			ShowFooter:  true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"optionsFile": "opts.yaml",
			"mode":        "cross",
			"width":       "80",
			"footer":      "true",
		},
		Args: []string{"-options-file", "opts.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["optionsFile"] != "opts.yaml" {
		t.Fatalf("expected options file flag, got %v", flagsValue["optionsFile"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	cfgValue, ok := payload["config"].(config.Config)
	if !ok {
		t.Fatalf("expected config in payload")
	}
	if cfgValue.App.OptionsFile != "opts.yaml" || cfgValue.App.Width != 80 {
		t.Fatalf("unexpected app config %#v", cfgValue.App)
	}
}

func TestWriteResult(t *testing.T) {
	res := ui.Result{Accepted: true, Labels: []string{"low", "high"}, Values: []any{1, 10}}
	var plain strings.Builder
	writeResult(&plain, res, config.FormatPlain)
	if plain.String() != "low\nhigh\n" {
		t.Fatalf("unexpected plain output %q", plain.String())
	}
	var tbl strings.Builder
	writeResult(&tbl, res, config.FormatTable)
	testutil.AssertGolden(t, "selection_table.golden", tbl.String())
	var empty strings.Builder
	writeResult(&empty, ui.Result{Accepted: true}, config.FormatPlain)
	if empty.String() != "" {
		t.Fatalf("expected no output for an empty selection, got %q", empty.String())
	}
}
