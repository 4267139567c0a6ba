package options

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSequenceLabelsAreStringForms(t *testing.T) {
	tbl := NewTable(Sequence(1, "two", 3.5, nil))
	want := []string{"1", "two", "3.5", "<nil>"}
	if got := tbl.Labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected labels %v, got %v", want, got)
	}
	if got := tbl.Values(); !reflect.DeepEqual(got, []any{1, "two", 3.5, nil}) {
		t.Fatalf("unexpected values %v", got)
	}
}

func TestLabelsAndValuesStayAligned(t *testing.T) {
	sets := []Options{
		Sequence("a", "b", "c"),
		Mapping(Pair{"A", 1}, Pair{"B", []int{2}}, Pair{"C", map[string]int{"c": 3}}),
		FromMap(map[string]any{"z": 26, "a": 1}),
		{},
	}
	for _, opts := range sets {
		tbl := NewTable(opts)
		labels, values := tbl.Labels(), tbl.Values()
		if len(labels) != len(values) {
			t.Fatalf("label/value length mismatch for %v: %d vs %d", opts.Kind(), len(labels), len(values))
		}
		items := tbl.ItemsByLabel()
		for i := range labels {
			if !reflect.DeepEqual(items[labels[i]], values[i]) {
				t.Fatalf("items[%q] = %v, want %v", labels[i], items[labels[i]], values[i])
			}
		}
	}
}

func TestMappingKeepsOrderAndFirstPosition(t *testing.T) {
	opts := Mapping(Pair{"b", 1}, Pair{"a", 2}, Pair{"b", 3})
	tbl := NewTable(opts)
	if got := tbl.Labels(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("expected [b a], got %v", got)
	}
	if v, _ := tbl.Lookup("b"); v != 3 {
		t.Fatalf("expected repeated label to take last value, got %v", v)
	}
}

func TestSequenceDuplicateLabelsShadow(t *testing.T) {
	tbl := NewTable(Sequence(1, "1"))
	if got := tbl.Labels(); !reflect.DeepEqual(got, []string{"1", "1"}) {
		t.Fatalf("expected both labels kept, got %v", got)
	}
	if v, _ := tbl.Lookup("1"); v != "1" {
		t.Fatalf("expected later value to shadow earlier, got %#v", v)
	}
}

func TestReverseLookupUsesIdentity(t *testing.T) {
	tbl := NewTable(Mapping(Pair{"pair", []int{1, 2}}, Pair{"dict", map[string]any{"k": "v"}}))
	if l, ok := tbl.LabelOf([]int{1, 2}); !ok || l != "pair" {
		t.Fatalf("expected slice lookup to find pair, got %q %v", l, ok)
	}
	if l, ok := tbl.LabelOf(map[string]any{"k": "v"}); !ok || l != "dict" {
		t.Fatalf("expected map lookup to find dict, got %q %v", l, ok)
	}
	if tbl.Contains([]int{2, 1}) {
		t.Fatal("expected reordered slice to be absent")
	}
	if idx := tbl.IndexOf(map[string]any{"k": "v"}); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if idx := tbl.IndexOf("missing"); idx != -1 {
		t.Fatalf("expected -1 for missing value, got %d", idx)
	}
}

func TestSetOptionsRebuildsLookups(t *testing.T) {
	tbl := NewTable(Strings("a", "b"))
	tbl.SetOptions(Strings("c"))
	if tbl.Contains("a") {
		t.Fatal("expected stale value to be gone after SetOptions")
	}
	if v, ok := tbl.First(); !ok || v != "c" {
		t.Fatalf("expected first value c, got %v %v", v, ok)
	}
	tbl.SetOptions(Options{})
	if _, ok := tbl.First(); ok {
		t.Fatal("expected empty table to have no first value")
	}
}

func TestParseAcceptsKnownShapes(t *testing.T) {
	cases := []struct {
		name  string
		input any
		kind  Kind
		n     int
	}{
		{"strings", []string{"a", "b"}, KindSequence, 2},
		{"ints", []int{1, 2, 3}, KindSequence, 3},
		{"any", []any{1, "x"}, KindSequence, 2},
		{"pairs", []Pair{{"a", 1}}, KindMapping, 1},
		{"map", map[string]int{"a": 1, "b": 2}, KindMapping, 2},
		{"nil", nil, KindSequence, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if o.Kind() != tc.kind || o.Len() != tc.n {
				t.Fatalf("expected %v/%d, got %v/%d", tc.kind, tc.n, o.Kind(), o.Len())
			}
		})
	}
}

func TestParseRejectsScalars(t *testing.T) {
	for _, v := range []any{42, "abc", map[int]string{1: "a"}} {
		if _, err := Parse(v); !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("expected ErrInvalidOptions for %T, got %v", v, err)
		}
	}
}

func TestLoadSequenceAndMapping(t *testing.T) {
	seq, err := Load(strings.NewReader("- apple\n- banana\n- 3\n"))
	if err != nil {
		t.Fatalf("load sequence: %v", err)
	}
	if got := NewTable(seq).Labels(); !reflect.DeepEqual(got, []string{"apple", "banana", "3"}) {
		t.Fatalf("unexpected sequence labels %v", got)
	}

	m, err := Load(strings.NewReader("zeta: 1\nalpha: [1, 2]\nmid: {k: v}\n"))
	if err != nil {
		t.Fatalf("load mapping: %v", err)
	}
	tbl := NewTable(m)
	if got := tbl.Labels(); !reflect.DeepEqual(got, []string{"zeta", "alpha", "mid"}) {
		t.Fatalf("expected document order, got %v", got)
	}
	if l, ok := tbl.LabelOf([]any{1, 2}); !ok || l != "alpha" {
		t.Fatalf("expected list value lookup to work, got %q %v", l, ok)
	}
}

func TestLoadRejectsScalarDocument(t *testing.T) {
	if _, err := Load(strings.NewReader("just a string\n")); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions, got %v", err)
	}
	o, err := Load(strings.NewReader(""))
	if err != nil || o.Len() != 0 {
		t.Fatalf("expected empty options for empty document, got %v %v", o.Len(), err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.yaml")
	if err := os.WriteFile(path, []byte("- x\n- y\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	o, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if o.Len() != 2 {
		t.Fatalf("expected 2 options, got %d", o.Len())
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
