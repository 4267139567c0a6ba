// Package widget implements selection widgets that keep an application value
// in sync with a label or index based view.
//
// Every widget owns a param.Params holding its application attributes and a
// view.Model holding what the rendered control sees. Attribute changes travel
// outbound through the widget's rename table and translator into the view;
// changes reported by the view travel inbound the opposite way. When an
// outbound translation finds the application value no longer valid it
// returns a corrective write, which the base applies through the same store
// after the view has been updated.
package widget

import (
	"github.com/atomicstack/popup-select/internal/options"
	"github.com/atomicstack/popup-select/internal/param"
	"github.com/atomicstack/popup-select/internal/view"
	"github.com/google/uuid"
)

// Attribute names shared by widgets.
const (
	AttrName        = "name"
	AttrOptions     = "options"
	AttrValue       = "value"
	AttrDisabled    = "disabled"
	AttrWidth       = "width"
	AttrHeight      = "height"
	AttrSize        = "size"
	AttrPlaceholder = "placeholder"
	AttrInline      = "inline"
	AttrClicks      = "clicks"

	AttrSizingMode   = "sizing_mode"
	AttrWidthPolicy  = "width_policy"
	AttrHeightPolicy = "height_policy"
	AttrBackground   = "background"
	AttrMargin       = "margin"
	AttrCSSClasses   = "css_classes"
)

// LayoutAttrs are the generic visual attributes every widget carries.
var LayoutAttrs = []string{
	AttrSizingMode,
	AttrWidthPolicy,
	AttrHeightPolicy,
	AttrBackground,
	AttrMargin,
	AttrCSSClasses,
}

// Option configures a widget at construction.
type Option func(map[string]any)

func WithName(name string) Option { return set(AttrName, name) }

func WithOptions(opts options.Options) Option { return set(AttrOptions, opts) }

// WithValue sets the initial application value. Multi-valued widgets accept
// any slice.
func WithValue(v any) Option { return set(AttrValue, v) }

func WithDisabled(disabled bool) Option { return set(AttrDisabled, disabled) }

func WithWidth(width int) Option { return set(AttrWidth, width) }

func WithHeight(height int) Option { return set(AttrHeight, height) }

func WithSize(size int) Option { return set(AttrSize, size) }

func WithPlaceholder(text string) Option { return set(AttrPlaceholder, text) }

func WithInline(inline bool) Option { return set(AttrInline, inline) }

func WithSizingMode(mode string) Option { return set(AttrSizingMode, mode) }

func WithBackground(color string) Option { return set(AttrBackground, color) }

func WithMargin(margin any) Option { return set(AttrMargin, margin) }

func WithCSSClasses(classes ...string) Option {
	return set(AttrCSSClasses, append([]string(nil), classes...))
}

// WithAttr sets an arbitrary attribute.
func WithAttr(name string, value any) Option { return set(name, value) }

func set(name string, value any) Option {
	return func(m map[string]any) { m[name] = value }
}

func collect(opts []Option) map[string]any {
	m := make(map[string]any, len(opts))
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// translator converts attribute batches between application and view shape.
// Keys are application attribute names in both directions; the base applies
// the rename table afterwards (outbound) or before (inbound).
type translator interface {
	outbound(msg map[string]any) (map[string]any, []param.Change)
	inbound(msg map[string]any) map[string]any
}

type passthrough struct{}

func (passthrough) outbound(msg map[string]any) (map[string]any, []param.Change) { return msg, nil }

func (passthrough) inbound(msg map[string]any) map[string]any { return msg }

// base carries the state and plumbing shared by every synchronised widget.
type base struct {
	id     string
	params *param.Params
	view   *view.Model
	rename map[string]string
	synced []string
	tr     translator
}

func (b *base) setup(defaults map[string]any, opts []Option) {
	b.id = uuid.NewString()
	for _, attr := range LayoutAttrs {
		if _, ok := defaults[attr]; !ok {
			defaults[attr] = nil
		}
	}
	for k, v := range collect(opts) {
		defaults[k] = v
	}
	b.params = param.New(defaults)
	b.view = view.New()
	if b.tr == nil {
		b.tr = passthrough{}
	}
}

// bind starts synchronisation and pushes the initial state to the view.
func (b *base) bind(synced ...string) {
	b.synced = synced
	b.params.Watch(b.onParamChange, synced...)
	b.view.OnChange(b.onViewChange)
	msg := make(map[string]any, len(synced))
	for _, name := range synced {
		msg[name] = b.params.Get(name)
	}
	b.push(msg)
}

func (b *base) onParamChange(evts ...param.Event) {
	msg := make(map[string]any, len(evts))
	for _, e := range evts {
		msg[e.Name] = e.New
	}
	b.push(msg)
}

func (b *base) push(msg map[string]any) {
	out, fixes := b.tr.outbound(msg)
	props := make(map[string]any, len(out))
	for k, v := range out {
		if name, ok := b.viewName(k); ok {
			props[name] = v
		}
	}
	b.view.Push(props)
	if len(fixes) > 0 {
		b.params.Update(fixes...)
	}
}

func (b *base) onViewChange(evt param.Event) {
	name, ok := b.appName(evt.Name)
	if !ok {
		return
	}
	msg := b.tr.inbound(map[string]any{name: evt.New})
	if len(msg) == 0 {
		return
	}
	changes := make([]param.Change, 0, len(msg))
	for k, v := range msg {
		changes = append(changes, param.Change{Name: k, Value: v})
	}
	b.params.Update(changes...)
}

func (b *base) viewName(attr string) (string, bool) {
	if b.rename == nil {
		return attr, true
	}
	name, ok := b.rename[attr]
	if !ok {
		return attr, true
	}
	return name, name != ""
}

func (b *base) appName(prop string) (string, bool) {
	for attr, name := range b.rename {
		if name == prop && name != "" {
			return attr, true
		}
	}
	if _, renamed := b.rename[prop]; renamed {
		return "", false
	}
	return prop, true
}

// ID returns the widget's unique id.
func (b *base) ID() string { return b.id }

// View returns the view model the widget pushes into.
func (b *base) View() *view.Model { return b.view }

// Params exposes the attribute store, mainly for watchers.
func (b *base) Params() *param.Params { return b.params }

// Get returns an attribute value.
func (b *base) Get(name string) any { return b.params.Get(name) }

// Set writes an attribute value.
func (b *base) Set(name string, value any) { b.params.Set(name, value) }

// Name returns the widget title.
func (b *base) Name() string {
	s, _ := b.params.Get(AttrName).(string)
	return s
}

// Disabled reports whether the widget is disabled.
func (b *base) Disabled() bool {
	d, _ := b.params.Get(AttrDisabled).(bool)
	return d
}

func (b *base) intAttr(name string) int {
	n, _ := b.params.Get(name).(int)
	return n
}
