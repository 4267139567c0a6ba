package widget

import "github.com/atomicstack/popup-select/internal/param"

// ContainerKind distinguishes horizontal from vertical containers.
type ContainerKind int

const (
	Row ContainerKind = iota
	Column
)

// Spacer fills the free space of a container.
type Spacer struct{}

// Container lays children out in a row or column. Only its layout attributes
// are modelled; geometry belongs to whatever renders it.
type Container struct {
	kind     ContainerKind
	children []any
	params   *param.Params
}

// NewContainer builds a container holding children.
func NewContainer(kind ContainerKind, children []any, opts ...Option) *Container {
	defaults := map[string]any{AttrWidth: 0, AttrHeight: 0}
	for _, attr := range LayoutAttrs {
		defaults[attr] = nil
	}
	for k, v := range collect(opts) {
		defaults[k] = v
	}
	return &Container{
		kind:     kind,
		children: append([]any(nil), children...),
		params:   param.New(defaults),
	}
}

// Kind returns the layout direction.
func (c *Container) Kind() ContainerKind { return c.kind }

// Children returns the contained widgets in order.
func (c *Container) Children() []any { return append([]any(nil), c.children...) }

// Get returns a layout attribute.
func (c *Container) Get(name string) any { return c.params.Get(name) }

// Set writes a layout attribute.
func (c *Container) Set(name string, value any) { c.params.Set(name, value) }
