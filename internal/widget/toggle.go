package widget

import (
	"errors"
	"fmt"
	"strings"
)

// Style is the visual style of a toggle group.
type Style string

// Behavior is the cardinality of a toggle group.
type Behavior string

const (
	StyleButton Style = "button"
	StyleBox    Style = "box"

	BehaviorCheck Behavior = "check"
	BehaviorRadio Behavior = "radio"
)

var (
	styles    = []Style{StyleButton, StyleBox}
	behaviors = []Behavior{BehaviorCheck, BehaviorRadio}
)

var (
	ErrInvalidStyle    = errors.New("invalid toggle group style")
	ErrInvalidBehavior = errors.New("invalid toggle group behavior")
	ErrRadioListValue  = errors.New("radio groups require a single value")
)

// ConfigError reports a widget that cannot be constructed as requested.
type ConfigError struct {
	Err    error
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NewToggleGroup builds the group matching style and behavior. Check groups
// hold any number of values; radio groups hold exactly one and reject a list
// as their initial value.
func NewToggleGroup(style Style, behavior Behavior, opts ...Option) (Group, error) {
	if !validStyle(style) {
		return nil, &ConfigError{
			Err:    ErrInvalidStyle,
			Detail: fmt.Sprintf("%q is not valid, valid options are %s", style, joinStyles()),
		}
	}
	if !validBehavior(behavior) {
		return nil, &ConfigError{
			Err:    ErrInvalidBehavior,
			Detail: fmt.Sprintf("%q is not valid, valid options are %s", behavior, joinBehaviors()),
		}
	}
	if behavior == BehaviorCheck {
		if style == StyleButton {
			return NewCheckButtonGroup(opts...), nil
		}
		return NewCheckBoxGroup(opts...), nil
	}
	if v, ok := collect(opts)[AttrValue]; ok && isList(v) {
		return nil, &ConfigError{Err: ErrRadioListValue, Detail: fmt.Sprintf("found %v", v)}
	}
	if style == StyleButton {
		return NewRadioButtonGroup(opts...), nil
	}
	return NewRadioBoxGroup(opts...), nil
}

func validStyle(s Style) bool {
	for _, v := range styles {
		if v == s {
			return true
		}
	}
	return false
}

func validBehavior(b Behavior) bool {
	for _, v := range behaviors {
		if v == b {
			return true
		}
	}
	return false
}

func joinStyles() string {
	parts := make([]string, len(styles))
	for i, s := range styles {
		parts[i] = string(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func joinBehaviors() string {
	parts := make([]string, len(behaviors))
	for i, b := range behaviors {
		parts[i] = string(b)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
