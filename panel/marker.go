package panel

import "strings"

// ActiveClass is the class token that marks a panel as highlighted.
const ActiveClass = "active"

// Activator is the highlight capability the playback driver needs from a panel.
type Activator interface {
	SetActive()
	SetInactive()
}

// ClassList is anything exposing a mutable class name, like a DOM element or
// a fyne widget standing in for one.
type ClassList interface {
	ClassName() string
	SetClassName(string)
}

// ClassActivator adapts a ClassList into an Activator by toggling the
// active token in its class name.
type ClassActivator struct {
	El ClassList
}

// NewClassActivator wraps el.
func NewClassActivator(el ClassList) *ClassActivator {
	return &ClassActivator{El: el}
}

// SetActive appends the active marker unless it is already present.
func (a *ClassActivator) SetActive() {
	current := a.El.ClassName()
	if next := WithActive(current); next != current {
		a.El.SetClassName(next)
	}
}

// SetInactive strips the active marker; no-op when it is absent.
func (a *ClassActivator) SetInactive() {
	current := a.El.ClassName()
	if next := WithoutActive(current); next != current {
		a.El.SetClassName(next)
	}
}

// IsActive reports whether class carries the active token.
func IsActive(class string) bool {
	for _, f := range strings.Fields(class) {
		if f == ActiveClass {
			return true
		}
	}
	return false
}

// WithActive returns class with " active" appended. The marker appears at
// most once.
func WithActive(class string) string {
	if IsActive(class) {
		return class
	}
	return class + " " + ActiveClass
}

// WithoutActive returns class with every active token removed.
func WithoutActive(class string) string {
	if !IsActive(class) {
		return class
	}
	fields := strings.Fields(class)
	kept := fields[:0]
	for _, f := range fields {
		if f != ActiveClass {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
