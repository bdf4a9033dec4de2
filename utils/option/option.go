package option

import (
	"fmt"
	"strconv"
	"strings"
)

// Option is a runtime setting the user can inspect with "options" and change
// with "set". Its Value keeps the type it was registered with.
type Option struct {
	Name        string   // Upper-case name used on the console
	Value       any      // Current value: string or bool
	Choices     []string // Allowed values for string options; empty means any
	Description string
}

// NewOption creates an Option.
func NewOption(name string, value any, description string, choices ...string) *Option {
	return &Option{
		Name:        name,
		Value:       value,
		Choices:     choices,
		Description: description,
	}
}

// Format returns the option as table-ready strings.
func (o *Option) Format() map[string]string {
	allowed := "any"
	switch {
	case len(o.Choices) > 0:
		allowed = strings.Join(o.Choices, ", ")
	case o.isBool():
		allowed = "true, false"
	}
	return map[string]string{
		"name":        o.Name,
		"value":       o.String(),
		"allowed":     allowed,
		"description": o.Description,
	}
}

// String returns the current value as typed on the console.
func (o *Option) String() string {
	return fmt.Sprintf("%v", o.Value)
}

// Parse converts raw into the option's type and stores it.
func (o *Option) Parse(raw string) error {
	raw = strings.TrimSpace(raw)
	if o.isBool() {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", o.Name, raw)
		}
		o.Value = b
		return nil
	}
	if len(o.Choices) > 0 && !o.allows(raw) {
		return fmt.Errorf("%s must be one of %s, got %q", o.Name, strings.Join(o.Choices, ", "), raw)
	}
	o.Value = raw
	return nil
}

// Bool returns the value of a boolean option, false otherwise.
func (o *Option) Bool() bool {
	b, _ := o.Value.(bool)
	return b
}

func (o *Option) isBool() bool {
	_, ok := o.Value.(bool)
	return ok
}

func (o *Option) allows(v string) bool {
	for _, c := range o.Choices {
		if c == v {
			return true
		}
	}
	return false
}
