package code

import (
	"encoding"
	"encoding/xml"
	"fmt"
	"strconv"
)

// Settable holds an attribute value that distinguishes "absent" from "present with the zero value".
// The zero Settable is unset; an unset Settable is omitted from XML output.
type Settable[T any] struct {
	Value T    // Value, meaningful only when Valid
	Valid bool // Whether the value was set
}

// Set returns a Settable holding value
func Set[T any](value T) Settable[T] {
	return Settable[T]{Value: value, Valid: true}
}

// IsSet reports whether a value was set
func (s Settable[T]) IsSet() bool {
	return s.Valid
}

// Get returns the value and whether it was set
func (s Settable[T]) Get() (T, bool) {
	return s.Value, s.Valid
}

// Or returns the value if set, otherwise fallback
func (s Settable[T]) Or(fallback T) T {
	if !s.Valid {
		return fallback
	}
	return s.Value
}

// Unset clears the value
func (s *Settable[T]) Unset() {
	var zero T
	s.Value = zero
	s.Valid = false
}

func (s Settable[T]) String() string {
	if !s.Valid {
		return "<unset>"
	}
	text, err := formatValue(s.Value)
	if err != nil {
		return fmt.Sprint(s.Value)
	}
	return text
}

// MarshalXMLAttr implements xml.MarshalerAttr
func (s Settable[T]) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if !s.Valid {
		return xml.Attr{}, nil
	}
	text, err := formatValue(s.Value)
	if err != nil {
		return xml.Attr{}, fmt.Errorf("failed to format attribute %s: %w", name.Local, err)
	}
	return xml.Attr{Name: name, Value: text}, nil
}

// UnmarshalXMLAttr implements xml.UnmarshalerAttr
func (s *Settable[T]) UnmarshalXMLAttr(attr xml.Attr) error {
	if err := parseValue(&s.Value, attr.Value); err != nil {
		return fmt.Errorf("failed to parse attribute %s: %w", attr.Name.Local, err)
	}
	s.Valid = true
	return nil
}

func formatValue(value any) (string, error) {
	switch actual := value.(type) {
	case encoding.TextMarshaler:
		data, err := actual.MarshalText()
		return string(data), err
	case bool:
		return strconv.FormatBool(actual), nil
	case string:
		return actual, nil
	}
	return fmt.Sprint(value), nil
}

func parseValue(target any, text string) error {
	switch actual := target.(type) {
	case encoding.TextUnmarshaler:
		return actual.UnmarshalText([]byte(text))
	case *bool:
		switch text {
		case "true", "1":
			*actual = true
		case "false", "0":
			*actual = false
		default:
			return fmt.Errorf("invalid boolean %q", text)
		}
		return nil
	case *string:
		*actual = text
		return nil
	}
	return fmt.Errorf("unsupported settable type %T", target)
}
