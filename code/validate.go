package code

import (
	"reflect"
	"unicode/utf8"
)

// ValidateOption customises validation
type ValidateOption func(*validator)

// WithStrict also enforces list lower bounds and required unsettable attributes
func WithStrict() ValidateOption {
	return func(v *validator) {
		v.strict = true
	}
}

type validator struct {
	strict bool
	seen   map[any]string
	errs   Errors
}

// Validate checks required fields, XML character data and containment exclusivity of node and all its descendants.
// Unsettable attributes are tri-state, so an unset one is only reported in strict mode.
func Validate(node any, options ...ValidateOption) error {
	nodeType := nodeTypeOf(node)
	if nodeType == nil {
		return nil
	}
	v := &validator{seen: map[any]string{}}
	for _, option := range options {
		option(v)
	}
	v.validate(nodeType, ElementName(nodeType), node)
	switch len(v.errs) {
	case 0:
		return nil
	case 1:
		return v.errs[0]
	}
	return v.errs
}

func (v *validator) validate(nodeType *NodeType, path string, node any) {
	if parent, ok := v.seen[node]; ok {
		v.errs = append(v.errs, &ContainmentError{Node: nodeType.GoName, Path: path, Parent: parent})
		return
	}
	v.seen[node] = path
	for _, feature := range nodeType.Features {
		if v.isMissing(feature, feature.Value(node)) {
			v.errs = append(v.errs, &MissingFieldError{Node: nodeType.GoName, Field: feature.Name, Path: path})
			continue
		}
		if value := feature.Value(node); value.Kind() == reflect.String && !isCharData(value.String()) {
			v.errs = append(v.errs, &InvalidValueError{Node: nodeType.GoName, Field: feature.Name, Path: path, Value: value.String()})
		}
	}
	eachChild(nodeType, path, node, func(feature *Feature, childPath string, child any) {
		v.validate(feature.Node, childPath, child)
	})
}

func (v *validator) isMissing(feature *Feature, value reflect.Value) bool {
	if feature.Many {
		return v.strict && feature.NonEmpty && value.Len() == 0
	}
	if !feature.Required {
		return false
	}
	if feature.Unsettable {
		return v.strict && !value.Interface().(interface{ IsSet() bool }).IsSet()
	}
	switch value.Kind() {
	case reflect.Ptr:
		return value.IsNil()
	case reflect.String:
		return value.Len() == 0
	}
	return false
}

// isCharData reports whether text is valid UTF-8 made of XML 1.0 characters only
func isCharData(text string) bool {
	if !utf8.ValidString(text) {
		return false
	}
	for _, r := range text {
		switch {
		case r == '\t', r == '\n', r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}
