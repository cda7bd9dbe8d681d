package code

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField matches any MissingFieldError
	ErrMissingField = errors.New("missing required field")
	// ErrContainment matches any ContainmentError
	ErrContainment = errors.New("node contained more than once")
	// ErrUnknownLiteral matches any UnknownLiteralError
	ErrUnknownLiteral = errors.New("unknown literal")
	// ErrInvalidValue matches any InvalidValueError
	ErrInvalidValue = errors.New("invalid value")
)

// MissingFieldError reports a required field left unset
type MissingFieldError struct {
	Node  string // node type name
	Field string // XML feature name
	Path  string // location of the node within the tree
}

func (e *MissingFieldError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("missing required field: %s on node %s", e.Field, e.Node)
	}
	return fmt.Sprintf("missing required field: %s on node %s at %s", e.Field, e.Node, e.Path)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// ContainmentError reports a node instance attached under more than one parent
type ContainmentError struct {
	Node   string
	Path   string // second attachment
	Parent string // first attachment
}

func (e *ContainmentError) Error() string {
	return fmt.Sprintf("node %s at %s is already contained at %s", e.Node, e.Path, e.Parent)
}

func (e *ContainmentError) Is(target error) bool {
	return target == ErrContainment
}

// UnknownLiteralError reports a literal outside of an enum's literal set
type UnknownLiteralError struct {
	Enum    string
	Literal string
}

func (e *UnknownLiteralError) Error() string {
	return fmt.Sprintf("unknown literal %q for %s", e.Literal, e.Enum)
}

func (e *UnknownLiteralError) Is(target error) bool {
	return target == ErrUnknownLiteral
}

// InvalidValueError reports a string value XML cannot carry unchanged
type InvalidValueError struct {
	Node  string
	Field string
	Path  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q: field %s on node %s at %s is not valid XML character data", e.Value, e.Field, e.Node, e.Path)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// Errors collects validation failures
type Errors []error

func (e Errors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	return fmt.Sprintf("%v (and %d more)", e[0], len(e)-1)
}

// Unwrap exposes the collected errors to errors.Is and errors.As
func (e Errors) Unwrap() []error {
	return e
}
