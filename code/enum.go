package code

import "fmt"

// Enum describes a closed literal set
type Enum struct {
	Name     string   // XML schema type name
	Literals []string // Literals in value order
}

type literals[E ~int] struct {
	name   string
	values []string
	index  map[string]E
}

func newLiterals[E ~int](name string, values ...string) *literals[E] {
	ret := &literals[E]{name: name, values: values, index: make(map[string]E, len(values))}
	for i, value := range values {
		ret.index[value] = E(i)
	}
	return ret
}

func (l *literals[E]) literal(e E) string {
	if int(e) < 0 || int(e) >= len(l.values) {
		return fmt.Sprintf("%s(%d)", l.name, int(e))
	}
	return l.values[e]
}

func (l *literals[E]) byLiteral(literal string) (E, bool) {
	e, ok := l.index[literal]
	return e, ok
}

func (l *literals[E]) byValue(value int) (E, bool) {
	if value < 0 || value >= len(l.values) {
		return 0, false
	}
	return E(value), true
}

func (l *literals[E]) all() []E {
	ret := make([]E, len(l.values))
	for i := range l.values {
		ret[i] = E(i)
	}
	return ret
}

func (l *literals[E]) marshal(e E) ([]byte, error) {
	if int(e) < 0 || int(e) >= len(l.values) {
		return nil, &UnknownLiteralError{Enum: l.name, Literal: fmt.Sprint(int(e))}
	}
	return []byte(l.values[e]), nil
}

func (l *literals[E]) unmarshal(data []byte, e *E) error {
	value, ok := l.index[string(data)]
	if !ok {
		return &UnknownLiteralError{Enum: l.name, Literal: string(data)}
	}
	*e = value
	return nil
}

func (l *literals[E]) enum() *Enum {
	return &Enum{Name: l.name, Literals: append([]string(nil), l.values...)}
}
