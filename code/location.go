package code

import "fmt"

// SourceLocation is a point in an SPL source file
type SourceLocation struct {
	Line   int `xml:"line,attr"`
	Column int `xml:"column,attr"`
}

// Location returns the location itself, it lets nodes expose their embedded location uniformly
func (l *SourceLocation) Location() *SourceLocation {
	return l
}

// Position formats the location as line:column
func (l SourceLocation) Position() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// ExtendedSourceLocation is a span in an SPL source file
type ExtendedSourceLocation struct {
	StartLine   int `xml:"startLine,attr"`
	StartColumn int `xml:"startColumn,attr"`
	EndLine     int `xml:"endLine,attr"`
	EndColumn   int `xml:"endColumn,attr"`
}

// Span returns the span itself
func (l *ExtendedSourceLocation) Span() *ExtendedSourceLocation {
	return l
}

// Start returns the span start as a point
func (l ExtendedSourceLocation) Start() SourceLocation {
	return SourceLocation{Line: l.StartLine, Column: l.StartColumn}
}

// End returns the span end as a point
func (l ExtendedSourceLocation) End() SourceLocation {
	return SourceLocation{Line: l.EndLine, Column: l.EndColumn}
}

// Contains reports whether loc falls within the span
func (l ExtendedSourceLocation) Contains(loc SourceLocation) bool {
	if loc.Line < l.StartLine || loc.Line > l.EndLine {
		return false
	}
	if loc.Line == l.StartLine && loc.Column < l.StartColumn {
		return false
	}
	if loc.Line == l.EndLine && loc.Column > l.EndColumn {
		return false
	}
	return true
}

// Position formats the span as line:column-line:column
func (l ExtendedSourceLocation) Position() string {
	return fmt.Sprintf("%d:%d-%d:%d", l.StartLine, l.StartColumn, l.EndLine, l.EndColumn)
}

// Located is implemented by nodes carrying a point location
type Located interface {
	Location() *SourceLocation
}

// Spanned is implemented by nodes carrying a span location
type Spanned interface {
	Span() *ExtendedSourceLocation
}
