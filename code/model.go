package code

// Namespace is the fixed XML namespace of a source model document
const Namespace = "http://www.ibm.com/xmlns/prod/streams/spl/sourceCode"

// SourceModel represents all parsed source files of a toolkit
type SourceModel struct {
	SourceFile []*SourceFile `xml:"sourceFile"`
}

// SourceFile represents one parsed .spl file
type SourceFile struct {
	CompilationUnit *CompilationUnit `xml:"compilationUnit" spl:"required"`
	URI             string           `xml:"uri,attr" spl:"required"` // toolkit relative file path
}

// CompilationUnit represents the top level structure of a source file
type CompilationUnit struct {
	SplDoc        *SplDoc        `xml:"splDoc,omitempty"`
	SplNamespace  *SplNamespace  `xml:"splNamespace,omitempty"`
	UseDirectives *UseDirectives `xml:"useDirectives,omitempty"`
	Definitions   *Definitions   `xml:"definitions,omitempty"`
}

// SplNamespace represents a namespace declaration
type SplNamespace struct {
	SourceLocation
	SplDoc *SplDoc `xml:"splDoc,omitempty"`
	Name   string  `xml:"name,attr" spl:"required"`
}

// UseDirectives groups use directives
type UseDirectives struct {
	UseDirective []*UseDirective `xml:"useDirective" spl:"nonempty"`
}

// UseDirective represents "use namespaceName::tail;"
type UseDirective struct {
	SourceLocation
	NamespaceName string `xml:"namespaceName,attr" spl:"required"`
	Tail          string `xml:"tail,attr" spl:"required"` // imported name or *
}

// Definitions groups the top level definitions of a compilation unit, each list keeps source order
type Definitions struct {
	TypeDefinition      []*TypeDefinition      `xml:"typeDefinition"`
	FunctionDefinition  []*FunctionDefinition  `xml:"functionDefinition"`
	CompositeDefinition []*CompositeDefinition `xml:"compositeDefinition"`
}

// Expression represents an SPL expression as source text
type Expression struct {
	Expr string `xml:"expr,attr" spl:"required"`
}

// Configs groups config clauses
type Configs struct {
	Config []*Config `xml:"config" spl:"nonempty"`
}

// Config represents a config clause
type Config struct {
	SourceLocation
	Option []*ConfigOption `xml:"option" spl:"nonempty"`
	Name   string          `xml:"name,attr" spl:"required"`
}

// ConfigOption represents a config value, optionally with parameters
type ConfigOption struct {
	SourceLocation
	Parameter []*ConfigValueParameter `xml:"parameter"`
	Value     string                  `xml:"value,attr" spl:"required"`
}

// ConfigValueParameter represents a config value parameter
type ConfigValueParameter struct {
	Value string `xml:"value,attr" spl:"required"`
}
