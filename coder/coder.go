package coder

import (
	"fmt"

	"github.com/viant/splmodel/code"
)

// Coder provides functionality for creating and removing source files, definitions and their components.
// It builds a source model bottom-up the way a parser front end does, keeping list positions and defaults consistent.
type Coder struct {
	Model          *code.SourceModel // The model being built
	windowDefaults bool
	rootDirCount   int
}

// New creates a new Coder for the given model, a nil model starts an empty one
func New(model *code.SourceModel, options ...Option) *Coder {
	if model == nil {
		model = &code.SourceModel{}
	}
	ret := &Coder{Model: model, windowDefaults: true}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// CreateSourceFile creates a new source file for the given file path
func (c *Coder) CreateSourceFile(filePath string) (*code.SourceFile, error) {
	uri := RelativeURI(filePath, c.rootDirCount)
	if uri == "" {
		return nil, fmt.Errorf("invalid source file path %q", filePath)
	}
	if c.Model.LookupSourceFile(uri) != nil {
		return nil, fmt.Errorf("source file %s already exists", uri)
	}
	file := &code.SourceFile{URI: uri, CompilationUnit: &code.CompilationUnit{}}
	c.Model.SourceFile = append(c.Model.SourceFile, file)
	return file, nil
}

// RemoveSourceFile removes a source file by uri
func (c *Coder) RemoveSourceFile(uri string) bool {
	return c.Model.RemoveSourceFile(uri)
}

func (c *Coder) lookupFile(uri string) (*code.SourceFile, error) {
	file := c.Model.LookupSourceFile(uri)
	if file == nil {
		return nil, fmt.Errorf("source file %s not found", uri)
	}
	return file, nil
}

// compilationUnit returns the compilation unit of a file, creating it when absent
func (c *Coder) compilationUnit(uri string) (*code.CompilationUnit, error) {
	file, err := c.lookupFile(uri)
	if err != nil {
		return nil, err
	}
	if file.CompilationUnit == nil {
		file.CompilationUnit = &code.CompilationUnit{}
	}
	return file.CompilationUnit, nil
}

// definitions returns the definitions of a file for writing, creating them when absent
func (c *Coder) definitions(uri string) (*code.Definitions, error) {
	unit, err := c.compilationUnit(uri)
	if err != nil {
		return nil, err
	}
	if unit.Definitions == nil {
		unit.Definitions = &code.Definitions{}
	}
	return unit.Definitions, nil
}

// existingDefinitions returns the definitions of a file for reading, the tree is left untouched
func (c *Coder) existingDefinitions(uri string) (*code.Definitions, error) {
	file, err := c.lookupFile(uri)
	if err != nil {
		return nil, err
	}
	return file.Definitions(), nil
}

// SetNamespace declares the namespace of a source file
func (c *Coder) SetNamespace(uri, name string) (*code.SplNamespace, error) {
	unit, err := c.compilationUnit(uri)
	if err != nil {
		return nil, err
	}
	namespace := &code.SplNamespace{Name: name}
	unit.SplNamespace = namespace
	return namespace, nil
}

// AddUseDirective appends a use directive to a source file
func (c *Coder) AddUseDirective(uri, namespaceName, tail string) (*code.UseDirective, error) {
	unit, err := c.compilationUnit(uri)
	if err != nil {
		return nil, err
	}
	if unit.UseDirectives == nil {
		unit.UseDirectives = &code.UseDirectives{}
	}
	directive := &code.UseDirective{NamespaceName: namespaceName, Tail: tail}
	unit.UseDirectives.UseDirective = append(unit.UseDirectives.UseDirective, directive)
	return directive, nil
}

// CreateTypeDefinition creates a new top level type in the specified file
func (c *Coder) CreateTypeDefinition(uri, name, value string, modifiers ...code.TypeModifierKind) (*code.TypeDefinition, error) {
	definitions, err := c.definitions(uri)
	if err != nil {
		return nil, err
	}
	if definitions.LookupType(name) != nil {
		return nil, fmt.Errorf("type %s already exists in %s", name, uri)
	}
	typeDef := NewTypeDefinition(name, value, modifiers...)
	definitions.TypeDefinition = append(definitions.TypeDefinition, typeDef)
	return typeDef, nil
}

// RemoveTypeDefinition removes a top level type by name
func (c *Coder) RemoveTypeDefinition(uri, name string) bool {
	definitions, err := c.existingDefinitions(uri)
	if err != nil {
		return false
	}
	for i, typeDef := range definitions.TypeDefinition {
		if typeDef.Name == name {
			definitions.TypeDefinition = append(definitions.TypeDefinition[:i], definitions.TypeDefinition[i+1:]...)
			return true
		}
	}
	return false
}

// CreateFunction creates a new function in the specified file, SPL allows overloads so names need not be unique
func (c *Coder) CreateFunction(uri, name, returnType, body string, parameters []*code.FunctionParameter, modifiers ...code.FunctionModifierKind) (*code.FunctionDefinition, error) {
	definitions, err := c.definitions(uri)
	if err != nil {
		return nil, err
	}
	head := &code.FunctionHead{Name: name, ReturnType: returnType}
	if len(parameters) > 0 {
		head.Parameters = &code.FunctionParameters{Parameter: parameters}
	}
	if len(modifiers) > 0 {
		head.Modifiers = &code.FunctionModifiers{}
		for _, modifier := range modifiers {
			head.Modifiers.Modifier = append(head.Modifiers.Modifier, &code.FunctionModifier{Name: code.Set(modifier)})
		}
	}
	function := &code.FunctionDefinition{FunctionHead: head, FunctionBody: body}
	definitions.FunctionDefinition = append(definitions.FunctionDefinition, function)
	return function, nil
}

// RemoveFunction removes all functions with the given name
func (c *Coder) RemoveFunction(uri, name string) bool {
	definitions, err := c.existingDefinitions(uri)
	if err != nil {
		return false
	}
	var kept []*code.FunctionDefinition
	for _, function := range definitions.FunctionDefinition {
		if function.FunctionHead != nil && function.FunctionHead.Name == name {
			continue
		}
		kept = append(kept, function)
	}
	removed := len(kept) != len(definitions.FunctionDefinition)
	definitions.FunctionDefinition = kept
	return removed
}

// CreateComposite creates a new composite operator in the specified file
func (c *Coder) CreateComposite(uri, name string, modifiers ...code.CompositeModifierKind) (*code.CompositeDefinition, error) {
	definitions, err := c.definitions(uri)
	if err != nil {
		return nil, err
	}
	if definitions.LookupComposite(name) != nil {
		return nil, fmt.Errorf("composite %s already exists in %s", name, uri)
	}
	head := &code.CompositeHead{Name: name}
	if len(modifiers) > 0 {
		head.Modifiers = &code.CompositeModifiers{}
		for _, modifier := range modifiers {
			head.Modifiers.Modifier = append(head.Modifiers.Modifier, &code.CompositeModifier{Name: code.Set(modifier)})
		}
	}
	composite := &code.CompositeDefinition{CompositeHead: head, CompositeBody: &code.CompositeBody{}}
	definitions.CompositeDefinition = append(definitions.CompositeDefinition, composite)
	return composite, nil
}

// RemoveComposite removes a composite by name
func (c *Coder) RemoveComposite(uri, name string) bool {
	definitions, err := c.existingDefinitions(uri)
	if err != nil {
		return false
	}
	for i, composite := range definitions.CompositeDefinition {
		if composite.Name() == name {
			definitions.CompositeDefinition = append(definitions.CompositeDefinition[:i], definitions.CompositeDefinition[i+1:]...)
			return true
		}
	}
	return false
}

// LookupComposite returns a composite by file uri and name
func (c *Coder) LookupComposite(uri, name string) (*code.CompositeDefinition, error) {
	definitions, err := c.existingDefinitions(uri)
	if err != nil {
		return nil, err
	}
	composite := definitions.LookupComposite(name)
	if composite == nil {
		return nil, fmt.Errorf("composite %s not found in %s", name, uri)
	}
	return composite, nil
}

// CreateOperatorInvocation appends an operator invocation to the composite graph
func (c *Coder) CreateOperatorInvocation(uri, composite, operatorName, alias string) (*code.OperatorInvocation, error) {
	definition, err := c.LookupComposite(uri, composite)
	if err != nil {
		return nil, err
	}
	if definition.CompositeBody == nil {
		definition.CompositeBody = &code.CompositeBody{}
	}
	body := definition.CompositeBody
	if body.Graph == nil {
		body.Graph = &code.CompositeGraph{}
	}
	invocation := &code.OperatorInvocation{
		OperatorInvocationHead: &code.OperatorInvocationHead{OperatorName: operatorName, InvocationAlias: alias},
		OperatorInvocationBody: &code.OperatorInvocationBody{},
	}
	body.Graph.OperatorInvocation = append(body.Graph.OperatorInvocation, invocation)
	return invocation, nil
}

// AddWindow appends a window to the invocation, completing missing policies unless disabled
func (c *Coder) AddWindow(invocation *code.OperatorInvocation, window *code.OperatorInvocationWindow) *code.OperatorInvocationWindow {
	if c.windowDefaults {
		ApplyWindowDefaults(window)
	}
	body := invocationBody(invocation)
	if body.Windows == nil {
		body.Windows = &code.OperatorInvocationWindows{}
	}
	body.Windows.Window = append(body.Windows.Window, window)
	return window
}
