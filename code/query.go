package code

import (
	"path"
	"sort"
)

// NamespaceInfoFile is the file name of a namespace description file
const NamespaceInfoFile = "namespace-info.spl"

// LookupSourceFile returns a source file by uri
func (m *SourceModel) LookupSourceFile(uri string) *SourceFile {
	for _, file := range m.SourceFile {
		if file.URI == uri {
			return file
		}
	}
	return nil
}

// AddSourceFile appends file, replacing a file with the same uri
func (m *SourceModel) AddSourceFile(file *SourceFile) {
	for i, candidate := range m.SourceFile {
		if candidate.URI == file.URI {
			m.SourceFile[i] = file
			return
		}
	}
	m.SourceFile = append(m.SourceFile, file)
}

// RemoveSourceFile removes a source file by uri
func (m *SourceModel) RemoveSourceFile(uri string) bool {
	for i, file := range m.SourceFile {
		if file.URI == uri {
			m.SourceFile = append(m.SourceFile[:i], m.SourceFile[i+1:]...)
			return true
		}
	}
	return false
}

// Namespaces returns the distinct namespaces, sorted; the default namespace is ""
func (m *SourceModel) Namespaces() []string {
	unique := map[string]bool{}
	for _, file := range m.SourceFile {
		unique[file.Namespace()] = true
	}
	var ret []string
	for namespace := range unique {
		ret = append(ret, namespace)
	}
	sort.Strings(ret)
	return ret
}

// SourceFiles returns the source files of namespace, in document order
func (m *SourceModel) SourceFiles(namespace string) []*SourceFile {
	var ret []*SourceFile
	for _, file := range m.SourceFile {
		if file.Namespace() == namespace {
			ret = append(ret, file)
		}
	}
	return ret
}

// NamespaceDescriptions maps namespaces to their description file.
// A description file is named namespace-info.spl and defines nothing.
func (m *SourceModel) NamespaceDescriptions() map[string]*SourceFile {
	ret := map[string]*SourceFile{}
	for _, file := range m.SourceFile {
		if file.IsNamespaceDescription() {
			ret[file.Namespace()] = file
		}
	}
	return ret
}

// Namespace returns the declared namespace or "" for the default namespace
func (f *SourceFile) Namespace() string {
	if f.CompilationUnit == nil || f.CompilationUnit.SplNamespace == nil {
		return ""
	}
	return f.CompilationUnit.SplNamespace.Name
}

// IsNamespaceDescription reports whether the file only describes its namespace
func (f *SourceFile) IsNamespaceDescription() bool {
	if f.CompilationUnit == nil || f.CompilationUnit.Definitions != nil {
		return false
	}
	return path.Base(f.URI) == NamespaceInfoFile
}

// Definitions returns the file definitions or an empty set
func (f *SourceFile) Definitions() *Definitions {
	if f.CompilationUnit == nil || f.CompilationUnit.Definitions == nil {
		return &Definitions{}
	}
	return f.CompilationUnit.Definitions
}

// LookupComposite returns a composite by name
func (d *Definitions) LookupComposite(name string) *CompositeDefinition {
	for _, composite := range d.CompositeDefinition {
		if composite.Name() == name {
			return composite
		}
	}
	return nil
}

// LookupFunction returns the first function with name
func (d *Definitions) LookupFunction(name string) *FunctionDefinition {
	for _, function := range d.FunctionDefinition {
		if function.FunctionHead != nil && function.FunctionHead.Name == name {
			return function
		}
	}
	return nil
}

// LookupType returns a type definition by name
func (d *Definitions) LookupType(name string) *TypeDefinition {
	for _, typeDef := range d.TypeDefinition {
		if typeDef.Name == name {
			return typeDef
		}
	}
	return nil
}

// StaticTypes returns the static types of the composite keyed by name
func (c *CompositeDefinition) StaticTypes() map[string]*TypeDefinition {
	ret := map[string]*TypeDefinition{}
	if c.CompositeBody == nil || c.CompositeBody.Types == nil {
		return ret
	}
	for _, typeDef := range c.CompositeBody.Types.Type {
		if typeDef.IsStatic() {
			ret[typeDef.Name] = typeDef
		}
	}
	return ret
}

// Invocations returns the operator invocations of the composite graph
func (c *CompositeDefinition) Invocations() []*OperatorInvocation {
	if c.CompositeBody == nil || c.CompositeBody.Graph == nil {
		return nil
	}
	return c.CompositeBody.Graph.OperatorInvocation
}

// HasContents reports whether the definitions contain documented artifacts
func (d *Definitions) HasContents(includePrivate bool) bool {
	for _, composite := range d.CompositeDefinition {
		if includePrivate || composite.CompositeHead.IsPublic() {
			return true
		}
	}
	for _, function := range d.FunctionDefinition {
		if includePrivate || (function.FunctionHead != nil && function.FunctionHead.IsPublic()) {
			return true
		}
	}
	return len(d.TypeDefinition) > 0
}
