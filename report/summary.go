package report

import (
	"sort"

	"github.com/viant/splmodel/code"
	"gopkg.in/yaml.v3"
)

// Summary describes the documented artifacts of a source model per namespace
type Summary struct {
	SourceFiles int          `yaml:"sourceFiles"`
	Namespaces  []*Namespace `yaml:"namespaces,omitempty"`
}

// Namespace summarizes a namespace
type Namespace struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"` // from namespace-info.spl
	Files       []string    `yaml:"files,omitempty"`
	Composites  []*Artifact `yaml:"composites,omitempty"`
	Functions   []*Artifact `yaml:"functions,omitempty"`
	Types       []*Artifact `yaml:"types,omitempty"`
	Invocations int         `yaml:"invocations,omitempty"`
}

// Artifact summarizes a composite, function or type
type Artifact struct {
	Name    string `yaml:"name"`
	File    string `yaml:"file"`
	Line    int    `yaml:"line,omitempty"`
	Public  bool   `yaml:"public,omitempty"`
	Summary string `yaml:"summary,omitempty"`
}

// Summarize builds the summary of model, namespaces and artifacts are sorted by name.
// Namespace description files provide the namespace description and are not listed.
// Private artifacts are skipped unless includePrivate is set.
func Summarize(model *code.SourceModel, includePrivate bool) *Summary {
	ret := &Summary{SourceFiles: len(model.SourceFile)}
	descriptions := model.NamespaceDescriptions()
	for _, name := range model.Namespaces() {
		namespace := &Namespace{Name: name}
		if file, ok := descriptions[name]; ok {
			namespace.Description = file.CompilationUnit.SplDoc.Summary()
		}
		for _, file := range model.SourceFiles(name) {
			if file.IsNamespaceDescription() {
				continue
			}
			namespace.Files = append(namespace.Files, file.URI)
			summarizeDefinitions(namespace, file, includePrivate)
		}
		for _, artifacts := range [][]*Artifact{namespace.Composites, namespace.Functions, namespace.Types} {
			sort.SliceStable(artifacts, func(i, j int) bool { return artifacts[i].Name < artifacts[j].Name })
		}
		ret.Namespaces = append(ret.Namespaces, namespace)
	}
	return ret
}

func summarizeDefinitions(namespace *Namespace, file *code.SourceFile, includePrivate bool) {
	definitions := file.Definitions()
	for _, composite := range definitions.CompositeDefinition {
		namespace.Invocations += len(composite.Invocations())
		head := composite.CompositeHead
		if head == nil || !(includePrivate || head.IsPublic()) {
			continue
		}
		namespace.Composites = append(namespace.Composites, &Artifact{
			Name: head.Name, File: file.URI, Line: composite.StartLine, Public: head.IsPublic(), Summary: head.SplDoc.Summary(),
		})
	}
	for _, function := range definitions.FunctionDefinition {
		head := function.FunctionHead
		if head == nil || !(includePrivate || head.IsPublic()) {
			continue
		}
		namespace.Functions = append(namespace.Functions, &Artifact{
			Name: head.Name, File: file.URI, Line: function.StartLine, Public: head.IsPublic(), Summary: head.SplDoc.Summary(),
		})
	}
	for _, typeDef := range definitions.TypeDefinition {
		if !(includePrivate || typeDef.IsPublic()) {
			continue
		}
		namespace.Types = append(namespace.Types, &Artifact{
			Name: typeDef.Name, File: file.URI, Line: typeDef.StartLine, Public: typeDef.IsPublic(), Summary: typeDef.SplDoc.Summary(),
		})
	}
}

// YAML renders the summary
func (s *Summary) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// Lookup returns a namespace summary by name
func (s *Summary) Lookup(name string) *Namespace {
	for _, namespace := range s.Namespaces {
		if namespace.Name == name {
			return namespace
		}
	}
	return nil
}
