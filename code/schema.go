package code

import (
	"reflect"
	"strings"
	"sync"
)

// FeatureKind defines how a feature binds to XML
type FeatureKind int

const (
	// AttributeFeature binds to an unqualified XML attribute
	AttributeFeature FeatureKind = iota
	// ElementFeature binds to a child element
	ElementFeature
)

func (k FeatureKind) String() string {
	if k == AttributeFeature {
		return "attribute"
	}
	return "element"
}

// Feature describes a single field of a node type
type Feature struct {
	Name       string       // XML name
	Field      string       // Go field name
	Kind       FeatureKind  // attribute or element
	Type       reflect.Type // value type, for lists the item type, for settables the held type
	Required   bool         // lower bound 1 on a single valued feature
	Many       bool         // list valued
	NonEmpty   bool         // lower bound 1 on a list valued feature
	Unsettable bool         // tri-state attribute
	Node       *NodeType    // contained node type, element features only

	index []int
}

// IsContainment reports whether the feature holds child nodes
func (f *Feature) IsContainment() bool {
	return f.Kind == ElementFeature && f.Node != nil
}

// Value returns the feature value of node, node has to be a pointer to the owning struct
func (f *Feature) Value(node any) reflect.Value {
	return reflect.ValueOf(node).Elem().FieldByIndex(f.index)
}

// NodeType describes a node type and its ordered features
type NodeType struct {
	Name     string // XML schema type name, i.e. compositeHeadType
	GoName   string // Go type name, i.e. CompositeHead
	Type     reflect.Type
	Features []*Feature

	featureMap map[string]int
}

// Feature returns a feature by XML name
func (n *NodeType) Feature(name string) *Feature {
	if idx, ok := n.featureMap[name]; ok {
		return n.Features[idx]
	}
	return nil
}

// New creates a node in its default state
func (n *NodeType) New() any {
	return reflect.New(n.Type).Interface()
}

// Registry describes all node types and enums of the source model
type Registry struct {
	types   []*NodeType
	enums   []*Enum
	typeMap map[string]*NodeType
	goTypes map[reflect.Type]*NodeType
	enumMap map[string]*Enum
}

var (
	registry     *Registry
	registryOnce sync.Once
)

// Schema returns the shared, immutable registry
func Schema() *Registry {
	registryOnce.Do(func() {
		registry = newRegistry()
	})
	return registry
}

// Types returns all node types
func (r *Registry) Types() []*NodeType {
	return r.types
}

// Lookup returns a node type by XML type name or Go name
func (r *Registry) Lookup(name string) *NodeType {
	return r.typeMap[name]
}

// TypeOf returns the node type of node, which can be a struct or a pointer
func (r *Registry) TypeOf(node any) *NodeType {
	t := reflect.TypeOf(node)
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return r.goTypes[t]
}

// Enums returns all enum literal tables
func (r *Registry) Enums() []*Enum {
	return r.enums
}

// Enum returns an enum literal table by XML type name
func (r *Registry) Enum(name string) *Enum {
	return r.enumMap[name]
}

// Create creates a node in its default state by XML type name or Go name
func Create(name string) (any, bool) {
	nodeType := Schema().Lookup(name)
	if nodeType == nil {
		return nil, false
	}
	return nodeType.New(), true
}

var nodeTypes = []struct {
	name      string
	prototype any
}{
	{"sourceModelType", SourceModel{}},
	{"sourceFileType", SourceFile{}},
	{"compilationUnitType", CompilationUnit{}},
	{"splNamespaceType", SplNamespace{}},
	{"useDirectivesType", UseDirectives{}},
	{"useDirectiveType", UseDirective{}},
	{"definitionsType", Definitions{}},
	{"typeDefinitionType", TypeDefinition{}},
	{"typeModifiersType", TypeModifiers{}},
	{"typeModifierType", TypeModifier{}},
	{"functionDefinitionType", FunctionDefinition{}},
	{"functionHeadType", FunctionHead{}},
	{"functionModifiersType", FunctionModifiers{}},
	{"functionModifierType", FunctionModifier{}},
	{"functionParametersType", FunctionParameters{}},
	{"functionParameterType", FunctionParameter{}},
	{"functionParameterModifiersType", FunctionParameterModifiers{}},
	{"functionParameterModifierType", FunctionParameterModifier{}},
	{"compositeDefinitionType", CompositeDefinition{}},
	{"compositeHeadType", CompositeHead{}},
	{"compositeModifiersType", CompositeModifiers{}},
	{"compositeModifierType", CompositeModifier{}},
	{"compositeInputsType", CompositeInputs{}},
	{"compositeOutputsType", CompositeOutputs{}},
	{"compositePortType", CompositePort{}},
	{"compositeBodyType", CompositeBody{}},
	{"compositeTypesType", CompositeTypes{}},
	{"compositeParametersType", CompositeParameters{}},
	{"compositeParameterType", CompositeParameter{}},
	{"compositeParameterExpressionModeType", CompositeParameterExpressionMode{}},
	{"compositeGraphType", CompositeGraph{}},
	{"operatorInvocationType", OperatorInvocation{}},
	{"operatorInvocationHeadType", OperatorInvocationHead{}},
	{"operatorInvocationOutputsType", OperatorInvocationOutputs{}},
	{"operatorInvocationOutputType", OperatorInvocationOutput{}},
	{"operatorInvocationInputsType", OperatorInvocationInputs{}},
	{"operatorInvocationInputType", OperatorInvocationInput{}},
	{"operatorInvocationInputStreamType", OperatorInvocationInputStream{}},
	{"operatorInvocationBodyType", OperatorInvocationBody{}},
	{"operatorInvocationLogicType", OperatorInvocationLogic{}},
	{"onProcessType", OnProcess{}},
	{"onTupleType", OnTuple{}},
	{"onPunctType", OnPunct{}},
	{"operatorInvocationWindowsType", OperatorInvocationWindows{}},
	{"operatorInvocationWindowType", OperatorInvocationWindow{}},
	{"windowPolicyType", WindowPolicy{}},
	{"operatorInvocationParametersType", OperatorInvocationParameters{}},
	{"operatorInvocationParameterType", OperatorInvocationParameter{}},
	{"operatorInvocationOutputAssignmentsType", OperatorInvocationOutputAssignments{}},
	{"operatorInvocationOutputAssignmentType", OperatorInvocationOutputAssignment{}},
	{"operatorInvocationAttributeAssignmentType", OperatorInvocationAttributeAssignment{}},
	{"expressionType", Expression{}},
	{"configsType", Configs{}},
	{"configType", Config{}},
	{"configOptionType", ConfigOption{}},
	{"configValueParameterType", ConfigValueParameter{}},
	{"splDocType", SplDoc{}},
	{"splDocDescriptionType", SplDocDescription{}},
	{"splDocAnnotationType", SplDocAnnotation{}},
}

var settableType = reflect.TypeOf((*interface{ IsSet() bool })(nil)).Elem()

func newRegistry() *Registry {
	ret := &Registry{
		typeMap: make(map[string]*NodeType),
		goTypes: make(map[reflect.Type]*NodeType),
		enumMap: make(map[string]*Enum),
	}
	for _, item := range nodeTypes {
		t := reflect.TypeOf(item.prototype)
		nodeType := &NodeType{Name: item.name, GoName: t.Name(), Type: t, featureMap: map[string]int{}}
		ret.types = append(ret.types, nodeType)
		ret.typeMap[nodeType.Name] = nodeType
		ret.typeMap[nodeType.GoName] = nodeType
		ret.goTypes[t] = nodeType
	}
	for _, nodeType := range ret.types {
		ret.addFeatures(nodeType, nodeType.Type, nil)
	}
	for _, enum := range enums() {
		ret.enums = append(ret.enums, enum)
		ret.enumMap[enum.Name] = enum
	}
	return ret
}

func (r *Registry) addFeatures(nodeType *NodeType, t reflect.Type, index []int) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldIndex := append(append([]int{}, index...), i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			r.addFeatures(nodeType, field.Type, fieldIndex)
			continue
		}
		tag, ok := field.Tag.Lookup("xml")
		if !ok || tag == "-" || !field.IsExported() {
			continue
		}
		feature := &Feature{Field: field.Name, Kind: ElementFeature, Type: field.Type, index: fieldIndex}
		parts := strings.Split(tag, ",")
		feature.Name = parts[0]
		for _, option := range parts[1:] {
			if option == "attr" {
				feature.Kind = AttributeFeature
			}
		}
		for _, option := range strings.Split(field.Tag.Get("spl"), ",") {
			switch option {
			case "required":
				feature.Required = true
			case "nonempty":
				feature.NonEmpty = true
			}
		}
		itemType := field.Type
		if itemType.Kind() == reflect.Slice {
			feature.Many = true
			itemType = itemType.Elem()
		}
		if itemType.Kind() == reflect.Ptr {
			itemType = itemType.Elem()
		}
		if itemType.Implements(settableType) {
			feature.Unsettable = true
			itemType = itemType.Field(0).Type
		}
		feature.Type = itemType
		if feature.Kind == ElementFeature {
			feature.Node = r.goTypes[itemType]
		}
		nodeType.featureMap[feature.Name] = len(nodeType.Features)
		nodeType.Features = append(nodeType.Features, feature)
	}
}
