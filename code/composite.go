package code

// CompositeDefinition represents a composite operator
type CompositeDefinition struct {
	ExtendedSourceLocation
	CompositeHead *CompositeHead `xml:"compositeHead" spl:"required"`
	CompositeBody *CompositeBody `xml:"compositeBody" spl:"required"`
}

// Name returns the composite name
func (c *CompositeDefinition) Name() string {
	if c.CompositeHead == nil {
		return ""
	}
	return c.CompositeHead.Name
}

// CompositeHead represents a composite signature
type CompositeHead struct {
	SourceLocation
	SplDoc    *SplDoc             `xml:"splDoc,omitempty"`
	Modifiers *CompositeModifiers `xml:"modifiers,omitempty"`
	Inputs    *CompositeInputs    `xml:"inputs,omitempty"`
	Outputs   *CompositeOutputs   `xml:"outputs,omitempty"`
	Name      string              `xml:"name,attr" spl:"required"`
}

// IsPublic reports whether the composite is public
func (h *CompositeHead) IsPublic() bool {
	if h == nil || h.Modifiers == nil {
		return false
	}
	for _, modifier := range h.Modifiers.Modifier {
		if modifier.Name.Valid && modifier.Name.Value == CompositeModifierPublic {
			return true
		}
	}
	return false
}

// CompositeModifiers groups composite modifiers
type CompositeModifiers struct {
	Modifier []*CompositeModifier `xml:"modifier" spl:"nonempty"`
}

// CompositeModifier represents a single composite modifier
type CompositeModifier struct {
	Name Settable[CompositeModifierKind] `xml:"name,attr" spl:"required"`
}

// CompositeInputs groups composite input ports
type CompositeInputs struct {
	Iport []*CompositePort `xml:"iport"`
}

// CompositeOutputs groups composite output ports
type CompositeOutputs struct {
	Oport []*CompositePort `xml:"oport"`
}

// CompositePort represents a composite input or output port
type CompositePort struct {
	SourceLocation
	Index uint64 `xml:"index,attr" spl:"required"` // position within its port list
	Name  string `xml:"name,attr" spl:"required"`
	Type  string `xml:"type,attr,omitempty"`
}

// CompositeBody holds the composite types, parameters, graph and configs
type CompositeBody struct {
	Types      *CompositeTypes      `xml:"types,omitempty"`
	Parameters *CompositeParameters `xml:"parameters,omitempty"`
	Graph      *CompositeGraph      `xml:"graph,omitempty"`
	Configs    *Configs             `xml:"configs,omitempty"`
}

// CompositeTypes groups types defined in a composite
type CompositeTypes struct {
	SourceLocation
	Type []*TypeDefinition `xml:"type" spl:"nonempty"`
}

// CompositeParameters groups composite parameters
type CompositeParameters struct {
	Parameter []*CompositeParameter `xml:"parameter" spl:"nonempty"`
}

// CompositeParameter represents a composite parameter
type CompositeParameter struct {
	SourceLocation
	ExpressionMode *CompositeParameterExpressionMode `xml:"expressionMode" spl:"required"`
	DefaultValue   string                            `xml:"defaultValue,attr,omitempty"`
	Name           string                            `xml:"name,attr" spl:"required"`
}

// CompositeParameterExpressionMode represents the mode and optional type of a composite parameter
type CompositeParameterExpressionMode struct {
	Mode Settable[CompositeParameterExpressionModeKind] `xml:"mode,attr" spl:"required"`
	Type string                                         `xml:"type,attr,omitempty"`
}

// CompositeGraph holds the operator invocations of a composite
type CompositeGraph struct {
	OperatorInvocation []*OperatorInvocation `xml:"operatorInvocation" spl:"nonempty"`
}
