package code

// TypeDefinition represents a named type, at top level or within a composite
type TypeDefinition struct {
	ExtendedSourceLocation
	SplDoc    *SplDoc        `xml:"splDoc,omitempty"`
	Modifiers *TypeModifiers `xml:"modifiers,omitempty"`
	Name      string         `xml:"name,attr" spl:"required"`
	Value     string         `xml:"value,attr" spl:"required"` // type expression text
}

// TypeModifiers groups type modifiers
type TypeModifiers struct {
	Modifier []*TypeModifier `xml:"modifier"`
}

// TypeModifier represents a single type modifier
type TypeModifier struct {
	Name Settable[TypeModifierKind] `xml:"name,attr" spl:"required"`
}

// Has reports whether kind is present
func (m *TypeModifiers) Has(kind TypeModifierKind) bool {
	if m == nil {
		return false
	}
	for _, modifier := range m.Modifier {
		if modifier.Name.Valid && modifier.Name.Value == kind {
			return true
		}
	}
	return false
}

// IsStatic reports whether the type is static
func (t *TypeDefinition) IsStatic() bool {
	return t.Modifiers.Has(TypeModifierStatic)
}

// IsPublic reports whether the type is public
func (t *TypeDefinition) IsPublic() bool {
	return t.Modifiers.Has(TypeModifierPublic)
}

// FunctionDefinition represents an SPL function
type FunctionDefinition struct {
	ExtendedSourceLocation
	FunctionHead *FunctionHead `xml:"functionHead" spl:"required"`
	FunctionBody string        `xml:"functionBody,omitempty"` // body source text
}

// FunctionHead represents a function signature
type FunctionHead struct {
	SourceLocation
	SplDoc     *SplDoc             `xml:"splDoc,omitempty"`
	Modifiers  *FunctionModifiers  `xml:"modifiers,omitempty"`
	Parameters *FunctionParameters `xml:"parameters,omitempty"`
	Name       string              `xml:"name,attr" spl:"required"`
	ReturnType string              `xml:"returnType,attr" spl:"required"`
}

// FunctionModifiers groups function modifiers
type FunctionModifiers struct {
	Modifier []*FunctionModifier `xml:"modifier"`
}

// FunctionModifier represents a single function modifier
type FunctionModifier struct {
	Name Settable[FunctionModifierKind] `xml:"name,attr" spl:"required"`
}

// Has reports whether kind is present
func (m *FunctionModifiers) Has(kind FunctionModifierKind) bool {
	if m == nil {
		return false
	}
	for _, modifier := range m.Modifier {
		if modifier.Name.Valid && modifier.Name.Value == kind {
			return true
		}
	}
	return false
}

// IsPublic reports whether the function is public
func (h *FunctionHead) IsPublic() bool {
	return h.Modifiers.Has(FunctionModifierPublic)
}

// IsStateful reports whether the function is stateful
func (h *FunctionHead) IsStateful() bool {
	return h.Modifiers.Has(FunctionModifierStateful)
}

// FunctionParameters groups function parameters
type FunctionParameters struct {
	Parameter []*FunctionParameter `xml:"parameter"`
}

// FunctionParameter represents a single function parameter
type FunctionParameter struct {
	SourceLocation
	Modifiers *FunctionParameterModifiers `xml:"modifiers,omitempty"`
	Name      string                      `xml:"name,attr" spl:"required"`
	Type      string                      `xml:"type,attr" spl:"required"`
}

// FunctionParameterModifiers groups function parameter modifiers
type FunctionParameterModifiers struct {
	Modifier []*FunctionParameterModifier `xml:"modifier"`
}

// FunctionParameterModifier represents a single function parameter modifier
type FunctionParameterModifier struct {
	Name Settable[FunctionParameterModifierKind] `xml:"name,attr" spl:"required"`
}

// IsMutable reports whether the parameter is mutable
func (p *FunctionParameter) IsMutable() bool {
	if p.Modifiers == nil {
		return false
	}
	for _, modifier := range p.Modifiers.Modifier {
		if modifier.Name.Valid && modifier.Name.Value == FunctionParameterModifierMutable {
			return true
		}
	}
	return false
}
