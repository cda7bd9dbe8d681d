package coder

import (
	"strings"

	"github.com/viant/splmodel/code"
)

// NewTypeDefinition creates a type definition with the given modifiers
func NewTypeDefinition(name, value string, modifiers ...code.TypeModifierKind) *code.TypeDefinition {
	ret := &code.TypeDefinition{Name: name, Value: value}
	if len(modifiers) > 0 {
		ret.Modifiers = &code.TypeModifiers{}
		for _, modifier := range modifiers {
			ret.Modifiers.Modifier = append(ret.Modifiers.Modifier, &code.TypeModifier{Name: code.Set(modifier)})
		}
	}
	return ret
}

// AddInputPort appends a composite input port, its index is its position
func AddInputPort(composite *code.CompositeDefinition, name, portType string) *code.CompositePort {
	head := compositeHead(composite)
	if head.Inputs == nil {
		head.Inputs = &code.CompositeInputs{}
	}
	port := &code.CompositePort{Index: uint64(len(head.Inputs.Iport)), Name: name, Type: portType}
	head.Inputs.Iport = append(head.Inputs.Iport, port)
	return port
}

// AddOutputPort appends a composite output port, its index is its position
func AddOutputPort(composite *code.CompositeDefinition, name, portType string) *code.CompositePort {
	head := compositeHead(composite)
	if head.Outputs == nil {
		head.Outputs = &code.CompositeOutputs{}
	}
	port := &code.CompositePort{Index: uint64(len(head.Outputs.Oport)), Name: name, Type: portType}
	head.Outputs.Oport = append(head.Outputs.Oport, port)
	return port
}

// AddCompositeParameter appends a composite parameter, mode is an expression mode such as "expression<rstring>"
func AddCompositeParameter(composite *code.CompositeDefinition, name, mode, defaultValue string) (*code.CompositeParameter, error) {
	expressionMode, err := ParseExpressionMode(mode)
	if err != nil {
		return nil, err
	}
	body := compositeBody(composite)
	if body.Parameters == nil {
		body.Parameters = &code.CompositeParameters{}
	}
	parameter := &code.CompositeParameter{Name: name, DefaultValue: defaultValue, ExpressionMode: expressionMode}
	body.Parameters.Parameter = append(body.Parameters.Parameter, parameter)
	return parameter, nil
}

// AddCompositeType appends a type to the composite type clause
func AddCompositeType(composite *code.CompositeDefinition, typeDef *code.TypeDefinition) *code.TypeDefinition {
	body := compositeBody(composite)
	if body.Types == nil {
		body.Types = &code.CompositeTypes{}
	}
	body.Types.Type = append(body.Types.Type, typeDef)
	return typeDef
}

// AddCompositeConfig appends a config clause to the composite
func AddCompositeConfig(composite *code.CompositeDefinition, name string, options ...string) *code.Config {
	body := compositeBody(composite)
	if body.Configs == nil {
		body.Configs = &code.Configs{}
	}
	return addConfig(body.Configs, name, options...)
}

func compositeHead(composite *code.CompositeDefinition) *code.CompositeHead {
	if composite.CompositeHead == nil {
		composite.CompositeHead = &code.CompositeHead{}
	}
	return composite.CompositeHead
}

func compositeBody(composite *code.CompositeDefinition) *code.CompositeBody {
	if composite.CompositeBody == nil {
		composite.CompositeBody = &code.CompositeBody{}
	}
	return composite.CompositeBody
}

// ParseExpressionMode parses "mode" or "mode<type>"
func ParseExpressionMode(text string) (*code.CompositeParameterExpressionMode, error) {
	text = strings.TrimSpace(text)
	name, typeArgs := text, ""
	if idx := strings.IndexByte(text, '<'); idx != -1 && strings.HasSuffix(text, ">") {
		name, typeArgs = strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+1:len(text)-1])
	}
	mode, ok := code.CompositeParameterExpressionModeKindByLiteral(name)
	if !ok {
		return nil, &code.UnknownLiteralError{Enum: "compositeParameterExpressionModeEnumType", Literal: name}
	}
	return &code.CompositeParameterExpressionMode{Mode: code.Set(mode), Type: typeArgs}, nil
}

func addConfig(configs *code.Configs, name string, options ...string) *code.Config {
	config := &code.Config{Name: name}
	for _, option := range options {
		config.Option = append(config.Option, ParseConfigOption(option))
	}
	configs.Config = append(configs.Config, config)
	return config
}

// ParseConfigOption parses a config option: "value", "value(p1, p2)" or "value = p"
func ParseConfigOption(text string) *code.ConfigOption {
	text = strings.TrimSpace(text)
	if idx := strings.IndexByte(text, '('); idx > 0 && strings.HasSuffix(text, ")") && isIdentifier(strings.TrimSpace(text[:idx])) {
		ret := &code.ConfigOption{Value: strings.TrimSpace(text[:idx])}
		for _, arg := range splitArguments(text[idx+1 : len(text)-1]) {
			ret.Parameter = append(ret.Parameter, &code.ConfigValueParameter{Value: arg})
		}
		return ret
	}
	if idx := assignmentIndex(text); idx > 0 {
		return &code.ConfigOption{
			Value:     strings.TrimSpace(text[:idx]),
			Parameter: []*code.ConfigValueParameter{{Value: strings.TrimSpace(text[idx+1:])}},
		}
	}
	return &code.ConfigOption{Value: text}
}
