package coder

import (
	"fmt"
	"strings"

	"github.com/viant/splmodel/code"
)

// ApplyWindowDefaults completes window policies: a window without eviction policy evicts by count(0),
// a sliding window without trigger policy triggers by count(1)
func ApplyWindowDefaults(window *code.OperatorInvocationWindow) {
	if window.EvictionPolicy == nil {
		window.EvictionPolicy = &code.WindowPolicy{SourceLocation: window.SourceLocation, Kind: code.Set(code.WindowPolicyCount), Size: "0"}
	}
	if window.TriggerPolicy == nil && window.IsSliding() {
		window.TriggerPolicy = &code.WindowPolicy{SourceLocation: window.SourceLocation, Kind: code.Set(code.WindowPolicyCount), Size: "1"}
	}
}

// ParseWindow builds a window from its clause items, i.e. ParseWindow("In", "sliding", "time(10)", "count(1)", "partitioned").
// The first policy is the eviction policy, the second the trigger policy.
func ParseWindow(portName string, items ...string) (*code.OperatorInvocationWindow, error) {
	ret := &code.OperatorInvocationWindow{
		PortName:    portName,
		Partitioned: code.Set(false),
		WindowType:  code.Set(code.WindowTypeTumbling),
	}
	for _, item := range items {
		item = strings.TrimSpace(item)
		if isIdentifier(item) {
			switch item {
			case "partitioned":
				ret.Partitioned = code.Set(true)
			default:
				windowType, ok := code.WindowTypeByLiteral(item)
				if !ok {
					return nil, fmt.Errorf("invalid window %s item: %s", portName, item)
				}
				ret.WindowType = code.Set(windowType)
			}
			continue
		}
		policy, err := ParseWindowPolicy(item)
		if err != nil {
			return nil, fmt.Errorf("invalid window %s: %w", portName, err)
		}
		switch {
		case ret.EvictionPolicy == nil:
			ret.EvictionPolicy = policy
		case ret.TriggerPolicy == nil:
			ret.TriggerPolicy = policy
		default:
			return nil, fmt.Errorf("invalid window %s: more than two policies", portName)
		}
	}
	return ret, nil
}

// ParseWindowPolicy parses count(size), time(size), delta(attribute, size) or punct()
func ParseWindowPolicy(text string) (*code.WindowPolicy, error) {
	idx := strings.IndexByte(text, '(')
	if idx == -1 || !strings.HasSuffix(text, ")") {
		return nil, fmt.Errorf("invalid window policy: %s", text)
	}
	name := strings.TrimSpace(text[:idx])
	kind, ok := code.WindowPolicyKindByLiteral(name)
	if !ok {
		return nil, fmt.Errorf("invalid window policy: %s", text)
	}
	args := splitArguments(text[idx+1 : len(text)-1])
	ret := &code.WindowPolicy{Kind: code.Set(kind)}
	switch kind {
	case code.WindowPolicyCount, code.WindowPolicyTime:
		if len(args) != 1 {
			return nil, fmt.Errorf("%s policy expects a size: %s", name, text)
		}
		ret.Size = args[0]
	case code.WindowPolicyDelta:
		if len(args) != 2 {
			return nil, fmt.Errorf("delta policy expects an attribute and a size: %s", text)
		}
		ret.Attribute, ret.Size = args[0], args[1]
	case code.WindowPolicyPunct:
		if len(args) != 0 {
			return nil, fmt.Errorf("punct policy takes no arguments: %s", text)
		}
	}
	return ret, nil
}
