package code

// OperatorInvocation represents an operator invocation within a composite graph
type OperatorInvocation struct {
	OperatorInvocationHead *OperatorInvocationHead `xml:"operatorInvocationHead" spl:"required"`
	OperatorInvocationBody *OperatorInvocationBody `xml:"operatorInvocationBody" spl:"required"`
}

// OperatorInvocationHead represents "(outputs) as alias = Operator(inputs)"
type OperatorInvocationHead struct {
	SourceLocation
	SplDoc          *SplDoc                    `xml:"splDoc,omitempty"`
	Outputs         *OperatorInvocationOutputs `xml:"outputs,omitempty"`
	Inputs          *OperatorInvocationInputs  `xml:"inputs,omitempty"`
	InvocationAlias string                     `xml:"invocationAlias,attr,omitempty"`
	OperatorName    string                     `xml:"operatorName,attr" spl:"required"`
}

// OperatorInvocationOutputs groups output streams
type OperatorInvocationOutputs struct {
	Output []*OperatorInvocationOutput `xml:"output" spl:"nonempty"`
}

// OperatorInvocationOutput represents an output stream
type OperatorInvocationOutput struct {
	SourceLocation
	Alias      string `xml:"alias,attr,omitempty"`
	Index      uint64 `xml:"index,attr" spl:"required"`
	StreamName string `xml:"streamName,attr" spl:"required"`
	Type       string `xml:"type,attr" spl:"required"`
}

// OperatorInvocationInputs groups input ports
type OperatorInvocationInputs struct {
	Input []*OperatorInvocationInput `xml:"input" spl:"nonempty"`
}

// OperatorInvocationInput represents an input port, fed by one or more streams
type OperatorInvocationInput struct {
	SourceLocation
	Istream []*OperatorInvocationInputStream `xml:"istream" spl:"nonempty"`
	Alias   string                           `xml:"alias,attr,omitempty"`
	Index   uint64                           `xml:"index,attr" spl:"required"`
}

// OperatorInvocationInputStream represents a stream feeding an input port
type OperatorInvocationInputStream struct {
	SourceLocation
	Name string `xml:"name,attr,omitempty"`
}

// OperatorInvocationBody holds the invocation clauses
type OperatorInvocationBody struct {
	Logic             *OperatorInvocationLogic             `xml:"logic,omitempty"`
	Windows           *OperatorInvocationWindows           `xml:"windows,omitempty"`
	Parameters        *OperatorInvocationParameters        `xml:"parameters,omitempty"`
	OutputAssignments *OperatorInvocationOutputAssignments `xml:"outputAssignments,omitempty"`
	Configs           *Configs                             `xml:"configs,omitempty"`
}

// OperatorInvocationLogic represents the logic clause
type OperatorInvocationLogic struct {
	OnProcess *OnProcess     `xml:"onProcess,omitempty"`
	OnTuple   []*OnTuple     `xml:"onTuple"`
	OnPunct   []*OnPunct     `xml:"onPunct"`
	HasState  Settable[bool] `xml:"hasState,attr" spl:"required"`
}

// OnProcess represents an onProcess handler
type OnProcess struct {
	SourceLocation
}

// OnTuple represents an onTuple handler
type OnTuple struct {
	SourceLocation
	PortName string `xml:"portName,attr" spl:"required"`
}

// OnPunct represents an onPunct handler
type OnPunct struct {
	SourceLocation
	PortName string `xml:"portName,attr" spl:"required"`
}

// OperatorInvocationWindows groups window clauses
type OperatorInvocationWindows struct {
	Window []*OperatorInvocationWindow `xml:"window" spl:"nonempty"`
}

// OperatorInvocationWindow represents a window on an input port
type OperatorInvocationWindow struct {
	SourceLocation
	EvictionPolicy *WindowPolicy        `xml:"evictionPolicy" spl:"required"`
	TriggerPolicy  *WindowPolicy        `xml:"triggerPolicy,omitempty"`
	Partitioned    Settable[bool]       `xml:"partitioned,attr" spl:"required"`
	PortName       string               `xml:"portName,attr" spl:"required"`
	WindowType     Settable[WindowType] `xml:"windowType,attr" spl:"required"`
}

// IsSliding reports whether the window is explicitly sliding
func (w *OperatorInvocationWindow) IsSliding() bool {
	return w.WindowType.Valid && w.WindowType.Value == WindowTypeSliding
}

// WindowPolicy represents an eviction or trigger policy
type WindowPolicy struct {
	SourceLocation
	Attribute string                     `xml:"attribute,attr,omitempty"` // delta attribute
	Kind      Settable[WindowPolicyKind] `xml:"kind,attr" spl:"required"`
	Size      string                     `xml:"size,attr,omitempty"`
}

// OperatorInvocationParameters groups invocation parameters
type OperatorInvocationParameters struct {
	Parameter []*OperatorInvocationParameter `xml:"parameter" spl:"nonempty"`
}

// OperatorInvocationParameter represents "name : value, ..."
type OperatorInvocationParameter struct {
	SourceLocation
	Value []*Expression `xml:"value" spl:"nonempty"`
	Name  string        `xml:"name,attr" spl:"required"`
}

// OperatorInvocationOutputAssignments groups output clauses
type OperatorInvocationOutputAssignments struct {
	OutputAssignment []*OperatorInvocationOutputAssignment `xml:"outputAssignment"`
}

// OperatorInvocationOutputAssignment represents output assignments of one port
type OperatorInvocationOutputAssignment struct {
	SourceLocation
	AttributeAssignment []*OperatorInvocationAttributeAssignment `xml:"attributeAssignment" spl:"nonempty"`
	PortName            string                                   `xml:"portName,attr" spl:"required"`
}

// OperatorInvocationAttributeAssignment represents "name = [outputFunction](value)"
type OperatorInvocationAttributeAssignment struct {
	SourceLocation
	Value          []*Expression `xml:"value" spl:"nonempty"`
	Name           string        `xml:"name,attr" spl:"required"`
	OutputFunction string        `xml:"outputFunction,attr,omitempty"`
}
