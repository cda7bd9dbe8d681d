package coder

import "github.com/viant/splmodel/code"

func invocationHead(invocation *code.OperatorInvocation) *code.OperatorInvocationHead {
	if invocation.OperatorInvocationHead == nil {
		invocation.OperatorInvocationHead = &code.OperatorInvocationHead{}
	}
	return invocation.OperatorInvocationHead
}

func invocationBody(invocation *code.OperatorInvocation) *code.OperatorInvocationBody {
	if invocation.OperatorInvocationBody == nil {
		invocation.OperatorInvocationBody = &code.OperatorInvocationBody{}
	}
	return invocation.OperatorInvocationBody
}

// AddInput appends an input port fed by streams, its index is its position
func AddInput(invocation *code.OperatorInvocation, alias string, streams ...string) *code.OperatorInvocationInput {
	head := invocationHead(invocation)
	if head.Inputs == nil {
		head.Inputs = &code.OperatorInvocationInputs{}
	}
	input := &code.OperatorInvocationInput{Index: uint64(len(head.Inputs.Input)), Alias: alias}
	for _, stream := range streams {
		input.Istream = append(input.Istream, &code.OperatorInvocationInputStream{Name: stream})
	}
	head.Inputs.Input = append(head.Inputs.Input, input)
	return input
}

// AddOutput appends an output stream, its index is its position
func AddOutput(invocation *code.OperatorInvocation, streamName, streamType, alias string) *code.OperatorInvocationOutput {
	head := invocationHead(invocation)
	if head.Outputs == nil {
		head.Outputs = &code.OperatorInvocationOutputs{}
	}
	output := &code.OperatorInvocationOutput{Index: uint64(len(head.Outputs.Output)), StreamName: streamName, Type: streamType, Alias: alias}
	head.Outputs.Output = append(head.Outputs.Output, output)
	return output
}

// Logic returns the invocation logic clause, creating it stateless when absent
func Logic(invocation *code.OperatorInvocation) *code.OperatorInvocationLogic {
	body := invocationBody(invocation)
	if body.Logic == nil {
		body.Logic = &code.OperatorInvocationLogic{HasState: code.Set(false)}
	}
	return body.Logic
}

// SetState marks the logic clause as holding a state clause
func SetState(invocation *code.OperatorInvocation) *code.OperatorInvocationLogic {
	logic := Logic(invocation)
	logic.HasState = code.Set(true)
	return logic
}

// SetOnProcess adds the onProcess handler
func SetOnProcess(invocation *code.OperatorInvocation) *code.OnProcess {
	logic := Logic(invocation)
	if logic.OnProcess == nil {
		logic.OnProcess = &code.OnProcess{}
	}
	return logic.OnProcess
}

// AddOnTuple adds an onTuple handler for port
func AddOnTuple(invocation *code.OperatorInvocation, portName string) *code.OnTuple {
	logic := Logic(invocation)
	handler := &code.OnTuple{PortName: portName}
	logic.OnTuple = append(logic.OnTuple, handler)
	return handler
}

// AddOnPunct adds an onPunct handler for port
func AddOnPunct(invocation *code.OperatorInvocation, portName string) *code.OnPunct {
	logic := Logic(invocation)
	handler := &code.OnPunct{PortName: portName}
	logic.OnPunct = append(logic.OnPunct, handler)
	return handler
}

// AddParameter appends "name : values"
func AddParameter(invocation *code.OperatorInvocation, name string, values ...string) *code.OperatorInvocationParameter {
	body := invocationBody(invocation)
	if body.Parameters == nil {
		body.Parameters = &code.OperatorInvocationParameters{}
	}
	parameter := &code.OperatorInvocationParameter{Name: name, Value: Expressions(values...)}
	body.Parameters.Parameter = append(body.Parameters.Parameter, parameter)
	return parameter
}

// AddOutputAssignment appends the output clause of a port
func AddOutputAssignment(invocation *code.OperatorInvocation, portName string, assignments ...*code.OperatorInvocationAttributeAssignment) *code.OperatorInvocationOutputAssignment {
	body := invocationBody(invocation)
	if body.OutputAssignments == nil {
		body.OutputAssignments = &code.OperatorInvocationOutputAssignments{}
	}
	assignment := &code.OperatorInvocationOutputAssignment{PortName: portName, AttributeAssignment: assignments}
	body.OutputAssignments.OutputAssignment = append(body.OutputAssignments.OutputAssignment, assignment)
	return assignment
}

// Assign creates "name = outputFunction(values)", outputFunction is optional
func Assign(name, outputFunction string, values ...string) *code.OperatorInvocationAttributeAssignment {
	return &code.OperatorInvocationAttributeAssignment{Name: name, OutputFunction: outputFunction, Value: Expressions(values...)}
}

// AddConfig appends a config clause to the invocation
func AddConfig(invocation *code.OperatorInvocation, name string, options ...string) *code.Config {
	body := invocationBody(invocation)
	if body.Configs == nil {
		body.Configs = &code.Configs{}
	}
	return addConfig(body.Configs, name, options...)
}

// Expressions wraps expression texts
func Expressions(values ...string) []*code.Expression {
	var ret []*code.Expression
	for _, value := range values {
		ret = append(ret, &code.Expression{Expr: value})
	}
	return ret
}
