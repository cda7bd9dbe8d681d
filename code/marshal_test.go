package code

import (
	"errors"
	"strings"
	"testing"

	"github.com/r3labs/diff/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRoundTrip(t *testing.T, model *SourceModel) *SourceModel {
	t.Helper()
	data, err := Marshal(model)
	require.NoError(t, err)
	actual, err := Unmarshal(data)
	require.NoError(t, err, string(data))
	changes, err := diff.Diff(model, actual)
	require.NoError(t, err)
	assert.Empty(t, changes)
	assert.EqualValues(t, model, actual)
	return actual
}

func TestMarshal_RoundTrip(t *testing.T) {
	var testCases = []struct {
		description string
		model       *SourceModel
	}{
		{description: "empty model", model: &SourceModel{}},
		{description: "minimal source file", model: minimalModel()},
		{description: "composite with functor", model: functorModel()},
		{description: "all optional features populated", model: maximalModel()},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assertRoundTrip(t, testCase.model)
		})
	}
}

func TestMarshal_Functor(t *testing.T) {
	actual := assertRoundTrip(t, functorModel())
	composite := actual.SourceFile[0].CompilationUnit.Definitions.CompositeDefinition[0]
	invocation := composite.CompositeBody.Graph.OperatorInvocation[0]
	assert.Equal(t, "Functor", invocation.OperatorInvocationHead.OperatorName)
	assert.Equal(t, "Out1", invocation.OperatorInvocationHead.Outputs.Output[0].StreamName)
	assert.Equal(t, "tuple<int32 a>", invocation.OperatorInvocationHead.Outputs.Output[0].Type)
	assert.Equal(t, "In1", composite.CompositeHead.Inputs.Iport[0].Name)
	assert.Equal(t, "In1", invocation.OperatorInvocationHead.Inputs.Input[0].Istream[0].Name)
}

func TestMarshal_OrderPreservation(t *testing.T) {
	permutations := [][]string{
		{"A", "B", "C"},
		{"C", "A", "B"},
		{"B", "C", "A"},
	}
	for _, names := range permutations {
		t.Run(strings.Join(names, ""), func(t *testing.T) {
			definitions := &Definitions{}
			graph := &CompositeGraph{}
			for _, name := range names {
				definitions.TypeDefinition = append(definitions.TypeDefinition, &TypeDefinition{Name: name, Value: "int32"})
				graph.OperatorInvocation = append(graph.OperatorInvocation, &OperatorInvocation{
					OperatorInvocationHead: &OperatorInvocationHead{OperatorName: name},
					OperatorInvocationBody: &OperatorInvocationBody{},
				})
			}
			definitions.CompositeDefinition = []*CompositeDefinition{{
				CompositeHead: &CompositeHead{Name: "Main"},
				CompositeBody: &CompositeBody{Graph: graph},
			}}
			model := &SourceModel{SourceFile: []*SourceFile{{URI: "a.spl", CompilationUnit: &CompilationUnit{Definitions: definitions}}}}
			actual := assertRoundTrip(t, model)

			var typeNames, operatorNames []string
			actualDefinitions := actual.SourceFile[0].CompilationUnit.Definitions
			for _, typeDef := range actualDefinitions.TypeDefinition {
				typeNames = append(typeNames, typeDef.Name)
			}
			for _, invocation := range actualDefinitions.CompositeDefinition[0].Invocations() {
				operatorNames = append(operatorNames, invocation.OperatorInvocationHead.OperatorName)
			}
			assert.Equal(t, names, typeNames)
			assert.Equal(t, names, operatorNames)
		})
	}
}

func TestMarshal_TriState(t *testing.T) {
	var testCases = []struct {
		description string
		hasState    Settable[bool]
		expect      string
		absent      bool
	}{
		{description: "unset", hasState: Settable[bool]{}, absent: true},
		{description: "explicit false", hasState: Set(false), expect: `hasState="false"`},
		{description: "explicit true", hasState: Set(true), expect: `hasState="true"`},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			model := functorModel()
			invocation := model.SourceFile[0].CompilationUnit.Definitions.CompositeDefinition[0].Invocations()[0]
			invocation.OperatorInvocationBody.Logic = &OperatorInvocationLogic{HasState: testCase.hasState}
			data, err := Marshal(model)
			require.NoError(t, err)
			if testCase.absent {
				assert.NotContains(t, string(data), "hasState")
			} else {
				assert.Contains(t, string(data), testCase.expect)
			}
			actual := assertRoundTrip(t, model)
			logic := actual.SourceFile[0].CompilationUnit.Definitions.CompositeDefinition[0].Invocations()[0].OperatorInvocationBody.Logic
			assert.Equal(t, testCase.hasState, logic.HasState)
		})
	}
}

func TestMarshal_TriStateEnums(t *testing.T) {
	var testCases = []struct {
		description string
		window      *OperatorInvocationWindow
		expect      []string
		notExpect   []string
	}{
		{
			description: "unset window type and partitioned",
			window:      &OperatorInvocationWindow{PortName: "I", EvictionPolicy: &WindowPolicy{}},
			notExpect:   []string{"windowType", "partitioned", "kind"},
		},
		{
			description: "default literals",
			window:      &OperatorInvocationWindow{PortName: "I", WindowType: Set(WindowTypeTumbling), Partitioned: Set(false), EvictionPolicy: &WindowPolicy{Kind: Set(WindowPolicyCount)}},
			expect:      []string{`windowType="tumbling"`, `partitioned="false"`, `kind="count"`},
		},
		{
			description: "non default literals",
			window:      &OperatorInvocationWindow{PortName: "I", WindowType: Set(WindowTypeSliding), Partitioned: Set(true), EvictionPolicy: &WindowPolicy{Kind: Set(WindowPolicyPunct)}},
			expect:      []string{`windowType="sliding"`, `partitioned="true"`, `kind="punct"`},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			model := functorModel()
			invocation := model.SourceFile[0].CompilationUnit.Definitions.CompositeDefinition[0].Invocations()[0]
			invocation.OperatorInvocationBody.Windows = &OperatorInvocationWindows{Window: []*OperatorInvocationWindow{testCase.window}}
			data, err := Marshal(model)
			require.NoError(t, err)
			for _, fragment := range testCase.expect {
				assert.Contains(t, string(data), fragment)
			}
			for _, fragment := range testCase.notExpect {
				assert.NotContains(t, string(data), fragment)
			}
			assertRoundTrip(t, model)
		})
	}
}

func TestUnmarshal_Prefixed(t *testing.T) {
	input := `<?xml version="1.0" encoding="UTF-8"?>
<srcCode:sourceModel xmlns:srcCode="http://www.ibm.com/xmlns/prod/streams/spl/sourceCode" xmlns:common="http://www.ibm.com/xmlns/prod/streams/spl/common" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.ibm.com/xmlns/prod/streams/spl/sourceCode sourceCodeModel.xsd">
  <srcCode:sourceFile uri="com.acme/Main.spl">
    <srcCode:compilationUnit>
      <srcCode:splNamespace line="1" column="1" name="com.acme"/>
      <srcCode:definitions>
        <srcCode:functionDefinition startLine="3" startColumn="1" endLine="3" endColumn="40">
          <srcCode:functionHead line="3" column="1" name="id" returnType="int32">
            <srcCode:modifiers><srcCode:modifier name="public"/></srcCode:modifiers>
          </srcCode:functionHead>
          <srcCode:functionBody>{ return 1; }</srcCode:functionBody>
        </srcCode:functionDefinition>
      </srcCode:definitions>
    </srcCode:compilationUnit>
  </srcCode:sourceFile>
</srcCode:sourceModel>`
	doc, err := UnmarshalDocument([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, Namespace, doc.Namespaces["srcCode"])
	assert.Equal(t, CommonNamespace, doc.Namespaces["common"])
	assert.Equal(t, "http://www.ibm.com/xmlns/prod/streams/spl/sourceCode sourceCodeModel.xsd", doc.SchemaLocation)

	function := doc.SourceModel.SourceFile[0].CompilationUnit.Definitions.FunctionDefinition[0]
	assert.Equal(t, "id", function.FunctionHead.Name)
	assert.Equal(t, "{ return 1; }", function.FunctionBody)
	assert.Equal(t, 40, function.EndColumn)
	assert.True(t, function.FunctionHead.IsPublic())
	assert.False(t, function.FunctionHead.IsStateful())

	data, err := MarshalDocument(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `xmlns:srcCode="http://www.ibm.com/xmlns/prod/streams/spl/sourceCode"`)
	assert.Contains(t, string(data), `xsi:schemaLocation=`)
	again, err := UnmarshalDocument(data)
	require.NoError(t, err)
	assert.EqualValues(t, doc, again)
}

func TestMarshal_Namespaces(t *testing.T) {
	var testCases = []struct {
		description string
		namespaces  map[string]string
		location    string
		contains    []string
		excludes    []string
	}{
		{
			description: "empty and reserved prefixes are skipped",
			namespaces:  map[string]string{"": "urn:x", "xmlns": "urn:y", "xmlfoo": "urn:z", "1bad": "urn:w"},
			contains:    []string{`xmlns:code="` + Namespace + `"`},
			excludes:    []string{`xmlns:=`, `xmlns:xmlns=`, `xmlns:xmlfoo=`, `xmlns:1bad=`},
		},
		{
			description: "foreign code prefix is kept",
			namespaces:  map[string]string{DefaultPrefix: "urn:other"},
			contains:    []string{`xmlns:code="urn:other"`, `xmlns="` + Namespace + `"`},
			excludes:    []string{`xmlns:code="` + Namespace + `"`},
		},
		{
			description: "foreign xsi prefix is kept",
			namespaces:  map[string]string{"xsi": "urn:other"},
			location:    Namespace + " sourceModel.xsd",
			contains:    []string{`xmlns:xsi="urn:other"`, `xmlns:xsi1="` + SchemaInstanceNamespace + `"`, `xsi1:schemaLocation=`},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			doc := &Document{SourceModel: minimalModel(), Namespaces: testCase.namespaces, SchemaLocation: testCase.location}
			data, err := MarshalDocument(doc)
			require.NoError(t, err)
			for _, fragment := range testCase.contains {
				assert.Contains(t, string(data), fragment)
			}
			for _, fragment := range testCase.excludes {
				assert.NotContains(t, string(data), fragment)
			}
			decoded, err := UnmarshalDocument(data)
			require.NoError(t, err)
			assert.EqualValues(t, doc.SourceModel, decoded.SourceModel)
			assert.Equal(t, testCase.location, decoded.SchemaLocation)
		})
	}
}

func TestMarshal_InvalidValue(t *testing.T) {
	var testCases = []struct {
		description string
		value       string
		valid       bool
	}{
		{description: "control character", value: "\"a\x01b\"", valid: false},
		{description: "invalid utf8", value: "\"\xff\xfe\"", valid: false},
		{description: "noncharacter", value: "\uFFFE", valid: false},
		{description: "tab and newline", value: "\"a\tb\n\"", valid: true},
		{description: "multilingual", value: "\"zażółć 😀\"", valid: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			model := minimalModel()
			model.SourceFile[0].CompilationUnit.Definitions = &Definitions{
				TypeDefinition: []*TypeDefinition{{Name: "T", Value: testCase.value}},
			}
			if testCase.valid {
				assertRoundTrip(t, model)
				return
			}
			_, err := Marshal(model)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidValue), err.Error())
			var invalid *InvalidValueError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, "TypeDefinition", invalid.Node)
			assert.Equal(t, "value", invalid.Field)
		})
	}
}

func TestUnmarshal_Errors(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		target      error
		contains    string
	}{
		{
			description: "unknown enum literal",
			input:       `<sourceModel xmlns="http://www.ibm.com/xmlns/prod/streams/spl/sourceCode"><sourceFile uri="a.spl"><compilationUnit><definitions><typeDefinition startLine="1" startColumn="1" endLine="1" endColumn="1" name="T" value="int32"><modifiers><modifier name="volatile"/></modifiers></typeDefinition></definitions></compilationUnit></sourceFile></sourceModel>`,
			target:      ErrUnknownLiteral,
		},
		{
			description: "missing required element",
			input:       `<sourceModel xmlns="http://www.ibm.com/xmlns/prod/streams/spl/sourceCode"><sourceFile uri="a.spl"></sourceFile></sourceModel>`,
			target:      ErrMissingField,
		},
		{
			description: "foreign root",
			input:       `<model xmlns="http://www.ibm.com/xmlns/prod/streams/spl/sourceCode"/>`,
			contains:    "unexpected root element",
		},
		{
			description: "empty input",
			input:       ``,
			contains:    "no sourceModel element",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, err := Unmarshal([]byte(testCase.input))
			require.Error(t, err)
			if testCase.target != nil {
				assert.True(t, errors.Is(err, testCase.target), err.Error())
			}
			if testCase.contains != "" {
				assert.Contains(t, err.Error(), testCase.contains)
			}
		})
	}
}

func TestMarshal_Format(t *testing.T) {
	data, err := Marshal(minimalModel())
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, text, `<sourceModel xmlns="http://www.ibm.com/xmlns/prod/streams/spl/sourceCode" xmlns:code="http://www.ibm.com/xmlns/prod/streams/spl/sourceCode">`)
	assert.Contains(t, text, `<sourceFile uri="com.acme/Empty.spl">`)

	compact, err := Marshal(minimalModel(), WithIndent(""), WithHeader(false))
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")
}
