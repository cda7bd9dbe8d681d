package code

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettable_UnmarshalXMLAttr(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		expect      Settable[bool]
		hasError    bool
	}{
		{description: "true", text: "true", expect: Set(true)},
		{description: "false", text: "false", expect: Set(false)},
		{description: "one", text: "1", expect: Set(true)},
		{description: "zero", text: "0", expect: Set(false)},
		{description: "capitalized", text: "True", hasError: true},
		{description: "upper case", text: "TRUE", hasError: true},
		{description: "short form", text: "t", hasError: true},
		{description: "empty", text: "", hasError: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			var actual Settable[bool]
			err := actual.UnmarshalXMLAttr(xml.Attr{Name: xml.Name{Local: "hasState"}, Value: testCase.text})
			if testCase.hasError {
				assert.Error(t, err)
				assert.False(t, actual.IsSet())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
		})
	}

	input := `<sourceModel xmlns="http://www.ibm.com/xmlns/prod/streams/spl/sourceCode"><sourceFile uri="a.spl"><compilationUnit><definitions><compositeDefinition startLine="1" startColumn="1" endLine="1" endColumn="1"><compositeHead line="1" column="1" name="Main"></compositeHead><compositeBody><graph><operatorInvocation><operatorInvocationHead line="1" column="1" operatorName="Custom"></operatorInvocationHead><operatorInvocationBody><logic hasState="TRUE"></logic></operatorInvocationBody></operatorInvocation></graph></compositeBody></compositeDefinition></definitions></compilationUnit></sourceFile></sourceModel>`
	_, err := Unmarshal([]byte(input))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "invalid boolean")
	}
}
