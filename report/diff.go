package report

import (
	"strings"

	"github.com/r3labs/diff/v2"
	"github.com/viant/splmodel/code"
)

// Change represents a single structural difference between two models
type Change struct {
	Type string      `yaml:"type"` // create, update or delete
	Path string      `yaml:"path"`
	From interface{} `yaml:"from,omitempty"`
	To   interface{} `yaml:"to,omitempty"`
}

// Diff compares two models field by field, source locations are ignored unless withLocations is set
func Diff(from, to *code.SourceModel, withLocations bool) ([]*Change, error) {
	changelog, err := diff.Diff(from, to)
	if err != nil {
		return nil, err
	}
	var ret []*Change
	for _, change := range changelog {
		if !withLocations && isLocation(change.Path) {
			continue
		}
		ret = append(ret, &Change{Type: change.Type, Path: strings.Join(change.Path, "/"), From: change.From, To: change.To})
	}
	return ret, nil
}

func isLocation(path []string) bool {
	if len(path) == 0 {
		return false
	}
	switch path[len(path)-1] {
	case "Line", "Column", "StartLine", "StartColumn", "EndLine", "EndColumn":
		return true
	}
	return false
}
