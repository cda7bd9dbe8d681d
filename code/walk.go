package code

import (
	"reflect"
	"strconv"
	"strings"
)

// Visitor is called for each node, returning false skips the node's children
type Visitor func(path string, node any) bool

// Walk visits node and all contained nodes depth first in document order, node has to be a pointer to a node type
func Walk(node any, visitor Visitor) {
	nodeType := nodeTypeOf(node)
	if nodeType == nil {
		return
	}
	walk(nodeType, ElementName(nodeType), node, visitor)
}

func walk(nodeType *NodeType, path string, node any, visitor Visitor) {
	if !visitor(path, node) {
		return
	}
	eachChild(nodeType, path, node, func(feature *Feature, childPath string, child any) {
		walk(feature.Node, childPath, child, visitor)
	})
}

func eachChild(nodeType *NodeType, path string, node any, fn func(feature *Feature, path string, child any)) {
	for _, feature := range nodeType.Features {
		if !feature.IsContainment() {
			continue
		}
		value := feature.Value(node)
		if !feature.Many {
			if !value.IsNil() {
				fn(feature, path+"/"+feature.Name, value.Interface())
			}
			continue
		}
		for i := 0; i < value.Len(); i++ {
			item := value.Index(i)
			if item.IsNil() {
				continue
			}
			fn(feature, path+"/"+feature.Name+"["+strconv.Itoa(i)+"]", item.Interface())
		}
	}
}

// nodeTypeOf returns the node type of a non nil node pointer
func nodeTypeOf(node any) *NodeType {
	value := reflect.ValueOf(node)
	if value.Kind() != reflect.Ptr || value.IsNil() {
		return nil
	}
	return Schema().TypeOf(node)
}

// ElementName returns the default element name of a node type, i.e. compositeHead for compositeHeadType
func ElementName(nodeType *NodeType) string {
	return strings.TrimSuffix(nodeType.Name, "Type")
}

// Collect returns all nodes of type T contained in node, in document order
func Collect[T any](node any) []*T {
	var ret []*T
	Walk(node, func(path string, item any) bool {
		if actual, ok := item.(*T); ok {
			ret = append(ret, actual)
		}
		return true
	})
	return ret
}
