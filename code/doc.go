package code

import "strings"

// SplDoc represents an SPL documentation comment
type SplDoc struct {
	Description *SplDocDescription  `xml:"description,omitempty"`
	Annotation  []*SplDocAnnotation `xml:"annotation"`
}

// SplDocDescription holds free text description
type SplDocDescription struct {
	Description string `xml:"description,omitempty"`
}

// SplDocAnnotation represents a tagged doc entry, i.e. @param name text
type SplDocAnnotation struct {
	Description string `xml:"description,omitempty"`
	Name        string `xml:"name,attr,omitempty"`
	Target      string `xml:"target,attr,omitempty"`
}

// Text returns the description text or empty
func (d *SplDoc) Text() string {
	if d == nil || d.Description == nil {
		return ""
	}
	return d.Description.Description
}

// Summary returns the first sentence of the description
func (d *SplDoc) Summary() string {
	text := strings.TrimSpace(d.Text())
	if idx := strings.Index(text, ". "); idx != -1 {
		return text[:idx+1]
	}
	if idx := strings.Index(text, ".\n"); idx != -1 {
		return text[:idx+1]
	}
	return text
}

// Annotations returns annotations with the given name
func (d *SplDoc) Annotations(name string) []*SplDocAnnotation {
	if d == nil {
		return nil
	}
	var ret []*SplDocAnnotation
	for _, annotation := range d.Annotation {
		if annotation.Name == name {
			ret = append(ret, annotation)
		}
	}
	return ret
}

// Lookup returns the first annotation with given name and target
func (d *SplDoc) Lookup(name, target string) *SplDocAnnotation {
	if d == nil {
		return nil
	}
	for _, annotation := range d.Annotation {
		if annotation.Name == name && annotation.Target == target {
			return annotation
		}
	}
	return nil
}
