package code

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

const (
	// DefaultPrefix is the conventional prefix of Namespace
	DefaultPrefix = "code"
	// SchemaInstanceNamespace is the XML schema instance namespace, used by xsi:schemaLocation
	SchemaInstanceNamespace = "http://www.w3.org/2001/XMLSchema-instance"
	// CommonNamespace is the namespace of the shared SPL schema types
	CommonNamespace = "http://www.ibm.com/xmlns/prod/streams/spl/common"

	rootElement = "sourceModel"
)

// Document represents a serialized source model with its root level declarations
type Document struct {
	SourceModel    *SourceModel
	Namespaces     map[string]string // prefix to namespace URI declarations
	SchemaLocation string            // xsi:schemaLocation value
}

// NewDocument creates a document for model with the conventional prefix declared
func NewDocument(model *SourceModel) *Document {
	return &Document{
		SourceModel: model,
		Namespaces:  map[string]string{DefaultPrefix: Namespace},
	}
}

// Prefix returns the prefix declared for namespace
func (d *Document) Prefix(namespace string) (string, bool) {
	for prefix, uri := range d.Namespaces {
		if uri == namespace {
			return prefix, true
		}
	}
	return "", false
}

// EncoderOption customises an Encoder
type EncoderOption func(*Encoder)

// WithIndent sets per level indentation, empty indent produces compact output
func WithIndent(indent string) EncoderOption {
	return func(e *Encoder) {
		e.indent = indent
	}
}

// WithHeader controls the XML declaration
func WithHeader(header bool) EncoderOption {
	return func(e *Encoder) {
		e.header = header
	}
}

// Encoder writes source model documents
type Encoder struct {
	w      io.Writer
	indent string
	header bool
}

// NewEncoder creates an encoder writing to w
func NewEncoder(w io.Writer, options ...EncoderOption) *Encoder {
	ret := &Encoder{w: w, indent: "  ", header: true}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Encode validates and writes model
func (e *Encoder) Encode(model *SourceModel) error {
	return e.EncodeDocument(NewDocument(model))
}

// EncodeDocument validates and writes doc
func (e *Encoder) EncodeDocument(doc *Document) error {
	if doc.SourceModel == nil {
		return &MissingFieldError{Node: "DocumentRoot", Field: rootElement}
	}
	if err := Validate(doc.SourceModel); err != nil {
		return err
	}
	if e.header {
		if _, err := io.WriteString(e.w, xml.Header); err != nil {
			return err
		}
	}
	encoder := xml.NewEncoder(e.w)
	encoder.Indent("", e.indent)
	if err := encoder.EncodeElement(doc.SourceModel, rootStart(doc)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", rootElement, err)
	}
	if err := encoder.Flush(); err != nil {
		return err
	}
	if e.header && e.indent != "" {
		_, err := io.WriteString(e.w, "\n")
		return err
	}
	return nil
}

func rootStart(doc *Document) xml.StartElement {
	start := xml.StartElement{Name: xml.Name{Local: rootElement}}
	start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: Namespace})
	namespaces := make(map[string]string, len(doc.Namespaces)+1)
	for prefix, uri := range doc.Namespaces {
		if !isPrefix(prefix) {
			continue
		}
		namespaces[prefix] = uri
	}
	declared, xsi := false, ""
	for prefix, uri := range namespaces {
		switch uri {
		case Namespace:
			declared = true
		case SchemaInstanceNamespace:
			xsi = prefix
		}
	}
	if _, taken := namespaces[DefaultPrefix]; !declared && !taken {
		namespaces[DefaultPrefix] = Namespace
	}
	if doc.SchemaLocation != "" && xsi == "" {
		xsi = "xsi"
		for i := 1; namespaces[xsi] != ""; i++ {
			xsi = "xsi" + strconv.Itoa(i)
		}
		namespaces[xsi] = SchemaInstanceNamespace
	}
	prefixes := make([]string, 0, len(namespaces))
	for prefix := range namespaces {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns:" + prefix}, Value: namespaces[prefix]})
	}
	if doc.SchemaLocation != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: xsi + ":schemaLocation"}, Value: doc.SchemaLocation})
	}
	return start
}

// isPrefix reports whether prefix can be declared with xmlns:prefix
func isPrefix(prefix string) bool {
	if prefix == "" || strings.HasPrefix(strings.ToLower(prefix), "xml") {
		return false
	}
	for i, r := range prefix {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.')) {
			continue
		}
		return false
	}
	return true
}

// Decoder reads source model documents
type Decoder struct {
	decoder *xml.Decoder
}

// NewDecoder creates a decoder reading from r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{decoder: xml.NewDecoder(r)}
}

// Decode reads and validates a source model
func (d *Decoder) Decode() (*SourceModel, error) {
	doc, err := d.DecodeDocument()
	if err != nil {
		return nil, err
	}
	return doc.SourceModel, nil
}

// DecodeDocument reads and validates a document.
// The root element has to be sourceModel in Namespace, child elements match by local name whatever their prefix.
func (d *Decoder) DecodeDocument() (*Document, error) {
	for {
		token, err := d.decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("no %s element: %w", rootElement, io.ErrUnexpectedEOF)
			}
			return nil, err
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != rootElement || (start.Name.Space != Namespace && start.Name.Space != "") {
			return nil, fmt.Errorf("unexpected root element {%s}%s, expected {%s}%s", start.Name.Space, start.Name.Local, Namespace, rootElement)
		}
		doc := &Document{SourceModel: &SourceModel{}, Namespaces: map[string]string{}}
		for _, attr := range start.Attr {
			switch {
			case attr.Name.Space == "xmlns":
				doc.Namespaces[attr.Name.Local] = attr.Value
			case attr.Name.Space == SchemaInstanceNamespace && attr.Name.Local == "schemaLocation":
				doc.SchemaLocation = attr.Value
			}
		}
		if err = d.decoder.DecodeElement(doc.SourceModel, &start); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", rootElement, err)
		}
		if err = Validate(doc.SourceModel); err != nil {
			return nil, err
		}
		return doc, nil
	}
}

// Marshal validates and serializes model as indented XML
func Marshal(model *SourceModel, options ...EncoderOption) ([]byte, error) {
	return MarshalDocument(NewDocument(model), options...)
}

// MarshalDocument validates and serializes doc
func MarshalDocument(doc *Document, options ...EncoderOption) ([]byte, error) {
	buffer := new(bytes.Buffer)
	if err := NewEncoder(buffer, options...).EncodeDocument(doc); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Unmarshal parses and validates a source model
func Unmarshal(data []byte) (*SourceModel, error) {
	return NewDecoder(bytes.NewReader(data)).Decode()
}

// UnmarshalDocument parses and validates a document
func UnmarshalDocument(data []byte) (*Document, error) {
	return NewDecoder(bytes.NewReader(data)).DecodeDocument()
}
