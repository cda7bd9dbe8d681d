package code

// CompositeModifierKind enumerates composite operator modifiers
type CompositeModifierKind int

const (
	CompositeModifierPublic CompositeModifierKind = iota // public
)

var compositeModifierKindLiterals = newLiterals[CompositeModifierKind]("compositeModifierEnumType", "public")

// CompositeModifierKindByLiteral returns the kind for literal
func CompositeModifierKindByLiteral(literal string) (CompositeModifierKind, bool) {
	return compositeModifierKindLiterals.byLiteral(literal)
}

// CompositeModifierKindByName returns the kind for name
func CompositeModifierKindByName(name string) (CompositeModifierKind, bool) {
	return compositeModifierKindLiterals.byLiteral(name)
}

// CompositeModifierKindByValue returns the kind for value
func CompositeModifierKindByValue(value int) (CompositeModifierKind, bool) {
	return compositeModifierKindLiterals.byValue(value)
}

// CompositeModifierKinds returns all kinds in value order
func CompositeModifierKinds() []CompositeModifierKind {
	return compositeModifierKindLiterals.all()
}

func (c CompositeModifierKind) String() string {
	return compositeModifierKindLiterals.literal(c)
}

// Literal returns the serialized form
func (c CompositeModifierKind) Literal() string {
	return compositeModifierKindLiterals.literal(c)
}

// Name returns the symbolic name
func (c CompositeModifierKind) Name() string {
	return compositeModifierKindLiterals.literal(c)
}

// Value returns the ordinal
func (c CompositeModifierKind) Value() int {
	return int(c)
}

// MarshalText implements encoding.TextMarshaler
func (c CompositeModifierKind) MarshalText() ([]byte, error) {
	return compositeModifierKindLiterals.marshal(c)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CompositeModifierKind) UnmarshalText(data []byte) error {
	return compositeModifierKindLiterals.unmarshal(data, c)
}

// CompositeParameterExpressionModeKind enumerates the expression modes of a composite parameter
type CompositeParameterExpressionModeKind int

const (
	ExpressionModeOperator CompositeParameterExpressionModeKind = iota // operator
	ExpressionModeFunction                                             // function
	ExpressionModeAttribute                                            // attribute
	ExpressionModeExpression                                           // expression
	ExpressionModeType                                                 // type
)

var compositeParameterExpressionModeKindLiterals = newLiterals[CompositeParameterExpressionModeKind]("compositeParameterExpressionModeEnumType", "operator", "function", "attribute", "expression", "type")

// CompositeParameterExpressionModeKindByLiteral returns the kind for literal
func CompositeParameterExpressionModeKindByLiteral(literal string) (CompositeParameterExpressionModeKind, bool) {
	return compositeParameterExpressionModeKindLiterals.byLiteral(literal)
}

// CompositeParameterExpressionModeKindByName returns the kind for name
func CompositeParameterExpressionModeKindByName(name string) (CompositeParameterExpressionModeKind, bool) {
	return compositeParameterExpressionModeKindLiterals.byLiteral(name)
}

// CompositeParameterExpressionModeKindByValue returns the kind for value
func CompositeParameterExpressionModeKindByValue(value int) (CompositeParameterExpressionModeKind, bool) {
	return compositeParameterExpressionModeKindLiterals.byValue(value)
}

// CompositeParameterExpressionModeKinds returns all kinds in value order
func CompositeParameterExpressionModeKinds() []CompositeParameterExpressionModeKind {
	return compositeParameterExpressionModeKindLiterals.all()
}

func (c CompositeParameterExpressionModeKind) String() string {
	return compositeParameterExpressionModeKindLiterals.literal(c)
}

// Literal returns the serialized form
func (c CompositeParameterExpressionModeKind) Literal() string {
	return compositeParameterExpressionModeKindLiterals.literal(c)
}

// Name returns the symbolic name
func (c CompositeParameterExpressionModeKind) Name() string {
	return compositeParameterExpressionModeKindLiterals.literal(c)
}

// Value returns the ordinal
func (c CompositeParameterExpressionModeKind) Value() int {
	return int(c)
}

// MarshalText implements encoding.TextMarshaler
func (c CompositeParameterExpressionModeKind) MarshalText() ([]byte, error) {
	return compositeParameterExpressionModeKindLiterals.marshal(c)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CompositeParameterExpressionModeKind) UnmarshalText(data []byte) error {
	return compositeParameterExpressionModeKindLiterals.unmarshal(data, c)
}

// FunctionModifierKind enumerates function modifiers
type FunctionModifierKind int

const (
	FunctionModifierPublic FunctionModifierKind = iota // public
	FunctionModifierStateful                           // stateful
)

var functionModifierKindLiterals = newLiterals[FunctionModifierKind]("functionModifierEnumType", "public", "stateful")

// FunctionModifierKindByLiteral returns the kind for literal
func FunctionModifierKindByLiteral(literal string) (FunctionModifierKind, bool) {
	return functionModifierKindLiterals.byLiteral(literal)
}

// FunctionModifierKindByName returns the kind for name
func FunctionModifierKindByName(name string) (FunctionModifierKind, bool) {
	return functionModifierKindLiterals.byLiteral(name)
}

// FunctionModifierKindByValue returns the kind for value
func FunctionModifierKindByValue(value int) (FunctionModifierKind, bool) {
	return functionModifierKindLiterals.byValue(value)
}

// FunctionModifierKinds returns all kinds in value order
func FunctionModifierKinds() []FunctionModifierKind {
	return functionModifierKindLiterals.all()
}

func (f FunctionModifierKind) String() string {
	return functionModifierKindLiterals.literal(f)
}

// Literal returns the serialized form
func (f FunctionModifierKind) Literal() string {
	return functionModifierKindLiterals.literal(f)
}

// Name returns the symbolic name
func (f FunctionModifierKind) Name() string {
	return functionModifierKindLiterals.literal(f)
}

// Value returns the ordinal
func (f FunctionModifierKind) Value() int {
	return int(f)
}

// MarshalText implements encoding.TextMarshaler
func (f FunctionModifierKind) MarshalText() ([]byte, error) {
	return functionModifierKindLiterals.marshal(f)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *FunctionModifierKind) UnmarshalText(data []byte) error {
	return functionModifierKindLiterals.unmarshal(data, f)
}

// FunctionParameterModifierKind enumerates function parameter modifiers
type FunctionParameterModifierKind int

const (
	FunctionParameterModifierMutable FunctionParameterModifierKind = iota // mutable
)

var functionParameterModifierKindLiterals = newLiterals[FunctionParameterModifierKind]("functionParameterModifierEnumType", "mutable")

// FunctionParameterModifierKindByLiteral returns the kind for literal
func FunctionParameterModifierKindByLiteral(literal string) (FunctionParameterModifierKind, bool) {
	return functionParameterModifierKindLiterals.byLiteral(literal)
}

// FunctionParameterModifierKindByName returns the kind for name
func FunctionParameterModifierKindByName(name string) (FunctionParameterModifierKind, bool) {
	return functionParameterModifierKindLiterals.byLiteral(name)
}

// FunctionParameterModifierKindByValue returns the kind for value
func FunctionParameterModifierKindByValue(value int) (FunctionParameterModifierKind, bool) {
	return functionParameterModifierKindLiterals.byValue(value)
}

// FunctionParameterModifierKinds returns all kinds in value order
func FunctionParameterModifierKinds() []FunctionParameterModifierKind {
	return functionParameterModifierKindLiterals.all()
}

func (f FunctionParameterModifierKind) String() string {
	return functionParameterModifierKindLiterals.literal(f)
}

// Literal returns the serialized form
func (f FunctionParameterModifierKind) Literal() string {
	return functionParameterModifierKindLiterals.literal(f)
}

// Name returns the symbolic name
func (f FunctionParameterModifierKind) Name() string {
	return functionParameterModifierKindLiterals.literal(f)
}

// Value returns the ordinal
func (f FunctionParameterModifierKind) Value() int {
	return int(f)
}

// MarshalText implements encoding.TextMarshaler
func (f FunctionParameterModifierKind) MarshalText() ([]byte, error) {
	return functionParameterModifierKindLiterals.marshal(f)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *FunctionParameterModifierKind) UnmarshalText(data []byte) error {
	return functionParameterModifierKindLiterals.unmarshal(data, f)
}

// TypeModifierKind enumerates type definition modifiers
type TypeModifierKind int

const (
	TypeModifierPublic TypeModifierKind = iota // public
	TypeModifierStatic                         // static
)

var typeModifierKindLiterals = newLiterals[TypeModifierKind]("typeModifierEnumType", "public", "static")

// TypeModifierKindByLiteral returns the kind for literal
func TypeModifierKindByLiteral(literal string) (TypeModifierKind, bool) {
	return typeModifierKindLiterals.byLiteral(literal)
}

// TypeModifierKindByName returns the kind for name
func TypeModifierKindByName(name string) (TypeModifierKind, bool) {
	return typeModifierKindLiterals.byLiteral(name)
}

// TypeModifierKindByValue returns the kind for value
func TypeModifierKindByValue(value int) (TypeModifierKind, bool) {
	return typeModifierKindLiterals.byValue(value)
}

// TypeModifierKinds returns all kinds in value order
func TypeModifierKinds() []TypeModifierKind {
	return typeModifierKindLiterals.all()
}

func (t TypeModifierKind) String() string {
	return typeModifierKindLiterals.literal(t)
}

// Literal returns the serialized form
func (t TypeModifierKind) Literal() string {
	return typeModifierKindLiterals.literal(t)
}

// Name returns the symbolic name
func (t TypeModifierKind) Name() string {
	return typeModifierKindLiterals.literal(t)
}

// Value returns the ordinal
func (t TypeModifierKind) Value() int {
	return int(t)
}

// MarshalText implements encoding.TextMarshaler
func (t TypeModifierKind) MarshalText() ([]byte, error) {
	return typeModifierKindLiterals.marshal(t)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TypeModifierKind) UnmarshalText(data []byte) error {
	return typeModifierKindLiterals.unmarshal(data, t)
}

// WindowPolicyKind enumerates eviction and trigger policy kinds
type WindowPolicyKind int

const (
	WindowPolicyCount WindowPolicyKind = iota // count
	WindowPolicyTime                          // time
	WindowPolicyDelta                         // delta
	WindowPolicyPunct                         // punct
)

var windowPolicyKindLiterals = newLiterals[WindowPolicyKind]("windowPolicyKindEnumType", "count", "time", "delta", "punct")

// WindowPolicyKindByLiteral returns the kind for literal
func WindowPolicyKindByLiteral(literal string) (WindowPolicyKind, bool) {
	return windowPolicyKindLiterals.byLiteral(literal)
}

// WindowPolicyKindByName returns the kind for name
func WindowPolicyKindByName(name string) (WindowPolicyKind, bool) {
	return windowPolicyKindLiterals.byLiteral(name)
}

// WindowPolicyKindByValue returns the kind for value
func WindowPolicyKindByValue(value int) (WindowPolicyKind, bool) {
	return windowPolicyKindLiterals.byValue(value)
}

// WindowPolicyKinds returns all kinds in value order
func WindowPolicyKinds() []WindowPolicyKind {
	return windowPolicyKindLiterals.all()
}

func (w WindowPolicyKind) String() string {
	return windowPolicyKindLiterals.literal(w)
}

// Literal returns the serialized form
func (w WindowPolicyKind) Literal() string {
	return windowPolicyKindLiterals.literal(w)
}

// Name returns the symbolic name
func (w WindowPolicyKind) Name() string {
	return windowPolicyKindLiterals.literal(w)
}

// Value returns the ordinal
func (w WindowPolicyKind) Value() int {
	return int(w)
}

// MarshalText implements encoding.TextMarshaler
func (w WindowPolicyKind) MarshalText() ([]byte, error) {
	return windowPolicyKindLiterals.marshal(w)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (w *WindowPolicyKind) UnmarshalText(data []byte) error {
	return windowPolicyKindLiterals.unmarshal(data, w)
}

// WindowType enumerates window kinds
type WindowType int

const (
	WindowTypeTumbling WindowType = iota // tumbling
	WindowTypeSliding                    // sliding
)

var windowTypeLiterals = newLiterals[WindowType]("windowTypeEnumType", "tumbling", "sliding")

// WindowTypeByLiteral returns the kind for literal
func WindowTypeByLiteral(literal string) (WindowType, bool) {
	return windowTypeLiterals.byLiteral(literal)
}

// WindowTypeByName returns the kind for name
func WindowTypeByName(name string) (WindowType, bool) {
	return windowTypeLiterals.byLiteral(name)
}

// WindowTypeByValue returns the kind for value
func WindowTypeByValue(value int) (WindowType, bool) {
	return windowTypeLiterals.byValue(value)
}

// WindowTypes returns all kinds in value order
func WindowTypes() []WindowType {
	return windowTypeLiterals.all()
}

func (w WindowType) String() string {
	return windowTypeLiterals.literal(w)
}

// Literal returns the serialized form
func (w WindowType) Literal() string {
	return windowTypeLiterals.literal(w)
}

// Name returns the symbolic name
func (w WindowType) Name() string {
	return windowTypeLiterals.literal(w)
}

// Value returns the ordinal
func (w WindowType) Value() int {
	return int(w)
}

// MarshalText implements encoding.TextMarshaler
func (w WindowType) MarshalText() ([]byte, error) {
	return windowTypeLiterals.marshal(w)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (w *WindowType) UnmarshalText(data []byte) error {
	return windowTypeLiterals.unmarshal(data, w)
}

func enums() []*Enum {
	return []*Enum{
		compositeModifierKindLiterals.enum(),
		compositeParameterExpressionModeKindLiterals.enum(),
		functionModifierKindLiterals.enum(),
		functionParameterModifierKindLiterals.enum(),
		typeModifierKindLiterals.enum(),
		windowPolicyKindLiterals.enum(),
		windowTypeLiterals.enum(),
	}
}
