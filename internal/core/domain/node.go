package domain

// Node is a mutable element of a parsed project document.
//
// Implementations must return values that compare equal with == for the same
// underlying element, across calls and for the lifetime of the document.
// Targets and tasks rely on that identity to find and detach their nodes.
type Node interface {
	// Tag returns the local element name, e.g. "Target" or "Message".
	Tag() string

	// Attr returns the value of the named attribute, or "" when it is absent.
	Attr(name string) string

	// HasAttr reports whether the named attribute is present.
	HasAttr(name string) bool

	// SetAttr creates or replaces the named attribute.
	SetAttr(name, value string) error

	// RemoveAttr deletes the named attribute if present.
	RemoveAttr(name string)

	// AttrNames returns attribute names in document order.
	AttrNames() []string

	// Children returns the child elements in document order.
	// Text, comments and processing instructions are not included.
	Children() []Node

	// AppendChild creates a new element named tag as the last child.
	AppendChild(tag string) (Node, error)

	// RemoveChild detaches child from this node.
	RemoveChild(child Node) error
}

// Element names of the project schema.
const (
	ProjectElement = "Project"
	TargetElement  = "Target"
	ImportElement  = "Import"

	elemOutput = "Output"
)

// Attribute names of the project schema.
const (
	AttrProject = "Project"

	attrName             = "Name"
	attrCondition        = "Condition"
	attrDependsOnTargets = "DependsOnTargets"
	attrInputs           = "Inputs"
	attrOutputs          = "Outputs"
	attrContinueOnError  = "ContinueOnError"
	attrTaskParameter    = "TaskParameter"
	attrItemName         = "ItemName"
	attrPropertyName     = "PropertyName"
	attrDefaultTargets   = "DefaultTargets"
	attrInitialTargets   = "InitialTargets"
)
