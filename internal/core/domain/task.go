package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// TaskOutput is one <Output> element of a task, mapping a task parameter
// to an item or a property.
type TaskOutput struct {
	TaskParameter string
	ItemName      string
	PropertyName  string
}

// BuildTask is one task invocation inside a target.
// Its element name is the task name and its attributes are the task parameters.
// A BuildTask is owned by exactly one Target and is compared by identity.
type BuildTask struct {
	name     InternedString
	node     Node
	readOnly bool

	condition       attribute
	continueOnError attribute
}

func newBuildTask(node Node, readOnly bool) *BuildTask {
	return &BuildTask{
		name:            NewInternedString(node.Tag()),
		node:            node,
		readOnly:        readOnly,
		condition:       bindAttribute(node, attrCondition),
		continueOnError: bindAttribute(node, attrContinueOnError),
	}
}

// Name returns the task name, e.g. "Message".
func (t *BuildTask) Name() string {
	return t.name.String()
}

// Node returns the backing document node.
func (t *BuildTask) Node() Node {
	return t.node
}

// Condition returns the task condition, or "" when none is set.
func (t *BuildTask) Condition() string {
	return t.condition.get()
}

// SetCondition writes the task condition through to the document.
func (t *BuildTask) SetCondition(condition string) error {
	if err := t.checkWritable(); err != nil {
		return err
	}
	return t.condition.set(condition)
}

// ContinueOnError reports whether the task is marked ContinueOnError="true".
func (t *BuildTask) ContinueOnError() bool {
	return strings.EqualFold(strings.TrimSpace(t.continueOnError.get()), "true")
}

// SetContinueOnError writes the ContinueOnError flag through to the document.
func (t *BuildTask) SetContinueOnError(value bool) error {
	if err := t.checkWritable(); err != nil {
		return err
	}
	return t.continueOnError.set(strconv.FormatBool(value))
}

// ParameterNames returns the names of the task parameters in document order.
// Condition and ContinueOnError are not parameters.
func (t *BuildTask) ParameterNames() []string {
	names := t.node.AttrNames()
	params := make([]string, 0, len(names))
	for _, name := range names {
		if isReservedTaskAttr(name) {
			continue
		}
		params = append(params, name)
	}
	return params
}

// ParameterValue returns the raw value of the named parameter, or "" when absent.
func (t *BuildTask) ParameterValue(name string) string {
	if isReservedTaskAttr(name) {
		return ""
	}
	return t.node.Attr(name)
}

// SetParameterValue writes the named parameter through to the document.
func (t *BuildTask) SetParameterValue(name, value string) error {
	if name == "" {
		return zerr.With(zerr.Wrap(ErrInvalidArgument, "parameter name is required"), "argument", "parameterName")
	}
	if isReservedTaskAttr(name) {
		return zerr.With(zerr.Wrap(ErrReservedParameter, "parameter name is reserved"), "parameter", name)
	}
	if err := t.checkWritable(); err != nil {
		return err
	}
	if err := t.node.SetAttr(name, value); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write parameter"), "parameter", name)
	}
	return nil
}

// AddOutputItem maps taskParameter to the item list itemName.
func (t *BuildTask) AddOutputItem(taskParameter, itemName string) error {
	return t.addOutput(taskParameter, attrItemName, itemName)
}

// AddOutputProperty maps taskParameter to the property propertyName.
func (t *BuildTask) AddOutputProperty(taskParameter, propertyName string) error {
	return t.addOutput(taskParameter, attrPropertyName, propertyName)
}

func (t *BuildTask) addOutput(taskParameter, kind, name string) error {
	if taskParameter == "" {
		return zerr.With(zerr.Wrap(ErrInvalidArgument, "task parameter is required"), "argument", "taskParameter")
	}
	if name == "" {
		return zerr.With(zerr.Wrap(ErrInvalidArgument, "output name is required"), "argument", kind)
	}
	if err := t.checkWritable(); err != nil {
		return err
	}

	out, err := t.node.AppendChild(elemOutput)
	if err != nil {
		return zerr.Wrap(err, "failed to append output element")
	}
	if err := out.SetAttr(attrTaskParameter, taskParameter); err != nil {
		_ = t.node.RemoveChild(out)
		return zerr.Wrap(err, "failed to write output element")
	}
	if err := out.SetAttr(kind, name); err != nil {
		_ = t.node.RemoveChild(out)
		return zerr.Wrap(err, "failed to write output element")
	}
	return nil
}

// Outputs returns the task's <Output> mappings in document order.
func (t *BuildTask) Outputs() []TaskOutput {
	var outputs []TaskOutput
	for _, child := range t.node.Children() {
		if child.Tag() != elemOutput {
			continue
		}
		outputs = append(outputs, TaskOutput{
			TaskParameter: child.Attr(attrTaskParameter),
			ItemName:      child.Attr(attrItemName),
			PropertyName:  child.Attr(attrPropertyName),
		})
	}
	return outputs
}

func (t *BuildTask) checkWritable() error {
	if t.readOnly {
		return zerr.With(zerr.Wrap(ErrImportedTarget, "task is read-only"), "task_name", t.Name())
	}
	return nil
}

func isReservedTaskAttr(name string) bool {
	return name == attrCondition || name == attrContinueOnError
}
