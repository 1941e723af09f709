package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Target is a named, conditionally included unit of work holding an ordered
// list of tasks. Every mutation is mirrored into the backing <Target> node.
type Target struct {
	name     InternedString
	node     Node
	imported bool

	condition        attribute
	dependsOnTargets attribute
	inputs           attribute
	outputs          attribute

	tasks []*BuildTask
}

// NewTarget builds a Target from a <Target> node. imported reports whether the
// node comes from an imported document rather than the primary project.
// Every child element of the node becomes a task, in document order.
func NewTarget(node Node, imported bool) (*Target, error) {
	if node == nil {
		return nil, zerr.With(zerr.Wrap(ErrInvalidArgument, "target node is required"), "argument", "node")
	}
	if !node.HasAttr(attrName) || node.Attr(attrName) == "" {
		return nil, zerr.With(zerr.Wrap(ErrMalformedDocument, "target has no name"), "missing_attribute", attrName)
	}

	t := &Target{
		name:             NewInternedString(node.Attr(attrName)),
		node:             node,
		imported:         imported,
		condition:        bindAttribute(node, attrCondition),
		dependsOnTargets: bindAttribute(node, attrDependsOnTargets),
		inputs:           bindAttribute(node, attrInputs),
		outputs:          bindAttribute(node, attrOutputs),
	}

	children := node.Children()
	t.tasks = make([]*BuildTask, 0, len(children))
	for _, child := range children {
		t.tasks = append(t.tasks, newBuildTask(child, imported))
	}

	return t, nil
}

// Name returns the target name.
func (t *Target) Name() string {
	return t.name.String()
}

// Node returns the backing document node.
func (t *Target) Node() Node {
	return t.node
}

// IsImported reports whether the target was defined in an imported document.
func (t *Target) IsImported() bool {
	return t.imported
}

// Condition returns the target condition, or "" when none is set.
func (t *Target) Condition() string {
	return t.condition.get()
}

// SetCondition writes the condition through to the document.
func (t *Target) SetCondition(condition string) error {
	return t.setAttr(&t.condition, condition)
}

// DependsOnTargets returns the semicolon separated list of targets this one
// depends on, unparsed, or "" when none is set.
func (t *Target) DependsOnTargets() string {
	return t.dependsOnTargets.get()
}

// SetDependsOnTargets writes the dependency list through to the document.
func (t *Target) SetDependsOnTargets(targets string) error {
	return t.setAttr(&t.dependsOnTargets, targets)
}

// Inputs returns the raw Inputs attribute.
func (t *Target) Inputs() string {
	return t.inputs.get()
}

// SetInputs writes the Inputs attribute through to the document.
func (t *Target) SetInputs(inputs string) error {
	return t.setAttr(&t.inputs, inputs)
}

// Outputs returns the raw Outputs attribute.
func (t *Target) Outputs() string {
	return t.outputs.get()
}

// SetOutputs writes the Outputs attribute through to the document.
func (t *Target) SetOutputs(outputs string) error {
	return t.setAttr(&t.outputs, outputs)
}

func (t *Target) setAttr(a *attribute, value string) error {
	if err := t.checkWritable(); err != nil {
		return err
	}
	return a.set(value)
}

// Tasks returns an iterator over the target's tasks in document order.
// Each iteration reads the current task list, so an iteration started after
// AddNewTask or RemoveTask observes the change. Mutating the target while
// iterating is not supported.
func (t *Target) Tasks() iter.Seq[*BuildTask] {
	return func(yield func(*BuildTask) bool) {
		for _, task := range t.tasks {
			if !yield(task) {
				return
			}
		}
	}
}

// TaskCount returns the number of tasks in the target.
func (t *Target) TaskCount() int {
	return len(t.tasks)
}

// CopyTasksTo copies the tasks into dst starting at index.
func (t *Target) CopyTasksTo(dst []*BuildTask, index int) error {
	if index < 0 || index > len(dst) || len(dst)-index < len(t.tasks) {
		err := zerr.With(zerr.Wrap(ErrInvalidArgument, "destination too small"), "index", index)
		return zerr.With(err, "length", len(dst))
	}
	copy(dst[index:], t.tasks)
	return nil
}

// AddNewTask appends a new <taskName> element to the target and returns the
// task wrapping it.
func (t *Target) AddNewTask(taskName string) (*BuildTask, error) {
	if taskName == "" {
		return nil, zerr.With(zerr.Wrap(ErrInvalidArgument, "task name is required"), "argument", "taskName")
	}
	if err := t.checkWritable(); err != nil {
		return nil, err
	}

	child, err := t.node.AppendChild(taskName)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to append task element"), "task_name", taskName)
	}

	task := newBuildTask(child, false)
	t.tasks = append(t.tasks, task)
	return task, nil
}

// RemoveTask detaches task from the target and from the document.
// Tasks are matched by identity, so one of two same-named tasks can be removed.
// It returns ErrTaskNotFound when task does not belong to this target.
func (t *Target) RemoveTask(task *BuildTask) error {
	if task == nil {
		return zerr.With(zerr.Wrap(ErrInvalidArgument, "task is required"), "argument", "task")
	}
	if err := t.checkWritable(); err != nil {
		return err
	}

	idx := slices.Index(t.tasks, task)
	if idx < 0 {
		err := zerr.With(zerr.Wrap(ErrTaskNotFound, "task belongs to another target"), "task_name", task.Name())
		return zerr.With(err, "target_name", t.Name())
	}

	if err := t.node.RemoveChild(task.node); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to detach task element"), "task_name", task.Name())
	}

	t.tasks = slices.Delete(t.tasks, idx, idx+1)
	return nil
}

func (t *Target) checkWritable() error {
	if t.imported {
		return zerr.With(zerr.Wrap(ErrImportedTarget, "target is read-only"), "target_name", t.Name())
	}
	return nil
}
