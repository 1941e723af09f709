package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Project is the primary project document and the targets visible from it.
type Project struct {
	node           Node
	defaultTargets attribute
	initialTargets attribute
	targets        *TargetCollection
}

// NewProject wraps the root <Project> node of a primary document.
// The target collection starts empty; the loader fills it while walking
// the document and its imports.
func NewProject(root Node) (*Project, error) {
	if root == nil {
		return nil, zerr.With(zerr.Wrap(ErrInvalidArgument, "project node is required"), "argument", "root")
	}
	if root.Tag() != ProjectElement {
		return nil, zerr.With(zerr.Wrap(ErrMalformedDocument, "unexpected root element"), "element", root.Tag())
	}

	return &Project{
		node:           root,
		defaultTargets: bindAttribute(root, attrDefaultTargets),
		initialTargets: bindAttribute(root, attrInitialTargets),
		targets:        &TargetCollection{root: root},
	}, nil
}

// Node returns the root document node.
func (p *Project) Node() Node {
	return p.node
}

// DefaultTargets returns the raw DefaultTargets attribute.
func (p *Project) DefaultTargets() string {
	return p.defaultTargets.get()
}

// SetDefaultTargets writes DefaultTargets through to the document.
func (p *Project) SetDefaultTargets(targets string) error {
	return p.defaultTargets.set(targets)
}

// InitialTargets returns the raw InitialTargets attribute.
func (p *Project) InitialTargets() string {
	return p.initialTargets.get()
}

// SetInitialTargets writes InitialTargets through to the document.
func (p *Project) SetInitialTargets(targets string) error {
	return p.initialTargets.set(targets)
}

// Imports returns the Project attribute of each <Import> of the primary document.
func (p *Project) Imports() []string {
	var imports []string
	for _, child := range p.node.Children() {
		if child.Tag() == ImportElement {
			imports = append(imports, child.Attr(AttrProject))
		}
	}
	return imports
}

// Targets returns the project's target collection.
func (p *Project) Targets() *TargetCollection {
	return p.targets
}

// TargetCollection is the ordered set of targets visible from a project.
// Names are compared case-insensitively. A later definition of a name
// overrides the earlier one and takes its place in enumeration order.
type TargetCollection struct {
	root    Node
	targets []*Target
}

// Count returns the number of targets.
func (c *TargetCollection) Count() int {
	return len(c.targets)
}

// All returns an iterator over the targets in definition order.
func (c *TargetCollection) All() iter.Seq[*Target] {
	return func(yield func(*Target) bool) {
		for _, t := range c.targets {
			if !yield(t) {
				return
			}
		}
	}
}

// CopyTo copies the targets into dst starting at index.
func (c *TargetCollection) CopyTo(dst []*Target, index int) error {
	if index < 0 || index > len(dst) || len(dst)-index < len(c.targets) {
		err := zerr.With(zerr.Wrap(ErrInvalidArgument, "destination too small"), "index", index)
		return zerr.With(err, "length", len(dst))
	}
	copy(dst[index:], c.targets)
	return nil
}

// Exists reports whether a target with the given name is defined.
func (c *TargetCollection) Exists(name string) bool {
	return c.indexOf(name) >= 0
}

// Get returns the target with the given name, or nil.
func (c *TargetCollection) Get(name string) *Target {
	if idx := c.indexOf(name); idx >= 0 {
		return c.targets[idx]
	}
	return nil
}

// Add registers an already constructed target, overriding any target of the same name.
func (c *TargetCollection) Add(t *Target) error {
	if t == nil {
		return zerr.With(zerr.Wrap(ErrInvalidArgument, "target is required"), "argument", "target")
	}
	if idx := c.indexOf(t.Name()); idx >= 0 {
		c.targets[idx] = t
		return nil
	}
	c.targets = append(c.targets, t)
	return nil
}

// AddNewTarget appends a new <Target Name="name"> element to the primary
// document and registers it.
func (c *TargetCollection) AddNewTarget(name string) (*Target, error) {
	if name == "" {
		return nil, zerr.With(zerr.Wrap(ErrInvalidArgument, "target name is required"), "argument", "name")
	}

	node, err := c.root.AppendChild(TargetElement)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to append target element")
	}
	if err := node.SetAttr(attrName, name); err != nil {
		_ = c.root.RemoveChild(node)
		return nil, zerr.With(zerr.Wrap(err, "failed to name target element"), "target_name", name)
	}

	t, err := NewTarget(node, false)
	if err != nil {
		_ = c.root.RemoveChild(node)
		return nil, err
	}
	if err := c.Add(t); err != nil {
		return nil, err
	}
	return t, nil
}

// RemoveTarget detaches t from the collection and from the primary document.
func (c *TargetCollection) RemoveTarget(t *Target) error {
	if t == nil {
		return zerr.With(zerr.Wrap(ErrInvalidArgument, "target is required"), "argument", "target")
	}
	if t.IsImported() {
		return zerr.With(zerr.Wrap(ErrImportedTarget, "target is read-only"), "target_name", t.Name())
	}

	idx := slices.Index(c.targets, t)
	if idx < 0 {
		return zerr.With(zerr.Wrap(ErrTargetNotFound, "target belongs to another project"), "target_name", t.Name())
	}

	if err := c.root.RemoveChild(t.node); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to detach target element"), "target_name", t.Name())
	}

	c.targets = slices.Delete(c.targets, idx, idx+1)
	return nil
}

func (c *TargetCollection) indexOf(name string) int {
	return slices.IndexFunc(c.targets, func(t *Target) bool {
		return strings.EqualFold(t.Name(), name)
	})
}
