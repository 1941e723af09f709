package domain

import "go.trai.ch/zerr"

// attribute mirrors one attribute of a backing node.
// The node is written first; the cached value changes only after the node accepted it.
type attribute struct {
	node  Node
	name  string
	value string
}

func bindAttribute(node Node, name string) attribute {
	return attribute{
		node:  node,
		name:  name,
		value: node.Attr(name),
	}
}

func (a *attribute) get() string {
	return a.value
}

func (a *attribute) set(value string) error {
	if err := a.node.SetAttr(a.name, value); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write attribute"), "attribute", a.name)
	}
	a.value = value
	return nil
}
