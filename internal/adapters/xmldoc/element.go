package xmldoc

import (
	"fmt"

	"github.com/beevik/etree"
	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/zerr"
)

var _ domain.Node = Element{}

// Element is a domain.Node backed by an etree element.
// Two Elements are == when they wrap the same etree element.
type Element struct {
	el *etree.Element
}

// Tag returns the local element name.
func (e Element) Tag() string {
	return e.el.Tag
}

// Attr returns the attribute value, or "" when absent.
func (e Element) Attr(name string) string {
	return e.el.SelectAttrValue(name, "")
}

// HasAttr reports whether the attribute is present.
func (e Element) HasAttr(name string) bool {
	return e.el.SelectAttr(name) != nil
}

// SetAttr creates or replaces the attribute. The name may carry a namespace prefix.
func (e Element) SetAttr(name, value string) error {
	if err := validateAttrName(name); err != nil {
		return err
	}
	e.el.CreateAttr(name, value)
	return nil
}

// RemoveAttr deletes the attribute if present.
func (e Element) RemoveAttr(name string) {
	e.el.RemoveAttr(name)
}

// AttrNames returns attribute names in document order, without namespace declarations.
func (e Element) AttrNames() []string {
	names := make([]string, 0, len(e.el.Attr))
	for _, a := range e.el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		names = append(names, a.FullKey())
	}
	return names
}

// Children returns the child elements in document order.
func (e Element) Children() []domain.Node {
	children := e.el.ChildElements()
	nodes := make([]domain.Node, len(children))
	for i, child := range children {
		nodes[i] = Element{el: child}
	}
	return nodes
}

// AppendChild creates a new last child element.
func (e Element) AppendChild(tag string) (domain.Node, error) {
	if err := validateName(tag); err != nil {
		return nil, err
	}
	return Element{el: e.el.CreateElement(tag)}, nil
}

// RemoveChild detaches child from e.
func (e Element) RemoveChild(child domain.Node) error {
	c, ok := child.(Element)
	if !ok || c.el == nil {
		return zerr.With(zerr.Wrap(ErrForeignNode, "cannot remove child"), "type", fmt.Sprintf("%T", child))
	}
	if e.el.RemoveChild(c.el) == nil {
		return zerr.With(zerr.Wrap(ErrNotChild, "cannot remove child"), "element", c.el.Tag)
	}
	return nil
}
