// Package xmldoc adapts etree XML documents to domain.Node.
package xmldoc

import (
	"io"
	"strings"
	"unicode"

	"github.com/beevik/etree"
	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	// ErrNotChild is returned when removing a node that is not a child of the receiver.
	ErrNotChild = zerr.New("node is not a child")

	// ErrInvalidName is returned for element or attribute names that are not valid XML names.
	ErrInvalidName = zerr.New("invalid xml name")

	// ErrForeignNode is returned when a node from another Node implementation is passed in.
	ErrForeignNode = zerr.New("node does not belong to an xml document")
)

const indentSpaces = 2

// Document is a parsed XML document.
type Document struct {
	doc *etree.Document
}

// Parse reads an XML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedDocument, "failed to parse xml"), "cause", err.Error())
	}
	if doc.Root() == nil {
		return nil, zerr.Wrap(domain.ErrMalformedDocument, "document has no root element")
	}
	return &Document{doc: doc}, nil
}

// ParseString reads an XML document from s.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// New creates a document holding a single empty root element.
func New(rootTag string) (*Document, error) {
	if err := validateName(rootTag); err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	doc.CreateElement(rootTag)
	return &Document{doc: doc}, nil
}

// Root returns the root element.
func (d *Document) Root() domain.Node {
	return Element{el: d.doc.Root()}
}

// WriteTo serializes an indented copy of the document to w.
// The document itself is left untouched.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	out := d.doc.Copy()
	out.Indent(indentSpaces)
	n, err := out.WriteTo(w)
	if err != nil {
		return n, zerr.Wrap(err, "failed to write xml")
	}
	return n, nil
}

// String serializes the document, indented.
func (d *Document) String() (string, error) {
	var sb strings.Builder
	if _, err := d.WriteTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// validateAttrName accepts a name as validateName does, optionally qualified
// by a single namespace prefix ("prefix:local").
func validateAttrName(name string) error {
	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		return validateName(name)
	}
	if err := validateName(prefix); err != nil {
		return err
	}
	if err := validateName(local); err != nil {
		return zerr.With(err, "name", name)
	}
	return nil
}

// validateName accepts the subset of XML names used by project documents:
// a letter or underscore followed by letters, digits, '_', '-' or '.'.
// Namespace prefixes are rejected.
func validateName(name string) error {
	if name == "" {
		return zerr.With(zerr.Wrap(ErrInvalidName, "empty name"), "name", name)
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return zerr.With(zerr.Wrap(ErrInvalidName, "unexpected character"), "name", name)
		}
	}
	return nil
}
