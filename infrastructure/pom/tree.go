// Package pom parses Maven POM descriptors into normalized plugin and
// dependency records. Traversal is namespace-agnostic: elements are matched
// by local tag name so documents with or without xmlns declarations behave
// identically.
package pom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/rios0rios0/pomupdate/domain"
)

// Document is a parsed POM descriptor.
type Document struct {
	root *etree.Element
}

// Parse reads a POM document from raw XML text. Malformed XML is a hard
// failure — callers rely on an empty extraction result meaning "well-formed
// document with no matches", so parse errors are never swallowed.
func Parse(xmlText string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xmlText); err != nil {
		return nil, fmt.Errorf("failed to parse POM XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New("failed to parse POM XML: document has no root element")
	}
	return &Document{root: root}, nil
}

// localName strips any namespace qualifier from a tag, handling both the
// expanded "{uri}local" form and the prefixed "ns:local" form. Every tag
// comparison in this package goes through this helper.
func localName(tag string) string {
	if i := strings.LastIndex(tag, "}"); i >= 0 {
		return tag[i+1:]
	}
	if i := strings.LastIndex(tag, ":"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

// childrenByLocal returns the direct children of el whose local tag name
// matches name, in document order.
func childrenByLocal(el *etree.Element, name string) []*etree.Element {
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if localName(c.FullTag()) == name {
			out = append(out, c)
		}
	}
	return out
}

// firstChildByLocal returns the first direct child with the given local tag
// name, or nil.
func firstChildByLocal(el *etree.Element, name string) *etree.Element {
	for _, c := range el.ChildElements() {
		if localName(c.FullTag()) == name {
			return c
		}
	}
	return nil
}

// textOf returns the normalized text content of an element, or "" for nil.
func textOf(el *etree.Element) string {
	if el == nil {
		return ""
	}
	return domain.Normalize(el.Text())
}

// firstChildText returns the normalized text of the first matching child,
// or "" when the child is absent.
func firstChildText(el *etree.Element, name string) string {
	return textOf(firstChildByLocal(el, name))
}
