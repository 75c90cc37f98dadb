// Package xmltree reads an XML document into a navigable element tree.
//
// Lookups match on local names only, so the same code handles EDGAR files
// with a default namespace, prefixed namespaces, or none at all.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/dgallion1/edgarparse/internal/edgarerr"
	"github.com/samber/lo"
	"golang.org/x/net/html/charset"
)

// Node is an element in the parsed tree.
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Node // element children, document order
	Parent   *Node

	text string // character data preceding the first child element
}

// Parse decodes a complete document and returns its root element.
// Any well-formedness problem is reported as edgarerr.ErrMalformedXML.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, edgarerr.Malformed(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name, Attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) == 0 {
				if root != nil {
					return nil, edgarerr.Malformed(fmt.Errorf("line %d: multiple root elements", line(dec)))
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				n.Parent = parent
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, edgarerr.Malformed(fmt.Errorf("line %d: text outside root element", line(dec)))
				}
				continue
			}
			top := stack[len(stack)-1]
			if len(top.Children) == 0 {
				top.text += string(t)
			}
		}
	}

	if root == nil {
		return nil, edgarerr.Malformed(errors.New("no root element"))
	}
	return root, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (*Node, error) {
	return Parse(bytes.NewReader(data))
}

func line(dec *xml.Decoder) int {
	l, _ := dec.InputPos()
	return l
}

// Local returns the element's tag name without namespace.
func (n *Node) Local() string {
	return n.Name.Local
}

// Text returns the character data that precedes the element's first child
// element. Runs separated by comments or processing instructions are joined.
// ok is false when there is none, as for <a/> or <a><b/></a>.
func (n *Node) Text() (text string, ok bool) {
	if n == nil || n.text == "" {
		return "", false
	}
	return n.text, true
}

// Child returns the first child element with the given local name.
func (n *Node) Child(tag string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	return lo.Find(n.Children, func(c *Node) bool { return c.Name.Local == tag })
}

// ChildrenByTag returns every child element with the given local name.
func (n *Node) ChildrenByTag(tag string) []*Node {
	if n == nil {
		return nil
	}
	return lo.Filter(n.Children, func(c *Node, _ int) bool { return c.Name.Local == tag })
}

// Path descends through a chain of local names, taking the first match at
// each level.
func (n *Node) Path(tags ...string) (*Node, bool) {
	cur := n
	for _, tag := range tags {
		next, ok := cur.Child(tag)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}

// ChildText is the Text of the first child with the given local name.
func (n *Node) ChildText(tag string) (string, bool) {
	c, ok := n.Child(tag)
	if !ok {
		return "", false
	}
	return c.Text()
}

// Attr returns an attribute value by local name. Namespace declarations are
// never matched.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name.Local == name && a.Name.Space != "xmlns" {
			return a.Value, true
		}
	}
	return "", false
}

// NamespaceURI returns the URI bound to prefix by a declaration on this element.
func (n *Node) NamespaceURI(prefix string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name.Space == "xmlns" && a.Name.Local == prefix {
			return a.Value, true
		}
	}
	return "", false
}

// PathString renders the element's ancestry, e.g. "ownershipDocument/issuer".
func (n *Node) PathString() string {
	if n == nil {
		return ""
	}
	if n.Parent == nil {
		return n.Name.Local
	}
	return n.Parent.PathString() + "/" + n.Name.Local
}
