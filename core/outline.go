package core

import "strings"

// Well-known outline attribute names.
const (
	AttrText      = "text"
	AttrType      = "type"
	AttrURL       = "url"
	AttrCreated   = "created"
	AttrIsComment = "iscomment"
	AttrName      = "name"

	// TypeInclude marks a node whose url names another outline to splice in.
	TypeInclude = "include"
)

// Document is a parsed OPML document.
type Document struct {
	// Attrs holds the attributes of the root opml element, e.g. version.
	Attrs Attributes
	Head  *Node
	// Body is an invisible root whose children are the top-level entries.
	Body *Node
	// Source is the URL the document was read from, if any. It is not
	// serialized and serves as the base for relative include URLs.
	Source string
}

// NewDocument returns a document with an empty head and body.
func NewDocument() *Document {
	return &Document{Head: &Node{}, Body: &Node{}}
}

// Title returns head.title, or "" if unset.
func (d *Document) Title() string {
	if d.Head == nil {
		return ""
	}
	return d.Head.Attrs.Value("title")
}

// Node is one outline entry.
type Node struct {
	Attrs Attributes
	// Groups holds named nested containers other than outline elements,
	// in source order.
	Groups []Group
	// Children is nil for a leaf.
	Children []*Node
}

// Group is a named non-outline container nested in a node.
type Group struct {
	Name string
	Node *Node
}

// NewNode returns a node with the given text attribute.
func NewNode(text string, children ...*Node) *Node {
	n := &Node{Children: children}
	n.Attrs.Set(AttrText, text)
	return n
}

func (n *Node) Text() string { return n.Attrs.Value(AttrText) }
func (n *Node) Type() string { return n.Attrs.Value(AttrType) }
func (n *Node) URL() string  { return n.Attrs.Value(AttrURL) }

// IsComment reports whether the iscomment attribute is truthy.
func (n *Node) IsComment() bool {
	return Truthy(n.Attrs.Value(AttrIsComment))
}

// IsInclude reports whether the node is an include with a url.
func (n *Node) IsInclude() bool {
	return n.Type() == TypeInclude && n.Attrs.Has(AttrURL)
}

// Append adds children in order and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// ScalarCopy returns a new node carrying only n's attributes.
func (n *Node) ScalarCopy() *Node {
	return &Node{Attrs: n.Attrs.Clone()}
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	c := n.ScalarCopy()
	for _, g := range n.Groups {
		c.Groups = append(c.Groups, Group{Name: g.Name, Node: g.Node.Clone()})
	}
	if n.Children != nil {
		c.Children = make([]*Node, 0, len(n.Children))
		for _, child := range n.Children {
			c.Children = append(c.Children, child.Clone())
		}
	}
	return c
}

// Truthy coerces an attribute value to a boolean: "true" (any case) and "1"
// are true, everything else false.
func Truthy(v string) bool {
	return strings.EqualFold(v, "true") || v == "1"
}
