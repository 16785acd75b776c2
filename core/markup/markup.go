// Package markup is the generic bridge between XML text and an attributed
// element tree. It splits attributes from child elements so callers never
// see the two mixed, and it renders such a tree back into indented XML.
package markup

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gaurav-prasanna/opmlpipe/core"
	"golang.org/x/net/html/charset"
)

// Header is written before the root element by Render.
const Header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Attr is one XML attribute. Namespace prefixes are kept in Name.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the generic markup tree.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	// Text is the concatenated character data directly inside the element.
	Text string
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IsScalar reports whether the element carries nothing but text.
func (e *Element) IsScalar() bool {
	return len(e.Attrs) == 0 && len(e.Children) == 0
}

// Parse reads XML text into an element tree rooted at the document element.
func Parse(text string) (*Element, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.RawToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, parseError(dec, err)
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: qualified(tok.Name)}
			for _, a := range tok.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: qualified(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, parseError(dec, fmt.Errorf("unexpected second root element <%s>", el.Name))
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			name := qualified(tok.Name)
			if len(stack) == 0 || stack[len(stack)-1].Name != name {
				return nil, parseError(dec, fmt.Errorf("unexpected end element </%s>", name))
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(tok)
			}
		}
	}

	if len(stack) > 0 {
		return nil, parseError(dec, fmt.Errorf("element <%s> not closed", stack[len(stack)-1].Name))
	}
	if root == nil {
		return nil, &core.ParseError{Err: core.ErrNoDocument}
	}
	return root, nil
}

func parseError(dec *xml.Decoder, err error) error {
	line, _ := dec.InputPos()
	var synErr *xml.SyntaxError
	if errors.As(err, &synErr) {
		line = synErr.Line
		err = errors.New(synErr.Msg)
	}
	return &core.ParseError{Line: line, Err: err}
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// Render writes root as an XML document: declaration, one tab per depth,
// empty elements self-closed and text-only elements kept on one line.
func Render(w io.Writer, root *Element) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header); err != nil {
		return err
	}
	if err := renderElement(bw, root, 0); err != nil {
		return err
	}
	return bw.Flush()
}

// RenderString is Render into a string.
func RenderString(root *Element) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renderElement(w *bufio.Writer, el *Element, depth int) error {
	indent := strings.Repeat("\t", depth)
	w.WriteString(indent)
	w.WriteByte('<')
	w.WriteString(el.Name)
	for _, a := range el.Attrs {
		w.WriteByte(' ')
		w.WriteString(a.Name)
		w.WriteString(`="`)
		if err := xml.EscapeText(w, []byte(a.Value)); err != nil {
			return err
		}
		w.WriteByte('"')
	}

	switch {
	case len(el.Children) > 0:
		w.WriteString(">\n")
		for _, c := range el.Children {
			if err := renderElement(w, c, depth+1); err != nil {
				return err
			}
		}
		w.WriteString(indent)
	case el.Text != "":
		w.WriteByte('>')
		if err := xml.EscapeText(w, []byte(el.Text)); err != nil {
			return err
		}
	default:
		_, err := w.WriteString("/>\n")
		return err
	}

	w.WriteString("</")
	w.WriteString(el.Name)
	_, err := w.WriteString(">\n")
	return err
}
