package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrJunkAfterRoot is returned when an element or text follows the document element.
var ErrJunkAfterRoot = errors.New("junk after document element")

// Tree is a read-only element tree decoded from an XML document.
type Tree struct {
	root *Node
}

// Node is a single XML element with its attributes and element children.
type Node struct {
	Tag      string
	Attrs    []xml.Attr
	Children []*Node
}

// Root returns the document element, or nil for an empty document.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Attr returns the value of the named attribute and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// FindAll returns the direct children tagged tag, in document order.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	for _, child := range n.Children {
		if child.Tag == tag {
			out = append(out, child)
		}
	}
	return out
}

// AttrString renders the attribute mapping as {'k': 'v', ...} in document order.
func (n *Node) AttrString() string {
	pairs := make([]string, 0, len(n.Attrs))
	for _, a := range n.Attrs {
		pairs = append(pairs, quote(a.Name.Local)+": "+quote(a.Value))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// quote wraps s in single quotes, or double quotes when s holds only single ones.
func quote(s string) string {
	q := `'`
	if strings.Contains(s, `'`) && !strings.Contains(s, `"`) {
		q = `"`
	}
	r := strings.NewReplacer(`\`, `\\`, q, `\`+q, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	return q + r.Replace(s) + q
}

// ParseFile reads and decodes the XML document at path.
func ParseFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report %q: %w", path, err)
	}
	defer f.Close()

	tree, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse report %q: %w", path, err)
	}
	return tree, nil
}

// Parse decodes an XML document from r. Character data, comments and
// processing instructions are dropped; only the element structure is kept.
// Literal whitespace in attribute values is normalized to spaces, while
// character references such as &#x0A; keep their value.
func Parse(r io.Reader) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	decoder := xml.NewDecoder(bytes.NewReader(normalizeAttrs(data)))

	tree := &Tree{}
	var stack []*Node
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			node := &Node{Tag: el.Name.Local, Attrs: append([]xml.Attr{}, el.Attr...)}
			if len(stack) == 0 {
				if tree.root != nil {
					return nil, fmt.Errorf("%w: line %d", ErrJunkAfterRoot, line(decoder))
				}
				tree.root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 && len(bytes.Trim(el, " \t\r\n\uFEFF")) > 0 {
				if tree.root != nil {
					return nil, fmt.Errorf("%w: line %d", ErrJunkAfterRoot, line(decoder))
				}
				return nil, fmt.Errorf("syntax error: text before document element: line %d", line(decoder))
			}
		}
	}
	return tree, nil
}

func line(d *xml.Decoder) int {
	l, _ := d.InputPos()
	return l
}

// normalizeAttrs replaces literal tabs and line ends inside quoted attribute
// values with a single space each. A CRLF pair counts as one line end.
// Comments, CDATA sections, processing instructions and declarations are
// copied untouched.
func normalizeAttrs(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		if data[i] != '<' {
			out = append(out, data[i])
			i++
			continue
		}
		rest := data[i:]
		switch {
		case bytes.HasPrefix(rest, []byte("<!--")):
			n := skipPast(rest, "-->")
			out = append(out, rest[:n]...)
			i += n
		case bytes.HasPrefix(rest, []byte("<![CDATA[")):
			n := skipPast(rest, "]]>")
			out = append(out, rest[:n]...)
			i += n
		case bytes.HasPrefix(rest, []byte("<?")):
			n := skipPast(rest, "?>")
			out = append(out, rest[:n]...)
			i += n
		case bytes.HasPrefix(rest, []byte("<!")):
			n := skipPast(rest, ">")
			out = append(out, rest[:n]...)
			i += n
		default:
			var n int
			out, n = copyTag(out, rest)
			i += n
		}
	}
	return out
}

// skipPast returns the length of b up to and including the first end marker,
// or len(b) when the marker is missing.
func skipPast(b []byte, end string) int {
	if j := bytes.Index(b, []byte(end)); j >= 0 {
		return j + len(end)
	}
	return len(b)
}

// copyTag appends the tag starting at b[0] == '<' to out and returns the
// number of bytes consumed.
func copyTag(out, b []byte) ([]byte, int) {
	var delim byte
	for i := 0; i < len(b); i++ {
		c := b[i]
		if delim == 0 {
			out = append(out, c)
			switch c {
			case '"', '\'':
				delim = c
			case '>':
				return out, i + 1
			}
			continue
		}
		switch c {
		case delim:
			delim = 0
			out = append(out, c)
		case '\r':
			if i+1 < len(b) && b[i+1] == '\n' {
				i++
			}
			out = append(out, ' ')
		case '\n', '\t':
			out = append(out, ' ')
		default:
			out = append(out, c)
		}
	}
	return out, len(b)
}
