package render

import (
	"bytes"
	"io"
	"sort"

	"github.com/fern-ui/fern/pkg/host/memdom"
	"github.com/fern-ui/fern/pkg/vdom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed output with indentation. Meant for
	// development and golden tests; inflates output size.
	Pretty bool

	// Indent is the string per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer serializes a mounted host tree to HTML. Output is
// deterministic: attributes and style properties are emitted in sorted
// order.
type Renderer struct {
	config Config
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// NodeToString renders one host node and its subtree to an HTML string.
func (r *Renderer) NodeToString(n *memdom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.WriteNode(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteNode streams one host node and its subtree to w.
func (r *Renderer) WriteNode(w io.Writer, n *memdom.Node) error {
	return r.writeNode(w, n, 0)
}

func (r *Renderer) writeNode(w io.Writer, n *memdom.Node, depth int) error {
	if n == nil {
		return nil
	}
	if n.Kind() == memdom.KindText {
		_, err := io.WriteString(w, escapeHTML(n.Text()))
		return err
	}
	return r.writeElement(w, n, depth)
}

func (r *Renderer) writeElement(w io.Writer, n *memdom.Node, depth int) error {
	tag := n.Tag()

	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.writeAttributes(w, n); err != nil {
		return err
	}

	if vdom.IsVoidElement(tag) {
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		return r.prettyNewline(w)
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	children := n.Children()
	blockChildren := len(children) > 0 && !isInline(tag) && r.config.Pretty
	if blockChildren {
		if err := r.prettyNewline(w); err != nil {
			return err
		}
	}
	for _, c := range children {
		d := depth + 1
		if !blockChildren {
			d = 0
		}
		if err := r.writeNode(w, c, d); err != nil {
			return err
		}
	}
	if blockChildren {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	return r.prettyNewline(w)
}

func (r *Renderer) writeAttributes(w io.Writer, n *memdom.Node) error {
	names := n.AttrNames()
	sort.Strings(names)
	for _, name := range names {
		v, _ := n.Attr(name)
		if v == "" {
			if _, err := io.WriteString(w, " "+name); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, " "+name+`="`+escapeAttr(v)+`"`); err != nil {
			return err
		}
	}

	styles := n.StyleNames()
	if len(styles) == 0 {
		return nil
	}
	sort.Strings(styles)
	var sb bytes.Buffer
	for i, prop := range styles {
		if i > 0 {
			sb.WriteString("; ")
		}
		v, _ := n.StyleProp(prop)
		sb.WriteString(prop + ": " + v)
	}
	_, err := io.WriteString(w, ` style="`+escapeAttr(sb.String())+`"`)
	return err
}

func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) prettyNewline(w io.Writer) error {
	if !r.config.Pretty {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// inlineElements render their children on one line in pretty mode.
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "button": true, "code": true,
	"em": true, "i": true, "label": true, "small": true, "span": true,
	"strong": true, "sub": true, "sup": true, "td": true, "th": true,
}

func isInline(tag string) bool {
	return inlineElements[tag]
}

// MountToString mounts a virtual tree into a fresh in-memory document,
// runs its render pass and effects, serializes the result, and unmounts
// (running effect cleanups). It is the one-shot server-side rendering
// path: hook-using components work because the real reconciler runs.
func MountToString(node *vdom.VNode, config Config) (string, error) {
	doc := memdom.NewDocument()
	body := doc.CreateElement("body").(*memdom.Node)

	root := vdom.NewRoot(body)
	root.Render(node)

	r := New(config)
	var buf bytes.Buffer
	for _, c := range body.Children() {
		if err := r.WriteNode(&buf, c); err != nil {
			root.Unmount()
			return "", err
		}
	}
	root.Unmount()
	return buf.String(), nil
}
