package render

import (
	"bytes"
	"io"
	"sort"

	"github.com/fern-ui/fern/pkg/vdom"
)

// Page describes a complete HTML document around a rendered body.
type Page struct {
	// Title is the document title. Escaped.
	Title string

	// Lang is the <html lang> attribute. Defaults to "en".
	Lang string

	// Meta is extra name/content meta tag pairs, emitted in sorted name
	// order.
	Meta map[string]string

	// Styles is raw CSS inlined in a <style> tag. Not escaped; the
	// caller owns its content.
	Styles string

	// Scripts is a list of script src URLs appended before </body>.
	Scripts []string

	// Body is the virtual tree mounted as the page content.
	Body *vdom.VNode
}

// WritePage renders a full HTML document to w. The body mounts through
// MountToString, so components and hooks behave as in a live session.
func WritePage(w io.Writer, p Page, config Config) error {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n")
	buf.WriteString(`<html lang="` + escapeAttr(lang) + "\">\n<head>\n")
	buf.WriteString(`<meta charset="utf-8">` + "\n")
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	metaNames := make([]string, 0, len(p.Meta))
	for name := range p.Meta {
		metaNames = append(metaNames, name)
	}
	sort.Strings(metaNames)
	for _, name := range metaNames {
		buf.WriteString(`<meta name="` + escapeAttr(name) + `" content="` + escapeAttr(p.Meta[name]) + "\">\n")
	}
	buf.WriteString("<title>" + escapeHTML(p.Title) + "</title>\n")
	if p.Styles != "" {
		buf.WriteString("<style>" + p.Styles + "</style>\n")
	}
	buf.WriteString("</head>\n<body>\n")

	body, err := MountToString(p.Body, config)
	if err != nil {
		return err
	}
	buf.WriteString(body)
	if len(body) > 0 && body[len(body)-1] != '\n' {
		buf.WriteString("\n")
	}

	for _, src := range p.Scripts {
		buf.WriteString(`<script src="` + escapeAttr(src) + `"></script>` + "\n")
	}
	buf.WriteString("</body>\n</html>\n")

	_, err = w.Write(buf.Bytes())
	return err
}

// PageToString renders a full HTML document to a string.
func PageToString(p Page, config Config) (string, error) {
	var buf bytes.Buffer
	if err := WritePage(&buf, p, config); err != nil {
		return "", err
	}
	return buf.String(), nil
}
