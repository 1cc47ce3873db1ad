package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"<b>&</b>", "&lt;b&gt;&amp;&lt;/b&gt;"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{"it's", "it&#39;s"},
		{"", ""},
	}
	for _, c := range cases {
		if got := escapeHTML(c.in); got != c.want {
			t.Errorf("escapeHTML(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	cases := []struct{ in, want string }{
		{"a b", "a b"},
		{"line\nbreak", "line&#10;break"},
		{"tab\there", "tab&#9;here"},
		{`<">`, "&lt;&quot;&gt;"},
	}
	for _, c := range cases {
		if got := escapeAttr(c.in); got != c.want {
			t.Errorf("escapeAttr(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
