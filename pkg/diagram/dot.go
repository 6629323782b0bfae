package diagram

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/matzehuels/archviz/pkg/arch"
)

const (
	graphName    = "ModelArchitecture"
	defaultShape = "box"
)

// ToDOT builds cfg and prints it as DOT.
func ToDOT(cfg *arch.Config) (string, error) {
	g, err := Build(cfg)
	if err != nil {
		return "", err
	}
	return g.DOT(), nil
}

// DOT prints the graph. Global attributes come first, then the title, the
// nodes in declaration order and finally the edges.
func (g *Graph) DOT() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", graphName)
	buf.WriteString("  rankdir=TB;\n")
	fmt.Fprintf(&buf, "  node [shape=%s, style=\"rounded,filled\", fillcolor=%s];\n", defaultShape, ColorBlock)
	buf.WriteString("  edge [color=gray, penwidth=2];\n")
	buf.WriteString("\n")

	if g.Title != nil {
		buf.WriteString("  labelloc=\"t\";\n")
		fmt.Fprintf(&buf, "  label=%s;\n", quote(*g.Title))
		buf.WriteString("  fontsize=20;\n")
		buf.WriteString("\n")
	}

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %s [label=%s, fillcolor=%s];\n", id(n.ID), quote(n.Label), id(n.Color))
	}

	if len(g.Edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range g.Edges {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %s -> %s [label=%s];\n", id(e.From), id(e.To), quote(e.Label))
		} else {
			fmt.Fprintf(&buf, "  %s -> %s;\n", id(e.From), id(e.To))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

var (
	plainID = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	keywords = map[string]bool{
		"node": true, "edge": true, "graph": true,
		"digraph": true, "subgraph": true, "strict": true,
	}
)

// id prints s bare when it is a plain DOT identifier and quoted otherwise.
func id(s string) string {
	if plainID.MatchString(s) && !keywords[strings.ToLower(s)] {
		return s
	}
	return quote(s)
}

// dotEscaper escapes the characters that are special inside a DOT quoted
// string. Newlines become the \n line break escape; everything else,
// including tabs and non-ASCII text, is written as is.
var dotEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// quote returns s as a DOT string literal.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
