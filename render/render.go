// Package render turns a generic labelled tree into a multi-line textual
// rendering. It is the presentation collaborator the sapda engine hands
// its configuration snapshots to; it has no knowledge of SAPDA semantics.
package render

import "strings"

// Node is a generic rose-tree node: a label and an ordered list of
// children.
type Node struct {
	Label    string
	Children []Node
}

// Tree renders n and its descendants as an indented multi-line string,
// one node per line, each child indented one level below its parent.
func Tree(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return strings.TrimRight(b.String(), "\n")
}

func dump(b *strings.Builder, n Node, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(n.Label)
	b.WriteByte('\n')
	for _, child := range n.Children {
		dump(b, child, indent+1)
	}
}
