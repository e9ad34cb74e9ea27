package report

import "strings"

// Tree is a rendered hierarchy of text nodes. Level-one nodes print bare;
// deeper nodes get branch prefixes from the charset.
type Tree struct {
	charset Charset
	root    node
}

type node struct {
	data     string
	children []*node
}

func (n *node) push(data string) *node {
	child := &node{data: data}
	n.children = append(n.children, child)
	return child
}

func (n *node) lastChild() *node {
	return n.children[len(n.children)-1]
}

// String renders the tree with a newline after every node. An empty tree
// renders as the empty string.
func (t *Tree) String() string {
	var sb strings.Builder
	var preprefix string
	for _, lv1 := range t.root.children {
		sb.WriteString(lv1.data)
		sb.WriteByte('\n')
		for i, lv2 := range lv1.children {
			t.writeNode(&sb, lv2, &preprefix, i == len(lv1.children)-1)
		}
	}
	return sb.String()
}

func (t *Tree) writeNode(sb *strings.Builder, n *node, preprefix *string, isLastChild bool) {
	prefixTail, childPrefixTail := t.charset.TreeSidewaysT, t.charset.TreePipeGap
	if isLastChild {
		prefixTail, childPrefixTail = t.charset.TreeCorner, t.charset.TreeSpace
	}
	sb.WriteString(*preprefix)
	sb.WriteString(prefixTail)
	sb.WriteString(n.data)
	sb.WriteByte('\n')
	*preprefix += childPrefixTail
	for i, child := range n.children {
		t.writeNode(sb, child, preprefix, i == len(n.children)-1)
	}
	*preprefix = (*preprefix)[:len(*preprefix)-len(childPrefixTail)]
}
