package syntax

// Walk visits n and every node below it in depth-first, left-to-right order.
// If visit returns false the children of that node are skipped. The walk keeps
// its own stack, so arbitrarily deep trees do not grow the goroutine stack.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(top) {
			continue
		}
		for i := len(top.Sub) - 1; i >= 0; i-- {
			stack = append(stack, top.Sub[i])
		}
	}
}

// Contains reports whether any node of kind op occurs in the tree rooted at n.
func Contains(n *Node, op Op) bool {
	found := false
	Walk(n, func(c *Node) bool {
		if c.Op == op {
			found = true
		}
		return !found
	})
	return found
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	type frame struct {
		node  *Node
		depth int
	}
	maxDepth := 0
	stack := []frame{{n, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > maxDepth {
			maxDepth = f.depth
		}
		for _, c := range f.node.Sub {
			stack = append(stack, frame{c, f.depth + 1})
		}
	}
	return maxDepth
}

// Groups returns the capture groups of the tree in numbering order: group i
// of the rendered pattern is Groups(n)[i-1].
func Groups(n *Node) []*Node {
	var groups []*Node
	Walk(n, func(c *Node) bool {
		if c.Op == OpCapture || c.Op == OpNamedCapture {
			groups = append(groups, c)
		}
		return true
	})
	return groups
}
