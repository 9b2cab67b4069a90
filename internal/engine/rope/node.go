package rope

import (
	"strings"
	"unicode/utf8"
)

// Chunk size bounds for leaves.
const (
	// MaxLeafSize is the largest chunk a leaf holds. Adjacent small leaves are
	// merged on join while their combined size stays below this bound.
	MaxLeafSize = 512

	// targetLeafSize is the chunk size used when building from a long string.
	targetLeafSize = 384
)

// node is a rope tree node. Leaves have height 0 and carry text; internal
// nodes have both children set.
type node struct {
	left, right *node
	text        string
	height      int
	sum         summary
}

func newLeaf(s string) *node {
	if s == "" {
		return nil
	}
	return &node{text: s, sum: summarize(s)}
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func height(n *node) int {
	if n == nil {
		return -1
	}
	return n.height
}

func sumOf(n *node) summary {
	if n == nil {
		return summary{}
	}
	return n.sum
}

// branch creates an internal node without rebalancing.
func branch(l, r *node) *node {
	return &node{
		left:   l,
		right:  r,
		height: max(height(l), height(r)) + 1,
		sum:    l.sum.add(r.sum),
	}
}

func rotateRight(n *node) *node {
	l := n.left
	return branch(l.left, branch(l.right, n.right))
}

func rotateLeft(n *node) *node {
	r := n.right
	return branch(branch(n.left, r.left), r.right)
}

// rebalance restores the AVL height invariant at n, assuming its children
// differ in height by at most two.
func rebalance(n *node) *node {
	if n.isLeaf() {
		return n
	}
	switch diff := height(n.left) - height(n.right); {
	case diff > 1:
		if height(n.left.left) < height(n.left.right) {
			n = branch(rotateLeft(n.left), n.right)
		}
		return rotateRight(n)
	case diff < -1:
		if height(n.right.right) < height(n.right.left) {
			n = branch(n.left, rotateRight(n.right))
		}
		return rotateLeft(n)
	}
	return n
}

// join concatenates two trees, keeping the result height-balanced.
func join(a, b *node) *node {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.isLeaf() && b.isLeaf() && a.sum.bytes+b.sum.bytes <= MaxLeafSize:
		return newLeaf(a.text + b.text)
	case a.height > b.height+1:
		return rebalance(branch(a.left, join(a.right, b)))
	case b.height > a.height+1:
		return rebalance(branch(join(a, b.left), b.right))
	}
	return branch(a, b)
}

// split divides the tree at byte offset off.
func split(n *node, off int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if off <= 0 {
		return nil, n
	}
	if off >= n.sum.bytes {
		return n, nil
	}
	if n.isLeaf() {
		return newLeaf(n.text[:off]), newLeaf(n.text[off:])
	}
	lb := n.left.sum.bytes
	switch {
	case off < lb:
		ll, lr := split(n.left, off)
		return ll, join(lr, n.right)
	case off > lb:
		rl, rr := split(n.right, off-lb)
		return join(n.left, rl), rr
	}
	return n.left, n.right
}

// build creates a balanced tree from a string by chunking it.
func build(s string) *node {
	if len(s) <= MaxLeafSize {
		return newLeaf(s)
	}
	var leaves []*node
	for len(s) > 0 {
		cut := chunkBoundary(s, targetLeafSize)
		leaves = append(leaves, newLeaf(s[:cut]))
		s = s[cut:]
	}
	return buildBalanced(leaves)
}

func buildBalanced(leaves []*node) *node {
	switch len(leaves) {
	case 0:
		return nil
	case 1:
		return leaves[0]
	}
	mid := len(leaves) / 2
	return branch(buildBalanced(leaves[:mid]), buildBalanced(leaves[mid:]))
}

// chunkBoundary picks a cut point near target that does not split a UTF-8 sequence.
func chunkBoundary(s string, target int) int {
	if target >= len(s) {
		return len(s)
	}
	cut := target
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		return target
	}
	return cut
}

func (n *node) appendRange(sb *strings.Builder, start, end int) {
	if n == nil || start >= end {
		return
	}
	if n.isLeaf() {
		sb.WriteString(n.text[start:end])
		return
	}
	lb := n.left.sum.bytes
	if start < lb {
		n.left.appendRange(sb, start, min(end, lb))
	}
	if end > lb {
		n.right.appendRange(sb, max(start-lb, 0), end-lb)
	}
}

// newlinesBefore counts newlines in [0, off).
func (n *node) newlinesBefore(off int) int {
	count := 0
	for n != nil {
		if n.isLeaf() {
			return count + strings.Count(n.text[:off], "\n")
		}
		lb := n.left.sum.bytes
		if off <= lb {
			n = n.left
			continue
		}
		count += n.left.sum.lines
		off -= lb
		n = n.right
	}
	return count
}

// afterNewline returns the offset just past the k-th newline (k >= 1).
// The caller guarantees 1 <= k <= n.sum.lines.
func (n *node) afterNewline(k int) int {
	base := 0
	for !n.isLeaf() {
		if k <= n.left.sum.lines {
			n = n.left
			continue
		}
		k -= n.left.sum.lines
		base += n.left.sum.bytes
		n = n.right
	}
	return base + nthNewline(n.text, k) + 1
}

func (n *node) byteAt(off int) byte {
	for !n.isLeaf() {
		lb := n.left.sum.bytes
		if off < lb {
			n = n.left
		} else {
			off -= lb
			n = n.right
		}
	}
	return n.text[off]
}

func (n *node) walk(yield func(string) bool) bool {
	if n == nil {
		return true
	}
	if n.isLeaf() {
		return yield(n.text)
	}
	return n.left.walk(yield) && n.right.walk(yield)
}
