// Package tree implements the persistent parse tree produced by a
// successful grammar evaluation: an immutable node carrying an id, a
// character-indexed span, an ordered list of children, and a string
// attribute map.
//
// A Tree is built only through New, Adopt, SetAttr and Terminate. Each of
// these returns a new value; the receiver is left untouched, so a Tree
// reference a caller is holding never changes underneath it. Children and
// attributes are copied on write rather than shared through a persistent
// hash-array-mapped trie or a path-copying list — grammar nesting depth is
// bounded in practice, and a plain copy keeps failure paths trivially free
// of side effects, which is the only property the core evaluator actually
// depends on.
package tree

import (
	"fmt"
	"sort"
	"strings"
)

// Tree is an immutable node in a parse result.
type Tree struct {
	id         string
	begin      int
	span       int
	children   []Tree
	attributes map[string]string
}

// New creates an empty-span node with the given id starting at begin.
func New(id string, begin int) Tree {
	return Tree{id: id, begin: begin}
}

// ID returns the node's label.
func (t Tree) ID() string { return t.id }

// Begin returns the character index at which the node started matching.
func (t Tree) Begin() int { return t.begin }

// Span returns the number of characters the node covers.
func (t Tree) Span() int { return t.span }

// End returns Begin()+Span().
func (t Tree) End() int { return t.begin + t.span }

// Adopt returns a copy of t with child appended as its next child.
func (t Tree) Adopt(child Tree) Tree {
	children := make([]Tree, len(t.children), len(t.children)+1)
	copy(children, t.children)
	t.children = append(children, child)
	return t
}

// SetAttr returns a copy of t with attribute name set to value, overwriting
// any previous value for that name.
func (t Tree) SetAttr(name, value string) Tree {
	attrs := make(map[string]string, len(t.attributes)+1)
	for k, v := range t.attributes {
		attrs[k] = v
	}
	attrs[name] = value
	t.attributes = attrs
	return t
}

// Terminate returns a copy of t whose span ends at the character index at.
// It panics if at precedes t's begin — a programmer error, not an ordinary
// parse failure.
func (t Tree) Terminate(at int) Tree {
	if at < t.begin {
		panic(fmt.Sprintf("tree: terminate at %d precedes begin %d", at, t.begin))
	}
	t.span = at - t.begin
	return t
}

// GetAttr returns the value of attribute name, panicking if it is absent.
func (t Tree) GetAttr(name string) string {
	v, ok := t.attributes[name]
	if !ok {
		panic(fmt.Sprintf("tree: node %q has no attribute %q", t.id, name))
	}
	return v
}

// GetAttrOK returns the value of attribute name and whether it is present.
func (t Tree) GetAttrOK(name string) (string, bool) {
	v, ok := t.attributes[name]
	return v, ok
}

// Children returns the node's children in input order.
func (t Tree) Children() []Tree {
	out := make([]Tree, len(t.children))
	copy(out, t.children)
	return out
}

// NumChildren returns the number of children.
func (t Tree) NumChildren() int { return len(t.children) }

// Child returns the i-th child.
func (t Tree) Child(i int) Tree { return t.children[i] }

// Dig navigates the tree by a sequence of steps, each either a string (the
// first child whose id equals the step) or an int (the nth child). It
// panics if the path does not exist.
func (t Tree) Dig(steps ...any) Tree {
	r, ok := t.DigOK(steps...)
	if !ok {
		panic(fmt.Sprintf("tree: dig path %v not found under node %q", steps, t.id))
	}
	return r
}

// DigOK is the non-panicking form of Dig.
func (t Tree) DigOK(steps ...any) (Tree, bool) {
	cur := t
	for _, step := range steps {
		switch s := step.(type) {
		case string:
			found := false
			for _, c := range cur.children {
				if c.id == s {
					cur = c
					found = true
					break
				}
			}
			if !found {
				return Tree{}, false
			}
		case int:
			if s < 0 || s >= len(cur.children) {
				return Tree{}, false
			}
			cur = cur.children[s]
		default:
			return Tree{}, false
		}
	}
	return cur, true
}

// Equal reports whether t and other are structurally identical. It is
// picked up automatically by google/go-cmp, which prefers an Equal method
// over field-by-field comparison when one is present.
func (t Tree) Equal(other Tree) bool {
	if t.id != other.id || t.begin != other.begin || t.span != other.span {
		return false
	}
	if len(t.children) != len(other.children) {
		return false
	}
	for i := range t.children {
		if !t.children[i].Equal(other.children[i]) {
			return false
		}
	}
	if len(t.attributes) != len(other.attributes) {
		return false
	}
	for k, v := range t.attributes {
		if other.attributes[k] != v {
			return false
		}
	}
	return true
}

// Inspect renders a multi-line indented view of the tree: one
// "id ⸢begin-end⸥" header per node, followed by its sorted key="value"
// attribute pairs, with children indented beneath their parent.
func (t Tree) Inspect() string {
	var b strings.Builder
	t.inspect(&b, 0)
	return b.String()
}

func (t Tree) inspect(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s ⸢%d-%d⸥\n", indent, t.id, t.begin, t.End())

	keys := make([]string, 0, len(t.attributes))
	for k := range t.attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "%s  %s=%q\n", indent, k, t.attributes[k])
	}
	for _, c := range t.children {
		c.inspect(b, depth+1)
	}
}

// Reduce folds the tree bottom-up through fn, which receives each node
// alongside its already-reduced children. This is the explicit visitor
// overload a caller uses to map a tree onto its own types; unlike the
// reflective, class-hierarchy-walking helper some PEG libraries offer, it
// never inspects Go type information.
func (t Tree) Reduce(fn func(node Tree, children []any) any) any {
	children := make([]any, len(t.children))
	for i, c := range t.children {
		children[i] = c.Reduce(fn)
	}
	return fn(t, children)
}
