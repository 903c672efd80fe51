package ast

// Folder computes a result for a tree bottom-up. Visit returns the result
// local to one node; Fold combines it with the folded results of the
// node's children, in Children order, using Aggregate. Default is the
// identity of Aggregate.
type Folder[R any] interface {
	Default() R
	Aggregate(acc, next R) R
	Visit(n Node) R
}

// Fold folds f over the tree rooted at n. A nil n folds to f.Default().
func Fold[R any](f Folder[R], n Node) R {
	if isNil(n) {
		return f.Default()
	}
	acc := f.Aggregate(f.Default(), f.Visit(n))
	for _, child := range n.Children() {
		acc = f.Aggregate(acc, Fold(f, child))
	}
	return acc
}

// ListFolder is a Folder over slices whose Aggregate concatenates. Visit
// is supplied by the caller.
type ListFolder[T any] func(n Node) []T

func (ListFolder[T]) Default() []T { return nil }

func (ListFolder[T]) Aggregate(acc, next []T) []T { return append(acc, next...) }

func (f ListFolder[T]) Visit(n Node) []T { return f(n) }

// Inspect walks the tree in pre-order. Children of n are skipped when fn
// returns false.
func Inspect(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	for _, child := range n.Children() {
		Inspect(child, fn)
	}
}

// ParentIndex maps every node below a root to its parent. It does not own
// the nodes and is only valid while the tree is.
type ParentIndex struct {
	parents map[Node]Node
}

// Parents indexes the tree rooted at root.
func Parents(root Node) *ParentIndex {
	idx := &ParentIndex{parents: make(map[Node]Node)}
	var walk func(n Node)
	walk = func(n Node) {
		for _, child := range n.Children() {
			idx.parents[child] = n
			walk(child)
		}
	}
	if !isNil(root) {
		walk(root)
	}
	return idx
}

// Parent returns the parent of n, or nil for the root and unknown nodes.
func (idx *ParentIndex) Parent(n Node) Node {
	return idx.parents[n]
}

// Ancestors returns the parents of n from the nearest outwards.
func (idx *ParentIndex) Ancestors(n Node) []Node {
	var out []Node
	for p := idx.parents[n]; p != nil; p = idx.parents[p] {
		out = append(out, p)
	}
	return out
}

// EnclosingType returns the innermost type declaration containing n.
func (idx *ParentIndex) EnclosingType(n Node) TypeDecl {
	for _, a := range idx.Ancestors(n) {
		if td, ok := a.(TypeDecl); ok {
			return td
		}
	}
	return nil
}
