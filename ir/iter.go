package ir

import "iter"

// Children yields the direct children in container order. The sequence is
// lazy, finite and restartable; each range starts a fresh pass. It does
// not recurse.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil {
			return
		}
		for _, c := range n.Values {
			if !yield(c) {
				return
			}
		}
	}
}

// DeepChildren yields every descendant of n in depth-first pre-order.
// Like Children, the sequence is lazy, finite and restartable.
func (n *Node) DeepChildren() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil {
			return
		}
		n.deepYield(yield)
	}
}

func (n *Node) deepYield(yield func(*Node) bool) bool {
	for _, c := range n.Values {
		if !yield(c) {
			return false
		}
		if !c.deepYield(yield) {
			return false
		}
	}
	return true
}
