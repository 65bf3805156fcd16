package ir

import (
	"slices"
	"strconv"
)

type Node struct {
	Kind Kind

	// Text is the canonical scalar text. Empty for containers and null.
	Text string

	// Keys is parallel to Values for ObjectKind, nil otherwise.
	Keys   []string
	Values []*Node
}

func Null() *Node {
	return &Node{Kind: NullKind}
}

func FromString(v string) *Node {
	return &Node{Kind: StringKind, Text: v}
}

func FromInt(v int32) *Node {
	return &Node{Kind: IntKind, Text: strconv.FormatInt(int64(v), 10)}
}

func FromLong(v int64) *Node {
	return &Node{Kind: LongKind, Text: strconv.FormatInt(v, 10)}
}

func FromFloat(v float32) *Node {
	return &Node{Kind: FloatKind, Text: strconv.FormatFloat(float64(v), 'g', -1, 32)}
}

func FromDouble(v float64) *Node {
	return &Node{Kind: DoubleKind, Text: strconv.FormatFloat(v, 'g', -1, 64)}
}

func FromBool(v bool) *Node {
	return &Node{Kind: BoolKind, Text: strconv.FormatBool(v)}
}

func NewArray(vs ...*Node) *Node {
	return &Node{Kind: ArrayKind, Values: vs}
}

func NewObject() *Node {
	return &Node{Kind: ObjectKind}
}

// Scalar constructs a scalar node of kind k with the given canonical text.
// The parser uses it to keep the raw token as the canonical form.
func Scalar(k Kind, text string) *Node {
	return &Node{Kind: k, Text: text}
}

func (n *Node) IsNull() bool {
	return n == nil || n.Kind == NullKind
}

// Add appends child. On arrays key is ignored; on objects the child is
// inserted under key, overwriting in place when the key already exists,
// and an empty key is replaced by a synthetic unique key. On scalars and
// null Add is a no-op.
func (n *Node) Add(key string, child *Node) {
	switch n.Kind {
	case ArrayKind:
		n.Values = append(n.Values, child)
	case ObjectKind:
		if key == "" {
			key = n.synthKey()
		}
		for i, k := range n.Keys {
			if k == key {
				n.Values[i] = child
				return
			}
		}
		n.Keys = append(n.Keys, key)
		n.Values = append(n.Values, child)
	}
}

func (n *Node) synthKey() string {
	i := len(n.Keys)
	for {
		k := "_key" + strconv.Itoa(i)
		if n.Get(k) == nil {
			return k
		}
		i++
	}
}

// Get returns the value under key, or nil when n is not an object or the
// key is absent.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Kind != ObjectKind {
		return nil
	}
	for i, k := range n.Keys {
		if k == key {
			return n.Values[i]
		}
	}
	return nil
}

// At returns the i-th child, or nil when out of range.
func (n *Node) At(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Values) {
		return nil
	}
	return n.Values[i]
}

// Key returns the key of the i-th object entry, or "" when out of range.
func (n *Node) Key(i int) string {
	if n == nil || i < 0 || i >= len(n.Keys) {
		return ""
	}
	return n.Keys[i]
}

// Len is the number of direct children; 0 for scalars and null.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Values)
}

// Remove detaches and returns the value under key, or nil when not found.
func (n *Node) Remove(key string) *Node {
	if n == nil || n.Kind != ObjectKind {
		return nil
	}
	for i, k := range n.Keys {
		if k == key {
			return n.removeAt(i)
		}
	}
	return nil
}

// RemoveAt detaches and returns the i-th child, or nil when out of range.
func (n *Node) RemoveAt(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Values) {
		return nil
	}
	return n.removeAt(i)
}

// RemoveChild detaches and returns the given child, matched by identity,
// or nil when child is not a direct child of n.
func (n *Node) RemoveChild(child *Node) *Node {
	if n == nil {
		return nil
	}
	for i, v := range n.Values {
		if v == child {
			return n.removeAt(i)
		}
	}
	return nil
}

func (n *Node) removeAt(i int) *Node {
	v := n.Values[i]
	n.Values = slices.Delete(n.Values, i, i+1)
	if n.Kind == ObjectKind {
		n.Keys = slices.Delete(n.Keys, i, i+1)
	}
	return v
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dst := &Node{Kind: n.Kind, Text: n.Text}
	if n.Keys != nil {
		dst.Keys = slices.Clone(n.Keys)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Values {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
