package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally. The result
// is 0 if a==b, -1 if a < b, and +1 if a > b. Numeric kinds compare by
// value first, so an int 1 and a long 1 differ only in kind rank.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Kind)
	rankB := rank(b.Kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind {
	case NullKind:
		return 0
	case BoolKind:
		if a.AsBool() == b.AsBool() {
			return 0
		}
		if !a.AsBool() {
			return -1
		}
		return 1
	case IntKind, LongKind, FloatKind, DoubleKind:
		return compareNumbers(a, b)
	case StringKind:
		return strings.Compare(a.Text, b.Text)
	case ArrayKind:
		return compareArrays(a, b)
	case ObjectKind:
		return compareObjects(a, b)
	}
	return 0
}

// rank returns the sorting rank of a kind.
// Order: Null < Bool < numbers < String < Array < Object
func rank(k Kind) int {
	switch {
	case k == NullKind:
		return 0
	case k == BoolKind:
		return 1
	case k.IsNumeric():
		return 2
	case k == StringKind:
		return 3
	case k == ArrayKind:
		return 4
	case k == ObjectKind:
		return 5
	}
	return 6
}

func compareNumbers(a, b *Node) int {
	if c := cmp.Compare(a.AsDouble(), b.AsDouble()); c != 0 {
		return c
	}
	return cmp.Compare(a.Kind, b.Kind)
}

func compareArrays(a, b *Node) int {
	if c := cmp.Compare(len(a.Values), len(b.Values)); c != 0 {
		return c
	}
	for i := range a.Values {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareObjects(a, b *Node) int {
	if c := cmp.Compare(len(a.Keys), len(b.Keys)); c != 0 {
		return c
	}
	for i := range a.Keys {
		if c := strings.Compare(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return 0
}
