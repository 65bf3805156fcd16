package ir

import (
	"math/big"
	"strconv"
)

// The As* accessors are pure derived views over the canonical text. They
// never fail: a text that does not parse as the requested type yields the
// type's zero value. The As*OK variants report the miss, and are always
// absent on NullKind.

// AsString returns the canonical text, or "" for null.
func (n *Node) AsString() string {
	v, _ := n.AsStringOK()
	return v
}

func (n *Node) AsStringOK() (string, bool) {
	if n.IsNull() {
		return "", false
	}
	return n.Text, true
}

func (n *Node) AsInt() int32 {
	v, _ := n.AsIntOK()
	return v
}

func (n *Node) AsIntOK() (int32, bool) {
	if n.IsNull() {
		return 0, false
	}
	v, err := strconv.ParseInt(n.Text, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

func (n *Node) AsLong() int64 {
	v, _ := n.AsLongOK()
	return v
}

func (n *Node) AsLongOK() (int64, bool) {
	if n.IsNull() {
		return 0, false
	}
	v, err := strconv.ParseInt(n.Text, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (n *Node) AsFloat() float32 {
	v, _ := n.AsFloatOK()
	return v
}

func (n *Node) AsFloatOK() (float32, bool) {
	if n.IsNull() {
		return 0, false
	}
	v, err := strconv.ParseFloat(n.Text, 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

func (n *Node) AsDouble() float64 {
	v, _ := n.AsDoubleOK()
	return v
}

func (n *Node) AsDoubleOK() (float64, bool) {
	if n.IsNull() {
		return 0, false
	}
	v, err := strconv.ParseFloat(n.Text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (n *Node) AsBool() bool {
	v, _ := n.AsBoolOK()
	return v
}

func (n *Node) AsBoolOK() (bool, bool) {
	if n.IsNull() {
		return false, false
	}
	v, err := strconv.ParseBool(n.Text)
	if err != nil {
		return false, false
	}
	return v, true
}

// AsDecimal is the high-precision reader: it parses the canonical text as
// an arbitrary-precision decimal. Absent on null and on non-numeric text.
func (n *Node) AsDecimal() (*big.Float, bool) {
	if n.IsNull() {
		return nil, false
	}
	f, ok := new(big.Float).SetString(n.Text)
	if !ok {
		return nil, false
	}
	return f, true
}

// The Set* family overwrites the canonical text and retags the node to
// the scalar kind, dropping any children. This promotes null or string
// nodes to typed scalars.

func (n *Node) SetString(v string) {
	n.retag(StringKind, v)
}

func (n *Node) SetInt(v int32) {
	n.retag(IntKind, strconv.FormatInt(int64(v), 10))
}

func (n *Node) SetLong(v int64) {
	n.retag(LongKind, strconv.FormatInt(v, 10))
}

func (n *Node) SetFloat(v float32) {
	n.retag(FloatKind, strconv.FormatFloat(float64(v), 'g', -1, 32))
}

func (n *Node) SetDouble(v float64) {
	n.retag(DoubleKind, strconv.FormatFloat(v, 'g', -1, 64))
}

func (n *Node) SetBool(v bool) {
	n.retag(BoolKind, strconv.FormatBool(v))
}

func (n *Node) SetNull() {
	n.retag(NullKind, "")
}

func (n *Node) retag(k Kind, text string) {
	n.Kind = k
	n.Text = text
	n.Keys = nil
	n.Values = nil
}
