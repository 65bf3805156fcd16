package ir

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	StringKind
	IntKind
	LongKind
	FloatKind
	DoubleKind
	BoolKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		StringKind: "String",
		IntKind:    "Int",
		LongKind:   "Long",
		FloatKind:  "Float",
		DoubleKind: "Double",
		BoolKind:   "Bool",
		ArrayKind:  "Array",
		ObjectKind: "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   NullKind,
		"String": StringKind,
		"Int":    IntKind,
		"Long":   LongKind,
		"Float":  FloatKind,
		"Double": DoubleKind,
		"Bool":   BoolKind,
		"Array":  ArrayKind,
		"Object": ObjectKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		StringKind,
		IntKind,
		LongKind,
		FloatKind,
		DoubleKind,
		BoolKind,
		ArrayKind,
		ObjectKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ArrayKind, ObjectKind:
		return false
	default:
		return true
	}
}

// IsNumeric reports whether values of this kind carry a numeric payload.
func (k Kind) IsNumeric() bool {
	switch k {
	case IntKind, LongKind, FloatKind, DoubleKind:
		return true
	default:
		return false
	}
}
