package ir

import "testing"

func TestKindTextRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if back != k {
			t.Errorf("%s round-tripped to %s", k, back)
		}
	}
}

func TestKindUnmarshalUnknown(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("Decimal")); err == nil {
		t.Error("expected error for unknown kind name")
	}
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		kind    Kind
		leaf    bool
		numeric bool
	}{
		{NullKind, true, false},
		{StringKind, true, false},
		{IntKind, true, true},
		{LongKind, true, true},
		{FloatKind, true, true},
		{DoubleKind, true, true},
		{BoolKind, true, false},
		{ArrayKind, false, false},
		{ObjectKind, false, false},
	}
	for _, tc := range tests {
		if got := tc.kind.IsLeaf(); got != tc.leaf {
			t.Errorf("%s.IsLeaf() = %t", tc.kind, got)
		}
		if got := tc.kind.IsNumeric(); got != tc.numeric {
			t.Errorf("%s.IsNumeric() = %t", tc.kind, got)
		}
	}
}
