package parse

import (
	"errors"
	"testing"

	"github.com/knot-format/go-knot/encode"
	"github.com/knot-format/go-knot/ir"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	return node
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		in   string
		kind ir.Kind
		text string
	}{
		{`null`, ir.NullKind, ""},
		{`true`, ir.BoolKind, "true"},
		{`false`, ir.BoolKind, "false"},
		{`22`, ir.IntKind, "22"},
		{`-7`, ir.IntKind, "-7"},
		{`3000000000`, ir.LongKind, "3000000000"},
		{`3.5`, ir.FloatKind, "3.5"},
		{`1e14`, ir.FloatKind, "1e14"},
		{`3.14159265`, ir.DoubleKind, "3.14159265"},
		{`"hello"`, ir.StringKind, "hello"},
		{`""`, ir.StringKind, ""},
		{`"22"`, ir.StringKind, "22"},
	}
	for _, tc := range tests {
		node := mustParse(t, tc.in)
		if node.Kind != tc.kind {
			t.Errorf("Parse(%q): kind %s, want %s", tc.in, node.Kind, tc.kind)
		}
		if node.Text != tc.text {
			t.Errorf("Parse(%q): canonical %q, want %q", tc.in, node.Text, tc.text)
		}
	}
}

func TestParseEmptyContainers(t *testing.T) {
	obj := mustParse(t, `{}`)
	if obj.Kind != ir.ObjectKind || obj.Len() != 0 {
		t.Errorf("{}: kind=%s len=%d", obj.Kind, obj.Len())
	}
	arr := mustParse(t, `[]`)
	if arr.Kind != ir.ArrayKind || arr.Len() != 0 {
		t.Errorf("[]: kind=%s len=%d", arr.Kind, arr.Len())
	}
}

func TestParseObjectScenario(t *testing.T) {
	node := mustParse(t, `{"a":1,"b":"x","c":null}`)
	if node.Len() != 3 {
		t.Fatalf("len = %d, want 3", node.Len())
	}
	if got := node.Get("a").AsInt(); got != 1 {
		t.Errorf("a = %d, want 1", got)
	}
	if got := node.Get("b").AsString(); got != "x" {
		t.Errorf("b = %q, want x", got)
	}
	if !node.Get("c").IsNull() {
		t.Errorf("c is not null")
	}
}

func TestParseArrayScenario(t *testing.T) {
	node := mustParse(t, `[1,2,3]`)
	if node.Len() != 3 {
		t.Fatalf("len = %d, want 3", node.Len())
	}
	if got := node.At(1).AsInt(); got != 2 {
		t.Errorf("At(1) = %d, want 2", got)
	}
}

func TestParseNested(t *testing.T) {
	node := mustParse(t, `{"a":{"b":[1,{"c":2}]}}`)
	b := node.Get("a").Get("b")
	if b == nil || b.Kind != ir.ArrayKind || b.Len() != 2 {
		t.Fatalf("b = %v", b)
	}
	if got := b.At(1).Get("c").AsInt(); got != 2 {
		t.Errorf("c = %d, want 2", got)
	}
}

func TestParseWhitespace(t *testing.T) {
	node := mustParse(t, " \t{ \"a\" :\t 1 , \"b\" : [ 1 ,\n 2 ] }\n")
	if node.Len() != 2 || node.Get("a").AsInt() != 1 || node.Get("b").Len() != 2 {
		t.Errorf("whitespace handling broke the tree: %s", encode.MustString(node))
	}
}

func TestParseDuplicateKeyLastWins(t *testing.T) {
	node := mustParse(t, `{"a":1,"a":2}`)
	if node.Len() != 1 {
		t.Fatalf("len = %d, want 1", node.Len())
	}
	if got := node.Get("a").AsInt(); got != 2 {
		t.Errorf("a = %d, want 2", got)
	}
}

func TestParseEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"a\/b"`, "a/b"},
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
		{`"A"`, "A"},
		{`"é"`, "é"},
		{`"A"`, "A"},
		{`"é"`, "é"},
		// a high surrogate followed by a low surrogate combines into
		// the single character the pair denotes
		{`"😀"`, "😀"},
		{`"x😀y"`, "x😀y"},
		// unpaired surrogates become the replacement character
		{`"\ud83d"`, "�"},
		{`"\ud83dz"`, "�z"},
		{`"\ud83dA"`, "�A"},
		// unknown escape pairs pass through unchanged
		{`"a\qb"`, `a\qb`},
	}
	for _, tc := range tests {
		node := mustParse(t, tc.in)
		if node.AsString() != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, node.AsString(), tc.want)
		}
	}
}

func TestParseStripsBareNewlinesInQuotes(t *testing.T) {
	node := mustParse(t, "\"a\nb\r\"")
	if got := node.AsString(); got != "ab" {
		t.Errorf("got %q, want ab", got)
	}
	// but spaces and tabs inside quotes are preserved
	node = mustParse(t, "\"a \tb\"")
	if got := node.AsString(); got != "a \tb" {
		t.Errorf("got %q", got)
	}
}

func TestParseNonASCII(t *testing.T) {
	node := mustParse(t, `{"héllo":"wörld"}`)
	if got := node.Get("héllo").AsString(); got != "wörld" {
		t.Errorf("got %q", got)
	}
}

func TestParseQuotedLiteralsStayStrings(t *testing.T) {
	node := mustParse(t, `["true","null","1"]`)
	for c := range node.Children() {
		if c.Kind != ir.StringKind {
			t.Errorf("quoted token classified as %s", c.Kind)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		``,
		`{`,
		`]`,
		`[1,2`,
		`[[]`,
		`}`,
		`"abc`,
		`{"a":1:2}`,
		`[x]`,
		`[truex]`,
		`[tru]`,
		`@`,
		`[1,qq]`,
	}
	for _, in := range tests {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q): no error", in)
			continue
		}
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("Parse(%q): error %v does not wrap ErrMalformedInput", in, err)
		}
	}
}

func TestParseCloserPopsCurrentContainer(t *testing.T) {
	// closers are not matched by kind, they close the innermost container
	node := mustParse(t, `[1,2}`)
	if node.Kind != ir.ArrayKind || node.Len() != 2 {
		t.Errorf("got %s len %d", node.Kind, node.Len())
	}
	// but the outer object here stays open and fails at end of input
	if _, err := Parse(`{"a":[1,2}`); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("got %v", err)
	}
}

func TestRoundTripIdempotence(t *testing.T) {
	inputs := []string{
		`{}`,
		`[]`,
		`[1,2,3]`,
		`{"a":1,"b":"x","c":null}`,
		`{"x":3.5,"y":[true,null,"s"]}`,
		`{"a":{"b":[1,{"c":2}]},"d":3000000000}`,
		`"just a string"`,
		`[0.25,1e14,3.14159265]`,
	}
	for _, in := range inputs {
		one := mustParse(t, in)
		s1 := encode.MustString(one)
		two := mustParse(t, s1)
		if ir.Compare(one, two) != 0 {
			t.Errorf("%q: reparse differs from parse", in)
		}
		s2 := encode.MustString(two)
		if s1 != s2 {
			t.Errorf("%q: not idempotent: %q vs %q", in, s1, s2)
		}
	}
}

func TestRoundTripPreservesKindsAndText(t *testing.T) {
	in := `{"i":1,"l":3000000000,"f":3.5,"d":3.14159265,"b":true,"s":"x","n":null}`
	one := mustParse(t, in)
	two := mustParse(t, encode.MustString(one))
	for i := 0; i < one.Len(); i++ {
		a, b := one.At(i), two.At(i)
		if a.Kind != b.Kind {
			t.Errorf("%s: kind %s became %s", one.Key(i), a.Kind, b.Kind)
		}
		if a.Text != b.Text {
			t.Errorf("%s: canonical %q became %q", one.Key(i), a.Text, b.Text)
		}
	}
}
