// Package encode renders ir.Node trees as JSON text.
//
// Two forms are provided: the compact form used by default, and a pretty
// form selected with the Indent option, which places each child on its own
// line with three spaces of extra indentation per nesting level. The
// escaper is shared by both forms and deliberately keeps two historic
// quirks: forward slashes are escaped, and non-ASCII characters are never
// \u-escaped on output.
package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/knot-format/go-knot/ir"
)

const indentStep = "   "

type EncState struct {
	prefix string
	pretty bool

	Color func(ir.Kind, ColorAttr, string) string
}

type EncodeOption func(*EncState)

// Indent selects the pretty form. Each line of output is prefixed by
// prefix, and children gain three more spaces per nesting depth.
func Indent(prefix string) EncodeOption {
	return func(es *EncState) {
		es.pretty = true
		es.prefix = prefix
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}

func MustIndent(node *ir.Node, prefix string) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, Indent(prefix)); err != nil {
		panic(err)
	}
	return buf.String()
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Kind {
	case ir.ObjectKind:
		return encodeObject(node, w, es)
	case ir.ArrayKind:
		return encodeArray(node, w, es)
	case ir.StringKind:
		return writeString(w, applyColor(es, ir.StringKind, ValueColor, `"`+Escape(node.Text)+`"`))
	case ir.NullKind:
		return writeString(w, applyColor(es, ir.NullKind, ValueColor, "null"))
	default:
		// numbers and bools render their raw canonical text unquoted
		return writeString(w, applyColor(es, node.Kind, ValueColor, node.Text))
	}
}

// encodeArray renders "[ v1, v2 ]" compactly (an empty array renders
// "[  ]"), or one element per line in the pretty form.
func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ArrayKind, SepColor, "[")); err != nil {
		return err
	}
	if es.pretty && len(node.Values) > 0 {
		if err := encodeArrayPretty(node, w, es); err != nil {
			return err
		}
	} else {
		if err := writeString(w, " "); err != nil {
			return err
		}
		for i, v := range node.Values {
			if err := encode(v, w, es); err != nil {
				return err
			}
			if i < len(node.Values)-1 {
				if err := writeString(w, applyColor(es, ir.ArrayKind, SepColor, ",")+" "); err != nil {
					return err
				}
			}
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ArrayKind, SepColor, "]"))
}

func encodeArrayPretty(node *ir.Node, w io.Writer, es *EncState) error {
	inner := &EncState{pretty: true, prefix: es.prefix + indentStep, Color: es.Color}
	for i, v := range node.Values {
		if err := writeString(w, "\n"+inner.prefix); err != nil {
			return err
		}
		if err := encode(v, w, inner); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeString(w, applyColor(es, ir.ArrayKind, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	return writeString(w, "\n"+es.prefix)
}

// encodeObject renders `{"k":v,...}` compactly with no spaces, or one
// entry per line in the pretty form.
func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ObjectKind, SepColor, "{")); err != nil {
		return err
	}
	if es.pretty && len(node.Keys) > 0 {
		if err := encodeObjectPretty(node, w, es); err != nil {
			return err
		}
	} else {
		for i, k := range node.Keys {
			if err := writeField(w, k, es); err != nil {
				return err
			}
			if err := encode(node.Values[i], w, es); err != nil {
				return err
			}
			if i < len(node.Keys)-1 {
				if err := writeString(w, applyColor(es, ir.ObjectKind, SepColor, ",")); err != nil {
					return err
				}
			}
		}
	}
	return writeString(w, applyColor(es, ir.ObjectKind, SepColor, "}"))
}

func encodeObjectPretty(node *ir.Node, w io.Writer, es *EncState) error {
	inner := &EncState{pretty: true, prefix: es.prefix + indentStep, Color: es.Color}
	for i, k := range node.Keys {
		if err := writeString(w, "\n"+inner.prefix); err != nil {
			return err
		}
		if err := writeField(w, k, es); err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, inner); err != nil {
			return err
		}
		if i < len(node.Keys)-1 {
			if err := writeString(w, applyColor(es, ir.ObjectKind, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	return writeString(w, "\n"+es.prefix)
}

func writeField(w io.Writer, k string, es *EncState) error {
	f := applyColor(es, ir.ObjectKind, FieldColor, `"`+Escape(k)+`"`)
	sep := applyColor(es, ir.ObjectKind, SepColor, ":")
	return writeString(w, f+sep)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, k ir.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"/", `\/`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

// Escape maps the characters both output forms escape. Everything else,
// including non-ASCII, passes through unchanged.
func Escape(s string) string {
	return escaper.Replace(s)
}
