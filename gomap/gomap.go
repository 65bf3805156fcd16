// Package gomap populates flat Go structs from the top level of a parsed
// JSON document.
//
// The mapping is shallow by design: only exported top-level fields whose
// names match top-level object keys are populated, with one level of
// pointer unwrapping for nullable fields. Nested struct, slice and map
// fields are not descended into. Scalar conversions go through the node's
// canonical text and degrade to the field's zero value when the text does
// not parse, mirroring the accessor contract of package ir.
package gomap

import (
	"reflect"
	"strconv"

	"github.com/knot-format/go-knot/ir"
	"github.com/knot-format/go-knot/parse"
)

// Populate parses jsonText and fills a fresh T from the tree's top-level
// keys by field name. It fails with ErrNoMatchingFields when no field of T
// overlaps the top-level keys, which guards against silently returning an
// all-default value from unrelated input.
func Populate[T any](jsonText string) (T, error) {
	var out T
	node, err := parse.Parse(jsonText)
	if err != nil {
		return out, err
	}
	rv := reflect.ValueOf(&out).Elem()
	if rv.Kind() != reflect.Struct {
		return out, &PopulateError{
			Shape:   rv.Type().String(),
			Message: "target shape must be a struct",
		}
	}
	if err := fill(node, rv); err != nil {
		return out, err
	}
	return out, nil
}

func fill(node *ir.Node, rv reflect.Value) error {
	typ := rv.Type()
	matched := 0
	if node.Kind == ir.ObjectKind {
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			val := node.Get(field.Name)
			if val == nil {
				continue
			}
			matched++
			if val.Kind == ir.NullKind {
				// null leaves the field at its default
				continue
			}
			if !val.Kind.IsLeaf() {
				continue
			}
			setField(rv.Field(i), val)
		}
	}
	if matched == 0 {
		return &PopulateError{
			Shape:   typ.String(),
			Message: "no overlapping top-level keys",
			Err:     ErrNoMatchingFields,
		}
	}
	return nil
}

// setField assigns a scalar node to a field, unwrapping one pointer level
// for nullable fields. Numeric conversions parse the canonical text at the
// field's own bit width, so a value that does not fit the field leaves the
// zero value rather than truncating. Unsupported field kinds are skipped.
func setField(fv reflect.Value, node *ir.Node) {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		fv = fv.Elem()
	}
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(node.AsString())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v, err := strconv.ParseInt(node.Text, 10, fv.Type().Bits()); err == nil {
			fv.SetInt(v)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v, err := strconv.ParseUint(node.Text, 10, fv.Type().Bits()); err == nil {
			fv.SetUint(v)
		}
	case reflect.Float32, reflect.Float64:
		if v, err := strconv.ParseFloat(node.Text, fv.Type().Bits()); err == nil {
			fv.SetFloat(v)
		}
	case reflect.Bool:
		fv.SetBool(node.AsBool())
	}
}
