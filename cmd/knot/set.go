package main

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/knot-format/go-knot/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		key, val, ok := strings.Cut(a, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: -e expects key=val, got %q", cli.ErrUsage, a)
		}
		var v any
		if err := yaml.Unmarshal([]byte(val), &v); err != nil {
			return nil, err
		}
		env[key] = v
		return 0, nil
	}
}

// nodeFromAny converts a YAML-decoded literal into a node tree.
func nodeFromAny(v any) *ir.Node {
	switch t := v.(type) {
	case nil:
		return ir.Null()
	case bool:
		return ir.FromBool(t)
	case string:
		return ir.FromString(t)
	case int:
		return nodeFromInt(int64(t))
	case int64:
		return nodeFromInt(t)
	case uint64:
		if t <= math.MaxInt64 {
			return nodeFromInt(int64(t))
		}
		return ir.FromDouble(float64(t))
	case float64:
		return ir.FromDouble(t)
	case []any:
		arr := ir.NewArray()
		for _, e := range t {
			arr.Add("", nodeFromAny(e))
		}
		return arr
	case map[string]any:
		obj := ir.NewObject()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			obj.Add(k, nodeFromAny(t[k]))
		}
		return obj
	default:
		return ir.FromString(fmt.Sprintf("%v", t))
	}
}

func nodeFromInt(v int64) *ir.Node {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return ir.FromInt(int32(v))
	}
	return ir.FromLong(v)
}
